package domain

// Outcome classifies a finished run.
type Outcome string

const (
	OutcomeIdle     Outcome = "idle"     // Empty word, nothing was done
	OutcomeAccepted Outcome = "accepted" // Ended in a final state
	OutcomeReturned Outcome = "returned" // Ended back at the initial state
	OutcomeTrapped  Outcome = "trapped"  // Ended anywhere else, halts included
)

// Accepted reports whether the word was accepted.
func (o Outcome) Accepted() bool {
	return o == OutcomeAccepted
}

// Message is the human readable verdict for the cave game.
func (o Outcome) Message() string {
	switch o {
	case OutcomeAccepted:
		return "Congratulations, you found the treasure and left the cave! (word accepted)"
	case OutcomeReturned:
		return "Your incursion is over and you left the cave without the treasure, try again! (word rejected)"
	case OutcomeTrapped:
		return "Your incursion is over and you are trapped in the cave! (word rejected)"
	case OutcomeIdle:
		return "You did nothing (rejected for laziness)"
	default:
		return string(o)
	}
}
