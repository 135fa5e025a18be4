package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/labyrinth/pkg/domain"
)

// LoggingHooks logs every step, halt and finished run at the given level.
func LoggingHooks(logger *slog.Logger, level slog.Level) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(e *domain.StepEvent) {
			logger.Log(context.Background(), level, "step",
				"automaton", e.Automaton,
				"step", e.Step,
				"token", e.Token,
				"from", e.FromName,
				"symbol", e.SymbolName,
				"to", e.ToName,
			)
		},
		OnHalt: func(e *domain.StepEvent) {
			logger.Log(context.Background(), level, "halt",
				"automaton", e.Automaton,
				"step", e.Step,
				"token", e.Token,
				"state", e.FromName,
				"symbol", e.SymbolName,
			)
		},
		OnFinish: func(e *domain.RunEvent) {
			if e.Err != nil {
				logger.Log(context.Background(), slog.LevelError, "run failed",
					"automaton", e.Automaton,
					"steps", e.Steps,
					"error", e.Err,
				)
				return
			}
			logger.Log(context.Background(), level, "run finished",
				"automaton", e.Automaton,
				"steps", e.Steps,
				"halted", e.Halted,
				"outcome", e.Outcome,
			)
		},
	}
}
