package validator_test

import (
	"testing"

	"github.com/aretw0/labyrinth/internal/validator"
	"github.com/aretw0/labyrinth/pkg/cave"
	"github.com/aretw0/labyrinth/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Classic(t *testing.T) {
	a, err := cave.Classic.Compile()
	require.NoError(t, err)

	report, err := validator.Validate(a)
	require.NoError(t, err)

	assert.Len(t, report.Reachable, 36)
	assert.Empty(t, report.Unreachable)
	assert.ElementsMatch(t, []string{"A13", "A31", "B13", "B31", "C13", "C31", "D13", "D31"}, report.DeadEnds)
	assert.Empty(t, report.Partial)
	assert.Equal(t, []string{"B11", "D11"}, report.ReachableFinals)
}

func TestValidate_Scenarios(t *testing.T) {
	tests := []struct {
		name        string
		def         schema.Definition
		wantErr     bool
		unreachable []string
		partial     []string
	}{
		{
			name: "Island State",
			def: schema.Definition{
				Name:     "island",
				Alphabet: []schema.SymbolSpec{{Name: "go"}},
				States:   []string{"start", "end", "island"},
				Initial:  "start",
				Finals:   []string{"end"},
				Transitions: map[string]schema.StateRules{
					"start":  {Default: "end"},
					"island": {Default: "end"},
				},
			},
			unreachable: []string{"island"},
		},
		{
			name: "Final Out Of Reach",
			def: schema.Definition{
				Name:     "walled",
				Alphabet: []schema.SymbolSpec{{Name: "go"}, {Name: "stay"}},
				States:   []string{"start", "end"},
				Initial:  "start",
				Finals:   []string{"end"},
				Transitions: map[string]schema.StateRules{
					"start": {Edges: map[string]string{"stay": "start"}},
				},
			},
			wantErr:     true,
			unreachable: []string{"end"},
			partial:     []string{"start"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := tt.def.Build()
			require.NoError(t, err)

			report, err := validator.Validate(a)
			require.NotNil(t, report)
			if tt.wantErr {
				assert.ErrorIs(t, err, validator.ErrNoReachableFinal)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.unreachable, report.Unreachable)
			assert.Equal(t, tt.partial, report.Partial)
		})
	}
}
