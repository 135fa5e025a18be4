package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aretw0/labyrinth"
	httpAdapter "github.com/aretw0/labyrinth/internal/adapters/http"
	"github.com/aretw0/labyrinth/pkg/adapters/memory"
	"github.com/aretw0/labyrinth/pkg/domain"
	"github.com/aretw0/labyrinth/pkg/observability"
	"github.com/aretw0/labyrinth/pkg/schema"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandler(t *testing.T) http.Handler {
	t.Helper()
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)

	eng, err := labyrinth.NewClassic(
		labyrinth.WithStore(memory.NewStore()),
		labyrinth.WithLifecycleHooks(metrics.Hooks()),
	)
	require.NoError(t, err)
	return httpAdapter.NewHandler(eng, httpAdapter.WithMetrics(reg))
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestGetHealth(t *testing.T) {
	rr := do(t, newHandler(t), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestGetInfo(t *testing.T) {
	rr := do(t, newHandler(t), http.MethodGet, "/info", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "labyrinth-http", resp["app"])
	assert.NotEmpty(t, resp["version"])
	assert.Equal(t, "wumpus", resp["automaton"])
}

func TestGetAutomaton(t *testing.T) {
	rr := do(t, newHandler(t), http.MethodGet, "/automaton", "")
	require.Equal(t, http.StatusOK, rr.Code)

	def, err := schema.Parse(rr.Body.Bytes(), schema.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "A11", def.Initial)
	assert.Len(t, def.States, 36)
}

func TestRuns(t *testing.T) {
	h := newHandler(t)

	tests := []struct {
		name    string
		body    string
		status  int
		outcome domain.Outcome
		last    string
	}{
		{"Word Array", `{"word": ["cima", "direita", "pegar", "baixo", "esquerda"]}`, http.StatusCreated, domain.OutcomeAccepted, "B11"},
		{"Comma Input", `{"input": "d,d"}`, http.StatusCreated, domain.OutcomeTrapped, "A13"},
		{"Empty Word", `{}`, http.StatusCreated, domain.OutcomeIdle, ""},
		{"Unknown Symbol", `{"input": "c xyz"}`, http.StatusUnprocessableEntity, "", ""},
		{"Bad JSON", `{"word": `, http.StatusBadRequest, "", ""},
	}

	var created []string
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, h, http.MethodPost, "/runs", tt.body)
			require.Equal(t, tt.status, rr.Code, rr.Body.String())

			if tt.status != http.StatusCreated {
				var resp httpAdapter.ErrorResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.NotEmpty(t, resp.Error)
				if tt.status == http.StatusUnprocessableEntity {
					assert.Equal(t, "xyz", resp.Token)
				}
				return
			}

			var run domain.RunRecord
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &run))
			assert.Equal(t, tt.outcome, run.Outcome)
			assert.Equal(t, tt.last, run.Last())
			assert.Equal(t, "/runs/"+run.ID, rr.Header().Get("Location"))
			created = append(created, run.ID)
		})
	}

	rr := do(t, h, http.MethodGet, "/runs", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var runs []domain.RunRecord
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &runs))
	assert.Len(t, runs, len(created))

	rr = do(t, h, http.MethodGet, "/runs/"+created[0], "")
	require.Equal(t, http.StatusOK, rr.Code)
	var run domain.RunRecord
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &run))
	assert.Equal(t, created[0], run.ID)

	rr = do(t, h, http.MethodGet, "/runs/missing", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(t, h, http.MethodGet, "/automaton/graph?run="+created[1], "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "graph TD")
	assert.Contains(t, rr.Body.String(), "class A13 current;")

	rr = do(t, h, http.MethodGet, "/automaton/graph?run=missing", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `labyrinth_runs_total{outcome="accepted"} 1`)
	assert.Contains(t, rr.Body.String(), `labyrinth_steps_total{symbol="Right"} 3`)
}

func TestCORS(t *testing.T) {
	rr := do(t, newHandler(t), http.MethodOptions, "/runs", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}
