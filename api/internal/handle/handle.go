package handle

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"calc-be/api/internal/answer"
	"calc-be/api/internal/calc"
)

// cacheMaxAge ограничивает возраст записей solve-кэша.
const cacheMaxAge = 24 * time.Hour

// SolveCache хранит результаты решений по хэшу картинки.
// *store.SolveRepo реализует его поверх Postgres.
type SolveCache interface {
	FindByHash(ctx context.Context, imageHash, subject, model string, maxAge time.Duration) ([]answer.Record, error)
	Upsert(ctx context.Context, imageHash, subject, model string, recs []answer.Record) error
}

type Handle struct {
	solver *calc.Solver
	cache  SolveCache // nil, когда DATABASE_URL не задан
	model  string
}

func New(solver *calc.Solver, cache SolveCache, model string) *Handle {
	return &Handle{
		solver: solver,
		cache:  cache,
		model:  model,
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
