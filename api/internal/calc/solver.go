// Package calc orchestrates a solve: prompt assembly, the vision-model call,
// and the answer pipeline over whatever the model sent back.
package calc

import (
	"context"
	"encoding/json"
	"log"

	"calc-be/api/internal/answer"
	"calc-be/api/internal/calc/prompt"
	"calc-be/api/internal/vision"
)

const DefaultSubject = "math"

type Solver struct {
	engine vision.Engine
}

func NewSolver(engine vision.Engine) *Solver {
	return &Solver{engine: engine}
}

// Solve asks the model to solve the problem in the image and returns the
// normalized records. Engine failures become a single synthetic error record;
// extraction or parse failures yield an empty slice. Solve never returns an
// error: downstream of a decoded image, degradation is always graceful.
func (s *Solver) Solve(ctx context.Context, image []byte, mime string, vars map[string]any, subject string) []answer.Record {
	if subject == "" {
		subject = DefaultSubject
	}
	if vars == nil {
		vars = map[string]any{}
	}
	varsJSON, err := json.Marshal(vars)
	if err != nil {
		varsJSON = []byte("{}")
	}

	p := prompt.Build(subject, string(varsJSON))
	log.Printf("calc: solving subject=%s vars=%s engine=%s model=%s", subject, varsJSON, s.engine.Name(), s.engine.GetModel())

	resp, err := s.engine.Generate(ctx, p, image, mime)
	if err != nil {
		log.Printf("calc: engine error: %v", err)
		return []answer.Record{answer.ErrorRecord(err)}
	}

	text := vision.ExtractText(resp)
	if text == "" {
		log.Printf("calc: model returned no usable text")
		return nil
	}
	return answer.Decode(text)
}
