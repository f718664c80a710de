package calc

import (
	"context"
	"errors"
	"strings"
	"testing"

	"calc-be/api/internal/vision"
)

type fakeEngine struct {
	resp       vision.Response
	err        error
	lastPrompt string
}

func (f *fakeEngine) Name() string     { return "fake" }
func (f *fakeEngine) GetModel() string { return "fake-model" }

func (f *fakeEngine) Generate(_ context.Context, prompt string, _ []byte, _ string) (vision.Response, error) {
	f.lastPrompt = prompt
	return f.resp, f.err
}

func textResponse(text string) vision.Response {
	return vision.Response{
		Candidates: []vision.Candidate{
			{Content: &vision.Content{Parts: []vision.Part{{Text: text}}}},
		},
	}
}

func TestSolve_Success(t *testing.T) {
	eng := &fakeEngine{resp: textResponse(`[{'expr': '2 + 2', 'result': 4}]`)}
	recs := NewSolver(eng).Solve(context.Background(), []byte{1}, "image/png", nil, "math")
	if len(recs) != 1 {
		t.Fatalf("Solve() = %#v, want one record", recs)
	}
	if recs[0].Expr() != "2 + 2" || recs[0].Assign() {
		t.Errorf("record = %#v", recs[0])
	}
}

func TestSolve_EngineErrorBecomesErrorRecord(t *testing.T) {
	eng := &fakeEngine{err: errors.New("quota exceeded")}
	recs := NewSolver(eng).Solve(context.Background(), []byte{1}, "image/png", nil, "math")
	if len(recs) != 1 {
		t.Fatalf("Solve() = %#v, want one synthetic record", recs)
	}
	if recs[0].Expr() != "Error" || recs[0].Assign() {
		t.Errorf("record = %#v", recs[0])
	}
	if res, _ := recs[0].Result().(string); !strings.Contains(res, "quota exceeded") {
		t.Errorf("result = %#v", recs[0].Result())
	}
}

func TestSolve_EmptyResponse(t *testing.T) {
	eng := &fakeEngine{resp: vision.Response{}}
	if recs := NewSolver(eng).Solve(context.Background(), []byte{1}, "image/png", nil, "math"); len(recs) != 0 {
		t.Errorf("Solve() = %#v, want empty", recs)
	}
}

func TestSolve_ProseYieldsEmpty(t *testing.T) {
	eng := &fakeEngine{resp: textResponse("I cannot determine an answer.")}
	if recs := NewSolver(eng).Solve(context.Background(), []byte{1}, "image/png", nil, "math"); len(recs) != 0 {
		t.Errorf("Solve() = %#v, want empty", recs)
	}
}

func TestSolve_VariablesReachPrompt(t *testing.T) {
	eng := &fakeEngine{resp: textResponse(`[{'expr': 'x', 'result': 5}]`)}
	vars := map[string]any{"x": 5}
	NewSolver(eng).Solve(context.Background(), []byte{1}, "image/png", vars, "")
	if !strings.Contains(eng.lastPrompt, `"x":5`) {
		t.Errorf("prompt missing variable dictionary: %q", eng.lastPrompt)
	}
}
