package answer

import (
	"reflect"
	"testing"
)

func TestParse_StrictJSON(t *testing.T) {
	text := `[{"expr": "2 + 2", "result": 4}]`
	v, err := Parse(text, text)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := []any{map[string]any{"expr": "2 + 2", "result": float64(4)}}
	if !reflect.DeepEqual(v, want) {
		t.Errorf("Parse() = %#v, want %#v", v, want)
	}
}

func TestParse_SingleQuotedLiteral(t *testing.T) {
	// The prompt asks for literal-syntax dicts; single quotes are not valid
	// JSON and must go through the repair strategy.
	text := `[{'expr': '2 + 2', 'result': 4}]`
	v, err := Parse(text, text)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	list, ok := v.([]any)
	if !ok || len(list) != 1 {
		t.Fatalf("Parse() = %#v, want one-element list", v)
	}
	m := list[0].(map[string]any)
	if m["expr"] != "2 + 2" || m["result"] != float64(4) {
		t.Errorf("Parse() element = %#v", m)
	}
}

func TestParse_PythonBooleans(t *testing.T) {
	text := `[{'expr': 'x', 'result': 2, 'assign': True}]`
	v, err := Parse(text, text)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	m := v.([]any)[0].(map[string]any)
	if m["assign"] != true {
		t.Errorf("assign = %#v, want true", m["assign"])
	}
}

func TestParse_BareDict(t *testing.T) {
	text := `{'expr': 'explanation', 'result': 'patriotism'}`
	v, err := Parse(text, text)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	m, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("Parse() = %#v, want map", v)
	}
	if m["result"] != "patriotism" {
		t.Errorf("result = %#v", m["result"])
	}
}

func TestParse_FencedEqualsUnwrapped(t *testing.T) {
	// Parsing fenced content after cleaning must equal parsing the bare
	// content directly.
	bare := `[{"expr": "x", "result": 2, "assign": true}]`
	fenced := "```python\n" + bare + "\n```"

	fromBare, err := Parse(bare, bare)
	if err != nil {
		t.Fatalf("Parse(bare) error = %v", err)
	}
	fromFenced, err := Parse(StripCodeFences(fenced), fenced)
	if err != nil {
		t.Fatalf("Parse(fenced) error = %v", err)
	}
	if !reflect.DeepEqual(fromBare, fromFenced) {
		t.Errorf("fenced parse = %#v, bare parse = %#v", fromFenced, fromBare)
	}
}

func TestParse_CleaningHarmful(t *testing.T) {
	// Text that begins with a fence marker but is not actually fenced
	// content; the original-text strategies must still recover it.
	original := "```" // cleaned form stays unparseable either way
	if _, err := Parse(StripCodeFences(original), original); err == nil {
		t.Fatal("Parse() expected failure")
	}

	original = `[{"expr": "a", "result": 1}]`
	mangled := "" // pretend cleaning destroyed the text
	v, err := Parse(mangled, original)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(v.([]any)) != 1 {
		t.Errorf("Parse() = %#v", v)
	}
}

func TestParse_Prose(t *testing.T) {
	text := "I cannot determine an answer."
	if _, err := Parse(text, text); err != ErrUnparseable {
		t.Fatalf("Parse() error = %v, want ErrUnparseable", err)
	}
}

func TestParse_ProseWrappedList(t *testing.T) {
	// The repair strategy must refuse text that does not start like a
	// literal; only the bracketed substring is recoverable.
	text := "Answer below:\n[{'expr': 'y', 'result': 3}]"
	v, err := Parse(text, text)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	list, ok := v.([]any)
	if !ok || len(list) != 1 {
		t.Fatalf("Parse() = %#v, want one-element list", v)
	}
	m, ok := list[0].(map[string]any)
	if !ok {
		t.Fatalf("Parse() element = %#v, want map", list[0])
	}
	if m["expr"] != "y" || m["result"] != float64(3) {
		t.Errorf("Parse() element = %#v", m)
	}
}

func TestParse_RescueFromConversationalText(t *testing.T) {
	text := "Sure! Here is the solution:\n[{'expr': 'x', 'result': 2, 'assign': True}]\nLet me know if you need more help."
	recs := Decode(text)
	if len(recs) != 1 {
		t.Fatalf("Decode() = %#v, want one record", recs)
	}
	rec := recs[0]
	if rec.Expr() != "x" || rec.Result() != float64(2) || !rec.Assign() {
		t.Errorf("Decode() record = %#v", rec)
	}
}

func TestDecode_ScenarioA(t *testing.T) {
	recs := Decode(`[{'expr': '2 + 2', 'result': 4}]`)
	if len(recs) != 1 {
		t.Fatalf("Decode() = %#v, want one record", recs)
	}
	rec := recs[0]
	if rec.Expr() != "2 + 2" || rec.Result() != float64(4) || rec.Assign() {
		t.Errorf("Decode() record = %#v", rec)
	}
}

func TestDecode_ScenarioB_Fenced(t *testing.T) {
	recs := Decode("```python\n[{'expr': 'x', 'result': 2, 'assign': True}]\n```")
	if len(recs) != 1 {
		t.Fatalf("Decode() = %#v, want one record", recs)
	}
	if !recs[0].Assign() {
		t.Errorf("assign = false, want true")
	}
}

func TestDecode_ScenarioC_BareDictWrapped(t *testing.T) {
	recs := Decode(`{'expr': 'explanation', 'result': 'patriotism'}`)
	if len(recs) != 1 {
		t.Fatalf("Decode() = %#v, want one record", recs)
	}
	if recs[0].Assign() {
		t.Errorf("assign should default to false")
	}
}

func TestDecode_ScenarioE_ProseYieldsEmpty(t *testing.T) {
	if recs := Decode("I cannot determine an answer."); len(recs) != 0 {
		t.Errorf("Decode() = %#v, want empty", recs)
	}
}
