package answer

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  []Record
	}{
		{
			name:  "assign defaulted to false",
			input: []any{map[string]any{"expr": "2 + 2", "result": float64(4)}},
			want:  []Record{{"expr": "2 + 2", "result": float64(4), "assign": false}},
		},
		{
			name:  "assign true preserved",
			input: []any{map[string]any{"expr": "x", "result": float64(2), "assign": true}},
			want:  []Record{{"expr": "x", "result": float64(2), "assign": true}},
		},
		{
			name:  "non-boolean assign passes through",
			input: []any{map[string]any{"expr": "x", "result": float64(2), "assign": "yes"}},
			want:  []Record{{"expr": "x", "result": float64(2), "assign": "yes"}},
		},
		{
			name:  "extra keys kept",
			input: []any{map[string]any{"expr": "x", "result": float64(1), "steps": []any{"a", "b"}}},
			want:  []Record{{"expr": "x", "result": float64(1), "steps": []any{"a", "b"}, "assign": false}},
		},
		{
			name:  "bare object wrapped",
			input: map[string]any{"expr": "explanation", "result": "patriotism"},
			want:  []Record{{"expr": "explanation", "result": "patriotism", "assign": false}},
		},
		{
			name:  "scalar wrapped then dropped",
			input: "patriotism",
			want:  []Record{},
		},
		{
			name:  "nil yields nothing",
			input: nil,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Normalize() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestNormalize_DropsNonObjectElements(t *testing.T) {
	parsed := []any{
		map[string]any{"expr": "a", "result": float64(1)},
		"junk",
		float64(42),
		map[string]any{"expr": "b", "result": float64(2)},
		[]any{"nested"},
	}
	got := Normalize(parsed)
	if len(got) != 2 {
		t.Fatalf("Normalize() kept %d records, want 2", len(got))
	}
	// Dropped count equals parsed length minus normalized length.
	if dropped := len(parsed) - len(got); dropped != 3 {
		t.Errorf("dropped = %d, want 3", dropped)
	}
	// Order preserved.
	if got[0].Expr() != "a" || got[1].Expr() != "b" {
		t.Errorf("order not preserved: %#v", got)
	}
}

func TestErrorRecord(t *testing.T) {
	rec := ErrorRecord(errDummy("quota exceeded"))
	if rec.Expr() != "Error" || rec.Result() != "quota exceeded" || rec.Assign() {
		t.Errorf("ErrorRecord() = %#v", rec)
	}
}

type errDummy string

func (e errDummy) Error() string { return string(e) }
