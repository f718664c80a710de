package answer

import "log"

// Record is one normalized answer entry. It stays a map so keys beyond
// expr/result/assign pass through to the client untouched; the only
// guarantee added here is that "assign" is present.
type Record map[string]any

func (r Record) Expr() string {
	s, _ := r["expr"].(string)
	return s
}

func (r Record) Result() any { return r["result"] }

func (r Record) Assign() bool {
	b, _ := r["assign"].(bool)
	return b
}

// ErrorRecord is the synthetic record returned when the model call itself
// fails; clients recognize it by expr == "Error".
func ErrorRecord(err error) Record {
	return Record{"expr": "Error", "result": err.Error(), "assign": false}
}

// IsError reports whether r is the synthetic error record.
func (r Record) IsError() bool { return r.Expr() == "Error" }

// Normalize coerces a parsed value into an ordered record list. Non-list
// values are wrapped; object elements get assign=false when the key is
// missing (present values pass through as-is, boolean or not); anything that
// is not an object is logged and dropped. Element order is preserved.
func Normalize(v any) []Record {
	if v == nil {
		return nil
	}
	list, ok := v.([]any)
	if !ok {
		list = []any{v}
	}
	out := make([]Record, 0, len(list))
	for _, el := range list {
		m, ok := el.(map[string]any)
		if !ok {
			log.Printf("answer: dropping non-object element: %v", el)
			continue
		}
		if _, ok := m["assign"]; !ok {
			m["assign"] = false
		}
		out = append(out, Record(m))
	}
	return out
}
