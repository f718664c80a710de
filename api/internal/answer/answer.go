// Package answer turns a model's free-form answer text into structured
// records. The model is asked for a literal-syntax list of dicts but the
// text that comes back is routinely fenced, single-quoted, or wrapped in
// prose, so recovery runs as clean → fallback parse → normalize, each stage
// absorbing its own failures. An empty result is a valid terminal outcome;
// nothing in this package raises past its caller.
package answer

import "log"

// Decode runs the clean/parse/normalize pipeline over raw answer text.
func Decode(raw string) []Record {
	cleaned := StripCodeFences(raw)
	v, err := Parse(cleaned, raw)
	if err != nil {
		log.Printf("answer: could not parse model text: %q", raw)
		return nil
	}
	return Normalize(v)
}
