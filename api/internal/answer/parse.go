package answer

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// ErrUnparseable reports that every parse strategy was exhausted.
var ErrUnparseable = errors.New("answer: no parse strategy succeeded")

// attempt is one (parser, input) pair in the fallback chain.
type attempt struct {
	name  string
	text  string
	parse func(string) (any, error)
}

// listOfOneRe finds the "[ {...} ]" shape the prompts ask for when the model
// buried it inside conversational text.
var listOfOneRe = regexp.MustCompile(`\[\s*\{[^}]*\}\s*\]`)

// Parse recovers a structured value from model text. The strategies run
// strictly in order, first success wins: strict JSON of the cleaned text,
// repaired-literal parse of the cleaned text, the same two over the original
// text, then both over the first bracketed-object substring of the original.
// Exhaustion yields ErrUnparseable, never a panic: callers treat it as "the
// answer could not be structurally recovered".
func Parse(cleaned, original string) (any, error) {
	attempts := []attempt{
		{"json/cleaned", cleaned, parseStrict},
		{"repair/cleaned", cleaned, parseRepaired},
		{"json/original", original, parseStrict},
		{"repair/original", original, parseRepaired},
	}
	if m := listOfOneRe.FindString(original); m != "" {
		attempts = append(attempts,
			attempt{"json/rescue", m, parseStrict},
			attempt{"repair/rescue", m, parseRepaired},
		)
	}

	for _, a := range attempts {
		v, err := a.parse(a.text)
		if err != nil {
			continue
		}
		log.Printf("answer: parsed with %s", a.name)
		return v, nil
	}
	return nil, ErrUnparseable
}

func parseStrict(s string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, err
	}
	return v, nil
}

// parseRepaired handles the almost-JSON the model actually emits: single
// quotes, True/False/None, trailing commas. The input must already start
// like a literal: jsonrepair turns prose-wrapped answers into quoted strings
// or mixed arrays, which would mask the rescue strategy behind it — a
// literal parser fails on prose, and so does this.
func parseRepaired(s string) (any, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "{") && !strings.HasPrefix(s, "[") {
		return nil, fmt.Errorf("answer: text is not a literal")
	}
	fixed, err := jsonrepair.JSONRepair(s)
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal([]byte(fixed), &v); err != nil {
		return nil, err
	}
	switch v.(type) {
	case []any, map[string]any:
		return v, nil
	}
	return nil, fmt.Errorf("answer: repaired value is not a container")
}
