// Package vision defines the provider-neutral shape of a generative model
// reply and the text extraction over it. Model SDKs have changed which field
// carries the answer text across versions (a flattened text field, a bare
// parts list, candidates wrapping content, content wrapping parts), so the
// envelope keeps every known variant and extraction probes them in a fixed
// precedence order instead of assuming one.
package vision

import (
	"regexp"
	"strings"
)

// Part is one fragment of model output; only text fragments matter here.
type Part struct {
	Text string
}

// Content wraps an ordered list of parts.
type Content struct {
	Parts []Part
}

// Candidate is one alternative completion.
type Candidate struct {
	Content *Content
}

// Response is the closed set of reply shapes an engine may hand back.
// Any subset of the fields may be populated.
type Response struct {
	// Text is the flattened convenience field, when the provider offers one.
	Text string
	// Parts is a top-level fragment list without a candidate wrapper.
	Parts []Part
	// Candidates is the candidates → content → parts form.
	Candidates []Candidate
	// Content is a single content object without a candidate wrapper.
	Content *Content
	// Raw is the generic string form of the reply, kept as a last resort.
	Raw string
}

// ExtractText pulls a single concatenated answer string out of r, trying each
// known shape in precedence order. It returns "" when no shape yields text;
// it never panics, so callers can treat the result as trusted.
func ExtractText(r Response) string {
	for _, strategy := range strategies {
		if txt := strategy(r); txt != "" {
			return txt
		}
	}
	return ""
}

var strategies = []func(Response) string{
	directText,
	topLevelParts,
	candidateParts,
	contentParts,
	rawFallback,
}

func directText(r Response) string {
	return strings.TrimSpace(r.Text)
}

func topLevelParts(r Response) string {
	return joinParts(r.Parts)
}

// candidateParts returns the first candidate whose content carries text.
func candidateParts(r Response) string {
	for _, c := range r.Candidates {
		if c.Content == nil {
			continue
		}
		if txt := joinParts(c.Content.Parts); txt != "" {
			return txt
		}
	}
	return ""
}

func contentParts(r Response) string {
	if r.Content == nil {
		return ""
	}
	return joinParts(r.Content.Parts)
}

// typeNameRe matches a bare type reference like "*genai.GenerateContentResponse":
// a string form that names the value's type carries no answer text. Identifiers
// start with a letter, so numeric strings like "3.14" stay real answers.
var typeNameRe = regexp.MustCompile(`^[&*]?[A-Za-z_]\w*(\.\w+)+$`)

func rawFallback(r Response) string {
	raw := strings.TrimSpace(r.Raw)
	if raw == "" || raw == "<nil>" || typeNameRe.MatchString(raw) {
		return ""
	}
	return raw
}

func joinParts(parts []Part) string {
	var b strings.Builder
	for _, p := range parts {
		if p.Text != "" {
			b.WriteString(p.Text)
		}
	}
	return strings.TrimSpace(b.String())
}
