package answer

import "strings"

// Language tags models like to put on the opening fence line.
var languageTags = map[string]struct{}{
	"python":     {},
	"json":       {},
	"javascript": {},
	"js":         {},
}

// StripCodeFences removes one outer ``` fence from s. The content between the
// first and last fence markers is kept even when it spans internal fences,
// and a leading language-tag line ("python", "json", ...) is dropped.
// Text without a leading fence comes back trimmed and otherwise unchanged.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	first := strings.Index(s, "```")
	last := strings.LastIndex(s, "```")
	if first == last {
		return s
	}
	inner := strings.TrimSpace(s[first+3 : last])

	if nl := strings.IndexByte(inner, '\n'); nl >= 0 {
		if _, ok := languageTags[strings.TrimSpace(inner[:nl])]; ok {
			inner = strings.TrimSpace(inner[nl+1:])
		}
	} else if _, ok := languageTags[inner]; ok {
		// The fence held nothing but a language tag.
		inner = ""
	}
	return inner
}
