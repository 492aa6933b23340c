package util

import (
	"regexp"
	"strings"
)

// first {...} span, shortest match, '.' crosses newlines
var objectRe = regexp.MustCompile(`(?s)\{.*?\}`)

var markdownStripper = strings.NewReplacer("*", "", "#", "")

// CleanDisplayText turns raw model output into a single display string:
// surrounding double quotes and whitespace go, markdown '*' and '#' are
// removed everywhere. Content is otherwise returned as-is.
func CleanDisplayText(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"`)
	s = strings.TrimSpace(s)
	s = markdownStripper.Replace(s)
	return strings.TrimSpace(s)
}

// FirstJSONObject returns the first brace-delimited span in s. It does not
// check that the span is valid JSON.
func FirstJSONObject(s string) (string, bool) {
	m := objectRe.FindString(s)
	return m, m != ""
}
