// Package article parses the plain-text submission format:
//
//	【部署名】
//
//	本文...
package article

import (
	"strings"
	"unicode/utf8"
)

const (
	labelOpen  = "【"
	labelClose = "】"

	previewRunes = 80
)

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Parse splits text into the department declared on its first line and the body.
// Only the first line is inspected; without a bracketed label the department is empty.
func Parse(text string) (string, string) {
	lines := strings.Split(lineBreaks.Replace(strings.TrimSpace(text)), "\n")

	dept := ""
	start := 0
	if first := lines[0]; strings.HasPrefix(first, labelOpen) && strings.HasSuffix(first, labelClose) && len(first) >= len(labelOpen)+len(labelClose) {
		dept = first[len(labelOpen) : len(first)-len(labelClose)]
		start = 1
		if len(lines) > 1 && lines[1] == "" {
			start = 2
		}
	}

	body := strings.TrimSpace(strings.Join(lines[start:], "\n"))
	return dept, body
}

// Preview returns the first 80 characters of body on a single line.
func Preview(body string) string {
	if utf8.RuneCountInString(body) > previewRunes {
		body = string([]rune(body)[:previewRunes])
	}
	return strings.ReplaceAll(body, "\n", " ")
}
