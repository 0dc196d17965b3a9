package article

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Classifier infers a department from a filename, returning "" when it cannot.
type Classifier func(filename string) string

// Classifiers dispatches on the lowercased extension. Files whose extension is
// missing here are not submissions.
var Classifiers = map[string]Classifier{
	".txt":  ClassifyTimestamped,
	".doc":  ClassifyBracketed,
	".docx": ClassifyBracketed,
}

var bracketExpr = regexp.MustCompile(`[（(]([^）)]+)[）)]`)

// ClassifyTimestamped handles names like 20240115_093000_広報部.txt, where the
// first two underscore segments are a date and time.
func ClassifyTimestamped(filename string) string {
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	parts := strings.Split(stem, "_")
	if len(parts) < 3 {
		return ""
	}
	return strings.Join(parts[2:], "_")
}

// ClassifyBracketed handles names like template_（総務部）.docx.
func ClassifyBracketed(filename string) string {
	m := bracketExpr.FindStringSubmatch(filename)
	if m == nil {
		return ""
	}
	return m[1]
}

// GroupKey is the department inferred for filename, or the filename itself.
// ok is false when the extension is not a submission type.
func GroupKey(filename string) (key string, ok bool) {
	classify, ok := Classifiers[strings.ToLower(filepath.Ext(filename))]
	if !ok {
		return "", false
	}
	if dept := classify(filename); dept != "" {
		return dept, true
	}
	return filename, true
}
