package domain

import "time"

// SubmittedFile is one raw artifact found by a scanner, before parsing.
type SubmittedFile struct {
	Filename  string     `json:"filename"`
	Path      string     `json:"path"`
	SizeKB    float64    `json:"size_kb"`
	Modified  *time.Time `json:"modified,omitempty"`
	Extension string     `json:"ext"`
}

// ParsedArticle is a submission reduced to its department and body text.
type ParsedArticle struct {
	Filename   string     `json:"filename"`
	Department string     `json:"dept"`
	Body       string     `json:"body"`
	Preview    string     `json:"preview"`
	SizeKB     float64    `json:"size_kb"`
	Modified   *time.Time `json:"modified,omitempty"`
}

// Header describes the issue being assembled.
type Header struct {
	Volume        int
	Year          int
	Month         int
	Day           int
	IntroFallback string
}

// ModifiedLabel renders the listing timestamp, or an empty string when unknown.
func (f SubmittedFile) ModifiedLabel() string {
	return formatModified(f.Modified)
}

// ModifiedLabel renders the listing timestamp, or an empty string when unknown.
func (a ParsedArticle) ModifiedLabel() string {
	return formatModified(a.Modified)
}

func formatModified(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("01/02 15:04")
}
