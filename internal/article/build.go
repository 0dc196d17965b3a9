package article

import (
	"time"

	"NewsletterDesk/internal/domain"
)

// Build parses decoded text into a ParsedArticle. A department declared in the
// text wins over fallbackDept.
func Build(filename, fallbackDept, text string, sizeKB float64, modified *time.Time) domain.ParsedArticle {
	dept, body := Parse(text)
	if dept == "" {
		dept = fallbackDept
	}
	return domain.ParsedArticle{
		Filename:   filename,
		Department: dept,
		Body:       body,
		Preview:    Preview(body),
		SizeKB:     sizeKB,
		Modified:   modified,
	}
}
