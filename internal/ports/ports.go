package ports

import (
	"context"

	"NewsletterDesk/internal/domain"
)

// SubmissionSource yields parsed articles from one place members submit to.
type SubmissionSource interface {
	Name() string
	Collect(ctx context.Context) ([]domain.ParsedArticle, error)
}

// Publisher delivers the assembled issue (file, stdout, ...).
type Publisher interface {
	Publish(ctx context.Context, document string) error
}
