// Package sources adapts the local folder scanner and the share client to
// ports.SubmissionSource.
package sources

import (
	"context"
	"log/slog"

	"NewsletterDesk/internal/domain"
	"NewsletterDesk/internal/infrastructure/localfs"
	"NewsletterDesk/internal/ports"
	"NewsletterDesk/internal/submission"
)

// LocalName identifies the local folder source.
const LocalName = "local"

// Local reads submissions from a folder on disk.
type Local struct {
	folder     string
	scanner    *localfs.Scanner
	aggregator *submission.Aggregator
	logger     *slog.Logger
}

var _ ports.SubmissionSource = (*Local)(nil)

// NewLocal wires the scanner and aggregator for folder.
func NewLocal(folder string, scanner *localfs.Scanner, aggregator *submission.Aggregator, log *slog.Logger) *Local {
	return &Local{folder: folder, scanner: scanner, aggregator: aggregator, logger: log}
}

// Name identifies the source inside the registry.
func (l *Local) Name() string {
	return LocalName
}

// Collect scans the folder and parses its text submissions. It never fails;
// a missing folder yields no articles.
func (l *Local) Collect(ctx context.Context) ([]domain.ParsedArticle, error) {
	listing := l.scanner.Scan(l.folder)
	articles := l.aggregator.FromListing(listing)
	if l.logger != nil {
		l.logger.Debug("local source collected", "folder", l.folder, "groups", listing.Len(), "articles", len(articles))
	}
	return articles, nil
}
