package sources

import (
	"context"
	"fmt"
	"log/slog"

	"NewsletterDesk/internal/domain"
	"NewsletterDesk/internal/infrastructure/share"
	"NewsletterDesk/internal/ports"
)

// ShareName identifies the cloud-share source.
const ShareName = "share"

// Fetcher is the part of share.Client the source needs.
type Fetcher interface {
	FetchAll(ctx context.Context, shareURL, password string) ([]domain.ParsedArticle, error)
}

// Share downloads submissions from a public share link.
type Share struct {
	url      string
	password string
	client   Fetcher
	logger   *slog.Logger
}

var _ ports.SubmissionSource = (*Share)(nil)
var _ Fetcher = (*share.Client)(nil)

// NewShare wires a fetcher with the link credentials.
func NewShare(url, password string, client Fetcher, log *slog.Logger) *Share {
	return &Share{url: url, password: password, client: client, logger: log}
}

// Name identifies the source inside the registry.
func (s *Share) Name() string {
	return ShareName
}

// Collect fetches and parses the share archive.
func (s *Share) Collect(ctx context.Context) ([]domain.ParsedArticle, error) {
	articles, err := s.client.FetchAll(ctx, s.url, s.password)
	if err != nil {
		return nil, fmt.Errorf("share source: %w", err)
	}
	if s.logger != nil {
		s.logger.Debug("share source collected", "articles", len(articles))
	}
	return articles, nil
}
