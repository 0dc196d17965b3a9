// Package submission turns scanned or downloaded submissions into an ordered
// article list ready for assembly.
package submission

import (
	"log/slog"

	"NewsletterDesk/internal/article"
	"NewsletterDesk/internal/domain"
	"NewsletterDesk/internal/textdecode"
)

const textExtension = ".txt"

// Aggregator parses submissions and orders them by the department catalog.
type Aggregator struct {
	decoder *textdecode.Decoder
	catalog *domain.Catalog
	logger  *slog.Logger
}

// NewAggregator wires the decoder and catalog; nil values fall back to defaults.
func NewAggregator(decoder *textdecode.Decoder, catalog *domain.Catalog, log *slog.Logger) *Aggregator {
	if decoder == nil {
		decoder = textdecode.Default()
	}
	if catalog == nil {
		catalog = domain.DefaultCatalog()
	}
	return &Aggregator{decoder: decoder, catalog: catalog, logger: log}
}

// FromListing reads every plain-text file in listing and returns the parsed
// articles in catalog order. Word documents are listed by the scanner but not parsed.
func (a *Aggregator) FromListing(listing *domain.Listing) []domain.ParsedArticle {
	var articles []domain.ParsedArticle
	for _, group := range listing.Groups() {
		for _, f := range group.Files {
			if f.Extension != textExtension {
				continue
			}
			text := a.decoder.DecodeFile(f.Path)
			articles = append(articles, article.Build(f.Filename, group.Department, text, f.SizeKB, f.Modified))
		}
	}

	a.catalog.SortArticles(articles)
	a.debug("aggregated local submissions", "articles", len(articles))
	return articles
}

// Merge concatenates article lists from several sources and re-sorts them.
// Ties keep source order, then within-source order.
func (a *Aggregator) Merge(lists ...[]domain.ParsedArticle) []domain.ParsedArticle {
	var merged []domain.ParsedArticle
	for _, list := range lists {
		merged = append(merged, list...)
	}
	a.catalog.SortArticles(merged)
	return merged
}

func (a *Aggregator) debug(msg string, args ...interface{}) {
	if a.logger != nil {
		a.logger.Debug(msg, args...)
	}
}
