package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"NewsletterDesk/internal/domain"
	"NewsletterDesk/internal/newsletter"
	"NewsletterDesk/internal/ports"
	"NewsletterDesk/internal/source"
	"NewsletterDesk/internal/submission"
)

// PipelineDeps wires all driven adapters into the assembly pipeline.
type PipelineDeps struct {
	Sources    *source.Registry
	Aggregator *submission.Aggregator
	Assembler  *newsletter.Assembler
	Publisher  ports.Publisher
	Logger     *slog.Logger
}

// Pipeline implements the collect → order → assemble → publish workflow.
type Pipeline struct {
	sources    *source.Registry
	aggregator *submission.Aggregator
	assembler  *newsletter.Assembler
	publisher  ports.Publisher
	logger     *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		sources:    deps.Sources,
		aggregator: deps.Aggregator,
		assembler:  deps.Assembler,
		publisher:  deps.Publisher,
		logger:     deps.Logger,
	}
}

// Collect gathers articles from the named sources ("all" expands to every
// registered one) and returns them in department order.
func (p *Pipeline) Collect(ctx context.Context, names []string) ([]domain.ParsedArticle, error) {
	if p.sources == nil {
		return nil, fmt.Errorf("source registry is not configured")
	}

	names = p.sources.Expand(names)
	if len(names) == 0 {
		return nil, fmt.Errorf("no submission source selected")
	}

	lists := make([][]domain.ParsedArticle, 0, len(names))
	for _, name := range names {
		src, err := p.sources.Resolve(name)
		if err != nil {
			return nil, err
		}

		articles, err := src.Collect(ctx)
		if err != nil {
			return nil, fmt.Errorf("collect %s: %w", name, err)
		}
		p.debug("source collected", "source", name, "articles", len(articles))
		lists = append(lists, articles)
	}

	return p.aggregator.Merge(lists...), nil
}

// Build collects articles, assembles the issue and publishes it. The document
// is returned even when no publisher is configured.
func (p *Pipeline) Build(ctx context.Context, names []string, header domain.Header) (string, error) {
	articles, err := p.Collect(ctx, names)
	if err != nil {
		return "", err
	}

	document := p.assembler.Assemble(articles, header)
	p.debug("issue assembled", "volume", header.Volume, "articles", len(articles), "bytes", len(document))

	if p.publisher == nil {
		return document, nil
	}
	if err := p.publisher.Publish(ctx, document); err != nil {
		return "", fmt.Errorf("publish issue: %w", err)
	}
	return document, nil
}

func (p *Pipeline) debug(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}
