package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"NewsletterDesk/internal/config"
	"NewsletterDesk/internal/domain"
	"NewsletterDesk/internal/infrastructure/localfs"
	"NewsletterDesk/internal/infrastructure/output"
	"NewsletterDesk/internal/infrastructure/share"
	"NewsletterDesk/internal/infrastructure/sources"
	"NewsletterDesk/internal/logging"
	"NewsletterDesk/internal/newsletter"
	"NewsletterDesk/internal/source"
	"NewsletterDesk/internal/submission"
	"NewsletterDesk/internal/textdecode"
	"NewsletterDesk/internal/usecase"
)

// Application wires configs to use cases.
type Application struct {
	cfg      config.Config
	scanner  *localfs.Scanner
	registry *source.Registry
	pipeline *usecase.Pipeline
}

// New builds a runnable application instance. Documents go to cfg.Output.Path,
// or to stdout when it is empty.
func New(cfg config.Config, baseLogger *slog.Logger, stdout io.Writer) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level, cfg.Logging.Format)
	}

	decoder, err := textdecode.New(cfg.Decoding.Encodings)
	if err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	catalog := cfg.Departments.BuildCatalog()

	scanner := localfs.NewScanner(baseLogger.With("component", "localfs"))
	aggregator := submission.NewAggregator(decoder, catalog, baseLogger.With("component", "aggregator"))
	client := share.NewClient(share.Options{
		PageTimeout:     cfg.Share.PageTimeout,
		DownloadTimeout: cfg.Share.DownloadTimeout,
		MaxArchiveBytes: cfg.Share.MaxArchiveMB << 20,
		UserAgent:       cfg.Share.UserAgent,
	}, decoder, catalog, baseLogger.With("component", "share"))

	registry := source.NewRegistry()
	registry.Register(sources.NewLocal(cfg.Submissions.Folder, scanner, aggregator, baseLogger.With("component", "source.local")))
	registry.Register(sources.NewShare(cfg.Share.URL, cfg.Share.Password, client, baseLogger.With("component", "source.share")))

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Sources:    registry,
		Aggregator: aggregator,
		Assembler:  newsletter.NewAssembler(catalog, cfg.Newsletter),
		Publisher:  output.NewPublisher(cfg.Output.Path, stdout),
		Logger:     baseLogger.With("component", "pipeline"),
	})

	return &Application{cfg: cfg, scanner: scanner, registry: registry, pipeline: pipeline}, nil
}

// Config returns the configuration the application was built from.
func (a *Application) Config() config.Config {
	return a.cfg
}

// ScanFolder lists the local submissions folder grouped by department.
func (a *Application) ScanFolder() *domain.Listing {
	return a.scanner.Scan(a.cfg.Submissions.Folder)
}

// Articles collects and orders articles from the named sources.
func (a *Application) Articles(ctx context.Context, sourceNames []string) ([]domain.ParsedArticle, error) {
	return a.pipeline.Collect(ctx, a.sourcesOrDefault(sourceNames))
}

// Build assembles and publishes the issue described by header.
func (a *Application) Build(ctx context.Context, sourceNames []string, header domain.Header) (string, error) {
	return a.pipeline.Build(ctx, a.sourcesOrDefault(sourceNames), header)
}

func (a *Application) sourcesOrDefault(names []string) []string {
	if len(names) > 0 {
		return names
	}
	return a.cfg.Sources
}
