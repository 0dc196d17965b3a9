package usecase

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NewsletterDesk/internal/domain"
	"NewsletterDesk/internal/infrastructure/localfs"
	"NewsletterDesk/internal/infrastructure/output"
	"NewsletterDesk/internal/infrastructure/sources"
	"NewsletterDesk/internal/newsletter"
	"NewsletterDesk/internal/source"
	"NewsletterDesk/internal/submission"
)

type staticSource struct {
	name     string
	articles []domain.ParsedArticle
	err      error
}

func (s staticSource) Name() string { return s.name }

func (s staticSource) Collect(context.Context) ([]domain.ParsedArticle, error) {
	return s.articles, s.err
}

func newTestPipeline(reg *source.Registry, out *bytes.Buffer) *Pipeline {
	deps := PipelineDeps{
		Sources:    reg,
		Aggregator: submission.NewAggregator(nil, nil, nil),
		Assembler:  newsletter.NewAssembler(nil, newsletter.DefaultBoilerplate()),
	}
	if out != nil {
		deps.Publisher = output.NewPublisher("", out)
	}
	return NewPipeline(deps)
}

func TestBuildFromLocalFolder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "20240701_100000_広報部.txt"), []byte("【広報部】\n\n活動報告です"), 0o644))

	reg := source.NewRegistry()
	reg.Register(sources.NewLocal(dir, localfs.NewScanner(nil), submission.NewAggregator(nil, nil, nil), nil))

	var out bytes.Buffer
	doc, err := newTestPipeline(reg, &out).Build(context.Background(), []string{"local"}, domain.Header{Volume: 30, Year: 2024, Month: 7, Day: 15})
	require.NoError(t, err)

	assert.Contains(t, doc, "\n【広報部】\n\n活動報告です\n")
	assert.Contains(t, doc, "メルマガいたしん vol.30　2024年7月15日発行")
	assert.Contains(t, doc, "メルマガいたしん vol.30 をお読みいただきありがとうございました。")
	assert.Equal(t, doc+"\n", out.String())
}

func TestCollectMergesSources(t *testing.T) {
	t.Parallel()

	reg := source.NewRegistry()
	reg.Register(staticSource{name: "local", articles: []domain.ParsedArticle{{Filename: "l", Department: "その他"}}})
	reg.Register(staticSource{name: "share", articles: []domain.ParsedArticle{{Filename: "s", Department: "はじめに"}}})

	articles, err := newTestPipeline(reg, nil).Collect(context.Background(), []string{"all"})
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, "s", articles[0].Filename)
	assert.Equal(t, "l", articles[1].Filename)
}

func TestBuildPropagatesSourceError(t *testing.T) {
	t.Parallel()

	cause := errors.New("share down")
	reg := source.NewRegistry()
	reg.Register(staticSource{name: "share", err: cause})

	var out bytes.Buffer
	_, err := newTestPipeline(reg, &out).Build(context.Background(), []string{"share"}, domain.Header{Volume: 1})
	require.ErrorIs(t, err, cause)
	assert.Zero(t, out.Len())
}

func TestCollectUnknownSource(t *testing.T) {
	t.Parallel()

	_, err := newTestPipeline(source.NewRegistry(), nil).Collect(context.Background(), []string{"ftp"})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "ftp"))
}
