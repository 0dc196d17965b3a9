package submission

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"

	"NewsletterDesk/internal/domain"
	"NewsletterDesk/internal/infrastructure/localfs"
	"NewsletterDesk/internal/textdecode"
)

func writeFile(t *testing.T, dir, name string, content []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), content, 0o644))
}

func TestFromListingOrdersByCatalog(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "20240701_080000_その他.txt", []byte("【その他】\n\nお知らせ"))
	sjis, err := japanese.ShiftJIS.NewEncoder().Bytes([]byte("【はじめに】\n\n今月号のご案内"))
	require.NoError(t, err)
	writeFile(t, dir, "20240701_090000_はじめに.txt", sjis)
	writeFile(t, dir, "20240701_100000_広報部.txt", []byte("見出しなしの本文"))
	writeFile(t, dir, "20240701_110000_misc.txt", []byte("【研究部】\n\n研究会報告"))
	writeFile(t, dir, "原稿_（セミナー部）.docx", []byte("PK"))

	listing := localfs.NewScanner(nil).Scan(dir)
	articles := NewAggregator(nil, nil, nil).FromListing(listing)

	require.Len(t, articles, 4)
	var depts []string
	for _, a := range articles {
		depts = append(depts, a.Department)
	}
	assert.Equal(t, []string{"はじめに", "研究部", "広報部", "その他"}, depts)

	assert.Equal(t, "今月号のご案内", articles[0].Body)
	assert.Equal(t, "見出しなしの本文", articles[2].Body)
	assert.Equal(t, "20240701_110000_misc.txt", articles[1].Filename)
	assert.Equal(t, articles[1].Body, articles[1].Preview)
}

func TestFromListingUnreadableFileDegrades(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "20240701_080000_広報部.txt", []byte{0xFF, 0xFE, 0xFD})

	articles := NewAggregator(textdecode.Default(), domain.DefaultCatalog(), nil).
		FromListing(localfs.NewScanner(nil).Scan(dir))

	require.Len(t, articles, 1)
	assert.Equal(t, "広報部", articles[0].Department)
	assert.Equal(t, textdecode.UnreadablePlaceholder, articles[0].Body)
}

func TestMergeKeepsSourceOrderForTies(t *testing.T) {
	t.Parallel()

	local := []domain.ParsedArticle{{Filename: "l1", Department: "広報部"}, {Filename: "l2", Department: "外部"}}
	remote := []domain.ParsedArticle{{Filename: "r1", Department: "広報部"}, {Filename: "r2", Department: "はじめに"}}

	merged := NewAggregator(nil, nil, nil).Merge(local, remote)

	var names []string
	for _, a := range merged {
		names = append(names, a.Filename)
	}
	assert.Equal(t, []string{"r2", "l1", "r1", "l2"}, names)
}
