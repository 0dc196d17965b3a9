package share

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/klauspost/compress/zip"
	"golang.org/x/text/unicode/norm"

	"NewsletterDesk/internal/article"
	"NewsletterDesk/internal/domain"
	"NewsletterDesk/internal/textdecode"
)

// errEntryTooLarge reports that the extracted entries exceeded their budget.
var errEntryTooLarge = errors.New("archive entries exceed size limit")

// extractArticles parses every non-empty .txt entry of a zip archive. The
// decompressed entries together may not exceed maxBytes.
func extractArticles(data []byte, decoder *textdecode.Decoder, maxBytes int64) ([]domain.ParsedArticle, *Error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, formatError("ダウンロードしたZIPファイルが破損しています", err)
	}

	remaining := maxBytes
	var articles []domain.ParsedArticle
	for _, f := range zr.File {
		if f.FileInfo().IsDir() || strings.HasSuffix(f.Name, "/") {
			continue
		}
		if !strings.EqualFold(path.Ext(f.Name), ".txt") || f.UncompressedSize64 == 0 {
			continue
		}

		raw, err := readEntry(f, remaining)
		if errors.Is(err, errEntryTooLarge) {
			return nil, formatError("ダウンロードしたファイルが大きすぎます", err)
		}
		if err != nil {
			return nil, formatError("ダウンロードしたZIPファイルが破損しています", err)
		}
		remaining -= int64(len(raw))

		filename := entryFilename(f.Name)
		fallback, _ := article.GroupKey(filename)
		text := decoder.DecodeLossy(raw)

		var modified *time.Time
		if !f.Modified.IsZero() {
			m := f.Modified
			modified = &m
		}
		articles = append(articles, article.Build(
			filename,
			fallback,
			text,
			math.Round(float64(f.UncompressedSize64)/1024*10)/10,
			modified,
		))
	}

	return articles, nil
}

// readEntry decompresses f, reading at most limit bytes.
func readEntry(f *zip.File, limit int64) ([]byte, error) {
	if f.UncompressedSize64 > uint64(limit) {
		return nil, fmt.Errorf("%s: %w", f.Name, errEntryTooLarge)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", f.Name, err)
	}
	defer rc.Close()

	raw, err := io.ReadAll(io.LimitReader(rc, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.Name, err)
	}
	if int64(len(raw)) > limit {
		return nil, fmt.Errorf("%s: %w", f.Name, errEntryTooLarge)
	}
	return raw, nil
}

// entryFilename is the percent-decoded base name, NFC-normalised since
// archives built on macOS carry decomposed kana.
func entryFilename(name string) string {
	base := path.Base(name)
	if decoded, err := url.PathUnescape(base); err == nil {
		base = decoded
	}
	return norm.NFC.String(base)
}
