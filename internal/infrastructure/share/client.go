// Package share downloads article submissions from a public cloud-share link.
//
// The share service exposes a viewer page, a password form and a bulk download
// endpoint. A fetch walks those in order on a fresh cookie session, then parses
// the .txt entries of the returned zip archive.
package share

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"NewsletterDesk/internal/domain"
	"NewsletterDesk/internal/textdecode"
)

const (
	defaultPageTimeout     = 15 * time.Second
	defaultDownloadTimeout = 120 * time.Second
	defaultMaxArchiveBytes = 256 << 20
	defaultUserAgent       = "NewsletterDesk/1.0"
)

// Options tunes the client. Zero values fall back to defaults.
type Options struct {
	PageTimeout     time.Duration
	DownloadTimeout time.Duration
	// MaxArchiveBytes caps the download and, separately, the total size the
	// archive's text entries decompress to.
	MaxArchiveBytes int64
	UserAgent       string
	Transport       http.RoundTripper
}

// Client fetches and parses a share's submissions.
type Client struct {
	opts    Options
	decoder *textdecode.Decoder
	catalog *domain.Catalog
	logger  *slog.Logger
}

// NewClient wires decoding and ordering dependencies; nil values use defaults.
func NewClient(opts Options, decoder *textdecode.Decoder, catalog *domain.Catalog, log *slog.Logger) *Client {
	if opts.PageTimeout <= 0 {
		opts.PageTimeout = defaultPageTimeout
	}
	if opts.DownloadTimeout <= 0 {
		opts.DownloadTimeout = defaultDownloadTimeout
	}
	if opts.MaxArchiveBytes <= 0 {
		opts.MaxArchiveBytes = defaultMaxArchiveBytes
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if decoder == nil {
		decoder = textdecode.Default()
	}
	if catalog == nil {
		catalog = domain.DefaultCatalog()
	}
	return &Client{opts: opts, decoder: decoder, catalog: catalog, logger: log}
}

// FetchAll authenticates against shareURL, downloads the share archive and
// returns its articles in catalog order. Any failure is returned as *Error
// with a nil article list.
func (c *Client) FetchAll(ctx context.Context, shareURL, password string) ([]domain.ParsedArticle, error) {
	link, err := ParseLink(shareURL)
	if err != nil {
		return nil, err
	}

	sess, err := newSession(link, c.opts.Transport, c.opts.UserAgent, c.opts.PageTimeout)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Message: "通信の準備に失敗しました", Err: err}
	}

	if herr := sess.handshake(ctx, password); herr != nil {
		c.debug("share handshake failed", "token", link.Token, "state", sess.state, "kind", herr.Kind, "error", herr.Err)
		return nil, herr
	}
	c.debug("share handshake done", "token", link.Token, "password_protected", sess.requestToken != "")

	data, derr := c.download(ctx, sess)
	if derr != nil {
		c.debug("share download failed", "token", link.Token, "kind", derr.Kind, "error", derr.Err)
		return nil, derr
	}

	articles, aerr := extractArticles(data, c.decoder, c.opts.MaxArchiveBytes)
	if aerr != nil {
		return nil, aerr
	}

	c.catalog.SortArticles(articles)
	c.debug("share fetched", "token", link.Token, "archive_bytes", len(data), "articles", len(articles))
	return articles, nil
}

func (c *Client) download(ctx context.Context, sess *session) ([]byte, *Error) {
	ctx, cancel := context.WithTimeout(ctx, c.opts.DownloadTimeout)
	defer cancel()

	resp, herr := sess.openDownload(ctx)
	if herr != nil {
		return nil, herr
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.opts.MaxArchiveBytes+1))
	if err != nil {
		return nil, transportError(err)
	}
	if int64(len(data)) > c.opts.MaxArchiveBytes {
		return nil, formatError("ダウンロードしたファイルが大きすぎます", nil)
	}
	return data, nil
}

func (c *Client) debug(msg string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}
