package share

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/publicsuffix"
)

type state int

const (
	stateUnauthenticated state = iota
	stateAwaitingPassword
	stateAuthenticated
	stateFailed
)

func (s state) String() string {
	switch s {
	case stateUnauthenticated:
		return "unauthenticated"
	case stateAwaitingPassword:
		return "awaiting-password"
	case stateAuthenticated:
		return "authenticated"
	case stateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// session carries the cookie jar and CSRF token across the share handshake.
// It is created per fetch and never reused.
type session struct {
	client       *http.Client
	link         Link
	userAgent    string
	pageTimeout  time.Duration
	state        state
	requestToken string
	err          *Error
}

func newSession(link Link, transport http.RoundTripper, userAgent string, pageTimeout time.Duration) (*session, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	return &session{
		client:      &http.Client{Jar: jar, Transport: transport},
		link:        link,
		userAgent:   userAgent,
		pageTimeout: pageTimeout,
		state:       stateUnauthenticated,
	}, nil
}

// handshake drives the session until it is authenticated or failed.
func (s *session) handshake(ctx context.Context, password string) *Error {
	for {
		switch s.state {
		case stateUnauthenticated:
			s.openPage(ctx)
		case stateAwaitingPassword:
			s.authenticate(ctx, password)
		case stateAuthenticated:
			return nil
		case stateFailed:
			return s.err
		}
	}
}

func (s *session) fail(err *Error) {
	s.state = stateFailed
	s.err = err
}

// openPage loads the share viewer. A requesttoken form field means the share
// is password protected.
func (s *session) openPage(ctx context.Context) {
	doc, status, err := s.fetchPage(ctx, http.MethodGet, s.link.PageURL(), nil, "")
	if err != nil {
		s.fail(err)
		return
	}
	if !isSuccess(status) {
		s.fail(statusError("共有ページの取得", status))
		return
	}

	token, ok := requestToken(doc)
	if !ok {
		s.state = stateAuthenticated
		return
	}
	s.requestToken = token
	s.state = stateAwaitingPassword
}

// authenticate posts the password form. The service answers a wrong password
// with the same form again, so the page content decides the outcome.
func (s *session) authenticate(ctx context.Context, password string) {
	form := url.Values{}
	form.Set("requesttoken", s.requestToken)
	form.Set("password", password)

	doc, status, err := s.fetchPage(ctx, http.MethodPost, s.link.AuthenticateURL(), strings.NewReader(form.Encode()), s.link.PageURL())
	if err != nil {
		s.fail(err)
		return
	}
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		s.fail(authError("パスワードが正しくありません"))
		return
	}
	if !isSuccess(status) {
		s.fail(statusError("パスワード認証", status))
		return
	}

	if _, hasToken := requestToken(doc); hasToken && hasPasswordInput(doc) {
		s.fail(authError("パスワードが正しくありません"))
		return
	}
	s.state = stateAuthenticated
}

func (s *session) fetchPage(ctx context.Context, method, target string, body io.Reader, referer string) (*goquery.Document, int, *Error) {
	ctx, cancel := context.WithTimeout(ctx, s.pageTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, 0, inputError("共有URLの形式が正しくありません")
	}
	s.decorate(req)
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if referer != "" {
		req.Header.Set("Referer", referer)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, 0, transportError(err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, resp.StatusCode, nil
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, transportError(err)
	}
	return doc, resp.StatusCode, nil
}

// openDownload starts the archive request. The caller owns the response body.
func (s *session) openDownload(ctx context.Context) (*http.Response, *Error) {
	if s.state != stateAuthenticated {
		return nil, authError("共有フォルダーへの認証が完了していません")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.link.DownloadURL(), nil)
	if err != nil {
		return nil, inputError("共有URLの形式が正しくありません")
	}
	s.decorate(req)
	req.Header.Set("Referer", s.link.PageURL())

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, transportError(err)
	}

	if !isSuccess(resp.StatusCode) {
		resp.Body.Close()
		return nil, statusError("ダウンロード", resp.StatusCode)
	}

	contentType := strings.ToLower(resp.Header.Get("Content-Type"))
	if !strings.Contains(contentType, "zip") && !strings.Contains(contentType, "octet-stream") {
		resp.Body.Close()
		s.fail(authError("ダウンロードできませんでした。パスワードを確認してください"))
		return nil, s.err
	}

	return resp, nil
}

func (s *session) decorate(req *http.Request) {
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}
}

func requestToken(doc *goquery.Document) (string, bool) {
	sel := doc.Find(`input[name="requesttoken"]`).First()
	if sel.Length() == 0 {
		return "", false
	}
	return sel.AttrOr("value", ""), true
}

func hasPasswordInput(doc *goquery.Document) bool {
	return doc.Find(`input[type="password"], input[name="password"]`).Length() > 0
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
