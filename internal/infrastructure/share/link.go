package share

import (
	"net/url"
	"regexp"
	"strings"
)

var tokenExpr = regexp.MustCompile(`/s/([A-Za-z0-9]+)`)

// Link is a parsed public share URL.
type Link struct {
	Origin string
	Token  string
}

// ParseLink extracts the origin and share token from a URL such as
// https://drive.example.jp/index.php/s/5rX5tfHQep43eZr.
func ParseLink(raw string) (Link, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Link{}, inputError("共有URLが設定されていません")
	}

	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return Link{}, inputError("共有URLの形式が正しくありません")
	}

	m := tokenExpr.FindStringSubmatch(u.Path)
	if m == nil {
		return Link{}, inputError("共有URLに /s/<トークン> が含まれていません")
	}

	return Link{Origin: u.Scheme + "://" + u.Host, Token: m[1]}, nil
}

// PageURL is the public share viewer.
func (l Link) PageURL() string {
	return l.Origin + "/index.php/s/" + l.Token
}

// AuthenticateURL receives the password form.
func (l Link) AuthenticateURL() string {
	return l.PageURL() + "/authenticate/showShare"
}

// DownloadURL returns the whole share as one archive.
func (l Link) DownloadURL() string {
	return l.PageURL() + "/download"
}
