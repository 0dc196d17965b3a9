package domain

import "sort"

// Default department labels, in publication order.
const (
	DepartmentIntro      = "はじめに"
	DepartmentLeadership = "会長挨拶"
)

// DefaultDepartments is the catalog used when configuration does not override it.
var DefaultDepartments = []string{
	DepartmentIntro,
	DepartmentLeadership,
	"板診塾",
	"副会長",
	"理事長",
	"研究部",
	"セミナー部",
	"広報部",
	"板橋区簡易型BCP策定支援事業",
	"プロジェクト",
	"その他",
}

// Catalog is the fixed, ordered list of departments plus the two labels that
// get their own sections in the assembled document.
type Catalog struct {
	labels     []string
	rank       map[string]int
	intro      string
	leadership string
}

// NewCatalog precomputes ranks for labels. Duplicate labels keep their first position.
func NewCatalog(labels []string, intro, leadership string) *Catalog {
	c := &Catalog{
		labels:     append([]string(nil), labels...),
		rank:       make(map[string]int, len(labels)),
		intro:      intro,
		leadership: leadership,
	}
	for i, label := range labels {
		if _, ok := c.rank[label]; !ok {
			c.rank[label] = i
		}
	}
	return c
}

// DefaultCatalog returns the built-in catalog.
func DefaultCatalog() *Catalog {
	return NewCatalog(DefaultDepartments, DepartmentIntro, DepartmentLeadership)
}

// Labels returns a copy of the catalog order.
func (c *Catalog) Labels() []string {
	return append([]string(nil), c.labels...)
}

// Intro is the label whose article fills the introduction section.
func (c *Catalog) Intro() string { return c.intro }

// Leadership is the label whose article fills the greeting section.
func (c *Catalog) Leadership() string { return c.leadership }

// IsSpecial reports whether dept is placed in a dedicated section.
func (c *Catalog) IsSpecial(dept string) bool {
	return dept == c.intro || dept == c.leadership
}

// Rank returns the catalog position of dept. Unknown labels share a rank past the end.
func (c *Catalog) Rank(dept string) int {
	if r, ok := c.rank[dept]; ok {
		return r
	}
	return len(c.labels) + 1
}

// SortArticles orders articles by catalog rank in place, keeping input order for ties.
func (c *Catalog) SortArticles(articles []ParsedArticle) {
	sort.SliceStable(articles, func(i, j int) bool {
		return c.Rank(articles[i].Department) < c.Rank(articles[j].Department)
	})
}
