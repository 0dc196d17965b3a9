// Package newsletter renders the final plain-text issue.
package newsletter

import (
	"strings"

	"NewsletterDesk/internal/domain"
)

// Assembler lays out articles between the boilerplate blocks.
type Assembler struct {
	catalog     *domain.Catalog
	boilerplate Boilerplate
}

// NewAssembler wires the catalog that names the special sections. Empty
// boilerplate fields take their defaults.
func NewAssembler(catalog *domain.Catalog, bp Boilerplate) *Assembler {
	if catalog == nil {
		catalog = domain.DefaultCatalog()
	}
	return &Assembler{catalog: catalog, boilerplate: bp.WithDefaults()}
}

// Assemble renders the issue. Articles are emitted in the given order; the
// introduction and greeting sections pick their articles by exact department match.
func (a *Assembler) Assemble(articles []domain.ParsedArticle, header domain.Header) string {
	bp := a.boilerplate
	var lines []string
	emit := func(l ...string) { lines = append(lines, l...) }

	emit(bp.Banner, "", render(bp.Title, header))
	for _, m := range bp.Masthead {
		emit(render(m, header))
	}
	emit(bp.Banner, "", "")

	intro := sectionBody(articles, a.catalog.Intro())
	if intro == "" {
		intro = strings.TrimSpace(header.IntroFallback)
	}
	emit(bp.IntroHeading, "", orPlaceholder(intro, bp.Placeholder), "")
	if bp.IntroAttribution != "" {
		emit(bp.IntroAttribution, "")
	}
	emit("")

	greeting := sectionBody(articles, a.catalog.Leadership())
	emit(bp.GreetingHeading, "", orPlaceholder(greeting, bp.Placeholder), "")
	if bp.GreetingAttribution != "" {
		emit(bp.GreetingAttribution, "")
	}
	emit("")

	emit(bp.ActivitiesHeading, "")
	for _, art := range articles {
		if a.catalog.IsSpecial(art.Department) {
			continue
		}
		emit("【"+art.Department+"】", "", orPlaceholder(strings.TrimSpace(art.Body), bp.Placeholder), "", "")
	}

	emit(bp.Banner)
	for _, c := range bp.Closing {
		emit(render(c, header))
	}
	emit(bp.Banner)

	return strings.Join(lines, "\n")
}

// sectionBody joins the bodies of every article filed under dept.
func sectionBody(articles []domain.ParsedArticle, dept string) string {
	var parts []string
	for _, art := range articles {
		if art.Department != dept {
			continue
		}
		if body := strings.TrimSpace(art.Body); body != "" {
			parts = append(parts, body)
		}
	}
	return strings.Join(parts, "\n\n")
}

func orPlaceholder(body, placeholder string) string {
	if body == "" {
		return placeholder
	}
	return body
}
