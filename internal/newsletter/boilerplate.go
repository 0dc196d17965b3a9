package newsletter

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"NewsletterDesk/internal/domain"
)

// Boilerplate is the organisation-specific copy around the submitted articles.
// Title, Masthead and Closing are text/template strings evaluated against the
// issue header ({{.Volume}}, {{.Year}}, {{.Month}}, {{.Day}}).
type Boilerplate struct {
	Banner              string   `yaml:"banner"`
	Title               string   `yaml:"title"`
	Masthead            []string `yaml:"masthead"`
	IntroHeading        string   `yaml:"introHeading"`
	IntroAttribution    string   `yaml:"introAttribution"`
	GreetingHeading     string   `yaml:"greetingHeading"`
	GreetingAttribution string   `yaml:"greetingAttribution"`
	ActivitiesHeading   string   `yaml:"activitiesHeading"`
	Placeholder         string   `yaml:"placeholder"`
	Closing             []string `yaml:"closing"`
}

// DefaultBoilerplate is the letterhead of メルマガいたしん.
func DefaultBoilerplate() Boilerplate {
	return Boilerplate{
		Banner: strings.Repeat("━", 20),
		Title:  "メルマガいたしん vol.{{.Volume}}　{{.Year}}年{{.Month}}月{{.Day}}日発行",
		Masthead: []string{
			"発行：板診会 広報部",
			"お問い合わせ：mmp@rmc-itabashi.jp",
		},
		IntroHeading:      "■はじめに",
		IntroAttribution:  "（板診会 広報部）",
		GreetingHeading:   "■会長挨拶",
		ActivitiesHeading: "■各部・プロジェクトの活動報告",
		Placeholder:       "（未提出）",
		Closing: []string{
			"メルマガいたしん vol.{{.Volume}} をお読みいただきありがとうございました。",
			"",
			"■読者アンケートへのご協力をお願いします",
			"https://example.com/itashin/survey",
			"",
			"■配信停止・変更・お問い合わせ",
			"mmp@rmc-itabashi.jp",
			"",
			"メルマガいたしんは奇数月の15日に発行しています。",
			"",
			"発行人：板診会 会長",
			"編集：板診会 広報部",
		},
	}
}

// WithDefaults fills empty fields from DefaultBoilerplate. The attribution
// lines are optional and stay empty.
func (b Boilerplate) WithDefaults() Boilerplate {
	d := DefaultBoilerplate()
	if b.Banner == "" {
		b.Banner = d.Banner
	}
	if b.Title == "" {
		b.Title = d.Title
	}
	if b.Masthead == nil {
		b.Masthead = d.Masthead
	}
	if b.IntroHeading == "" {
		b.IntroHeading = d.IntroHeading
	}
	if b.GreetingHeading == "" {
		b.GreetingHeading = d.GreetingHeading
	}
	if b.ActivitiesHeading == "" {
		b.ActivitiesHeading = d.ActivitiesHeading
	}
	if b.Placeholder == "" {
		b.Placeholder = d.Placeholder
	}
	if b.Closing == nil {
		b.Closing = d.Closing
	}
	return b
}

// Validate parses every templated line so a broken letterhead is caught at load time.
func (b Boilerplate) Validate() error {
	lines := append([]string{b.Title}, b.Masthead...)
	lines = append(lines, b.Closing...)
	for _, line := range lines {
		if _, err := template.New("line").Option("missingkey=error").Parse(line); err != nil {
			return fmt.Errorf("boilerplate line %q: %w", line, err)
		}
	}
	return nil
}

type headerData struct {
	Volume int
	Year   int
	Month  int
	Day    int
}

// render evaluates one templated line. Lines that fail to parse or execute
// are emitted verbatim.
func render(line string, h domain.Header) string {
	if !strings.Contains(line, "{{") {
		return line
	}
	tmpl, err := template.New("line").Option("missingkey=error").Parse(line)
	if err != nil {
		return line
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, headerData{Volume: h.Volume, Year: h.Year, Month: h.Month, Day: h.Day}); err != nil {
		return line
	}
	return buf.String()
}
