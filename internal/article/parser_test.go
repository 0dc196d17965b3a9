package article

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantDept string
		wantBody string
	}{
		{
			name:     "label with blank line",
			input:    "【広報部】\n\n活動報告です",
			wantDept: "広報部",
			wantBody: "活動報告です",
		},
		{
			name:     "label without blank line",
			input:    "【研究部】\n一行目\n\n二行目",
			wantDept: "研究部",
			wantBody: "一行目\n\n二行目",
		},
		{
			name:     "no label",
			input:    "plain text\nmore text",
			wantDept: "",
			wantBody: "plain text\nmore text",
		},
		{
			name:     "label only",
			input:    "【その他】",
			wantDept: "その他",
			wantBody: "",
		},
		{
			name:     "empty label",
			input:    "【】\n\n本文",
			wantDept: "",
			wantBody: "本文",
		},
		{
			name:     "crlf and surrounding whitespace",
			input:    "\r\n  【セミナー部】\r\n\r\n  本文です  \r\n\r\n",
			wantDept: "セミナー部",
			wantBody: "本文です",
		},
		{
			name:     "label not on first line is body",
			input:    "前置き\n【広報部】\n本文",
			wantDept: "",
			wantBody: "前置き\n【広報部】\n本文",
		},
		{
			name:     "only one blank line skipped",
			input:    "【広報部】\n\n\n本文",
			wantDept: "広報部",
			wantBody: "本文",
		},
		{
			name:     "empty input",
			input:    "",
			wantDept: "",
			wantBody: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			dept, body := Parse(tt.input)
			assert.Equal(t, tt.wantDept, dept)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"広報部", "活動報告です"},
		{"会長挨拶", "  皆さま\nこんにちは。\n\n今月もよろしくお願いします。 \n"},
		{"板橋区簡易型BCP策定支援事業", "第一段落\n第二段落"},
	}
	for _, p := range pairs {
		dept, body := Parse("【" + p[0] + "】\n\n" + p[1])
		assert.Equal(t, p[0], dept)
		assert.Equal(t, strings.TrimSpace(p[1]), body)
	}
}

func TestPreview(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "一行目 二行目", Preview("一行目\n二行目"))

	long := strings.Repeat("あ", 100)
	assert.Equal(t, strings.Repeat("あ", 80), Preview(long))
}
