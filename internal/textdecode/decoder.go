// Package textdecode recovers article text from bytes whose encoding is unknown.
package textdecode

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// UnreadablePlaceholder replaces the content of a file no encoding could decode.
const UnreadablePlaceholder = "（ファイルの読み込みに失敗しました）"

// DefaultEncodings is the order in which encodings are attempted.
var DefaultEncodings = []string{"utf-8", "utf-8-sig", "shift_jis", "windows-31j"}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// labelAliases maps Python codec names onto WHATWG labels.
var labelAliases = map[string]string{
	"cp932":    "windows-31j",
	"ms932":    "windows-31j",
	"mskanji":  "windows-31j",
	"ms_kanji": "windows-31j",
	"sjis":     "shift_jis",
}

type attempt struct {
	label  string
	decode func([]byte) (string, bool)
}

// Decoder tries a fixed list of encodings and keeps the first clean result.
type Decoder struct {
	attempts []attempt
}

// New builds a decoder for the given encoding labels. Labels other than
// "utf-8" and "utf-8-sig" are resolved through the WHATWG encoding index,
// after mapping codec names such as "cp932" onto their WHATWG label.
func New(labels []string) (*Decoder, error) {
	if len(labels) == 0 {
		labels = DefaultEncodings
	}

	d := &Decoder{attempts: make([]attempt, 0, len(labels))}
	for _, label := range labels {
		normalized := strings.ToLower(strings.TrimSpace(label))
		switch normalized {
		case "utf-8", "utf8", "utf_8":
			d.attempts = append(d.attempts, attempt{label: normalized, decode: decodeUTF8})
		case "utf-8-sig", "utf8-sig", "utf_8_sig":
			d.attempts = append(d.attempts, attempt{label: normalized, decode: decodeUTF8BOM})
		default:
			name := normalized
			if alias, ok := labelAliases[name]; ok {
				name = alias
			}
			enc, err := htmlindex.Get(name)
			if err != nil {
				return nil, fmt.Errorf("unknown encoding %q: %w", label, err)
			}
			d.attempts = append(d.attempts, attempt{label: normalized, decode: legacy(enc)})
		}
	}

	return d, nil
}

// Default returns a decoder for DefaultEncodings.
func Default() *Decoder {
	d, err := New(DefaultEncodings)
	if err != nil {
		panic(err)
	}
	return d
}

// Decode returns the text and the label of the first encoding that decoded b cleanly.
func (d *Decoder) Decode(b []byte) (string, string, error) {
	for _, a := range d.attempts {
		if text, ok := a.decode(b); ok {
			return text, a.label, nil
		}
	}
	return "", "", fmt.Errorf("no encoding matched %d bytes", len(b))
}

// DecodeFile reads path and decodes it, returning UnreadablePlaceholder on any failure.
func (d *Decoder) DecodeFile(path string) string {
	raw, err := os.ReadFile(path)
	if err != nil {
		return UnreadablePlaceholder
	}
	text, _, err := d.Decode(raw)
	if err != nil {
		return UnreadablePlaceholder
	}
	return text
}

// DecodeLossy decodes b, falling back to UTF-8 with replacement characters.
func (d *Decoder) DecodeLossy(b []byte) string {
	if text, _, err := d.Decode(b); err == nil {
		return text
	}
	return strings.ToValidUTF8(string(bytes.TrimPrefix(b, utf8BOM)), string(utf8.RuneError))
}

// A leading BOM is left to the utf-8-sig attempt so it never leaks into the text.
func decodeUTF8(b []byte) (string, bool) {
	if bytes.HasPrefix(b, utf8BOM) || !utf8.Valid(b) {
		return "", false
	}
	return string(b), true
}

func decodeUTF8BOM(b []byte) (string, bool) {
	b = bytes.TrimPrefix(b, utf8BOM)
	if !utf8.Valid(b) {
		return "", false
	}
	return string(b), true
}

// x/text decoders substitute U+FFFD instead of failing, so its presence marks a miss.
func legacy(enc encoding.Encoding) func([]byte) (string, bool) {
	return func(b []byte) (string, bool) {
		out, err := enc.NewDecoder().Bytes(b)
		if err != nil || bytes.ContainsRune(out, utf8.RuneError) {
			return "", false
		}
		return string(out), true
	}
}
