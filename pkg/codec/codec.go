package codec

import (
	"strings"

	"github.com/aretw0/morse/pkg/alphabet"
)

// Separators of a Morse stream. Consumers of encoded output depend on these
// exact widths.
const (
	Dot             = alphabet.Dot
	Dash            = alphabet.Dash
	TokenSeparator  = " "
	LetterSeparator = "   "
	WordSeparator   = "       "
)

// Codec encodes and decodes Morse streams against one alphabet table.
type Codec struct {
	table *alphabet.Table
}

// Report carries the result of an operation together with counters.
type Report struct {
	Output  string `json:"output"`
	Words   int    `json:"words"`
	Letters int    `json:"letters"`
	// Dropped counts input characters that produced no output: filtered
	// characters when encoding, unknown tokens when decoding.
	Dropped int `json:"dropped"`
}

var defaultCodec = New(alphabet.Default())

// New creates a codec for table. A nil table selects the default alphabet.
func New(table *alphabet.Table) *Codec {
	if table == nil {
		table = alphabet.Default()
	}
	return &Codec{table: table}
}

// Default returns the codec for the default alphabet.
func Default() *Codec {
	return defaultCodec
}

// Table returns the alphabet the codec uses.
func (c *Codec) Table() *alphabet.Table {
	return c.table
}

// Encode sanitizes text and converts it into a Morse stream.
// The result is empty if and only if text sanitizes to nothing.
func (c *Codec) Encode(text string) string {
	return c.EncodeReport(text).Output
}

// EncodeReport is Encode with counters.
func (c *Codec) EncodeReport(text string) Report {
	canonical, dropped := sanitize(text)
	r := c.encodeCanonical(canonical)
	r.Dropped += dropped
	return r
}

// EncodeCanonical converts canonical text (see Sanitize) into a Morse stream
// without sanitizing it first.
func (c *Codec) EncodeCanonical(canonical string) string {
	return c.encodeCanonical(canonical).Output
}

func (c *Codec) encodeCanonical(canonical string) Report {
	var r Report
	words := make([]string, 0, strings.Count(canonical, " ")+1)

	for _, word := range strings.Split(canonical, " ") {
		if word == "" {
			continue
		}

		letters := make([]string, 0, len(word))
		for _, ch := range word {
			code, ok := c.table.Code(ch)
			if !ok {
				// Only reachable with a partial custom table.
				r.Dropped++
				continue
			}
			letters = append(letters, code)
		}
		if len(letters) == 0 {
			continue
		}

		r.Letters += len(letters)
		words = append(words, strings.Join(letters, LetterSeparator))
	}

	r.Words = len(words)
	r.Output = strings.Join(words, WordSeparator)
	return r
}

// Decode converts a Morse stream into space-separated words. Letters come
// back uppercase. Unknown tokens are skipped and words that decode to
// nothing are omitted.
func (c *Codec) Decode(morse string) string {
	return c.DecodeReport(morse).Output
}

// DecodeReport is Decode with counters.
func (c *Codec) DecodeReport(morse string) Report {
	var r Report
	words := make([]string, 0)

	for _, group := range strings.Split(strings.TrimSpace(morse), WordSeparator) {
		var word strings.Builder
		for _, token := range strings.Split(group, LetterSeparator) {
			sym, ok := c.table.Symbol(token)
			if !ok {
				if token != "" {
					r.Dropped++
				}
				continue
			}
			word.WriteRune(sym)
			r.Letters++
		}

		if word.Len() > 0 {
			words = append(words, word.String())
		}
	}

	r.Words = len(words)
	r.Output = strings.Join(words, " ")
	return r
}

// Encode converts text with the default alphabet.
func Encode(text string) string {
	return defaultCodec.Encode(text)
}

// Decode converts a Morse stream with the default alphabet.
func Decode(morse string) string {
	return defaultCodec.Decode(morse)
}

// LooksLikeMorse reports whether s consists only of dots, dashes and
// whitespace, with at least one dot or dash.
func LooksLikeMorse(s string) bool {
	seen := false
	for _, r := range s {
		switch r {
		case '.', '-':
			seen = true
		case ' ', '\t', '\n', '\r':
		default:
			return false
		}
	}
	return seen
}
