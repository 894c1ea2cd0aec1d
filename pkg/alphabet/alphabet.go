package alphabet

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// Wire notation for a single dot or dash token.
const (
	Dot  = "."
	Dash = "---"
)

// Entry pairs a symbol with its code in wire notation.
type Entry struct {
	Symbol rune   `json:"symbol" yaml:"symbol"`
	Code   string `json:"code" yaml:"code"`
}

// Table is an immutable, injective symbol <-> code mapping.
type Table struct {
	name        string
	fingerprint string
	forward     map[rune]string
	reverse map[string]rune
	entries []Entry
}

// New builds a table from entries. Letters are stored lowercase and may be
// given in either case.
func New(name string, entries []Entry) (*Table, error) {
	t := &Table{
		name:    name,
		forward: make(map[rune]string, len(entries)),
		reverse: make(map[string]rune, len(entries)),
		entries: make([]Entry, 0, len(entries)),
	}

	for _, e := range entries {
		sym := foldSymbol(e.Symbol)
		if !IsSymbol(sym) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSymbol, e.Symbol)
		}
		if e.Code == "" {
			return nil, fmt.Errorf("%w: symbol %q", ErrEmptyCode, sym)
		}
		if _, dup := t.forward[sym]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSymbol, sym)
		}
		if other, taken := t.reverse[e.Code]; taken {
			return nil, fmt.Errorf("%w: %q is used by both %q and %q", ErrAmbiguousCode, e.Code, displaySymbol(other), displaySymbol(sym))
		}

		t.forward[sym] = e.Code
		t.reverse[e.Code] = displaySymbol(sym)
		t.entries = append(t.entries, Entry{Symbol: sym, Code: e.Code})
	}

	sort.SliceStable(t.entries, func(i, j int) bool {
		return symbolOrder(t.entries[i].Symbol) < symbolOrder(t.entries[j].Symbol)
	})

	h := sha256.New()
	for _, e := range t.entries {
		fmt.Fprintf(h, "%c\t%s\n", e.Symbol, e.Code)
	}
	t.fingerprint = hex.EncodeToString(h.Sum(nil))[:16]

	return t, nil
}

// MustNew is like New but panics on error. Intended for package-level tables.
func MustNew(name string, entries []Entry) *Table {
	t, err := New(name, entries)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the table name.
func (t *Table) Name() string {
	return t.name
}

// Fingerprint identifies the table contents independently of its name.
// Tables with the same entries share a fingerprint.
func (t *Table) Fingerprint() string {
	return t.fingerprint
}

// Len returns the number of symbols in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// Code returns the code for sym. Letters match in either case.
func (t *Table) Code(sym rune) (string, bool) {
	code, ok := t.forward[foldSymbol(sym)]
	return code, ok
}

// Symbol returns the symbol for code. Letters come back uppercase.
// A code outside the table reports false; callers skip it.
func (t *Table) Symbol(code string) (rune, bool) {
	sym, ok := t.reverse[code]
	return sym, ok
}

// Entries returns a copy of the table, letters first then digits.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// IsLetter reports whether r is a lowercase ASCII letter.
func IsLetter(r rune) bool {
	return r >= 'a' && r <= 'z'
}

// IsDigit reports whether r is an ASCII digit.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsSymbol reports whether r is a symbol a table can hold (after folding).
func IsSymbol(r rune) bool {
	return IsLetter(r) || IsDigit(r)
}

// Expand converts a compact pattern such as ".-" into wire notation (". ---").
func Expand(pattern string) (string, error) {
	if pattern == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidPattern)
	}
	tokens := make([]string, 0, len(pattern))
	for _, r := range pattern {
		switch r {
		case '.':
			tokens = append(tokens, Dot)
		case '-':
			tokens = append(tokens, Dash)
		default:
			return "", fmt.Errorf("%w: %q", ErrInvalidPattern, pattern)
		}
	}
	return strings.Join(tokens, " "), nil
}

// Compact converts a wire notation code back into a ".-" pattern.
func Compact(code string) (string, error) {
	if code == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidPattern)
	}
	var b strings.Builder
	for _, tok := range strings.Split(code, " ") {
		switch tok {
		case Dot:
			b.WriteByte('.')
		case Dash:
			b.WriteByte('-')
		default:
			return "", fmt.Errorf("%w: token %q in %q", ErrInvalidPattern, tok, code)
		}
	}
	return b.String(), nil
}

func foldSymbol(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

func displaySymbol(r rune) rune {
	if IsLetter(r) {
		return r - ('a' - 'A')
	}
	return r
}

// letters sort before digits, each in ascending order
func symbolOrder(r rune) int {
	if IsLetter(r) {
		return int(r - 'a')
	}
	return 26 + int(r-'0')
}
