package alphabet

import (
	"fmt"
	"sort"
	"strings"
)

// Names of the built-in tables.
const (
	NameInternational = "international"
	NameLegacy        = "legacy"
)

// internationalPatterns maps symbols to their ITU-R M.1677 patterns.
var internationalPatterns = map[rune]string{
	// Letters
	'a': ".-",
	'b': "-...",
	'c': "-.-.",
	'd': "-..",
	'e': ".",
	'f': "..-.",
	'g': "--.",
	'h': "....",
	'i': "..",
	'j': ".---",
	'k': "-.-",
	'l': ".-..",
	'm': "--",
	'n': "-.",
	'o': "---",
	'p': ".--.",
	'q': "--.-",
	'r': ".-.",
	's': "...",
	't': "-",
	'u': "..-",
	'v': "...-",
	'w': ".--",
	'x': "-..-",
	'y': "-.--",
	'z': "--..",

	// Numbers
	'0': "-----",
	'1': ".----",
	'2': "..---",
	'3': "...--",
	'4': "....-",
	'5': ".....",
	'6': "-....",
	'7': "--...",
	'8': "---..",
	'9': "----.",
}

// legacyCodes is the historical data set, wire notation, kept as shipped.
// C carries a four-dash token, 1/2/3 contain a double space and 8 starts
// with a four-dash token; 0 is the standard code for 1.
var legacyCodes = []Entry{
	{'a', ". ---"},
	{'b', "--- . . ."},
	{'c', "--- . ---- ."},
	{'d', "--- . ."},
	{'e', "."},
	{'f', ". . --- ."},
	{'g', "--- --- ."},
	{'h', ". . . ."},
	{'i', ". ."},
	{'j', ". --- --- ---"},
	{'k', "--- . ---"},
	{'l', ". --- . ."},
	{'m', "--- ---"},
	{'n', "--- ."},
	{'o', "--- --- ---"},
	{'p', ". --- --- ."},
	{'q', "--- --- . ---"},
	{'r', ". --- ."},
	{'s', ". . ."},
	{'t', "---"},
	{'u', ". . ---"},
	{'v', ". . . ---"},
	{'w', ". --- ---"},
	{'x', "--- . . ---"},
	{'y', "--- . --- ---"},
	{'z', "--- --- . ."},
	{'0', ". --- --- --- ---"},
	{'1', ". .  --- --- ---"},
	{'2', ". . .  --- ---"},
	{'3', ". . . .  ---"},
	{'4', ". . . . ."},
	{'5', "--- . . . ."},
	{'6', "--- --- . . ."},
	{'7', "--- --- --- . ."},
	{'8', "---- --- --- --- ."},
	{'9', "--- --- --- --- ---"},
}

var (
	international = MustNew(NameInternational, expandAll(internationalPatterns))
	legacy        = MustNew(NameLegacy, legacyCodes)

	builtin = map[string]*Table{
		NameInternational: international,
		"itu":             international,
		NameLegacy:        legacy,
	}
)

// International returns the ITU-R M.1677 table.
func International() *Table {
	return international
}

// Legacy returns the historical table.
func Legacy() *Table {
	return legacy
}

// Default is the table used when none is configured.
func Default() *Table {
	return international
}

// ByName resolves a built-in table. Matching is case-insensitive.
func ByName(name string) (*Table, error) {
	if t, ok := builtin[strings.ToLower(strings.TrimSpace(name))]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlphabet, name)
}

// Names lists the built-in table names.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for n := range builtin {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func expandAll(patterns map[rune]string) []Entry {
	entries := make([]Entry, 0, len(patterns))
	for sym, p := range patterns {
		code, err := Expand(p)
		if err != nil {
			panic(fmt.Sprintf("alphabet: bad pattern for %q: %v", sym, err))
		}
		entries = append(entries, Entry{Symbol: sym, Code: code})
	}
	return entries
}
