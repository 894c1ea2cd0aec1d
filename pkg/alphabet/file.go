package alphabet

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// FileEntry is one row of an alphabet file. Either Code (wire notation) or
// Pattern (compact ".-" notation) must be set.
type FileEntry struct {
	Symbol  string `yaml:"symbol" json:"symbol"`
	Code    string `yaml:"code,omitempty" json:"code,omitempty"`
	Pattern string `yaml:"pattern,omitempty" json:"pattern,omitempty"`
}

// File represents the structure of an alphabet file.
type File struct {
	Name    string      `yaml:"name" json:"name"`
	Entries []FileEntry `yaml:"entries" json:"entries"`
}

// LoadFile reads an alphabet file (YAML, or JSON by extension) and builds a Table.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read alphabet file: %w", err)
	}

	var f File
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	if f.Name == "" {
		f.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return f.Table()
}

// Table validates the file rows and builds a Table from them.
func (f File) Table() (*Table, error) {
	entries := make([]Entry, 0, len(f.Entries))
	for i, fe := range f.Entries {
		if utf8.RuneCountInString(fe.Symbol) != 1 {
			return nil, fmt.Errorf("entry %d: %w: %q", i, ErrInvalidSymbol, fe.Symbol)
		}
		sym, _ := utf8.DecodeRuneInString(fe.Symbol)

		code := fe.Code
		if code == "" && fe.Pattern != "" {
			expanded, err := Expand(fe.Pattern)
			if err != nil {
				return nil, fmt.Errorf("entry %d: %w", i, err)
			}
			code = expanded
		}
		entries = append(entries, Entry{Symbol: sym, Code: code})
	}
	return New(f.Name, entries)
}

// Resolve returns a built-in table by name, or loads it from disk when the
// reference looks like a file path.
func Resolve(ref string) (*Table, error) {
	if ref == "" {
		return Default(), nil
	}
	if t, err := ByName(ref); err == nil {
		return t, nil
	}
	switch strings.ToLower(filepath.Ext(ref)) {
	case ".yaml", ".yml", ".json":
		return LoadFile(ref)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlphabet, ref)
}

// FileFromTable converts a table into its file form. Codes that have a
// compact pattern are written as patterns; the rest keep the wire notation.
func FileFromTable(t *Table) File {
	f := File{Name: t.Name()}
	for _, e := range t.Entries() {
		fe := FileEntry{Symbol: string(displaySymbol(e.Symbol))}
		if pattern, err := Compact(e.Code); err == nil {
			fe.Pattern = pattern
		} else {
			fe.Code = e.Code
		}
		f.Entries = append(f.Entries, fe)
	}
	return f
}
