package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/morse/pkg/alphabet"
	"github.com/aretw0/morse/pkg/domain"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// AlphabetMarkdown renders a table as a markdown chart.
func AlphabetMarkdown(table *alphabet.Table) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Alphabet: %s\n\n", table.Name())
	b.WriteString("| Symbol | Pattern | Code |\n")
	b.WriteString("|:------:|:--------|:-----|\n")
	for _, e := range table.Entries() {
		pattern, err := alphabet.Compact(e.Code)
		if err != nil {
			pattern = "-"
		}
		fmt.Fprintf(&b, "| %s | `%s` | `%s` |\n", strings.ToUpper(string(e.Symbol)), pattern, e.Code)
	}
	return b.String()
}

// TranslationMarkdown renders a translation report.
func TranslationMarkdown(t *domain.Translation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", t.Direction)
	fmt.Fprintf(&b, "**Input**\n\n```\n%s\n```\n\n", t.Input)
	fmt.Fprintf(&b, "**Output**\n\n```\n%s\n```\n\n", t.Output)
	fmt.Fprintf(&b, "| Alphabet | Words | Letters | Dropped | Cached |\n")
	fmt.Fprintf(&b, "|---|---|---|---|---|\n")
	fmt.Fprintf(&b, "| %s | %d | %d | %d | %t |\n", t.Alphabet, t.Words, t.Letters, t.Dropped, t.Cached)
	return b.String()
}
