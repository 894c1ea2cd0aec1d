package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/morse/pkg/alphabet"
)

// TreeOverlay marks symbols on the tree. Every node on the path to a
// highlighted symbol is styled as visited; the symbol itself as current.
type TreeOverlay struct {
	Highlight string
}

// GenerateMermaid produces a Mermaid flowchart of the dichotomic tree of a
// table: each edge adds one dot or dash to the code of its parent.
// Shapes:
// - Root: ((Circle))
// - Symbol: [Rectangle]
// - Prefix with no symbol: (Rounded, blank)
// Codes that have no compact pattern are listed in a trailing comment.
func GenerateMermaid(table *alphabet.Table, overlay *TreeOverlay) string {
	symbols := make(map[string]string)
	var skipped []string
	for _, e := range table.Entries() {
		sym := strings.ToUpper(string(e.Symbol))
		pattern, err := alphabet.Compact(e.Code)
		if err != nil {
			skipped = append(skipped, sym)
			continue
		}
		symbols[pattern] = sym
	}

	// Every prefix of every pattern is a node.
	nodes := map[string]bool{"": true}
	for pattern := range symbols {
		for i := 1; i <= len(pattern); i++ {
			nodes[pattern[:i]] = true
		}
	}
	ordered := make([]string, 0, len(nodes))
	for p := range nodes {
		ordered = append(ordered, p)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if len(ordered[i]) != len(ordered[j]) {
			return len(ordered[i]) < len(ordered[j])
		}
		// '-' sorts before '.' in ASCII; dots go first.
		return strings.Map(swapMarks, ordered[i]) < strings.Map(swapMarks, ordered[j])
	})

	var sb strings.Builder
	sb.WriteString("graph TD\n")
	for _, p := range ordered {
		id := nodeID(p)
		switch sym, ok := symbols[p]; {
		case p == "":
			fmt.Fprintf(&sb, "    %s((\"%s\"))\n", id, table.Name())
		case ok:
			fmt.Fprintf(&sb, "    %s[\"%s\"]\n", id, sym)
		default:
			fmt.Fprintf(&sb, "    %s(\" \")\n", id)
		}
		if p != "" {
			fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n", nodeID(p[:len(p)-1]), p[len(p)-1:], id)
		}
	}

	if len(skipped) > 0 {
		fmt.Fprintf(&sb, "    %%%% not drawn: %s\n", strings.Join(skipped, " "))
	}

	if overlay != nil && overlay.Highlight != "" {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		visited := make(map[string]bool)
		current := make(map[string]bool)
		for _, r := range overlay.Highlight {
			code, ok := table.Code(r)
			if !ok {
				continue
			}
			pattern, err := alphabet.Compact(code)
			if err != nil {
				continue
			}
			current[pattern] = true
			for i := 0; i < len(pattern); i++ {
				visited[pattern[:i]] = true
			}
		}
		for _, p := range ordered {
			if visited[p] && !current[p] {
				fmt.Fprintf(&sb, "    class %s visited;\n", nodeID(p))
			}
		}
		for _, p := range ordered {
			if current[p] {
				fmt.Fprintf(&sb, "    class %s current;\n", nodeID(p))
			}
		}
	}

	return sb.String()
}

// nodeID maps a compact pattern to a Mermaid-safe identifier.
func nodeID(pattern string) string {
	if pattern == "" {
		return "root"
	}
	s := strings.ReplaceAll(pattern, ".", "d")
	s = strings.ReplaceAll(s, "-", "h")
	return "n_" + s
}

func swapMarks(r rune) rune {
	switch r {
	case '.':
		return '-'
	case '-':
		return '.'
	}
	return r
}
