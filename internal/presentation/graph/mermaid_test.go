package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/morse/internal/presentation/graph"
	"github.com/aretw0/morse/pkg/alphabet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		table    *alphabet.Table
		contains []string
		excludes []string
	}{
		{
			name:  "International Shapes And Edges",
			table: alphabet.International(),
			contains: []string{
				"graph TD\n",
				"root((\"international\"))",
				"n_d[\"E\"]",
				"n_h[\"T\"]",
				"root -- \".\" --> n_d",
				"root -- \"-\" --> n_h",
				"n_dh[\"A\"]",
				"n_dhhh[\"J\"]",
				"n_dhhhh[\"1\"]",
				"n_dhhh -- \"-\" --> n_dhhhh",
			},
			excludes: []string{"not drawn"},
		},
		{
			name:  "Blank Prefix Node",
			table: alphabet.International(),
			// ..-- has no symbol but leads to 2 (..---).
			contains: []string{"n_ddhh(\" \")", "n_ddhhh[\"2\"]"},
		},
		{
			name:     "Legacy Skips Malformed Code",
			table:    alphabet.Legacy(),
			contains: []string{"root((\"legacy\"))", "%% not drawn: C"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(tt.table, nil)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			for _, bad := range tt.excludes {
				assert.NotContains(t, got, bad)
			}
			assert.NotContains(t, got, "classDef")
		})
	}
}

func TestGenerateMermaid_DotsBeforeDashes(t *testing.T) {
	got := graph.GenerateMermaid(alphabet.International(), nil)
	e := strings.Index(got, "n_d[\"E\"]")
	tNode := strings.Index(got, "n_h[\"T\"]")
	i := strings.Index(got, "n_dd[\"I\"]")
	require.True(t, e > 0 && tNode > 0 && i > 0)
	assert.Less(t, e, tNode)
	assert.Less(t, tNode, i)
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	got := graph.GenerateMermaid(alphabet.International(), &graph.TreeOverlay{Highlight: "sos!"})

	assert.Contains(t, got, "classDef visited")
	assert.Contains(t, got, "class n_ddd current;")
	assert.Contains(t, got, "class n_hhh current;")
	assert.Contains(t, got, "class root visited;")
	assert.Contains(t, got, "class n_d visited;")
	assert.Contains(t, got, "class n_hh visited;")
	// Repeated symbols are styled once.
	assert.Equal(t, 1, strings.Count(got, "class n_ddd current;"))
	assert.NotContains(t, got, "class n_ddd visited;")
}
