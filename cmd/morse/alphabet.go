package main

import (
	"encoding/json"
	"fmt"

	"github.com/aretw0/morse/internal/presentation/graph"
	"github.com/aretw0/morse/internal/presentation/tui"
	"github.com/aretw0/morse/pkg/alphabet"
	"github.com/aretw0/morse/pkg/runner"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var alphabetCmd = &cobra.Command{
	Use:   "alphabet",
	Short: "Show the active alphabet",
	Long: `Shows the symbol to code chart of the active alphabet.
With --format yaml or json the table is printed as an alphabet file that can
be edited and loaded back with --alphabet path/to/file.yaml.
With --format mermaid the table is drawn as a dot/dash decision tree;
--highlight marks the symbols of a word on it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := alphabet.Resolve(cfg.Alphabet)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "yaml":
			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(alphabet.FileFromTable(table))
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(alphabet.FileFromTable(table))
		case "mermaid":
			highlight, _ := cmd.Flags().GetString("highlight")
			_, err := fmt.Fprint(out, graph.GenerateMermaid(table, &graph.TreeOverlay{Highlight: highlight}))
			return err
		case "", "chart":
			md := tui.AlphabetMarkdown(table)
			if runner.IsTerminal(out) {
				if rendered, err := tui.NewRenderer()(md); err == nil {
					md = rendered
				}
			}
			_, err := fmt.Fprint(out, md)
			return err
		}
		return fmt.Errorf("unknown format %q (want chart, yaml, json or mermaid)", format)
	},
}

var alphabetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in alphabets",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range alphabet.Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

func init() {
	rootCmd.AddCommand(alphabetCmd)
	alphabetCmd.AddCommand(alphabetListCmd)
	alphabetCmd.Flags().StringP("format", "f", "chart", "Output format: chart, yaml, json or mermaid")
	alphabetCmd.Flags().String("highlight", "", "Symbols to mark on the mermaid tree")
}
