package main

import (
	"github.com/aretw0/morse/pkg/domain"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [morse...]",
	Short: "Translate Morse code into english text",
	Long: `Translates a Morse stream into english. Reads stdin when no argument is given.
Quote the stream so the shell keeps the three- and seven-space separators.
Unknown tokens are skipped.`,
	Example: `  morse decode ". . .   --- --- ---   . . ."
  morse encode hello | morse decode`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTranslate(cmd, args, domain.ToEnglish)
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	addFormatFlag(decodeCmd)
}
