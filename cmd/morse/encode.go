package main

import (
	"github.com/aretw0/morse/pkg/domain"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [text...]",
	Short: "Translate english text into Morse code",
	Long: `Translates english text into Morse code. Reads stdin when no text is given.
Only letters and digits are translated; everything else is dropped.`,
	Example: `  morse encode SOS
  echo "hello world" | morse encode --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTranslate(cmd, args, domain.ToMorse)
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	addFormatFlag(encodeCmd)
}
