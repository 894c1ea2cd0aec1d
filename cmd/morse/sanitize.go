package main

import (
	"fmt"

	"github.com/aretw0/morse/pkg/codec"
	"github.com/aretw0/morse/pkg/runner"
	"github.com/spf13/cobra"
)

var sanitizeCmd = &cobra.Command{
	Use:   "sanitize [text...]",
	Short: "Print the canonical form of a text as the encoder sees it",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		clean, err := runner.SanitizeInputLimit(input, cfg.MaxInputSize)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), codec.Sanitize(clean))
		return err
	},
}

func init() {
	rootCmd.AddCommand(sanitizeCmd)
}
