package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/morse"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of morse",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "morse version %s\n", strings.TrimSpace(morse.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
