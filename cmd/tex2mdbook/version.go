package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of tex2mdbook",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "tex2mdbook %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
