// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/tex2mdbook/internal/index"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build the full-text section index of an existing book",
	Long: `Index reads the sections listed in SUMMARY.md of the output directory and
stores them in a SQLite full-text index at <output>/.index/sections.db,
replacing any previous index. Use it after editing section files by hand
or for books built without --index.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := viper.GetString("output.dir")

		store, err := index.Open(dir)
		if err != nil {
			return err
		}
		defer store.Close()

		_, err = store.IngestDir(cmd.Context(), dir, cmd.OutOrStdout())
		return err
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
}
