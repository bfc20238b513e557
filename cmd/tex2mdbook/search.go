// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/tex2mdbook/internal/index"
)

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search the sections of a built book",
	Long: `Search queries the section index of the output directory with SQLite
full-text search. Results are listed in document order with the matching
passage highlighted in [brackets]. Without a query every section is listed.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().Int("level", 0, "only sections at or above this heading level (0 = all)")
	searchCmd.Flags().Int("limit", 20, "maximum number of results")
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	level, _ := cmd.Flags().GetInt("level")
	limit, _ := cmd.Flags().GetInt("limit")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	store, err := index.OpenExisting(viper.GetString("output.dir"))
	if err != nil {
		return err
	}
	defer store.Close()

	results, err := store.Search(cmd.Context(), index.Query{
		Text:     strings.Join(args, " "),
		MaxLevel: level,
		Limit:    limit,
	})
	if err != nil {
		return err
	}
	return formatSearchOutput(cmd.OutOrStdout(), results, jsonOutput)
}

func formatSearchOutput(w io.Writer, results []index.Result, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Fprintln(w, "No results found.")
		return nil
	}

	fmt.Fprintf(w, "%-8s  %-30s  %-30s  %s\n", "Section", "Title", "File", "Match")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for _, r := range results {
		fmt.Fprintf(w, "%-8s  %-30s  %-30s  %s\n",
			r.ID, truncate(r.Title, 30), truncate(r.File, 30), oneLine(r.Snippet))
	}

	fmt.Fprintf(w, "\n%d results\n", len(results))
	return nil
}

// truncate shortens s to at most n characters, never splitting a rune.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
