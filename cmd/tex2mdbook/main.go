// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the tex2mdbook CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/tex2mdbook/internal/build"
	"github.com/pdiddy/tex2mdbook/internal/convert"
	"github.com/pdiddy/tex2mdbook/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd converts one document; subcommands work on an existing book.
var rootCmd = &cobra.Command{
	Use:   "tex2mdbook <input>",
	Short: "Split a LaTeX document into an mdBook source directory",
	Long: `tex2mdbook converts a LaTeX document to Markdown with pandoc and splits
the result at level 1-3 headings into one file per section. Files are named
after their hierarchical section number and title (e.g. 2.1-results.md) and
listed, nested, in SUMMARY.md.

Use --skip-pandoc when the input is already Markdown.

An input named like a subcommand (index, search, version) runs that
subcommand instead; pass it with a path prefix, e.g. ./index.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runBuild,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./tex2mdbook.yaml or ~/.config/tex2mdbook/config.yaml)")
	rootCmd.PersistentFlags().StringP("output", "o", build.DefaultOutputDir, "output directory for section files and SUMMARY.md")

	rootCmd.Flags().Bool("skip-pandoc", false, "treat the input as Markdown and skip conversion")
	rootCmd.Flags().String("backend", string(types.BackendPandoc), "conversion backend: pandoc or container")
	rootCmd.Flags().String("pandoc", "pandoc", "pandoc binary for the pandoc backend")
	rootCmd.Flags().String("image", "pandoc/core:latest", "container image for the container backend")
	rootCmd.Flags().Bool("frontmatter", false, "prefix section files with YAML frontmatter (id, level, title)")
	rootCmd.Flags().Bool("manifest", false, "also write book.yaml with the table of contents")
	rootCmd.Flags().Bool("index", false, "build the full-text section index after writing")

	bindFlags(rootCmd.PersistentFlags(), map[string]string{
		"output.dir": "output",
	})
	bindFlags(rootCmd.Flags(), map[string]string{
		"conversion.skip":        "skip-pandoc",
		"conversion.backend":     "backend",
		"conversion.pandoc_path": "pandoc",
		"conversion.image":       "image",
		"output.frontmatter":     "frontmatter",
		"output.manifest":        "manifest",
		"output.index":           "index",
	})
}

// bindFlags maps config keys to flags so a flag given on the command line
// overrides the config file and environment.
func bindFlags(fs *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := viper.BindPFlag(key, fs.Lookup(name)); err != nil {
			panic(fmt.Sprintf("binding flag %s: %v", name, err))
		}
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("tex2mdbook")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "tex2mdbook"))
		}
	}

	viper.SetEnvPrefix("TEX2MDBOOK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// bookConfig resolves the build configuration from flags, environment and
// config file.
func bookConfig(input string) types.BookConfig {
	return types.BookConfig{
		Input: input,
		Conversion: types.ConversionConfig{
			Backend:    types.ConversionBackend(viper.GetString("conversion.backend")),
			PandocPath: viper.GetString("conversion.pandoc_path"),
			Image:      viper.GetString("conversion.image"),
			Skip:       viper.GetBool("conversion.skip"),
		},
		Output: types.OutputConfig{
			Dir:         viper.GetString("output.dir"),
			Frontmatter: viper.GetBool("output.frontmatter"),
			Manifest:    viper.GetBool("output.manifest"),
			Index:       viper.GetBool("output.index"),
		},
	}
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg := bookConfig(args[0])

	var conv convert.Converter
	if !cfg.Conversion.Skip {
		c, err := convert.New(cfg.Conversion)
		if err != nil {
			return err
		}
		conv = c
	}

	_, err := build.Run(cmd.Context(), cfg, conv, cmd.OutOrStdout())
	return err
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
