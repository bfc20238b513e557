// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConversionBackend identifies the tool that turns LaTeX into Markdown.
type ConversionBackend string

const (
	BackendPandoc    ConversionBackend = "pandoc"
	BackendContainer ConversionBackend = "container"
)

// ConversionConfig holds settings for the conversion stage.
type ConversionConfig struct {
	// Backend selects how pandoc is run: a local binary or a container image.
	Backend ConversionBackend `json:"backend" yaml:"backend"`

	// PandocPath is the pandoc binary used by the local backend (default "pandoc").
	PandocPath string `json:"pandoc_path" yaml:"pandoc_path"`

	// Image is the container image used by the container backend
	// (default "pandoc/core:latest").
	Image string `json:"image" yaml:"image"`

	// Skip treats the input as Markdown and bypasses conversion entirely.
	Skip bool `json:"skip" yaml:"skip"`
}

// OutputConfig holds settings for writing the book.
type OutputConfig struct {
	// Dir is the directory that receives section files and SUMMARY.md
	// (default "src").
	Dir string `json:"dir" yaml:"dir"`

	// Frontmatter prefixes every section file with a YAML block carrying
	// its id, level and title.
	Frontmatter bool `json:"frontmatter" yaml:"frontmatter"`

	// Manifest also writes book.yaml, a machine-readable table of contents.
	Manifest bool `json:"manifest" yaml:"manifest"`

	// Index builds the SQLite full-text section index after writing.
	Index bool `json:"index" yaml:"index"`
}

// BookConfig groups the settings for one build.
type BookConfig struct {
	// Input is the source document path.
	Input string `json:"input" yaml:"input"`

	Conversion ConversionConfig `json:"conversion" yaml:"conversion"`
	Output     OutputConfig     `json:"output" yaml:"output"`
}
