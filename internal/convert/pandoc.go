// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// commandRunner abstracts command execution to enable testing without real
// subprocesses.
type commandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stderr string, err error)
}

// execRunner implements commandRunner using os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stderr.String(), err
}

// PandocConverter converts LaTeX to Markdown with a pandoc binary on the host.
type PandocConverter struct {
	bin    string
	runner commandRunner
}

// NewPandocConverter returns a converter that invokes bin, or "pandoc" from
// PATH when bin is empty.
func NewPandocConverter(bin string) *PandocConverter {
	if bin == "" {
		bin = defaultPandoc
	}
	return &PandocConverter{bin: bin, runner: execRunner{}}
}

// Convert runs pandoc with inputPath as source and outputPath as target.
// A non-zero exit is returned with pandoc's stderr attached, as is a clean
// exit that leaves no output file. Empty output is valid.
func (p *PandocConverter) Convert(ctx context.Context, inputPath, outputPath string) error {
	args := []string{inputPath, "-f", fromFormat, "-t", toFormat, "-o", outputPath}

	stderr, err := p.runner.Run(ctx, p.bin, args...)
	if err != nil {
		if msg := strings.TrimSpace(stderr); msg != "" {
			return fmt.Errorf("converting %s with %s: %s: %w", inputPath, p.bin, msg, err)
		}
		return fmt.Errorf("converting %s with %s: %w", inputPath, p.bin, err)
	}

	if _, err := os.Stat(outputPath); err != nil {
		return fmt.Errorf("reading %s output: %w", p.bin, err)
	}
	return nil
}
