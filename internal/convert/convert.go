// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns a LaTeX document into Markdown by delegating to
// pandoc, run either as a local binary or inside a container image.
package convert

import (
	"context"
	"fmt"

	"github.com/pdiddy/tex2mdbook/internal/container"
	"github.com/pdiddy/tex2mdbook/pkg/types"
)

const (
	defaultPandoc = "pandoc"
	defaultImage  = "pandoc/core:latest"

	// Formats passed to pandoc on every backend.
	fromFormat = "latex"
	toFormat   = "markdown"
)

// Converter renders the document at inputPath as Markdown at outputPath.
// Implementations must fail when the underlying tool fails; the output
// is not inspected beyond that.
type Converter interface {
	Convert(ctx context.Context, inputPath, outputPath string) error
}

// New builds the converter selected by cfg.Backend. An empty backend means
// the local pandoc binary.
func New(cfg types.ConversionConfig) (Converter, error) {
	switch cfg.Backend {
	case "", types.BackendPandoc:
		return NewPandocConverter(cfg.PandocPath), nil
	case types.BackendContainer:
		rt, err := container.DetectRuntime()
		if err != nil {
			return nil, err
		}
		return NewContainerConverter(rt, cfg.Image)
	default:
		return nil, fmt.Errorf("unknown conversion backend %q (want %s or %s)",
			cfg.Backend, types.BackendPandoc, types.BackendContainer)
	}
}
