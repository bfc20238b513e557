// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/pdiddy/tex2mdbook/internal/container"
)

// ContainerConverter converts LaTeX by piping it through a pandoc container
// image. It depends on a container.Runtime (docker or podman) injected at
// construction time.
type ContainerConverter struct {
	runtime container.Runtime
	image   string
}

// NewContainerConverter creates a converter that runs image (default
// pandoc/core:latest) on rt. It verifies that the image exists locally
// before returning.
func NewContainerConverter(rt container.Runtime, image string) (*ContainerConverter, error) {
	if image == "" {
		image = defaultImage
	}
	if err := rt.ImageExists(image); err != nil {
		return nil, fmt.Errorf("pandoc image not available in %s: %w", rt.Name(), err)
	}
	return &ContainerConverter{runtime: rt, image: image}, nil
}

// Convert streams inputPath into the container and writes the Markdown it
// prints to outputPath. Nothing is written when the container fails.
func (c *ContainerConverter) Convert(ctx context.Context, inputPath, outputPath string) error {
	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", inputPath, err)
	}
	defer f.Close()

	var out bytes.Buffer
	args := []string{"-f", fromFormat, "-t", toFormat}
	if err := c.runtime.Run(ctx, c.image, args, f, &out); err != nil {
		return fmt.Errorf("converting %s with %s: %w", inputPath, c.image, err)
	}

	if err := os.WriteFile(outputPath, out.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	return nil
}
