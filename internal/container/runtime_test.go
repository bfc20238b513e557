// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package container

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeExecutor records piped invocations and answers LookPath/RunSilent
// from configured tables.
type fakeExecutor struct {
	onPath   map[string]bool // binary -> LookPath succeeds
	commands map[string]bool // "bin arg1 arg2" -> RunSilent succeeds
	piped    func(name string, args []string, stdin io.Reader, stdout, stderr io.Writer) error

	lastName string
	lastArgs []string
}

func (f *fakeExecutor) LookPath(file string) (string, error) {
	if f.onPath[file] {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("not found: " + file)
}

func (f *fakeExecutor) RunSilent(name string, args ...string) error {
	key := name + " " + strings.Join(args, " ")
	if f.commands[key] {
		return nil
	}
	return errors.New("command failed: " + key)
}

func (f *fakeExecutor) RunPiped(_ context.Context, name string, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	f.lastName = name
	f.lastArgs = args
	if f.piped != nil {
		return f.piped(name, args, stdin, stdout, stderr)
	}
	return nil
}

func TestDetectRuntime(t *testing.T) {
	tests := []struct {
		name     string
		exec     *fakeExecutor
		wantName string
		wantErr  bool
	}{
		{
			name: "docker available",
			exec: &fakeExecutor{
				onPath:   map[string]bool{"docker": true},
				commands: map[string]bool{"docker info": true},
			},
			wantName: "docker",
		},
		{
			name: "podman when docker missing",
			exec: &fakeExecutor{
				onPath:   map[string]bool{"podman": true},
				commands: map[string]bool{"podman info": true},
			},
			wantName: "podman",
		},
		{
			name: "docker daemon down falls back to podman",
			exec: &fakeExecutor{
				onPath:   map[string]bool{"docker": true, "podman": true},
				commands: map[string]bool{"podman info": true},
			},
			wantName: "podman",
		},
		{
			name: "docker preferred when both work",
			exec: &fakeExecutor{
				onPath:   map[string]bool{"docker": true, "podman": true},
				commands: map[string]bool{"docker info": true, "podman info": true},
			},
			wantName: "docker",
		},
		{
			name:    "nothing installed",
			exec:    &fakeExecutor{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, err := detectRuntime(tt.exec)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "no container runtime available")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, rt.Name())
		})
	}
}

func TestImageExists(t *testing.T) {
	const image = "pandoc/core:latest"

	t.Run("docker inspects image", func(t *testing.T) {
		rt := newDockerRuntime(&fakeExecutor{commands: map[string]bool{"docker image inspect " + image: true}})
		assert.NoError(t, rt.ImageExists(image))
	})

	t.Run("podman checks image", func(t *testing.T) {
		rt := newPodmanRuntime(&fakeExecutor{commands: map[string]bool{"podman image exists " + image: true}})
		assert.NoError(t, rt.ImageExists(image))
	})

	t.Run("missing image names the image", func(t *testing.T) {
		rt := newDockerRuntime(&fakeExecutor{})
		err := rt.ImageExists(image)
		require.Error(t, err)
		assert.Contains(t, err.Error(), image)
	})
}

func TestRun(t *testing.T) {
	exec := &fakeExecutor{
		piped: func(_ string, _ []string, stdin io.Reader, stdout, _ io.Writer) error {
			data, err := io.ReadAll(stdin)
			if err != nil {
				return err
			}
			_, err = stdout.Write(bytes.ToUpper(data))
			return err
		},
	}
	rt := newDockerRuntime(exec)

	var out bytes.Buffer
	err := rt.Run(context.Background(), "pandoc/core", []string{"-f", "latex", "-t", "markdown"}, strings.NewReader("\\section{x}"), &out)
	require.NoError(t, err)

	assert.Equal(t, "\\SECTION{X}", out.String())
	assert.Equal(t, "docker", exec.lastName)
	assert.Equal(t, []string{"run", "--rm", "-i", "pandoc/core", "-f", "latex", "-t", "markdown"}, exec.lastArgs)
}

func TestRun_FailureIncludesStderr(t *testing.T) {
	exec := &fakeExecutor{
		piped: func(_ string, _ []string, _ io.Reader, _, stderr io.Writer) error {
			_, _ = io.WriteString(stderr, "Error producing PDF.\n")
			return errors.New("exit status 43")
		},
	}
	rt := newPodmanRuntime(exec)

	err := rt.Run(context.Background(), "pandoc/core", nil, strings.NewReader(""), io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "podman")
	assert.Contains(t, err.Error(), "Error producing PDF.")
	assert.Contains(t, err.Error(), "exit status 43")
}

func TestRuntimeName(t *testing.T) {
	assert.Equal(t, "docker", newDockerRuntime(&fakeExecutor{}).Name())
	assert.Equal(t, "podman", newPodmanRuntime(&fakeExecutor{}).Name())
}
