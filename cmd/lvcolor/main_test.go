package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcolor/internal/cli"
)

func TestRun_Help(t *testing.T) {
	var out, logs bytes.Buffer
	require.NoError(t, run(context.Background(), &out, &logs, []string{"-h"}))
	require.Contains(t, out.String(), "Usage:")
}

func TestRun_Shared(t *testing.T) {
	var out, logs bytes.Buffer
	args := []string{"-mode", "shared", "-workers", "2", "-graph", "cycle", "-n", "9", "-budget", "3", "-log-level", "error"}
	require.NoError(t, run(context.Background(), &out, &logs, args))
	require.Contains(t, out.String(), "vertices=9")
	require.Contains(t, out.String(), "valid=true")
}

func TestRun_BadFlag(t *testing.T) {
	var out, logs bytes.Buffer
	err := run(context.Background(), &out, &logs, []string{"-budget", "0"})

	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 2, exitErr.Code)
}
