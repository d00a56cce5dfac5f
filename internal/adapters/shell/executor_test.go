package shell_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depfix/internal/adapters/shell"
	"go.trai.ch/depfix/internal/core/domain"
)

func newExecutor(stdout, stderr *bytes.Buffer) *shell.Executor {
	return shell.NewExecutor().WithStreams(strings.NewReader(""), stdout, stderr)
}

func TestExecutor_Execute_WorkingDir(t *testing.T) {
	var stdout, stderr bytes.Buffer
	executor := newExecutor(&stdout, &stderr)

	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "marker"), []byte("here"), 0o600))

	inv := domain.Invocation{
		Name:    "cat-marker",
		Command: []string{"sh", "-c", "cat marker"},
	}

	err := executor.Execute(context.Background(), inv, tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "here", stdout.String())
}

func TestExecutor_Execute_EnvironmentOverride(t *testing.T) {
	var stdout, stderr bytes.Buffer
	executor := newExecutor(&stdout, &stderr)

	t.Setenv("DEPFIX_PARENT_VAR", "inherited")

	inv := domain.Invocation{
		Name:    "print-env",
		Command: []string{"sh", "-c", "echo $npm_config_legacy_peer_deps $DEPFIX_PARENT_VAR"},
		Env:     map[string]string{domain.LegacyPeerDepsEnv: "true"},
	}

	err := executor.Execute(context.Background(), inv, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "true inherited\n", stdout.String())
}

func TestExecutor_Execute_OverrideWinsOverParent(t *testing.T) {
	var stdout, stderr bytes.Buffer
	executor := newExecutor(&stdout, &stderr)

	t.Setenv(domain.LegacyPeerDepsEnv, "false")

	inv := domain.Invocation{
		Name:    "print-env",
		Command: []string{"sh", "-c", "echo $npm_config_legacy_peer_deps"},
		Env:     map[string]string{domain.LegacyPeerDepsEnv: "true"},
	}

	require.NoError(t, executor.Execute(context.Background(), inv, t.TempDir()))
	assert.Equal(t, "true\n", stdout.String())
}

func TestExecutor_Execute_Stderr(t *testing.T) {
	var stdout, stderr bytes.Buffer
	executor := newExecutor(&stdout, &stderr)

	inv := domain.Invocation{
		Name:    "warn",
		Command: []string{"sh", "-c", "echo oops >&2"},
	}

	require.NoError(t, executor.Execute(context.Background(), inv, t.TempDir()))
	assert.Empty(t, stdout.String())
	assert.Equal(t, "oops\n", stderr.String())
}

func TestExecutor_Execute_CommandFailure(t *testing.T) {
	var stdout, stderr bytes.Buffer
	executor := newExecutor(&stdout, &stderr)

	inv := domain.Invocation{
		Name:    "fail",
		Command: []string{"sh", "-c", "exit 42"},
	}

	err := executor.Execute(context.Background(), inv, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step failed")
}

func TestExecutor_Execute_InvalidCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	executor := newExecutor(&stdout, &stderr)

	inv := domain.Invocation{
		Name:    "missing",
		Command: []string{"nonexistent-command-xyz123"},
	}

	err := executor.Execute(context.Background(), inv, t.TempDir())
	require.Error(t, err)
}

func TestExecutor_Execute_MissingDir(t *testing.T) {
	var stdout, stderr bytes.Buffer
	executor := newExecutor(&stdout, &stderr)

	inv := domain.Invocation{
		Name:    "nowhere",
		Command: []string{"sh", "-c", "true"},
	}

	err := executor.Execute(context.Background(), inv, filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestExecutor_Execute_EmptyCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	executor := newExecutor(&stdout, &stderr)

	err := executor.Execute(context.Background(), domain.Invocation{Name: "empty"}, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot execute step")
}

func TestExecutor_Execute_AbsolutePath(t *testing.T) {
	var stdout, stderr bytes.Buffer
	executor := newExecutor(&stdout, &stderr)

	inv := domain.Invocation{
		Name:    "absolute",
		Command: []string{"/bin/sh", "-c", "echo test"},
	}

	require.NoError(t, executor.Execute(context.Background(), inv, t.TempDir()))
	assert.Equal(t, "test\n", stdout.String())
}

func TestExecutor_Execute_Canceled(t *testing.T) {
	var stdout, stderr bytes.Buffer
	executor := newExecutor(&stdout, &stderr)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	inv := domain.Invocation{
		Name:    "sleep",
		Command: []string{"sh", "-c", "sleep 5"},
	}

	err := executor.Execute(ctx, inv, t.TempDir())
	require.Error(t, err)
}
