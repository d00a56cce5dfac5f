package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depfix/cmd/depfix/commands"
	"go.trai.ch/depfix/internal/app"
	"go.trai.ch/depfix/internal/build"
)

type mockApp struct {
	repairFunc func(ctx context.Context, opts app.RepairOptions) error
	cleanFunc  func(ctx context.Context, opts app.CleanOptions) error
	pinFunc    func(ctx context.Context, root string) error
	planFunc   func(ctx context.Context, root string) error
	jsonLogs   bool
}

func (m *mockApp) Repair(ctx context.Context, opts app.RepairOptions) error {
	if m.repairFunc != nil {
		return m.repairFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Clean(ctx context.Context, opts app.CleanOptions) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Pin(ctx context.Context, root string) error {
	if m.pinFunc != nil {
		return m.pinFunc(ctx, root)
	}
	return nil
}

func (m *mockApp) Plan(ctx context.Context, root string) error {
	if m.planFunc != nil {
		return m.planFunc(ctx, root)
	}
	return nil
}

func (m *mockApp) SetJSONLogs(enable bool) {
	m.jsonLogs = enable
}

func TestCommands_Repair(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.RepairOptions
		mock := &mockApp{
			repairFunc: func(_ context.Context, opts app.RepairOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"repair", "--root", "/work", "--parallel", "--cleanup-policy", "fail"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "/work", captured.Root)
		assert.Equal(t, "fail", captured.CleanupPolicy)
		require.NotNil(t, captured.Parallel)
		assert.True(t, *captured.Parallel)
	})

	t.Run("leaves parallel unset without the flag", func(t *testing.T) {
		var captured app.RepairOptions
		mock := &mockApp{
			repairFunc: func(_ context.Context, opts app.RepairOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"repair"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, ".", captured.Root)
		assert.Empty(t, captured.CleanupPolicy)
		assert.Nil(t, captured.Parallel)
	})

	t.Run("explicit false overrides config", func(t *testing.T) {
		var captured app.RepairOptions
		mock := &mockApp{
			repairFunc: func(_ context.Context, opts app.RepairOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"repair", "--parallel=false"})

		require.NoError(t, cli.Execute(context.Background()))
		require.NotNil(t, captured.Parallel)
		assert.False(t, *captured.Parallel)
	})

	t.Run("returns error on repair failure", func(t *testing.T) {
		mock := &mockApp{
			repairFunc: func(context.Context, app.RepairOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"repair"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("rejects arguments", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		cli.SetArgs([]string{"repair", "extra"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_JSONFlag(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)
	cli.SetArgs([]string{"clean", "--json"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, mock.jsonLogs)
}

func TestCommands_Clean(t *testing.T) {
	var captured app.CleanOptions
	mock := &mockApp{
		cleanFunc: func(_ context.Context, opts app.CleanOptions) error {
			captured = opts
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"clean", "--root", "proj", "--cleanup-policy", "warn"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, app.CleanOptions{Root: "proj", CleanupPolicy: "warn"}, captured)
}

func TestCommands_PinAndPlan(t *testing.T) {
	var pinRoot, planRoot string
	mock := &mockApp{
		pinFunc: func(_ context.Context, root string) error {
			pinRoot = root
			return nil
		},
		planFunc: func(_ context.Context, root string) error {
			planRoot = root
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"pin", "--root", "a"})
	require.NoError(t, cli.Execute(context.Background()))

	cli = commands.New(mock)
	cli.SetArgs([]string{"plan", "--root", "b"})
	require.NoError(t, cli.Execute(context.Background()))

	assert.Equal(t, "a", pinRoot)
	assert.Equal(t, "b", planRoot)
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "depfix version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n", buf.String())
}

func TestCommands_VersionFlag(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"--version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "depfix version "+build.Version)
}
