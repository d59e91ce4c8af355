package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.parcel.ch/parcel/cmd/parcel/commands"
	"go.parcel.ch/parcel/internal/app"
	"go.parcel.ch/parcel/internal/build"
)

type mockApp struct {
	installFunc func(ctx context.Context, packages []string, opts app.InstallOptions) error
	cleanFunc   func(ctx context.Context) error
}

func (m *mockApp) Install(ctx context.Context, packages []string, opts app.InstallOptions) error {
	if m.installFunc != nil {
		return m.installFunc(ctx, packages, opts)
	}
	return nil
}

func (m *mockApp) Clean(ctx context.Context) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx)
	}
	return nil
}

func TestCommands_Install(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.InstallOptions
		var capturedPackages []string
		called := false

		mock := &mockApp{
			installFunc: func(_ context.Context, packages []string, opts app.InstallOptions) error {
				capturedPackages = packages
				capturedOpts = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"install", "mytool", "--version", "1.2.0", "--remote", "https://pkgs.example.com"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, []string{"mytool"}, capturedPackages)
		assert.Equal(t, "1.2.0", capturedOpts.Version)
		assert.Equal(t, "https://pkgs.example.com", capturedOpts.Remote)
		assert.Nil(t, capturedOpts.Dependencies)
	})

	t.Run("dependencies flag is tri-state", func(t *testing.T) {
		var capturedOpts app.InstallOptions
		mock := &mockApp{
			installFunc: func(_ context.Context, _ []string, opts app.InstallOptions) error {
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"install", "mytool", "--dependencies=false"})

		require.NoError(t, cli.Execute(context.Background()))
		require.NotNil(t, capturedOpts.Dependencies)
		assert.False(t, *capturedOpts.Dependencies)
	})

	t.Run("multiple packages pass through", func(t *testing.T) {
		var capturedPackages []string
		mock := &mockApp{
			installFunc: func(_ context.Context, packages []string, _ app.InstallOptions) error {
				capturedPackages = packages
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"install", "a", "b", "./c"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, []string{"a", "b", "./c"}, capturedPackages)
	})

	t.Run("returns error on install failure", func(t *testing.T) {
		mock := &mockApp{
			installFunc: func(_ context.Context, _ []string, _ app.InstallOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"install", "mytool"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Clean(t *testing.T) {
	t.Run("invokes clean", func(t *testing.T) {
		called := false
		mock := &mockApp{
			cleanFunc: func(context.Context) error {
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"clean"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.True(t, called)
	})

	t.Run("rejects arguments", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		cli.SetArgs([]string{"clean", "extra"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "parcel version "+build.Version)
}
