package main

import (
	"context"
	"io"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamware/todo/internal/client"
	"github.com/dreamware/todo/internal/config"
	"github.com/dreamware/todo/internal/todo"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestServeLifecycle starts the server on a random port, exercises it over
// real HTTP and shuts it down by canceling the context.
func TestServeLifecycle(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = []config.SeedTodo{
		{Title: "Learn Go", Description: "Understand the basics of net/http."},
		{Title: "Build API", Description: "Create a RESTful API for a ToDo list."},
	}

	srv, err := newServer(cfg, discardLogger())
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, ln, srv, cfg, discardLogger()) }()

	c := client.New("http://"+ln.Addr().String(), nil)

	list, err := c.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Learn Go", list[0].Title)
	assert.Equal(t, 2, list[1].ID)

	created, err := c.Create(context.Background(), client.CreateRequest{Title: "A", Description: "B"})
	require.NoError(t, err)
	assert.Equal(t, 3, created.ID)

	_, err = c.Get(context.Background(), 99)
	assert.ErrorIs(t, err, todo.ErrNotFound)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestNewServerEmptyByDefault(t *testing.T) {
	srv, err := newServer(config.Default(), discardLogger())
	require.NoError(t, err)
	assert.NotNil(t, srv)
}

func TestNewServerRejectsBadSeed(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = []config.SeedTodo{{Title: "", Description: "x"}}

	_, err := newServer(cfg, discardLogger())
	require.Error(t, err)
	assert.ErrorIs(t, err, todo.ErrValidation)
}

func TestRunErrors(t *testing.T) {
	t.Setenv(config.EnvConfigFile, "")
	t.Setenv(config.EnvAddr, "")
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvLogFormat, "")

	t.Run("unknown flag", func(t *testing.T) {
		err := run(context.Background(), []string{"-nope"}, io.Discard)
		assert.Error(t, err)
	})

	t.Run("missing config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "absent.yaml")
		err := run(context.Background(), []string{"-config", path}, io.Discard)
		assert.ErrorContains(t, err, "load config")
	})

	t.Run("address in use", func(t *testing.T) {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		defer ln.Close()

		path := filepath.Join(t.TempDir(), "todo.yaml")
		require.NoError(t, os.WriteFile(path, []byte("addr: "+ln.Addr().String()+"\n"), 0o600))

		err = run(context.Background(), []string{"-config", path}, io.Discard)
		assert.ErrorContains(t, err, "listen")
	})
}
