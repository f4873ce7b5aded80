package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamware/todo/internal/api"
	"github.com/dreamware/todo/internal/storage"
	"github.com/dreamware/todo/internal/todo"
)

func newBackend(t *testing.T) (string, *storage.MemoryStore) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := storage.NewMemoryStore(storage.WithLogger(logger))
	srv := httptest.NewServer(api.NewServer(store, api.ServerOptions{Logger: logger}))
	t.Cleanup(srv.Close)
	return srv.URL, store
}

func runCmd(addr string, args ...string) (int, string, string) {
	var out, errOut bytes.Buffer
	code := run(context.Background(), append([]string{"-addr", addr}, args...), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestCommands(t *testing.T) {
	addr, store := newBackend(t)

	code, out, _ := runCmd(addr)
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "no todos")

	code, out, _ = runCmd(addr, "add", "-title", "Learn Go", "-description", "read the tour")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "#1")
	assert.Contains(t, out, "Learn Go")
	assert.Contains(t, out, "pending")

	code, _, _ = runCmd(addr, "add", "-title", "Groceries", "-description", "milk", "-done")
	require.Equal(t, exitOK, code)

	code, out, _ = runCmd(addr, "list")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "Learn Go")
	assert.Contains(t, out, "read the tour")
	assert.Contains(t, out, "Groceries")

	code, out, _ = runCmd(addr, "search", "-title", "groc")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "Groceries")
	assert.NotContains(t, out, "Learn Go")

	code, out, _ = runCmd(addr, "done", "1")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "done")

	code, _, _ = runCmd(addr, "update", "1", "-title", "Learn more Go")
	require.Equal(t, exitOK, code)

	got, err := store.Get(1)
	require.NoError(t, err)
	assert.Equal(t, todo.Todo{ID: 1, Title: "Learn more Go", Description: "read the tour", Completed: true}, got)

	code, _, _ = runCmd(addr, "update", "1", "-completed=false")
	require.Equal(t, exitOK, code)
	got, _ = store.Get(1)
	assert.False(t, got.Completed)

	code, out, _ = runCmd(addr, "get", "2")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "Groceries")

	code, out, _ = runCmd(addr, "rm", "2")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "deleted #2")
	assert.Len(t, store.List(), 1)
}

func TestCommandErrors(t *testing.T) {
	addr, _ := newBackend(t)

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  string
	}{
		{"unknown command", []string{"frobnicate"}, exitUsage, "unknown command"},
		{"get without id", []string{"get"}, exitUsage, "expected exactly one ID"},
		{"get bad id", []string{"get", "abc"}, exitUsage, "invalid ID"},
		{"add without title", []string{"add", "-description", "x"}, exitUsage, "requires -title"},
		{"get missing todo", []string{"get", "99"}, exitFailure, "Todo 99 not found."},
		{"rm missing todo", []string{"rm", "99"}, exitFailure, "404"},
		{"update without fields", []string{"update", "1"}, exitFailure, "400"},
		{"list with args", []string{"list", "x"}, exitUsage, "no arguments"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := runCmd(addr, tt.args...)
			assert.Equal(t, tt.wantCode, code)
			assert.Contains(t, errOut, tt.wantErr)
		})
	}
}

func TestUnreachableServer(t *testing.T) {
	code, _, errOut := runCmd("http://127.0.0.1:1", "list")
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, errOut, "error:")
}

func TestBadGlobalFlag(t *testing.T) {
	var out, errOut bytes.Buffer
	assert.Equal(t, exitUsage, run(context.Background(), []string{"-nope"}, &out, &errOut))
}

func TestRenderList(t *testing.T) {
	out := renderList([]todo.Todo{
		{ID: 1, Title: "a", Description: "first"},
		{ID: 2, Title: "b", Description: "second", Completed: true},
	})
	assert.Contains(t, out, "[ ]")
	assert.Contains(t, out, "[x]")
	assert.Contains(t, out, "#2")
	assert.Contains(t, out, "second")
}
