// Package main is a command-line client for the todo API.
//
// Usage:
//
//	todoctl [-addr URL] <command> [flags] [args]
//
// Commands:
//
//	list                                  list all todos
//	search [-title s] [-description s]    case-insensitive substring search
//	get ID                                show one todo
//	add -title s -description s [-done]   create a todo
//	update ID [-title s] [-description s] [-completed=bool]
//	done ID                               mark a todo completed
//	rm ID                                 delete a todo
//
// The server address defaults to $TODOCTL_ADDR, then http://localhost:8080.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/dreamware/todo/internal/client"
	"github.com/dreamware/todo/internal/todo"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

const (
	defaultAddr  = "http://localhost:8080"
	envAddr      = "TODOCTL_ADDR"
	requestLimit = 10 * time.Second
)

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

type command func(ctx context.Context, c *client.Client, args []string, out io.Writer) error

var commands = map[string]command{
	"list":   cmdList,
	"search": cmdSearch,
	"get":    cmdGet,
	"add":    cmdAdd,
	"update": cmdUpdate,
	"done":   cmdDone,
	"rm":     cmdRemove,
}

func run(ctx context.Context, args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet("todoctl", flag.ContinueOnError)
	fs.SetOutput(errOut)
	addr := fs.String("addr", getenv(envAddr, defaultAddr), "todo API base URL")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	rest := fs.Args()
	name := "list"
	if len(rest) > 0 {
		name, rest = rest[0], rest[1:]
	}
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprint(errOut, renderError(fmt.Errorf("unknown command: %s", name)))
		return exitUsage
	}

	ctx, cancel := context.WithTimeout(ctx, requestLimit)
	defer cancel()

	if err := cmd(ctx, client.New(*addr, nil), rest, out); err != nil {
		fmt.Fprint(errOut, renderError(err))
		if errors.Is(err, errUsage) {
			return exitUsage
		}
		return exitFailure
	}
	return exitOK
}

func usageError(format string, a ...any) error {
	return fmt.Errorf("%w: %s", errUsage, fmt.Sprintf(format, a...))
}

func cmdList(ctx context.Context, c *client.Client, args []string, out io.Writer) error {
	if len(args) > 0 {
		return usageError("list takes no arguments")
	}
	todos, err := c.List(ctx)
	if err != nil {
		return err
	}
	fmt.Fprint(out, renderList(todos))
	return nil
}

func cmdSearch(ctx context.Context, c *client.Client, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	title := fs.String("title", "", "title substring")
	description := fs.String("description", "", "description substring")
	if err := fs.Parse(args); err != nil {
		return usageError("%v", err)
	}
	todos, err := c.Search(ctx, todo.Filter{Title: *title, Description: *description})
	if err != nil {
		return err
	}
	fmt.Fprint(out, renderList(todos))
	return nil
}

func cmdGet(ctx context.Context, c *client.Client, args []string, out io.Writer) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	t, err := c.Get(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprint(out, renderTodo(t))
	return nil
}

func cmdAdd(ctx context.Context, c *client.Client, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	title := fs.String("title", "", "todo title")
	description := fs.String("description", "", "todo description")
	done := fs.Bool("done", false, "create as completed")
	if err := fs.Parse(args); err != nil {
		return usageError("%v", err)
	}
	if *title == "" || *description == "" {
		return usageError("add requires -title and -description")
	}
	t, err := c.Create(ctx, client.CreateRequest{Title: *title, Description: *description, Completed: *done})
	if err != nil {
		return err
	}
	fmt.Fprint(out, renderTodo(t))
	return nil
}

func cmdUpdate(ctx context.Context, c *client.Client, args []string, out io.Writer) error {
	if len(args) == 0 {
		return usageError("update requires an ID")
	}
	id, err := parseID(args[:1])
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	title := fs.String("title", "", "new title")
	description := fs.String("description", "", "new description")
	completed := fs.Bool("completed", false, "new completion state")
	if err := fs.Parse(args[1:]); err != nil {
		return usageError("%v", err)
	}

	// Only flags given on the command line go into the patch.
	var patch todo.Patch
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			patch.Title = title
		case "description":
			patch.Description = description
		case "completed":
			patch.Completed = completed
		}
	})

	t, err := c.Update(ctx, id, patch)
	if err != nil {
		return err
	}
	fmt.Fprint(out, renderTodo(t))
	return nil
}

func cmdDone(ctx context.Context, c *client.Client, args []string, out io.Writer) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	done := true
	t, err := c.Update(ctx, id, todo.Patch{Completed: &done})
	if err != nil {
		return err
	}
	fmt.Fprint(out, renderTodo(t))
	return nil
}

func cmdRemove(ctx context.Context, c *client.Client, args []string, out io.Writer) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	if err := c.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s deleted #%d\n", successStyle.Render("ok"), id)
	return nil
}

func parseID(args []string) (int, error) {
	if len(args) != 1 {
		return 0, usageError("expected exactly one ID")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return 0, usageError("invalid ID %q", args[0])
	}
	return id, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
