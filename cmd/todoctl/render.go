package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dreamware/todo/internal/todo"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	idStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	doneStyle    = lipgloss.NewStyle().Faint(true)
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

func checkbox(done bool) string {
	if done {
		return successStyle.Render("[x]")
	}
	return pendingStyle.Render("[ ]")
}

// renderList prints one line per todo followed by a muted description line.
func renderList(todos []todo.Todo) string {
	if len(todos) == 0 {
		return mutedStyle.Render("no todos") + "\n"
	}
	var b strings.Builder
	for _, t := range todos {
		title := titleStyle.Render(t.Title)
		if t.Completed {
			title = doneStyle.Render(t.Title)
		}
		fmt.Fprintf(&b, "%s %s %s\n", checkbox(t.Completed), idStyle.Render(fmt.Sprintf("#%d", t.ID)), title)
		fmt.Fprintf(&b, "      %s\n", mutedStyle.Render(t.Description))
	}
	return b.String()
}

// renderTodo prints a bordered card for a single todo.
func renderTodo(t todo.Todo) string {
	status := pendingStyle.Render("pending")
	if t.Completed {
		status = successStyle.Render("done")
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		idStyle.Render(fmt.Sprintf("#%d", t.ID))+" "+titleStyle.Render(t.Title),
		t.Description,
		mutedStyle.Render("status: ")+status,
	)
	return cardStyle.Render(body) + "\n"
}

func renderError(err error) string {
	return errorStyle.Render("error:") + " " + err.Error() + "\n"
}
