package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/josephgoksu/taskdeck/models"
)

// Renderer displays a task list to the user.
type Renderer interface {
	Display(tasks []models.Task) error
}

// TableRenderer writes tasks as an id/content table.
type TableRenderer struct {
	W        io.Writer
	Plain    bool
	MaxWidth int
}

// NewTableRenderer picks plain output when w is not a terminal.
func NewTableRenderer(w io.Writer) *TableRenderer {
	return &TableRenderer{W: w, Plain: !IsTerminal(w), MaxWidth: 60}
}

func (r *TableRenderer) Display(tasks []models.Task) error {
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(r.W, r.style(StyleSubtle, "No tasks."))
		return err
	}

	table := &Table{
		Headers:  []string{"ID", "CONTENT"},
		MaxWidth: r.MaxWidth,
		Plain:    r.Plain,
	}
	for _, t := range tasks {
		table.Rows = append(table.Rows, []string{strconv.Itoa(t.ID), t.Content})
	}

	if _, err := io.WriteString(r.W, table.Render()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(r.W, "\n%s\n", r.style(StyleSubtle, fmt.Sprintf("%d task(s)", len(tasks))))
	return err
}

// DisplayTask shows a single task in a bordered box.
func (r *TableRenderer) DisplayTask(task models.Task) error {
	body := fmt.Sprintf("%s %d\n%s", r.style(StyleTitle, "Task"), task.ID, task.Content)
	if !r.Plain {
		body = StyleDetailBox.Render(body)
	}
	_, err := fmt.Fprintln(r.W, body)
	return err
}

// Success prints a confirmation line.
func (r *TableRenderer) Success(msg string) error {
	_, err := fmt.Fprintf(r.W, "%s %s\n", r.style(StyleSuccess, "✓"), msg)
	return err
}

func (r *TableRenderer) style(s lipgloss.Style, text string) string {
	if r.Plain {
		return text
	}
	return s.Render(text)
}

// JSONRenderer writes tasks as an indented JSON array.
type JSONRenderer struct {
	W io.Writer
}

func (r *JSONRenderer) Display(tasks []models.Task) error {
	if tasks == nil {
		tasks = []models.Task{}
	}
	enc := json.NewEncoder(r.W)
	enc.SetIndent("", "  ")
	return enc.Encode(tasks)
}
