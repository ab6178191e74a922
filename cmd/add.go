/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/josephgoksu/taskdeck/internal/ui"
	"github.com/spf13/cobra"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <content>",
	Short: "Add a new task",
	Long: `Add a new task. Multiple arguments are joined with spaces.

Examples:
  taskdeck add "Buy milk"
  taskdeck add Write the quarterly report`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	content := strings.Join(args, " ")

	c, err := newClient()
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	task, err := c.CreateTask(cmd.Context(), content)
	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), task)
	}
	return ui.NewTableRenderer(cmd.OutOrStdout()).Success(fmt.Sprintf("Created task %d: %s", task.ID, task.Content))
}
