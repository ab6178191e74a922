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

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update <id> <content>",
	Short: "Replace the content of a task",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseTaskID(args[0])
		if err != nil {
			return err
		}
		content := strings.Join(args[1:], " ")

		c, err := newClient()
		if err != nil {
			return err
		}
		defer func() { _ = c.Close() }()

		task, err := c.UpdateTask(cmd.Context(), id, content)
		if err != nil {
			return fmt.Errorf("update task %d: %w", id, err)
		}

		if isJSON() {
			return printJSON(cmd.OutOrStdout(), task)
		}
		return ui.NewTableRenderer(cmd.OutOrStdout()).Success(fmt.Sprintf("Updated task %d: %s", task.ID, task.Content))
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
}
