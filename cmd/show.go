/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"

	"github.com/josephgoksu/taskdeck/internal/ui"
	"github.com/spf13/cobra"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseTaskID(args[0])
		if err != nil {
			return err
		}

		c, err := newClient()
		if err != nil {
			return err
		}
		defer func() { _ = c.Close() }()

		task, err := c.GetTask(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get task %d: %w", id, err)
		}

		if isJSON() {
			return printJSON(cmd.OutOrStdout(), task)
		}
		return ui.NewTableRenderer(cmd.OutOrStdout()).DisplayTask(task)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
