/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"

	"github.com/josephgoksu/taskdeck/internal/ui"
	"github.com/spf13/cobra"
)

var deleteYes bool

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task",
	Long:  `Delete a task by its ID. On an interactive terminal a confirmation prompt is shown unless --yes is given.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseTaskID(args[0])
		if err != nil {
			return err
		}

		if !deleteYes && !confirmOrAbort(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Delete task %d? [y/N] ", id)) {
			return nil
		}

		c, err := newClient()
		if err != nil {
			return err
		}
		defer func() { _ = c.Close() }()

		if err := c.DeleteTask(cmd.Context(), id); err != nil {
			return fmt.Errorf("delete task %d: %w", id, err)
		}

		if isJSON() {
			return printJSON(cmd.OutOrStdout(), map[string]any{"deleted": id})
		}
		return ui.NewTableRenderer(cmd.OutOrStdout()).Success(fmt.Sprintf("Deleted task %d", id))
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}
