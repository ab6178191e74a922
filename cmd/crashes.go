/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/josephgoksu/taskdeck/internal/logger"
	"github.com/josephgoksu/taskdeck/internal/ui"
	"github.com/spf13/cobra"
)

// crashesCmd represents the crashes command
var crashesCmd = &cobra.Command{
	Use:   "crashes [n]",
	Short: "List crash logs, or print the n-th most recent one",
	Long: `Crash logs are written under <dataDir>/crash_logs when the CLI or a
server request panics. Only the most recent ones are kept.

Examples:
  taskdeck crashes
  taskdeck crashes 1`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logs, err := logger.ListCrashLogs()
		if err != nil {
			return fmt.Errorf("list crash logs: %w", err)
		}
		// Newest first.
		for i, j := 0, len(logs)-1; i < j; i, j = i+1, j-1 {
			logs[i], logs[j] = logs[j], logs[i]
		}

		out := cmd.OutOrStdout()
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 || n > len(logs) {
				return fmt.Errorf("no crash log %q (have %d)", args[0], len(logs))
			}
			content, err := logger.ReadCrashLog(logs[n-1])
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(out, content)
			return err
		}

		if isJSON() {
			if logs == nil {
				logs = []string{}
			}
			return printJSON(out, logs)
		}
		if len(logs) == 0 {
			_, err := fmt.Fprintln(out, "No crash logs.")
			return err
		}

		table := &ui.Table{Headers: []string{"#", "FILE"}, Plain: !ui.IsTerminal(out)}
		for i, p := range logs {
			table.Rows = append(table.Rows, []string{strconv.Itoa(i + 1), filepath.Base(p)})
		}
		_, err = fmt.Fprint(out, table.Render())
		return err
	},
}

func init() {
	rootCmd.AddCommand(crashesCmd)
}
