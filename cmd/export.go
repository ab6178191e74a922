/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/josephgoksu/taskdeck/models"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// appFs is the filesystem export writes to. Tests swap in afero.NewMemMapFs().
var appFs afero.Fs = afero.NewOsFs()

var (
	exportFormat string
	exportOutput string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all tasks to JSON or YAML",
	Long: `Fetch every task from the server and write it with export metadata.

Without --format the format follows the --output extension (.yaml/.yml
selects YAML), falling back to JSON.

Examples:
  taskdeck export > tasks.json
  taskdeck export --output backup/tasks.yaml`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "output format: json or yaml")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "-", "output file, - for stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := resolveExportFormat(exportFormat, exportOutput)
	if err != nil {
		return err
	}

	c, err := newClient()
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	tasks, err := c.ListTasks(cmd.Context())
	if err != nil {
		return fmt.Errorf("list tasks: %w", err)
	}

	list := models.NewTaskList(tasks, GetConfig().Client.Server)
	if err := models.ValidateStruct(list); err != nil {
		return fmt.Errorf("export contains invalid tasks: %w", err)
	}

	if exportOutput == "" || exportOutput == "-" {
		return encodeTaskList(cmd.OutOrStdout(), list, format)
	}
	if err := writeExport(appFs, exportOutput, list, format); err != nil {
		return err
	}
	LogError(fmt.Sprintf("wrote %d tasks to %s", list.TotalCount, exportOutput), nil)
	return nil
}

func resolveExportFormat(format, output string) (string, error) {
	switch strings.ToLower(format) {
	case "json":
		return "json", nil
	case "yaml", "yml":
		return "yaml", nil
	case "":
		switch strings.ToLower(filepath.Ext(output)) {
		case ".yaml", ".yml":
			return "yaml", nil
		}
		return "json", nil
	default:
		return "", fmt.Errorf("unsupported export format %q (want json or yaml)", format)
	}
}

func encodeTaskList(w io.Writer, list models.TaskList, format string) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(list); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}

// writeExport writes list to path on fs, creating parent directories.
func writeExport(fs afero.Fs, path string, list models.TaskList, format string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export dir: %w", err)
		}
	}

	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := encodeTaskList(f, list, format); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
