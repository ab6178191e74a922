package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/josephgoksu/taskdeck/internal/client"
	"github.com/josephgoksu/taskdeck/internal/ui"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

func isJSON() bool {
	return viper.GetBool("json")
}

func printJSON(w io.Writer, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}

// newClient builds an API client from the resolved client config.
func newClient() (*client.Client, error) {
	cfg := GetConfig().Client
	LogError(fmt.Sprintf("using server %s", cfg.Server), nil)
	return client.New(cfg.Server, cfg.Token, cfg.Timeout)
}

// renderer picks JSON or table output for task lists.
func renderer(w io.Writer) ui.Renderer {
	if isJSON() {
		return &ui.JSONRenderer{W: w}
	}
	return ui.NewTableRenderer(w)
}

// parseTaskID validates a task id argument.
func parseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid task id %q: must be a positive integer", arg)
	}
	return id, nil
}

// confirmOrAbort asks for confirmation on an interactive terminal.
// Non-interactive input and --json never prompt.
func confirmOrAbort(in io.Reader, out io.Writer, prompt string) bool {
	if isJSON() {
		return true
	}
	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		return true
	}
	fmt.Fprint(out, prompt)
	reader := bufio.NewReader(in)
	response, _ := reader.ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))
	if response != "y" && response != "yes" {
		fmt.Fprintln(out, "Cancelled.")
		return false
	}
	return true
}
