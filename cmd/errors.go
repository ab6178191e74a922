package cmd

import (
	"errors"
	"fmt"
	"net"
	"os"

	"github.com/josephgoksu/taskdeck/internal/client"
	"github.com/josephgoksu/taskdeck/store"
	"github.com/spf13/viper"
)

// HandleFatalError handles unrecoverable errors that should terminate the application.
func HandleFatalError(userMsg string, technicalErr error) {
	PrintError(userMsg, technicalErr)
	os.Exit(1)
}

// PrintError prints an error message without exiting, allowing for recovery.
func PrintError(userMsg string, technicalErr error) {
	if viper.GetBool("verbose") && technicalErr != nil {
		// In verbose mode, print the detailed, underlying technical error.
		fmt.Fprintf(os.Stderr, "Error: %v\n", technicalErr)
	} else {
		fmt.Fprintln(os.Stderr, userMsg)
	}
}

// LogError logs an error without printing to stderr if verbose mode is off.
func LogError(msg string, err error) {
	if viper.GetBool("verbose") {
		if err != nil {
			fmt.Fprintf(os.Stderr, "[DEBUG] %s: %v\n", msg, err)
		} else {
			fmt.Fprintf(os.Stderr, "[DEBUG] %s\n", msg)
		}
	}
}

// userMessage turns a command error into the line shown without --verbose.
func userMessage(err error) string {
	var ve *store.ValidationError
	var opErr *net.OpError
	switch {
	case errors.Is(err, store.ErrNotFound):
		return "Error: task not found."
	case errors.As(err, &ve):
		return "Error: " + ve.Message + "."
	case errors.Is(err, client.ErrUnauthorized):
		return "Error: the server rejected the token. Set --token or SECRET_TOKEN."
	case errors.As(err, &opErr) && opErr.Op == "dial":
		return fmt.Sprintf("Error: could not reach the taskdeck server at %s. Is 'taskdeck serve' running?", GetConfig().Client.Server)
	default:
		return "Error: " + err.Error()
	}
}
