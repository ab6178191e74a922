package cmd

import (
	"testing"
)

func TestAddCommand_Structure(t *testing.T) {
	if addCmd == nil {
		t.Fatal("addCmd should not be nil")
	}

	if addCmd.Use != "add <content>" {
		t.Errorf("Use mismatch: got %q, want %q", addCmd.Use, "add <content>")
	}

	if err := addCmd.Args(addCmd, nil); err == nil {
		t.Error("add without content should be rejected")
	}
	if err := addCmd.Args(addCmd, []string{"Buy", "milk"}); err != nil {
		t.Errorf("add with content should be accepted: %v", err)
	}
}

func TestCommandFlags(t *testing.T) {
	tests := []struct {
		cmdName   string
		flag      string
		shorthand string
	}{
		{"serve", "port", "p"},
		{"serve", "host", ""},
		{"delete", "yes", "y"},
		{"export", "format", "f"},
		{"export", "output", "o"},
	}

	for _, tt := range tests {
		c, _, err := rootCmd.Find([]string{tt.cmdName})
		if err != nil {
			t.Fatalf("command %q not registered: %v", tt.cmdName, err)
		}

		flag := c.Flags().Lookup(tt.flag)
		if flag == nil {
			t.Errorf("expected flag --%s on %s", tt.flag, tt.cmdName)
			continue
		}
		if flag.Shorthand != tt.shorthand {
			t.Errorf("--%s shorthand: got %q, want %q", tt.flag, flag.Shorthand, tt.shorthand)
		}
	}

	for _, name := range []string{"config", "verbose", "json", "server", "token"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("expected persistent flag --%s", name)
		}
	}
}
