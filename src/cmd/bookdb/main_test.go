package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestExecuteHelp(t *testing.T) {
	// Exercise command wiring by invoking help
	root := newRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"--help"})
	if err := root.Execute(); err != nil {
		t.Fatalf("execute help: %v", err)
	}
	for _, sub := range []string{"add", "list", "export"} {
		if !strings.Contains(buf.String(), sub) {
			t.Fatalf("help missing subcommand %q:\n%s", sub, buf.String())
		}
	}
}
