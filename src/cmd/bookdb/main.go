package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bookdb/src/cmd/bookdb/addcmd"
	"bookdb/src/cmd/bookdb/exportcmd"
	"bookdb/src/cmd/bookdb/listcmd"
	"bookdb/src/internal/store"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookdb <data-file>",
		Short: "Book database CLI (interactive menu over a CSV-backed record store)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, warnings, err := store.Open(args[0])
			if err != nil {
				return err
			}
			return runMenu(cmd, s, warnings)
		},
	}
	cmd.AddCommand(addcmd.New())
	cmd.AddCommand(listcmd.New())
	cmd.AddCommand(exportcmd.New())
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
