package listcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"bookdb/src/internal/store"
	"bookdb/src/internal/ui"
)

// New returns the list command: print all records ascending by year.
func New() *cobra.Command {
	return &cobra.Command{
		Use:   "list <data-file>",
		Short: "Print all book records ascending by publishing year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, warnings, err := store.Open(args[0])
			if err != nil {
				return err
			}
			if len(warnings) > 0 {
				lines := []string{fmt.Sprintf("Skipped %d malformed line(s) in %s:", len(warnings), args[0])}
				for _, w := range warnings {
					lines = append(lines, w.String())
				}
				ui.ErrorBox(cmd.ErrOrStderr(), lines...)
			}
			ui.BookTable(cmd.OutOrStdout(), s.SortedByYear())
			return nil
		},
	}
}
