package addcmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"bookdb/src/internal/record"
	"bookdb/src/internal/store"
	"bookdb/src/internal/ui"
)

// New returns the non-interactive add command. Flags left unset are prompted
// for on stdin.
func New() *cobra.Command {
	var title, author, isbn, yearIn string
	cmd := &cobra.Command{
		Use:   "add <data-file>",
		Short: "Add a book record (flags or prompts)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, warnings, err := store.Open(args[0])
			if err != nil {
				return err
			}
			printWarnings(cmd.ErrOrStderr(), args[0], warnings)
			b, err := collectBook(cmd, title, author, isbn, yearIn)
			if err != nil {
				return err
			}
			if err := s.Add(b); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return err
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Book title")
	cmd.Flags().StringVar(&author, "author", "", "Author name")
	cmd.Flags().StringVar(&isbn, "isbn", "", "ISBN")
	cmd.Flags().StringVar(&yearIn, "year", "", "Publishing year (integer)")
	return cmd
}

func collectBook(cmd *cobra.Command, title, author, isbn, yearIn string) (record.Book, error) {
	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()
	if strings.TrimSpace(title) == "" {
		title = prompt(in, out, "Title (required): ")
		if strings.TrimSpace(title) == "" {
			return record.Book{}, fmt.Errorf("title is required")
		}
	}
	if strings.TrimSpace(author) == "" {
		author = prompt(in, out, "Author (optional): ")
	}
	if strings.TrimSpace(isbn) == "" {
		isbn = prompt(in, out, "ISBN (optional): ")
	}
	if strings.TrimSpace(yearIn) == "" {
		yearIn = prompt(in, out, "Publishing year: ")
	}
	year, err := record.ParseYear(yearIn)
	if err != nil {
		return record.Book{}, err
	}
	return record.Book{
		Title:  strings.TrimSpace(title),
		Author: strings.TrimSpace(author),
		ISBN:   strings.TrimSpace(isbn),
		Year:   year,
	}, nil
}

func prompt(in *bufio.Reader, out io.Writer, label string) string {
	_, _ = fmt.Fprint(out, label)
	s, _ := in.ReadString('\n')
	return strings.TrimSpace(s)
}

func printWarnings(errOut io.Writer, path string, warnings []store.LoadWarning) {
	if len(warnings) == 0 {
		return
	}
	lines := []string{fmt.Sprintf("Skipped %d malformed line(s) in %s:", len(warnings), path)}
	for _, w := range warnings {
		lines = append(lines, w.String())
	}
	ui.ErrorBox(errOut, lines...)
}
