package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"bookdb/src/internal/record"
	"bookdb/src/internal/store"
	"bookdb/src/internal/ui"
)

var menuOptions = []string{
	"1) Add new book",
	"2) Print current database content in ascending order by publishing year",
	"Q) Exit the program",
	"C) Clear terminal screen",
}

const validInputs = "1, 2, Q, C"

// runMenu drives the interactive read-eval loop until the user quits or
// input ends.
func runMenu(cmd *cobra.Command, s *store.Store, warnings []store.LoadWarning) error {
	out := cmd.OutOrStdout()
	printWarnings(cmd.ErrOrStderr(), s.Path(), warnings)
	p := newPrompter(cmd)
	defer p.Close()
	for {
		printMainMenu(out)
		choice, err := p.Prompt("Type your option and press enter: ")
		if err != nil {
			if err == io.EOF {
				return quit(out, s)
			}
			return fmt.Errorf("reading input: %w", err)
		}
		switch strings.ToLower(strings.TrimSpace(choice)) {
		case "1":
			if err := addInteractive(p, out, s); err != nil {
				if err == io.EOF {
					return quit(out, s)
				}
				return err
			}
		case "2":
			ui.Box(out, "Print database!")
			ui.BookTable(out, s.SortedByYear())
		case "q":
			return quit(out, s)
		case "c":
			ui.Clear(out)
		default:
			ui.ErrorBox(out,
				fmt.Sprintf("Invalid input: %q", choice),
				"Valid inputs are: "+validInputs,
				"Returning to main menu...")
		}
	}
}

func printMainMenu(out io.Writer) {
	ui.Box(out, "Book Database")
	for _, opt := range menuOptions {
		_, _ = fmt.Fprintln(out, opt)
	}
	_, _ = fmt.Fprintln(out)
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

func quit(out io.Writer, s *store.Store) error {
	if s.Dirty() {
		if err := s.Persist(); err != nil {
			return err
		}
	}
	ui.Box(out, "Exiting the program. Have a lovely day!")
	return nil
}

// addInteractive collects the book fields, shows them back, and only touches
// the store after a "y" confirmation.
func addInteractive(p prompter, out io.Writer, s *store.Store) error {
	ui.Box(out, "Add new book")
	title, err := promptRequired(p, out, "Give books name: ", "A title is required.")
	if err != nil {
		return err
	}
	author, err := p.Prompt("Give authors name: ")
	if err != nil {
		return err
	}
	isbn, err := p.Prompt("Give ISBN: ")
	if err != nil {
		return err
	}
	year, err := promptYear(p, out)
	if err != nil {
		return err
	}
	b := record.Book{
		Title:  strings.TrimSpace(title),
		Author: strings.TrimSpace(author),
		ISBN:   strings.TrimSpace(isbn),
		Year:   year,
	}
	for {
		ui.Box(out, "Verify given data before saving to database...")
		_, _ = fmt.Fprintf(out, "Book name: %s\n", b.Title)
		_, _ = fmt.Fprintf(out, "Author: %s\n", b.Author)
		_, _ = fmt.Fprintf(out, "ISBN: %s\n", b.ISBN)
		_, _ = fmt.Fprintf(out, "Publishing year: %d\n", b.Year)
		ui.Box(out, "Is given information ok?")
		_, _ = fmt.Fprintln(out, "y) Save to database")
		_, _ = fmt.Fprintln(out, "n) Return to main menu")
		_, _ = fmt.Fprintln(out)
		choice, err := p.Prompt("Type your option and press enter: ")
		if err != nil {
			return err
		}
		switch strings.ToLower(strings.TrimSpace(choice)) {
		case "y":
			if err := s.Add(b); err != nil {
				return err
			}
			ui.Box(out, fmt.Sprintf("Saved %q to %s", b.Title, s.Path()))
			return nil
		case "n":
			return nil
		}
	}
}

func promptRequired(p prompter, out io.Writer, label, complaint string) (string, error) {
	for {
		v, err := p.Prompt(label)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(v) != "" {
			return v, nil
		}
		_, _ = fmt.Fprintln(out, complaint)
	}
}

// promptYear re-prompts until the input parses as an integer.
func promptYear(p prompter, out io.Writer) (int, error) {
	for {
		v, err := p.Prompt("Give publishing year: ")
		if err != nil {
			return 0, err
		}
		year, err := record.ParseYear(v)
		if err == nil {
			return year, nil
		}
		_, _ = fmt.Fprintln(out, err.Error())
	}
}
