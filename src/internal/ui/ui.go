// Package ui renders the boxed notices and the book table shown by the CLI.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"bookdb/src/internal/record"
)

// asciiBorder keeps output grep-friendly and identical across terminals.
var asciiBorder = lipgloss.Border{
	Top: "-", Bottom: "-", Left: "|", Right: "|",
	TopLeft: "-", TopRight: "-", BottomLeft: "-", BottomRight: "-",
}

var (
	boxStyle = lipgloss.NewStyle().
			Border(asciiBorder).
			Padding(0, 2)
	errorBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.Border{
			Top: "!", Bottom: "!", Left: "!", Right: "!",
			TopLeft: "!", TopRight: "!", BottomLeft: "!", BottomRight: "!",
		}).
		Padding(0, 2)
	headerStyle = lipgloss.NewStyle().Bold(true)
)

// Box writes the given lines inside a bordered box.
func Box(w io.Writer, lines ...string) {
	render(w, boxStyle, lines)
}

// ErrorBox writes the given lines inside a box bordered with '!'.
func ErrorBox(w io.Writer, lines ...string) {
	render(w, errorBoxStyle, lines)
}

func render(w io.Writer, style lipgloss.Style, lines []string) {
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, style.Render(strings.Join(lines, "\n")))
	_, _ = fmt.Fprintln(w)
}

// Clear emits the ANSI sequence that clears the screen and homes the cursor.
func Clear(w io.Writer) {
	_, _ = fmt.Fprint(w, "\x1b[2J\x1b[H")
}

var tableHeaders = []string{"TITLE", "AUTHOR", "ISBN", "YEAR"}

// BookTable writes the books as an aligned table with a header row.
func BookTable(w io.Writer, books []record.Book) {
	rows := make([][]string, 0, len(books))
	for _, b := range books {
		rows = append(rows, b.Fields())
	}
	widths := colWidths(tableHeaders, rows)
	writeColumns(w, headerStyle.Render, tableHeaders, widths)
	writeSeparator(w, widths)
	for _, r := range rows {
		writeColumns(w, nil, r, widths)
	}
}

func colWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, r := range rows {
		for i := range headers {
			if i < len(r) && len(r[i]) > widths[i] {
				widths[i] = len(r[i])
			}
		}
	}
	return widths
}

func writeSeparator(w io.Writer, widths []int) {
	cols := make([]string, len(widths))
	for i, width := range widths {
		cols[i] = strings.Repeat("-", width)
	}
	writeColumns(w, nil, cols, widths)
}

func writeColumns(w io.Writer, style func(...string) string, cols []string, widths []int) {
	for i, width := range widths {
		val := ""
		if i < len(cols) {
			val = cols[i]
		}
		cell := fmt.Sprintf("%-*s", width, val)
		if style != nil {
			cell = style(cell)
		}
		_, _ = fmt.Fprint(w, cell)
		if i != len(widths)-1 {
			_, _ = fmt.Fprint(w, "  ")
		}
	}
	_, _ = fmt.Fprint(w, "\n")
}
