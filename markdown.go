package rowify

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

func writeMarkdown(w io.Writer, records []Record) error {
	if len(records) == 0 {
		return nil
	}
	cols := Columns(records)
	numCols := len(cols)

	rows := make([][]string, len(records))
	for i, rec := range records {
		rows[i] = cells(rec, cols)
	}

	// Column widths, minimum 3 so the separator dashes always fit.
	widths := make([]int, numCols)
	for i, col := range cols {
		if cw := runewidth.StringWidth(col); cw > widths[i] {
			widths[i] = cw
		}
	}
	for _, row := range rows {
		for i, cell := range row {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	if err := writeMarkdownRow(w, cols, widths); err != nil {
		return err
	}
	sep := make([]string, numCols)
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeMarkdownRow(w, row, widths); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, row []string, widths []int) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		padded[i] = cell + strings.Repeat(" ", width-runewidth.StringWidth(cell))
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}
