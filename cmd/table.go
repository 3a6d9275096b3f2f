package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

const columnGap = "  "

// writeTable prints rows as left-aligned columns sized by display width, so
// Arabic labels and wide glyphs line up. The last column is truncated to keep
// each line within maxWidth; zero disables truncation.
func writeTable(w io.Writer, rows [][]string, maxWidth int) error {
	if len(rows) == 0 {
		return nil
	}
	cols := 0
	for _, row := range rows {
		cols = max(cols, len(row))
	}
	widths := make([]int, cols)
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	for _, row := range rows {
		var b strings.Builder
		used := 0
		for i, cell := range row {
			if i == len(row)-1 {
				if maxWidth > 0 {
					cell = runewidth.Truncate(cell, max(maxWidth-used, 1), "…")
				}
				b.WriteString(cell)
				break
			}
			b.WriteString(runewidth.FillRight(cell, widths[i]))
			b.WriteString(columnGap)
			used += widths[i] + len(columnGap)
		}
		if _, err := fmt.Fprintln(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}
