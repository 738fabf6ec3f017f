package console

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// PrintTable prints a bordered table with the given headers and data.
// data is a flat list of cells; its length should be a multiple of
// len(headers). Cells may contain semantic tags; widths are computed on the
// stripped text. useLineChars selects Unicode box drawing characters.
func PrintTable(headers []string, data []string, useLineChars bool) {
	cols := len(headers)
	if cols == 0 {
		return
	}

	colWidths := make([]int, cols)
	measure := func(i int, s string) {
		if l := utf8.RuneCountInString(Strip(s)); l > colWidths[i] {
			colWidths[i] = l
		}
	}
	for i, h := range headers {
		measure(i, h)
	}
	for i, d := range data {
		measure(i%cols, d)
	}

	termWidth, _, _ := GetTerminalSize()
	clampWidths(colWidths, termWidth)

	chars := map[string]string{
		"TopLeft": "+", "TopRight": "+", "BottomLeft": "+", "BottomRight": "+",
		"Horizontal": "-", "Vertical": "|", "Cross": "+",
		"TLeft": "|", "TRight": "|", "TTop": "-", "TBottom": "-",
	}
	if useLineChars {
		chars = map[string]string{
			"TopLeft": "┌", "TopRight": "┐", "BottomLeft": "└", "BottomRight": "┘",
			"Horizontal": "─", "Vertical": "│", "Cross": "┼",
			"TLeft": "├", "TRight": "┤", "TTop": "┬", "TBottom": "┴",
		}
	}

	border := func(left, junction, right string) string {
		var sb strings.Builder
		sb.WriteString(left)
		for i := 0; i < cols; i++ {
			sb.WriteString(strings.Repeat(chars["Horizontal"], colWidths[i]+2))
			if i < cols-1 {
				sb.WriteString(junction)
			} else {
				sb.WriteString(right)
			}
		}
		return sb.String()
	}

	printRow := func(cells []string) {
		var sb strings.Builder
		sb.WriteString(chars["Vertical"])
		for i, cell := range cells {
			cell = truncateCell(cell, colWidths[i])
			padding := colWidths[i] - utf8.RuneCountInString(Strip(cell))
			sb.WriteString(" ")
			sb.WriteString(cell)
			sb.WriteString(strings.Repeat(" ", padding))
			sb.WriteString(" ")
			sb.WriteString(chars["Vertical"])
		}
		fmt.Println(ToANSI(sb.String()))
	}

	fmt.Println(ToANSI(border(chars["TopLeft"], chars["TTop"], chars["TopRight"])))
	printRow(headers)
	fmt.Println(ToANSI(border(chars["TLeft"], chars["Cross"], chars["TRight"])))

	for i := 0; i < len(data); i += cols {
		end := i + cols
		if end > len(data) {
			end = len(data)
		}
		row := data[i:end]
		if len(row) < cols {
			filled := make([]string, cols)
			copy(filled, row)
			row = filled
		}
		printRow(row)
	}

	fmt.Println(ToANSI(border(chars["BottomLeft"], chars["TBottom"], chars["BottomRight"])))
}

// clampWidths shrinks column widths in place until the rendered table fits
// termWidth, widest column first. termWidth <= 0 means the width is unknown
// and the widths are left alone. Columns never shrink below one rune.
func clampWidths(colWidths []int, termWidth int) {
	if termWidth <= 0 {
		return
	}

	total := func() int {
		// Each column renders as "| cell " plus the closing "|"
		w := 1
		for _, cw := range colWidths {
			w += cw + 3
		}
		return w
	}

	for total() > termWidth {
		widest := 0
		for i := range colWidths {
			if colWidths[i] > colWidths[widest] {
				widest = i
			}
		}
		if colWidths[widest] <= 1 {
			return
		}
		colWidths[widest]--
	}
}

// truncateCell shortens a cell whose visible text exceeds width, marking the
// cut with an ellipsis. Truncated cells lose their tags; the visible text is
// what gets cut, and cutting inside a tag would corrupt it.
func truncateCell(cell string, width int) string {
	plain := Strip(cell)
	runes := []rune(plain)
	if len(runes) <= width {
		return cell
	}
	if width <= 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
