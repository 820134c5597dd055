package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders report rows in aligned columns. Widths are measured in
// terminal cells, so cells may carry ANSI styling or colour swatches.
type Table struct {
	headers    []string
	rows       [][]string
	padding    int
	maxWidths  map[int]int  // Maximum width per column index (0 = no limit)
	rightAlign map[int]bool // Columns padded on the left, for numbers
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers:    headers,
		rows:       make([][]string, 0),
		padding:    2,
		maxWidths:  make(map[int]int),
		rightAlign: make(map[int]bool),
	}
}

// SetColumnMaxWidth sets a maximum width for a column. Longer plain text is
// wrapped at word boundaries.
func (t *Table) SetColumnMaxWidth(colIndex int, maxWidth int) {
	t.maxWidths[colIndex] = maxWidth
}

// SetRightAligned right-aligns a column.
func (t *Table) SetRightAligned(colIndex int) {
	t.rightAlign[colIndex] = true
}

// AddRow adds a row, padding or truncating it to the header count.
func (t *Table) AddRow(row []string) {
	if len(row) == len(t.headers) {
		t.rows = append(t.rows, row)
		return
	}
	newRow := make([]string, len(t.headers))
	copy(newRow, row)
	t.rows = append(t.rows, newRow)
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	wrappedRows := make([][][]string, len(t.rows))
	for rowIdx, row := range t.rows {
		wrappedRows[rowIdx] = make([][]string, len(row))
		for colIdx, cell := range row {
			if maxWidth := t.maxWidths[colIdx]; maxWidth > 0 {
				wrappedRows[rowIdx][colIdx] = wrapText(cell, maxWidth)
			} else {
				wrappedRows[rowIdx][colIdx] = []string{cell}
			}
		}
	}

	colWidths := make([]int, len(t.headers))
	for i, h := range t.headers {
		colWidths[i] = lipgloss.Width(h)
	}
	for _, wrappedRow := range wrappedRows {
		for i, wrappedCell := range wrappedRow {
			for _, line := range wrappedCell {
				colWidths[i] = max(colWidths[i], lipgloss.Width(line))
			}
		}
	}

	gap := strings.Repeat(" ", t.padding)
	var result strings.Builder

	headerParts := make([]string, len(t.headers))
	for i, h := range t.headers {
		headerParts[i] = t.pad(i, h, colWidths[i])
	}
	result.WriteString(strings.Join(headerParts, gap))
	result.WriteString("\n")

	sepParts := make([]string, len(t.headers))
	for i, w := range colWidths {
		sepParts[i] = strings.Repeat("-", w)
	}
	result.WriteString(strings.Join(sepParts, gap))
	result.WriteString("\n")

	for _, wrappedRow := range wrappedRows {
		maxLines := 1
		for _, wrappedCell := range wrappedRow {
			maxLines = max(maxLines, len(wrappedCell))
		}

		for lineIdx := 0; lineIdx < maxLines; lineIdx++ {
			rowParts := make([]string, len(t.headers))
			for colIdx := range t.headers {
				cell := ""
				if colIdx < len(wrappedRow) && lineIdx < len(wrappedRow[colIdx]) {
					cell = wrappedRow[colIdx][lineIdx]
				}
				rowParts[colIdx] = t.pad(colIdx, cell, colWidths[colIdx])
			}
			result.WriteString(strings.Join(rowParts, gap))
			result.WriteString("\n")
		}
	}

	return result.String()
}

func (t *Table) pad(col int, s string, width int) string {
	if t.rightAlign[col] {
		return padLeft(s, width)
	}
	return padRight(s, width)
}

// padRight pads s with spaces to width display cells.
func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// padLeft is padRight for right-aligned columns.
func padLeft(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return strings.Repeat(" ", width-w) + s
	}
	return s
}

// wrapText wraps text to fit within the specified width, breaking at word boundaries.
func wrapText(text string, width int) []string {
	if width <= 0 || len(text) <= width {
		return []string{text}
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{text}
	}

	var lines []string
	currentLine := ""
	for _, word := range words {
		// Split words that cannot fit on any line.
		if len(word) > width {
			if currentLine != "" {
				lines = append(lines, currentLine)
				currentLine = ""
			}
			for len(word) > width {
				lines = append(lines, word[:width])
				word = word[width:]
			}
			currentLine = word
			continue
		}

		testLine := currentLine
		if testLine != "" {
			testLine += " "
		}
		testLine += word

		if len(testLine) <= width {
			currentLine = testLine
		} else {
			if currentLine != "" {
				lines = append(lines, currentLine)
			}
			currentLine = word
		}
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return lines
}
