package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// placeAt draws block with its top-left corner at column x, row y inside a
// width×height area. The block is assumed to fit.
func placeAt(block string, x, y, width, height int) string {
	lines := strings.Split(block, "\n")
	rows := make([]string, height)
	for i := range rows {
		j := i - y
		if j < 0 || j >= len(lines) {
			rows[i] = strings.Repeat(" ", width)
			continue
		}
		pad := width - x - lipgloss.Width(lines[j])
		if pad < 0 {
			pad = 0
		}
		rows[i] = strings.Repeat(" ", x) + lines[j] + strings.Repeat(" ", pad)
	}
	return strings.Join(rows, "\n")
}

func clampBarWidth(w int) int {
	if w < 20 {
		return 20
	}
	if w > 60 {
		return 60
	}
	return w
}
