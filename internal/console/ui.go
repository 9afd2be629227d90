package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	Title   lipgloss.Style
	Header  lipgloss.Style
	Body    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Header:  lipgloss.NewStyle().Bold(true),
		Body:    lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	}
}

// table renders static rows with column widths derived from content.
type table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

func newTable(title string, headers ...string) *table {
	return &table{Title: title, Headers: headers}
}

func (t *table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

func (t *table) Render(st styles) string {
	if len(t.Rows) == 0 {
		return ""
	}

	var sb strings.Builder

	if t.Title != "" {
		sb.WriteString(st.Title.Render(t.Title))
		sb.WriteString("\n")
	}

	colWidths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		colWidths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(colWidths) {
				if w := lipgloss.Width(cell); w > colWidths[i] {
					colWidths[i] = w
				}
			}
		}
	}
	for i := range colWidths {
		colWidths[i] += 2
	}

	headerStyle := st.Header.Padding(0, 1)
	rowStyle := st.Body.Padding(0, 1)

	for i, h := range t.Headers {
		sb.WriteString(headerStyle.Width(colWidths[i]).Render(h))
		if i < len(t.Headers)-1 {
			sb.WriteString(st.Muted.Render("|"))
		}
	}
	sb.WriteString("\n")

	totalWidth := len(t.Headers) - 1
	for _, w := range colWidths {
		totalWidth += w
	}
	sb.WriteString(st.Muted.Render(strings.Repeat("-", totalWidth)) + "\n")

	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(colWidths) {
				sb.WriteString(rowStyle.Width(colWidths[i]).Render(cell))
				if i < len(row)-1 {
					sb.WriteString(st.Muted.Render("|"))
				}
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// banner renders a centered heading inside an 80-column double-rule box.
func banner(lines ...string) string {
	const width = 80
	var sb strings.Builder
	rule := strings.Repeat("=", width)
	sb.WriteString(rule + "\n")
	for _, line := range lines {
		sb.WriteString("|" + centerText(line, width-2) + "|\n")
	}
	sb.WriteString(rule + "\n")
	return sb.String()
}

func centerText(s string, width int) string {
	pad := width - len([]rune(s))
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

func clip(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
