package tui

import "fmt"

const viewPreviewLength = 100

func (m Model) View() string {
	var s string

	switch m.state {
	case stateInput:
		s += "sift — interactive query shell\n\n"
		s += "> " + m.query + "█\n\n"
		s += "(Enter to search, :q or Esc to quit)"

	case stateResults:
		s += fmt.Sprintf("%d result(s) for %q (q to search again):\n\n", len(m.results), m.query)

		start, end := 0, len(m.results)
		if m.height > 5 {
			visible := m.height - 5
			if m.cursor >= visible {
				start = m.cursor - visible + 1
			}
			if end > start+visible {
				end = start + visible
			}
		}

		for i := start; i < end; i++ {
			cursor := " "
			if m.cursor == i {
				cursor = ">"
			}
			r := m.results[i]
			s += fmt.Sprintf("%s %s  score=%.4f\n   %s\n\n", cursor, r.DocID, r.Score, preview(r.Text))
		}

		s += "(arrows to navigate, q to search again, ctrl+c to quit)"

	case stateError:
		s += fmt.Sprintf("error: %v\n\n(q to try again)", m.err)
	}

	return s
}

func preview(text string) string {
	runes := []rune(text)
	for i, r := range runes {
		if r == '\n' {
			runes[i] = ' '
		}
	}
	if len(runes) <= viewPreviewLength {
		return string(runes)
	}
	return string(runes[:viewPreviewLength]) + "..."
}
