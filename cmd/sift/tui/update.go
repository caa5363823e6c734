package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/siftsearch/sift"
)

const shellResultLimit = 20

// runSearch runs a query against the engine as a tea.Cmd so the UI doesn't
// block while it executes (the engine itself is synchronous and fast, but
// the pattern matches how a slower backend would be wired the same way).
func runSearch(m Model) tea.Cmd {
	return func() tea.Msg {
		results, err := m.engine.Search(m.query, shellResultLimit, 0)
		if err != nil {
			return errMsg{err}
		}
		return searchResultsMsg(results)
	}
}

type searchResultsMsg []sift.Result

type errMsg struct{ err error }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}

		switch m.state {
		case stateInput:
			switch msg.Type {
			case tea.KeyEnter:
				if m.query == ":q" || m.query == ":quit" {
					return m, tea.Quit
				}
				if m.query != "" {
					return m, runSearch(m)
				}
			case tea.KeyEsc:
				return m, tea.Quit
			case tea.KeyBackspace:
				if len(m.query) > 0 {
					m.query = m.query[:len(m.query)-1]
				}
			case tea.KeyRunes:
				m.query += string(msg.Runes)
			case tea.KeySpace:
				m.query += " "
			}

		case stateResults, stateError:
			switch msg.String() {
			case "q", "esc":
				m.state = stateInput
				m.results = nil
				m.cursor = 0
				m.err = nil
			case "up", "k":
				if m.cursor > 0 {
					m.cursor--
				}
			case "down", "j":
				if m.cursor < len(m.results)-1 {
					m.cursor++
				}
			}
		}

	case searchResultsMsg:

		m.results = msg
		m.state = stateResults
		m.cursor = 0

	case errMsg:
		m.err = msg.err
		m.state = stateError

	case tea.WindowSizeMsg:
		m.height = msg.Height
	}

	return m, nil
}
