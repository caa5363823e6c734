// Package tui is a small bubbletea shell over a sift.SearchEngine: a text
// input for the query and a scrolling list of ranked results, replacing the
// reference CLI's bare input("query> ") loop with a navigable view.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/siftsearch/sift"
)

// appState is which screen the shell is showing.
type appState int

const (
	stateInput appState = iota
	stateResults
	stateError
)

// Model holds the shell's state across Update calls.
type Model struct {
	state   appState
	query   string
	results []sift.Result
	cursor  int
	err     error
	height  int
	engine  *sift.SearchEngine
}

// NewModel creates a shell model over engine.
func NewModel(engine *sift.SearchEngine) Model {
	return Model{state: stateInput, engine: engine}
}

// Init satisfies tea.Model; its only startup command switches the terminal
// to the alternate screen.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}
