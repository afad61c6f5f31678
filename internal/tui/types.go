package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"

	"github.com/nkapur/csvdash/internal/api"
	"github.com/nkapur/csvdash/internal/config"
	"github.com/nkapur/csvdash/internal/report"
)

// RequestState is the analysis request lifecycle. Exactly one state holds
// at any time; result and error text are never populated together.
type RequestState int

const (
	StateIdle RequestState = iota
	StateLoading
	StateSucceeded
	StateFailed
)

func (s RequestState) String() string {
	switch s {
	case StateLoading:
		return "analyzing"
	case StateSucceeded:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "ready"
	}
}

type Model struct {
	cfg    *config.Config
	client *api.Client

	// File selection
	picker       filepicker.Model
	pickerMode   bool
	selectedFile string

	// Request state
	state   RequestState
	result  *api.AnalysisResult
	errMsg  string
	elapsed time.Duration

	// Derived presentation, recomputed only when the result changes
	missing     []report.MissingCount
	selectedBar int
	preview     table.Model

	// UI widgets
	spin spinner.Model
	help help.Model
	keys KeyMap

	width  int
	height int
}

type KeyMap struct {
	Analyze key.Binding
	Pick    key.Binding
	PrevBar key.Binding
	NextBar key.Binding
	Up      key.Binding
	Down    key.Binding
	Quit    key.Binding
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Analyze, k.Pick, k.PrevBar, k.NextBar, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Analyze, k.Pick},
		{k.PrevBar, k.NextBar, k.Up, k.Down},
		{k.Quit},
	}
}

func k(keys []string, help, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(help, desc),
	)
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Analyze: k([]string{"enter"}, "enter", "analyze"),
		Pick:    k([]string{"f"}, "f", "pick file"),
		PrevBar: k([]string{"left", "h"}, "←/h", "prev bar"),
		NextBar: k([]string{"right", "l"}, "→/l", "next bar"),
		Up:      k([]string{"up", "k"}, "↑/k", "up"),
		Down:    k([]string{"down", "j"}, "↓/j", "down"),
		Quit:    k([]string{"q", "ctrl+c"}, "q", "quit"),
	}
}
