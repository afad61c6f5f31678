package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nkapur/csvdash/internal/api"
	"github.com/nkapur/csvdash/internal/config"
	"github.com/nkapur/csvdash/internal/report"
	"github.com/nkapur/csvdash/utils"
)

// analysisDoneMsg settles one analyze() call: either a result or an error,
// never both.
type analysisDoneMsg struct {
	result  *api.AnalysisResult
	err     error
	elapsed time.Duration
}

func initialModel(cfg *config.Config, client *api.Client, file string) *Model {
	picker := newFilePicker()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = InfoStyle

	return &Model{
		cfg:          cfg,
		client:       client,
		picker:       picker,
		pickerMode:   file == "",
		selectedFile: file,
		state:        StateIdle,
		spin:         spin,
		help:         help.New(),
		keys:         DefaultKeyMap(),
	}
}

func (m *Model) Init() tea.Cmd {
	if m.pickerMode {
		return m.picker.Init()
	}
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.picker.Height = msg.Height - 6
		if m.result != nil {
			m.preview = newPreviewTable(m.result.Preview, m.contentWidth())
		}
		return m, nil

	case spinner.TickMsg:
		if m.state == StateLoading {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case analysisDoneMsg:
		return m.handleAnalysisDone(msg)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if !m.pickerMode {
			return m.handleDashboardKeys(msg)
		}
	}

	if m.pickerMode {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)

		if didSelect, path := m.picker.DidSelectFile(msg); didSelect {
			m.selectedFile = path
			m.pickerMode = false
		}
		return m, cmd
	}

	return m, nil
}

func (m *Model) handleDashboardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Analyze):
		return m.startAnalysis()

	case key.Matches(msg, m.keys.Pick):
		if m.state == StateLoading {
			return m, nil
		}
		m.pickerMode = true
		return m, m.picker.Init()

	case key.Matches(msg, m.keys.PrevBar):
		m.cycleBar(-1)

	case key.Matches(msg, m.keys.NextBar):
		m.cycleBar(1)

	default:
		if m.state == StateSucceeded {
			var cmd tea.Cmd
			m.preview, cmd = m.preview.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// startAnalysis transitions to Loading and fires the request. The guard
// here is the only defense against overlapping requests: without a held
// file, or while one request is in flight, the trigger does nothing.
func (m *Model) startAnalysis() (tea.Model, tea.Cmd) {
	if m.selectedFile == "" || m.state == StateLoading {
		return m, nil
	}

	m.state = StateLoading
	m.result = nil
	m.errMsg = ""
	m.missing = nil
	m.selectedBar = 0

	return m, tea.Batch(m.spin.Tick, analyzeCmd(m.client, m.selectedFile))
}

// analyzeCmd runs the upload off the update loop. No cancellation and no
// retries: the request runs to completion or transport failure.
func analyzeCmd(client *api.Client, path string) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		result, err := client.AnalyzeFile(context.Background(), path)
		return analysisDoneMsg{result: result, err: err, elapsed: time.Since(start)}
	}
}

func (m *Model) handleAnalysisDone(msg analysisDoneMsg) (tea.Model, tea.Cmd) {
	m.elapsed = msg.elapsed

	if msg.err != nil {
		m.state = StateFailed
		m.errMsg = api.DisplayMessage(msg.err)
		m.result = nil
		m.missing = nil
		return m, nil
	}

	m.state = StateSucceeded
	m.result = msg.result
	m.errMsg = ""
	m.missing = report.MissingChart(msg.result, m.cfg.Chart.TopColumns)
	m.selectedBar = 0
	m.preview = newPreviewTable(msg.result.Preview, m.contentWidth())

	return m, nil
}

func (m *Model) cycleBar(direction int) {
	if m.state != StateSucceeded || len(m.missing) == 0 {
		return
	}
	if direction > 0 {
		m.selectedBar = utils.GetNextEnum(m.selectedBar, len(m.missing)-1)
	} else {
		m.selectedBar = utils.GetPrevEnum(m.selectedBar, len(m.missing)-1)
	}
}

func (m *Model) contentWidth() int {
	if m.width == 0 {
		return 80
	}
	return m.width - 4
}

func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.pickerMode {
		return lipgloss.JoinVertical(lipgloss.Left,
			HeaderStyle.Render("Select a CSV file to analyze"),
			m.picker.View(),
			StatusBarStyle.Render("enter: select  q: quit"),
		)
	}

	var content string
	switch m.state {
	case StateLoading:
		content = fmt.Sprintf("%s Analyzing %s...", m.spin.View(), filepath.Base(m.selectedFile))

	case StateFailed:
		content = ErrorBoxStyle.Render(m.errMsg)

	case StateSucceeded:
		content = RenderDashboard(m.result, m.missing, m.selectedBar, m.preview.View(), m.contentWidth())

	default:
		content = MutedStyle.Render("Press enter to analyze the selected file, f to pick another.")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		content,
		m.renderStatusBar(),
	)
}

func (m *Model) renderHeader() string {
	file := "no file selected"
	if m.selectedFile != "" {
		file = filepath.Base(m.selectedFile)
	}

	title := HeaderStyle.Render("csvdash")
	info := MutedStyle.Render(fmt.Sprintf("%s  [%s]", file, m.state))

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", info),
		MutedStyle.Render(borderLine(m.width)),
	)
}

func (m *Model) renderStatusBar() string {
	status := m.help.ShortHelpView(m.keys.ShortHelp())
	if m.state == StateSucceeded && m.elapsed > 0 {
		status = fmt.Sprintf("analyzed in %s  %s", utils.FormatDuration(m.elapsed), status)
	}
	return StatusBarStyle.Width(m.width).Render(status)
}

// StartTUI runs the dashboard. file may be empty, in which case the view
// opens in file-picker mode.
func StartTUI(cfg *config.Config, client *api.Client, file string) error {
	model := initialModel(cfg, client, file)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

func borderLine(width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat("─", width)
}
