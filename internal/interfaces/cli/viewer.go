package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"montecarlo.dev/monaco/internal/core/result"
)

// NewViewCommand creates the view command
func NewViewCommand(container *CLIContainer) *cobra.Command {
	flags := &ImportFlags{}

	cmd := &cobra.Command{
		Use:   "view <job-dir>",
		Short: "Browse the results of a Monaco job interactively",
		Long: `Import the result files of a job directory and browse them in the
terminal. Select a line with the arrow keys and press Enter to show its
value or its phi(rho z) curve.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := importJob(cmd, container, args[0], flags)
			if err != nil {
				return err
			}

			program := tea.NewProgram(newViewerModel(args[0], results), tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("viewer failed: %w", err)
			}
			return nil
		},
	}

	addImportFlags(cmd, flags)
	return cmd
}

// viewerRow is one line of one detector.
type viewerRow struct {
	Detector   string
	Transition string
	Summary    string
	IsCurve    bool
	Points     []result.DepthPoint
}

type viewerKeyMap struct {
	Quit     key.Binding
	Up       key.Binding
	Down     key.Binding
	Toggle   key.Binding
	PageUp   key.Binding
	PageDown key.Binding
}

var viewerKeys = viewerKeyMap{
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Toggle:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "details")),
	PageUp:   key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "scroll up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown", "f"), key.WithHelp("pgdn", "scroll down")),
}

// viewerModel holds the state for the Bubble Tea result viewer
type viewerModel struct {
	jobDir       string
	rows         []viewerRow
	selectedRow  int
	showDetail   bool
	detail       viewport.Model
	windowWidth  int
	windowHeight int
}

func newViewerModel(jobDir string, results map[string]result.Result) viewerModel {
	var rows []viewerRow
	for _, doc := range toDocs(results) {
		for _, e := range doc.Intensities {
			rows = append(rows, viewerRow{
				Detector:   doc.Detector,
				Transition: e.Transition,
				Summary:    fmt.Sprintf("%.6g", e.Value),
			})
		}
		for _, e := range doc.Distributions {
			rows = append(rows, viewerRow{
				Detector:   doc.Detector,
				Transition: e.Transition,
				Summary:    fmt.Sprintf("%d points", len(e.Points)),
				IsCurve:    true,
				Points:     e.Points,
			})
		}
	}

	m := viewerModel{jobDir: jobDir, rows: rows, windowWidth: 80, windowHeight: 24}
	m.detail = viewport.New(m.windowWidth, m.detailHeight())
	return m
}

// Init implements the Bubble Tea init method
func (m viewerModel) Init() tea.Cmd {
	return nil
}

// Update implements the Bubble Tea update method
func (m viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		m.detail.Width = msg.Width
		m.detail.Height = m.detailHeight()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, viewerKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, viewerKeys.Up):
			if m.selectedRow > 0 {
				m.selectedRow--
				m.syncDetail()
			}
			return m, nil

		case key.Matches(msg, viewerKeys.Down):
			if m.selectedRow < len(m.rows)-1 {
				m.selectedRow++
				m.syncDetail()
			}
			return m, nil

		case key.Matches(msg, viewerKeys.Toggle):
			m.showDetail = !m.showDetail
			m.syncDetail()
			return m, nil

		case key.Matches(msg, viewerKeys.PageUp):
			m.detail.SetYOffset(m.detail.YOffset - m.detail.Height)
			return m, nil

		case key.Matches(msg, viewerKeys.PageDown):
			m.detail.SetYOffset(m.detail.YOffset + m.detail.Height)
			return m, nil
		}
	}

	return m, nil
}

// View implements the Bubble Tea view method
func (m viewerModel) View() string {
	sections := []string{m.renderHeader(), m.renderTable()}
	if m.showDetail && len(m.rows) > 0 {
		sections = append(sections, m.renderDetail())
	}
	sections = append(sections, m.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m viewerModel) renderHeader() string {
	title := titleStyle.Render("Monaco results")
	info := dimStyle.Render(fmt.Sprintf("  %s | %d lines", m.jobDir, len(m.rows)))
	return lipgloss.JoinHorizontal(lipgloss.Left, title, info)
}

func (m viewerModel) renderTable() string {
	if len(m.rows) == 0 {
		return dimStyle.Render("\n  No results to display.\n")
	}

	header := titleStyle.Render(fmt.Sprintf("%-14s │ %-10s │ %s", "DETECTOR", "LINE", "VALUE"))
	lines := []string{header}

	start, end := m.visibleRange()
	for i := start; i < end; i++ {
		row := m.rows[i]
		style := lipgloss.NewStyle()
		if i == m.selectedRow {
			style = style.Background(lipgloss.Color("240"))
		}
		lines = append(lines, style.Render(fmt.Sprintf("%-14s │ %-10s │ %s",
			truncateString(row.Detector, 14), row.Transition, row.Summary)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// visibleRange keeps the selected row on screen.
func (m viewerModel) visibleRange() (int, int) {
	maxRows := m.windowHeight - 6
	if m.showDetail {
		maxRows /= 2
	}
	if maxRows < 1 {
		maxRows = 1
	}
	start := 0
	if m.selectedRow >= maxRows {
		start = m.selectedRow - maxRows + 1
	}
	end := start + maxRows
	if end > len(m.rows) {
		end = len(m.rows)
	}
	return start, end
}

func (m viewerModel) detailHeight() int {
	h := m.windowHeight/2 - 2
	if h < 3 {
		h = 3
	}
	return h
}

// syncDetail loads the selected row into the detail viewport.
func (m *viewerModel) syncDetail() {
	if !m.showDetail || len(m.rows) == 0 {
		return
	}
	row := m.rows[m.selectedRow]

	var b strings.Builder
	if row.IsCurve {
		b.WriteString(dimStyle.Render(fmt.Sprintf("%12s  %12s", "rho z", "intensity")))
		for _, p := range row.Points {
			b.WriteString(fmt.Sprintf("\n%12.5g  %12.5g", p.Depth, p.Intensity))
		}
	} else {
		b.WriteString(labelStyle.Render("intensity") + row.Summary)
	}
	m.detail.SetContent(b.String())
	m.detail.GotoTop()
}

func (m viewerModel) renderDetail() string {
	row := m.rows[m.selectedRow]
	return titleStyle.Render(row.Detector+" / "+row.Transition) + "\n" + m.detail.View()
}

func (m viewerModel) renderFooter() string {
	return dimStyle.Render("Controls: [↑↓] Navigate | [Enter] Details | [PgUp/PgDn] Scroll | [q] Quit")
}

// truncateString truncates a string to the specified length
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
