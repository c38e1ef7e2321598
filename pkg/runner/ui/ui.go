// Package ui provides a small live dashboard for today's timesheets. It
// reloads the day on a timer so a summary left open on a second screen stays
// current.
package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/punch/pkg/store"
	"tableflip.dev/punch/pkg/timesheet"
	"tableflip.dev/punch/pkg/timeutil"
)

// UI runs the dashboard until the user quits with q or ctrl+c.
type UI struct {
	Day         string
	Persistence store.Persistence
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#5A56E0")).
			Padding(0, 1)

	runningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	faintStyle = lipgloss.NewStyle().Faint(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)
)

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(30*time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type model struct {
	p     store.Persistence
	day   string
	rows  []timesheet.Row
	grand time.Duration
	err   error
}

func (m model) Init() tea.Cmd {
	return tickCmd()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			return m.reload(), nil
		}
	case tickMsg:
		return m.reload(), tickCmd()
	}
	return m, nil
}

func (m model) reload() model {
	d, err := m.p.Load(m.day)
	if err != nil {
		m.err = err
		return m
	}
	m.err = nil
	m.rows, m.grand = d.Summarize(timesheet.ClockOf(time.Now()))
	return m
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("punch — %s", m.day)))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(fmt.Sprintf("error: %v\n", m.err))
		return b.String()
	}

	if len(m.rows) == 0 {
		b.WriteString(boxStyle.Render(faintStyle.Render("nothing tracked yet")))
	} else {
		var lines []string
		for _, r := range m.rows {
			line := fmt.Sprintf("%-3s %-24s %s", r.ID, r.Name, timeutil.FormatHHMM(r.Total))
			switch r.Status {
			case timesheet.StatusRunning:
				line = runningStyle.Render(line + "  ● running")
			case timesheet.StatusLastActive:
				line += faintStyle.Render("  last active")
			}
			lines = append(lines, line)
		}
		lines = append(lines, "", fmt.Sprintf("%-28s %s", "Total", timeutil.FormatHHMM(m.grand)))
		b.WriteString(boxStyle.Render(strings.Join(lines, "\n")))
	}

	b.WriteString("\n")
	b.WriteString(faintStyle.Render("r refresh · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (n *UI) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not run ui, no persistence")
	}

	m := model{p: n.Persistence, day: n.Day}.reload()
	_, err := tea.NewProgram(m).Run()
	return err
}
