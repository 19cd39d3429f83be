// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"fmt"
	"strings"
	"time"

	bar "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kako-jun/gitp/internal/progress"
)

// Title is the header text.
const Title = "gitp - Git Multiple Repository Manager"

// QuitHint is appended to the footer.
const QuitHint = "Press 'q' to force quit"

const (
	barWidth = 50
	boxLines = 3 // height of a bordered one-line box
	indent   = "   "
)

// tickMsg asks the model to take a fresh snapshot.
type tickMsg time.Time

// finishedMsg ends the hold on the final frame.
type finishedMsg struct{}

// Model is the bubbletea model of the progress view.
type Model struct {
	table     *progress.Table
	entries   []progress.Entry
	bar       bar.Model
	viewport  viewport.Model
	styles    *Styles
	ready     bool
	done      bool
	cancelled bool
}

var _ tea.Model = (*Model)(nil)

// NewModel creates a model observing table.
func NewModel(table *progress.Table) *Model {
	b := bar.New(bar.WithWidth(barWidth), bar.WithoutPercentage())
	b.Full = '█'
	b.Empty = '░'
	b.EmptyColor = colourGrey

	return &Model{
		table:   table,
		entries: table.Snapshot(),
		bar:     b,
		styles:  NewStyles(),
	}
}

// Done reports whether every entry was terminal at the last snapshot.
func (m *Model) Done() bool {
	return m.done
}

// Cancelled reports whether the user quit before completion.
func (m *Model) Cancelled() bool {
	return m.cancelled
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tick()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.cancelled = !m.done
			return m, tea.Quit
		}

		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)

		return m, cmd

	case tea.WindowSizeMsg:
		height := max(msg.Height-2*boxLines, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}

		return m, nil

	case tickMsg:
		if m.done {
			return m, nil
		}

		m.entries = m.table.Snapshot()
		if progress.AllDone(m.entries) {
			m.done = true
			return m, tea.Tick(Hold, func(time.Time) tea.Msg { return finishedMsg{} })
		}

		return m, tick()

	case finishedMsg:
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	var view strings.Builder

	view.WriteString(m.styles.Box.Render(m.styles.Title.Render("gitp") + strings.TrimPrefix(Title, "gitp")))
	view.WriteString("\n")

	body := m.renderEntries()
	if m.ready {
		m.viewport.SetContent(body)
		body = m.viewport.View()
	}

	view.WriteString(body)
	view.WriteString("\n")
	view.WriteString(m.styles.Box.Render(m.renderFooter()))

	return view.String()
}

func (m *Model) renderEntries() string {
	var b strings.Builder

	for i, e := range m.entries {
		if i > 0 {
			b.WriteString("\n")
		}

		style := m.styles.For(e.Status)
		fmt.Fprintf(&b, "%s %s\n", style.Render(e.Status.Glyph()), style.Render(e.Name))
		fmt.Fprintf(&b, "%s%s\n", indent, m.styles.Message.Render(e.Message))

		eb := m.bar
		eb.FullColor = statusColour(e.Status)
		pct := min(max(e.Percent, 0), 100)
		fmt.Fprintf(&b, "%s%s %d%%\n", indent, eb.ViewAs(float64(pct)/100), pct)
	}

	return b.String()
}

func (m *Model) renderFooter() string {
	c := progress.Count(m.entries)

	return m.styles.Label.Render(progress.FooterLine(c)) + " | " + m.styles.Help.Render(QuitHint)
}

func tick() tea.Cmd {
	return tea.Tick(Interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
