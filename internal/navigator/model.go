// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package navigator

import (
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/tfctl/difftree/internal/difftree"
	"github.com/tfctl/difftree/internal/log"
)

// State is the model's lifecycle phase.
type State int

const (
	Browsing State = iota
	ViewingExternal
	Exiting
)

func (s State) String() string {
	switch s {
	case Browsing:
		return "browsing"
	case ViewingExternal:
		return "viewing"
	case Exiting:
		return "exiting"
	}
	return "unknown"
}

// statusRows is the number of terminal rows below the list.
const statusRows = 1

// externalDoneMsg reports that the external viewer returned.
type externalDoneMsg struct {
	err error
}

// Model is the bubbletea model driving a Navigator.
type Model struct {
	nav    *Navigator
	keys   KeyMap
	viewer Viewer
	state  State
	tally  difftree.Tally
	status string

	width  int
	height int
}

// NewModel wraps nav. A nil viewer disables launching the external diff.
func NewModel(nav *Navigator, viewer Viewer) Model {
	m := Model{
		nav:    nav,
		keys:   DefaultKeyMap(),
		viewer: viewer,
		width:  nav.Width(),
		height: nav.Height() + statusRows,
	}
	if t := nav.Tree(); t != nil {
		m.tally = t.Count()
	}
	return m
}

func (m Model) State() State          { return m.state }
func (m Model) Navigator() *Navigator { return m.nav }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.nav.Resize(msg.Width, msg.Height-statusRows)
		return m, nil

	case externalDoneMsg:
		m.state = Browsing
		if msg.err != nil {
			// stderr belongs to the alt screen here; the status bar carries it.
			log.WithError(msg.err).Debug("external viewer failed")
			m.status = msg.err.Error()
		}
		return m, nil

	case tea.KeyMsg:
		if m.state != Browsing {
			return m, nil
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.state = Exiting
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.nav.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.nav.MoveDown()
	case key.Matches(msg, m.keys.PageUp):
		m.nav.PageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.nav.PageDown()
	case key.Matches(msg, m.keys.Collapse):
		m.nav.SetExpanded(m.nav.SelectedIndex()+1, false)
	case key.Matches(msg, m.keys.Expand):
		m.nav.SetExpanded(m.nav.SelectedIndex()+1, true)
	case key.Matches(msg, m.keys.Enter):
		pathA, pathB, ok := m.nav.Activate()
		if !ok || m.viewer == nil {
			return m, nil
		}
		log.Debugf("viewing %s against %s", pathA, pathB)
		m.state = ViewingExternal
		return m, tea.Exec(m.viewer.Command(pathA, pathB), func(err error) tea.Msg {
			return externalDoneMsg{err: err}
		})
	}

	return m, nil
}

// Run browses tree on the terminal until the user quits.
func Run(tree *difftree.Tree, rootA, rootB string, viewer Viewer) error {
	width, height := 80, 24
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, h, err := term.GetSize(fd); err == nil {
			width, height = w, h
		}
	}

	nav := New(tree, rootA, rootB)
	nav.Resize(width, height-statusRows)

	_, err := tea.NewProgram(NewModel(nav, viewer), tea.WithAltScreen()).Run()
	return err
}
