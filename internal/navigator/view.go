// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package navigator

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
	"github.com/samber/lo"

	"github.com/tfctl/difftree/internal/difftree"
)

const (
	minWidth  = 8
	minHeight = statusRows + 1
)

var (
	styleEqual   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	styleDiffers = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	styleAdded   = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	styleMissing = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	styleThumb   = lipgloss.NewStyle().Reverse(true)
	styleStatus  = lipgloss.NewStyle().Bold(true)
)

func statusStyle(s difftree.Status) lipgloss.Style {
	switch s {
	case difftree.StatusDiffers:
		return styleDiffers
	case difftree.StatusAdded:
		return styleAdded
	case difftree.StatusMissing:
		return styleMissing
	}
	return styleEqual
}

func (m Model) View() string {
	if m.state == Exiting {
		return ""
	}
	if m.width < minWidth || m.height < minHeight {
		return "terminal too small"
	}

	rows := m.nav.Height()
	textWidth := m.width - 2
	nodes := m.nav.Visible(m.nav.ScrollOffset(), rows)
	thumbSize, thumbPos := m.nav.Scrollbar()

	var b strings.Builder
	for i := 0; i < rows; i++ {
		if i < len(nodes) {
			idx := m.nav.ScrollOffset() + i
			style := statusStyle(nodes[i].Kind.Status())
			if idx == m.nav.SelectedIndex() {
				style = style.Reverse(true)
			}
			b.WriteString(style.Render(fit(m.rowText(nodes[i]), textWidth)))
		} else {
			b.WriteString(strings.Repeat(" ", textWidth))
		}

		b.WriteString("│")
		if i >= thumbPos && i < thumbPos+thumbSize {
			b.WriteString(styleThumb.Render(" "))
		} else {
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	b.WriteString(styleStatus.Render(fit(m.statusLine(), m.width)))
	return b.String()
}

// rowText is the indented marker and name; collapsed directories get a
// trailing arrow.
func (m Model) rowText(n *difftree.Node) string {
	text := difftree.Line(m.nav.Tree(), n)
	if n.Expandable() && !n.Expanded {
		text += " ->"
	}
	return text
}

func (m Model) statusLine() string {
	if m.status != "" {
		return " " + m.status
	}
	help := lo.Map(m.keys.ShortHelp(), func(k key.Binding, _ int) string {
		return k.Help().Key + " " + k.Help().Desc
	})
	count := m.nav.VisibleCount()
	position := 0
	if count > 0 {
		position = m.nav.SelectedIndex() + 1
	}
	return fmt.Sprintf(" %s/%s  =%s *%s +%s -%s  %s",
		humanize.Comma(int64(position)),
		humanize.Comma(int64(count)),
		humanize.Comma(int64(m.tally.Equal)),
		humanize.Comma(int64(m.tally.Differs)),
		humanize.Comma(int64(m.tally.Added)),
		humanize.Comma(int64(m.tally.Missing)),
		strings.Join(help, "  "),
	)
}

// fit truncates or pads s to exactly width terminal cells.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) > width {
		s = ansi.Truncate(s, width, "")
	}
	return s + strings.Repeat(" ", max(0, width-lipgloss.Width(s)))
}
