// Copyright (c) 2026 Keymaster Team
// otpentry - one-time password entry for the terminal
// This source code is licensed under the MIT license found in the LICENSE file.
package otp

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/otpentry/ui/tui/util"
)

const maskChar = "•"

type Styles struct {
	Box     lipgloss.Style
	Filled  lipgloss.Style
	Focused lipgloss.Style
}

func DefaultStyles() Styles {
	base := lipgloss.NewStyle().
		Padding(0, 1).
		MarginRight(1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))

	return Styles{
		Box:     base,
		Filled:  base.BorderForeground(lipgloss.Color("81")),
		Focused: base.BorderForeground(lipgloss.Color("205")).Bold(true),
	}
}

// box is the focus handle of one slot. It does not own the slot value, which
// lives in the Field.
type box struct {
	cursor  cursor.Model
	focused bool
}

func newBox() box {
	c := cursor.New()
	c.SetChar(" ")
	return box{cursor: c}
}

func (b *box) Focus() (tea.Cmd, help.KeyMap) {
	b.focused = true
	return b.cursor.Focus(), nil
}

func (b *box) Blur() {
	b.focused = false
	b.cursor.Blur()
}

// *box implements util.Focusable
var _ util.Focusable = (*box)(nil)

func (b box) View(value string, masked bool, styles Styles) string {
	char := value
	switch {
	case char == "":
		char = " "
	case masked:
		char = maskChar
	}

	if b.focused {
		b.cursor.SetChar(char)
		return styles.Focused.Render(b.cursor.View())
	}
	if value != "" {
		return styles.Filled.Render(char)
	}
	return styles.Box.Render(char)
}
