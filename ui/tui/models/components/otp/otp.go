// Copyright (c) 2026 Keymaster Team
// otpentry - one-time password entry for the terminal
// This source code is licensed under the MIT license found in the LICENSE file.
package otp

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/otpentry/internal/logging"
	"github.com/toeirei/otpentry/ui/tui/util"
	"github.com/toeirei/otpentry/util/slicest"
)

// readClipboard is swapped out in tests.
var readClipboard = clipboard.ReadAll

type Model struct {
	KeyMap   KeyMap
	Styles   Styles
	Masked   bool
	OnSubmit func(code string) tea.Cmd
	OnCancel func() tea.Cmd

	length  int
	field   Field
	boxes   []box
	focus   int
	focused bool
}

// Init focuses the first box and starts its cursor.
func (m *Model) Init() tea.Cmd {
	m.boxes[m.focus].Blur()
	m.focus = 0
	cmd, _ := m.Focus()
	return cmd
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PasteMsg:
		if m.focused {
			return m.paste(msg.Text)
		}
		return nil
	case clipboardErrMsg:
		logging.Debugf("otp: clipboard read failed: %v", msg.err)
		return nil
	case tea.KeyMsg:
		if m.focused {
			return m.handleKey(msg)
		}
		return nil
	}

	return util.UpdateTeaModelsInplace(msg, slicest.MapI(m.boxes, func(i int, _ box) *cursor.Model {
		return &m.boxes[i].cursor
	})...)
}

func (m Model) View() string {
	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		slicest.MapI(m.boxes, func(i int, b box) string {
			return b.View(m.field.Slot(i), m.Masked, m.Styles)
		})...,
	)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	cmd, _ := m.boxes[m.focus].Focus()
	return cmd, m.KeyMap
}

func (m *Model) Blur() {
	m.focused = false
	m.boxes[m.focus].Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

func (m Model) Len() int         { return m.field.Len() }
func (m Model) Value() string    { return m.field.Value() }
func (m Model) Values() []string { return m.field.Values() }
func (m Model) Complete() bool   { return m.field.Complete() }
func (m Model) Focused() int     { return m.focus }
func (m Model) IsFocused() bool  { return m.focused }

// BoxFocused reports whether box i currently holds keyboard focus.
func (m Model) BoxFocused(i int) bool {
	return i >= 0 && i < len(m.boxes) && m.boxes[i].focused
}

// Reset clears every slot and moves focus back to the first box.
func (m *Model) Reset() tea.Cmd {
	m.field.Reset()
	return m.moveFocus(0)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	// bracketed paste arrives as a single key message
	if msg.Paste {
		return m.paste(string(msg.Runes))
	}

	switch {
	case key.Matches(msg, m.KeyMap.Submit):
		if m.field.Complete() && m.OnSubmit != nil {
			return m.OnSubmit(m.field.Value())
		}
		return nil
	case key.Matches(msg, m.KeyMap.Cancel):
		if m.OnCancel != nil {
			return m.OnCancel()
		}
		return nil
	case key.Matches(msg, m.KeyMap.Paste):
		return pasteFromClipboard
	case key.Matches(msg, m.KeyMap.Left):
		return m.press(KeyLeft)
	case key.Matches(msg, m.KeyMap.Right):
		return m.press(KeyRight)
	case key.Matches(msg, m.KeyMap.Backspace):
		return m.press(KeyBackspace)
	}

	return m.press(msg.String())
}

func (m *Model) press(k string) tea.Cmd {
	return m.moveFocus(m.field.Press(m.focus, k))
}

func (m *Model) paste(text string) tea.Cmd {
	next, ok := m.field.Paste(text)
	if !ok {
		return nil
	}
	logging.Debugf("otp: pasted into %d slots", min(len(extractDigits(text)), m.field.Len()))
	return m.moveFocus(next)
}

// moveFocus transfers focus to box i. Indices without a box are ignored.
func (m *Model) moveFocus(i int) tea.Cmd {
	if i < 0 || i >= len(m.boxes) || i == m.focus {
		return nil
	}

	logging.Debugf("otp: focus %d -> %d", m.focus, i)
	m.boxes[m.focus].Blur()
	m.focus = i
	if !m.focused {
		return nil
	}
	cmd, _ := m.boxes[i].Focus()
	return cmd
}

func pasteFromClipboard() tea.Msg {
	text, err := readClipboard()
	if err != nil {
		return clipboardErrMsg{err: err}
	}
	return PasteMsg{Text: text}
}
