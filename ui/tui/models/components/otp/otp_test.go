// Copyright (c) 2026 Keymaster Team
// otpentry - one-time password entry for the terminal
// This source code is licensed under the MIT license found in the LICENSE file.
package otp

import (
	"errors"
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newMounted(t *testing.T, opts ...Option) *Model {
	t.Helper()
	m := New(opts...)
	m.Init()
	return m
}

func assertFocus(t *testing.T, m *Model, want int) {
	t.Helper()
	if m.Focused() != want {
		t.Fatalf("expected focus %d, got %d", want, m.Focused())
	}
	for i := 0; i < m.Len(); i++ {
		if m.BoxFocused(i) != (i == want) {
			t.Fatalf("box %d focused=%v while focus is %d", i, m.BoxFocused(i), want)
		}
	}
}

func TestInit_FocusesFirstBox(t *testing.T) {
	for _, n := range []int{1, 4, 6} {
		m := newMounted(t, WithLength(n))
		if m.Len() != n {
			t.Fatalf("expected %d boxes, got %d", n, m.Len())
		}
		if !m.IsFocused() {
			t.Fatalf("widget not focused after init")
		}
		assertFocus(t, m, 0)
		if m.Value() != "" {
			t.Fatalf("expected empty value, got %q", m.Value())
		}
	}
}

func TestNew_DefaultLength(t *testing.T) {
	if got := New().Len(); got != DefaultLength {
		t.Fatalf("expected %d boxes, got %d", DefaultLength, got)
	}
	if got := New(WithLength(0)).Len(); got != DefaultLength {
		t.Fatalf("expected %d boxes, got %d", DefaultLength, got)
	}
}

func TestUpdate_TypingMovesRight(t *testing.T) {
	m := newMounted(t, WithLength(4))
	for i, r := range "4821" {
		m.Update(runeKey(r))
		want := min(i+1, 3)
		assertFocus(t, m, want)
	}
	if m.Value() != "4821" || !m.Complete() {
		t.Fatalf("unexpected value %q", m.Value())
	}
}

func TestUpdate_IgnoresNonDigits(t *testing.T) {
	m := newMounted(t, WithLength(4))
	m.Update(runeKey('1'))

	msgs := []tea.KeyMsg{
		runeKey('x'),
		runeKey('#'),
		{Type: tea.KeySpace, Runes: []rune{' '}},
		{Type: tea.KeyTab},
		{Type: tea.KeyUp},
		{Type: tea.KeyDelete},
		{Type: tea.KeyRunes, Runes: []rune("12")},
	}
	for _, msg := range msgs {
		if cmd := m.Update(msg); cmd != nil {
			t.Fatalf("key %q returned a command", msg.String())
		}
		assertFocus(t, m, 1)
		if got := m.Values(); !slices.Equal(got, []string{"1", "", "", ""}) {
			t.Fatalf("key %q changed slots: %v", msg.String(), got)
		}
	}
}

func TestUpdate_Backspace(t *testing.T) {
	m := newMounted(t, WithLength(4))
	for _, r := range "123" {
		m.Update(runeKey(r))
	}
	assertFocus(t, m, 3)

	// slot 3 is empty, focus still moves left
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assertFocus(t, m, 2)
	if m.Value() != "123" {
		t.Fatalf("unexpected value %q", m.Value())
	}

	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assertFocus(t, m, 1)
	if got := m.Values(); !slices.Equal(got, []string{"1", "2", "", ""}) {
		t.Fatalf("unexpected slots %v", got)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assertFocus(t, m, 0)
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assertFocus(t, m, 0)
	if m.Value() != "" {
		t.Fatalf("expected all slots cleared, got %q", m.Value())
	}
}

func TestUpdate_ArrowsOnlyMoveFocus(t *testing.T) {
	m := newMounted(t, WithLength(3))
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assertFocus(t, m, 0)

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assertFocus(t, m, 2)
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assertFocus(t, m, 2)

	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assertFocus(t, m, 1)
	if m.Value() != "" {
		t.Fatalf("arrows changed slots: %v", m.Values())
	}
}

func TestUpdate_BracketedPaste(t *testing.T) {
	m := newMounted(t)
	for range 6 {
		m.Update(runeKey('9'))
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a1b2c3"), Paste: true})
	if got := m.Values(); !slices.Equal(got, []string{"1", "2", "3", "9", "9", "9"}) {
		t.Fatalf("unexpected slots %v", got)
	}
	assertFocus(t, m, 3)
}

func TestUpdate_PasteMsg(t *testing.T) {
	m := newMounted(t)
	m.Update(PasteMsg{Text: "1234567"})
	if m.Value() != "123456" {
		t.Fatalf("unexpected value %q", m.Value())
	}
	assertFocus(t, m, 5)

	m.Update(PasteMsg{Text: "abc"})
	if m.Value() != "123456" {
		t.Fatalf("paste without digits changed value to %q", m.Value())
	}
	assertFocus(t, m, 5)
}

func TestUpdate_ShortPasteFromMiddle(t *testing.T) {
	m := newMounted(t)
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m.Update(tea.KeyMsg{Type: tea.KeyRight})

	m.Update(PasteMsg{Text: "12"})
	if got := m.Values(); !slices.Equal(got, []string{"1", "2", "", "", "", ""}) {
		t.Fatalf("unexpected slots %v", got)
	}
	assertFocus(t, m, 2)
}

func TestUpdate_ClipboardPaste(t *testing.T) {
	prev := readClipboard
	defer func() { readClipboard = prev }()
	readClipboard = func() (string, error) { return "code: 42 17", nil }

	m := newMounted(t)
	cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	if cmd == nil {
		t.Fatalf("expected clipboard command")
	}
	m.Update(cmd())

	if got := m.Values(); !slices.Equal(got, []string{"4", "2", "1", "7", "", ""}) {
		t.Fatalf("unexpected slots %v", got)
	}
	assertFocus(t, m, 4)
}

func TestUpdate_ClipboardErrorIgnored(t *testing.T) {
	prev := readClipboard
	defer func() { readClipboard = prev }()
	readClipboard = func() (string, error) { return "", errors.New("no clipboard") }

	m := newMounted(t)
	m.Update(runeKey('5'))
	cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	if cmd == nil {
		t.Fatalf("expected clipboard command")
	}
	if next := m.Update(cmd()); next != nil {
		t.Fatalf("expected no command after clipboard error")
	}
	if m.Value() != "5" {
		t.Fatalf("unexpected value %q", m.Value())
	}
	assertFocus(t, m, 1)
}

func TestUpdate_SubmitOnlyWhenComplete(t *testing.T) {
	m := newMounted(t, WithLength(3))
	if cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Fatalf("incomplete code must not submit")
	}

	m.Update(PasteMsg{Text: "314"})
	cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected submit command")
	}
	msg, ok := cmd().(SubmitMsg)
	if !ok || msg.Code != "314" {
		t.Fatalf("unexpected submit message %#v", msg)
	}
}

func TestUpdate_CustomCallbacks(t *testing.T) {
	var submitted string
	cancelled := false
	m := newMounted(t,
		WithLength(2),
		WithOnSubmit(func(code string) tea.Cmd { submitted = code; return nil }),
		WithOnCancel(func() tea.Cmd { cancelled = true; return nil }),
	)

	m.Update(PasteMsg{Text: "77"})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if submitted != "77" {
		t.Fatalf("expected submitted code 77, got %q", submitted)
	}
	if !cancelled {
		t.Fatalf("expected cancel callback to run")
	}
}

func TestBlur_IgnoresInput(t *testing.T) {
	m := newMounted(t, WithLength(3))
	m.Blur()

	m.Update(runeKey('1'))
	m.Update(PasteMsg{Text: "123"})
	if m.Value() != "" {
		t.Fatalf("blurred widget accepted input: %q", m.Value())
	}
	if m.BoxFocused(0) {
		t.Fatalf("box 0 still focused after blur")
	}

	_, keyMap := m.Focus()
	if keyMap == nil {
		t.Fatalf("expected key map from Focus")
	}
	assertFocus(t, m, 0)
	m.Update(runeKey('1'))
	if m.Value() != "1" {
		t.Fatalf("unexpected value after refocus %q", m.Value())
	}
}

func TestReset_ClearsAndRefocuses(t *testing.T) {
	m := newMounted(t, WithLength(3))
	m.Update(PasteMsg{Text: "12"})
	m.Reset()
	if m.Value() != "" {
		t.Fatalf("expected empty value, got %q", m.Value())
	}
	assertFocus(t, m, 0)
}

func TestView_RendersEveryBox(t *testing.T) {
	m := newMounted(t, WithLength(4))
	m.Update(PasteMsg{Text: "5"})
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m.Update(runeKey('8'))

	view := m.View()
	if !strings.Contains(view, "5") || !strings.Contains(view, "8") {
		t.Fatalf("expected digits in view:\n%s", view)
	}
	// one rounded top-left corner per box
	if got := strings.Count(view, "╭"); got != 4 {
		t.Fatalf("expected 4 boxes, found %d:\n%s", got, view)
	}
}

func TestView_Masked(t *testing.T) {
	m := newMounted(t, WithLength(3), WithMasked(true))
	m.Update(PasteMsg{Text: "97"})
	view := m.View()
	if strings.Contains(view, "9") || strings.Contains(view, "7") {
		t.Fatalf("masked view leaks digits:\n%s", view)
	}
	if got := strings.Count(view, maskChar); got != 2 {
		t.Fatalf("expected 2 mask chars, found %d:\n%s", got, view)
	}
}

func TestView_CustomStyles(t *testing.T) {
	styles := Styles{
		Box:     lipgloss.NewStyle().Border(lipgloss.NormalBorder()),
		Filled:  lipgloss.NewStyle().Border(lipgloss.DoubleBorder()),
		Focused: lipgloss.NewStyle().Border(lipgloss.ThickBorder()),
	}
	m := newMounted(t, WithLength(4), WithStyles(styles))
	m.Update(PasteMsg{Text: "12"})
	view := m.View()

	counts := []struct {
		corner string
		want   int
	}{
		{"┌", 1}, // empty
		{"╔", 2}, // filled
		{"┏", 1}, // focused
		{"╭", 0}, // default style unused
	}
	for _, c := range counts {
		if got := strings.Count(view, c.corner); got != c.want {
			t.Fatalf("expected %d %q corners, found %d:\n%s", c.want, c.corner, got, view)
		}
	}
}
