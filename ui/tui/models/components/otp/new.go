// Copyright (c) 2026 Keymaster Team
// otpentry - one-time password entry for the terminal
// This source code is licensed under the MIT license found in the LICENSE file.
package otp

import tea "github.com/charmbracelet/bubbletea"

type Option = func(m *Model)

// New builds an unfocused widget. Call Init (or Focus) to put focus on the
// first box.
func New(opts ...Option) *Model {
	m := &Model{
		KeyMap:   DefaultKeyMap(),
		Styles:   DefaultStyles(),
		OnSubmit: SubmitCmd,
		OnCancel: CancelCmd,
		length:   DefaultLength,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.field = NewField(m.length)
	m.boxes = make([]box, m.field.Len())
	for i := range m.boxes {
		m.boxes[i] = newBox()
	}
	return m
}

// WithLength sets the number of slots. Values below 1 fall back to
// DefaultLength.
func WithLength(n int) Option {
	return func(m *Model) {
		m.length = n
	}
}

func WithMasked(masked bool) Option {
	return func(m *Model) {
		m.Masked = masked
	}
}

func WithOnSubmit(fn func(code string) tea.Cmd) Option {
	return func(m *Model) {
		m.OnSubmit = fn
	}
}

func WithOnCancel(fn func() tea.Cmd) Option {
	return func(m *Model) {
		m.OnCancel = fn
	}
}

func WithKeyMap(keyMap KeyMap) Option {
	return func(m *Model) {
		m.KeyMap = keyMap
	}
}

func WithStyles(styles Styles) Option {
	return func(m *Model) {
		m.Styles = styles
	}
}
