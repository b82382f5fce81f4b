// Copyright (c) 2026 Keymaster Team
// otpentry - one-time password entry for the terminal
// This source code is licensed under the MIT license found in the LICENSE file.

// Package windowtitle keeps the terminal window title in sync as
// "<base><delimiter><current>".
package windowtitle

import tea "github.com/charmbracelet/bubbletea"

func NewHandler(base string, delimiter string) *TitleHandler {
	return &TitleHandler{
		Base:      base,
		Delimiter: delimiter,
	}
}

type TitleHandler struct {
	Base      string
	Delimiter string
	current   string
}

func (t TitleHandler) String() string {
	if t.current == "" {
		return t.Base
	}
	return t.Base + t.Delimiter + t.current
}

func (t TitleHandler) Init() tea.Cmd {
	return tea.SetWindowTitle(t.String())
}

// Handle consumes title messages and returns a command only when the title
// actually changed.
func (t *TitleHandler) Handle(msg tea.Msg) tea.Cmd {
	title, ok := msg.(titleMsg)
	if !ok || t.current == string(title) {
		return nil
	}
	t.current = string(title)
	return tea.SetWindowTitle(t.String())
}
