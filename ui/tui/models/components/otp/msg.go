// Copyright (c) 2026 Keymaster Team
// otpentry - one-time password entry for the terminal
// This source code is licensed under the MIT license found in the LICENSE file.
package otp

import tea "github.com/charmbracelet/bubbletea"

// PasteMsg carries text to distribute over the slots, e.g. clipboard content.
type PasteMsg struct {
	Text string
}

// SubmitMsg is emitted by the default submit handler once a complete code is
// confirmed.
type SubmitMsg struct {
	Code string
}

// CancelMsg is emitted by the default cancel handler.
type CancelMsg struct{}

type clipboardErrMsg struct {
	err error
}

func SubmitCmd(code string) tea.Cmd {
	return func() tea.Msg {
		return SubmitMsg{Code: code}
	}
}

func CancelCmd() tea.Cmd {
	return func() tea.Msg {
		return CancelMsg{}
	}
}
