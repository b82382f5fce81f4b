// Copyright (c) 2026 Keymaster Team
// otpentry - one-time password entry for the terminal
// This source code is licensed under the MIT license found in the LICENSE file.
package otp

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/toeirei/otpentry/internal/i18n"
)

type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Backspace key.Binding
	Paste     key.Binding
	Submit    key.Binding
	Cancel    key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Left, km.Right, km.Paste, km.Submit}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Left, km.Right, km.Backspace},
		{km.Paste, km.Submit, km.Cancel},
	}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

// DefaultKeyMap builds the bindings with help texts in the active language.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", i18n.T("otp.help.left")),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", i18n.T("otp.help.right")),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", i18n.T("otp.help.backspace")),
		),
		Paste: key.NewBinding(
			key.WithKeys("ctrl+v"),
			key.WithHelp("ctrl+v", i18n.T("otp.help.paste")),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", i18n.T("otp.help.submit")),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", i18n.T("otp.help.cancel")),
		),
	}
}
