// Copyright (c) 2026 Keymaster Team
// otpentry - one-time password entry for the terminal
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/otpentry/ui/tui/models/components/otp"
	"github.com/toeirei/otpentry/ui/tui/models/views/root"
)

type Options struct {
	Length int
	Masked bool
	// Output receives the rendered UI. Stdout stays free for the code.
	Output io.Writer
	Input  io.Reader
}

// Run shows the entry full screen and blocks until the user submits or
// cancels.
func Run(o Options) (root.Result, error) {
	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if o.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(o.Output))
	}
	if o.Input != nil {
		progOpts = append(progOpts, tea.WithInput(o.Input))
	}

	final, err := tea.NewProgram(
		root.New(otp.WithLength(o.Length), otp.WithMasked(o.Masked)),
		progOpts...,
	).Run()
	if err != nil {
		return root.Result{}, fmt.Errorf("running tui: %w", err)
	}

	switch m := final.(type) {
	case root.Model:
		return m.Result(), nil
	case *root.Model:
		return m.Result(), nil
	}
	return root.Result{}, fmt.Errorf("unexpected final model %T", final)
}
