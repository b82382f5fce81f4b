// Copyright (c) 2026 Keymaster Team
// otpentry - one-time password entry for the terminal
// This source code is licensed under the MIT license found in the LICENSE file.

// Package root hosts the OTP widget full screen: title, the boxes and the key
// help, centered in the terminal.
package root

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/otpentry/buildvars"
	"github.com/toeirei/otpentry/internal/i18n"
	"github.com/toeirei/otpentry/ui/tui/models/components/keyhelp"
	"github.com/toeirei/otpentry/ui/tui/models/components/otp"
	windowtitle "github.com/toeirei/otpentry/ui/tui/models/helpers/title"
	"github.com/toeirei/otpentry/ui/tui/util"
)

const (
	title        string = "otpentry"
	maxHelpWidth        = 120
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true)
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Result is what the user did before the program quit.
type Result struct {
	Code      string
	Cancelled bool
}

type Model struct {
	otp          *otp.Model
	keyhelp      *keyhelp.Model
	keyMap       KeyMap
	titleHandler *windowtitle.TitleHandler
	size         util.Size
	result       Result
}

func New(opts ...otp.Option) *Model {
	version := buildvars.VersionOrDefault("dev")

	return &Model{
		otp:          otp.New(opts...),
		keyhelp:      keyhelp.New(),
		keyMap:       BaseKeyMap(),
		titleHandler: windowtitle.NewHandler(fmt.Sprintf("%s %s", title, version), " | "),
	}
}

func (m Model) Init() tea.Cmd {
	titleCmd := m.titleHandler.Init()
	focusCmd := m.otp.Init()
	keyMapCmd := util.AnnounceKeyMapCmd(util.MergeKeyMaps(m.otp.KeyMap, m.keyMap))

	return tea.Batch(titleCmd, focusCmd, keyMapCmd, windowtitle.Set(i18n.T("otp.title")))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.size.Update(msg)
		// leave a margin and cap the help line on wide terminals
		helpWidth := util.Clamp(0, msg.Width-4, maxHelpWidth)
		return m, m.keyhelp.Update(tea.WindowSizeMsg{Width: helpWidth, Height: msg.Height})
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keyMap.Exit):
			m.result = Result{Cancelled: true}
			return m, tea.Quit
		case key.Matches(msg, m.keyMap.Help):
			m.keyhelp.ToggleExpanded()
			return m, nil
		}
		return m, m.otp.Update(msg)
	case otp.SubmitMsg:
		m.result = Result{Code: msg.Code}
		return m, tea.Quit
	case otp.CancelMsg:
		m.result = Result{Cancelled: true}
		return m, tea.Quit
	case util.AnnounceKeyMapMsg:
		return m, m.keyhelp.Update(msg)
	}

	if cmd := m.titleHandler.Handle(msg); cmd != nil {
		return m, cmd
	}
	return m, m.otp.Update(msg)
}

func (m Model) View() string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		titleStyle.Render(i18n.T("otp.title")),
		subtitleStyle.Render(i18n.T("otp.subtitle", map[string]any{"Length": m.otp.Len()})),
		"",
		m.otp.View(),
		"",
		m.keyhelp.View(),
	)

	if m.size.Width == 0 || m.size.Height == 0 {
		return content
	}
	return lipgloss.Place(m.size.Width, m.size.Height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) Result() Result {
	return m.result
}

// OTP exposes the hosted widget.
func (m Model) OTP() *otp.Model {
	return m.otp
}

var _ tea.Model = (*Model)(nil)
