// Copyright (c) 2026 Keymaster Team
// otpentry - one-time password entry for the terminal
// This source code is licensed under the MIT license found in the LICENSE file.
package keyhelp

import (
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// ShortHelpView renders enabled bindings on one line, truncated with an
// ellipsis to m.Width. help.Model.ShortHelpView miscounts separators.
func ShortHelpView(m help.Model, bindings []key.Binding) string {
	separator := m.Styles.ShortSeparator.Inline(true).Render(m.ShortSeparator)

	var items []string
	for _, kb := range bindings {
		if !kb.Enabled() {
			continue
		}
		var sep string
		if len(items) > 0 {
			sep = separator
		}
		items = append(items, sep+
			m.Styles.ShortKey.Inline(true).Render(kb.Help().Key)+" "+
			m.Styles.ShortDesc.Inline(true).Render(kb.Help().Desc))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, fitWidth(m, items)...)
}

// FullHelpView renders one column per group, skipping groups without an
// enabled binding.
func FullHelpView(m help.Model, groups [][]key.Binding) string {
	separator := m.Styles.FullSeparator.Inline(true).Render(m.FullSeparator)

	var cols []string
	for _, group := range groups {
		if !slices.ContainsFunc(group, key.Binding.Enabled) {
			continue
		}

		var keys, descriptions []string
		for _, binding := range group {
			if !binding.Enabled() {
				continue
			}
			keys = append(keys, binding.Help().Key)
			descriptions = append(descriptions, binding.Help().Desc)
		}

		var sep string
		if len(cols) > 0 {
			sep = separator
		}
		cols = append(cols, lipgloss.JoinHorizontal(lipgloss.Top,
			sep,
			m.Styles.FullKey.Render(lipgloss.JoinVertical(lipgloss.Left, keys...)),
			" ",
			m.Styles.FullDesc.Render(lipgloss.JoinVertical(lipgloss.Left, descriptions...)),
		))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, fitWidth(m, cols)...)
}

// fitWidth keeps the leading items that fit into m.Width. When an item is
// cut, the ellipsis tail replaces it if there is room. A zero width means
// unlimited.
func fitWidth(m help.Model, items []string) []string {
	if m.Width <= 0 {
		return items
	}

	tail := " " + m.Styles.Ellipsis.Inline(true).Render(m.Ellipsis)
	tailLen := lipgloss.Width(tail)

	var (
		out  []string
		used int
	)
	for i, item := range items {
		itemLen := lipgloss.Width(item)
		reserve := tailLen
		if i == len(items)-1 {
			reserve = 0
		}
		if used+itemLen+reserve <= m.Width {
			used += itemLen
			out = append(out, item)
			continue
		}
		if used+tailLen <= m.Width {
			out = append(out, tail)
		}
		break
	}
	return out
}
