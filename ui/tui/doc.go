// Copyright (c) 2026 Keymaster Team
// otpentry - one-time password entry for the terminal
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui runs the OTP entry program. Presentation and input handling
// live in models/; this package only wires them to a tea.Program.
package tui
