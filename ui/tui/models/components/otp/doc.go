// Copyright (c) 2026 Keymaster Team
// otpentry - one-time password entry for the terminal
// This source code is licensed under the MIT license found in the LICENSE file.

// Package otp implements a one-time-password entry component made of N
// single-digit boxes. Field holds the slot values and computes focus moves;
// Model wires a Field to bubbletea key and paste messages and renders the
// boxes with lipgloss.
package otp
