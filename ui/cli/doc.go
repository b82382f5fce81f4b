// Copyright (c) 2026 Keymaster Team
// otpentry - one-time password entry for the terminal
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the otpentry command line using Cobra. It loads the
// configuration, prepares logging and i18n, and hands the terminal to the
// TUI. The confirmed code is written to stdout.
package cli
