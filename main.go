// Copyright (c) 2026 Keymaster Team
// otpentry - one-time password entry for the terminal
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for otpentry.
//
// Usage:
//
//	go run . [flags]
//	code=$(./otpentry --length 6)
//
// The UI is drawn on stderr; the confirmed code is printed to stdout.
package main

import (
	"errors"
	"os"

	"github.com/toeirei/otpentry/internal/i18n"
	"github.com/toeirei/otpentry/internal/logging"
	"github.com/toeirei/otpentry/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		if errors.Is(err, cli.ErrCancelled) {
			logging.Warnf("%s", i18n.T("cli.cancelled"))
		} else {
			logging.Errorf("%v", err)
		}
		os.Exit(1)
	}
}
