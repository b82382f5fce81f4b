// Copyright (c) 2026 Keymaster Team
// otpentry - one-time password entry for the terminal
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/toeirei/otpentry/buildvars"
	"github.com/toeirei/otpentry/internal/config"
	"github.com/toeirei/otpentry/internal/i18n"
	"github.com/toeirei/otpentry/internal/logging"
	"github.com/toeirei/otpentry/ui/tui"
	"golang.org/x/term"
)

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

// ErrCancelled is returned when the user leaves without confirming a code.
var ErrCancelled = errors.New("entry cancelled")

// ErrUnknownLanguage is returned when no locale matches the configured language.
var ErrUnknownLanguage = errors.New("unknown language")

// ErrConfigExists is returned by config init when it would overwrite a file.
var ErrConfigExists = errors.New("config file already exists")

// swapped out in tests
var (
	runTUI     = tui.Run
	isTerminal = func() bool {
		return term.IsTerminal(int(os.Stdin.Fd()))
	}
)

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds a fresh command tree so tests do not share flag state.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:           "otpentry",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			appConfig, err := loadConfig(cmd, cfgFile)
			if err != nil {
				return err
			}

			closeLog, err := setupLogging(appConfig)
			if err != nil {
				return err
			}
			defer closeLog()

			return runEntry(cmd, appConfig)
		},
	}

	cmd.Version = buildvars.VersionOrDefault(version)

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "")
	cmd.PersistentFlags().String("language", "en", "")
	cmd.PersistentFlags().Bool("verbose", false, "")
	cmd.PersistentFlags().String("log-file", "", "")
	localizedFlag(cmd.PersistentFlags(), "config", "cli.flag.config")
	localizedFlag(cmd.PersistentFlags(), "language", "cli.flag.language")
	localizedFlag(cmd.PersistentFlags(), "verbose", "cli.flag.verbose")
	localizedFlag(cmd.PersistentFlags(), "log-file", "cli.flag.log_file")
	addEntryFlags(cmd)

	cmd.AddCommand(newVersionCmd(), newConfigCmd(&cfgFile))
	localizedHelp(cmd, &cfgFile)

	return localized(cmd, "cli.root")
}

// addEntryFlags defines the widget flags shared by the root and config init.
func addEntryFlags(cmd *cobra.Command) {
	cmd.Flags().Int("length", 6, "")
	cmd.Flags().Bool("masked", false, "")
	localizedFlag(cmd.Flags(), "length", "cli.flag.length")
	localizedFlag(cmd.Flags(), "masked", "cli.flag.masked")
}

func loadConfig(cmd *cobra.Command, cfgFile string) (config.Config, error) {
	appConfig, err := config.LoadConfig[config.Config](cmd, config.Defaults(), &cfgFile)
	if err != nil {
		return appConfig, fmt.Errorf("%s: %w", i18n.T("config.error_load"), err)
	}

	locales := i18n.GetAvailableLocales()
	if _, ok := locales[appConfig.Language]; !ok {
		return appConfig, fmt.Errorf("%s: %w %q (%s)", i18n.T("cli.invalid_config"),
			ErrUnknownLanguage, appConfig.Language, strings.Join(slices.Sorted(maps.Keys(locales)), ", "))
	}
	i18n.SetLang(appConfig.Language)

	if err := appConfig.Validate(); err != nil {
		return appConfig, fmt.Errorf("%s: %w", i18n.T("cli.invalid_config"), err)
	}
	return appConfig, nil
}

// setupLogging points the logger away from the terminal the TUI draws on.
func setupLogging(c config.Config) (func(), error) {
	logging.SetDebug(c.Verbose)
	if c.LogFile == "" {
		logging.SetOutput(io.Discard)
		return func() { logging.SetOutput(os.Stderr) }, nil
	}

	f, err := logging.OpenFile(c.LogFile)
	if err != nil {
		return nil, err
	}
	return func() {
		logging.SetOutput(os.Stderr)
		f.Close()
	}, nil
}

func runEntry(cmd *cobra.Command, c config.Config) error {
	if !isTerminal() {
		return errors.New(i18n.T("cli.not_a_terminal"))
	}

	logging.Debugf("starting entry: length=%d masked=%v language=%s", c.Length, c.Masked, i18n.GetLang())
	res, err := runTUI(tui.Options{
		Length: c.Length,
		Masked: c.Masked,
		Output: cmd.ErrOrStderr(),
		Input:  cmd.InOrStdin(),
	})
	if err != nil {
		return err
	}
	if res.Cancelled {
		logging.Infof("entry cancelled by user")
		return ErrCancelled
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Code)
	return err
}
