// Copyright (c) 2026 Keymaster Team
// otpentry - one-time password entry for the terminal
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/toeirei/otpentry/internal/config"
	"github.com/toeirei/otpentry/internal/i18n"
)

func newConfigCmd(cfgFile *string) *cobra.Command {
	cmd := localized(&cobra.Command{Use: "config"}, "cli.config")

	var system, force bool
	initCmd := localized(&cobra.Command{
		Use:  "init",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			appConfig, err := loadConfig(cmd, *cfgFile)
			if err != nil {
				return err
			}
			if !force && config.ConfigExists(system) {
				return fmt.Errorf("%w: %s", ErrConfigExists, i18n.T("config.exists"))
			}
			path, err := config.WriteConfigFile(&appConfig, system)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), i18n.T("config.written", path))
			return err
		},
	}, "cli.config.init")
	initCmd.Flags().BoolVar(&system, "system", false, "")
	initCmd.Flags().BoolVar(&force, "force", false, "")
	localizedFlag(initCmd.Flags(), "system", "cli.flag.system")
	localizedFlag(initCmd.Flags(), "force", "cli.flag.force")
	addEntryFlags(initCmd)

	showCmd := localized(&cobra.Command{
		Use:  "show",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			appConfig, err := loadConfig(cmd, *cfgFile)
			if err != nil {
				return err
			}

			locales := i18n.GetAvailableLocales()
			available := make([]string, 0, len(locales))
			for _, tag := range slices.Sorted(maps.Keys(locales)) {
				available = append(available, fmt.Sprintf("%s (%s)", tag, locales[tag]))
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "length: %d\nmasked: %v\nlanguage: %s\nlanguages: %s\n",
				appConfig.Length, appConfig.Masked, i18n.GetLang(), strings.Join(available, ", "))
			return err
		},
	}, "cli.config.show")

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}
