// Copyright (c) 2026 Keymaster Team
// otpentry - one-time password entry for the terminal
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/toeirei/otpentry/internal/config"
	"github.com/toeirei/otpentry/internal/i18n"
)

// i18nKey marks commands and flags whose help text comes from a message ID.
const i18nKey = "i18n"

// localized tags cmd with a message prefix; "<id>.short" and, if present,
// "<id>.long" become its help text.
func localized(cmd *cobra.Command, id string) *cobra.Command {
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	cmd.Annotations[i18nKey] = id
	localizeCommand(cmd)
	return cmd
}

// localizedFlag ties the usage of an already defined flag to a message ID.
func localizedFlag(fs *pflag.FlagSet, name, id string) {
	_ = fs.SetAnnotation(name, i18nKey, []string{id})
	if f := fs.Lookup(name); f != nil {
		f.Usage = i18n.T(id)
	}
}

func localizeCommand(cmd *cobra.Command) {
	if id, ok := cmd.Annotations[i18nKey]; ok {
		cmd.Short = i18n.T(id + ".short")
		if long := i18n.T(id + ".long"); long != id+".long" {
			cmd.Long = long
		}
	}
}

func localizeFlags(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		if ids := f.Annotations[i18nKey]; len(ids) > 0 {
			f.Usage = i18n.T(ids[0])
		}
	})
}

// localizeTree re-reads every help text below cmd in the active language.
func localizeTree(cmd *cobra.Command) {
	localizeCommand(cmd)
	localizeFlags(cmd.PersistentFlags())
	localizeFlags(cmd.Flags())
	for _, sub := range cmd.Commands() {
		localizeTree(sub)
	}
}

// localizedHelp wraps the default help so that it honours --language, the
// environment and the config file.
func localizedHelp(root *cobra.Command, cfgFile *string) {
	defaultHelp := root.HelpFunc()
	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if c, err := config.LoadConfig[config.Config](cmd, config.Defaults(), cfgFile); err == nil {
			if _, ok := i18n.GetAvailableLocales()[c.Language]; ok {
				i18n.SetLang(c.Language)
			}
		}
		localizeTree(cmd.Root())
		defaultHelp(cmd, args)
	})
}
