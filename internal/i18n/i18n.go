// Copyright (c) 2026 Keymaster Team
// otpentry - one-time password entry for the terminal
// This source code is licensed under the MIT license found in the LICENSE file.

// Package i18n loads the embedded YAML locales with go-i18n and translates
// message IDs for the TUI and the CLI.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/toeirei/otpentry/internal/logging"
	"github.com/toeirei/otpentry/util/slicest"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

var (
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	lang      string
)

// Init parses all embedded locales and activates lang. Unknown languages
// fall back to English.
func Init(l string) {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	for _, name := range localeFiles() {
		data, err := localeFS.ReadFile(path.Join("locales", name))
		if err != nil {
			logging.Warnf("i18n: reading %s: %v", name, err)
			continue
		}
		if _, err := bundle.ParseMessageFileBytes(data, name); err != nil {
			logging.Warnf("i18n: parsing %s: %v", name, err)
		}
	}

	lang = l
	localizer = i18n.NewLocalizer(bundle, l, language.English.String())
}

func localeFiles() []string {
	entries, _ := fs.ReadDir(localeFS, "locales")
	files := slicest.Filter(entries, func(e fs.DirEntry) bool {
		return !e.IsDir() && strings.HasSuffix(e.Name(), ".yaml")
	})
	return slicest.Map(files, fs.DirEntry.Name)
}

// T translates messageID. A single map argument is used as template data,
// other arguments are applied fmt-style to the translation. Missing IDs are
// returned as is.
func T(messageID string, args ...any) string {
	if localizer == nil {
		Init("en")
	}

	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	if len(args) == 1 {
		if data, ok := args[0].(map[string]any); ok {
			cfg.TemplateData = data
			args = nil
		}
	}

	msg, err := localizer.Localize(cfg)
	if err != nil {
		return messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

func SetLang(l string) {
	Init(l)
}

func GetLang() string {
	return lang
}

// GetAvailableLocales maps each embedded locale tag to its name in that
// language.
func GetAvailableLocales() map[string]string {
	if bundle == nil {
		Init("en")
	}

	out := make(map[string]string)
	for _, tag := range bundle.LanguageTags() {
		name := display.Self.Name(tag)
		if name == "" {
			name = tag.String()
		}
		out[tag.String()] = name
	}
	return out
}
