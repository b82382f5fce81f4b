// Copyright (c) 2026 Keymaster Team
// otpentry - one-time password entry for the terminal
// This source code is licensed under the MIT license found in the LICENSE file.
package i18n

import "testing"

func TestInitAndAvailableLocales(t *testing.T) {
	Init("en")
	if GetLang() != "en" {
		t.Fatalf("expected lang 'en', got %q", GetLang())
	}

	av := GetAvailableLocales()
	for _, k := range []string{"en", "de"} {
		if _, ok := av[k]; !ok {
			t.Fatalf("expected available locale %q to be present, got %v", k, av)
		}
	}
	if av["de"] != "Deutsch" {
		t.Fatalf("unexpected display name for de: %q", av["de"])
	}
}

func TestT_BasicAndFormatting(t *testing.T) {
	Init("en")

	if got := T("otp.help.paste"); got != "paste" {
		t.Fatalf("expected 'paste', got %q", got)
	}
	if got := T("cli.version", "v1.0.0", "abc123", "today"); got != "otpentry v1.0.0 (commit abc123, built today)" {
		t.Fatalf("unexpected formatted translation: %q", got)
	}
	if got := T("otp.subtitle", map[string]any{"Length": 6}); got != "6 digits" {
		t.Fatalf("unexpected template translation: %q", got)
	}
	if got := T("does.not.exist"); got != "does.not.exist" {
		t.Fatalf("expected message ID fallback, got %q", got)
	}

	SetLang("de")
	if GetLang() != "de" {
		t.Fatalf("expected lang 'de', got %q", GetLang())
	}
	if got := T("otp.help.paste"); got != "einfügen" {
		t.Fatalf("expected German 'einfügen', got %q", got)
	}
}

func TestT_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	Init("fr")
	if got := T("otp.help.submit"); got != "confirm" {
		t.Fatalf("expected English fallback, got %q", got)
	}
}
