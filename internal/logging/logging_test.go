// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package logging

import "testing"

func TestParseLevelKnownNames(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"warn":    LevelWarn,
		"warning": LevelWarn,
		"Error":   LevelError,
	}
	for name, want := range cases {
		got, err := ParseLevel(name)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", name, err)
		}
		if got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestParseLevelRejectsUnknown(t *testing.T) {
	if _, err := ParseLevel("verbose"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestConfigureGatesEnabled(t *testing.T) {
	if err := Configure(LevelWarn, ""); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if Enabled(LevelDebug) {
		t.Fatalf("LevelDebug should not be enabled at threshold LevelWarn")
	}
	if Enabled(LevelInfo) {
		t.Fatalf("LevelInfo should not be enabled at threshold LevelWarn")
	}
	if !Enabled(LevelWarn) {
		t.Fatalf("LevelWarn should be enabled at threshold LevelWarn")
	}
	if !Enabled(LevelError) {
		t.Fatalf("LevelError should be enabled at threshold LevelWarn")
	}

	if err := Configure(LevelDebug, ""); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if !Enabled(LevelDebug) {
		t.Fatalf("LevelDebug should be enabled at threshold LevelDebug")
	}
}
