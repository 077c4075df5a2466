package terminal

import "testing"

func TestEnableDisableColors(t *testing.T) {
	EnableColors()

	if Color(Cyan) != Cyan {
		t.Error("expected color code when colors enabled")
	}

	DisableColors()

	if Color(Cyan) != "" {
		t.Error("expected empty string when colors disabled")
	}

	EnableColors()

	if Color(Cyan) != Cyan {
		t.Error("expected color code after re-enabling colors")
	}
}

func TestColor_AllColors(t *testing.T) {
	EnableColors()

	colors := []struct {
		name     string
		code     string
		expected string
	}{
		{"Reset", Reset, "\033[0m"},
		{"Bold", Bold, "\033[1m"},
		{"Dim", Dim, "\033[2m"},
		{"Cyan", Cyan, "\033[36m"},
		{"Green", Green, "\033[32m"},
		{"Yellow", Yellow, "\033[33m"},
		{"Red", Red, "\033[31m"},
	}

	for _, tc := range colors {
		t.Run(tc.name, func(t *testing.T) {
			if tc.code != tc.expected {
				t.Errorf("constant %s = %q, want %q", tc.name, tc.code, tc.expected)
			}
			if Color(tc.code) != tc.code {
				t.Errorf("Color(%s) = %q, want %q", tc.name, Color(tc.code), tc.code)
			}
		})
	}
}

func TestColorsEnabled(t *testing.T) {
	EnableColors()
	if !ColorsEnabled() {
		t.Error("ColorsEnabled() = false after EnableColors")
	}

	DisableColors()
	defer EnableColors()
	if ColorsEnabled() {
		t.Error("ColorsEnabled() = true after DisableColors")
	}
}
