package errors

import (
	"strings"
	"testing"
)

func TestValidatePathString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode Code
	}{
		{"valid square", "M 0 0 L 10 0 L 10 10 L 0 10 Z", ""},
		{"empty", "", ErrCodeInvalidInput},
		{"whitespace only", "   \n\t ", ErrCodeInvalidInput},
		{"too long", "M 0 0 " + strings.Repeat("L 1 1 ", 20000), ErrCodeInvalidInput},
		{"control characters", "M 0 0\x00L 1 1", ErrCodeInvalidInput},
		{"tabs and newlines allowed", "M 0 0\n\tL 10 0", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePathString(tt.input)
			if tt.wantCode == "" {
				if err != nil {
					t.Errorf("ValidatePathString() = %v, want nil", err)
				}
				return
			}
			if GetCode(err) != tt.wantCode {
				t.Errorf("code = %v, want %v", GetCode(err), tt.wantCode)
			}
		})
	}
}

func TestValidatePresetName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"simple", "dense-grid", true},
		{"with digits", "led_9mm", true},
		{"empty", "", false},
		{"uppercase", "Dense", false},
		{"spaces", "dense grid", false},
		{"path traversal", "../evil", false},
		{"too long", strings.Repeat("a", 65), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePresetName(tt.input)
			if (err == nil) != tt.valid {
				t.Errorf("ValidatePresetName(%q) = %v, want valid=%v", tt.input, err, tt.valid)
			}
		})
	}
}

func TestValidateOrientation(t *testing.T) {
	for _, o := range []string{"horizontal", "vertical"} {
		if err := ValidateOrientation(o); err != nil {
			t.Errorf("ValidateOrientation(%q) = %v, want nil", o, err)
		}
	}
	if err := ValidateOrientation("diagonal"); err == nil {
		t.Error("ValidateOrientation(diagonal) = nil, want error")
	}
}

func TestValidateStrategy(t *testing.T) {
	for _, s := range []string{"stroke", "grid"} {
		if err := ValidateStrategy(s); err != nil {
			t.Errorf("ValidateStrategy(%q) = %v, want nil", s, err)
		}
	}
	if err := ValidateStrategy("spiral"); err == nil {
		t.Error("ValidateStrategy(spiral) = nil, want error")
	}
}
