package errors

import (
	"strings"
	"unicode"
)

// MaxPathStringLen is the hard ceiling on the length of an outline path
// string accepted anywhere in the engine. It protects the O(n²) validator
// passes against pathological machine-generated input.
const MaxPathStringLen = 100_000

// ValidatePathString performs the cheap, shape-agnostic checks on a raw
// outline path string before it is handed to the parser.
//
// The parser itself is permissive — it never errors — so this is the only
// place raw-input hygiene is enforced:
//   - Non-empty after trimming
//   - No control characters or null bytes
//   - Length below MaxPathStringLen
//
// Geometric validity (self-intersection, degeneracy) is the job of the
// outline validator, not this function.
func ValidatePathString(d string) error {
	if strings.TrimSpace(d) == "" {
		return New(ErrCodeInvalidInput, "path string cannot be empty")
	}

	if len(d) > MaxPathStringLen {
		return New(ErrCodeInvalidInput, "path string too long (%d bytes, max %d)", len(d), MaxPathStringLen)
	}

	for _, r := range d {
		if r != '\n' && r != '\t' && r != '\r' && unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "path string contains control characters")
		}
	}

	return nil
}

// ValidatePresetName validates a module-style preset name as it appears in
// TOML preset files and on the CLI.
//
// Names are conservative on purpose: they become cache-key components and
// file-name fragments.
func ValidatePresetName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidConfig, "preset name cannot be empty")
	}

	if len(name) > 64 {
		return New(ErrCodeInvalidConfig, "preset name too long (max 64 characters)")
	}

	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return New(ErrCodeInvalidConfig, "preset name may only contain lowercase letters, digits, '-' and '_': %q", name)
		}
	}

	return nil
}

// ValidateOrientation validates a placement orientation value.
func ValidateOrientation(o string) error {
	switch o {
	case "horizontal", "vertical":
		return nil
	}
	return New(ErrCodeInvalidConfig, "invalid orientation: %q (must be horizontal or vertical)", o)
}

// ValidateStrategy validates a placement strategy value.
func ValidateStrategy(s string) error {
	switch s {
	case "stroke", "grid":
		return nil
	}
	return New(ErrCodeInvalidConfig, "invalid strategy: %q (must be stroke or grid)", s)
}
