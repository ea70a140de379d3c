package encode

import (
	"testing"
)

func TestCompareUTF16(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected int
	}{
		{"equal", "abc", "abc", 0},
		{"empty < non-empty", "", "a", -1},
		{"prefix < longer", "ab", "abc", -1},
		{"ascii order", "A", "a", -1},
		{"digit < letter", "1", "A", -1},
		{"control first", "\r", "1", -1},

		// Up to U+FFFF code units equal code points.
		{"latin < greek", "z", "α", -1},
		{"greek < private use", "α", "", -1},

		// Surrogate pairs start at 0xD800, below U+E000 and U+FFFD: a
		// supplementary code point sorts before them despite being larger.
		{"supplementary < private use", "\U00010000", "", -1},
		{"supplementary < replacement", "\U0001f600", "�", -1},
		{"euro < emoji", "€", "\U0001f600", -1},
		{"supplementary ordering", "\U00010000", "\U00010001", -1},

		// The shared prefix must not mask the comparison.
		{"pair prefix", "x\U00010000", "x", -1},
		{"pair vs pair prefix", "\U00010000a", "\U00010000b", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompareUTF16(tt.a, tt.b); got != tt.expected {
				t.Errorf("CompareUTF16(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.expected)
			}
			// Test symmetry
			if got := CompareUTF16(tt.b, tt.a); got != -tt.expected {
				t.Errorf("CompareUTF16(%q, %q) = %v, want %v", tt.b, tt.a, got, -tt.expected)
			}
		})
	}
}
