package payload

import (
	"bytes"
	"strings"
	"testing"
)

// TestIsProbablyBinary covers the NUL and control-character heuristics.
func TestIsProbablyBinary(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{"empty", nil, false},
		{"plain text", []byte("package main\n\nfunc main() {}\n"), false},
		{"nul byte", []byte("abc\x00def"), true},
		{"png magic", append([]byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}, bytes.Repeat([]byte{0x01}, 100)...), true},
		{"mostly control chars", bytes.Repeat([]byte{0x01, 'a'}, 100), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsProbablyBinary(tt.data); got != tt.want {
				t.Errorf("IsProbablyBinary = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestTruncate verifies the straight prefix cut.
func TestTruncate(t *testing.T) {
	if got := Truncate("hello", 10); got != "hello" {
		t.Errorf("Short text should pass through, got %q", got)
	}
	if got := Truncate("hello world", 5); got != "hello" {
		t.Errorf("Truncate should keep the prefix, got %q", got)
	}
	if got := Truncate("hello", 0); got != "" {
		t.Errorf("Zero cap should yield empty, got %q", got)
	}

	long := strings.Repeat("a", 100000)
	if len(Truncate(long, 55000)) != 55000 {
		t.Error("Truncate should cut exactly at the cap")
	}
}
