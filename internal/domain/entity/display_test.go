package entity

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short", "Rust", 18, "Rust"},
		{"exact", "abcdefghijklmnopqr", 18, "abcdefghijklmnopqr"},
		{"long", "Apply copper fungicide weekly", 18, "Apply copper fu..."},
		{"unicode", "Фитофтороз томатов сильный", 10, "Фитофто..."},
		{"tiny budget", "abcdef", 2, "ab"},
		{"minimum display budget", "abcdef", 4, "a..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.max)
			require.Equal(t, tt.want, got)
			require.LessOrEqual(t, utf8.RuneCountInString(got), tt.max)
		})
	}
}

func TestNewDisplayLines(t *testing.T) {
	lines := NewDisplayLines(10, "one", strings.Repeat("x", 20), "three", "four")
	require.Len(t, lines, MaxDisplayLines)
	require.Equal(t, "one", lines[0])
	require.Equal(t, "xxxxxxx...", lines[1])
	require.Equal(t, "three", lines[2])
}

func TestClip(t *testing.T) {
	require.Equal(t, "abc", Clip("abcdef", 3))
	require.Equal(t, "ab", Clip("ab", 3))
}
