package slug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"basic title", "Hello, World!", "hello-world"},
		{"already clean", "hello-world", "hello-world"},
		{"uppercase and digits", "My App 2.0", "my-app-20"},
		{"whitespace runs", "  too   many    spaces  ", "too-many-spaces"},
		{"hyphen runs", "a -- b --- c", "a-b-c"},
		{"leading trailing punctuation", "!!!Best AI Tool???", "best-ai-tool"},
		{"unicode stripped", "日本語タイトル", ""},
		{"empty", "", ""},
		{"only punctuation", "!@#$%^&*()", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Generate(tt.input))
		})
	}
}

// slug 仅含小写字母、数字、连字符，且无首尾/连续连字符
func TestGenerateCharsetProperty(t *testing.T) {
	inputs := []string{
		"Hello, World!",
		"MarketMind — The #1 AI Tools Directory!",
		"   Ünïcödé & Émojis 🚀 everywhere   ",
		"a--b  c__d",
		"UPPER lower 123",
	}

	for _, in := range inputs {
		got := Generate(in)
		for _, r := range got {
			valid := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
			assert.True(t, valid, "invalid rune %q in %q", r, got)
		}
		assert.False(t, strings.HasPrefix(got, "-"))
		assert.False(t, strings.HasSuffix(got, "-"))
		assert.NotContains(t, got, "--")
	}
}

func TestMakeUniqueNoCollision(t *testing.T) {
	got, err := MakeUnique("hello-world", func(s string) (bool, error) {
		return false, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, "hello-world", got)
}

func TestMakeUniqueWithCollisions(t *testing.T) {
	taken := map[string]bool{
		"hello-world":   true,
		"hello-world-1": true,
		"hello-world-2": true,
	}
	got, err := MakeUnique("hello-world", func(s string) (bool, error) {
		return taken[s], nil
	})
	assert.NoError(t, err)
	assert.Equal(t, "hello-world-3", got)
	assert.False(t, taken[got])
	assert.True(t, got == "hello-world" || strings.HasPrefix(got, "hello-world-"))
}

func TestMakeUniqueExhausted(t *testing.T) {
	calls := 0
	_, err := MakeUnique("x", func(s string) (bool, error) {
		calls++
		return true, nil
	})
	assert.ErrorIs(t, err, ErrExhausted)
	assert.Equal(t, MaxAttempts+1, calls)
}
