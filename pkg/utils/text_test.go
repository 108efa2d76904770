package utils

import (
	"testing"
)

func TestExcerpt(t *testing.T) {
	if Excerpt("hello", 10) != "hello" {
		t.Error("short string unchanged")
	}
	if Excerpt("hello world", 5) != "hello" {
		t.Errorf("got %s", Excerpt("hello world", 5))
	}
	if Excerpt("x", 0) != "x" {
		t.Error("maxChars 0 returns as-is")
	}
}

func TestExcerpt_multibyte(t *testing.T) {
	// Rune-based cut: never splits a multi-byte character.
	got := Excerpt("héllo", 2)
	if got != "hé" {
		t.Errorf("got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if Truncate("hello", 10) != "hello" {
		t.Error("short string unchanged")
	}
	if Truncate("hello world", 5) != "hello..." {
		t.Errorf("got %s", Truncate("hello world", 5))
	}
	if Truncate("x", 0) != "x" {
		t.Error("maxLen 0 returns as-is")
	}
}
