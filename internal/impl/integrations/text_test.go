package integrations

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSummarize_ShortInputVerbatim(t *testing.T) {
	// Inputs at or under the word limit keep their original whitespace.
	input := "hello   world\twith  odd   spacing"
	if got := Summarize(input); got != input {
		t.Errorf("Expected input back verbatim, got %q", got)
	}
}

func TestSummarize_Empty(t *testing.T) {
	if got := Summarize(""); got != "" {
		t.Errorf("Expected empty string, got %q", got)
	}
}

func TestSummarize_TruncatesLongInput(t *testing.T) {
	input := "one two three four five six seven eight nine ten eleven twelve thirteen"
	expected := "one two three four five six seven eight nine ten eleven twelve …"
	if got := Summarize(input); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestSummarize_IdempotentUnderLimit(t *testing.T) {
	inputs := []string{
		"",
		"just a few words",
		"one two three four five six seven eight nine ten eleven twelve",
	}
	for _, input := range inputs {
		once := Summarize(input)
		twice := Summarize(once)
		if once != twice {
			t.Errorf("Expected Summarize to be idempotent for %q, got %q then %q", input, once, twice)
		}
	}
}

func TestReflect_KeyPoints(t *testing.T) {
	input := "The quick brown foxes jumped over the lazy sleeping dogs yesterday evening"
	expected := "key points → evening, jumped, sleeping, yesterday"
	if got := Reflect(input); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestReflect_StripsPunctuation(t *testing.T) {
	expected := "key points → amazing"
	if got := Reflect("amazing!!"); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestReflect_Fallback(t *testing.T) {
	for _, input := range []string{"", "so so cool", "a b c"} {
		if got := Reflect(input); got != "sounds interesting!" {
			t.Errorf("Expected fallback for %q, got %q", input, got)
		}
	}
}

func TestReflect_SortedDedupedCapped(t *testing.T) {
	input := "zebras zebras yonder willow victory umbrella tunnels silence"
	expected := "key points → silence, tunnels, umbrella, victory, willow, yonder"
	got := Reflect(input)
	if got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}

	keys := strings.Split(strings.TrimPrefix(got, "key points → "), ", ")
	if len(keys) > 6 {
		t.Errorf("Expected at most 6 key words, got %d", len(keys))
	}
	seen := make(map[string]bool)
	for i, key := range keys {
		if utf8.RuneCountInString(key) <= 5 {
			t.Errorf("Expected key words longer than 5 characters, got %q", key)
		}
		if seen[key] {
			t.Errorf("Expected key words to be deduplicated, %q repeats", key)
		}
		seen[key] = true
		if i > 0 && keys[i-1] >= key {
			t.Errorf("Expected key words sorted, %q before %q", keys[i-1], key)
		}
	}
}
