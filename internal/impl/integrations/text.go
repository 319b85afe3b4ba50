package integrations

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Summarize shortens text to its first 12 whitespace-separated words.
// Inputs at or under the limit come back verbatim, longer ones are cut
// and marked with an ellipsis.
func Summarize(text string) string {
	words := strings.Fields(text)
	if len(words) <= 12 {
		return text
	}
	return strings.Join(words[:12], " ") + " …"
}

// Reflect picks out up to 6 distinct key words from text, sorted in
// byte order. A word qualifies when it is longer than 5 characters
// after surrounding punctuation is stripped.
func Reflect(text string) string {
	seen := make(map[string]bool)
	var keys []string
	for _, word := range strings.Fields(text) {
		word = strings.Trim(word, ".,!?")
		if utf8.RuneCountInString(word) <= 5 || seen[word] {
			continue
		}
		seen[word] = true
		keys = append(keys, word)
	}
	if len(keys) == 0 {
		return "sounds interesting!"
	}
	sort.Strings(keys)
	if len(keys) > 6 {
		keys = keys[:6]
	}
	return "key points → " + strings.Join(keys, ", ")
}
