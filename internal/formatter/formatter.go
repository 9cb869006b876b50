package formatter

import "strings"

// Formatter transforms a piece of text into its output form.
// Implementations are stateless and safe to share between goroutines.
type Formatter interface {
	Format(text string) string
}

// Upper maps every character to its uppercase form.
type Upper struct{}

func (Upper) Format(text string) string {
	return strings.ToUpper(text)
}

// Lower maps every character to its lowercase form.
type Lower struct{}

func (Lower) Format(text string) string {
	return strings.ToLower(text)
}

// Title uppercases the first character of each space-delimited word and
// lowercases the rest. Only the space character acts as a separator;
// hyphens, tabs and other punctuation stay inside their word.
type Title struct{}

func (Title) Format(text string) string {
	// Whitespace-only input collapses to empty. This drops the original
	// spacing; callers that care should check before formatting.
	if strings.TrimSpace(text) == "" {
		return ""
	}

	words := strings.Split(text, " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		runes := []rune(word)
		head := strings.ToUpper(string(runes[0]))
		tail := strings.ToLower(string(runes[1:]))
		words[i] = head + tail
	}
	return strings.Join(words, " ")
}

// Reverse returns the text with its characters in reverse order.
// It reverses runes, not grapheme clusters.
type Reverse struct{}

func (Reverse) Format(text string) string {
	runes := []rune(text)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// Plain returns the text unchanged. It is the fallback for unknown modes.
type Plain struct{}

func (Plain) Format(text string) string {
	return text
}
