package composer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Compose normalizes raw handler output into user-facing text.
//
// The pipeline is pure and total: it never returns an error and never
// returns the unprocessed input. Each stage is idempotent on its own
// output, so Compose(Compose(x)) == Compose(x).
func Compose(raw string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = ComposeErrorText
		}
	}()

	text := preprocess(raw)
	text = removeArtifacts(text)
	text = formatSentences(text)

	return strings.TrimSpace(text)
}

// preprocess collapses whitespace runs to single spaces and substitutes
// a fixed sentence for nullish input.
func preprocess(s string) string {
	collapsed := strings.Join(strings.Fields(s), " ")
	if nullishValues[strings.ToLower(collapsed)] {
		return InsufficientInfoText
	}
	return collapsed
}

// removeArtifacts strips role-prefix tokens, surrounding quotes and
// empty lines.
func removeArtifacts(s string) string {
	cleaned := s
	for _, token := range artifactTokens {
		cleaned = removeFold(cleaned, token)
	}

	cleaned = trimQuotes(cleaned)

	var lines []string
	for _, line := range strings.Split(cleaned, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// removeFold removes every case-insensitive occurrence of token from s.
func removeFold(s, token string) string {
	var b strings.Builder
	for {
		idx := indexFold(s, token)
		if idx < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:idx])
		s = s[idx+len(token):]
	}
}

// indexFold is a case-insensitive strings.Index for ASCII tokens.
func indexFold(s, token string) int {
	for i := 0; i+len(token) <= len(s); i++ {
		if strings.EqualFold(s[i:i+len(token)], token) {
			return i
		}
	}
	return -1
}

// trimQuotes strips every leading and trailing quote character. Quotes
// inside the text, including apostrophes, stay put.
func trimQuotes(s string) string {
	for len(s) > 0 && (s[0] == '"' || s[0] == '\'') {
		s = s[1:]
	}
	for len(s) > 0 && (s[len(s)-1] == '"' || s[len(s)-1] == '\'') {
		s = s[:len(s)-1]
	}
	return s
}

// formatSentences segments the text into sentences, capitalizes each one and
// guarantees terminal punctuation.
//
// Segmentation scans word by word: a sentence closes when a word longer than
// one rune ends in '.', '!' or '?'. Trailing words form a final sentence.
func formatSentences(s string) string {
	words := strings.Fields(s)

	var sentences []string
	var current []string
	for _, word := range words {
		current = append(current, word)
		if utf8.RuneCountInString(word) > 1 && endsTerminal(word) {
			sentences = append(sentences, strings.Join(current, " "))
			current = nil
		}
	}
	if len(current) > 0 {
		sentences = append(sentences, strings.Join(current, " "))
	}

	var formatted []string
	for _, sentence := range sentences {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		sentence = capitalizeFirst(sentence)
		if !endsTerminal(sentence) {
			sentence += "."
		}
		formatted = append(formatted, sentence)
	}

	joined := strings.Join(formatted, " ")
	joined = strings.Join(strings.Fields(joined), " ")
	for strings.Contains(joined, "..") {
		joined = strings.ReplaceAll(joined, "..", ".")
	}

	return joined
}

func endsTerminal(s string) bool {
	if s == "" {
		return false
	}
	switch s[len(s)-1] {
	case '.', '!', '?':
		return true
	}
	return false
}

func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
