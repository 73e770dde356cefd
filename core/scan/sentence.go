package scan

import "strings"

// Sentence is one sentence of a document with its byte offsets into the
// original text. Offsets refer to the trimmed sentence text.
type Sentence struct {
	Text  string
	Start int
	End   int
}

// SplitSentences splits text into sentences on ./!/? followed by
// whitespace, and on line breaks. Offsets are tracked so spans found
// elsewhere in the document can be mapped back to their enclosing
// sentence.
func SplitSentences(text string) []Sentence {
	var sentences []Sentence
	start := 0

	flush := func(end int) {
		raw := text[start:end]
		trimmed := strings.TrimSpace(raw)
		if trimmed != "" {
			lead := strings.Index(raw, trimmed)
			sentences = append(sentences, Sentence{
				Text:  trimmed,
				Start: start + lead,
				End:   start + lead + len(trimmed),
			})
		}
		start = end
	}

	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '.', '!', '?':
			if i+1 >= len(text) || isSpace(text[i+1]) {
				flush(i + 1)
			}
		case '\n':
			flush(i + 1)
		}
	}
	if start < len(text) {
		flush(len(text))
	}

	return sentences
}

// SentenceAt returns the sentence containing the given byte offset,
// or the nearest following sentence when the offset falls between two.
func SentenceAt(sentences []Sentence, offset int) (Sentence, bool) {
	for _, sentence := range sentences {
		if offset < sentence.End {
			return sentence, true
		}
	}
	if len(sentences) > 0 {
		return sentences[len(sentences)-1], true
	}
	return Sentence{}, false
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}
