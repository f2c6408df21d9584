package chat

import (
	"regexp"
	"strconv"
	"strings"
)

var leadingInt = regexp.MustCompile(`^(\d+)(?:\s+(.*))?$`)

// quantityWords maps spelled-out quantities to values, checked in order as a
// word prefix of the text.
var quantityWords = []struct {
	word  string
	value int
}{
	{"an", 1},
	{"a", 1},
	{"one", 1},
	{"two", 2},
	{"three", 3},
	{"four", 4},
	{"five", 5},
	{"six", 6},
	{"seven", 7},
	{"eight", 8},
	{"nine", 9},
	{"ten", 10},
}

// ParseQuantity extracts a leading quantity from free text and returns it
// with the remaining text. A leading integer wins, then a spelled-out
// quantity word. Absence of a quantity is not an error: the default is 1
// with the text unchanged.
func ParseQuantity(text string) (int, string) {
	trimmed := strings.TrimSpace(text)

	if m := leadingInt.FindStringSubmatch(trimmed); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 {
			return n, m[2]
		}
	}

	lower := strings.ToLower(trimmed)
	for _, qw := range quantityWords {
		if lower == qw.word {
			return qw.value, ""
		}
		if strings.HasPrefix(lower, qw.word+" ") {
			return qw.value, strings.TrimSpace(trimmed[len(qw.word)+1:])
		}
	}

	return 1, text
}

// FindQuantity scans an utterance for the first embedded quantity token by
// running ParseQuantity over successive word suffixes. Bare articles are
// skipped so "update the order a little" does not read as quantity 1.
func FindQuantity(text string) (int, bool) {
	words := strings.Fields(text)
	for i := range words {
		w := strings.ToLower(words[i])
		if w == "a" || w == "an" {
			continue
		}
		tail := strings.Join(words[i:], " ")
		if q, rest := ParseQuantity(tail); rest != tail {
			return q, true
		}
	}
	return 0, false
}
