package utils

import (
	"fmt"
	"strings"
)

// CapitalPositions records which byte positions of the input hold an
// ASCII capital and returns the folded string alongside. The positions
// slice is nil when the input has no capitals at all.
func CapitalPositions(s string) (string, []bool) {
	var positions []bool
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if positions == nil {
				positions = make([]bool, len(s))
			}
			positions[i] = true
		}
	}
	return strings.ToLower(s), positions
}

// ApplyCapitals re-applies the caller's capitalization pattern to a
// suggested word, position by position.
func ApplyCapitals(word string, positions []bool) string {
	if len(positions) == 0 {
		return word
	}
	runes := []rune(word)
	for i := 0; i < len(runes) && i < len(positions); i++ {
		if positions[i] && runes[i] >= 'a' && runes[i] <= 'z' {
			runes[i] = runes[i] - 'a' + 'A'
		}
	}
	return string(runes)
}

// FormatWithCommas formats an integer with comma separators
func FormatWithCommas(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	str := fmt.Sprintf("%d", n)
	result := ""
	for i, char := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result += ","
		}
		result += string(char)
	}
	return result
}
