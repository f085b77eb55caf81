package utils

import "testing"

func TestIsValidInput(t *testing.T) {
	cases := []struct {
		input string
		valid bool
		desc  string
	}{
		{"hello", true, "plain word"},
		{"Hello", true, "capitalized word"},
		{"word2vec", true, "word with digits"},
		{"user-name", true, "separator allowed"},
		{"", false, "empty string"},
		{"1234", false, "only numbers"},
		{"ap!", false, "special character"},
		{"héllo", true, "non-ASCII letters allowed"},
		{"aaa", false, "repetitive"},
		{"wwww", false, "repetitive"},
		{"aa", true, "two repeats is still fine"},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			if got := IsValidInput(tc.input); got != tc.valid {
				t.Errorf("IsValidInput(%q): expected %v, got %v", tc.input, tc.valid, got)
			}
		})
	}
}

func TestIsRepetitive(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", false},
		{"a", false},
		{"aa", false},
		{"aaa", true},
		{"aaaa", true},
		{"aab", false},
	}
	for _, tc := range cases {
		if got := IsRepetitive(tc.input); got != tc.want {
			t.Errorf("IsRepetitive(%q): expected %v, got %v", tc.input, tc.want, got)
		}
	}
}
