package utils

import "testing"

func TestCapitalPositions(t *testing.T) {
	folded, positions := CapitalPositions("ApPle")
	if folded != "apple" {
		t.Errorf("expected folded 'apple', got %q", folded)
	}
	want := []bool{true, false, true, false, false}
	if len(positions) != len(want) {
		t.Fatalf("expected %d positions, got %d", len(want), len(positions))
	}
	for i := range want {
		if positions[i] != want[i] {
			t.Errorf("position %d: expected %v, got %v", i, want[i], positions[i])
		}
	}

	if _, positions := CapitalPositions("apple"); positions != nil {
		t.Errorf("no capitals should yield nil positions, got %v", positions)
	}
}

func TestApplyCapitals(t *testing.T) {
	cases := []struct {
		word      string
		positions []bool
		want      string
	}{
		{"apple", []bool{true}, "Apple"},
		{"apple", []bool{true, false, true}, "ApPle"},
		{"apple", nil, "apple"},
		{"ap", []bool{false, false, true}, "ap"},
	}
	for _, tc := range cases {
		if got := ApplyCapitals(tc.word, tc.positions); got != tc.want {
			t.Errorf("ApplyCapitals(%q, %v): expected %q, got %q", tc.word, tc.positions, tc.want, got)
		}
	}
}

func TestFormatWithCommas(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
	}
	for _, tc := range cases {
		if got := FormatWithCommas(tc.n); got != tc.want {
			t.Errorf("FormatWithCommas(%d): expected %q, got %q", tc.n, tc.want, got)
		}
	}
}
