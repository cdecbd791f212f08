package compiler

import "testing"

func TestMatches(t *testing.T) {
	tests := []struct {
		pattern string
		value   string
		want    bool
	}{
		{"*", "anything", true},
		{"*", "", true},
		{"number", "number", true},
		{"number", "string", false},
		{"", "", true},
		{"num*", "number", false}, // no partial wildcards
		{"n?mber", "number", false},
	}

	for _, tc := range tests {
		if got := Matches(tc.pattern, tc.value); got != tc.want {
			t.Errorf("Matches(%q, %q) = %v; want %v", tc.pattern, tc.value, got, tc.want)
		}
	}
}
