package compiler

import "testing"

func TestValueString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{NumberValue(42), "42"},
		{NumberValue(3.14159), "3.14159"},
		{StringValue("Zen"), `"Zen"`},
		{Value{}, "undefined"},
		{Value{Kind: KindPattern}, "pattern"},
	}
	for _, tc := range tests {
		if got := tc.v.String(); got != tc.want {
			t.Errorf("%+v.String() = %q; want %q", tc.v, got, tc.want)
		}
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		lexeme string
		want   float64
	}{
		{"42", 42},
		{"3.14", 3.14},
		{"1.2.3", 1.2}, // longest valid prefix, like atof
		{".", 0},
	}
	for _, tc := range tests {
		if got := parseNumber(tc.lexeme); got != tc.want {
			t.Errorf("parseNumber(%q) = %v; want %v", tc.lexeme, got, tc.want)
		}
	}
}
