package utils

import "testing"

func TestListingPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"example.zen", "example.s"},
		{"dir/prog.zen", "dir/prog.s"},
		{"noext", "noext.s"},
		{"weird.tar.zen", "weird.tar.s"},
	}
	for _, tc := range tests {
		if got := ListingPath(tc.in); got != tc.want {
			t.Errorf("ListingPath(%q) = %q; want %q", tc.in, got, tc.want)
		}
	}
}
