package model

import "testing"

func TestNewScope(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"string passthrough", "alice", "alice"},
		{"small json number", float64(7), "7"},
		{"seven digit json number", float64(1000000), "1000000"},
		{"eight digit json number", float64(12345678), "12345678"},
		{"fractional json number", float64(1.5), "1.5"},
		{"int", 42, "42"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewScope(tc.in).UserID; got != tc.want {
				t.Errorf("NewScope(%v).UserID = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
