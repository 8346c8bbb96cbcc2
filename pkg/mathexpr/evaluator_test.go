package mathexpr

import (
	"errors"
	"testing"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name string
		expr string
		want float64
	}{
		{"simple addition", "5 + 10", 15},
		{"no spaces", "5+10", 15},
		{"subtraction", "15 - 8", 7},
		{"multiplication", "3 * 7", 21},
		{"division", "5 / 2", 2.5},
		{"precedence", "2 + 3 * 4", 14},
		{"left to right same precedence", "10 - 3 - 2", 5},
		{"mixed precedence", "20 / 2 + 3 * 2", 16},
		{"continuation shape", "15 + 6", 21},
		{"negative running total", "-2 + 6", 4},
		{"decimal operand", "2.5 * 2", 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Evaluate(tc.expr)
			if err != nil {
				t.Fatalf("Evaluate(%q) error: %v", tc.expr, err)
			}
			if got != tc.want {
				t.Errorf("Evaluate(%q) = %v, want %v", tc.expr, got, tc.want)
			}
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	cases := []struct {
		name string
		expr string
		want error
	}{
		{"empty", "", ErrEmptyExpression},
		{"whitespace only", "   ", ErrEmptyExpression},
		{"trailing operator", "5 +", ErrInvalidExpression},
		{"leading operator", "* 5", ErrInvalidExpression},
		{"double operator", "5 + * 3", ErrInvalidExpression},
		{"letters rejected", "5 + x", ErrInvalidExpression},
		{"parentheses rejected", "(5 + 3)", ErrInvalidExpression},
		{"division by zero", "5 / 0", ErrDivisionByZero},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Evaluate(tc.expr)
			if !errors.Is(err, tc.want) {
				t.Errorf("Evaluate(%q) error = %v, want %v", tc.expr, err, tc.want)
			}
		})
	}
}

func TestFormatResult(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{15, "15"},
		{2.5, "2.5"},
		{-7, "-7"},
		{0, "0"},
	}
	for _, tc := range cases {
		if got := FormatResult(tc.in); got != tc.want {
			t.Errorf("FormatResult(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
