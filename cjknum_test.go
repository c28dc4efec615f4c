package typeset

import (
	"errors"
	"testing"
)

func TestCJKNumeral(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		expected string
	}{
		{name: "one", n: 1, expected: "一"},
		{name: "five", n: 5, expected: "五"},
		{name: "nine", n: 9, expected: "九"},
		{name: "ten is bare", n: 10, expected: "十"},
		{name: "eleven", n: 11, expected: "十一"},
		{name: "twenty drops ones digit", n: 20, expected: "二十"},
		{name: "twenty one", n: 21, expected: "二十一"},
		{name: "fifty seven", n: 57, expected: "五十七"},
		{name: "ninety nine", n: 99, expected: "九十九"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CJKNumeral(tt.n)
			if err != nil {
				t.Fatalf("CJKNumeral(%d) returned error: %v", tt.n, err)
			}
			if got != tt.expected {
				t.Errorf("CJKNumeral(%d) = %q, want %q", tt.n, got, tt.expected)
			}
		})
	}
}

func TestCJKNumeralRange(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{name: "zero", n: 0},
		{name: "negative", n: -3},
		{name: "one hundred", n: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CJKNumeral(tt.n)
			if !errors.Is(err, ErrOrdinalRange) {
				t.Errorf("CJKNumeral(%d) error = %v, want ErrOrdinalRange", tt.n, err)
			}
		})
	}
}

func TestCJKNumeralWholeDomain(t *testing.T) {
	for n := 1; n <= 99; n++ {
		got, err := CJKNumeral(n)
		if err != nil {
			t.Fatalf("CJKNumeral(%d) returned error: %v", n, err)
		}
		if got == "" {
			t.Errorf("CJKNumeral(%d) = empty string", n)
		}
	}
}
