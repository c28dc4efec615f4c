package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestParsePostDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{
			name:     "date only",
			input:    "2023-04-05",
			expected: time.Date(2023, 4, 5, 0, 0, 0, 0, time.Local),
		},
		{
			name:     "date and minutes",
			input:    "2023-04-05 08:30",
			expected: time.Date(2023, 4, 5, 8, 30, 0, 0, time.Local),
		},
		{
			name:     "date and seconds",
			input:    "2023-04-05 08:30:09",
			expected: time.Date(2023, 4, 5, 8, 30, 9, 0, time.Local),
		},
		{
			name:     "surrounding whitespace",
			input:    "  2023-04-05  ",
			expected: time.Date(2023, 4, 5, 0, 0, 0, 0, time.Local),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePostDate(tt.input)
			if err != nil {
				t.Fatalf("ParsePostDate(%q) returned error: %v", tt.input, err)
			}
			if !got.Equal(tt.expected) {
				t.Errorf("ParsePostDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParsePostDateInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "garbage", input: "not-a-date"},
		{name: "wrong order", input: "05/04/2023"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParsePostDate(tt.input); !errors.Is(err, ErrInvalidDate) {
				t.Errorf("ParsePostDate(%q) error = %v, want ErrInvalidDate", tt.input, err)
			}
		})
	}
}

func TestParseDateFormat(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		expected string
	}{
		{name: "iso", format: "YYYY-MM-DD", expected: "2006-01-02"},
		{name: "long month", format: "MMMM D, YYYY", expected: "January 2, 2006"},
		{name: "cjk literals", format: "YYYY[年]M[月]D[日]", expected: "2006年1月2日"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDateFormat(tt.format)
			if err != nil {
				t.Fatalf("ParseDateFormat(%q) returned error: %v", tt.format, err)
			}
			if got != tt.expected {
				t.Errorf("ParseDateFormat(%q) = %q, want %q", tt.format, got, tt.expected)
			}
		})
	}
}

func TestParseDateFormatInvalid(t *testing.T) {
	if _, err := ParseDateFormat(""); !errors.Is(err, ErrInvalidDateFormat) {
		t.Errorf("empty format error = %v, want ErrInvalidDateFormat", err)
	}
	if _, err := ParseDateFormat("YYYY[年"); !errors.Is(err, ErrInvalidDateFormat) {
		t.Errorf("unclosed bracket error = %v, want ErrInvalidDateFormat", err)
	}
}

func TestFormatDisplay(t *testing.T) {
	d := time.Date(2023, 4, 5, 0, 0, 0, 0, time.Local)

	got, err := FormatDisplay(d, "")
	if err != nil {
		t.Fatalf("FormatDisplay() returned error: %v", err)
	}
	if got != "2023-04-05" {
		t.Errorf("default format = %q, want 2023-04-05", got)
	}

	got, err = FormatDisplay(d, "YYYY[年]M[月]D[日]")
	if err != nil {
		t.Fatalf("FormatDisplay() returned error: %v", err)
	}
	if got != "2023年4月5日" {
		t.Errorf("cjk format = %q, want 2023年4月5日", got)
	}
}
