package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestSentinelErrors_Wrapping(t *testing.T) {
	tests := []struct {
		name     string
		sentinel error
	}{
		{"ErrInvalidPosition", ErrInvalidPosition},
		{"ErrInvalidPlacement", ErrInvalidPlacement},
		{"ErrInvalidConfig", ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("reading square: %w", tt.sentinel)
			if !errors.Is(wrapped, tt.sentinel) {
				t.Errorf("errors.Is(wrapped, %v) = false, want true", tt.sentinel)
			}
		})
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrInvalidPosition, ErrInvalidPlacement) {
		t.Error("ErrInvalidPosition should not match ErrInvalidPlacement")
	}
}

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ParseError
		contains []string
		want     string
	}{
		{
			name: "full context",
			err: &ParseError{
				Err:      ErrInvalidPosition,
				Input:    "J4",
				Offset:   0,
				Expected: "file A-H",
				Got:      "'J'",
			},
			contains: []string{"invalid position", `"J4"`, "offset 0", "expected file A-H", "got 'J'"},
		},
		{
			name: "no offset",
			err: &ParseError{
				Err:      ErrInvalidPosition,
				Input:    "A",
				Offset:   -1,
				Expected: "two characters",
			},
			want: `invalid position: "A": expected two characters`,
		},
		{
			name: "got only",
			err:  &ParseError{Input: "x", Offset: 2, Got: "'x'"},
			want: `"x" at offset 2: unexpected 'x'`,
		},
		{
			name: "bare sentinel",
			err:  &ParseError{Err: ErrInvalidPlacement, Offset: -1},
			want: "invalid placement",
		},
		{
			name: "nothing at all",
			err:  &ParseError{Offset: -1},
			want: "parse error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			if tt.want != "" && msg != tt.want {
				t.Errorf("Error() = %q, want %q", msg, tt.want)
			}
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

func TestParseError_As(t *testing.T) {
	parseErr := &ParseError{
		Err:    ErrInvalidPlacement,
		Input:  "8/8/9",
		Offset: 4,
	}
	wrapped := fmt.Errorf("loading board: %w", parseErr)

	if !errors.Is(wrapped, ErrInvalidPlacement) {
		t.Error("errors.Is(wrapped, ErrInvalidPlacement) = false, want true")
	}

	var extracted *ParseError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract ParseError")
	}
	if extracted.Offset != 4 {
		t.Errorf("extracted.Offset = %d, want 4", extracted.Offset)
	}
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidConfig, "applying flags")

	if !errors.Is(wrapped, ErrInvalidConfig) {
		t.Error("Wrap should preserve the underlying error")
	}
	if got := wrapped.Error(); got != "applying flags: invalid configuration" {
		t.Errorf("Wrap() = %q", got)
	}
	if Wrap(nil, "anything") != nil {
		t.Error("Wrap(nil) should be nil")
	}
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrInvalidPosition, "line %d", 3)

	if !errors.Is(wrapped, ErrInvalidPosition) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !strings.Contains(wrapped.Error(), "line 3") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
	if Wrapf(nil, "line %d", 3) != nil {
		t.Error("Wrapf(nil) should be nil")
	}
}
