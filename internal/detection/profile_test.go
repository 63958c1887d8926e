package detection

import (
	"errors"
	"strings"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Color
		wantErr bool
	}{
		{"lowercase", "red", Red, false},
		{"uppercase", "BLUE", Blue, false},
		{"mixed case", "Green", Green, false},
		{"surrounding space", "  pink ", Pink, false},
		{"unknown", "chartreuse", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseColor(%q) should fail", tt.input)
				}
				var colorErr *UnsupportedColorError
				if !errors.As(err, &colorErr) {
					t.Fatalf("error type: got %T, want *UnsupportedColorError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q): got %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestUnsupportedColorError_ListsValidSet(t *testing.T) {
	_, err := ParseColor("chartreuse")
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	for _, c := range All {
		if !strings.Contains(msg, string(c)) {
			t.Errorf("error message missing valid color %q: %s", c, msg)
		}
	}
}

func TestProfileTable(t *testing.T) {
	if len(All) != 9 {
		t.Fatalf("supported color count: got %d, want 9", len(All))
	}

	for _, c := range All {
		ranges, ok := c.Ranges()
		if !ok {
			t.Errorf("color %s has no profile", c)
			continue
		}

		wantRanges := 1
		if c == Red {
			// Red wraps the hue origin and needs a band at each end.
			wantRanges = 2
		}
		if len(ranges) != wantRanges {
			t.Errorf("color %s: got %d ranges, want %d", c, len(ranges), wantRanges)
		}
	}
}

func TestHSVRangeContains(t *testing.T) {
	r := HSVRange{HMin: 100, HMax: 200, SMin: 0.5, SMax: 1, VMin: 0.5, VMax: 1}

	tests := []struct {
		name    string
		h, s, v float64
		want    bool
	}{
		{"inside", 150, 0.8, 0.8, true},
		{"hue bounds inclusive low", 100, 0.8, 0.8, true},
		{"hue bounds inclusive high", 200, 0.8, 0.8, true},
		{"hue below", 99, 0.8, 0.8, false},
		{"saturation below", 150, 0.4, 0.8, false},
		{"value below", 150, 0.8, 0.4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.h, tt.s, tt.v); got != tt.want {
				t.Errorf("Contains(%v,%v,%v): got %v, want %v", tt.h, tt.s, tt.v, got, tt.want)
			}
		})
	}
}
