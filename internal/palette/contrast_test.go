package palette

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"#f44336", "#f44336", false},
		{"#F44336", "#f44336", false},
		{"f44336", "#f44336", false},
		{"#fff", "#ffffff", false},
		{"#0a0", "#00aa00", false},
		{" #222 ", "#222222", false},
		{"", "", true},
		{"#12", "", true},
		{"#zzzzzz", "", true},
		{"#1234567", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Normalize(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Normalize(%q) = %q, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalize(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLuminanceBounds(t *testing.T) {
	if l := Luminance(Black); l != 0 {
		t.Errorf("Luminance(black) = %v, want 0", l)
	}
	if l := Luminance(White); math.Abs(l-1) > 1e-9 {
		t.Errorf("Luminance(white) = %v, want 1", l)
	}
}

func TestContrastRatio(t *testing.T) {
	if r := ContrastRatio(Black, White); math.Abs(r-21) > 1e-9 {
		t.Errorf("ContrastRatio(black, white) = %v, want 21", r)
	}
	if r := ContrastRatio(White, Black); math.Abs(r-21) > 1e-9 {
		t.Errorf("ContrastRatio is not symmetric: %v", r)
	}
	if r := ContrastRatio("#f44336", "#f44336"); r != 1 {
		t.Errorf("ContrastRatio(c, c) = %v, want 1", r)
	}
}

func TestContrastColor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{Black, White},
		{White, Black},
		{"#f44336", Black},
		{"#222222", White},
		{"#ffeb3b", Black},
		{"#3f51b5", White},
		{"#673ab7", White},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ContrastColor(tt.in); got != tt.want {
				t.Errorf("ContrastColor(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestContrastColorIsSentinel(t *testing.T) {
	for _, c := range Swatches {
		first := ContrastColor(c)
		if first != Black && first != White {
			t.Fatalf("ContrastColor(%q) = %q, not a sentinel", c, first)
		}
		if ContrastRatio(c, first) < ContrastRatio(c, ContrastColor(first)) {
			t.Errorf("ContrastColor(%q) = %q does not maximize contrast", c, first)
		}

		// contrast of contrast is deterministic and is the other sentinel
		second := ContrastColor(first)
		if second == first {
			t.Errorf("ContrastColor(ContrastColor(%q)) = %q, want opposite sentinel", c, second)
		}
		if again := ContrastColor(ContrastColor(c)); again != second {
			t.Errorf("double contrast of %q not deterministic: %q vs %q", c, again, second)
		}
	}
}

func TestIndexOf(t *testing.T) {
	if i := IndexOf(Swatches, "#F44336"); i != 0 {
		t.Errorf("IndexOf(default red) = %d, want 0", i)
	}
	if i := IndexOf(Swatches, "#607d8b"); i != len(Swatches)-1 {
		t.Errorf("IndexOf(blue grey) = %d, want %d", i, len(Swatches)-1)
	}
	if i := IndexOf(Swatches, "#123456"); i != -1 {
		t.Errorf("IndexOf(unknown) = %d, want -1", i)
	}
	if i := IndexOf(Swatches, "nope"); i != -1 {
		t.Errorf("IndexOf(invalid) = %d, want -1", i)
	}
}
