package colour

import (
	"errors"
	"math"
	"testing"
)

var sampleColours = []string{
	"#000000", "#ffffff", "#777777", "#808080", "#888888",
	"#ff0000", "#00ff00", "#0000ff", "#1a2b3c", "#f5f5dc", "#2563eb",
}

func TestContrastRatioKnownValues(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
		tol  float64
	}{
		{name: "black on white", a: "#000000", b: "#ffffff", want: 21.0, tol: 0.01},
		{name: "white on white", a: "#ffffff", b: "#ffffff", want: 1.0, tol: 0},
		{name: "near identical greys", a: "#777777", b: "#808080", want: 1.13, tol: 0.01},
		{name: "mid grey on white", a: "#888888", b: "#ffffff", want: 3.54, tol: 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ContrastRatio(tt.a, tt.b)
			if err != nil {
				t.Fatalf("ContrastRatio() unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("ContrastRatio(%s, %s) = %.4f, want %.2f", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestContrastRatioSymmetricAndBounded(t *testing.T) {
	for _, a := range sampleColours {
		for _, b := range sampleColours {
			ab, err := ContrastRatio(a, b)
			if err != nil {
				t.Fatalf("ContrastRatio(%s, %s): %v", a, b, err)
			}
			ba, _ := ContrastRatio(b, a)
			if ab != ba {
				t.Errorf("ContrastRatio not symmetric for %s/%s: %v vs %v", a, b, ab, ba)
			}
			if ab < 1 || ab > 21+1e-9 {
				t.Errorf("ContrastRatio(%s, %s) = %v out of [1,21]", a, b, ab)
			}
		}
		self, _ := ContrastRatio(a, a)
		if self != 1 {
			t.Errorf("ContrastRatio(%s, %s) = %v, want 1", a, a, self)
		}
	}
}

func TestContrastRatioInvalidColour(t *testing.T) {
	if _, err := ContrastRatio("notacolor", "#ffffff"); !errors.Is(err, ErrInvalidColour) {
		t.Errorf("expected ErrInvalidColour for foreground, got %v", err)
	}
	if _, err := ContrastRatio("#000000", "#fff"); !errors.Is(err, ErrInvalidColour) {
		t.Errorf("expected ErrInvalidColour for background, got %v", err)
	}
}

func TestWCAGCompliance(t *testing.T) {
	tests := []struct {
		name      string
		ratio     float64
		largeText bool
		want      Compliance
	}{
		{name: "AA normal boundary", ratio: 4.5, want: Compliance{Compliant: true, Level: LevelAA}},
		{name: "just below AA normal", ratio: 4.49, want: Compliance{Compliant: false, Level: LevelFail}},
		{name: "AAA normal boundary", ratio: 7.0, want: Compliance{Compliant: true, Level: LevelAAA}},
		{name: "max contrast", ratio: 21, want: Compliance{Compliant: true, Level: LevelAAA}},
		{name: "AA large boundary", ratio: 3.0, largeText: true, want: Compliance{Compliant: true, Level: LevelAA}},
		{name: "below AA large", ratio: 2.99, largeText: true, want: Compliance{Compliant: false, Level: LevelFail}},
		{name: "AAA large boundary", ratio: 4.5, largeText: true, want: Compliance{Compliant: true, Level: LevelAAA}},
		{name: "no contrast", ratio: 1, want: Compliance{Compliant: false, Level: LevelFail}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WCAGCompliance(tt.ratio, tt.largeText); got != tt.want {
				t.Errorf("WCAGCompliance(%v, %v) = %+v, want %+v", tt.ratio, tt.largeText, got, tt.want)
			}
		})
	}
}

func TestMinimumRatio(t *testing.T) {
	tests := []struct {
		level     Level
		largeText bool
		want      float64
	}{
		{LevelAA, false, 4.5},
		{LevelAA, true, 3.0},
		{LevelAAA, false, 7.0},
		{LevelAAA, true, 4.5},
		{LevelFail, false, 1},
	}
	for _, tt := range tests {
		if got := MinimumRatio(tt.level, tt.largeText); got != tt.want {
			t.Errorf("MinimumRatio(%s, %v) = %v, want %v", tt.level, tt.largeText, got, tt.want)
		}
	}
}

func TestFormatRatio(t *testing.T) {
	if got := FormatRatio(4.5238); got != "4.52:1" {
		t.Errorf("FormatRatio() = %q", got)
	}
}
