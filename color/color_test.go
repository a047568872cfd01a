package color

import (
	"math"
	"testing"
)

func TestHexRoundTrip(t *testing.T) {
	cases := []string{"#FF0000", "#00FF00", "#0000FF", "#808080", "#1ED760"}
	for _, hex := range cases {
		c, err := FromHexString[float64](hex)
		if err != nil {
			t.Fatalf("FromHexString(%q): %v", hex, err)
		}
		got := c.ToHexString()
		if got != hex {
			t.Errorf("round trip %q: got %q", hex, got)
		}
	}
}

func TestFromHexStringMalformed(t *testing.T) {
	cases := []string{"FF0000", "#GGGGGG", "#FF000", "#FF0000FF0"}
	for _, hex := range cases {
		if _, err := FromHexString[float64](hex); err == nil {
			t.Errorf("FromHexString(%q): want error, got nil", hex)
		}
	}
}

func TestFromHexStringShorthand(t *testing.T) {
	c, err := FromHexString[float64]("#F00")
	if err != nil {
		t.Fatalf("FromHexString: %v", err)
	}
	if got := c.ToHexString(); got != "#FF0000" {
		t.Errorf("shorthand #F00 expanded to %q, want #FF0000", got)
	}
}

func TestToAnsi16(t *testing.T) {
	cases := []struct {
		hex  string
		want int
	}{
		{"#000000", 30},
		{"#FF0000", 91},
		{"#808080", 37},
	}
	for _, tc := range cases {
		c, err := FromHexString[float64](tc.hex)
		if err != nil {
			t.Fatalf("FromHexString(%q): %v", tc.hex, err)
		}
		if got := c.ToAnsi16(); got != tc.want {
			t.Errorf("ToAnsi16(%q) = %d, want %d", tc.hex, got, tc.want)
		}
	}
}

func TestToAnsi256(t *testing.T) {
	cases := []struct {
		hex  string
		want int
	}{
		{"#FF0000", 196},
		{"#808080", 244},
		{"#1ED760", 78},
	}
	for _, tc := range cases {
		c, err := FromHexString[float64](tc.hex)
		if err != nil {
			t.Fatalf("FromHexString(%q): %v", tc.hex, err)
		}
		if got := c.ToAnsi256(); got != tc.want {
			t.Errorf("ToAnsi256(%q) = %d, want %d", tc.hex, got, tc.want)
		}
	}
}

func TestDeltaE76Zero(t *testing.T) {
	c := New[float64](50, 10, -20)
	if d := DeltaE76(c, c); d != 0 {
		t.Errorf("DeltaE76(c, c) = %v, want 0", d)
	}
}

// TestDeltaE2000ReferencePair checks one of the published CIEDE2000 test
// vectors (Sharma, Wu & Dalal): L*a*b* (50, 2.6772, -79.7751) against
// (50, 0, -82.7485) should differ by ~2.0425.
func TestDeltaE2000ReferencePair(t *testing.T) {
	ref := New[float64](50, 2.6772, -79.7751)
	sample := New[float64](50, 0, -82.7485)
	got := DeltaE2000(ref, sample)
	want := 2.0425
	if math.Abs(got-want) > 0.01 {
		t.Errorf("DeltaE2000 = %v, want ~%v", got, want)
	}
}

func TestChromaAndLightness(t *testing.T) {
	c := New[float64](60, 3, 4)
	if got := c.Chroma(); math.Abs(got-5) > 1e-9 {
		t.Errorf("Chroma() = %v, want 5", got)
	}
	if !c.IsLight() {
		t.Errorf("IsLight() = false for L=60, want true")
	}
	if c.IsDark() {
		t.Errorf("IsDark() = true for L=60, want false")
	}
}

func TestToLabRoundTrip(t *testing.T) {
	c := New[float64](50, 2.5, -10.25)
	lab := c.ToLab()
	if lab.L != c.L || lab.A != c.A || lab.B != c.B {
		t.Errorf("ToLab() = %+v, want components matching Color %+v", lab, c)
	}
	if got := FromLab(lab); got != c {
		t.Errorf("FromLab(c.ToLab()) = %+v, want %+v", got, c)
	}
}

func TestLabString(t *testing.T) {
	lab := Lab[float64]{L: 50, A: 2.6772, B: -79.7751}
	want := "Lab(50.00, 2.68, -79.78)"
	if got := lab.String(); got != want {
		t.Errorf("Lab.String() = %q, want %q", got, want)
	}
}

func TestColorString(t *testing.T) {
	c := New[float64](50, 2.6772, -79.7751)
	want := "Color(l: 50.00, a: 2.68, b: -79.78)"
	if got := c.String(); got != want {
		t.Errorf("Color.String() = %q, want %q", got, want)
	}
}

func TestRGBRoundTripApprox(t *testing.T) {
	rgb := RGB{R: 30, G: 215, B: 96}
	c := FromRGB[float64](rgb)
	got := c.ToRGB()
	if d := DeltaE76(c, FromRGB[float64](got)); d > 0.5 {
		t.Errorf("rgb->lab->rgb->lab drifted by deltaE76=%v", d)
	}
}
