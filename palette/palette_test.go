package palette

import (
	"testing"

	"github.com/t28hub/auto-palette-sub000/color"
	"github.com/t28hub/auto-palette-sub000/segmentation"
)

// solidImage builds an ImageData of the given size filled with a single
// RGBA color.
func solidImage(width, height uint32, r, g, b, a uint8) ImageData {
	data := make([]byte, 4*width*height)
	for i := uint32(0); i < width*height; i++ {
		data[4*i] = r
		data[4*i+1] = g
		data[4*i+2] = b
		data[4*i+3] = a
	}
	img, _ := NewImageData(width, height, data)
	return img
}

// twoToneImage builds an image whose left half is one color and right half
// another, both fully opaque.
func twoToneImage(width, height uint32, left, right [3]uint8) ImageData {
	data := make([]byte, 4*width*height)
	for row := uint32(0); row < height; row++ {
		for col := uint32(0); col < width; col++ {
			idx := row*width + col
			c := left
			if col >= width/2 {
				c = right
			}
			data[4*idx] = c[0]
			data[4*idx+1] = c[1]
			data[4*idx+2] = c[2]
			data[4*idx+3] = 255
		}
	}
	img, _ := NewImageData(width, height, data)
	return img
}

func TestNewImageDataLengthMismatch(t *testing.T) {
	if _, err := NewImageData(2, 2, make([]byte, 10)); err == nil {
		t.Error("NewImageData with wrong data length: want error, got nil")
	}
}

func TestExtractEmptyImageErrors(t *testing.T) {
	img, _ := NewImageData(0, 0, nil)
	if _, err := Extract[float64](img); err == nil {
		t.Error("Extract on zero-pixel image: want error, got nil")
	}
}

func TestExtractAllTransparentYieldsEmptyPalette(t *testing.T) {
	img := solidImage(4, 4, 10, 20, 30, 0)
	p, err := Extract[float64](img)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !p.IsEmpty() {
		t.Errorf("Extract on all-transparent image: got %d swatches, want 0", p.Len())
	}
}

func TestExtractSolidImageYieldsOneSwatch(t *testing.T) {
	img := solidImage(6, 6, 200, 30, 30, 255)
	p, err := Extract[float64](img)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if p.Len() != 1 {
		t.Fatalf("Extract on solid image: got %d swatches, want 1", p.Len())
	}
	if p.Swatches()[0].Ratio != 1 {
		t.Errorf("solid image swatch ratio = %v, want 1", p.Swatches()[0].Ratio)
	}
}

func TestExtractTwoToneImageYieldsTwoSwatches(t *testing.T) {
	img := twoToneImage(10, 10, [3]uint8{250, 10, 10}, [3]uint8{10, 10, 250})
	p, err := NewBuilder[float64]().WithAlgorithm(KMeans).Build(img)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if p.Len() < 2 {
		t.Fatalf("two-tone image produced %d swatches, want >= 2", p.Len())
	}
	total := uint32(0)
	for _, s := range p.Swatches() {
		total += s.Population
	}
	if total != 100 {
		t.Errorf("swatch populations sum to %d, want 100", total)
	}
}

func TestPaletteFindSwatchesCapsCount(t *testing.T) {
	img := twoToneImage(10, 10, [3]uint8{250, 10, 10}, [3]uint8{10, 10, 250})
	p, err := Extract[float64](img)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	found, err := p.FindSwatches(1)
	if err != nil {
		t.Fatalf("FindSwatches: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("FindSwatches(1) returned %d swatches, want 1", len(found))
	}
}

func TestPaletteFindSwatchesWithThemePrefersVivid(t *testing.T) {
	img := twoToneImage(10, 10, [3]uint8{250, 10, 10}, [3]uint8{10, 10, 250})
	p, err := Extract[float64](img)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	found, err := p.FindSwatchesWithTheme(1, Vivid)
	if err != nil {
		t.Fatalf("FindSwatchesWithTheme: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("FindSwatchesWithTheme(1) returned %d swatches, want 1", len(found))
	}
	best := ScoreSwatch(Vivid, p.Swatches()[0])
	for _, s := range p.Swatches() {
		if sc := ScoreSwatch(Vivid, s); sc > best {
			best = sc
		}
	}
	if got := ScoreSwatch(Vivid, found[0]); got != best {
		t.Errorf("FindSwatchesWithTheme(1, Vivid) picked a swatch scoring %v, want the highest Vivid score %v", got, best)
	}
}

func TestFindSwatchesOnEmptyPalette(t *testing.T) {
	var p Palette[float64]
	found, err := p.FindSwatches(3)
	if err != nil {
		t.Fatalf("FindSwatches on empty palette: %v", err)
	}
	if found != nil {
		t.Errorf("FindSwatches on empty palette = %v, want nil", found)
	}
}

// TestGroupByColorPositionIsSegmentMean pins the chosen swatch's position to
// the denormalized mean of the winning segment's members, not whichever
// member pixel happened to be assigned to the segment first.
func TestGroupByColorPositionIsSegmentMean(t *testing.T) {
	const width, height = 10, 1
	c := color.New[float64](50, 0, 0)

	builder := segmentation.NewBuilder[float64](width, height, segmentation.FeatureDim)
	for _, col := range []int{0, 1, 2, 3} {
		builder.Assign(col, 0, segmentation.Feature(c, col, 0, width, height))
	}
	// Assigned in descending column order, so Members()[0] == 9, the
	// opposite edge of the segment from its mean position.
	for _, col := range []int{9, 8, 7, 6} {
		builder.Assign(col, 1, segmentation.Feature(c, col, 0, width, height))
	}
	labelImage := builder.Build()

	swatches, err := groupByColor[float64](labelImage, width, height, 8)
	if err != nil {
		t.Fatalf("groupByColor: %v", err)
	}
	if len(swatches) != 1 {
		t.Fatalf("groupByColor produced %d swatches, want 1 (identical colors should merge)", len(swatches))
	}

	got := swatches[0].Position
	if got[0] != 8 || got[1] != 0 {
		t.Errorf("Position = %v, want (8, 0): the mean of columns {6,7,8,9}, not Members()[0]=9", got)
	}
}

func TestAlgorithmRoundTrip(t *testing.T) {
	for _, a := range []Algorithm{KMeans, DBSCAN, DBSCANPlusPlus} {
		got, ok := ParseAlgorithm(a.String())
		if !ok || got != a {
			t.Errorf("ParseAlgorithm(%q) = (%v, %v), want (%v, true)", a.String(), got, ok, a)
		}
	}
}

func TestThemeRoundTrip(t *testing.T) {
	for _, th := range []Theme{Vivid, Muted, Light, Dark, Colorful} {
		got, ok := ParseTheme(th.String())
		if !ok || got != th {
			t.Errorf("ParseTheme(%q) = (%v, %v), want (%v, true)", th.String(), got, ok, th)
		}
	}
}
