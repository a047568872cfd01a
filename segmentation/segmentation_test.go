package segmentation

import (
	"testing"

	"github.com/t28hub/auto-palette-sub000/clustering"
	"github.com/t28hub/auto-palette-sub000/color"
	"github.com/t28hub/auto-palette-sub000/internal/rng"
	"github.com/t28hub/auto-palette-sub000/metric"
)

// checkerboardFeatures builds a width x height grid of 5-D features with two
// sharply distinct Lab regions: the left half near black, the right half
// near white, so any segmenter should separate them into different labels.
func checkerboardFeatures(width, height int) [][]float64 {
	features := make([][]float64, width*height)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			idx := row*width + col
			var c color.Color[float64]
			if col < width/2 {
				c = color.New[float64](10, 0, 0)
			} else {
				c = color.New[float64](90, 0, 0)
			}
			features[idx] = Feature(c, col, row, width, height)
		}
	}
	return features
}

func TestFeatureRoundTrip(t *testing.T) {
	c := color.New[float64](55, -12, 40)
	f := Feature(c, 3, 7, 10, 10)
	got := DenormalizeColor(f)
	if d := color.DeltaE76(c, got); d > 1e-9 {
		t.Errorf("Feature/DenormalizeColor round trip drifted: deltaE76=%v", d)
	}
	col, row := DenormalizePosition(f, 10, 10)
	if col != 3 || row != 7 {
		t.Errorf("DenormalizePosition = (%d, %d), want (3, 7)", col, row)
	}
}

func TestSegmentBuilderIncrementalCenter(t *testing.T) {
	b := NewBuilder[float64](2, 2, 2)
	b.Assign(0, 0, []float64{0, 0})
	b.Assign(1, 0, []float64{2, 0})
	seg := b.GetMut(0)
	center := seg.Center()
	if center[0] != 1 || center[1] != 0 {
		t.Errorf("segment center = %v, want [1 0]", center)
	}
	if seg.Len() != 2 {
		t.Errorf("segment len = %d, want 2", seg.Len())
	}
}

func TestLabelImageMarksSentinels(t *testing.T) {
	b := NewBuilder[float64](2, 1, 1)
	b.MarkSentinel(0, Ignored)
	b.Assign(1, 0, []float64{1})
	img := b.Build()
	if img.LabelAt(0) != Ignored {
		t.Errorf("LabelAt(0) = %d, want Ignored", img.LabelAt(0))
	}
	if img.LabelAt(1) != 0 {
		t.Errorf("LabelAt(1) = %d, want 0", img.LabelAt(1))
	}
}

func TestKMeansSegmenterSeparatesHalves(t *testing.T) {
	width, height := 8, 4
	features := checkerboardFeatures(width, height)
	seg := KMeansSegmenter[float64]{
		TargetSegments: 2,
		MaxIter:        10,
		Tolerance:      1e-3,
		Metric:         metric.Euclidean,
		Init:           clustering.KMeansPlusPlus,
		RNG:            rng.NewPCG(1, 2),
	}
	img, err := Segment[float64](seg, width, height, features)
	if err != nil {
		t.Fatalf("Segment: %v", err)
	}
	left := img.LabelAt(0)
	right := img.LabelAt(width - 1)
	if left == right {
		t.Errorf("left and right halves share label %d, want distinct", left)
	}
}

func TestDBSCANSegmenterRejectsInvalidTarget(t *testing.T) {
	seg := DBSCANSegmenter[float64]{TargetSegments: 0, MinPixels: 1, Epsilon: 0.1}
	_, err := Segment[float64](seg, 2, 2, make([][]float64, 4))
	if err == nil {
		t.Error("DBSCANSegmenter with TargetSegments=0: want error, got nil")
	}
}

func TestSNICSegmenterCoversMaskedPixels(t *testing.T) {
	width, height := 6, 6
	features := checkerboardFeatures(width, height)
	seg := SNICSegmenter[float64]{TargetSegments: 4, Metric: metric.Euclidean}
	img, err := Segment[float64](seg, width, height, features)
	if err != nil {
		t.Fatalf("Segment: %v", err)
	}
	for i := 0; i < width*height; i++ {
		if img.LabelAt(i) < 0 {
			t.Errorf("pixel %d unlabeled after SNIC", i)
		}
	}
}

func TestSLICSegmenterConverges(t *testing.T) {
	width, height := 8, 8
	features := checkerboardFeatures(width, height)
	seg := SLICSegmenter[float64]{
		TargetSegments: 4,
		Compactness:    1,
		MaxIter:        10,
		Tolerance:      1e-3,
		Metric:         metric.Euclidean,
	}
	img, err := Segment[float64](seg, width, height, features)
	if err != nil {
		t.Fatalf("Segment: %v", err)
	}
	if len(img.Segments()) == 0 {
		t.Error("SLIC produced no segments")
	}
}
