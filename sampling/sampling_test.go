package sampling

import "testing"

func TestSampleEmpty(t *testing.T) {
	if got := Sample[float64](nil, 3); got != nil {
		t.Errorf("Sample(nil, 3) = %v, want nil", got)
	}
}

func TestSampleZeroN(t *testing.T) {
	points := [][]float64{{0, 0}, {1, 1}}
	if got := Sample(points, 0); got != nil {
		t.Errorf("Sample(points, 0) = %v, want nil", got)
	}
}

func TestSampleFullCoverageWhenNExceedsPoints(t *testing.T) {
	points := [][]float64{{0, 0}, {1, 0}, {0, 1}}
	got := Sample(points, 10)
	if len(got) != len(points) {
		t.Fatalf("Sample returned %d indices, want %d", len(got), len(points))
	}
	seen := make(map[int]bool)
	for _, idx := range got {
		if seen[idx] {
			t.Errorf("Sample returned duplicate index %d", idx)
		}
		seen[idx] = true
	}
}

func TestSampleFarthestFirst(t *testing.T) {
	// Initial point is index 0; the farthest point should be chosen second.
	points := [][]float64{{0, 0}, {1, 0}, {100, 0}}
	got := Sample(points, 2)
	if len(got) != 2 {
		t.Fatalf("Sample returned %d indices, want 2", len(got))
	}
	if got[0] != 0 || got[1] != 2 {
		t.Errorf("Sample = %v, want [0 2]", got)
	}
}

func TestSampleWeightedLengthMismatch(t *testing.T) {
	points := [][]float64{{0, 0}, {1, 1}}
	if _, err := SampleWeighted(points, 1, []float64{1}); err == nil {
		t.Error("SampleWeighted with mismatched weights: want error, got nil")
	}
}

func TestSampleWeightedPrefersHighWeight(t *testing.T) {
	points := [][]float64{{0, 0}, {1, 0}, {2, 0}}
	weights := []float64{1, 1, 100}
	got, err := SampleWeighted(points, 1, weights)
	if err != nil {
		t.Fatalf("SampleWeighted: %v", err)
	}
	if len(got) != 1 || got[0] != 2 {
		t.Errorf("SampleWeighted initial pick = %v, want [2]", got)
	}
}

func TestSampleDiversityInvalidLambda(t *testing.T) {
	points := [][]float64{{0, 0}, {1, 1}}
	scores := []float64{0.5, 0.5}
	if _, err := SampleDiversity(points, 1, -0.1, scores); err == nil {
		t.Error("SampleDiversity with lambda<0: want error, got nil")
	}
	if _, err := SampleDiversity(points, 1, 1.1, scores); err == nil {
		t.Error("SampleDiversity with lambda>1: want error, got nil")
	}
}

func TestSampleDiversityEmptyScores(t *testing.T) {
	points := [][]float64{{0, 0}}
	if _, err := SampleDiversity(points, 1, 0.5, nil); err == nil {
		t.Error("SampleDiversity with empty scores: want error, got nil")
	}
}

func TestSampleDiversityScoreLengthMismatch(t *testing.T) {
	points := [][]float64{{0, 0}, {1, 1}}
	if _, err := SampleDiversity(points, 1, 0.5, []float64{1}); err == nil {
		t.Error("SampleDiversity with mismatched scores: want error, got nil")
	}
}

func TestSampleDiversityFullCoverage(t *testing.T) {
	points := [][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	scores := []float64{0.9, 0.1, 0.5, 0.4}
	got, err := SampleDiversity(points, 4, 0.6, scores)
	if err != nil {
		t.Fatalf("SampleDiversity: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("SampleDiversity returned %d indices, want 4", len(got))
	}
	seen := make(map[int]bool)
	for _, idx := range got {
		seen[idx] = true
	}
	if len(seen) != 4 {
		t.Errorf("SampleDiversity returned duplicate indices: %v", got)
	}
}
