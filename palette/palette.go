package palette

import (
	"sort"

	"github.com/t28hub/auto-palette-sub000/clustering"
	"github.com/t28hub/auto-palette-sub000/color"
	"github.com/t28hub/auto-palette-sub000/internal/rng"
	"github.com/t28hub/auto-palette-sub000/internal/xerrors"
	"github.com/t28hub/auto-palette-sub000/metric"
	"github.com/t28hub/auto-palette-sub000/numeric"
	"github.com/t28hub/auto-palette-sub000/sampling"
	"github.com/t28hub/auto-palette-sub000/segmentation"
)

// FilterFunc decides whether a pixel participates in extraction.
type FilterFunc func(r, g, b, a uint8) bool

// DefaultFilter keeps every pixel with a non-zero alpha channel.
func DefaultFilter(_, _, _, a uint8) bool { return a > 0 }

// diversityLambda is the fixed blend weight FindSwatches uses between a
// swatch's population ratio and its live dissimilarity rank.
const diversityLambda = 0.6

// colorGroupEpsilon is the DBSCAN radius, in Lab units, two segments' mean
// colors must fall within to be folded into the same swatch.
const colorGroupEpsilon = 2.5

// Palette is an ordered, immutable list of extracted swatches, sorted by
// descending population.
type Palette[T numeric.Float] struct {
	swatches []Swatch[T]
}

// Len reports the number of swatches.
func (p Palette[T]) Len() int { return len(p.swatches) }

// IsEmpty reports whether the palette has no swatches: the image had no
// pixels passing the extraction filter.
func (p Palette[T]) IsEmpty() bool { return len(p.swatches) == 0 }

// Swatches returns every swatch, in descending-population order.
func (p Palette[T]) Swatches() []Swatch[T] {
	return append([]Swatch[T](nil), p.swatches...)
}

// FindSwatches selects up to n swatches by diversity sampling: each
// candidate's population ratio is blended against its live Lab
// dissimilarity to the swatches already chosen, so the result favors both
// dominant and visually distinct colors.
func (p Palette[T]) FindSwatches(n int) ([]Swatch[T], error) {
	if len(p.swatches) == 0 {
		return nil, nil
	}
	points := make([][]T, len(p.swatches))
	scores := make([]T, len(p.swatches))
	for i, s := range p.swatches {
		points[i] = []T{s.Color.L, s.Color.A, s.Color.B}
		scores[i] = s.Ratio
	}
	idx, err := sampling.SampleDiversity(points, n, T(diversityLambda), scores)
	if err != nil {
		return nil, xerrors.Wrap(xerrors.SelectionFailure, err, "find swatches failed")
	}
	return p.pick(idx), nil
}

// FindSwatchesWithTheme selects up to n swatches by weighted farthest-point
// sampling, weighting every candidate by its score against theme.
func (p Palette[T]) FindSwatchesWithTheme(n int, theme Theme) ([]Swatch[T], error) {
	if len(p.swatches) == 0 {
		return nil, nil
	}
	points := make([][]T, len(p.swatches))
	weights := make([]T, len(p.swatches))
	for i, s := range p.swatches {
		points[i] = []T{s.Color.L, s.Color.A, s.Color.B}
		weights[i] = ScoreSwatch(theme, s)
	}
	idx, err := sampling.SampleWeighted(points, n, weights)
	if err != nil {
		return nil, xerrors.Wrap(xerrors.SelectionFailure, err, "find swatches with theme failed")
	}
	return p.pick(idx), nil
}

func (p Palette[T]) pick(idx []int) []Swatch[T] {
	out := make([]Swatch[T], len(idx))
	for i, j := range idx {
		out[i] = p.swatches[j]
	}
	return out
}

// Builder configures and runs the extraction pipeline. The zero value is
// not usable; construct one with NewBuilder.
type Builder[T numeric.Float] struct {
	algorithm   Algorithm
	filter      FilterFunc
	maxSwatches int
	rng         rng.Source
}

// NewBuilder returns a Builder configured with the pipeline defaults:
// k-means segmentation, the alpha>0 filter, an unbounded swatch count, and
// a deterministically seeded RNG.
func NewBuilder[T numeric.Float]() *Builder[T] {
	return &Builder[T]{
		algorithm:   KMeans,
		filter:      DefaultFilter,
		maxSwatches: 0,
		rng:         rng.NewPCG(0x9E3779B97F4A7C15, 0xBF58476D1CE4E5B9),
	}
}

// WithAlgorithm selects the segmentation algorithm to dispatch to.
func (b *Builder[T]) WithAlgorithm(a Algorithm) *Builder[T] {
	b.algorithm = a
	return b
}

// WithFilter overrides the default alpha>0 pixel filter.
func (b *Builder[T]) WithFilter(f FilterFunc) *Builder[T] {
	b.filter = f
	return b
}

// WithMaxSwatches caps the number of swatches Build returns; n <= 0 leaves
// the result uncapped.
func (b *Builder[T]) WithMaxSwatches(n int) *Builder[T] {
	b.maxSwatches = n
	return b
}

// WithRNG overrides the RNG source k-means segmentation draws its initial
// centroids from.
func (b *Builder[T]) WithRNG(source rng.Source) *Builder[T] {
	b.rng = source
	return b
}

// Build runs the extraction pipeline over img: pixel filtering, feature
// lift, segmentation, color grouping, and swatch aggregation. An image with
// no pixels is an error; an image whose every pixel is filtered out yields
// an empty (not erroring) Palette.
func (b *Builder[T]) Build(img ImageData) (Palette[T], error) {
	width, height := int(img.Width), int(img.Height)
	if width == 0 || height == 0 {
		return Palette[T]{}, xerrors.New(xerrors.Empty, "image has no pixels")
	}

	cells := width * height
	mask := make([]bool, cells)
	features := make([][]T, cells)
	active := 0
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			idx := row*width + col
			r, g, bl, a := img.At(col, row)
			if b.filter(r, g, bl, a) {
				mask[idx] = true
				active++
				lab := color.FromRGB[T](color.RGB{R: r, G: g, B: bl})
				features[idx] = segmentation.Feature(lab, col, row, width, height)
			} else {
				features[idx] = make([]T, segmentation.FeatureDim)
			}
		}
	}
	if active == 0 {
		return Palette[T]{}, nil
	}

	labelImage, err := b.segment(width, height, features, mask, active)
	if err != nil {
		return Palette[T]{}, xerrors.Wrap(xerrors.ExtractionFailure, err, "segmentation failed")
	}

	swatches, err := groupByColor[T](labelImage, width, height, active)
	if err != nil {
		return Palette[T]{}, xerrors.Wrap(xerrors.ExtractionFailure, err, "color grouping failed")
	}

	sort.SliceStable(swatches, func(i, j int) bool {
		return swatches[i].Population > swatches[j].Population
	})
	if b.maxSwatches > 0 && len(swatches) > b.maxSwatches {
		swatches = swatches[:b.maxSwatches]
	}
	return Palette[T]{swatches: swatches}, nil
}

// targetSegmentCount picks a segmentation granularity that scales with the
// masked pixel count without letting tiny images demand more segments than
// they have pixels.
func targetSegmentCount(activePixels int) int {
	target := activePixels / 100
	if target < 4 {
		target = 4
	}
	if target > activePixels {
		target = activePixels
	}
	return target
}

func (b *Builder[T]) segment(width, height int, features [][]T, mask []bool, active int) (*segmentation.LabelImage[T], error) {
	switch b.algorithm {
	case DBSCAN:
		seg := segmentation.DBSCANSegmenter[T]{
			TargetSegments: targetSegmentCount(active),
			MinPixels:      4,
			Epsilon:        T(0.1),
			Metric:         metric.Euclidean,
		}
		return seg.SegmentWithMask(width, height, features, mask)
	case DBSCANPlusPlus:
		seg := segmentation.DBSCANPPSegmenter[T]{
			MinPixels:   4,
			Epsilon:     T(0.1),
			Probability: T(0.1),
			Metric:      metric.Euclidean,
		}
		return seg.SegmentWithMask(width, height, features, mask)
	default:
		seg := segmentation.KMeansSegmenter[T]{
			TargetSegments: targetSegmentCount(active),
			MaxIter:        10,
			Tolerance:      T(0.001),
			Metric:         metric.Euclidean,
			// Random init: the initial centroids are distinct active
			// pixels drawn uniformly from b.rng.
			Init: clustering.Random,
			RNG:  b.rng,
		}
		return seg.SegmentWithMask(width, height, features, mask)
	}
}

// groupByColor folds a segmentation's segments into swatches: segments whose
// mean colors fall within colorGroupEpsilon of each other (by DBSCAN with
// min_points=1, so every segment joins some group) become a single swatch.
// A swatch's position is the denormalized mean position of the first member
// segment whose cumulative population exceeds half the group's total,
// falling back to the first non-empty member when no prefix clears that
// bar.
func groupByColor[T numeric.Float](labelImage *segmentation.LabelImage[T], width, height, activePixels int) ([]Swatch[T], error) {
	segs := labelImage.Segments()
	sort.Slice(segs, func(i, j int) bool { return segs[i].Label < segs[j].Label })
	if len(segs) == 0 {
		return nil, nil
	}

	centers := make([][]T, len(segs))
	for i, seg := range segs {
		lab := segmentation.DenormalizeColor(seg.Center())
		centers[i] = []T{lab.L, lab.A, lab.B}
	}

	groups, err := clustering.DBSCAN(centers, clustering.DBSCANParams[T]{
		MinPoints: 1,
		Epsilon:   T(colorGroupEpsilon),
		Metric:    metric.Euclidean,
	})
	if err != nil {
		return nil, err
	}

	swatches := make([]Swatch[T], 0, len(groups))
	for _, group := range groups {
		members := group.Members()
		total := 0
		for _, m := range members {
			total += segs[m].Len()
		}
		if total == 0 {
			continue
		}

		var chosen *segmentation.Segment[T]
		running := 0
		for _, m := range members {
			running += segs[m].Len()
			if 2*running > total {
				chosen = segs[m]
				break
			}
		}
		if chosen == nil {
			for _, m := range members {
				if segs[m].Len() > 0 {
					chosen = segs[m]
					break
				}
			}
		}
		if chosen == nil {
			continue
		}

		col, row := segmentation.DenormalizePosition(chosen.Center(), width, height)
		groupColor := segmentation.DenormalizeColor(group.Centroid())

		swatches = append(swatches, Swatch[T]{
			Color:      groupColor,
			Position:   [2]uint32{uint32(col), uint32(row)},
			Population: uint32(total),
			Ratio:      T(total) / T(activePixels),
		})
	}
	return swatches, nil
}

// Extract runs the extraction pipeline over img with every Builder default.
func Extract[T numeric.Float](img ImageData) (Palette[T], error) {
	return NewBuilder[T]().Build(img)
}
