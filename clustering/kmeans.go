package clustering

import (
	"github.com/t28hub/auto-palette-sub000/internal/rng"
	"github.com/t28hub/auto-palette-sub000/internal/xerrors"
	"github.com/t28hub/auto-palette-sub000/metric"
	"github.com/t28hub/auto-palette-sub000/neighbor"
	"github.com/t28hub/auto-palette-sub000/numeric"
)

// Initializer is the closed set of k-means centroid initialization
// strategies.
type Initializer int

const (
	Random Initializer = iota
	KMeansPlusPlus
)

// KMeansParams bundles the k-means parameters; the zero value is invalid.
type KMeansParams[T numeric.Float] struct {
	K           int
	MaxIter     int
	Tolerance   T
	Metric      metric.DistanceMetric
	Init        Initializer
	RNG         rng.Source
}

// KMeans clusters points into k groups, iterating assign-then-recompute
// until every centroid moves at most Tolerance or MaxIter is reached. When
// k >= len(points), each point becomes its own singleton cluster.
func KMeans[T numeric.Float](points [][]T, p KMeansParams[T]) ([]*Cluster[T], error) {
	if p.K < 1 {
		return nil, xerrors.New(xerrors.InvalidParameter, "invalid cluster count %d", p.K)
	}
	if p.MaxIter < 1 {
		return nil, xerrors.New(xerrors.InvalidParameter, "invalid iteration count %d", p.MaxIter)
	}
	if p.Tolerance <= 0 {
		return nil, xerrors.New(xerrors.InvalidParameter, "invalid tolerance %v", p.Tolerance)
	}
	if len(points) == 0 {
		return nil, xerrors.New(xerrors.Empty, "k-means received no points")
	}
	dim := len(points[0])

	if p.K >= len(points) {
		clusters := make([]*Cluster[T], len(points))
		for i, pt := range points {
			c := NewCluster[T](dim)
			c.Add(i, pt)
			clusters[i] = c
		}
		return clusters, nil
	}

	centroids, err := initCentroids(points, p)
	if err != nil {
		return nil, err
	}

	var clusters []*Cluster[T]
	for iter := 0; iter < p.MaxIter; iter++ {
		searcher := neighbor.NewLinear(centroids)
		clusters = make([]*Cluster[T], p.K)
		for i := range clusters {
			clusters[i] = NewCluster[T](dim)
		}
		for i, pt := range points {
			n, _ := searcher.SearchNearest(pt)
			clusters[n.Index].Add(i, pt)
		}

		maxShift := T(0)
		newCentroids := make([][]T, p.K)
		for i, c := range clusters {
			if c.Len() == 0 {
				newCentroids[i] = centroids[i]
				continue
			}
			newCentroids[i] = c.Centroid()
			shift := metric.Compute(metric.Euclidean, centroids[i], newCentroids[i])
			maxShift = numeric.Max(maxShift, shift)
		}
		centroids = newCentroids
		if maxShift <= p.Tolerance {
			break
		}
	}
	return clusters, nil
}

func initCentroids[T numeric.Float](points [][]T, p KMeansParams[T]) ([][]T, error) {
	switch p.Init {
	case KMeansPlusPlus:
		return initKMeansPlusPlus(points, p.K, p.RNG)
	default:
		return initRandom(points, p.K, p.RNG)
	}
}

func initRandom[T numeric.Float](points [][]T, k int, source rng.Source) ([][]T, error) {
	if source == nil {
		return nil, xerrors.New(xerrors.InvalidParameter, "k-means random init requires an RNG source")
	}
	chosen := make(map[int]bool, k)
	out := make([][]T, 0, k)
	for len(out) < k {
		idx := int(source.UintN(uint64(len(points))))
		if chosen[idx] {
			continue
		}
		chosen[idx] = true
		out = append(out, points[idx])
	}
	return out, nil
}

// initKMeansPlusPlus draws the first center uniformly, then samples each
// subsequent center proportional to its squared distance from the nearest
// already-selected center (a cumulative-weight draw).
func initKMeansPlusPlus[T numeric.Float](points [][]T, k int, source rng.Source) ([][]T, error) {
	if source == nil {
		return nil, xerrors.New(xerrors.InvalidParameter, "k-means++ init requires an RNG source")
	}
	n := len(points)
	first := int(source.UintN(uint64(n)))
	centers := [][]T{points[first]}

	dist := make([]T, n)
	for len(centers) < k {
		var total T
		for i, pt := range points {
			best := dist[i]
			if len(centers) == 1 {
				best = metric.Compute(metric.SquaredEuclidean, pt, centers[0])
			} else {
				d := metric.Compute(metric.SquaredEuclidean, pt, centers[len(centers)-1])
				best = numeric.Min(best, d)
			}
			dist[i] = best
			total += best
		}
		if total == 0 {
			return nil, xerrors.New(xerrors.InvalidParameter, "k-means++ init: all remaining points coincide with a selected center")
		}
		target := T(source.Float64()) * total
		var running T
		chosenIdx := n - 1
		for i, d := range dist {
			running += d
			if running >= target {
				chosenIdx = i
				break
			}
		}
		centers = append(centers, points[chosenIdx])
	}
	return centers, nil
}
