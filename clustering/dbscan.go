package clustering

import (
	"github.com/t28hub/auto-palette-sub000/internal/xerrors"
	"github.com/t28hub/auto-palette-sub000/metric"
	"github.com/t28hub/auto-palette-sub000/neighbor"
	"github.com/t28hub/auto-palette-sub000/numeric"
)

// label sentinels for DBSCAN's internal per-point bookkeeping; callers only
// see the resulting clusters, never these labels.
const (
	labelOutlier      = -1
	labelMarked       = -2
	labelUnclassified = -3
)

// DBSCANParams bundles the DBSCAN parameters.
type DBSCANParams[T numeric.Float] struct {
	MinPoints int
	Epsilon   T
	Metric    metric.DistanceMetric
}

// DBSCAN clusters points by density, using a k-d tree over the whole point
// set. Returns the clusters found (each with >= MinPoints members); points
// that never join a cluster are simply absent from the result.
func DBSCAN[T numeric.Float](points [][]T, p DBSCANParams[T]) ([]*Cluster[T], error) {
	if p.MinPoints < 1 {
		return nil, xerrors.New(xerrors.InvalidParameter, "invalid min_points %d", p.MinPoints)
	}
	if p.Epsilon <= 0 || p.Epsilon != p.Epsilon {
		return nil, xerrors.New(xerrors.InvalidParameter, "invalid epsilon %v", p.Epsilon)
	}
	if len(points) == 0 {
		return nil, xerrors.New(xerrors.Empty, "dbscan received no points")
	}
	dim := len(points[0])
	tree := neighbor.NewKDTree(points)

	// The k-d tree's radius search is always plain Euclidean; when the
	// caller asked for SquaredEuclidean, epsilon is a squared distance, so
	// its square root is the matching Euclidean search radius.
	radius := p.Epsilon
	if p.Metric == metric.SquaredEuclidean {
		radius = numeric.OpsFor[T]().Sqrt(p.Epsilon)
	}

	labels := make([]int, len(points))
	for i := range labels {
		labels[i] = labelUnclassified
	}

	var clusters []*Cluster[T]
	for i := range points {
		if labels[i] != labelUnclassified {
			continue
		}
		neighbors := regionQuery(tree, points, i, radius)
		if len(neighbors) < p.MinPoints {
			labels[i] = labelOutlier
			continue
		}
		cluster := NewCluster[T](dim)
		labels[i] = labelMarked
		cluster.Add(i, points[i])

		queue := append([]int{}, neighbors...)
		for len(queue) > 0 {
			j := queue[0]
			queue = queue[1:]
			switch labels[j] {
			case labelOutlier:
				labels[j] = labelMarked
				cluster.Add(j, points[j])
			case labelUnclassified:
				labels[j] = labelMarked
				cluster.Add(j, points[j])
				jn := regionQuery(tree, points, j, radius)
				if len(jn) >= p.MinPoints {
					queue = append(queue, jn...)
				}
			}
		}
		if cluster.Len() >= p.MinPoints {
			clusters = append(clusters, cluster)
		}
	}
	return clusters, nil
}

func regionQuery[T numeric.Float](tree *neighbor.KDTree[T], points [][]T, idx int, eps T) []int {
	results := tree.SearchWithinRadius(points[idx], eps)
	out := make([]int, 0, len(results))
	for _, r := range results {
		out = append(out, r.Index)
	}
	return out
}
