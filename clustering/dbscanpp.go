package clustering

import (
	"github.com/t28hub/auto-palette-sub000/internal/xerrors"
	"github.com/t28hub/auto-palette-sub000/metric"
	"github.com/t28hub/auto-palette-sub000/neighbor"
	"github.com/t28hub/auto-palette-sub000/numeric"
)

// DBSCANPPParams bundles the DBSCAN++ parameters.
type DBSCANPPParams[T numeric.Float] struct {
	MinPoints   int
	Epsilon     T
	Probability T
	Metric      metric.DistanceMetric
}

// DBSCANPP is DBSCAN's core-sampling variant: it identifies a subset of
// "core" candidates by striding the point set, expands clusters only over
// that subset, then assigns every input point to the label of its nearest
// core (if within epsilon).
func DBSCANPP[T numeric.Float](points [][]T, p DBSCANPPParams[T]) ([]*Cluster[T], error) {
	if p.MinPoints < 1 {
		return nil, xerrors.New(xerrors.InvalidParameter, "invalid min_points %d", p.MinPoints)
	}
	if p.Epsilon <= 0 || p.Epsilon != p.Epsilon {
		return nil, xerrors.New(xerrors.InvalidParameter, "invalid epsilon %v", p.Epsilon)
	}
	if p.Probability <= 0 || p.Probability > 1 {
		return nil, xerrors.New(xerrors.InvalidParameter, "invalid probability %v", p.Probability)
	}
	if len(points) == 0 {
		return nil, xerrors.New(xerrors.Empty, "dbscan++ received no points")
	}
	dim := len(points[0])

	radius := p.Epsilon
	if p.Metric == metric.SquaredEuclidean {
		radius = numeric.OpsFor[T]().Sqrt(p.Epsilon)
	}

	tree := neighbor.NewKDTree(points)

	step := int(T(1)/p.Probability + 0.5)
	if step < 1 {
		step = 1
	}

	var coreIdx []int
	for i := 0; i < len(points); i += step {
		if len(tree.SearchWithinRadius(points[i], radius)) >= p.MinPoints {
			coreIdx = append(coreIdx, i)
		}
	}

	coreClusters, coreLabels := expandCore(points, coreIdx, tree, radius, p.MinPoints, dim)

	// Assign every input point to the label of its nearest core within
	// epsilon. coreLabels maps a position in coreIdx to a cluster index
	// (-1 if that core never joined a cluster).
	corePoints := make([][]T, len(coreIdx))
	for i, idx := range coreIdx {
		corePoints[i] = points[idx]
	}
	coreTree := neighbor.NewLinear(corePoints)

	for i, pt := range points {
		n, ok := coreTree.SearchNearest(pt)
		if !ok || n.Distance > radius {
			continue
		}
		clusterIdx := coreLabels[n.Index]
		if clusterIdx < 0 {
			continue
		}
		if !containsMember(coreClusters[clusterIdx], i) {
			coreClusters[clusterIdx].Add(i, pt)
		}
	}

	var out []*Cluster[T]
	for _, c := range coreClusters {
		if c != nil {
			out = append(out, c)
		}
	}
	return out, nil
}

// expandCore runs DBSCAN-style label expansion over just the core subset
// (indexed by coreIdx into points), returning the resulting clusters and a
// per-core-position cluster index (-1 when the core never joined one).
func expandCore[T numeric.Float](points [][]T, coreIdx []int, tree *neighbor.KDTree[T], radius T, minPoints, dim int) ([]*Cluster[T], []int) {
	coreLabels := make([]int, len(coreIdx))
	for i := range coreLabels {
		coreLabels[i] = labelUnclassified
	}
	pos := make(map[int]int, len(coreIdx))
	for i, idx := range coreIdx {
		pos[idx] = i
	}

	var clusters []*Cluster[T]
	clusterAssign := make([]int, len(coreIdx))
	for i := range clusterAssign {
		clusterAssign[i] = -1
	}

	for i, idx := range coreIdx {
		if coreLabels[i] != labelUnclassified {
			continue
		}
		neighbors := regionQuery(tree, points, idx, radius)
		coreNeighbors := filterCore(neighbors, pos)
		if len(coreNeighbors) < minPoints {
			coreLabels[i] = labelOutlier
			continue
		}
		cluster := NewCluster[T](dim)
		clusterIdx := len(clusters)
		coreLabels[i] = labelMarked
		clusterAssign[i] = clusterIdx
		cluster.Add(idx, points[idx])

		queue := append([]int{}, coreNeighbors...)
		for len(queue) > 0 {
			j := queue[0]
			queue = queue[1:]
			switch coreLabels[j] {
			case labelOutlier:
				coreLabels[j] = labelMarked
				clusterAssign[j] = clusterIdx
				cluster.Add(coreIdx[j], points[coreIdx[j]])
			case labelUnclassified:
				coreLabels[j] = labelMarked
				clusterAssign[j] = clusterIdx
				cluster.Add(coreIdx[j], points[coreIdx[j]])
				jn := filterCore(regionQuery(tree, points, coreIdx[j], radius), pos)
				if len(jn) >= minPoints {
					queue = append(queue, jn...)
				}
			}
		}
		clusters = append(clusters, cluster)
	}
	return clusters, clusterAssign
}

// filterCore maps full-point-set neighbor indices to core-subset positions,
// dropping any neighbor that is not itself a core point.
func filterCore(neighbors []int, pos map[int]int) []int {
	out := make([]int, 0, len(neighbors))
	for _, n := range neighbors {
		if p, ok := pos[n]; ok {
			out = append(out, p)
		}
	}
	return out
}

func containsMember[T numeric.Float](c *Cluster[T], idx int) bool {
	for _, m := range c.members {
		if m == idx {
			return true
		}
	}
	return false
}
