package colour

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// DefaultMaxIterations bounds the worst-case fitting time when the
// clustering fails to converge exactly.
const DefaultMaxIterations = 100

// KMeans clusters colour samples using Lloyd's algorithm with k-means++
// seeding. All state is local to one Fit call; a KMeans value may be
// reused across fits.
type KMeans struct {
	rng *rand.Rand
}

// NewKMeans creates a clock-seeded engine.
func NewKMeans() *KMeans {
	return NewKMeansSeeded(time.Now().UnixNano())
}

// NewKMeansSeeded creates an engine with a fixed seed so that repeated
// fits over the same samples produce identical partitions.
func NewKMeansSeeded(seed int64) *KMeans {
	return &KMeans{rng: rand.New(rand.NewSource(seed))}
}

// Fit partitions samples into k clusters. It returns the final centroids
// in cluster-index order and the assignment of each sample index to its
// nearest centroid. Fitting stops when no assignment changes between
// iterations or after maxIterations, whichever comes first; hitting the
// cap is not an error.
func (e *KMeans) Fit(samples []Point, k, maxIterations int) ([]Point, []int, error) {
	if k < 1 {
		return nil, nil, fmt.Errorf("%w: cluster count must be at least 1, got %d", ErrInvalidParameter, k)
	}
	if k > len(samples) {
		return nil, nil, fmt.Errorf("%w: cluster count %d exceeds sample count %d", ErrInvalidParameter, k, len(samples))
	}
	if maxIterations < 1 {
		return nil, nil, fmt.Errorf("%w: iteration cap must be positive, got %d", ErrInvalidParameter, maxIterations)
	}
	for i, s := range samples {
		if !finite(s) {
			return nil, nil, fmt.Errorf("%w: sample %d is (%v, %v, %v)", ErrNumericFailure, i, s.R, s.G, s.B)
		}
	}

	centroids := e.seedCentroids(samples, k)

	assignments := make([]int, len(samples))
	for i := range assignments {
		assignments[i] = -1
	}

	for iter := 0; iter < maxIterations; iter++ {
		changed := 0
		for i, s := range samples {
			nearest := nearestCentroid(s, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}

		if changed == 0 {
			break
		}

		centroids = recalculateCentroids(samples, assignments, centroids)
	}

	return centroids, assignments, nil
}

func finite(p Point) bool {
	for _, v := range [...]float64{p.R, p.G, p.B} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// seedCentroids chooses k initial centroids with the k-means++ strategy:
// the first uniformly at random, each subsequent one with probability
// proportional to its squared distance from the nearest existing centroid.
func (e *KMeans) seedCentroids(samples []Point, k int) []Point {
	centroids := make([]Point, 0, k)
	centroids = append(centroids, samples[e.rng.Intn(len(samples))])

	distances := make([]float64, len(samples))
	for len(centroids) < k {
		total := 0.0
		for i, s := range samples {
			minDist := math.MaxFloat64
			for _, c := range centroids {
				if d := s.distanceSq(c); d < minDist {
					minDist = d
				}
			}
			distances[i] = minDist
			total += minDist
		}

		if total == 0 {
			// Fewer distinct colours than centroids wanted. Repeat an
			// existing centroid; the surplus clusters stay empty and
			// report zero prevalence.
			centroids = append(centroids, centroids[len(centroids)-1])
			continue
		}

		// Target in (0, total] so zero-distance samples (existing
		// centroids) are never selected.
		target := (1 - e.rng.Float64()) * total
		cumulative := 0.0
		next := -1
		for i, d := range distances {
			if d == 0 {
				continue
			}
			cumulative += d
			next = i
			if cumulative >= target {
				break
			}
		}
		centroids = append(centroids, samples[next])
	}

	return centroids
}

// nearestCentroid returns the index of the centroid closest to s. Strict
// less-than comparison in index order means exact ties resolve to the
// lowest cluster index, keeping assignments deterministic.
func nearestCentroid(s Point, centroids []Point) int {
	nearest := 0
	minDist := math.MaxFloat64
	for i, c := range centroids {
		if d := s.distanceSq(c); d < minDist {
			minDist = d
			nearest = i
		}
	}
	return nearest
}

// recalculateCentroids returns the component-wise mean of each cluster's
// samples. A cluster with no samples keeps its previous centroid rather
// than dividing by zero.
func recalculateCentroids(samples []Point, assignments []int, previous []Point) []Point {
	k := len(previous)
	sums := make([]Point, k)
	counts := make([]int, k)

	for i, s := range samples {
		c := assignments[i]
		sums[c].R += s.R
		sums[c].G += s.G
		sums[c].B += s.B
		counts[c]++
	}

	centroids := make([]Point, k)
	for i := range centroids {
		if counts[i] == 0 {
			centroids[i] = previous[i]
			continue
		}
		n := float64(counts[i])
		centroids[i] = Point{
			R: sums[i].R / n,
			G: sums[i].G / n,
			B: sums[i].B / n,
		}
	}

	return centroids
}
