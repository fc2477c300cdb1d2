package analysis

import (
	"math"
	"math/rand"
)

const kmeansMaxIterations = 100

// kMeans partitions vectors into up to k clusters with Lloyd's algorithm.
// Initial centroids are distinct input points picked by a seeded shuffle,
// so the result is deterministic for a given dataset. When fewer than k
// points exist the surplus clusters stay empty.
func kMeans(vectors [][]float64, k int, seed int64) []int {
	n := len(vectors)
	if n == 0 {
		return nil
	}

	rnd := rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic clustering, not crypto
	perm := rnd.Perm(n)

	centroids := make([][]float64, k)
	for c := 0; c < k; c++ {
		// reuse points when there are fewer points than clusters, the
		// duplicates never win a tie and stay empty
		src := vectors[perm[c%n]]
		centroids[c] = append([]float64(nil), src...)
	}

	assignments := make([]int, n)
	for iter := 0; iter < kmeansMaxIterations; iter++ {
		changed := false
		for i, v := range vectors {
			best := 0
			bestDist := math.MaxFloat64
			for c, centroid := range centroids {
				if d := sqDist(v, centroid); d < bestDist {
					best, bestDist = c, d
				}
			}
			if assignments[i] != best {
				assignments[i] = best
				changed = true
			}
		}
		if !changed && iter > 0 {
			break
		}

		// recompute centroids, empty clusters keep their previous position
		for c := range centroids {
			var members int
			sum := make([]float64, len(centroids[c]))
			for i, v := range vectors {
				if assignments[i] != c {
					continue
				}
				members++
				for j := range v {
					sum[j] += v[j]
				}
			}
			if members == 0 {
				continue
			}
			for j := range sum {
				centroids[c][j] = sum[j] / float64(members)
			}
		}
	}

	return assignments
}

func sqDist(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
