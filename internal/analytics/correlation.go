package analytics

import (
	"math"
	"sort"

	"github.com/slaytrack/slaytrack/internal/domain"
)

// CorrelationMatrix computes the full pairwise Pearson matrix over the
// feature table of the given runs. The matrix is symmetric; a feature with
// zero variance correlates 0 with everything, itself included.
func CorrelationMatrix(runs []*domain.Run) *domain.CorrelationMatrix {
	table := FeatureTable(runs)
	n := len(featureNames)

	cols := make([][]float64, n)
	for j := 0; j < n; j++ {
		col := make([]float64, len(table))
		for i := range table {
			col[i] = table[i][j]
		}
		cols[j] = col
	}

	matrix := make([][]float64, n)
	for i := 0; i < n; i++ {
		matrix[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		matrix[i][i] = pearson(cols[i], cols[i])
		for j := i + 1; j < n; j++ {
			c := pearson(cols[i], cols[j])
			matrix[i][j] = c
			matrix[j][i] = c
		}
	}

	return &domain.CorrelationMatrix{
		Features: FeatureNames(),
		Matrix:   matrix,
	}
}

// TopCorrelations ranks, for each target feature, every other feature by its
// correlation with the target, descending. Positive holds the first ten,
// Negative the last ten of that same ordering.
func TopCorrelations(runs []*domain.Run) map[string]domain.TargetCorrelations {
	m := CorrelationMatrix(runs)

	index := make(map[string]int, len(m.Features))
	for i, name := range m.Features {
		index[name] = i
	}

	result := make(map[string]domain.TargetCorrelations, len(correlationTargets))
	for _, target := range correlationTargets {
		ti, ok := index[target]
		if !ok {
			continue
		}

		entries := make([]domain.CorrelationEntry, 0, len(m.Features)-1)
		for i, name := range m.Features {
			if i == ti {
				continue
			}
			entries = append(entries, domain.CorrelationEntry{
				Feature:     name,
				Correlation: m.Matrix[ti][i],
			})
		}
		sort.SliceStable(entries, func(a, b int) bool {
			return entries[a].Correlation > entries[b].Correlation
		})

		count := topCorrelationCount
		if count > len(entries) {
			count = len(entries)
		}
		result[target] = domain.TargetCorrelations{
			Positive: entries[:count],
			Negative: entries[len(entries)-count:],
		}
	}
	return result
}

// pearson computes the Pearson correlation coefficient of two equal-length
// series. Returns 0 when either series has zero variance.
func pearson(x, y []float64) float64 {
	n := float64(len(x))
	if n == 0 {
		return 0
	}

	var sumX, sumY float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
	}
	meanX, meanY := sumX/n, sumY/n

	var cov, varX, varY float64
	for i := range x {
		dx, dy := x[i]-meanX, y[i]-meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}

	denom := math.Sqrt(varX * varY)
	if denom == 0 {
		return 0
	}
	return cov / denom
}
