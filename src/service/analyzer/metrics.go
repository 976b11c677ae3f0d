package analyzer

import (
	"bigo-sim/src/model"
	"bigo-sim/src/util"
)

// SecondsPerOp is the fixed per-operation constant used to derive the
// estimated time shown alongside metric sweeps. Display-only; not a
// benchmark.
const SecondsPerOp = 1e-6

// PerformanceMetrics re-runs the analysis once per requested input size and
// summarizes each run. Metric order follows the order of sizes.
func (s *Service) PerformanceMetrics(text string, sizes []int) []model.PerformanceMetric {
	util.Debug("Sweeping %d input sizes", len(sizes))

	metrics := make([]model.PerformanceMetric, 0, len(sizes))
	for _, size := range sizes {
		result := s.Analyze(text, size)
		metrics = append(metrics, model.PerformanceMetric{
			InputSize:     size,
			TotalOps:      result.TotalOps,
			Overall:       result.Overall,
			EstimatedTime: float64(result.TotalOps) * SecondsPerOp,
		})
	}

	return metrics
}
