package analyzer

import (
	"bigo-sim/src/model"
	"bigo-sim/src/service/classifier"
	"bigo-sim/src/util"
)

// Service runs the complexity simulation pipeline:
// text -> classified lines -> per-line costs -> total -> overall tag ->
// heatmap and playback frames. Every stage is pure and synchronous, so a
// single Service is safe for concurrent use.
type Service struct {
	classifier *classifier.Classifier
}

// NewService creates a new analyzer service
func NewService() *Service {
	return &Service{classifier: classifier.New()}
}

// Analyze simulates the snippet at the given input size. inputSize must be
// >= 1; smaller values are the caller's precondition to uphold. Identical
// arguments always yield identical results.
func (s *Service) Analyze(text string, inputSize int) *model.AnalysisResult {
	lines := s.classifier.Classify(text)
	util.Debug("Classified %d lines (input size %d)", len(lines), inputSize)

	costs := make([]model.LineCost, 0, len(lines))
	total := 0
	for _, ln := range lines {
		count := ln.Tag.Cost(inputSize)
		costs = append(costs, model.LineCost{LineNumber: ln.Number, Count: count})
		total += count
	}

	overall := overallTag(total, inputSize)
	util.Debug("Simulated %d total ops, overall complexity %s", total, overall)

	return &model.AnalysisResult{
		SourceText: text,
		InputSize:  inputSize,
		Lines:      lines,
		Costs:      costs,
		TotalOps:   total,
		Overall:    overall,
		Heatmap:    buildHeatmap(costs, total),
		Frames:     buildFrames(lines, costs),
	}
}

// overallTag re-derives a complexity verdict from the aggregate operation
// count via a threshold ladder. It is deliberately independent of the
// per-line tags: a snippet of a single linear line can land in a smaller
// bucket at small n. First satisfied branch wins.
func overallTag(ops, n int) model.ComplexityTag {
	logN := model.Log2Floor(n)
	switch {
	case ops <= 10:
		return model.TagConstant
	case ops <= 2*logN:
		return model.TagLogarithmic
	case ops <= 2*n:
		return model.TagLinear
	case ops <= 2*n*logN:
		return model.TagLinearithmic
	case ops <= 2*n*n:
		return model.TagQuadratic
	default:
		return model.TagExponential
	}
}

// buildHeatmap projects each line's cost onto its share of the total.
// Entries come out sorted ascending by line number because costs are
// produced in emission order.
func buildHeatmap(costs []model.LineCost, total int) []model.HeatmapEntry {
	heatmap := make([]model.HeatmapEntry, 0, len(costs))
	for _, cost := range costs {
		intensity := 0.0
		if total > 0 {
			intensity = float64(cost.Count) / float64(total)
		}
		heatmap = append(heatmap, model.HeatmapEntry{
			LineNumber: cost.LineNumber,
			Intensity:  intensity,
		})
	}
	return heatmap
}

// buildFrames produces one playback frame per classified line in processing
// order, spaced model.FrameInterval time-units apart.
func buildFrames(lines []model.CodeLine, costs []model.LineCost) []model.AnimationFrame {
	frames := make([]model.AnimationFrame, 0, len(lines))
	for i, ln := range lines {
		frames = append(frames, model.AnimationFrame{
			LineNumber: ln.Number,
			Count:      costs[i].Count,
			Tag:        ln.Tag,
			Timestamp:  float64(i) * model.FrameInterval,
		})
	}
	return frames
}
