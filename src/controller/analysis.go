package controller

import (
	"fmt"
	"time"

	"bigo-sim/src/config"
	"bigo-sim/src/model"
	"bigo-sim/src/service/analyzer"
	"bigo-sim/src/service/snippet"
	"bigo-sim/src/util"
)

// AnalysisController orchestrates the snippet simulation process
type AnalysisController struct {
	cfg      *config.Config
	provider *snippet.Provider
	analyzer *analyzer.Service
}

// NewAnalysisController creates a new analysis controller
func NewAnalysisController(cfg *config.Config) *AnalysisController {
	return &AnalysisController{
		cfg:      cfg,
		provider: snippet.NewProvider(),
		analyzer: analyzer.NewService(),
	}
}

// AnalyzeRequest represents a request to analyze a snippet
type AnalyzeRequest struct {
	Code      string // inline snippet text (takes precedence)
	FilePath  string // file path, or "-" for stdin
	InputSize int    // 0 = use configured default
}

// MetricsRequest represents a request for a performance sweep
type MetricsRequest struct {
	Code     string
	FilePath string
	Sizes    []int // empty = use configured defaults
}

// Analyze resolves the snippet text and runs one simulation
func (c *AnalysisController) Analyze(req AnalyzeRequest) (*model.AnalysisReport, error) {
	text, err := c.provider.Load(req.Code, req.FilePath)
	if err != nil {
		return nil, err
	}

	size := req.InputSize
	if size == 0 {
		size = c.cfg.Analysis.DefaultInputSize
	}
	if err := c.validateSize(size); err != nil {
		return nil, err
	}

	util.Info("Analyzing snippet (%d bytes, n=%d)", len(text), size)
	result := c.analyzer.Analyze(text, size)
	util.Info("Analysis complete: %d lines, %d total ops, overall %s",
		len(result.Lines), result.TotalOps, result.Overall)

	return &model.AnalysisReport{
		Agent:       c.cfg.Agent.Name,
		GeneratedAt: time.Now().UTC(),
		Result:      result,
	}, nil
}

// validateSize enforces the input-size domain before the pure core runs.
// The upper bound keeps the quadratic cost formula inside int range.
func (c *AnalysisController) validateSize(size int) error {
	if size < 1 {
		return fmt.Errorf("input size must be >= 1, got %d", size)
	}
	if max := c.cfg.Analysis.MaxInputSize; max > 0 && size > max {
		return fmt.Errorf("input size must be <= %d, got %d", max, size)
	}
	return nil
}

// Metrics resolves the snippet text and sweeps it over the requested sizes
func (c *AnalysisController) Metrics(req MetricsRequest) (*model.MetricsReport, error) {
	text, err := c.provider.Load(req.Code, req.FilePath)
	if err != nil {
		return nil, err
	}

	sizes := req.Sizes
	if len(sizes) == 0 {
		sizes = c.cfg.Analysis.MetricSizes
	}
	for _, size := range sizes {
		if err := c.validateSize(size); err != nil {
			return nil, err
		}
	}

	util.Info("Sweeping snippet (%d bytes) over sizes %v", len(text), sizes)
	metrics := c.analyzer.PerformanceMetrics(text, sizes)

	return &model.MetricsReport{
		Agent:       c.cfg.Agent.Name,
		GeneratedAt: time.Now().UTC(),
		SourceText:  text,
		Metrics:     metrics,
	}, nil
}
