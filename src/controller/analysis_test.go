package controller

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bigo-sim/src/config"
	"bigo-sim/src/model"
)

func TestAnalyzeUsesConfiguredDefaultSize(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Analysis.DefaultInputSize = 100

	ctrl := NewAnalysisController(cfg)
	analysisReport, err := ctrl.Analyze(AnalyzeRequest{Code: "for i in 0..<n {"})
	require.NoError(t, err)

	assert.Equal(t, 100, analysisReport.Result.InputSize)
	assert.Equal(t, 100, analysisReport.Result.TotalOps)
	assert.Equal(t, model.TagLinear, analysisReport.Result.Overall)
	assert.Equal(t, cfg.Agent.Name, analysisReport.Agent)
}

func TestAnalyzeRejectsInvalidSize(t *testing.T) {
	ctrl := NewAnalysisController(config.DefaultConfig())

	_, err := ctrl.Analyze(AnalyzeRequest{Code: "let x = 1", InputSize: -5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input size must be >= 1")
}

func TestAnalyzeRejectsOversizedInput(t *testing.T) {
	ctrl := NewAnalysisController(config.DefaultConfig())

	// a quadratic line at this size would overflow the op counter
	_, err := ctrl.Analyze(AnalyzeRequest{Code: "for i in repeat(n*n) {", InputSize: 4_000_000_000})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input size must be <= 1000000")
}

func TestAnalyzeAcceptsMaxInputSizeBoundary(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Analysis.MaxInputSize = 500

	ctrl := NewAnalysisController(cfg)
	analysisReport, err := ctrl.Analyze(AnalyzeRequest{Code: "for i in repeat(n*n) {", InputSize: 500})
	require.NoError(t, err)

	assert.Equal(t, 250000, analysisReport.Result.TotalOps)
	assert.GreaterOrEqual(t, analysisReport.Result.Costs[0].Count, 0)
}

func TestAnalyzeRequiresSnippet(t *testing.T) {
	ctrl := NewAnalysisController(config.DefaultConfig())

	_, err := ctrl.Analyze(AnalyzeRequest{})
	assert.Error(t, err)
}

func TestMetricsUsesConfiguredSizes(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Analysis.MetricSizes = []int{2, 20}

	ctrl := NewAnalysisController(cfg)
	metricsReport, err := ctrl.Metrics(MetricsRequest{Code: "while i < n {"})
	require.NoError(t, err)

	require.Len(t, metricsReport.Metrics, 2)
	assert.Equal(t, 2, metricsReport.Metrics[0].InputSize)
	assert.Equal(t, 20, metricsReport.Metrics[1].InputSize)
}

func TestMetricsRejectsInvalidSize(t *testing.T) {
	ctrl := NewAnalysisController(config.DefaultConfig())

	_, err := ctrl.Metrics(MetricsRequest{Code: "let x = 1", Sizes: []int{10, 0}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input size must be >= 1")
}

func TestMetricsRejectsOversizedInput(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Analysis.MaxInputSize = 500

	ctrl := NewAnalysisController(cfg)
	_, err := ctrl.Metrics(MetricsRequest{Code: "while i < n {", Sizes: []int{100, 501}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input size must be <= 500")
}

func TestGenerateReportsWritesConfiguredFormats(t *testing.T) {
	dir := t.TempDir()

	cfg := config.DefaultConfig()
	cfg.Output.OutputDir = dir
	cfg.Output.Formats = []string{"json", "markdown"}

	analysisCtrl := NewAnalysisController(cfg)
	analysisReport, err := analysisCtrl.Analyze(AnalyzeRequest{Code: "for i in 0..<n {", InputSize: 10})
	require.NoError(t, err)

	reportCtrl := NewReportController(cfg)
	paths, err := reportCtrl.GenerateReports(analysisReport)
	require.NoError(t, err)

	require.Len(t, paths, 2)
	assert.Equal(t, filepath.Join(dir, "bigo-sim-analysis.json"), paths[0])
	assert.Equal(t, filepath.Join(dir, "bigo-sim-analysis.md"), paths[1])

	for _, path := range paths {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotEmpty(t, data)
	}
}

func TestGenerateToStringUnsupportedFormat(t *testing.T) {
	cfg := config.DefaultConfig()

	analysisCtrl := NewAnalysisController(cfg)
	analysisReport, err := analysisCtrl.Analyze(AnalyzeRequest{Code: "let x = 1", InputSize: 5})
	require.NoError(t, err)

	_, err = NewReportController(cfg).GenerateToString(analysisReport, "pdf")
	assert.Error(t, err)
}
