package controller

import (
	"os"
	"path/filepath"

	"bigo-sim/src/config"
	"bigo-sim/src/model"
	"bigo-sim/src/service/report"
	"bigo-sim/src/util"
)

// ReportController handles report generation and file output
type ReportController struct {
	cfg *config.Config
}

// NewReportController creates a new report controller
func NewReportController(cfg *config.Config) *ReportController {
	return &ReportController{cfg: cfg}
}

// GenerateReports writes the analysis report in all configured formats and
// returns the written file paths
func (c *ReportController) GenerateReports(analysisReport *model.AnalysisReport) ([]string, error) {
	util.Debug("Generating reports for %d formats: %v", len(c.cfg.Output.Formats), c.cfg.Output.Formats)
	generator := report.NewGenerator(c.cfg.Output)
	var outputPaths []string

	for _, format := range c.cfg.Output.Formats {
		util.Debug("Generating %s report", format)
		output, err := generator.Generate(analysisReport, format)
		if err != nil {
			util.Error("Failed to generate %s report: %v", format, err)
			return nil, err
		}

		outputPath := c.getOutputPath(format)

		if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
			util.Error("Failed to create output directory: %v", err)
			return nil, err
		}

		if err := os.WriteFile(outputPath, []byte(output), 0644); err != nil {
			util.Error("Failed to write report to %s: %v", outputPath, err)
			return nil, err
		}

		util.Info("Report written: %s", outputPath)
		outputPaths = append(outputPaths, outputPath)
	}

	return outputPaths, nil
}

// GenerateToString generates an analysis report to a string
func (c *ReportController) GenerateToString(analysisReport *model.AnalysisReport, format string) (string, error) {
	generator := report.NewGenerator(c.cfg.Output)
	return generator.Generate(analysisReport, format)
}

// GenerateMetricsToString generates a metrics report to a string
func (c *ReportController) GenerateMetricsToString(metricsReport *model.MetricsReport, format string) (string, error) {
	generator := report.NewGenerator(c.cfg.Output)
	return generator.GenerateMetrics(metricsReport, format)
}

func (c *ReportController) getOutputPath(format string) string {
	ext := format
	switch format {
	case "markdown":
		ext = "md"
	case "text":
		ext = "txt"
	}

	filename := c.cfg.Agent.Name + "-analysis." + ext
	return filepath.Join(c.cfg.Output.OutputDir, filename)
}
