package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"bigo-sim/src/config"
	"bigo-sim/src/model"
	"bigo-sim/src/util"
)

// Generator renders analysis results and metric sweeps in various formats
type Generator struct {
	cfg     config.OutputConfig
	printer *message.Printer
}

// NewGenerator creates a new report generator
func NewGenerator(cfg config.OutputConfig) *Generator {
	return &Generator{
		cfg:     cfg,
		printer: message.NewPrinter(language.English),
	}
}

// Generate renders an analysis report in the specified format
func (g *Generator) Generate(report *model.AnalysisReport, format string) (string, error) {
	util.Debug("Generating report in %s format (%d lines)", format, len(report.Result.Lines))
	switch format {
	case "json":
		return g.generateJSON(report)
	case "markdown", "md":
		return g.generateMarkdown(report)
	case "text":
		return g.generateText(report)
	default:
		util.Warn("Unsupported report format requested: %s", format)
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// GenerateMetrics renders a performance sweep in the specified format
func (g *Generator) GenerateMetrics(report *model.MetricsReport, format string) (string, error) {
	util.Debug("Generating metrics report in %s format (%d sizes)", format, len(report.Metrics))
	switch format {
	case "json":
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data), nil
	case "markdown", "md":
		return g.metricsMarkdown(report), nil
	case "text":
		return g.metricsText(report), nil
	default:
		util.Warn("Unsupported report format requested: %s", format)
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func (g *Generator) generateJSON(report *model.AnalysisReport) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (g *Generator) generateMarkdown(report *model.AnalysisReport) (string, error) {
	res := report.Result
	var sb strings.Builder

	sb.WriteString("# Complexity Analysis Report\n\n")
	sb.WriteString(fmt.Sprintf("**Generated:** %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05 UTC")))
	sb.WriteString(fmt.Sprintf("**Input size (n):** %d\n", res.InputSize))
	sb.WriteString(g.printer.Sprintf("**Total operations:** %d\n", res.TotalOps))
	sb.WriteString(fmt.Sprintf("**Overall complexity:** %s (%s)\n\n", res.Overall.Display(), res.Overall))

	sb.WriteString("## Classified Lines\n\n")
	if len(res.Lines) == 0 {
		sb.WriteString("No classifiable lines found.\n\n")
	} else {
		heat := heatByLine(res.Heatmap)

		if g.cfg.IncludeHeatmap {
			sb.WriteString("| # | Code | Complexity | Operations | Heat |\n")
			sb.WriteString("|---|------|------------|------------|------|\n")
		} else {
			sb.WriteString("| # | Code | Complexity | Operations |\n")
			sb.WriteString("|---|------|------------|------------|\n")
		}

		for i, ln := range res.Lines {
			cost := res.Costs[i]
			if g.cfg.IncludeHeatmap {
				sb.WriteString(g.printer.Sprintf("| %d | `%s` | %s | %d | %.1f%% |\n",
					ln.Number, ln.Text, ln.Tag.Display(), cost.Count, heat[ln.Number]*100))
			} else {
				sb.WriteString(g.printer.Sprintf("| %d | `%s` | %s | %d |\n",
					ln.Number, ln.Text, ln.Tag.Display(), cost.Count))
			}
		}
		sb.WriteString("\n")
	}

	if g.cfg.IncludeFrames && len(res.Frames) > 0 {
		sb.WriteString("## Playback Frames\n\n")
		sb.WriteString("| Frame | Line | Operations | At |\n")
		sb.WriteString("|-------|------|------------|----|\n")
		for i, frame := range res.Frames {
			sb.WriteString(g.printer.Sprintf("| %d | %d | %d | %.1f |\n",
				i+1, frame.LineNumber, frame.Count, frame.Timestamp))
		}
		sb.WriteString("\n")
	}

	if g.cfg.IncludeDescriptions {
		sb.WriteString("## Complexity Classes\n\n")
		for _, tag := range tagsInResult(res) {
			sb.WriteString(fmt.Sprintf("- **%s** (%s): %s\n", tag.Display(), tag, tag.Description()))
		}
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

func (g *Generator) generateText(report *model.AnalysisReport) (string, error) {
	res := report.Result
	var sb strings.Builder

	sb.WriteString(g.printer.Sprintf("Input size:  %d\n", res.InputSize))
	sb.WriteString(g.printer.Sprintf("Total ops:   %d\n", res.TotalOps))
	sb.WriteString(fmt.Sprintf("Overall:     %s (%s)\n", res.Overall.Display(), res.Overall))

	if len(res.Lines) > 0 {
		sb.WriteString("\nLines:\n")
		heat := heatByLine(res.Heatmap)
		for i, ln := range res.Lines {
			cost := res.Costs[i]
			if g.cfg.IncludeHeatmap {
				sb.WriteString(g.printer.Sprintf("  %2d. [%-10s] %6d ops  %5.1f%%  %s\n",
					ln.Number, ln.Tag.Display(), cost.Count, heat[ln.Number]*100, ln.Text))
			} else {
				sb.WriteString(g.printer.Sprintf("  %2d. [%-10s] %6d ops  %s\n",
					ln.Number, ln.Tag.Display(), cost.Count, ln.Text))
			}
		}
	}

	return sb.String(), nil
}

func (g *Generator) metricsMarkdown(report *model.MetricsReport) string {
	var sb strings.Builder

	sb.WriteString("# Performance Metrics\n\n")
	sb.WriteString(fmt.Sprintf("**Generated:** %s\n\n", report.GeneratedAt.Format("2006-01-02 15:04:05 UTC")))
	sb.WriteString("| Input size | Operations | Overall | Est. time (s) |\n")
	sb.WriteString("|------------|------------|---------|---------------|\n")
	for _, m := range report.Metrics {
		sb.WriteString(g.printer.Sprintf("| %d | %d | %s | %.6f |\n",
			m.InputSize, m.TotalOps, m.Overall.Display(), m.EstimatedTime))
	}
	sb.WriteString("\n")

	return sb.String()
}

func (g *Generator) metricsText(report *model.MetricsReport) string {
	var sb strings.Builder

	sb.WriteString("Input size    Operations    Overall       Est. time (s)\n")
	for _, m := range report.Metrics {
		sb.WriteString(g.printer.Sprintf("%-13d %-13d %-13s %.6f\n",
			m.InputSize, m.TotalOps, m.Overall.Display(), m.EstimatedTime))
	}

	return sb.String()
}

// heatByLine indexes heatmap intensities by line number for rendering
func heatByLine(entries []model.HeatmapEntry) map[int]float64 {
	heat := make(map[int]float64, len(entries))
	for _, e := range entries {
		heat[e.LineNumber] = e.Intensity
	}
	return heat
}

// tagsInResult returns the distinct tags present in the result, in growth
// order, with the overall tag always included.
func tagsInResult(res *model.AnalysisResult) []model.ComplexityTag {
	present := map[model.ComplexityTag]bool{res.Overall: true}
	for _, ln := range res.Lines {
		present[ln.Tag] = true
	}

	var tags []model.ComplexityTag
	for _, tag := range model.AllTags() {
		if present[tag] {
			tags = append(tags, tag)
		}
	}
	return tags
}
