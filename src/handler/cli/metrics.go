package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"bigo-sim/src/controller"
	"bigo-sim/src/util"
)

func (h *Handler) metricsCmd() *cobra.Command {
	var (
		code     string
		filePath string
		sizes    []int
		format   string
	)

	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Sweep a snippet over several input sizes",
		Long:  "Re-runs the analysis once per input size and reports total operations, overall complexity, and estimated time per size",
		RunE: func(cmd *cobra.Command, args []string) error {
			analysisCtrl := controller.NewAnalysisController(h.cfg)
			metricsReport, err := analysisCtrl.Metrics(controller.MetricsRequest{
				Code:     code,
				FilePath: filePath,
				Sizes:    sizes,
			})
			if err != nil {
				util.Error("Metrics sweep failed: %v", err)
				return fmt.Errorf("metrics sweep failed: %w", err)
			}

			outputFormat := format
			if outputFormat == "" {
				outputFormat = "text"
			}

			reportCtrl := controller.NewReportController(h.cfg)
			output, err := reportCtrl.GenerateMetricsToString(metricsReport, outputFormat)
			if err != nil {
				return fmt.Errorf("generating metrics report: %w", err)
			}
			fmt.Println(output)

			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "Inline snippet text")
	cmd.Flags().StringVar(&filePath, "file", "", "Snippet file path (- for stdin)")
	cmd.Flags().IntSliceVarP(&sizes, "sizes", "s", nil, "Input sizes to sweep (default from config)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (json, markdown, text)")

	return cmd
}
