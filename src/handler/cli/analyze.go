package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bigo-sim/src/controller"
	"bigo-sim/src/util"
)

func (h *Handler) analyzeCmd() *cobra.Command {
	var (
		code      string
		filePath  string
		inputSize int
		outputDir string
		format    string
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a pseudo-code snippet",
		Long:  "Classifies each snippet line into a complexity class and simulates operation counts for the given input size",
		RunE: func(cmd *cobra.Command, args []string) error {
			analysisCtrl := controller.NewAnalysisController(h.cfg)
			analysisReport, err := analysisCtrl.Analyze(controller.AnalyzeRequest{
				Code:      code,
				FilePath:  filePath,
				InputSize: inputSize,
			})
			if err != nil {
				util.Error("Analysis failed: %v", err)
				return fmt.Errorf("analysis failed: %w", err)
			}

			reportCtrl := controller.NewReportController(h.cfg)

			if outputDir != "" {
				h.cfg.Output.OutputDir = outputDir
				if format != "" {
					h.cfg.Output.Formats = []string{format}
				}

				paths, err := reportCtrl.GenerateReports(analysisReport)
				if err != nil {
					return fmt.Errorf("generating reports: %w", err)
				}
				for _, path := range paths {
					fmt.Printf("Report written to %s\n", path)
				}
			} else {
				outputFormat := format
				if outputFormat == "" {
					outputFormat = "json"
				}

				output, err := reportCtrl.GenerateToString(analysisReport, outputFormat)
				if err != nil {
					return fmt.Errorf("generating report: %w", err)
				}
				fmt.Println(output)
			}

			// Print summary to stderr
			res := analysisReport.Result
			fmt.Fprintf(os.Stderr, "\nAnalysis complete:\n")
			fmt.Fprintf(os.Stderr, "  Classified lines: %d\n", len(res.Lines))
			fmt.Fprintf(os.Stderr, "  Total operations: %d\n", res.TotalOps)
			fmt.Fprintf(os.Stderr, "  Overall complexity: %s\n", res.Overall.Display())

			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "Inline snippet text")
	cmd.Flags().StringVar(&filePath, "file", "", "Snippet file path (- for stdin)")
	cmd.Flags().IntVarP(&inputSize, "size", "n", 0, "Input size n (default from config)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory path")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (json, markdown, text)")

	return cmd
}
