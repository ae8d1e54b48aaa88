package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"plagscan/internal/detection"
	"plagscan/internal/ingest"
	"plagscan/internal/logging"
	"plagscan/internal/preflight"
	"plagscan/internal/report"
)

type analyzeFlags struct {
	inputPath string
	threshold float64
	minLength int
	output    string
	json      bool
}

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var flags analyzeFlags

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a folder of .txt files or a CSV table for similar documents",
		Long: "Analyze documents for potential plagiarism using TF-IDF and cosine similarity.\n\n" +
			"--input-path accepts a directory of .txt files or a .csv file with 'id' and 'text' columns.\n" +
			"Without --output a short summary is printed; with it a .csv, .json or .db report is written.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			opts := detection.OptionsFromConfig(cfg)
			if cmd.Flags().Changed("threshold") {
				opts.Threshold = flags.threshold
			}
			if cmd.Flags().Changed("min-length") {
				opts.MinDocLength = flags.minLength
			}
			if err := opts.Validate(); err != nil {
				return err
			}

			inputPath := strings.TrimSpace(flags.inputPath)
			outputPath := strings.TrimSpace(flags.output)
			if outputPath != "" {
				if _, err := report.FormatFor(outputPath); err != nil {
					return err
				}
			}
			if failed, ok := preflight.FirstFailure(preflight.RunAll(cfg, inputPath, outputPath)); ok {
				return fmt.Errorf("%s check failed: %s", strings.ToLower(failed.Name), failed.Detail)
			}

			docs, err := ingest.NewOsLoader().Load(inputPath)
			if err != nil {
				return err
			}
			logger.Debug("documents loaded", logging.String("input", inputPath), logging.Int("documents", len(docs)))

			result, err := detection.NewAnalyzer(opts, logger).Run(cmd.Context(), docs)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if outputPath != "" {
				if err := report.Save(cmd.Context(), result.Pairs, outputPath); err != nil {
					return fmt.Errorf("save report: %w", err)
				}
				logger.Info("report saved", logging.String(logging.FieldRunID, result.RunID), logging.String("path", outputPath))
				if flags.json {
					return writeJSON(cmd, result)
				}
				fmt.Fprintf(out, "Saved report with %d suspicious pairs to: %s\n", len(result.Pairs), outputPath)
				return nil
			}
			if flags.json {
				return writeJSON(cmd, result)
			}
			printSummary(out, result, cfg.Report.SummaryLimit, cfg.Report.Precision, shouldColorize(out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.inputPath, "input-path", "i", "", "Directory of .txt files or CSV file with 'id' and 'text' columns")
	cmd.Flags().Float64VarP(&flags.threshold, "threshold", "t", detection.DefaultThreshold, "Similarity threshold in [0, 1] at or above which pairs are flagged")
	cmd.Flags().IntVar(&flags.minLength, "min-length", detection.DefaultMinDocLength, "Minimum document length in characters")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Optional report path (.csv, .json or .db)")
	cmd.Flags().BoolVar(&flags.json, "json", false, "Write the analysis result as JSON")
	_ = cmd.MarkFlagRequired("input-path")

	return cmd
}

func printSummary(out io.Writer, result *detection.Result, limit, precision int, colorize bool) {
	fmt.Fprintf(out, "Found %d suspicious pairs with threshold >= %.2f\n", len(result.Pairs), result.Threshold)
	if result.Skipped > 0 {
		fmt.Fprintf(out, "Skipped %d of %d documents shorter than the minimum length\n", result.Skipped, result.Documents)
	}
	if len(result.Pairs) == 0 {
		return
	}

	shown := result.Pairs
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}
	rows := make([][]string, 0, len(shown))
	for _, p := range shown {
		rows = append(rows, []string{p.DocIDA, p.DocIDB, fmt.Sprintf("%.*f", precision, p.Similarity)})
	}
	for _, line := range renderSectionHeader("Suspicious pairs", colorize) {
		fmt.Fprintln(out, line)
	}
	var caption string
	if remaining := len(result.Pairs) - len(shown); remaining > 0 {
		caption = fmt.Sprintf("... %d more (use --output to export all pairs)", remaining)
	}
	headers := []string{"Document A", "Document B", "Similarity"}
	fmt.Fprintln(out, renderTable(headers, rows, []columnAlignment{alignLeft, alignLeft, alignRight}, caption))
}
