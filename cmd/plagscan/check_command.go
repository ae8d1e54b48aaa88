package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"plagscan/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var inputPath string
	var outputPath string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run preflight checks for an input path and optional report path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			results := preflight.RunAll(cfg, strings.TrimSpace(inputPath), strings.TrimSpace(outputPath))

			for _, line := range renderSectionHeader("Preflight", colorize) {
				fmt.Fprintln(out, line)
			}
			for _, r := range results {
				kind := statusOK
				if !r.Passed {
					kind = statusError
				}
				fmt.Fprintln(out, renderStatusLine(r.Name, kind, r.Detail, colorize))
			}
			if _, failed := preflight.FirstFailure(results); failed {
				return errors.New("preflight checks failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input-path", "i", "", "Directory of .txt files or CSV file to check")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Report path to check for writability")
	_ = cmd.MarkFlagRequired("input-path")
	return cmd
}
