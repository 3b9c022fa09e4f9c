package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/legacyrand/internal/scenario"
)

// NewVerifyCommand creates the verify command.
func NewVerifyCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <suite.yaml> [suite.yaml...]",
		Short: "Run vector suites against the generator",
		Long: `Verify replays every case of each suite on a fresh generator and
compares the encoded draws against the pinned expectations. Any
mismatched draw fails the case; any failed case makes the command
exit 1. Unreadable or invalid suite files exit 2.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(rootOpts, cmd, args)
		},
	}
	return cmd
}

func runVerify(rootOpts *RootOptions, cmd *cobra.Command, paths []string) error {
	formatter := &OutputFormatter{
		Format:  rootOpts.Format,
		Writer:  cmd.OutOrStdout(),
		Verbose: rootOpts.Verbose,
	}

	var reports []*scenario.Report
	failed := 0

	for _, path := range paths {
		suite, err := scenario.LoadSuite(path)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("load suite %s", path), err)
		}

		report, err := scenario.RunSuite(suite, scenario.UUIDv7Generator{})
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("run suite %s", path), err)
		}

		slog.Debug("suite verified",
			"suite", report.Suite,
			"run_token", report.RunToken,
			"cases", len(report.Cases),
			"failed", report.Failed(),
		)

		reports = append(reports, report)
		failed += report.Failed()
	}

	if formatter.JSON() {
		if err := formatter.Success(reports); err != nil {
			return err
		}
	} else {
		for _, report := range reports {
			renderReport(formatter, report)
		}
	}

	if failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d case(s) failed", failed))
	}
	return nil
}

func renderReport(formatter *OutputFormatter, report *scenario.Report) {
	fmt.Fprintf(formatter.Writer, "suite %s (run %s)\n", report.Suite, report.RunToken)
	for _, c := range report.Cases {
		status := "PASS"
		if !c.Passed {
			status = "FAIL"
		}
		fmt.Fprintf(formatter.Writer, "  %s  %s (%d draws)\n", status, c.Name, c.Draws)
		for _, m := range c.Mismatches {
			fmt.Fprintf(formatter.Writer, "        draw %d: want %s, got %s\n", m.Index, m.Want, m.Got)
		}
	}
}
