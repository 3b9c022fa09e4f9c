package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/legacyrand/internal/scenario"
	"github.com/roach88/legacyrand/internal/vectorstore"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	DB   string
	Name string
}

// RunCheck is the outcome of re-deriving one archived run.
type RunCheck struct {
	Name       string              `json:"name"`
	Passed     bool                `json:"passed"`
	Draws      int                 `json:"draws"`
	Mismatches []scenario.Mismatch `json:"mismatches,omitempty"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Re-derive archived runs and report drift",
		Long: `Check replays every archived run (or a single named run) on a
fresh generator and compares the draws against the archived values.
Any divergent draw is drift and makes the command exit 1.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "legacyrand.db", "archive database path")
	cmd.Flags().StringVar(&opts.Name, "name", "", "check a single run instead of the whole archive")

	return cmd
}

func runCheck(rootOpts *RootOptions, opts *CheckOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:  rootOpts.Format,
		Writer:  cmd.OutOrStdout(),
		Verbose: rootOpts.Verbose,
	}

	store, err := vectorstore.Open(opts.DB)
	if err != nil {
		return WrapExitError(ExitCommandError, "open archive", err)
	}
	defer store.Close()

	ctx := cmd.Context()

	var runs []vectorstore.Run
	if opts.Name != "" {
		run, _, err := store.ReadRun(ctx, opts.Name)
		if err != nil {
			return WrapExitError(ExitCommandError, "read run", err)
		}
		runs = []vectorstore.Run{run}
	} else {
		runs, err = store.ListRuns(ctx)
		if err != nil {
			return WrapExitError(ExitCommandError, "list runs", err)
		}
	}

	checks := make([]RunCheck, 0, len(runs))
	drifted := 0
	for _, run := range runs {
		check, err := checkRun(ctx, store, run)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("check run %s", run.Name), err)
		}
		if !check.Passed {
			drifted++
		}
		checks = append(checks, check)
	}

	slog.Debug("archive checked", "db", opts.DB, "runs", len(checks), "drifted", drifted)

	if formatter.JSON() {
		if err := formatter.Success(checks); err != nil {
			return err
		}
	} else {
		for _, check := range checks {
			status := "PASS"
			if !check.Passed {
				status = "DRIFT"
			}
			fmt.Fprintf(formatter.Writer, "%s  %s (%d draws)\n", status, check.Name, check.Draws)
			for _, m := range check.Mismatches {
				fmt.Fprintf(formatter.Writer, "      draw %d: want %s, got %s\n", m.Index, m.Want, m.Got)
			}
		}
	}

	if drifted > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d run(s) drifted", drifted))
	}
	return nil
}

func checkRun(ctx context.Context, store *vectorstore.Store, run vectorstore.Run) (RunCheck, error) {
	_, want, err := store.ReadRun(ctx, run.Name)
	if err != nil {
		return RunCheck{}, err
	}

	src, err := scenario.NewSource(run.Strategy, run.Seed)
	if err != nil {
		return RunCheck{}, err
	}

	step := scenario.OpStep{Op: run.Op, Count: run.Count, Min: run.Min, Max: run.Max, Len: run.Len}
	got, err := scenario.ExecOp(src, step)
	if err != nil {
		return RunCheck{}, err
	}

	check := RunCheck{Name: run.Name, Draws: len(got)}
	n := len(want)
	if len(got) > n {
		n = len(got)
	}
	for i := 0; i < n; i++ {
		w, g := "", ""
		if i < len(want) {
			w = want[i]
		}
		if i < len(got) {
			g = got[i]
		}
		if w != g {
			check.Mismatches = append(check.Mismatches, scenario.Mismatch{Index: i, Want: w, Got: g})
		}
	}
	check.Passed = len(check.Mismatches) == 0
	return check, nil
}
