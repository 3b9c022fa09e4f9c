package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/legacyrand/internal/scenario"
	"github.com/roach88/legacyrand/internal/vectorstore"
)

// RecordOptions holds flags for the record command.
type RecordOptions struct {
	DB       string
	Name     string
	Seed     int32
	Strategy string
	Op       string
	Count    int
	Min      int64
	Max      int64
	Len      int
}

// RecordResult is the record command's JSON payload.
type RecordResult struct {
	Name  string `json:"name"`
	Seed  int32  `json:"seed"`
	Op    string `json:"op"`
	Draws int    `json:"draws"`
}

// NewRecordCommand creates the record command.
func NewRecordCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RecordOptions{}

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Archive a reference run",
		Long: `Record draws a sequence from a freshly constructed generator and
archives it under a name. Archived runs are immutable; recording an
existing name fails. Use check to re-derive archived runs later.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecord(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "legacyrand.db", "archive database path")
	cmd.Flags().StringVar(&opts.Name, "name", "", "run name (required)")
	cmd.Flags().Int32Var(&opts.Seed, "seed", 0, "generator seed")
	cmd.Flags().StringVar(&opts.Strategy, "strategy", "seeded", "calling convention (seeded|compat)")
	cmd.Flags().StringVar(&opts.Op, "op", "next", "operation to draw")
	cmd.Flags().IntVar(&opts.Count, "count", 16, "number of draws")
	cmd.Flags().Int64Var(&opts.Min, "min", 0, "lower bound for ranged ops (inclusive)")
	cmd.Flags().Int64Var(&opts.Max, "max", 0, "upper bound for ranged/bounded ops (exclusive)")
	cmd.Flags().IntVar(&opts.Len, "len", 16, "buffer length for next_bytes")
	cmd.MarkFlagRequired("name")

	return cmd
}

func runRecord(rootOpts *RootOptions, opts *RecordOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:  rootOpts.Format,
		Writer:  cmd.OutOrStdout(),
		Verbose: rootOpts.Verbose,
	}

	step := scenario.OpStep{Op: opts.Op, Count: opts.Count, Min: opts.Min, Max: opts.Max, Len: opts.Len}
	if err := validateStep(step); err != nil {
		return WrapExitError(ExitCommandError, "invalid record flags", err)
	}

	src, err := scenario.NewSource(opts.Strategy, opts.Seed)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid record flags", err)
	}

	draws, err := scenario.ExecOp(src, step)
	if err != nil {
		return WrapExitError(ExitCommandError, "record failed", err)
	}

	store, err := vectorstore.Open(opts.DB)
	if err != nil {
		return WrapExitError(ExitCommandError, "open archive", err)
	}
	defer store.Close()

	run := vectorstore.Run{
		Name:     opts.Name,
		Seed:     opts.Seed,
		Strategy: opts.Strategy,
		Op:       opts.Op,
		Min:      opts.Min,
		Max:      opts.Max,
		Len:      opts.Len,
	}
	if err := store.WriteRun(cmd.Context(), run, draws); err != nil {
		if errors.Is(err, vectorstore.ErrDuplicateRun) {
			return WrapExitError(ExitCommandError, "archived runs are immutable", err)
		}
		return WrapExitError(ExitCommandError, "write run", err)
	}

	slog.Debug("run recorded", "name", opts.Name, "db", opts.DB, "draws", len(draws))

	if formatter.JSON() {
		return formatter.Success(RecordResult{
			Name:  opts.Name,
			Seed:  opts.Seed,
			Op:    opts.Op,
			Draws: len(draws),
		})
	}
	return formatter.Success(fmt.Sprintf("recorded %s (%d draws)", opts.Name, len(draws)))
}
