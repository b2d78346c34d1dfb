// Command prospr-bench folds one sequence with a chosen search algorithm
// and reports its score, move hash and contact list.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/okkevaneck/prospr/checkpoint"
	"github.com/okkevaneck/prospr/lattice"
	"github.com/okkevaneck/prospr/model"
	"github.com/okkevaneck/prospr/search"
)

// foldOptions holds the root command's flags, in the manner of
// turtacn-KeyIP-Intelligence/internal/interfaces/cli/root.go's RootOptions.
type foldOptions struct {
	sequence  string
	dim       int
	modelName string
	algorithm string
	bound     string
	beamWidth int
	parallel  bool
	cacheDir  string
	timeout   time.Duration
}

func newRootCommand() *cobra.Command {
	opts := &foldOptions{}

	cmd := &cobra.Command{
		Use:   "prospr-bench",
		Short: "Fold an HP/HPXN sequence on a lattice and report its score",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFold(cmd, opts)
		},
		SilenceUsage: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.sequence, "sequence", "", "residue sequence, e.g. PHPHPHPPH (required)")
	pf.IntVar(&opts.dim, "dim", 2, "lattice dimensionality")
	pf.StringVar(&opts.modelName, "model", model.HP, "contact energy model: HP or HPXN")
	pf.StringVar(&opts.algorithm, "algorithm", "depth_first_bnb", "depth_first, depth_first_bnb, beam, best_first, or best_first_bnb")
	pf.StringVar(&opts.bound, "bound", "reach_prune", "bounding function for depth_first_bnb: naive or reach_prune")
	pf.IntVar(&opts.beamWidth, "beam-width", 16, "beam width for the beam algorithm, or -1 for unbounded")
	pf.BoolVar(&opts.parallel, "parallel", false, "partition depth_first_bnb across goroutines via search.RunParallel")
	pf.StringVar(&opts.cacheDir, "cache-dir", "", "checkpoint cache directory (overrides PROSPR_CACHE_DIR)")
	pf.DurationVar(&opts.timeout, "timeout", 0, "abort a --parallel depth_first_bnb search after this long (0 disables the timeout; other searches ignore it)")

	_ = cmd.MarkPersistentFlagRequired("sequence")

	return cmd
}

func runFold(cmd *cobra.Command, opts *foldOptions) error {
	if opts.cacheDir != "" {
		if err := os.Setenv("PROSPR_CACHE_DIR", opts.cacheDir); err != nil {
			return err
		}
	}

	m, err := model.New(opts.modelName, nil, true)
	if err != nil {
		return fmt.Errorf("building model: %w", err)
	}

	ctx := context.Background()
	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	start := time.Now()

	var (
		score int
		hash  []lattice.Move
		l     *lattice.Lattice
	)

	switch opts.algorithm {
	case "depth_first":
		l, err = lattice.New(opts.sequence, opts.dim, m)
		if err != nil {
			return err
		}
		err = search.DepthFirst(l)
	case "beam":
		l, err = lattice.New(opts.sequence, opts.dim, m)
		if err != nil {
			return err
		}
		err = search.BeamSearch(l, opts.beamWidth)
	case "best_first":
		l, err = lattice.New(opts.sequence, opts.dim, m)
		if err != nil {
			return err
		}
		err = search.BestFirst(l)
	case "best_first_bnb":
		l, err = lattice.New(opts.sequence, opts.dim, m)
		if err != nil {
			return err
		}
		bound, boundErr := search.NewBound(opts.bound)
		if boundErr != nil {
			return boundErr
		}
		err = search.BestFirstBnB(l, bound)
	case "depth_first_bnb":
		if opts.parallel {
			score, hash, err = search.RunParallel(ctx, opts.sequence, opts.dim, m, opts.bound)
		} else {
			l, err = lattice.New(opts.sequence, opts.dim, m)
			if err != nil {
				return err
			}
			bound, boundErr := search.NewBound(opts.bound)
			if boundErr != nil {
				return boundErr
			}
			runner, runnerErr := checkpoint.NewRunner(l, bound)
			if runnerErr != nil {
				return runnerErr
			}
			err = runner.Run()
		}
	default:
		return fmt.Errorf("unknown algorithm %q", opts.algorithm)
	}
	if err != nil {
		return err
	}

	if l != nil {
		score = l.Score()
		hash = l.HashFold()
	}

	elapsed := time.Since(start)
	fmt.Fprintf(cmd.OutOrStdout(), "algorithm=%s score=%d hash=%v elapsed=%s\n",
		opts.algorithm, score, hash, elapsed)

	if l != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "bonds=%v\n", l.GetBonds())
	}

	return nil
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Fatalf("prospr-bench: %v", err)
	}
}
