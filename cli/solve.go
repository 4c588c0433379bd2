// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rectilinear/polygon"
	"github.com/katalvlaran/rectilinear/rectsearch"
	"github.com/katalvlaran/rectilinear/render"
	"github.com/katalvlaran/rectilinear/vertex"
)

type solveFlags struct {
	any     bool
	noPrune bool
	strict  bool
	workers int
	png     string
}

func (a *app) solveCommand() *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Print the area of the largest interior rectangle",
		Long: `solve prints the tile area (|dx|+1)*(|dy|+1) of the best vertex pair as a
single decimal integer. It prints 0 when no pair qualifies.`,
		Args: cobra.MaximumNArgs(1),
	}
	cmd.RunE = a.runE(func(cmd *cobra.Command, args []string) error {
		return a.solve(cmd, args, f)
	})

	fl := cmd.Flags()
	fl.BoolVar(&f.any, "any", false, "ignore the interior and maximise over all vertex pairs")
	fl.BoolVar(&f.noPrune, "no-prune", false, "check every candidate pair")
	fl.BoolVar(&f.strict, "strict", false, "fail on the first malformed record")
	fl.IntVar(&f.workers, "workers", 1, "search goroutines, overrides search.workers")
	fl.StringVar(&f.png, "png", "", "write a PNG of the polygon and the winning rectangle")

	return cmd
}

func (a *app) solve(cmd *cobra.Command, args []string, f *solveFlags) error {
	policy := a.cfg.Policy()
	if f.strict {
		policy = vertex.Strict
	}
	workers := a.cfg.Search.Workers
	if cmd.Flags().Changed("workers") {
		if f.workers < 1 {
			return fmt.Errorf("solve: --workers=%d (must be ≥ 1): %w", f.workers, ErrUsage)
		}
		workers = f.workers
	}
	prune := a.cfg.Search.Pruning && !f.noPrune

	vs, err := a.readVertices(cmd, args, policy)
	if err != nil {
		return err
	}

	p, err := polygon.New(vs)
	if errors.Is(err, polygon.ErrEmptyPolygon) {
		a.log.Warn().Msg("empty input")
		fmt.Fprintln(cmd.OutOrStdout(), 0)
		return nil
	}
	if err != nil {
		return err
	}

	start := time.Now()
	var res rectsearch.Result
	if f.any {
		res, err = rectsearch.LargestAny(vs)
	} else {
		res, err = rectsearch.Largest(p, rectsearch.WithWorkers(workers), rectsearch.WithPruning(prune))
	}
	switch {
	case errors.Is(err, rectsearch.ErrNoRectangle):
		a.log.Warn().Err(err).Msg("no qualifying rectangle")
	case err != nil:
		return err
	}

	a.log.Info().
		Str("area", res.Area.String()).
		Stringer("a", res.A).
		Stringer("b", res.B).
		Int("candidates", res.Candidates).
		Int("pruned", res.Pruned).
		Int("checked", res.Checked).
		Int("workers", workers).
		Dur("elapsed", time.Since(start)).
		Msg("solved")

	fmt.Fprintln(cmd.OutOrStdout(), res.Area.String())

	if f.png != "" {
		return a.writePNG(f.png, p, res)
	}

	return nil
}

func (a *app) writePNG(path string, p *polygon.Polygon, res rectsearch.Result) error {
	opts := render.DefaultOptions()
	opts.Width, opts.Height = a.cfg.Render.Width, a.cfg.Render.Height
	opts.Padding = a.cfg.Render.Padding

	var best *rectsearch.Result
	if res.Found() {
		best = &res
	}
	img, err := render.Draw(p, best, opts)
	if err != nil {
		return err
	}
	if err := render.SavePNG(path, img); err != nil {
		return err
	}
	a.log.Info().Str("path", path).Msg("png written")

	return nil
}
