package tspio

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/heldkarp/internal/logging"
	"github.com/katalvlaran/heldkarp/tsp"
)

// FileResult is the outcome for one input file.
type FileResult struct {
	Path string
	tsp.Result
}

// SolveFiles solves every file in paths with at most workers solves in flight
// (workers ≤ 0 means one per file). Results keep the order of paths.
//
// The first failure cancels the files not yet started and is returned wrapped
// with its path; ctx is consulted only between files.
func SolveFiles(ctx context.Context, paths []string, workers int, opts tsp.Options) ([]FileResult, error) {
	var (
		results = make([]FileResult, len(paths))
		log     = logging.OrDiscard(opts.Logger)
	)

	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			res, err := solveFile(path, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			log.Debug("file solved", "path", path, "cost", res.Cost, "engine", res.Engine.String())
			results[i] = FileResult{Path: path, Result: res}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func solveFile(path string, opts tsp.Options) (tsp.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return tsp.Result{}, fmt.Errorf("tspio: open: %w", err)
	}
	defer f.Close()

	return Read(f, opts)
}
