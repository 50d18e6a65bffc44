/*
PURPOSE:
  Loads the static input files once at startup and enforces the
  results-to-metadata invariant.

REQUIREMENTS:
  User-specified:
  - Every result must reference a known benchmark and size instance.

  Implementation-discovered:
  - Results and metadata are independent files; read them concurrently.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/model, internal/output

ERROR HANDLING:
  - Fails fast on I/O or parse errors (first error wins, via errgroup).
  - Results violating the invariant are dropped with a Warn log, not an error.

USAGE:
  raw, err := loader.Load(ctx, "results.csv", "metadata.yaml")
*/

package loader

import (
	"context"
	"fmt"
	"os"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/daryltucker/solver-bench/internal/model"
	"github.com/daryltucker/solver-bench/internal/output"
)

// Raw is the immutable input to every derived view.
type Raw struct {
	Results  []model.BenchmarkResult
	Metadata model.MetaData
}

// Load reads the results and metadata files concurrently and returns the
// results that satisfy the metadata invariant.
func Load(ctx context.Context, resultsPath, metadataPath string) (*Raw, error) {
	var (
		results []model.BenchmarkResult
		meta    model.MetaData
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		f, err := open(ctx, resultsPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if results, err = ReadResults(f); err != nil {
			return fmt.Errorf("results %s: %w", resultsPath, err)
		}
		return nil
	})
	g.Go(func() error {
		f, err := open(ctx, metadataPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if meta, err = ReadMetadata(f); err != nil {
			return fmt.Errorf("metadata %s: %w", metadataPath, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	kept := Reconcile(results, meta)
	if len(kept) == 0 {
		return nil, fmt.Errorf("results %s: %w after matching metadata", resultsPath, ErrNoResults)
	}
	output.New("loader").Info("Loaded benchmark data",
		"results", len(kept),
		"dropped", len(results)-len(kept),
		"benchmarks", len(meta),
	)
	return &Raw{Results: kept, Metadata: meta}, nil
}

func open(ctx context.Context, path string) (*os.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return f, nil
}

// Reconcile drops results whose benchmark has no metadata entry or whose size
// is not one of that entry's size instances. Drops are logged once per
// benchmark/size pair.
func Reconcile(results []model.BenchmarkResult, meta model.MetaData) []model.BenchmarkResult {
	log := output.New("loader")

	dropped := make(map[model.InstanceKey]int)
	out := make([]model.BenchmarkResult, 0, len(results))
	for _, r := range results {
		entry, ok := meta[r.Benchmark]
		if ok {
			_, ok = entry.FindSize(r.Size)
		}
		if !ok {
			dropped[r.Instance()]++
			continue
		}
		out = append(out, r)
	}

	keys := make([]model.InstanceKey, 0, len(dropped))
	for k := range dropped {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	for _, k := range keys {
		log.Warn("Dropping results without metadata", "benchmark", k.Benchmark, "size", k.Size, "rows", dropped[k])
	}
	return out
}
