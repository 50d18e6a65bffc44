package aggregate

import (
	"sort"

	"github.com/daryltucker/solver-bench/internal/metric"
	"github.com/daryltucker/solver-bench/internal/model"
)

// BucketOrder is the display order of the problem-size buckets.
var BucketOrder = []string{"S", "M", "L"}

// BucketMetric is the aggregate for one solver on one problem-size bucket.
type BucketMetric struct {
	Solver             string  `json:"solver"`
	Bucket             string  `json:"bucket"`
	SGMRuntime         float64 `json:"sgmRuntime"`
	SGMMemoryUsage     float64 `json:"sgmMemoryUsage"`
	NumSolvedBenchmark int     `json:"numSolvedBenchmark"`
	NumBenchmark       int     `json:"numBenchmark"`
}

type bucketKey struct {
	solver, bucket string
}

// BySizeBucket groups results by solver and the S/M/L bucket of their size
// instance. Results whose size has no bucket in metadata are skipped.
func BySizeBucket(results []model.BenchmarkResult, meta model.MetaData, shift float64) []BucketMetric {
	runtimes := make(map[bucketKey][]float64)
	memory := make(map[bucketKey][]float64)
	solved := make(map[bucketKey]int)
	for _, r := range results {
		size, ok := meta[r.Benchmark].FindSize(r.Size)
		if !ok || size.Size == "" {
			continue
		}
		k := bucketKey{r.Solver, size.Size}
		runtimes[k] = append(runtimes[k], r.Runtime)
		memory[k] = append(memory[k], r.MemoryUsage)
		if r.Status.Solved() {
			solved[k]++
		}
	}

	out := make([]BucketMetric, 0, len(runtimes))
	for k, rt := range runtimes {
		out = append(out, BucketMetric{
			Solver:             k.solver,
			Bucket:             k.bucket,
			SGMRuntime:         metric.SGM(rt, shift),
			SGMMemoryUsage:     metric.SGM(memory[k], shift),
			NumSolvedBenchmark: solved[k],
			NumBenchmark:       len(rt),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		bi, bj := bucketRank(out[i].Bucket), bucketRank(out[j].Bucket)
		if bi != bj {
			return bi < bj
		}
		return out[i].Solver < out[j].Solver
	})
	return out
}

func bucketRank(b string) int {
	for i, o := range BucketOrder {
		if o == b {
			return i
		}
	}
	return len(BucketOrder)
}
