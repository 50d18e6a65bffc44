package cli

import (
	"strconv"

	"github.com/daryltucker/solver-bench/internal/aggregate"
	"github.com/daryltucker/solver-bench/internal/engine"
	"github.com/daryltucker/solver-bench/internal/metric"
	"github.com/daryltucker/solver-bench/internal/model"
	"github.com/daryltucker/solver-bench/internal/normalize"
	"github.com/daryltucker/solver-bench/internal/output"
)

func summaryTable(rows []engine.SummaryRow, m output.TableMode) *output.Table {
	t := output.NewTable(m)
	t.Header("Rank", "Solver", "Version", "SGM runtime (s)", "SGM memory (MB)", "Relative", "Solved")
	for _, r := range rows {
		rank := "-"
		if r.Rank > 0 {
			rank = strconv.Itoa(r.Rank)
		}
		t.Row(rank, r.Solver, r.Version,
			metric.FormatDecimal(r.SGMRuntime, 2),
			metric.FormatDecimal(r.SGMMemoryUsage, 1),
			metric.FormatDecimal(r.Relative, 2),
			strconv.Itoa(r.NumSolved)+"/"+strconv.Itoa(r.Total),
		)
	}
	t.AlignRight(1, 4, 5, 6, 7)
	return t
}

func yearlyTable(metrics []model.SolverYearlyMetric, m output.TableMode) *output.Table {
	t := output.NewTable(m)
	t.Header("Solver", "Year", "Version", "SGM runtime (s)", "SGM memory (MB)", "Solved")
	for _, y := range metrics {
		t.Row(y.Solver, y.Year, y.Version,
			metric.FormatDecimal(y.SGMRuntime, 2),
			metric.FormatDecimal(y.SGMMemoryUsage, 1),
			strconv.Itoa(y.NumSolvedBenchmark)+"/"+strconv.Itoa(len(y.Results)),
		)
	}
	t.AlignRight(4, 5, 6)
	return t
}

func rankedTable(points []normalize.Ranked, m output.TableMode) *output.Table {
	t := output.NewTable(m)
	t.Header("Year", "Rank", "Solver", "Version", "Normalized")
	for _, p := range points {
		t.Row(p.Year, p.Rank, p.Solver, p.Version, metric.FormatDecimal(p.Value, 2))
	}
	t.AlignRight(2, 5)
	return t
}

func speedUpTable(points []model.SeriesPoint, m output.TableMode) *output.Table {
	t := output.NewTable(m)
	t.Header("Solver", "Year", "Version", "Speed-up")
	for _, p := range points {
		t.Row(p.Solver, p.Year, p.Version, metric.FormatDecimal(p.Value, 2)+"x")
	}
	t.AlignRight(4)
	return t
}

func bucketTable(buckets []aggregate.BucketMetric, m output.TableMode) *output.Table {
	t := output.NewTable(m)
	t.Header("Size", "Solver", "SGM runtime (s)", "SGM memory (MB)", "Solved")
	for _, b := range buckets {
		t.Row(b.Bucket, b.Solver,
			metric.FormatDecimal(b.SGMRuntime, 2),
			metric.FormatDecimal(b.SGMMemoryUsage, 1),
			strconv.Itoa(b.NumSolvedBenchmark)+"/"+strconv.Itoa(b.NumBenchmark),
		)
	}
	t.AlignRight(3, 4, 5)
	return t
}

func instanceTable(keys []model.InstanceKey, m output.TableMode) *output.Table {
	t := output.NewTable(m)
	t.Header("Benchmark", "Size")
	for _, k := range keys {
		t.Row(k.Benchmark, k.Size)
	}
	t.Footer("Total", len(keys))
	return t
}
