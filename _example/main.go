package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"math/rand"

	"github.com/hupe1980/permugo"
	"github.com/hupe1980/permugo/resource"
)

func main() {
	ctx := context.Background()

	// Sort three aligned columns by one of them, reusing a single index.
	ids := []int{3, 1, 2}
	names := []string{"carol", "alice", "bob"}
	scores := []float64{7.5, 9.0, 8.25}

	ix := permugo.SortIndex(ids)

	metrics := &permugo.BasicMetricsCollector{}
	ctrl := resource.NewController(resource.Config{
		MemoryLimitBytes:     64 << 20,
		MaxConcurrentApplies: 4,
	})

	p := permugo.New[float64](ix,
		permugo.WithLogLevel(slog.LevelInfo),
		permugo.WithMetricsCollector(metrics),
		permugo.WithResourceController(ctrl),
	)

	permugo.MustApply(ids, ix)
	permugo.MustApply(names, ix)
	if err := p.Apply(ctx, scores); err != nil {
		log.Fatal(err)
	}

	for i := range ids {
		fmt.Printf("%d  %-6s %.2f\n", ids[i], names[i], scores[i])
	}

	// Large random permutation on the parallel path.
	const n = 1_000_000
	big := make([]float64, n)
	for i := range big {
		big[i] = float64(i)
	}

	shuffle := permugo.Random(n, rand.New(rand.NewSource(42)))
	if err := permugo.ApplyParallel(big, shuffle); err != nil {
		log.Fatal(err)
	}

	stats := metrics.GetStats()
	fmt.Printf("applies=%d moved=%d avg=%dns\n",
		stats.ApplyCount, stats.ElementsMoved, stats.ApplyAvgNanos)
	fmt.Printf("shuffled: big[0]=%.0f big[%d]=%.0f\n", big[0], n-1, big[n-1])
}
