package scan

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"meta-radar/internal/metrics"
	"meta-radar/pkg/dexscreener"
)

// BatchResult carries one enrichment group's outcome. A failed group keeps its
// error for observability but contributes no pairs to the merge.
type BatchResult struct {
	Pairs []dexscreener.Pair
	Err   error
}

// Batcher expands harvested addresses into trading-pair records, respecting
// the upstream per-request address limit.
type Batcher struct {
	dex     dexscreener.Client
	chainID string
	size    int
}

// NewBatcher creates a Batcher with the given group size. Sizes outside
// (0, MaxBatchAddresses] fall back to the upstream limit.
func NewBatcher(dex dexscreener.Client, chainID string, size int) *Batcher {
	if size <= 0 || size > dexscreener.MaxBatchAddresses {
		size = dexscreener.MaxBatchAddresses
	}
	return &Batcher{dex: dex, chainID: chainID, size: size}
}

// Partition splits addresses into contiguous groups of at most size elements.
func Partition(addresses []string, size int) [][]string {
	if len(addresses) == 0 {
		return nil
	}
	groups := make([][]string, 0, (len(addresses)+size-1)/size)
	for start := 0; start < len(addresses); start += size {
		end := min(start+size, len(addresses))
		groups = append(groups, addresses[start:end])
	}
	return groups
}

// Enrich looks up every address group concurrently. A group's failure is
// recorded and folded into an empty contribution; it never aborts sibling
// groups or the scan. Results are concatenated in batch-index order so the
// output is a pure function of the input address order.
func (b *Batcher) Enrich(ctx context.Context, addresses []string) []dexscreener.Pair {
	groups := Partition(addresses, b.size)
	results := make([]BatchResult, len(groups))

	g := new(errgroup.Group)
	for i, group := range groups {
		g.Go(func() error {
			pairs, err := b.dex.Pairs(ctx, b.chainID, group)
			if err != nil {
				metrics.EnrichmentBatches.WithLabelValues("failed").Inc()
				zap.L().Warn("scan: enrichment batch failed",
					zap.Int("batch", i),
					zap.Int("addresses", len(group)),
					zap.Error(err),
				)
				results[i] = BatchResult{Err: err}
				return nil
			}
			metrics.EnrichmentBatches.WithLabelValues("ok").Inc()
			results[i] = BatchResult{Pairs: pairs}
			return nil
		})
	}
	_ = g.Wait()

	var out []dexscreener.Pair
	for _, r := range results {
		out = append(out, r.Pairs...)
	}
	return out
}
