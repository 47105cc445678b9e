package scan

import (
	"context"

	"github.com/rotisserie/eris"
	"golang.org/x/sync/errgroup"

	"meta-radar/internal/metrics"
	"meta-radar/pkg/dexscreener"
)

// Fetcher harvests promotion candidates from the three DexScreener feeds.
type Fetcher struct {
	dex     dexscreener.Client
	chainID string
}

// NewFetcher creates a Fetcher targeting one chain.
func NewFetcher(dex dexscreener.Client, chainID string) *Fetcher {
	return &Fetcher{dex: dex, chainID: chainID}
}

// Harvest runs the three feed calls concurrently and returns the chain-filtered
// concatenation. Any single feed failure fails the whole harvest; partial
// results are never used.
func (f *Fetcher) Harvest(ctx context.Context) ([]dexscreener.TokenProfile, error) {
	var profiles, latestBoosts, topBoosts []dexscreener.TokenProfile

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := f.dex.LatestProfiles(gCtx)
		if err != nil {
			metrics.HarvestFailures.WithLabelValues("profiles").Inc()
			return eris.Wrap(err, "scan: latest profiles")
		}
		profiles = p
		return nil
	})
	g.Go(func() error {
		p, err := f.dex.LatestBoosts(gCtx)
		if err != nil {
			metrics.HarvestFailures.WithLabelValues("latest_boosts").Inc()
			return eris.Wrap(err, "scan: latest boosts")
		}
		latestBoosts = p
		return nil
	})
	g.Go(func() error {
		p, err := f.dex.TopBoosts(gCtx)
		if err != nil {
			metrics.HarvestFailures.WithLabelValues("top_boosts").Inc()
			return eris.Wrap(err, "scan: top boosts")
		}
		topBoosts = p
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	combined := make([]dexscreener.TokenProfile, 0, len(profiles)+len(latestBoosts)+len(topBoosts))
	combined = append(combined, profiles...)
	combined = append(combined, latestBoosts...)
	combined = append(combined, topBoosts...)

	out := combined[:0]
	for _, c := range combined {
		if c.ChainID == f.chainID {
			out = append(out, c)
		}
	}
	return out, nil
}

// UniqueAddresses returns the distinct token addresses of the candidates in
// first-seen order.
func UniqueAddresses(candidates []dexscreener.TokenProfile) []string {
	seen := make(map[string]struct{}, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c.TokenAddress == "" {
			continue
		}
		if _, ok := seen[c.TokenAddress]; ok {
			continue
		}
		seen[c.TokenAddress] = struct{}{}
		out = append(out, c.TokenAddress)
	}
	return out
}
