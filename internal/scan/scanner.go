package scan

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"meta-radar/internal/config"
	"meta-radar/internal/metrics"
	"meta-radar/internal/model"
	"meta-radar/pkg/anthropic"
	"meta-radar/pkg/dexscreener"
)

// Scanner runs the full discovery pipeline: harvest, enrich, resolve, detect,
// narrate. Each run is stateless and independent of prior runs.
type Scanner struct {
	fetcher  *Fetcher
	batcher  *Batcher
	narrator *Narrator
}

// New creates a Scanner with all dependencies.
func New(cfg *config.Config, dex dexscreener.Client, ai anthropic.Client) *Scanner {
	return &Scanner{
		fetcher:  NewFetcher(dex, cfg.Scan.ChainID),
		batcher:  NewBatcher(dex, cfg.Scan.ChainID, cfg.Scan.BatchSize),
		narrator: NewNarrator(ai, cfg.Anthropic.Model, cfg.Anthropic.MaxTokens, cfg.Scan.SupportThreshold),
	}
}

// Run executes one scan and assembles the response envelope. Harvest failure
// is the only error path; everything downstream degrades in place.
func (s *Scanner) Run(ctx context.Context) (*model.ScanResult, error) {
	log := zap.L().With(zap.String("scan_id", uuid.NewString()))
	start := time.Now()
	log.Info("scan: starting")

	candidates, err := s.fetcher.Harvest(ctx)
	if err != nil {
		metrics.ScansTotal.WithLabelValues("failed").Inc()
		return nil, eris.Wrap(err, "scan: harvest")
	}
	log.Info("scan: harvested", zap.Int("candidates", len(candidates)))

	addresses := UniqueAddresses(candidates)
	pairs := s.batcher.Enrich(ctx, addresses)
	records := Resolve(candidates, pairs)
	log.Info("scan: resolved",
		zap.Int("addresses", len(addresses)),
		zap.Int("pairs", len(pairs)),
		zap.Int("records", len(records)),
	)

	theme := Detect(records)
	log.Info("scan: theme detected",
		zap.String("theme", theme.Theme),
		zap.Int("support", theme.SupportCount),
		zap.Int("evidence", len(theme.Evidence)),
	)

	analysis := s.narrator.Narrate(ctx, theme.Theme, theme.SupportCount, theme.Evidence)

	evidence := theme.Evidence
	if evidence == nil {
		evidence = []model.CanonicalRecord{}
	}

	metrics.ScansTotal.WithLabelValues("ok").Inc()
	log.Info("scan: complete", zap.Duration("elapsed", time.Since(start)))

	return &model.ScanResult{
		Success:      true,
		TotalScanned: len(records),
		MetaKeyword:  theme.Theme,
		MetaCount:    theme.SupportCount,
		AIAnalysis:   analysis,
		FilteredList: evidence,
	}, nil
}
