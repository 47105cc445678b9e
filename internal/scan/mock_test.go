package scan

import (
	"context"
	"sync"

	"meta-radar/pkg/anthropic"
	"meta-radar/pkg/dexscreener"
)

// fakeDex is a scripted dexscreener.Client.
type fakeDex struct {
	profiles     []dexscreener.TokenProfile
	latestBoosts []dexscreener.TokenProfile
	topBoosts    []dexscreener.TokenProfile

	profilesErr error
	latestErr   error
	topErr      error

	// pairsFn answers each Pairs call; defaults to empty.
	pairsFn func(chainID string, addresses []string) ([]dexscreener.Pair, error)

	mu        sync.Mutex
	pairCalls [][]string
}

func (f *fakeDex) LatestProfiles(ctx context.Context) ([]dexscreener.TokenProfile, error) {
	return f.profiles, f.profilesErr
}

func (f *fakeDex) LatestBoosts(ctx context.Context) ([]dexscreener.TokenProfile, error) {
	return f.latestBoosts, f.latestErr
}

func (f *fakeDex) TopBoosts(ctx context.Context) ([]dexscreener.TokenProfile, error) {
	return f.topBoosts, f.topErr
}

func (f *fakeDex) Pairs(ctx context.Context, chainID string, addresses []string) ([]dexscreener.Pair, error) {
	f.mu.Lock()
	f.pairCalls = append(f.pairCalls, addresses)
	f.mu.Unlock()
	if f.pairsFn == nil {
		return nil, nil
	}
	return f.pairsFn(chainID, addresses)
}

// fakeAI is a scripted anthropic.Client.
type fakeAI struct {
	mu         sync.Mutex
	calls      int
	lastPrompt string

	resp *anthropic.MessageResponse
	err  error
}

func (f *fakeAI) CreateMessage(ctx context.Context, req anthropic.MessageRequest) (*anthropic.MessageResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if len(req.Messages) > 0 {
		f.lastPrompt = req.Messages[0].Content
	}
	if f.err != nil {
		return nil, f.err
	}
	if f.resp != nil {
		return f.resp, nil
	}
	return &anthropic.MessageResponse{
		Content: []anthropic.ContentBlock{{Type: "text", Text: "generated analysis"}},
	}, nil
}

func textResponse(text string) *anthropic.MessageResponse {
	return &anthropic.MessageResponse{
		Content: []anthropic.ContentBlock{{Type: "text", Text: text}},
	}
}

func profile(addr, chainID string) dexscreener.TokenProfile {
	return dexscreener.TokenProfile{ChainID: chainID, TokenAddress: addr}
}

func pair(addr, name string, liquidity *float64) dexscreener.Pair {
	p := dexscreener.Pair{
		URL:       "https://dexscreener.com/solana/" + addr,
		BaseToken: dexscreener.BaseToken{Address: addr, Name: name, Symbol: "TKN"},
	}
	if liquidity != nil {
		p.Liquidity = &dexscreener.Liquidity{USD: *liquidity}
	}
	return p
}

func liq(v float64) *float64 { return &v }
