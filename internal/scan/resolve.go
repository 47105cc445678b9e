package scan

import (
	"meta-radar/internal/model"
	"meta-radar/pkg/dexscreener"
)

type contender struct {
	pair      dexscreener.Pair
	liquidity float64
	known     bool
}

// Resolve merges harvested candidates with enrichment pairs into one canonical
// record per unique address. Among pairs for the same address, the one with
// strictly greater known liquidity wins; a pair without a liquidity value never
// displaces one that has it. Candidates with no pair are dropped: a token the
// lookup could not expand has nothing displayable.
func Resolve(candidates []dexscreener.TokenProfile, pairs []dexscreener.Pair) []model.CanonicalRecord {
	harvested := make(map[string]dexscreener.TokenProfile, len(candidates))
	for _, c := range candidates {
		if _, ok := harvested[c.TokenAddress]; !ok {
			harvested[c.TokenAddress] = c
		}
	}

	winners := make(map[string]contender)
	order := make([]string, 0, len(pairs))
	for _, p := range pairs {
		addr := p.BaseToken.Address
		if addr == "" {
			continue
		}

		var liq float64
		var known bool
		if p.Liquidity != nil {
			liq, known = p.Liquidity.USD, true
		}

		cur, ok := winners[addr]
		if !ok {
			winners[addr] = contender{pair: p, liquidity: liq, known: known}
			order = append(order, addr)
			continue
		}
		if known && (!cur.known || liq > cur.liquidity) {
			winners[addr] = contender{pair: p, liquidity: liq, known: known}
		}
	}

	out := make([]model.CanonicalRecord, 0, len(order))
	for _, addr := range order {
		w := winners[addr]
		rec := model.CanonicalRecord{
			Name:    w.pair.BaseToken.Name,
			Symbol:  w.pair.BaseToken.Symbol,
			Address: addr,
			URL:     w.pair.URL,
		}
		if c, ok := harvested[addr]; ok {
			rec.Icon = c.Icon
			rec.Header = c.Header
			rec.Description = c.Description
		}
		if info := w.pair.Info; info != nil {
			if rec.Icon == "" {
				rec.Icon = info.ImageURL
			}
			if rec.Header == "" {
				rec.Header = info.Header
			}
		}
		out = append(out, rec)
	}
	return out
}
