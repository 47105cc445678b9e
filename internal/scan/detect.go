package scan

import (
	"strings"

	"meta-radar/internal/model"
)

const (
	minWordLen  = 3
	maxWordLen  = 14
	evidenceCap = 20

	// tickerMarker begins the ticker-style suffix some names carry,
	// e.g. "Doge King ($DKING)".
	tickerMarker = "($"
)

// stopWords are generic filler terms that never qualify as a theme. Matched
// case-sensitively against the normalized upper-case form.
var stopWords = map[string]struct{}{
	"THE": {}, "AND": {}, "FOR": {}, "NEW": {}, "WITH": {}, "THIS": {},
	"FROM": {}, "YOUR": {}, "JUST": {},
	"SOL": {}, "SOLANA": {}, "ETHEREUM": {}, "BNB": {}, "CHAIN": {},
	"COIN": {}, "TOKEN": {}, "CRYPTO": {}, "MEME": {}, "MOON": {},
	"PUMP": {}, "FUN": {}, "INU": {}, "BABY": {}, "MINI": {},
	"OFFICIAL": {}, "SWAP": {}, "FINANCE": {}, "PROTOCOL": {},
}

// normalizeName upper-cases a token name, drops any trailing ticker suffix and
// maps every character outside A-Z and space to a space.
func normalizeName(name string) string {
	s := strings.ToUpper(name)
	if i := strings.Index(s, tickerMarker); i >= 0 {
		s = s[:i]
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'A' && r <= 'Z') || r == ' ' {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// Detect finds the dominant word across the record names. When no word
// survives filtering it returns the "none" sentinel with the first records as
// fallback evidence. Ties rank by first-seen word order, so the result is
// deterministic for a given record order.
func Detect(records []model.CanonicalRecord) model.ThemeResult {
	counts := make(map[string]int)
	var seen []string
	for _, rec := range records {
		for _, w := range strings.Fields(normalizeName(rec.Name)) {
			if len(w) < minWordLen || len(w) > maxWordLen {
				continue
			}
			if _, stop := stopWords[w]; stop {
				continue
			}
			if counts[w] == 0 {
				seen = append(seen, w)
			}
			counts[w]++
		}
	}

	var theme string
	var best int
	for _, w := range seen {
		if counts[w] > best {
			theme, best = w, counts[w]
		}
	}

	if theme == "" {
		n := min(len(records), evidenceCap)
		return model.ThemeResult{
			Theme:    model.ThemeNone,
			Evidence: records[:n],
		}
	}

	// Substring containment, not token match: "DOGE" also claims "DOGECOIN".
	// Over-broad by design; tightening it would change observable results.
	evidence := make([]model.CanonicalRecord, 0, evidenceCap)
	for _, rec := range records {
		if len(evidence) == evidenceCap {
			break
		}
		if strings.Contains(strings.ToUpper(rec.Name), theme) ||
			strings.Contains(strings.ToUpper(rec.Description), theme) {
			evidence = append(evidence, rec)
		}
	}

	return model.ThemeResult{
		Theme:        theme,
		SupportCount: best,
		Evidence:     evidence,
	}
}
