package scan

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meta-radar/internal/model"
)

func named(names ...string) []model.CanonicalRecord {
	out := make([]model.CanonicalRecord, len(names))
	for i, n := range names {
		out[i] = model.CanonicalRecord{Name: n, Address: fmt.Sprintf("addr%d", i)}
	}
	return out
}

func TestDetect_DominantWord(t *testing.T) {
	got := Detect(named("DOGE KING", "DOGE QUEEN", "DOGE LORD"))

	assert.Equal(t, "DOGE", got.Theme)
	assert.Equal(t, 3, got.SupportCount)
	require.Len(t, got.Evidence, 3)
}

func TestDetect_StopWordsOnly(t *testing.T) {
	got := Detect(named("SOLANA", "MOON", "SOLANA MOON"))

	assert.Equal(t, model.ThemeNone, got.Theme)
	assert.Equal(t, 0, got.SupportCount)
	// Fallback evidence is the input slice, input order.
	assert.Len(t, got.Evidence, 3)
	assert.Equal(t, "SOLANA", got.Evidence[0].Name)
}

func TestDetect_EmptyInput(t *testing.T) {
	got := Detect(nil)
	assert.Equal(t, model.ThemeNone, got.Theme)
	assert.Empty(t, got.Evidence)
}

func TestDetect_FallbackCappedAt20(t *testing.T) {
	names := make([]string, 25)
	for i := range names {
		names[i] = "MOON"
	}
	got := Detect(named(names...))
	assert.Equal(t, model.ThemeNone, got.Theme)
	assert.Len(t, got.Evidence, 20)
}

func TestDetect_TickerSuffixStripped(t *testing.T) {
	// Without stripping, "PEPE" inside the ticker would double each count.
	got := Detect(named("Frog King ($FROG)", "Frog Queen ($FROG)"))
	assert.Equal(t, "FROG", got.Theme)
	assert.Equal(t, 2, got.SupportCount)
}

func TestDetect_WordLengthBounds(t *testing.T) {
	// "AB" too short, 15+ letters too long; only "WIZARD" qualifies.
	got := Detect(named("AB WIZARD ABCDEFGHIJKLMNO", "WIZARD"))
	assert.Equal(t, "WIZARD", got.Theme)
	assert.Equal(t, 2, got.SupportCount)
}

func TestDetect_RepeatWithinOneNameCountsTwice(t *testing.T) {
	got := Detect(named("DOGE DOGE", "CAT"))
	assert.Equal(t, "DOGE", got.Theme)
	assert.Equal(t, 2, got.SupportCount)
}

func TestDetect_TieBreakFirstSeen(t *testing.T) {
	// FROG and KING both tally 2; FROG was encountered first.
	got := Detect(named("FROG KING", "FROG DUKE", "TOAD KING"))
	assert.Equal(t, "FROG", got.Theme)
	assert.Equal(t, 2, got.SupportCount)
}

func TestDetect_NonLetterBecomesSpace(t *testing.T) {
	got := Detect(named("doge-wif-hat", "DOGE*2000", "doge!"))
	assert.Equal(t, "DOGE", got.Theme)
	assert.Equal(t, 3, got.SupportCount)
}

func TestDetect_SubstringEvidenceOverMatches(t *testing.T) {
	records := []model.CanonicalRecord{
		{Name: "DOGE ONE", Address: "1"},
		{Name: "DOGE TWO", Address: "2"},
		{Name: "DOGE THREE", Address: "3"},
		// Name has no DOGE token, but the substring rule still claims it.
		{Name: "DOGECOIN REVIVAL", Address: "4"},
		// Matched through the description, case-insensitively.
		{Name: "WIF HAT", Address: "5", Description: "the original doge with a hat"},
		{Name: "UNRELATED", Address: "6"},
	}

	got := Detect(records)
	assert.Equal(t, "DOGE", got.Theme)

	matched := make([]string, 0, len(got.Evidence))
	for _, r := range got.Evidence {
		matched = append(matched, r.Address)
	}
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, matched)
}

func TestDetect_EvidenceCappedAt20(t *testing.T) {
	names := make([]string, 30)
	for i := range names {
		names[i] = "FROG ARMY"
	}
	got := Detect(named(names...))
	assert.Equal(t, "FROG", got.Theme)
	assert.Equal(t, 30, got.SupportCount)
	assert.Len(t, got.Evidence, 20)
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "DOGE KING", normalizeName("Doge King ($DKING)"))
	assert.Equal(t, "A B C", normalizeName("a_b-c"))
	assert.Equal(t, "   ", normalizeName("123"))
}
