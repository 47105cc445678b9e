package scan

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"meta-radar/internal/metrics"
	"meta-radar/internal/model"
	"meta-radar/pkg/anthropic"
)

const (
	promptEvidenceCap = 8
	descriptionCap    = 80
)

// Fixed degradation strings returned in place of generated analysis.
const (
	MsgInsufficientEvidence = "Not enough matching tokens to describe a meta yet."
	MsgGenerationFailed     = "AI analysis is unavailable right now."
	MsgNoAnalysis           = "No analysis produced."
)

// Narrator turns a detected theme into a short narrative via the text
// generation collaborator.
type Narrator struct {
	ai        anthropic.Client
	model     string
	maxTokens int64
	threshold int
}

// NewNarrator creates a Narrator. Themes supported by fewer than threshold
// records are never sent to the model.
func NewNarrator(ai anthropic.Client, modelID string, maxTokens int64, threshold int) *Narrator {
	return &Narrator{ai: ai, model: modelID, maxTokens: maxTokens, threshold: threshold}
}

// Narrate produces the analysis text for a detected theme. Weak signals
// short-circuit without a model call; any collaborator failure degrades to a
// fixed placeholder and never propagates.
func (n *Narrator) Narrate(ctx context.Context, theme string, support int, evidence []model.CanonicalRecord) string {
	if support < n.threshold {
		metrics.NarrativeRequests.WithLabelValues("skipped").Inc()
		return MsgInsufficientEvidence
	}

	resp, err := n.ai.CreateMessage(ctx, anthropic.MessageRequest{
		Model:     n.model,
		MaxTokens: n.maxTokens,
		Messages: []anthropic.Message{
			{Role: "user", Content: BuildPrompt(theme, support, evidence)},
		},
	})
	if err != nil {
		metrics.NarrativeRequests.WithLabelValues("failed").Inc()
		zap.L().Warn("scan: narrative generation failed",
			zap.String("theme", theme),
			zap.Error(err),
		)
		return MsgGenerationFailed
	}

	resp.Usage.LogUsage(n.model)

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		metrics.NarrativeRequests.WithLabelValues("empty").Inc()
		return MsgNoAnalysis
	}
	metrics.NarrativeRequests.WithLabelValues("ok").Inc()
	return text
}

// BuildPrompt renders the fixed-shape analysis prompt for a theme and its
// evidence. At most promptEvidenceCap records are included and descriptions
// are truncated to descriptionCap characters.
func BuildPrompt(theme string, support int, evidence []model.CanonicalRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a crypto market analyst. The word %q currently appears in %d newly promoted token names on the feed.\n\n", theme, support)
	b.WriteString("Tokens riding this theme:\n")
	for i, rec := range evidence {
		if i == promptEvidenceCap {
			break
		}
		desc := rec.Description
		if len(desc) > descriptionCap {
			desc = desc[:descriptionCap]
		}
		fmt.Fprintf(&b, "- %s (%s): %s\n", rec.Name, rec.Symbol, desc)
	}
	b.WriteString("\nIn two or three sentences, describe what this meta is about and why it might be trending right now.")
	return b.String()
}
