package llm

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"google.golang.org/genai"
)

const summaryPrompt = `Summarize the following part of a video transcript in a few plain sentences.
Keep the order of the ideas. Do not add a title, bullet points or commentary.

Transcript:
---
%s
---`

// Infer implements Model. Each call uses the next API key.
func (g *implGemini) Infer(ctx context.Context, text string) ([]Candidate, error) {
	n := atomic.AddUint64(&g.next, 1) - 1
	idx := int(n % uint64(len(g.clients)))

	g.logger.Debug(ctx, "gemini: %s with key %d/%d", g.model, idx+1, len(g.clients))

	result, err := g.clients[idx].Models.GenerateContent(ctx, g.model, genai.Text(fmt.Sprintf(summaryPrompt, text)), nil)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}
	if result == nil {
		return nil, nil
	}

	var candidates []Candidate
	for _, c := range result.Candidates {
		if c == nil || c.Content == nil {
			continue
		}
		var sb strings.Builder
		for _, part := range c.Content.Parts {
			if part != nil && part.Text != "" {
				sb.WriteString(part.Text)
			}
		}
		if s := strings.TrimSpace(sb.String()); s != "" {
			candidates = append(candidates, Candidate{SummaryText: s})
		}
	}
	return candidates, nil
}
