package summarizer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/tube-digest/internal/chunker"
	"github.com/nguyentantai21042004/tube-digest/internal/llm"
	"github.com/nguyentantai21042004/tube-digest/internal/logger"
)

// wordTokenizer counts every word as one token.
type wordTokenizer struct{}

func (wordTokenizer) Tokenize(text string) []int {
	return make([]int, len(strings.Fields(text)))
}

// fakeModel summarizes a chunk as "S(<chunk>)" and fails on the configured call.
type fakeModel struct {
	failOn int
	err    error
	empty  bool
	seen   []string
}

func (f *fakeModel) Infer(_ context.Context, text string) ([]llm.Candidate, error) {
	f.seen = append(f.seen, text)
	if f.failOn > 0 && len(f.seen) == f.failOn {
		return nil, f.err
	}
	if f.empty {
		return nil, nil
	}
	return []llm.Candidate{{SummaryText: "S(" + text + ")"}, {SummaryText: "ignored"}}, nil
}

func newSummarizer(m llm.Model, maxTokens int) Summarizer {
	return New(chunker.New(wordTokenizer{}, chunker.WithMaxTokens(maxTokens)), m, logger.Discard())
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		maxTokens int
		want      string
		wantSeen  []string
	}{
		{
			name:      "three chunks joined with spaces",
			text:      "a b c d e f",
			maxTokens: 2,
			want:      "S(a b) S(c d) S(e f)",
			wantSeen:  []string{"a b", "c d", "e f"},
		},
		{
			name:      "single chunk",
			text:      "one\ntwo",
			maxTokens: 10,
			want:      "S(one two)",
			wantSeen:  []string{"one two"},
		},
		{
			name:      "empty text",
			text:      "",
			maxTokens: 10,
			want:      "",
			wantSeen:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &fakeModel{}
			got, err := newSummarizer(m, tt.maxTokens).Summarize(context.Background(), tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantSeen, m.seen)
		})
	}
}

func TestSummarizeFailsFast(t *testing.T) {
	boom := errors.New("CUDA out of memory")
	m := &fakeModel{failOn: 2, err: boom}

	got, err := newSummarizer(m, 2).Summarize(context.Background(), "a b c d e f")
	require.Error(t, err)
	assert.Empty(t, got)

	var chunkErr *ChunkError
	require.ErrorAs(t, err, &chunkErr)
	assert.Equal(t, 1, chunkErr.Index)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "CUDA out of memory", err.Error())

	// chunk 3 never reaches the model
	assert.Equal(t, []string{"a b", "c d"}, m.seen)
}

func TestSummarizeNoCandidates(t *testing.T) {
	m := &fakeModel{empty: true}

	_, err := newSummarizer(m, 2).Summarize(context.Background(), "a b c d")
	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrNoCandidates)
	assert.Len(t, m.seen, 1)
}
