package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const maxHFResponseBytes = 1 << 20

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
	Options    hfOptions    `json:"options"`
}

type hfParameters struct {
	MaxLength int `json:"max_length,omitempty"`
	MinLength int `json:"min_length,omitempty"`
}

type hfOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

type hfError struct {
	Error string `json:"error"`
}

// Infer implements Model.
func (h *implHuggingFace) Infer(ctx context.Context, text string) ([]Candidate, error) {
	payload, err := json.Marshal(hfRequest{
		Inputs: text,
		Parameters: hfParameters{
			MaxLength: h.maxLength,
			MinLength: h.minLength,
		},
		Options: hfOptions{WaitForModel: true},
	})
	if err != nil {
		return nil, err
	}

	url := strings.TrimRight(h.endpoint, "/") + "/" + h.model
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if h.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+h.apiKey)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("huggingface request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxHFResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read huggingface response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr hfError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("huggingface: HTTP %d: %s", resp.StatusCode, apiErr.Error)
		}
		return nil, fmt.Errorf("huggingface: HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var candidates []Candidate
	if err := json.Unmarshal(body, &candidates); err != nil {
		return nil, fmt.Errorf("decode huggingface response: %w", err)
	}

	h.logger.Debug(ctx, "huggingface: %s returned %d candidate(s) for %d chars", h.model, len(candidates), len(text))
	return candidates, nil
}
