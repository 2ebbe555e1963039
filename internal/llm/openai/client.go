package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/recluta/recluta-backend/internal/llm"
)

// ScoreBatch implements llm.BatchScorer using text-only chat/completions.
// All candidate texts go out in a single request; the reply carries one
// entry per candidate in the same order.
func (c *Client) ScoreBatch(ctx context.Context, texts []string, constraints llm.OfferConstraints) ([]llm.CandidateResult, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	totalLen := 0
	for _, t := range texts {
		totalLen += len(t)
	}
	c.log.Info("llm.score.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"candidates", len(texts),
		"text_len", totalLen,
		"offer_city", constraints.City,
		"skills", len(constraints.Skills),
	)

	schema := llm.BuildCandidateJSONSchema()
	sys := llm.BuildSystemPrompt(constraints, c.cfg.Weights)
	user := llm.BuildUserPrompt(texts)

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": sys},
			{"role": "user", "content": user},
			{"role": "system", "content": "Per-candidate JSON Schema:\n" + mustJSON(schema)},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, httpErr := c.post(ctx, endpoint, body)
	if httpErr != nil {
		c.log.Error("llm.score.http_error",
			"req_id", rid, "error", httpErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, nil, httpErr
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("llm.score.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, raw, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.log.Error("llm.score.no_choices",
			"req_id", rid, "raw", string(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, raw, fmt.Errorf("no choices in openai response")
	}
	content := strings.TrimSpace(cc.Choices[0].Message.Content)
	rawContent := []byte(content)

	results, err := llm.ParseBatchResponse(rawContent, len(texts))
	if err != nil {
		c.log.Error("llm.score.parse_failed",
			"req_id", rid, "error", err, "content_bytes", len(rawContent),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, rawContent, err
	}

	valid := 0
	for _, r := range results {
		if r.OK() {
			valid++
		}
	}
	c.log.Info("llm.score.ok",
		"req_id", rid,
		"candidates", len(texts),
		"scored", valid,
		"invalid", len(results)-valid,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return results, rawContent, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai http error: %w", err)
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			c.log.Warn("openai response body close error", "error", err)
		}
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		buf := new(bytes.Buffer)
		_, _ = buf.ReadFrom(resp.Body)
		return nil, fmt.Errorf("openai status %d: %s", resp.StatusCode, buf.String())
	}

	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(resp.Body)
	return buf.Bytes(), nil
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
