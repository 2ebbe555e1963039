package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/recluta/recluta-backend/internal/common"
	"github.com/recluta/recluta-backend/internal/llm"
)

func chatReply(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
	return string(b)
}

func TestScoreBatch_OK(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %q", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(chatReply(`{"candidates":[{"full_name":"Ana Ruiz","score":8.2,"status":"apt"},{"full_name":"Luis Vega","score":2.4,"status":"not_apt"}]}`)))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL, Model: "test-model"}, nil)
	results, raw, err := c.ScoreBatch(context.Background(), []string{"cv a", "cv b"}, llm.OfferConstraints{City: "Cali", ExperienceYears: 2})
	if err != nil {
		t.Fatalf("ScoreBatch: %v", err)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotBody["model"] != "test-model" {
		t.Errorf("model = %v", gotBody["model"])
	}
	msgs, _ := gotBody["messages"].([]any)
	if len(msgs) != 3 {
		t.Fatalf("got %d messages, want 3", len(msgs))
	}
	user, _ := msgs[1].(map[string]any)
	if content, _ := user["content"].(string); !strings.Contains(content, "### Candidate #2 ###") {
		t.Errorf("user message missing positional labels: %q", content)
	}
	if len(results) != 2 || !results[0].OK() || results[0].Score.FullName != "Ana Ruiz" {
		t.Errorf("results = %+v", results)
	}
	if len(raw) == 0 {
		t.Errorf("raw content should be returned")
	}
}

func TestScoreBatch_HTTPStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL}, nil)
	_, _, err := c.ScoreBatch(context.Background(), []string{"cv"}, llm.OfferConstraints{})
	if err == nil || !strings.Contains(err.Error(), "429") {
		t.Fatalf("err = %v, want status 429 error", err)
	}
}

func TestScoreBatch_UnparseableContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chatReply("I could not produce JSON, sorry.")))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL}, nil)
	_, raw, err := c.ScoreBatch(context.Background(), []string{"cv"}, llm.OfferConstraints{})
	if !errors.Is(err, common.ErrResponseParse) {
		t.Fatalf("err = %v, want ErrResponseParse", err)
	}
	if len(raw) == 0 {
		t.Errorf("raw content should survive a parse failure")
	}
}

func TestScoreBatch_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL}, nil)
	_, _, err := c.ScoreBatch(context.Background(), []string{"cv"}, llm.OfferConstraints{})
	if err == nil || !strings.Contains(err.Error(), "no choices") {
		t.Fatalf("err = %v, want no choices error", err)
	}
}
