package llm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/recluta/recluta-backend/internal/common"
)

func candidateJSON(name string, score float64, status string) string {
	return fmt.Sprintf(`{"full_name":%q,"score":%v,"status":%q}`, name, score, status)
}

func TestParseBatchResponse_OK(t *testing.T) {
	raw := []byte(`{"candidates":[` +
		candidateJSON("Ana Ruiz", 8.5, CandidateApt) + `,` +
		candidateJSON("Luis Vega", 3.1, CandidateNotApt) + `]}`)

	results, err := ParseBatchResponse(raw, 2)
	if err != nil {
		t.Fatalf("ParseBatchResponse: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if !results[0].OK() || results[0].Score.FullName != "Ana Ruiz" || results[0].Score.Score != 8.5 {
		t.Errorf("slot 0 = %+v, want Ana Ruiz / 8.5", results[0])
	}
	if !results[1].OK() || results[1].Score.Status != CandidateNotApt {
		t.Errorf("slot 1 = %+v, want not_apt", results[1])
	}
}

func TestParseBatchResponse_RepairsEmbeddedNewlines(t *testing.T) {
	// A raw newline inside a string value is not legal JSON; one repair
	// attempt strips newlines and the document parses.
	raw := []byte("{\"candidates\":[{\"full_name\":\"Ana\nRuiz\",\"score\":7,\"status\":\"apt\"}]}")

	results, err := ParseBatchResponse(raw, 1)
	if err != nil {
		t.Fatalf("ParseBatchResponse after repair: %v", err)
	}
	if !results[0].OK() {
		t.Fatalf("slot 0 invalid after repair: %s", results[0].Invalid)
	}
	if results[0].Score.FullName != "AnaRuiz" {
		t.Errorf("full_name = %q, want newline stripped", results[0].Score.FullName)
	}
}

func TestParseBatchResponse_SecondFailureIsBatchFatal(t *testing.T) {
	for _, raw := range []string{
		"not json at all",
		`{"results":[]}`, // wrong envelope key
	} {
		_, err := ParseBatchResponse([]byte(raw), 1)
		if !errors.Is(err, common.ErrResponseParse) {
			t.Errorf("ParseBatchResponse(%q) err = %v, want ErrResponseParse", raw, err)
		}
	}
}

func TestParseBatchResponse_ShortReplyLeavesTailUnscored(t *testing.T) {
	raw := []byte(`{"candidates":[` + candidateJSON("Solo", 5, CandidateApt) + `]}`)

	results, err := ParseBatchResponse(raw, 3)
	if err != nil {
		t.Fatalf("ParseBatchResponse: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results for a short reply, want 1", len(results))
	}
}

func TestParseBatchResponse_ExcessEntriesTruncated(t *testing.T) {
	raw := []byte(`{"candidates":[` +
		candidateJSON("One", 1, CandidateApt) + `,` +
		candidateJSON("Two", 2, CandidateApt) + `,` +
		candidateJSON("Three", 3, CandidateApt) + `]}`)

	results, err := ParseBatchResponse(raw, 2)
	if err != nil {
		t.Fatalf("ParseBatchResponse: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want truncation to 2", len(results))
	}
}

func TestParseBatchResponse_InvalidCandidateDoesNotFailSiblings(t *testing.T) {
	raw := []byte(`{"candidates":[` +
		candidateJSON("Good", 6, CandidateApt) + `,` +
		`{"full_name":"Missing Score","status":"apt"},` + // fails required: score
		`{"full_name":"Bad Status","score":4,"status":"maybe"}]}`) // fails enum

	results, err := ParseBatchResponse(raw, 3)
	if err != nil {
		t.Fatalf("ParseBatchResponse: %v", err)
	}
	if !results[0].OK() {
		t.Errorf("slot 0 should survive invalid siblings: %s", results[0].Invalid)
	}
	if results[1].OK() || results[1].Invalid == "" {
		t.Errorf("slot 1 should be invalid, got %+v", results[1])
	}
	if results[2].OK() {
		t.Errorf("slot 2 should be invalid, got %+v", results[2])
	}
	if results[1].Raw == nil {
		t.Errorf("invalid slot should keep its raw payload")
	}
}
