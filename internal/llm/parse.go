package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/recluta/recluta-backend/internal/common"
)

type batchEnvelope struct {
	Candidates []json.RawMessage `json:"candidates"`
}

// ParseBatchResponse parses the raw model reply for a batch of n candidates.
//
// The reply must be a single JSON document with the candidate list under
// ResponseListKey. A literal parse failure gets exactly one repair attempt
// (strip embedded newlines); a second failure fails the whole batch with
// common.ErrResponseParse. Individual candidates that fail schema validation
// become invalid slots without affecting their siblings. Matching is
// positional: slot i belongs to input candidate i, and a reply shorter than n
// leaves the tail unscored.
func ParseBatchResponse(raw []byte, n int) ([]CandidateResult, error) {
	env, err := decodeEnvelope(raw)
	if err != nil {
		// one repair attempt: models occasionally emit raw newlines inside
		// string values, which plain JSON decoding rejects
		repaired := bytes.ReplaceAll(raw, []byte("\n"), []byte(""))
		env, err = decodeEnvelope(repaired)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrResponseParse, err)
		}
	}

	items := env.Candidates
	if len(items) > n {
		items = items[:n]
	}

	schema, err := compileCandidateSchema()
	if err != nil {
		return nil, err
	}

	results := make([]CandidateResult, len(items))
	for i, item := range items {
		results[i] = parseCandidate(schema, item)
	}
	return results, nil
}

func decodeEnvelope(raw []byte) (batchEnvelope, error) {
	var env batchEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return batchEnvelope{}, err
	}
	if env.Candidates == nil {
		return batchEnvelope{}, fmt.Errorf("missing %q key", ResponseListKey)
	}
	return env, nil
}

func parseCandidate(schema *jsonschema.Schema, item json.RawMessage) CandidateResult {
	var v any
	if err := json.Unmarshal(item, &v); err != nil {
		return CandidateResult{Raw: item, Invalid: fmt.Sprintf("decode candidate: %v", err)}
	}
	if err := schema.Validate(v); err != nil {
		return CandidateResult{Raw: item, Invalid: fmt.Sprintf("candidate does not match schema: %v", err)}
	}
	var score CandidateScore
	if err := json.Unmarshal(item, &score); err != nil {
		return CandidateResult{Raw: item, Invalid: fmt.Sprintf("unmarshal candidate: %v", err)}
	}
	return CandidateResult{Score: &score, Raw: item}
}

func compileCandidateSchema() (*jsonschema.Schema, error) {
	b, err := json.Marshal(BuildCandidateJSONSchema())
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("candidate.json", bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("candidate.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}
