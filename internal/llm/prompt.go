package llm

import (
	"fmt"
	"strings"
)

// ResponseListKey is the fixed key the candidate list must appear under in the
// model reply.
const ResponseListKey = "candidates"

// BuildSystemPrompt composes the recruiter-evaluator system message: the four
// mandatory disqualification variables in their fixed comparison order, the
// requested skills, the score equation, and strict JSON-only formatting rules.
func BuildSystemPrompt(constraints OfferConstraints, weights ScoreWeights) string {
	skills := strings.Join(constraints.Skills, ", ")
	if skills == "" {
		skills = "none specified"
	}

	parts := []string{
		"You are an expert in recruitment and résumé analysis. Evaluate every candidate CV against the offer variables and return ONLY JSON.",

		// Mandatory variables. The comparison order is part of the contract.
		"Mandatory variables: a candidate failing any of these four is marked 'not_apt' in the 'status' field regardless of score. Compare them in this exact order:",
		fmt.Sprintf("1. City: required city of residence = %s.", constraints.City),
		fmt.Sprintf("2. Age: required age range = %s.", constraints.AgeRange),
		fmt.Sprintf("3. Gender: required gender = %s.", constraints.Gender),
		fmt.Sprintf("4. Experience: minimum total work experience in years = %d.", constraints.ExperienceYears),

		"Requested skills (scoring only, never disqualification): " + skills + ".",

		// Score equation. H/E/T each on a 0-10 scale.
		fmt.Sprintf("Score = %.2f*H + %.2f*E + %.2f*T, where H is the skill match between requested and found skills (0-10), E is total years of experience normalized to 0-10, and T is the average tenure per role in months normalized to 0-10.",
			weights.Skills, weights.Experience, weights.Tenure),

		"For each candidate extract: full name, document type, document number, city of residence, found skills, matched vs requested skills, gender, phone, email, score, years of experience, average tenure per role in months, education level, and age.",

		"Look explicitly for words or phrases in the CV text that indicate technical or soft skills before filling 'skills_found' and 'skills_matched'.",

		fmt.Sprintf("Return a single JSON object with the key %q holding one entry per candidate, in the same order the candidates appear in the input. Do not add commentary.", ResponseListKey),
		"Never output null. If a field is not present, omit it.",
	}
	return strings.Join(parts, "\n")
}

// BuildUserPrompt labels every candidate text by position. The model must
// answer in the same order; responses are zipped back index-for-index.
func BuildUserPrompt(texts []string) string {
	var b strings.Builder
	b.WriteString("CV texts to evaluate:\n")
	for i, t := range texts {
		fmt.Fprintf(&b, "\n### Candidate #%d ###\n", i+1)
		b.WriteString(t)
		b.WriteString("\n")
	}
	return b.String()
}

// BuildCandidateJSONSchema returns the per-candidate JSON Schema
// (draft 2020-12 subset) as a generic map.
func BuildCandidateJSONSchema() map[string]any {
	props := map[string]any{
		"full_name":        map[string]any{"type": "string"},
		"document_type":    map[string]any{"type": "string"},
		"document_number":  map[string]any{"type": "string"},
		"city":             map[string]any{"type": "string"},
		"skills_found":     map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"skills_requested": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"skills_matched":   map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"gender":           map[string]any{"type": "string"},
		"phone":            map[string]any{"type": "string"},
		"email":            map[string]any{"type": "string"},
		"score":            map[string]any{"type": "number", "minimum": 0.0, "maximum": 10.0},
		"years_experience": map[string]any{"type": "number", "minimum": 0.0},
		"avg_tenure_months": map[string]any{
			"type": "number", "minimum": 0.0,
		},
		"education_level": map[string]any{"type": "string"},
		"age":             map[string]any{"type": "integer", "minimum": 0},
		"status":          map[string]any{"type": "string", "enum": []string{CandidateApt, CandidateNotApt}},
	}

	return map[string]any{
		"type":       "object",
		"properties": props,
		"required":   []string{"full_name", "score", "status"},
	}
}
