package llm

import (
	"strings"
	"testing"
)

func TestBuildSystemPrompt_MandatoryVariableOrder(t *testing.T) {
	c := OfferConstraints{
		City:            "Bogotá",
		AgeRange:        "25-35",
		Gender:          "any",
		ExperienceYears: 3,
		Skills:          []string{"go", "sql"},
	}
	sys := BuildSystemPrompt(c, DefaultScoreWeights())

	city := strings.Index(sys, "1. City")
	age := strings.Index(sys, "2. Age")
	gender := strings.Index(sys, "3. Gender")
	exp := strings.Index(sys, "4. Experience")
	if city < 0 || age < 0 || gender < 0 || exp < 0 {
		t.Fatalf("missing mandatory variable lines in prompt:\n%s", sys)
	}
	if !(city < age && age < gender && gender < exp) {
		t.Errorf("mandatory variables out of order: city=%d age=%d gender=%d exp=%d", city, age, gender, exp)
	}
	if !strings.Contains(sys, "Bogotá") {
		t.Errorf("prompt is missing the offer city")
	}
	if !strings.Contains(sys, "go, sql") {
		t.Errorf("prompt is missing the requested skills")
	}
	if !strings.Contains(sys, "0.50*H + 0.30*E + 0.20*T") {
		t.Errorf("prompt is missing the score equation, got:\n%s", sys)
	}
	if !strings.Contains(sys, `"candidates"`) {
		t.Errorf("prompt does not pin the response list key")
	}
}

func TestBuildUserPrompt_PositionalLabels(t *testing.T) {
	user := BuildUserPrompt([]string{"cv one", "cv two", "cv three"})

	for _, label := range []string{"### Candidate #1 ###", "### Candidate #2 ###", "### Candidate #3 ###"} {
		if !strings.Contains(user, label) {
			t.Errorf("user prompt missing label %q", label)
		}
	}
	if strings.Index(user, "cv one") > strings.Index(user, "cv two") {
		t.Errorf("candidate texts out of order")
	}
}

func TestBuildCandidateJSONSchema_Required(t *testing.T) {
	schema := BuildCandidateJSONSchema()
	req, ok := schema["required"].([]string)
	if !ok {
		t.Fatalf("required is %T, want []string", schema["required"])
	}
	want := map[string]bool{"full_name": true, "score": true, "status": true}
	if len(req) != len(want) {
		t.Fatalf("required = %v", req)
	}
	for _, f := range req {
		if !want[f] {
			t.Errorf("unexpected required field %q", f)
		}
	}
}
