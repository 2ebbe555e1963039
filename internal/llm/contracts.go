package llm

import "context"

// OfferConstraints carries the offer-side variables for one scoring batch.
// City, age range, gender and experience are the mandatory disqualification
// variables; Skills feed the score only, never disqualification.
type OfferConstraints struct {
	City            string   `json:"city"`
	AgeRange        string   `json:"age_range"`
	Gender          string   `json:"gender"`
	ExperienceYears int      `json:"experience_years"`
	Skills          []string `json:"skills"`
}

// ScoreWeights are the tunable weights of the skill/experience/tenure score.
type ScoreWeights struct {
	Skills     float64
	Experience float64
	Tenure     float64
}

// DefaultScoreWeights returns the weights used when configuration leaves them unset.
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{Skills: 0.5, Experience: 0.3, Tenure: 0.2}
}

// Candidate status labels emitted by the model.
const (
	CandidateApt    = "apt"
	CandidateNotApt = "not_apt"
)

// CandidateScore is the normalized per-candidate shape we want from the model.
type CandidateScore struct {
	FullName        string   `json:"full_name"`
	DocumentType    string   `json:"document_type,omitempty"`
	DocumentNumber  string   `json:"document_number,omitempty"`
	City            string   `json:"city,omitempty"`
	SkillsFound     []string `json:"skills_found,omitempty"`
	SkillsRequested []string `json:"skills_requested,omitempty"`
	SkillsMatched   []string `json:"skills_matched,omitempty"`
	Gender          string   `json:"gender,omitempty"`
	Phone           string   `json:"phone,omitempty"`
	Email           string   `json:"email,omitempty"`
	Score           float64  `json:"score"`
	YearsExperience float64  `json:"years_experience,omitempty"`
	AvgTenureMonths float64  `json:"avg_tenure_months,omitempty"`
	EducationLevel  string   `json:"education_level,omitempty"`
	Age             int      `json:"age,omitempty"`
	Status          string   `json:"status"`
}

// CandidateResult is one positional slot of a batch response: either a usable
// score or the reason this slot failed to parse. An invalid slot never fails
// its siblings.
type CandidateResult struct {
	Score   *CandidateScore
	Raw     []byte
	Invalid string
}

// OK reports whether the slot carries a usable score.
func (r CandidateResult) OK() bool { return r.Invalid == "" && r.Score != nil }

// BatchScorer is the interface the pipeline depends on: one stateless call
// scoring all candidate texts of a batch against the offer constraints.
type BatchScorer interface {
	ScoreBatch(ctx context.Context, texts []string, constraints OfferConstraints) ([]CandidateResult, []byte, error)
}
