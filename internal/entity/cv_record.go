package entity

import "time"

// CVRecord represents an ingested CV for data transfer between layers.
type CVRecord struct {
	ID               int        `json:"id"`
	CompanyID        int        `json:"company_id"`
	URL              string     `json:"url"`
	Extension        string     `json:"extension"`
	CVText           *string    `json:"cv_text,omitempty"`
	CandidateName    *string    `json:"candidate_name,omitempty"`
	CandidateDNI     *string    `json:"candidate_dni,omitempty"`
	CandidateDNIType *string    `json:"candidate_dni_type,omitempty"`
	CandidateCity    *string    `json:"candidate_city,omitempty"`
	CandidatePhone   *string    `json:"candidate_phone,omitempty"`
	CandidateMail    *string    `json:"candidate_mail,omitempty"`
	BackgroundCheck  *string    `json:"background_check,omitempty"`
	BackgroundDate   *time.Time `json:"background_date,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
