package entity

import "time"

// Offer represents a job offer whose constraints feed the scoring prompt.
type Offer struct {
	ID              int       `json:"id"`
	CompanyID       int       `json:"company_id"`
	Name            string    `json:"name"`
	City            string    `json:"city"`
	AgeRange        string    `json:"age_range"`
	Gender          string    `json:"gender"`
	ExperienceYears int       `json:"experience_years"`
	Skills          []string  `json:"skills"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
