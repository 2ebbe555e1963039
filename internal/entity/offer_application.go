package entity

import (
	"time"

	"github.com/recluta/recluta-backend/constants"
)

// OfferApplication represents one CVRecord applied against one Offer.
type OfferApplication struct {
	ID            int                         `json:"id"`
	CVRecordID    int                         `json:"cv_record_id"`
	OfferID       int                         `json:"offer_id"`
	Status        constants.ApplicationStatus `json:"status"`
	AIResponse    *string                     `json:"ai_response,omitempty"`
	ResponseScore *float64                    `json:"response_score,omitempty"`
	CreatedAt     time.Time                   `json:"created_at"`
	UpdatedAt     time.Time                   `json:"updated_at"`
}

// ApplicationRow is the joined view of an application and its CV record,
// used for listing and export.
type ApplicationRow struct {
	Application OfferApplication `json:"application"`
	CVRecord    CVRecord         `json:"cv_record"`
}
