package utils

import (
	"github.com/recluta/recluta-backend/constants"
	"github.com/recluta/recluta-backend/gen/ent"
	"github.com/recluta/recluta-backend/internal/entity"
)

func ToCVRecord(r *ent.CVRecord) *entity.CVRecord {
	return &entity.CVRecord{
		ID:               r.ID,
		CompanyID:        r.CompanyID,
		URL:              r.URL,
		Extension:        r.Extension,
		CVText:           r.CvText,
		CandidateName:    r.CandidateName,
		CandidateDNI:     r.CandidateDni,
		CandidateDNIType: r.CandidateDniType,
		CandidateCity:    r.CandidateCity,
		CandidatePhone:   r.CandidatePhone,
		CandidateMail:    r.CandidateMail,
		BackgroundCheck:  r.BackgroundCheck,
		BackgroundDate:   r.BackgroundDate,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func ToOffer(o *ent.Offer) *entity.Offer {
	return &entity.Offer{
		ID:              o.ID,
		CompanyID:       o.CompanyID,
		Name:            o.Name,
		City:            o.City,
		AgeRange:        o.AgeRange,
		Gender:          o.Gender,
		ExperienceYears: o.ExperienceYears,
		Skills:          o.Skills,
		Active:          o.Active,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func ToApplication(a *ent.OfferApplication) *entity.OfferApplication {
	return &entity.OfferApplication{
		ID:            a.ID,
		CVRecordID:    a.CvRecordID,
		OfferID:       a.OfferID,
		Status:        constants.ApplicationStatus(a.Status),
		AIResponse:    a.AiResponse,
		ResponseScore: a.ResponseScore,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}
