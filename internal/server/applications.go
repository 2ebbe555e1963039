package server

import (
	"context"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	reclutav1 "github.com/recluta/recluta-backend/gen/proto/recluta/v1"
	"github.com/recluta/recluta-backend/internal/entity"
)

func (s *RecruitmentServer) ListApplications(ctx context.Context, req *reclutav1.ListApplicationsRequest) (*reclutav1.ListApplicationsResponse, error) {
	offerID := int(req.GetOfferId())
	if offerID <= 0 {
		return nil, status.Error(codes.InvalidArgument, "offer_id is required")
	}

	rows, err := s.records.ListApplications(ctx, offerID)
	if err != nil {
		s.logger.Error("applications.list.failed", "offer_id", offerID, "error", err)
		return nil, status.Error(codes.Internal, "list applications failed")
	}

	out := make([]*reclutav1.Application, len(rows))
	for i, r := range rows {
		out[i] = toPBApplication(r)
	}
	return &reclutav1.ListApplicationsResponse{Applications: out}, nil
}

func toPBApplication(r *entity.ApplicationRow) *reclutav1.Application {
	app := &reclutav1.Application{
		Id:               int32(r.Application.ID),
		CvRecordId:       int32(r.Application.CVRecordID),
		OfferId:          int32(r.Application.OfferID),
		Status:           string(r.Application.Status),
		CandidateName:    strOrEmpty(r.CVRecord.CandidateName),
		CandidateDni:     strOrEmpty(r.CVRecord.CandidateDNI),
		CandidateDniType: strOrEmpty(r.CVRecord.CandidateDNIType),
		CandidateCity:    strOrEmpty(r.CVRecord.CandidateCity),
		CandidatePhone:   strOrEmpty(r.CVRecord.CandidatePhone),
		CandidateMail:    strOrEmpty(r.CVRecord.CandidateMail),
		BackgroundCheck:  strOrEmpty(r.CVRecord.BackgroundCheck),
		CvUrl:            r.CVRecord.URL,
		CreatedAt:        r.Application.CreatedAt.UTC().Format(time.RFC3339),
	}
	if r.Application.ResponseScore != nil {
		app.Score = *r.Application.ResponseScore
	}
	if r.CVRecord.BackgroundDate != nil {
		app.BackgroundDate = r.CVRecord.BackgroundDate.UTC().Format(time.RFC3339)
	}
	return app
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
