package server

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	reclutav1 "github.com/recluta/recluta-backend/gen/proto/recluta/v1"
	"github.com/recluta/recluta-backend/internal/common"
)

func (s *RecruitmentServer) ExportApplications(ctx context.Context, req *reclutav1.ExportApplicationsRequest) (*reclutav1.ExportApplicationsResponse, error) {
	offerID := int(req.GetOfferId())
	if offerID <= 0 {
		return nil, status.Error(codes.InvalidArgument, "offer_id is required")
	}

	xlsx, err := s.exporter.ExportApplicationsXLSX(ctx, offerID)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "offer_id", offerID, "error", err)
		return nil, common.InternalErrorf("export failed for offer %d", offerID)
	}
	return &reclutav1.ExportApplicationsResponse{Xlsx: xlsx}, nil
}
