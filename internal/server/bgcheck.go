package server

import (
	"context"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	reclutav1 "github.com/recluta/recluta-backend/gen/proto/recluta/v1"
	"github.com/recluta/recluta-backend/internal/async"
)

func (s *RecruitmentServer) StartBackgroundCheck(ctx context.Context, req *reclutav1.StartBackgroundCheckRequest) (*reclutav1.StartBackgroundCheckResponse, error) {
	jobID := strings.TrimSpace(req.GetJobId())
	if jobID == "" {
		return nil, status.Error(codes.InvalidArgument, "job_id is required")
	}
	cvRecordID := int(req.GetCvRecordId())
	if cvRecordID <= 0 {
		return nil, status.Error(codes.InvalidArgument, "cv_record_id is required")
	}

	// Reject unknown records before enqueueing so the caller hears about it.
	if _, err := s.records.GetByID(ctx, cvRecordID); err != nil {
		s.logger.Error("bgcheck.start.unknown_record", "cv_record_id", cvRecordID, "error", err)
		return nil, status.Errorf(codes.NotFound, "cv record %d not found", cvRecordID)
	}

	err := s.checks.Enqueue(ctx, async.CheckJob{
		JobID:       jobID,
		CVRecordID:  cvRecordID,
		SubmittedAt: time.Now(),
	})
	if err != nil {
		s.logger.Error("bgcheck.start.enqueue_failed", "job_id", jobID, "error", err)
		return nil, status.Error(codes.Internal, "could not queue background check")
	}

	s.logger.Info("bgcheck.start.queued", "job_id", jobID, "cv_record_id", cvRecordID)
	return &reclutav1.StartBackgroundCheckResponse{Queued: true}, nil
}
