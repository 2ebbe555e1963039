package server

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/recluta/recluta-backend/constants"
	reclutav1 "github.com/recluta/recluta-backend/gen/proto/recluta/v1"
	"github.com/recluta/recluta-backend/internal/common"
	"github.com/recluta/recluta-backend/internal/pipeline"
)

func (s *RecruitmentServer) ProcessCVBatch(ctx context.Context, req *reclutav1.ProcessCVBatchRequest) (*reclutav1.ProcessCVBatchResponse, error) {
	offerID := int(req.GetOfferId())
	if offerID <= 0 {
		return nil, status.Error(codes.InvalidArgument, "offer_id is required")
	}
	if len(req.GetFiles()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "at least one file is required")
	}

	rid := uuid.New().String()
	ctx = common.WithRequestID(ctx, rid)
	s.logger.Info("batch.request", "req_id", rid, "offer_id", offerID, "files", len(req.GetFiles()))

	submissions := make([]pipeline.Submission, 0, len(req.GetFiles()))
	for _, f := range req.GetFiles() {
		name := strings.TrimSpace(f.GetFilename())
		if name == "" {
			return nil, status.Error(codes.InvalidArgument, "every file needs a filename")
		}
		ext := constants.NormalizeExt(filepath.Ext(name))
		if _, ok := constants.AllowedExtensions[ext]; !ok {
			return nil, status.Errorf(codes.InvalidArgument, "unsupported file format %q", ext)
		}
		if len(f.GetContent()) == 0 {
			return nil, status.Errorf(codes.InvalidArgument, "file %q is empty", name)
		}

		key := fmt.Sprintf("cv/%d/%s/%s", offerID, rid, name)
		url, err := s.store.Upload(ctx, key, f.GetContent(), contentTypeFor(ext))
		if err != nil {
			s.logger.Error("batch.upload.failed", "req_id", rid, "filename", name, "error", err)
			return nil, status.Error(codes.Internal, "file upload failed")
		}

		submissions = append(submissions, pipeline.Submission{
			Filename:  name,
			URL:       url,
			Extension: ext,
			Content:   f.GetContent(),
		})
	}

	res, err := s.coordinator.ProcessBatch(ctx, offerID, submissions)
	if err != nil {
		s.logger.Error("batch.failed", "req_id", rid, "offer_id", offerID, "error", err)
		if errors.Is(err, common.ErrUnsupportedFormat) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		return nil, status.Error(codes.Internal, "batch analysis failed")
	}

	outcomes := make([]*reclutav1.ApplicationOutcome, len(res.Pairs))
	for i, p := range res.Pairs {
		outcomes[i] = &reclutav1.ApplicationOutcome{
			CvRecordId:    int32(p.CVRecordID),
			ApplicationId: int32(p.ApplicationID),
		}
	}
	return &reclutav1.ProcessCVBatchResponse{
		Outcomes: outcomes,
		Scored:   int32(res.Scored),
		Failed:   int32(res.Failed),
	}, nil
}

func contentTypeFor(ext string) string {
	switch ext {
	case "pdf":
		return "application/pdf"
	case "docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case "doc":
		return "application/msword"
	default:
		return "application/octet-stream"
	}
}
