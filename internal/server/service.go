package server

import (
	"log/slog"

	reclutav1 "github.com/recluta/recluta-backend/gen/proto/recluta/v1"
	"github.com/recluta/recluta-backend/internal/async"
	"github.com/recluta/recluta-backend/internal/export"
	"github.com/recluta/recluta-backend/internal/pipeline"
	"github.com/recluta/recluta-backend/internal/repository"
	"github.com/recluta/recluta-backend/internal/storage"
)

// RecruitmentServer is the gRPC face of the platform: batch analysis,
// application listing, background checks and export.
type RecruitmentServer struct {
	reclutav1.UnimplementedRecruitmentServiceServer

	coordinator *pipeline.Coordinator
	records     repository.CVRecordRepository
	store       storage.ObjectStore
	checks      async.Queue
	exporter    *export.Service
	logger      *slog.Logger
}

func NewRecruitmentServer(
	coordinator *pipeline.Coordinator,
	records repository.CVRecordRepository,
	store storage.ObjectStore,
	checks async.Queue,
	exporter *export.Service,
	logger *slog.Logger,
) *RecruitmentServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &RecruitmentServer{
		coordinator: coordinator,
		records:     records,
		store:       store,
		checks:      checks,
		exporter:    exporter,
		logger:      logger,
	}
}
