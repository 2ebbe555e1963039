package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	reclutav1 "github.com/recluta/recluta-backend/gen/proto/recluta/v1"
	"github.com/recluta/recluta-backend/internal/async"
	"github.com/recluta/recluta-backend/internal/bgcheck"
	"github.com/recluta/recluta-backend/internal/common"
	"github.com/recluta/recluta-backend/internal/export"
	"github.com/recluta/recluta-backend/internal/extract"
	"github.com/recluta/recluta-backend/internal/llm"
	"github.com/recluta/recluta-backend/internal/llm/openai"
	"github.com/recluta/recluta-backend/internal/pipeline"
	repo "github.com/recluta/recluta-backend/internal/repository"
	svc "github.com/recluta/recluta-backend/internal/server"
	"github.com/recluta/recluta-backend/internal/storage"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	offersRepo := repo.NewOfferRepository(entc, logger)
	recordsRepo := repo.NewCVRecordRepository(entc, logger)
	batchStore := repo.NewBatchStore(entc, logger)

	extractor := extract.NewExtractor(extract.Config{
		Pdftotext:     cfg.Extract.Pdftotext,
		Pdftoppm:      cfg.Extract.Pdftoppm,
		Tesseract:     cfg.Extract.Tesseract,
		TesseractLang: cfg.Extract.TesseractLang,
		DPI:           cfg.Extract.DPI,
		MaxPages:      cfg.Extract.MaxPages,
	}, logger)

	scorer := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
		Weights: llm.ScoreWeights{
			Skills:     cfg.LLM.SkillsWeight,
			Experience: cfg.LLM.ExperienceWeight,
			Tenure:     cfg.LLM.TenureWeight,
		},
	}, logger)

	coordinator := pipeline.NewCoordinator(logger, extractor, scorer, batchStore, offersRepo)

	objectStore, err := storage.NewMinioStore(storage.Config{
		Endpoint:  cfg.Storage.Endpoint,
		Bucket:    cfg.Storage.Bucket,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		UseSSL:    cfg.Storage.UseSSL,
	}, logger)
	if err != nil {
		logger.Error("failed to initialize object storage", "error", err)
		os.Exit(1)
	}

	checksClient := bgcheck.NewClient(bgcheck.Config{
		BaseURL:  cfg.BackgroundCheck.BaseURL,
		Username: cfg.BackgroundCheck.Username,
		Secret:   cfg.BackgroundCheck.Secret,
	}, logger)
	poller := bgcheck.NewPoller(checksClient, recordsRepo, logger)
	queue := async.NewCheckQueue(
		func(ctx context.Context, jobID string, cvRecordID int) error {
			return poller.Poll(ctx, jobID, cvRecordID, cfg.BackgroundCheck.Interval, cfg.BackgroundCheck.MaxAttempts)
		},
		logger,
		async.WithWorkers(cfg.BackgroundCheck.Workers),
		async.WithQueueSize(512),
		async.WithJobTimeout(time.Duration(cfg.BackgroundCheck.MaxAttempts+1)*cfg.BackgroundCheck.Interval+time.Minute),
	)

	exporter := export.NewService(recordsRepo, logger)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	recruitmentService := svc.NewRecruitmentServer(coordinator, recordsRepo, objectStore, queue, exporter, logger)
	reclutav1.RegisterRecruitmentServiceServer(grpcServer, recruitmentService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("reclutad listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
