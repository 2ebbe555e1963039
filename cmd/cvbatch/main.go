package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/recluta/recluta-backend/constants"
	"github.com/recluta/recluta-backend/gen/ent"
	"github.com/recluta/recluta-backend/internal/common"
	"github.com/recluta/recluta-backend/internal/export"
	"github.com/recluta/recluta-backend/internal/extract"
	"github.com/recluta/recluta-backend/internal/llm"
	"github.com/recluta/recluta-backend/internal/llm/openai"
	"github.com/recluta/recluta-backend/internal/pipeline"
	repo "github.com/recluta/recluta-backend/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem      = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir        = flag.String("dir", "", "directory of CV files to analyze (required)")
		offerID    = flag.Int("offer", 0, "offer id to score against (required unless -inmem)")
		out        = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
		offerName  = flag.String("offer-name", "Local Batch Offer", "offer name (-inmem only)")
		city       = flag.String("city", "", "required city of residence (-inmem only)")
		ageRange   = flag.String("age-range", "18-65", "required age range (-inmem only)")
		gender     = flag.String("gender", "any", "required gender (-inmem only)")
		experience = flag.Int("experience", 0, "minimum years of experience (-inmem only)")
		skills     = flag.String("skills", "", "comma-separated requested skills (-inmem only)")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if !*inmem && *offerID <= 0 {
		printError("Error: --offer is required unless --inmem\n")
		os.Exit(1)
	}
	if *out == "" {
		parentDir := filepath.Dir(*dir)
		*out = filepath.Join(parentDir, "applications.xlsx")
	}

	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	if cfg.LLM.APIKey == "" {
		printError("Error: OPENAI_API_KEY is required\n")
		os.Exit(1)
	}

	var entc *ent.Client
	if *inmem {
		var err error
		entc, err = repo.OpenSQLite(ctx, logger)
		if err != nil {
			logger.Error("failed to open in-memory database", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := entc.Close(); err != nil {
				logger.Error("failed to close database", "error", err)
			}
		}()
	} else {
		var err error
		var pool *pgxpool.Pool
		entc, pool, err = repo.Open(ctx, repo.Config{
			DSN:             cfg.Database.DSN,
			MaxConns:        cfg.Database.MaxConns,
			MinConns:        cfg.Database.MinConns,
			MaxConnLifetime: cfg.Database.MaxConnLifetime,
			MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
			DialTimeout:     cfg.Database.DialTimeout,
		}, logger)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		defer func() {
			if err := entc.Close(); err != nil {
				logger.Error("failed to close database", "error", err)
			}
		}()
	}

	if *inmem {
		var skillList []string
		for _, s := range strings.Split(*skills, ",") {
			if s = strings.TrimSpace(s); s != "" {
				skillList = append(skillList, s)
			}
		}
		offer, err := entc.Offer.Create().
			SetCompanyID(1).
			SetName(*offerName).
			SetCity(*city).
			SetAgeRange(*ageRange).
			SetGender(*gender).
			SetExperienceYears(*experience).
			SetSkills(skillList).
			Save(ctx)
		if err != nil {
			logger.Error("failed to create offer", "error", err)
			os.Exit(1)
		}
		*offerID = offer.ID
		logger.Info("using offer", "id", offer.ID, "name", offer.Name)
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

	submissions, err := collectSubmissions(*dir)
	if err != nil {
		logger.Error("failed to scan directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	if len(submissions) == 0 {
		printError("Error: no CV files found under %s\n", *dir)
		os.Exit(1)
	}
	logger.Info("starting batch", "dir", *dir, "offer_id", *offerID, "files", len(submissions))

	start := time.Now()
	result, err := coordinator.ProcessBatch(ctx, *offerID, submissions)
	if err != nil {
		logger.Error("batch failed", "error", err)
		os.Exit(1)
	}

	exporter := export.NewService(recordsRepo, logger)
	xlsxBytes, err := exporter.ExportApplicationsXLSX(ctx, *offerID)
	if err != nil {
		logger.Error("failed to export applications", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	logger.Info("batch complete",
		"files", len(submissions),
		"scored", result.Scored,
		"failed", result.Failed,
		"elapsed_ms", time.Since(start).Milliseconds(),
		"output_file", *out)

	fmt.Printf("Batch analysis complete!\n")
	fmt.Printf("- Files analyzed: %d\n", len(submissions))
	fmt.Printf("- Scored: %d\n", result.Scored)
	fmt.Printf("- Failed: %d\n", result.Failed)
	fmt.Printf("- Output: %s\n", *out)
}

// collectSubmissions gathers supported CV files from dir, sorted by name.
func collectSubmissions(dir string) ([]pipeline.Submission, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var subs []pipeline.Submission
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := constants.NormalizeExt(filepath.Ext(e.Name()))
		if _, ok := constants.AllowedExtensions[ext]; !ok {
			continue
		}
		path := filepath.Join(dir, e.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		subs = append(subs, pipeline.Submission{
			Filename:  e.Name(),
			URL:       path,
			Extension: ext,
			Content:   content,
		})
	}
	sort.Slice(subs, func(i, j int) bool { return subs[i].Filename < subs[j].Filename })
	return subs, nil
}
