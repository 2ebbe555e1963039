package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/recluta/recluta-backend/internal/entity"
	"github.com/recluta/recluta-backend/internal/extract"
	"github.com/recluta/recluta-backend/internal/llm"
	"github.com/recluta/recluta-backend/internal/repository"
)

// Submission is one uploaded CV entering a batch: the stored object's URL
// plus the raw file content to extract from.
type Submission struct {
	Filename  string
	URL       string
	Extension string
	Content   []byte
}

// BatchResult summarizes one processed batch.
type BatchResult struct {
	Pairs  []repository.CreatedPair
	Scored int
	Failed int
}

// TextExtractor is the extraction stage the coordinator depends on.
// *extract.Extractor is the production implementation.
type TextExtractor interface {
	Extract(ctx context.Context, content []byte, ext string) (extract.Result, error)
}

// Coordinator drives the two-phase batch analysis: extract-and-create in one
// transaction, then score-and-update in a second. Extraction runs
// sequentially per file; rollback stays simple because each phase commits
// whole or not at all.
type Coordinator struct {
	logger    *slog.Logger
	extractor TextExtractor
	scorer    llm.BatchScorer
	store     repository.BatchStore
	offers    repository.OfferRepository
}

func NewCoordinator(logger *slog.Logger, extractor TextExtractor, scorer llm.BatchScorer, store repository.BatchStore, offers repository.OfferRepository) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{
		logger:    logger,
		extractor: extractor,
		scorer:    scorer,
		store:     store,
		offers:    offers,
	}
}

// ProcessBatch analyzes all submissions against one offer.
//
// Phase 1 extracts text from every file, then persists all CVRecords and
// their pending applications in a single transaction. An unsupported file
// format aborts before anything is written; an extraction engine failure
// does not — its record carries the failure text instead.
//
// Phase 2 scores the whole batch in one model call and applies every
// per-candidate update in a second transaction. A whole-batch scoring
// failure triggers the compensating error_processing sweep and surfaces
// the error.
func (c *Coordinator) ProcessBatch(ctx context.Context, offerID int, submissions []Submission) (*BatchResult, error) {
	if len(submissions) == 0 {
		return &BatchResult{}, nil
	}

	offer, err := c.offers.GetByID(ctx, offerID)
	if err != nil {
		return nil, fmt.Errorf("load offer %d: %w", offerID, err)
	}

	// Phase 1: extract sequentially, then commit the whole batch at once.
	records := make([]repository.NewRecord, 0, len(submissions))
	texts := make([]string, 0, len(submissions))
	for _, sub := range submissions {
		res, err := c.extractor.Extract(ctx, sub.Content, sub.Extension)
		if err != nil {
			// unsupported format: nothing persisted yet, abort the batch
			c.logger.Error("batch.extract.rejected", "filename", sub.Filename, "error", err)
			return nil, err
		}
		if res.Failed() {
			c.logger.Warn("batch.extract.degraded", "filename", sub.Filename, "failure", res.Failure)
		} else {
			c.logger.Info("batch.extract.ok",
				"filename", sub.Filename,
				"method", res.Method,
				"pages", res.Pages,
				"text_len", len(res.Text),
			)
		}
		records = append(records, repository.NewRecord{
			CompanyID: offer.CompanyID,
			URL:       sub.URL,
			Extension: sub.Extension,
			CVText:    res.Body(),
		})
		texts = append(texts, res.Body())
	}

	pairs, err := c.store.CreateBatch(ctx, offerID, records)
	if err != nil {
		return nil, fmt.Errorf("persist batch: %w", err)
	}

	// Phase 2: one scoring call for the whole batch.
	results, _, err := c.scorer.ScoreBatch(ctx, texts, constraintsFor(offer))
	if err != nil {
		c.logger.Error("batch.score.failed", "offer_id", offerID, "error", err)
		c.sweep(ctx, pairs)
		return nil, err
	}

	updates := buildUpdates(pairs, results)
	if err := c.store.ApplyScoring(ctx, updates); err != nil {
		c.logger.Error("batch.persist_scoring.failed", "offer_id", offerID, "error", err)
		c.sweep(ctx, pairs)
		return nil, err
	}

	out := &BatchResult{Pairs: pairs}
	for _, u := range updates {
		if u.Failed {
			out.Failed++
		} else {
			out.Scored++
		}
	}
	c.logger.Info("batch.done",
		"offer_id", offerID,
		"records", len(pairs),
		"scored", out.Scored,
		"failed", out.Failed,
	)
	return out, nil
}

// buildUpdates zips scoring results back onto the created pairs by position.
// A slot that is invalid, or missing because the reply came back short, fails
// that one application only.
func buildUpdates(pairs []repository.CreatedPair, results []llm.CandidateResult) []repository.ScoringUpdate {
	updates := make([]repository.ScoringUpdate, len(pairs))
	for i, pair := range pairs {
		u := repository.ScoringUpdate{
			CVRecordID:    pair.CVRecordID,
			ApplicationID: pair.ApplicationID,
		}
		if i >= len(results) || !results[i].OK() {
			u.Failed = true
			updates[i] = u
			continue
		}
		score := results[i].Score
		u.CandidateName = score.FullName
		u.CandidateDNI = score.DocumentNumber
		u.CandidateDNIType = score.DocumentType
		u.CandidateCity = score.City
		u.CandidatePhone = score.Phone
		u.CandidateMail = score.Email
		u.RawResponse = string(results[i].Raw)
		u.Score = score.Score
		updates[i] = u
	}
	return updates
}

func (c *Coordinator) sweep(ctx context.Context, pairs []repository.CreatedPair) {
	ids := make([]int, len(pairs))
	for i, p := range pairs {
		ids[i] = p.ApplicationID
	}
	if err := c.store.SweepProcessingError(ctx, ids); err != nil {
		c.logger.Error("batch.sweep.failed", "applications", len(ids), "error", err)
	}
}

func constraintsFor(offer *entity.Offer) llm.OfferConstraints {
	return llm.OfferConstraints{
		City:            offer.City,
		AgeRange:        offer.AgeRange,
		Gender:          offer.Gender,
		ExperienceYears: offer.ExperienceYears,
		Skills:          offer.Skills,
	}
}
