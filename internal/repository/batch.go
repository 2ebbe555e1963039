package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/recluta/recluta-backend/constants"
	"github.com/recluta/recluta-backend/gen/ent"
	"github.com/recluta/recluta-backend/gen/ent/offerapplication"
	"github.com/recluta/recluta-backend/internal/entity"
	"github.com/recluta/recluta-backend/internal/utils"
)

// ParsingErrorMarker is the fixed ai_response payload stored when one
// candidate's slot in a batch response cannot be parsed.
const ParsingErrorMarker = "Parsing error"

// NewRecord is one CV submission entering a batch: the uploaded file's
// location plus the extracted (possibly degraded) text.
type NewRecord struct {
	CompanyID int
	URL       string
	Extension string
	CVText    string
}

// CreatedPair is the persisted outcome of one NewRecord: the CVRecord and its
// pending OfferApplication, positionally aligned with the batch input.
type CreatedPair struct {
	CVRecordID    int
	ApplicationID int
}

// ScoringUpdate carries one candidate's scoring outcome back to storage.
// Failed=true stores the ParsingErrorMarker and moves the application to
// error_processing; otherwise the extracted fields land on the CVRecord, the
// raw response and score on the application, and status is re-written pending.
type ScoringUpdate struct {
	CVRecordID    int
	ApplicationID int
	Failed        bool

	CandidateName    string
	CandidateDNI     string
	CandidateDNIType string
	CandidateCity    string
	CandidatePhone   string
	CandidateMail    string

	RawResponse string
	Score       float64
}

// BatchStore groups the transactional persistence of one analysis batch.
// CreateBatch and ApplyScoring each run in their own transaction and roll
// back whole on any error. SweepProcessingError is the compensating sweep
// after a whole-batch failure and commits separately.
type BatchStore interface {
	CreateBatch(ctx context.Context, offerID int, records []NewRecord) ([]CreatedPair, error)
	ApplyScoring(ctx context.Context, updates []ScoringUpdate) error
	SweepProcessingError(ctx context.Context, applicationIDs []int) error
	// FindByComposite looks an application up by its (cv_record_id, offer_id)
	// composite key.
	FindByComposite(ctx context.Context, cvRecordID, offerID int) (*entity.OfferApplication, error)
}

type batchStore struct {
	client *ent.Client
	logger *slog.Logger
}

func NewBatchStore(client *ent.Client, logger *slog.Logger) BatchStore {
	return &batchStore{
		client: client,
		logger: logger,
	}
}

func (s *batchStore) CreateBatch(ctx context.Context, offerID int, records []NewRecord) ([]CreatedPair, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin batch transaction: %w", err)
	}

	pairs := make([]CreatedPair, 0, len(records))
	for _, rec := range records {
		cvRec, err := tx.CVRecord.Create().
			SetCompanyID(rec.CompanyID).
			SetURL(rec.URL).
			SetExtension(rec.Extension).
			SetCvText(rec.CVText).
			Save(ctx)
		if err != nil {
			return nil, s.rollback(tx, fmt.Errorf("create cv record: %w", err))
		}
		app, err := tx.OfferApplication.Create().
			SetCvRecordID(cvRec.ID).
			SetOfferID(offerID).
			SetStatus(string(constants.StatusPending)).
			Save(ctx)
		if err != nil {
			return nil, s.rollback(tx, fmt.Errorf("create application: %w", err))
		}
		pairs = append(pairs, CreatedPair{CVRecordID: cvRec.ID, ApplicationID: app.ID})
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit batch: %w", err)
	}
	s.logger.Info("batch created", "offer_id", offerID, "records", len(pairs))
	return pairs, nil
}

func (s *batchStore) ApplyScoring(ctx context.Context, updates []ScoringUpdate) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin scoring transaction: %w", err)
	}

	for _, u := range updates {
		if u.Failed {
			if err := s.applyFailure(ctx, tx, u); err != nil {
				return s.rollback(tx, err)
			}
			continue
		}
		if err := s.applySuccess(ctx, tx, u); err != nil {
			return s.rollback(tx, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit scoring: %w", err)
	}
	return nil
}

func (s *batchStore) applySuccess(ctx context.Context, tx *ent.Tx, u ScoringUpdate) error {
	builder := tx.CVRecord.UpdateOneID(u.CVRecordID)
	if u.CandidateName != "" {
		builder = builder.SetCandidateName(u.CandidateName)
	}
	if u.CandidateDNI != "" {
		builder = builder.SetCandidateDni(u.CandidateDNI)
	}
	if u.CandidateDNIType != "" {
		builder = builder.SetCandidateDniType(u.CandidateDNIType)
	}
	if u.CandidateCity != "" {
		builder = builder.SetCandidateCity(u.CandidateCity)
	}
	if u.CandidatePhone != "" {
		builder = builder.SetCandidatePhone(u.CandidatePhone)
	}
	if u.CandidateMail != "" {
		builder = builder.SetCandidateMail(u.CandidateMail)
	}
	if err := builder.Exec(ctx); err != nil {
		return fmt.Errorf("update cv record %d: %w", u.CVRecordID, err)
	}

	// A successful per-candidate update always re-writes pending: the verdict
	// lives in the scoring payload, not the status column.
	return s.transition(ctx, tx, u.ApplicationID, constants.StatusPending, func(up *ent.OfferApplicationUpdateOne) *ent.OfferApplicationUpdateOne {
		return up.SetAiResponse(u.RawResponse).SetResponseScore(u.Score)
	})
}

func (s *batchStore) applyFailure(ctx context.Context, tx *ent.Tx, u ScoringUpdate) error {
	return s.transition(ctx, tx, u.ApplicationID, constants.StatusErrorProcessing, func(up *ent.OfferApplicationUpdateOne) *ent.OfferApplicationUpdateOne {
		return up.SetAiResponse(ParsingErrorMarker)
	})
}

// transition enforces the status table before writing: the current status
// must legally reach next or the write is refused.
func (s *batchStore) transition(ctx context.Context, tx *ent.Tx, applicationID int, next constants.ApplicationStatus, mutate func(*ent.OfferApplicationUpdateOne) *ent.OfferApplicationUpdateOne) error {
	app, err := tx.OfferApplication.Get(ctx, applicationID)
	if err != nil {
		return fmt.Errorf("load application %d: %w", applicationID, err)
	}
	cur := constants.ApplicationStatus(app.Status)
	if !constants.CanTransition(cur, next) {
		return fmt.Errorf("illegal status transition %q -> %q for application %d", cur, next, applicationID)
	}
	up := tx.OfferApplication.UpdateOneID(applicationID).SetStatus(string(next))
	if mutate != nil {
		up = mutate(up)
	}
	if err := up.Exec(ctx); err != nil {
		return fmt.Errorf("update application %d: %w", applicationID, err)
	}
	return nil
}

// SweepProcessingError marks the given applications error_processing after a
// whole-batch failure, skipping any row whose status the sweep must not
// overwrite. Runs and commits as its own transaction.
func (s *batchStore) SweepProcessingError(ctx context.Context, applicationIDs []int) error {
	if len(applicationIDs) == 0 {
		return nil
	}
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin sweep transaction: %w", err)
	}

	apps, err := tx.OfferApplication.Query().
		Where(offerapplication.IDIn(applicationIDs...)).
		All(ctx)
	if err != nil {
		return s.rollback(tx, fmt.Errorf("load applications for sweep: %w", err))
	}
	swept := 0
	for _, app := range apps {
		if constants.SweepProtected(constants.ApplicationStatus(app.Status)) {
			continue
		}
		err := tx.OfferApplication.UpdateOneID(app.ID).
			SetStatus(string(constants.StatusErrorProcessing)).
			Exec(ctx)
		if err != nil {
			return s.rollback(tx, fmt.Errorf("sweep application %d: %w", app.ID, err))
		}
		swept++
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit sweep: %w", err)
	}
	s.logger.Warn("batch failure sweep committed", "applications", len(applicationIDs), "swept", swept)
	return nil
}

func (s *batchStore) rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		s.logger.Error("transaction rollback failed", "error", rerr)
	}
	return err
}

func (s *batchStore) FindByComposite(ctx context.Context, cvRecordID, offerID int) (*entity.OfferApplication, error) {
	app, err := s.client.OfferApplication.Query().
		Where(
			offerapplication.CvRecordID(cvRecordID),
			offerapplication.OfferID(offerID),
		).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToApplication(app), nil
}
