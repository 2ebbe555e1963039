package repository

import (
	"context"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/recluta/recluta-backend/gen/ent"
	"github.com/recluta/recluta-backend/gen/ent/cvrecord"
	"github.com/recluta/recluta-backend/gen/ent/offerapplication"
	"github.com/recluta/recluta-backend/internal/entity"
	"github.com/recluta/recluta-backend/internal/utils"
)

type CVRecordRepository interface {
	GetByID(ctx context.Context, id int) (*entity.CVRecord, error)
	// SaveBackgroundCheck persists the latest background-check finding and its
	// timestamp. Called once per polling attempt, so repeated writes with the
	// same finding are expected.
	SaveBackgroundCheck(ctx context.Context, cvRecordID int, finding string, checkedAt time.Time) error
	// ListApplications returns the joined application/CV view for one offer,
	// highest score first.
	ListApplications(ctx context.Context, offerID int) ([]*entity.ApplicationRow, error)
}

type cvRecordRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewCVRecordRepository(client *ent.Client, logger *slog.Logger) CVRecordRepository {
	return &cvRecordRepository{
		client: client,
		logger: logger,
	}
}

func (r *cvRecordRepository) GetByID(ctx context.Context, id int) (*entity.CVRecord, error) {
	rec, err := r.client.CVRecord.Get(ctx, id)
	if err != nil {
		r.logger.Error("failed to get cv record", "cv_record_id", id, "error", err)
		return nil, err
	}
	return utils.ToCVRecord(rec), nil
}

func (r *cvRecordRepository) SaveBackgroundCheck(ctx context.Context, cvRecordID int, finding string, checkedAt time.Time) error {
	err := r.client.CVRecord.UpdateOneID(cvRecordID).
		SetBackgroundCheck(finding).
		SetBackgroundDate(checkedAt).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to save background check", "cv_record_id", cvRecordID, "error", err)
		return err
	}
	return nil
}

func (r *cvRecordRepository) ListApplications(ctx context.Context, offerID int) ([]*entity.ApplicationRow, error) {
	apps, err := r.client.OfferApplication.Query().
		Where(offerapplication.OfferID(offerID)).
		Order(offerapplication.ByResponseScore(entsql.OrderDesc())).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list applications", "offer_id", offerID, "error", err)
		return nil, err
	}
	if len(apps) == 0 {
		return nil, nil
	}

	ids := make([]int, len(apps))
	for i, a := range apps {
		ids[i] = a.CvRecordID
	}
	recs, err := r.client.CVRecord.Query().
		Where(cvrecord.IDIn(ids...)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to load cv records for applications", "offer_id", offerID, "error", err)
		return nil, err
	}
	byID := make(map[int]*ent.CVRecord, len(recs))
	for _, rec := range recs {
		byID[rec.ID] = rec
	}

	rows := make([]*entity.ApplicationRow, 0, len(apps))
	for _, a := range apps {
		rec, ok := byID[a.CvRecordID]
		if !ok {
			continue
		}
		rows = append(rows, &entity.ApplicationRow{
			Application: *utils.ToApplication(a),
			CVRecord:    *utils.ToCVRecord(rec),
		})
	}
	return rows, nil
}
