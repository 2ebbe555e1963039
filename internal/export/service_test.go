package export

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/recluta/recluta-backend/constants"
	"github.com/recluta/recluta-backend/internal/entity"
)

type fakeRecords struct {
	rows []*entity.ApplicationRow
	err  error
}

func (f *fakeRecords) GetByID(context.Context, int) (*entity.CVRecord, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeRecords) SaveBackgroundCheck(context.Context, int, string, time.Time) error {
	return errors.New("not implemented")
}

func (f *fakeRecords) ListApplications(context.Context, int) ([]*entity.ApplicationRow, error) {
	return f.rows, f.err
}

func strPtr(s string) *string { return &s }

func TestExportApplicationsXLSX(t *testing.T) {
	score := 8.25
	checked := time.Date(2026, 2, 10, 15, 30, 0, 0, time.UTC)
	rows := []*entity.ApplicationRow{
		{
			Application: entity.OfferApplication{
				ID: 1, CVRecordID: 10, OfferID: 5,
				Status:        constants.StatusPending,
				ResponseScore: &score,
			},
			CVRecord: entity.CVRecord{
				ID:               10,
				URL:              "s3://cv/a.pdf",
				CandidateName:    strPtr("Ana Ruiz"),
				CandidateDNI:     strPtr("12345678"),
				CandidateDNIType: strPtr("CC"),
				CandidateCity:    strPtr("Bogotá"),
				BackgroundCheck:  strPtr("false"),
				BackgroundDate:   &checked,
			},
		},
		{
			Application: entity.OfferApplication{
				ID: 2, CVRecordID: 11, OfferID: 5,
				Status: constants.StatusErrorProcessing,
			},
			CVRecord: entity.CVRecord{ID: 11, URL: "s3://cv/b.pdf"},
		},
	}

	svc := NewService(&fakeRecords{rows: rows}, nil)
	xlsx, err := svc.ExportApplicationsXLSX(context.Background(), 5)
	if err != nil {
		t.Fatalf("ExportApplicationsXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(xlsx))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	get := func(cell string) string {
		v, err := f.GetCellValue("Applications", cell)
		if err != nil {
			t.Fatalf("get %s: %v", cell, err)
		}
		return v
	}

	if got := get("A1"); got != "Candidate" {
		t.Errorf("A1 = %q", got)
	}
	if got := get("A2"); got != "Ana Ruiz" {
		t.Errorf("A2 = %q", got)
	}
	if got := get("B2"); got != "CC 12345678" {
		t.Errorf("B2 = %q", got)
	}
	if got := get("F2"); got != "8.25" {
		t.Errorf("F2 = %q", got)
	}
	if got := get("G3"); got != string(constants.StatusErrorProcessing) {
		t.Errorf("G3 = %q", got)
	}
	if got := get("F3"); got != "" {
		t.Errorf("F3 = %q, want empty score for unscored row", got)
	}
}

func TestExportApplicationsXLSX_RepoError(t *testing.T) {
	svc := NewService(&fakeRecords{err: errors.New("db down")}, nil)
	if _, err := svc.ExportApplicationsXLSX(context.Background(), 5); err == nil {
		t.Fatal("expected error")
	}
}
