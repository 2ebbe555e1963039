package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/recluta/recluta-backend/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	records repository.CVRecordRepository
	logger  *slog.Logger
}

func NewService(records repository.CVRecordRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{records: records, logger: logger}
}

// ExportApplicationsXLSX returns an XLSX workbook (as bytes) with every
// application for the given offer, highest score first.
func (s *Service) ExportApplicationsXLSX(ctx context.Context, offerID int) ([]byte, error) {
	start := time.Now()

	rows, err := s.records.ListApplications(ctx, offerID)
	if err != nil {
		return nil, fmt.Errorf("query applications: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Applications"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Candidate",
		"Document",
		"City",
		"Phone",
		"Email",
		"Score",
		"Status",
		"Background Check",
		"Checked At",
		"CV File",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	rowNum := 2
	for _, r := range rows {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, rowNum)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, strOrEmpty(r.CVRecord.CandidateName))
		doc := strOrEmpty(r.CVRecord.CandidateDNI)
		if t := strOrEmpty(r.CVRecord.CandidateDNIType); t != "" && doc != "" {
			doc = t + " " + doc
		}
		write(2, doc)
		write(3, strOrEmpty(r.CVRecord.CandidateCity))
		write(4, strOrEmpty(r.CVRecord.CandidatePhone))
		write(5, strOrEmpty(r.CVRecord.CandidateMail))
		if r.Application.ResponseScore != nil {
			write(6, fmt.Sprintf("%.2f", *r.Application.ResponseScore))
		} else {
			write(6, "")
		}
		write(7, string(r.Application.Status))
		write(8, strOrEmpty(r.CVRecord.BackgroundCheck))
		if r.CVRecord.BackgroundDate != nil {
			write(9, r.CVRecord.BackgroundDate.UTC().Format("2006-01-02 15:04"))
		} else {
			write(9, "")
		}
		write(10, r.CVRecord.URL)

		rowNum++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 28) // candidate
	_ = f.SetColWidth(sheet, "B", "B", 18) // document
	_ = f.SetColWidth(sheet, "C", "E", 20) // city/phone/email
	_ = f.SetColWidth(sheet, "F", "G", 14) // score/status
	_ = f.SetColWidth(sheet, "H", "I", 20) // background check
	_ = f.SetColWidth(sheet, "J", "J", 60) // file url

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"offer_id", offerID,
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
