package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/recluta/recluta-backend/internal/common"
	"github.com/recluta/recluta-backend/internal/entity"
	"github.com/recluta/recluta-backend/internal/extract"
	"github.com/recluta/recluta-backend/internal/llm"
	"github.com/recluta/recluta-backend/internal/repository"
)

type fakeExtractor struct {
	results map[string]extract.Result
}

func (f *fakeExtractor) Extract(_ context.Context, content []byte, ext string) (extract.Result, error) {
	if ext != "pdf" && ext != "docx" {
		return extract.Result{}, fmt.Errorf("%w: %q", common.ErrUnsupportedFormat, ext)
	}
	if res, ok := f.results[string(content)]; ok {
		return res, nil
	}
	return extract.Result{Text: "text of " + string(content), Method: "pdf-text"}, nil
}

type fakeScorer struct {
	results []llm.CandidateResult
	err     error
	texts   []string
	calls   int
}

func (f *fakeScorer) ScoreBatch(_ context.Context, texts []string, _ llm.OfferConstraints) ([]llm.CandidateResult, []byte, error) {
	f.calls++
	f.texts = texts
	if f.err != nil {
		return nil, nil, f.err
	}
	return f.results, nil, nil
}

type fakeStore struct {
	created  []repository.NewRecord
	applied  []repository.ScoringUpdate
	swept    []int
	applyErr error
}

func (f *fakeStore) CreateBatch(_ context.Context, _ int, records []repository.NewRecord) ([]repository.CreatedPair, error) {
	f.created = records
	pairs := make([]repository.CreatedPair, len(records))
	for i := range records {
		pairs[i] = repository.CreatedPair{CVRecordID: 100 + i, ApplicationID: 200 + i}
	}
	return pairs, nil
}

func (f *fakeStore) ApplyScoring(_ context.Context, updates []repository.ScoringUpdate) error {
	if f.applyErr != nil {
		return f.applyErr
	}
	f.applied = updates
	return nil
}

func (f *fakeStore) SweepProcessingError(_ context.Context, ids []int) error {
	f.swept = ids
	return nil
}

func (f *fakeStore) FindByComposite(_ context.Context, _, _ int) (*entity.OfferApplication, error) {
	return nil, errors.New("not implemented")
}

type fakeOffers struct{}

func (fakeOffers) GetByID(_ context.Context, id int) (*entity.Offer, error) {
	return &entity.Offer{
		ID:              id,
		CompanyID:       7,
		City:            "Medellín",
		AgeRange:        "20-40",
		Gender:          "any",
		ExperienceYears: 2,
		Skills:          []string{"go"},
	}, nil
}

func (fakeOffers) ListActive(_ context.Context, _ int) ([]*entity.Offer, error) { return nil, nil }

func okResult(name string, score float64) llm.CandidateResult {
	return llm.CandidateResult{
		Score: &llm.CandidateScore{FullName: name, Score: score, Status: llm.CandidateApt},
		Raw:   []byte(fmt.Sprintf(`{"full_name":%q,"score":%v,"status":"apt"}`, name, score)),
	}
}

func newTestCoordinator(scorer llm.BatchScorer, store repository.BatchStore) *Coordinator {
	return NewCoordinator(nil, &fakeExtractor{}, scorer, store, fakeOffers{})
}

func TestProcessBatch_TwoFilesScored(t *testing.T) {
	scorer := &fakeScorer{results: []llm.CandidateResult{okResult("Ana Ruiz", 8), okResult("Luis Vega", 5)}}
	store := &fakeStore{}
	c := newTestCoordinator(scorer, store)

	subs := []Submission{
		{Filename: "a.pdf", URL: "s3://cv/a.pdf", Extension: "pdf", Content: []byte("a")},
		{Filename: "b.pdf", URL: "s3://cv/b.pdf", Extension: "pdf", Content: []byte("b")},
	}
	res, err := c.ProcessBatch(context.Background(), 1, subs)
	if err != nil {
		t.Fatalf("ProcessBatch: %v", err)
	}
	if res.Scored != 2 || res.Failed != 0 {
		t.Errorf("result = %+v, want 2 scored", res)
	}
	if scorer.calls != 1 {
		t.Errorf("scorer called %d times, want one whole-batch call", scorer.calls)
	}
	if len(scorer.texts) != 2 || scorer.texts[0] != "text of a" {
		t.Errorf("scorer texts = %v", scorer.texts)
	}
	if len(store.created) != 2 || store.created[0].CompanyID != 7 || store.created[0].URL != "s3://cv/a.pdf" {
		t.Errorf("created records = %+v", store.created)
	}
	if len(store.applied) != 2 || store.applied[0].CandidateName != "Ana Ruiz" || store.applied[0].Failed {
		t.Errorf("applied updates = %+v", store.applied)
	}
	if store.swept != nil {
		t.Errorf("no sweep expected on success")
	}
}

func TestProcessBatch_UnsupportedFormatPersistsNothing(t *testing.T) {
	store := &fakeStore{}
	c := newTestCoordinator(&fakeScorer{}, store)

	subs := []Submission{
		{Filename: "a.pdf", Extension: "pdf", Content: []byte("a")},
		{Filename: "odd.xyz", Extension: "xyz", Content: []byte("odd")},
	}
	_, err := c.ProcessBatch(context.Background(), 1, subs)
	if !errors.Is(err, common.ErrUnsupportedFormat) {
		t.Fatalf("err = %v, want ErrUnsupportedFormat", err)
	}
	if store.created != nil {
		t.Errorf("nothing should be persisted when a format is rejected, got %+v", store.created)
	}
}

func TestProcessBatch_DegradedExtractionStillPersisted(t *testing.T) {
	extractor := &fakeExtractor{results: map[string]extract.Result{
		"broken": {Failure: "extraction failed: pdftotext exited 1"},
	}}
	scorer := &fakeScorer{results: []llm.CandidateResult{okResult("Ana", 6)}}
	store := &fakeStore{}
	c := NewCoordinator(nil, extractor, scorer, store, fakeOffers{})

	_, err := c.ProcessBatch(context.Background(), 1, []Submission{
		{Filename: "broken.pdf", Extension: "pdf", Content: []byte("broken")},
	})
	if err != nil {
		t.Fatalf("ProcessBatch: %v", err)
	}
	if len(store.created) != 1 || !strings.Contains(store.created[0].CVText, "extraction failed") {
		t.Errorf("degraded record = %+v, want failure text embedded", store.created)
	}
}

func TestProcessBatch_InvalidSiblingIsolated(t *testing.T) {
	scorer := &fakeScorer{results: []llm.CandidateResult{
		okResult("Good", 7),
		{Invalid: "candidate does not match schema"},
	}}
	store := &fakeStore{}
	c := newTestCoordinator(scorer, store)

	res, err := c.ProcessBatch(context.Background(), 1, []Submission{
		{Filename: "a.pdf", Extension: "pdf", Content: []byte("a")},
		{Filename: "b.pdf", Extension: "pdf", Content: []byte("b")},
	})
	if err != nil {
		t.Fatalf("ProcessBatch: %v", err)
	}
	if res.Scored != 1 || res.Failed != 1 {
		t.Errorf("result = %+v, want 1 scored / 1 failed", res)
	}
	if !store.applied[1].Failed || store.applied[0].Failed {
		t.Errorf("applied = %+v, want only slot 1 failed", store.applied)
	}
	if store.applied[0].CandidateName != "Good" {
		t.Errorf("surviving sibling mutated: %+v", store.applied[0])
	}
}

func TestProcessBatch_ShortReplyFailsTail(t *testing.T) {
	scorer := &fakeScorer{results: []llm.CandidateResult{okResult("Only", 4)}}
	store := &fakeStore{}
	c := newTestCoordinator(scorer, store)

	res, err := c.ProcessBatch(context.Background(), 1, []Submission{
		{Filename: "a.pdf", Extension: "pdf", Content: []byte("a")},
		{Filename: "b.pdf", Extension: "pdf", Content: []byte("b")},
	})
	if err != nil {
		t.Fatalf("ProcessBatch: %v", err)
	}
	if res.Scored != 1 || res.Failed != 1 {
		t.Errorf("result = %+v", res)
	}
	if !store.applied[1].Failed {
		t.Errorf("unanswered slot should fail, got %+v", store.applied[1])
	}
}

func TestProcessBatch_WholeBatchFailureSweeps(t *testing.T) {
	scorer := &fakeScorer{err: fmt.Errorf("%w: boom", common.ErrResponseParse)}
	store := &fakeStore{}
	c := newTestCoordinator(scorer, store)

	_, err := c.ProcessBatch(context.Background(), 1, []Submission{
		{Filename: "a.pdf", Extension: "pdf", Content: []byte("a")},
		{Filename: "b.pdf", Extension: "pdf", Content: []byte("b")},
	})
	if !errors.Is(err, common.ErrResponseParse) {
		t.Fatalf("err = %v, want ErrResponseParse", err)
	}
	if len(store.swept) != 2 || store.swept[0] != 200 || store.swept[1] != 201 {
		t.Errorf("swept = %v, want both application ids", store.swept)
	}
	if store.applied != nil {
		t.Errorf("no scoring updates expected after a whole-batch failure")
	}
}

func TestProcessBatch_ApplyScoringFailureSweeps(t *testing.T) {
	scorer := &fakeScorer{results: []llm.CandidateResult{okResult("Ana", 8)}}
	store := &fakeStore{applyErr: errors.New("deadlock")}
	c := newTestCoordinator(scorer, store)

	_, err := c.ProcessBatch(context.Background(), 1, []Submission{
		{Filename: "a.pdf", Extension: "pdf", Content: []byte("a")},
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(store.swept) != 1 {
		t.Errorf("swept = %v, want the failed batch swept", store.swept)
	}
}
