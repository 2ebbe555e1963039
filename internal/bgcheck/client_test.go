package bgcheck

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/recluta/recluta-backend/internal/common"
)

func TestGetResults_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/results/job-77" {
			t.Errorf("path = %q", r.URL.Path)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "acme" || pass != "s3cret" {
			t.Errorf("basic auth = %q/%q ok=%v", user, pass, ok)
		}
		_, _ = w.Write([]byte(`{"estado":"finalizado","hallazgo":true,"nombre":"Ana Ruiz"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, Username: "acme", Secret: "s3cret"}, nil)
	res, err := c.GetResults(context.Background(), "job-77")
	if err != nil {
		t.Fatalf("GetResults: %v", err)
	}
	if res.Estado != "finalizado" || !res.Done() {
		t.Errorf("estado = %q done=%v", res.Estado, res.Done())
	}
	if res.Hallazgo != "true" {
		t.Errorf("hallazgo = %q", res.Hallazgo)
	}
	if len(res.Raw) == 0 {
		t.Errorf("raw payload should be kept")
	}
}

func TestGetResults_StringFinding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"estado":"procesando","hallazgo":"pendiente"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL}, nil)
	res, err := c.GetResults(context.Background(), "j")
	if err != nil {
		t.Fatalf("GetResults: %v", err)
	}
	if res.Done() {
		t.Errorf("procesando should not be done")
	}
	if res.Hallazgo != "pendiente" {
		t.Errorf("hallazgo = %q", res.Hallazgo)
	}
}

func TestGetResults_HTTPErrorIsExternalCall(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL}, nil)
	_, err := c.GetResults(context.Background(), "j")
	if !errors.Is(err, common.ErrExternalCall) {
		t.Fatalf("err = %v, want ErrExternalCall", err)
	}
}

func TestGetResults_TransportErrorIsExternalCall(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient(Config{BaseURL: srv.URL}, nil)
	_, err := c.GetResults(context.Background(), "j")
	if !errors.Is(err, common.ErrExternalCall) {
		t.Fatalf("err = %v, want ErrExternalCall", err)
	}
}
