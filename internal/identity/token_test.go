package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/recluta/recluta-backend/internal/common"
)

func tokenServer(t *testing.T, refreshes *int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/o/token/" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Basic Y2xpZW50OnNlY3JldA==" {
			t.Errorf("Authorization = %q", got)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if r.PostForm.Get("grant_type") != "password" || r.PostForm.Get("username") != "svc" {
			t.Errorf("form = %v", r.PostForm)
		}
		*refreshes++
		_, _ = fmt.Fprintf(w, `{"access_token":"tok-%d","expires_in":3600}`, *refreshes)
	}))
}

func testConfig(base string) Config {
	return Config{
		BaseURL:        base,
		Username:       "svc",
		Password:       "pw",
		BasicAuthToken: "Y2xpZW50OnNlY3JldA==",
		ExpiryBuffer:   10 * time.Second,
	}
}

func TestToken_CachedUntilBuffer(t *testing.T) {
	refreshes := 0
	srv := tokenServer(t, &refreshes)
	defer srv.Close()

	s := NewTokenSource(testConfig(srv.URL), nil)
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	now := base
	s.now = func() time.Time { return now }

	tok, err := s.Token(context.Background())
	if err != nil {
		t.Fatalf("Token: %v", err)
	}
	if tok != "tok-1" || refreshes != 1 {
		t.Fatalf("tok=%q refreshes=%d", tok, refreshes)
	}

	// Just inside the validity window: cached.
	now = base.Add(3600*time.Second - 11*time.Second)
	if tok, _ := s.Token(context.Background()); tok != "tok-1" || refreshes != 1 {
		t.Errorf("want cached token before the buffer, got %q after %d refreshes", tok, refreshes)
	}

	// Inside the expiry buffer: refreshed.
	now = base.Add(3600*time.Second - 10*time.Second)
	if tok, _ := s.Token(context.Background()); tok != "tok-2" || refreshes != 2 {
		t.Errorf("want refresh inside the buffer, got %q after %d refreshes", tok, refreshes)
	}
}

func TestToken_ConcurrentCallersShareOneRefresh(t *testing.T) {
	refreshes := 0
	srv := tokenServer(t, &refreshes)
	defer srv.Close()

	s := NewTokenSource(testConfig(srv.URL), nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Token(context.Background()); err != nil {
				t.Errorf("Token: %v", err)
			}
		}()
	}
	wg.Wait()
	if refreshes != 1 {
		t.Errorf("refreshes = %d, want a single shared refresh", refreshes)
	}
}

func TestToken_MissingCredentialsIsConfigurationError(t *testing.T) {
	s := NewTokenSource(Config{BaseURL: "http://localhost:0"}, nil)
	_, err := s.Token(context.Background())
	if !errors.Is(err, common.ErrConfiguration) {
		t.Fatalf("err = %v, want ErrConfiguration", err)
	}
}

func TestToken_UpstreamFailureIsExternalCall(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad credentials", http.StatusUnauthorized)
	}))
	defer srv.Close()

	s := NewTokenSource(testConfig(srv.URL), nil)
	_, err := s.Token(context.Background())
	if !errors.Is(err, common.ErrExternalCall) {
		t.Fatalf("err = %v, want ErrExternalCall", err)
	}
}
