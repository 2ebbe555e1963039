package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/recluta/recluta-backend/internal/common"
)

// Config for the identity-provider token source. BasicAuthToken is the
// pre-encoded client credential for the Authorization header; Username and
// Password are the resource-owner credentials sent in the form body.
type Config struct {
	BaseURL        string
	Username       string
	Password       string
	BasicAuthToken string
	ExpiryBuffer   time.Duration // refresh this long before the real expiry
	Timeout        time.Duration
}

// TokenSource hands out a bearer token, refreshing it lazily. One token slot
// is cached; a token is considered stale ExpiryBuffer before its advertised
// expiry so callers never hold a token that dies mid-request.
type TokenSource struct {
	cfg    Config
	client *http.Client
	logger *slog.Logger

	mu      sync.Mutex
	token   string
	expires time.Time

	now func() time.Time
}

func NewTokenSource(cfg Config, logger *slog.Logger) *TokenSource {
	if cfg.ExpiryBuffer <= 0 {
		cfg.ExpiryBuffer = 10 * time.Second
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TokenSource{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
		now:    time.Now,
	}
}

// Token returns a valid bearer token, refreshing if the cached one is absent
// or inside the expiry buffer. Concurrent callers share one refresh.
func (s *TokenSource) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" && s.now().Before(s.expires.Add(-s.cfg.ExpiryBuffer)) {
		return s.token, nil
	}
	if err := s.refresh(ctx); err != nil {
		return "", err
	}
	return s.token, nil
}

func (s *TokenSource) refresh(ctx context.Context) error {
	if s.cfg.Username == "" || s.cfg.Password == "" || s.cfg.BasicAuthToken == "" {
		return fmt.Errorf("%w: identity provider credentials not configured", common.ErrConfiguration)
	}

	form := url.Values{}
	form.Set("username", s.cfg.Username)
	form.Set("password", s.cfg.Password)
	form.Set("grant_type", "password")

	endpoint := strings.TrimRight(s.cfg.BaseURL, "/") + "/o/token/"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Basic "+s.cfg.BasicAuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: token request: %v", common.ErrExternalCall, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			s.logger.Warn("token response body close error", "error", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read token response: %v", common.ErrExternalCall, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: token status %d", common.ErrExternalCall, resp.StatusCode)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return fmt.Errorf("%w: decode token response: %v", common.ErrExternalCall, err)
	}
	if payload.AccessToken == "" {
		return fmt.Errorf("%w: token response missing access_token", common.ErrExternalCall)
	}

	s.token = payload.AccessToken
	s.expires = s.now().Add(time.Duration(payload.ExpiresIn) * time.Second)
	s.logger.Info("identity.token.refreshed", "expires_in_s", payload.ExpiresIn)
	return nil
}
