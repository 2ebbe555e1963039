package bgcheck

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/recluta/recluta-backend/internal/common"
)

// StateProcessing is the upstream state meaning the check is still running.
// Any other state stops the poller.
const StateProcessing = "procesando"

// CheckResult is one polling snapshot of a background check.
type CheckResult struct {
	Estado   string
	Hallazgo string
	Raw      []byte
}

// Done reports whether the upstream check has left its processing state.
func (r CheckResult) Done() bool { return r.Estado != StateProcessing }

// ResultsClient fetches the current state of a background-check job.
type ResultsClient interface {
	GetResults(ctx context.Context, jobID string) (CheckResult, error)
}

type Config struct {
	BaseURL  string
	Username string
	Secret   string
	Timeout  time.Duration
}

type httpClient struct {
	cfg    Config
	client *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) ResultsClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &httpClient{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

func (c *httpClient) GetResults(ctx context.Context, jobID string) (CheckResult, error) {
	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/results/" + jobID
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return CheckResult{}, err
	}
	req.SetBasicAuth(c.cfg.Username, c.cfg.Secret)

	resp, err := c.client.Do(req)
	if err != nil {
		return CheckResult{}, fmt.Errorf("%w: background check request: %v", common.ErrExternalCall, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warn("background check response body close error", "error", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return CheckResult{}, fmt.Errorf("%w: read background check response: %v", common.ErrExternalCall, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return CheckResult{}, fmt.Errorf("%w: background check status %d: %s", common.ErrExternalCall, resp.StatusCode, truncate(string(body), 256))
	}

	var payload struct {
		Estado   string          `json:"estado"`
		Hallazgo json.RawMessage `json:"hallazgo"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return CheckResult{}, fmt.Errorf("%w: decode background check response: %v", common.ErrExternalCall, err)
	}

	return CheckResult{
		Estado:   payload.Estado,
		Hallazgo: rawToString(payload.Hallazgo),
		Raw:      body,
	}, nil
}

// rawToString renders the finding value as stored text. The upstream field is
// a bool on most checks but occasionally a string or object.
func rawToString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
