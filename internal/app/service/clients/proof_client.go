package clients

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sethgrid/pester"
	"github.com/ujwegh/leadmart/internal/app/config"
	"github.com/ujwegh/leadmart/internal/app/logger"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ErrProofUnreachable means the proof host answered that the document does not exist.
var ErrProofUnreachable = errors.New("proof is unreachable")

type (
	// ProofClient checks that the payment proof uploaded with a top-up request can be fetched.
	ProofClient interface {
		CheckProof(secureURL string) error
	}
	ProofClientImpl struct {
		pesterClient *pester.Client
		rateLimiter  ratelimit.Limiter
	}
	LoggingRoundTripper struct {
		Proxied http.RoundTripper
	}
)

func NewProofClient(c config.AppConfig) *ProofClientImpl {
	rateLimiter := ratelimit.New(c.ProofCheckMaxRPS)
	pesterClient := pester.New()

	pesterClient.Concurrency = 1 // Since we are rate-limiting, concurrency should be 1
	pesterClient.MaxRetries = 1
	pesterClient.KeepLog = true
	pesterClient.Timeout = time.Duration(c.ProofCheckTimeoutSec) * time.Second
	pesterClient.RetryOnHTTP429 = false
	pesterClient.Transport = &LoggingRoundTripper{Proxied: http.DefaultTransport}

	return &ProofClientImpl{
		pesterClient: pesterClient,
		rateLimiter:  rateLimiter,
	}
}

// CheckProof returns nil when the proof is reachable and ErrProofUnreachable when
// the host reports it missing. Any other error is transient.
func (pc *ProofClientImpl) CheckProof(secureURL string) error {
	// Wait for the next available opportunity to send a request
	pc.rateLimiter.Take()

	resp, err := pc.pesterClient.Head(secureURL)
	if err != nil {
		return fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusNotFound, resp.StatusCode == http.StatusGone, resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: status %d", ErrProofUnreachable, resp.StatusCode)
	default:
		return fmt.Errorf("unexpected proof status %d for %s", resp.StatusCode, secureURL)
	}
}

func (ac *LoggingRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	logRequest(r)
	response, err := ac.Proxied.RoundTrip(r)
	if err != nil {
		logger.Log.Error("proof request error", zap.Error(err))
		return nil, err
	}
	logResponse(response)
	return response, nil
}

func logResponse(response *http.Response) {
	bodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		logger.Log.Error("proof response error", zap.Error(err))
		return
	}
	response.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

	logger.Log.Info("PROOF RESPONSE:",
		zap.Int("Status", response.StatusCode),
		zap.Int64("Content-Length", response.ContentLength),
	)
}

func logRequest(r *http.Request) {
	logger.Log.Info("PROOF REQUEST:",
		zap.String("Method", r.Method),
		zap.String("Path", r.URL.String()),
	)
}
