// Package relayer submits account registrations through a sponsoring relayer
// that pays the transaction fee.
package relayer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"wallet-identity/config"
	"wallet-identity/internal/core/domain"
	"wallet-identity/internal/core/ports"
	"wallet-identity/pkg/logger"

	"github.com/rs/zerolog"
)

const setAccountPath = "/v1/accounts/set"

// defaultRetryIntervals are the waits between attempts on transport errors
// and 5xx responses.
var defaultRetryIntervals = []time.Duration{
	500 * time.Millisecond,
	2 * time.Second,
	5 * time.Second,
}

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// SetAccountRequest is the body posted to the relayer.
type SetAccountRequest struct {
	AccountAddress    string `json:"account_address"`
	Name              string `json:"name"`
	DataEncryptionKey string `json:"data_encryption_key"`
	WalletAddress     string `json:"wallet_address"`
}

type setAccountResponse struct {
	TxHash      string `json:"tx_hash"`
	BlockNumber uint64 `json:"block_number"`
	Status      uint64 `json:"status"`
	Error       string `json:"error,omitempty"`
}

// Client implements ports.Relayer over the relayer's signed HTTP API.
type Client struct {
	baseURL        string
	apiKey         string
	secret         string
	sigSvc         ports.SignatureService
	httpClient     HTTPClient
	retryIntervals []time.Duration
	now            func() time.Time
	log            zerolog.Logger
}

// NewClient creates a relayer client. A nil httpClient gets one with the
// configured timeout.
func NewClient(cfg config.RelayerConfig, sigSvc ports.SignatureService, httpClient HTTPClient, log zerolog.Logger) *Client {
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:         cfg.APIKey,
		secret:         cfg.Secret,
		sigSvc:         sigSvc,
		httpClient:     httpClient,
		retryIntervals: defaultRetryIntervals,
		now:            time.Now,
		log:            logger.Component(log, "relayer"),
	}
}

// WithRetryIntervals replaces the waits between attempts.
func (c *Client) WithRetryIntervals(intervals []time.Duration) *Client {
	c.retryIntervals = intervals
	return c
}

// SetAccount asks the relayer to publish name, DEK and wallet for the account
// and returns the mined receipt.
func (c *Client) SetAccount(ctx context.Context, accountAddress, name, dataEncryptionKey, walletAddress string) (*domain.TxReceipt, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("relayer base url not configured")
	}
	body, err := json.Marshal(SetAccountRequest{
		AccountAddress:    accountAddress,
		Name:              name,
		DataEncryptionKey: dataEncryptionKey,
		WalletAddress:     walletAddress,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal set account request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= len(c.retryIntervals); attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.retryIntervals[attempt-1]):
			}
		}

		receipt, retry, err := c.postSetAccount(ctx, body)
		if err == nil {
			c.log.Info().
				Str("account", accountAddress).
				Str("tx_hash", receipt.TxHash).
				Int("attempt", attempt+1).
				Msg("relayer: account registered")
			return receipt, nil
		}
		lastErr = err
		if !retry {
			break
		}
		c.log.Warn().Err(err).Int("attempt", attempt+1).Msg("relayer: request failed, retrying")
	}
	return nil, lastErr
}

// postSetAccount sends one signed request. retry reports whether the failure
// is worth another attempt.
func (c *Client) postSetAccount(ctx context.Context, body []byte) (*domain.TxReceipt, bool, error) {
	ts := c.now().Unix()
	signature := c.sigSvc.Sign(c.secret, c.sigSvc.BuildCanonicalString(http.MethodPost, setAccountPath, ts, string(body)))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+setAccountPath, bytes.NewReader(body))
	if err != nil {
		return nil, false, fmt.Errorf("create relayer request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("X-Timestamp", strconv.FormatInt(ts, 10))
	req.Header.Set("X-Signature", signature)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, ctx.Err() == nil, fmt.Errorf("relayer request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, true, fmt.Errorf("read relayer response: %w", err)
	}
	var out setAccountResponse
	_ = json.Unmarshal(raw, &out)

	if resp.StatusCode >= 500 {
		return nil, true, fmt.Errorf("relayer returned %d: %s", resp.StatusCode, out.Error)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, false, fmt.Errorf("relayer rejected request with %d: %s", resp.StatusCode, out.Error)
	}
	if out.TxHash == "" {
		return nil, false, fmt.Errorf("relayer response missing tx hash")
	}
	return &domain.TxReceipt{TxHash: out.TxHash, BlockNumber: out.BlockNumber, Status: out.Status}, false, nil
}
