// Package paystack is the outbound client for the Paystack transaction API.
// Calls are made once; retrying is left to the caller.
package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nsien-prestige/Eventful-Backend/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const DefaultBaseURL = "https://api.paystack.co"

type Client struct {
	secretKey   string
	baseURL     string
	callbackURL string
	client      *http.Client
	logger      logger.Logger
}

type Options struct {
	BaseURL     string
	CallbackURL string
	Timeout     time.Duration
}

func NewClient(secretKey string, opts Options, logger logger.Logger) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	return &Client{
		secretKey:   secretKey,
		baseURL:     strings.TrimRight(opts.BaseURL, "/"),
		callbackURL: opts.CallbackURL,
		client:      &http.Client{Timeout: opts.Timeout},
		logger:      logger,
	}
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type initializeRequest struct {
	Email       string `json:"email"`
	Amount      int64  `json:"amount"`
	Reference   string `json:"reference"`
	CallbackURL string `json:"callback_url,omitempty"`
}

type initializeData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type verifyData struct {
	Status    string `json:"status"`
	Reference string `json:"reference"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
}

// Initialize opens a hosted checkout and returns its authorization URL.
func (c *Client) Initialize(ctx context.Context, in domain.GatewayCheckout) (string, error) {
	body, err := json.Marshal(initializeRequest{
		Email:       in.Email,
		Amount:      in.AmountMinor,
		Reference:   in.Reference,
		CallbackURL: c.callbackURL,
	})
	if err != nil {
		return "", fmt.Errorf("marshal initialize request: %w", err)
	}

	var data initializeData
	if err = c.do(ctx, http.MethodPost, "/transaction/initialize", body, &data); err != nil {
		return "", fmt.Errorf("initialize %s: %w", in.Reference, err)
	}
	if data.AuthorizationURL == "" {
		return "", fmt.Errorf("initialize %s: %w: empty authorization url", in.Reference, domain.ErrGatewayUnavailable)
	}
	return data.AuthorizationURL, nil
}

// Verify fetches the gateway's view of a transaction.
func (c *Client) Verify(ctx context.Context, reference string) (*domain.GatewayTransaction, error) {
	var data verifyData
	if err := c.do(ctx, http.MethodGet, "/transaction/verify/"+url.PathEscape(reference), nil, &data); err != nil {
		return nil, fmt.Errorf("verify %s: %w", reference, err)
	}
	return &domain.GatewayTransaction{
		Reference:   data.Reference,
		Status:      data.Status,
		AmountMinor: data.Amount,
	}, nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	started := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("%w: read response: %v", domain.ErrGatewayUnavailable, err)
	}

	c.logger.Debug("paystack call",
		logger.String("method", method),
		logger.String("path", path),
		logger.Int("status", resp.StatusCode),
		logger.Duration("elapsed", time.Since(started)),
	)

	var env envelope
	decodeErr := json.Unmarshal(respBody, &env)

	switch {
	case resp.StatusCode == http.StatusNotFound,
		resp.StatusCode == http.StatusBadRequest && method == http.MethodGet:
		return fmt.Errorf("%w: %s", domain.ErrGatewayTransactionAbsent, env.Message)
	case resp.StatusCode >= 500, resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w: status %d", domain.ErrGatewayUnavailable, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("paystack error (%d): %s", resp.StatusCode, env.Message)
	}

	if decodeErr != nil {
		return fmt.Errorf("%w: decode response: %v", domain.ErrGatewayUnavailable, decodeErr)
	}
	if !env.Status {
		return fmt.Errorf("paystack rejected request: %s", env.Message)
	}
	if err = json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}
