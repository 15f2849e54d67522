package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// ErrTransactionNotFound indicates the gateway does not know the transaction.
var ErrTransactionNotFound = errors.New("transaction not found")

// TooManyRequestsError represents rate limiting signal from the gateway.
type TooManyRequestsError struct {
	RetryAfter time.Duration
}

func (e TooManyRequestsError) Error() string {
	return fmt.Sprintf("too many requests, retry after %s", e.RetryAfter)
}

// CreatePaymentRequest describes a hosted-payment-page creation request.
type CreatePaymentRequest struct {
	TxnRef           string
	Amount           float64
	OrderDescription string
	OrderType        string
	BankCode         string
}

// Payment is the gateway's answer to a create-payment request.
type Payment struct {
	TxnRef     string
	PaymentURL string
}

// PaymentResult is the gateway's authoritative view of a transaction, used to
// verify redirects server-side.
type PaymentResult struct {
	TxnRef       string
	ResponseCode string
	Amount       float64
}

// Client exposes operations against the external payment gateway.
type Client interface {
	CreatePayment(ctx context.Context, req CreatePaymentRequest) (*Payment, error)
	QueryPayment(ctx context.Context, txnRef string) (*PaymentResult, error)
}

// HTTPClient implements Client via the gateway's HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	returnURL  string
	httpClient *http.Client
	logger     *zap.Logger
}

// createRequest mirrors the JSON payload sent to the gateway.
type createRequest struct {
	TxnRef           string  `json:"txnRef"`
	Amount           float64 `json:"amount"`
	OrderDescription string  `json:"orderDescription"`
	OrderType        string  `json:"orderType"`
	BankCode         string  `json:"bankCode"`
	ReturnURL        string  `json:"returnUrl"`
}

// createResponse mirrors the JSON payload returned by the gateway.
type createResponse struct {
	TxnRef     string `json:"txnRef"`
	PaymentURL string `json:"paymentUrl"`
}

// queryResponse mirrors the transaction status payload from the gateway.
type queryResponse struct {
	TxnRef       string  `json:"txnRef"`
	ResponseCode string  `json:"responseCode"`
	Amount       float64 `json:"amount"`
}

// NewHTTPClient creates HTTP gateway client with default timeout.
func NewHTTPClient(baseURL, returnURL string, logger *zap.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse gateway url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("gateway url must be absolute")
	}
	return &HTTPClient{
		baseURL:   parsed,
		returnURL: returnURL,
		logger:    logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// CreatePayment asks the gateway for a hosted payment page URL.
func (c *HTTPClient) CreatePayment(ctx context.Context, req CreatePaymentRequest) (*Payment, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/payments")

	body, err := json.Marshal(createRequest{
		TxnRef:           req.TxnRef,
		Amount:           req.Amount,
		OrderDescription: req.OrderDescription,
		OrderType:        req.OrderType,
		BankCode:         req.BankCode,
		ReturnURL:        c.returnURL,
	})
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		var parsed createResponse
		if err := json.Unmarshal(data, &parsed); err != nil {
			return nil, err
		}
		if parsed.PaymentURL == "" {
			return nil, fmt.Errorf("gateway returned no payment url")
		}
		txnRef := parsed.TxnRef
		if txnRef == "" {
			txnRef = req.TxnRef
		}
		return &Payment{TxnRef: txnRef, PaymentURL: parsed.PaymentURL}, nil
	case http.StatusTooManyRequests:
		retryAfter := parseRetryAfter(resp.Header.Get("Retry-After"))
		return nil, TooManyRequestsError{RetryAfter: retryAfter}
	default:
		data, _ := io.ReadAll(resp.Body)
		c.logger.Error("gateway create payment failed",
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(data)),
		)
		return nil, fmt.Errorf("gateway error: %s", resp.Status)
	}
}

// QueryPayment asks the gateway for the authoritative transaction status.
func (c *HTTPClient) QueryPayment(ctx context.Context, txnRef string) (*PaymentResult, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/payments/", txnRef)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		var parsed queryResponse
		if err := json.Unmarshal(data, &parsed); err != nil {
			return nil, err
		}
		return &PaymentResult{TxnRef: parsed.TxnRef, ResponseCode: parsed.ResponseCode, Amount: parsed.Amount}, nil
	case http.StatusNotFound, http.StatusNoContent:
		return nil, ErrTransactionNotFound
	case http.StatusTooManyRequests:
		retryAfter := parseRetryAfter(resp.Header.Get("Retry-After"))
		return nil, TooManyRequestsError{RetryAfter: retryAfter}
	default:
		data, _ := io.ReadAll(resp.Body)
		c.logger.Error("gateway query failed",
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(data)),
		)
		return nil, fmt.Errorf("gateway error: %s", resp.Status)
	}
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 5 * time.Second
	}
	if seconds, err := strconv.Atoi(header); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if t, err := http.ParseTime(header); err == nil {
		return time.Until(t)
	}
	return 5 * time.Second
}
