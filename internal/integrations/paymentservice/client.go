package paymentservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Logger is the logging surface the client needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client talks to the deposit payment processor over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a payment processor client.
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ChargeDeposit asks the processor to charge amountCents for a booking.
// Every call carries a fresh UUID idempotency key so the processor can
// dedupe retried requests.
func (c *Client) ChargeDeposit(ctx context.Context, bookingID int64, amountCents int64) (*ChargeResult, error) {
	reqBody := ChargeRequest{
		BookingID:      bookingID,
		AmountCents:    amountCents,
		IdempotencyKey: uuid.NewString(),
	}

	var result ChargeResult
	if err := c.post(ctx, "/internal/deposits/charge", reqBody, &result); err != nil {
		return nil, err
	}

	if !result.Success {
		c.log.Warn("ChargeDeposit: declined for booking_id=%d amount_cents=%d", bookingID, amountCents)
		return nil, ErrChargeDeclined
	}

	c.log.Info("ChargeDeposit: charged booking_id=%d amount_cents=%d reference=%s",
		bookingID, amountCents, result.Reference)
	return &result, nil
}

// Refund asks the processor to return a previously charged deposit.
func (c *Client) Refund(ctx context.Context, bookingID int64, amountCents int64) (*RefundResult, error) {
	reqBody := RefundRequest{
		BookingID:      bookingID,
		AmountCents:    amountCents,
		IdempotencyKey: uuid.NewString(),
	}

	var result RefundResult
	if err := c.post(ctx, "/internal/deposits/refund", reqBody, &result); err != nil {
		return nil, err
	}

	if !result.Success {
		return nil, fmt.Errorf("%w: refund not accepted for booking_id=%d", ErrInvalidResponse, bookingID)
	}

	c.log.Info("Refund: refunded booking_id=%d amount_cents=%d", bookingID, amountCents)
	return &result, nil
}

func (c *Client) post(ctx context.Context, path string, in interface{}, out interface{}) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("paymentservice unreachable: %v", err)
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Continue below.
	case http.StatusPaymentRequired, http.StatusUnprocessableEntity:
		return ErrChargeDeclined
	case http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: status %d", ErrServiceUnavailable, resp.StatusCode)
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
