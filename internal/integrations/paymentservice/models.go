package paymentservice

// ChargeRequest asks the payment processor to charge a deposit. The
// idempotency key makes retries after network failures safe.
type ChargeRequest struct {
	BookingID      int64  `json:"booking_id"`
	AmountCents    int64  `json:"amount_cents"`
	IdempotencyKey string `json:"idempotency_key"`
}

// ChargeResult is the processor's answer to a charge request.
type ChargeResult struct {
	Success   bool   `json:"success"`
	Reference string `json:"reference"`
}

// RefundRequest asks the processor to return a previously charged deposit.
type RefundRequest struct {
	BookingID      int64  `json:"booking_id"`
	AmountCents    int64  `json:"amount_cents"`
	IdempotencyKey string `json:"idempotency_key"`
}

// RefundResult is the processor's answer to a refund request.
type RefundResult struct {
	Success   bool   `json:"success"`
	Reference string `json:"reference"`
}

// ErrorResponse is the processor's error payload.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
