package service

import (
	"context"
	"time"
)

// PaymentRequest initializes a checkout with the gateway. Amount is in minor
// units; Reference is the client-generated idempotency key.
type PaymentRequest struct {
	Email     string
	Amount    int64
	Currency  string
	Reference string
	Channels  []string // e.g. card, mobile_money (covers MPesa)
}

// PaymentInit is what the gateway hands back for the inline checkout widget.
type PaymentInit struct {
	AuthorizationURL string
	AccessCode       string
	Reference        string
}

// PaymentVerification is the gateway's answer for a completed reference.
// Status is normalized to "success", "failed" or "pending".
type PaymentVerification struct {
	Reference string
	Status    string
	Amount    int64
	Currency  string
	Channel   string
	Email     string
	PaidAt    time.Time
}

// PaymentGatewayService abstracts the external payment collaborator.
type PaymentGatewayService interface {
	InitializePayment(ctx context.Context, req PaymentRequest) (*PaymentInit, error)
	VerifyPayment(ctx context.Context, reference string) (*PaymentVerification, error)
}
