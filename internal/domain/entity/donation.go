package entity

import "time"

const (
	DonationSuccess = "success"
	DonationFailed  = "failed"
)

// Donation rows exist only for gateway-verified payments. Reference is the
// client-generated idempotency key; the repository enforces its uniqueness so
// a re-verified reference can never double-insert.
type Donation struct {
	ID        string    `json:"id" firestore:"id"`
	Email     string    `json:"email" firestore:"email"`
	Name      string    `json:"name,omitempty" firestore:"name,omitempty"`
	Amount    int64     `json:"amount" firestore:"amount"` // minor units
	Currency  string    `json:"currency" firestore:"currency"`
	Reference string    `json:"reference" firestore:"reference"`
	Channel   string    `json:"channel,omitempty" firestore:"channel,omitempty"` // card, mobile_money, ...
	Status    string    `json:"status" firestore:"status"`
	PaidAt    time.Time `json:"paid_at" firestore:"paidAt"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
