package model

import "time"

const (
	EntityName = "payment"

	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusRefunded  = "refunded"
)

type Payment struct {
	ID            string    `json:"id"`
	Booking       string    `json:"booking"`
	Amount        float64   `json:"amount"`
	Method        string    `json:"payment_method"`
	Status        string    `json:"status"`
	TransactionID string    `json:"transaction_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// StatusBadge maps a payment status to a badge tone. Total over any input.
func StatusBadge(status string) string {
	switch status {
	case StatusPending:
		return "warning"
	case StatusCompleted:
		return "success"
	case StatusFailed:
		return "danger"
	case StatusRefunded:
		return "info"
	default:
		return "default"
	}
}
