package entity

import "time"

type EscrowStatus string

const (
	EscrowStatusPending  EscrowStatus = "pending"
	EscrowStatusReleased EscrowStatus = "released"
	EscrowStatusRefunded EscrowStatus = "refunded"
)

// EscrowTransaction is a payment hold tied to one deal. At most one
// pending transaction exists per deal; released and refunded are
// terminal. Fee is the platform fee quoted at hold time; it is
// recorded for display and never charged separately.
type EscrowTransaction struct {
	ID          string       `json:"id"`
	DealID      string       `json:"deal_id"`
	Amount      float64      `json:"amount"`
	Fee         float64      `json:"fee"`
	Status      EscrowStatus `json:"status"`
	HoldRef     string       `json:"hold_ref,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	ProcessedAt *time.Time   `json:"processed_at,omitempty"`
}
