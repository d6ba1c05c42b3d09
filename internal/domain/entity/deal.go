package entity

import "time"

type DealStatus string

const (
	DealStatusPending   DealStatus = "pending"
	DealStatusAccepted  DealStatus = "accepted"
	DealStatusRejected  DealStatus = "rejected"
	DealStatusCompleted DealStatus = "completed"
)

// dealTransitions is the checked lifecycle table. rejected -> pending
// is reconsideration; completed is terminal.
var dealTransitions = map[DealStatus][]DealStatus{
	DealStatusPending:  {DealStatusAccepted, DealStatusRejected},
	DealStatusRejected: {DealStatusPending},
	DealStatusAccepted: {DealStatusCompleted},
}

// CanTransition reports whether the lifecycle table allows moving a
// deal from one status to another.
func CanTransition(from, to DealStatus) bool {
	for _, allowed := range dealTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func (s DealStatus) Valid() bool {
	switch s {
	case DealStatusPending, DealStatusAccepted, DealStatusRejected, DealStatusCompleted:
		return true
	}
	return false
}

// Deal is a proposed paid collaboration tied to one contact. Status
// moves only through the transition table; deals are never deleted.
type Deal struct {
	ID          string     `json:"id"`
	ContactID   string     `json:"contact_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Amount      float64    `json:"amount"`
	Status      DealStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
