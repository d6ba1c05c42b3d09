package entity

import "time"

type MessageSender string

const (
	SenderSelf         MessageSender = "self"
	SenderCounterparty MessageSender = "counterparty"
)

type MessageType string

const (
	MessageTypeText   MessageType = "text"
	MessageTypeSystem MessageType = "system"
)

// Message is one chat entry in a contact's thread. Immutable once
// created except for the read flag. System messages are
// counterparty-authored notices synthesized by the deal and escrow
// flows; they arrive already read.
type Message struct {
	ID        string        `json:"id"`
	ContactID string        `json:"contact_id"`
	Sender    MessageSender `json:"sender"`
	Type      MessageType   `json:"type"`
	Content   string        `json:"content"`
	Read      bool          `json:"read"`
	CreatedAt time.Time     `json:"created_at"`
}
