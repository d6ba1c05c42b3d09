package entity

import "time"

// Contact is a counterparty (brand or creator) the user can message
// and deal with. Contacts are seeded at session start and never
// deleted while the session lives.
type Contact struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Avatar        string    `json:"avatar"`
	LastMessage   string    `json:"last_message"`
	LastMessageAt time.Time `json:"last_message_at"`
	Unread        int       `json:"unread"`
	Tier          string    `json:"tier,omitempty"`
	Coins         int64     `json:"coins,omitempty"`
	Badges        []string  `json:"badges,omitempty"`
}
