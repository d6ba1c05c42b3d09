package repository

import (
	"time"

	"collabhub/internal/domain/entity"
)

// SeedContacts returns the contact list a fresh session starts with.
func SeedContacts(now time.Time) []*entity.Contact {
	return []*entity.Contact{
		{
			ID:            "1",
			Name:          "Fashion Brand",
			Avatar:        "/placeholder.svg",
			LastMessage:   "Hi there! We loved your previous work and...",
			LastMessageAt: now.Add(-2 * time.Minute),
			Unread:        2,
			Tier:          "Gold",
			Coins:         450,
			Badges:        []string{"Top Brand", "Quick Responder"},
		},
		{
			ID:            "2",
			Name:          "Travel Company",
			Avatar:        "/placeholder.svg",
			LastMessage:   "Thanks for sending over your media kit!",
			LastMessageAt: now.Add(-1 * time.Hour),
			Tier:          "Silver",
			Coins:         250,
			Badges:        []string{"Trusted Partner"},
		},
		{
			ID:            "3",
			Name:          "Tech Gadgets",
			Avatar:        "/placeholder.svg",
			LastMessage:   "Would you be interested in reviewing our...",
			LastMessageAt: now.Add(-3 * time.Hour),
			Tier:          "Bronze",
			Coins:         120,
		},
		{
			ID:            "4",
			Name:          "Beauty Brand",
			Avatar:        "/placeholder.svg",
			LastMessage:   "Contract sent! Please review and let me know...",
			LastMessageAt: now.Add(-24 * time.Hour),
			Tier:          "Gold",
			Coins:         520,
			Badges:        []string{"Top Deals", "Verified"},
		},
		{
			ID:            "5",
			Name:          "Fitness App",
			Avatar:        "/placeholder.svg",
			LastMessage:   "Great call today! Looking forward to...",
			LastMessageAt: now.Add(-48 * time.Hour),
			Tier:          "Silver",
			Coins:         180,
		},
	}
}

// SeedMessages returns the initial thread history, keyed by contact
// id. Only the first contact starts with a conversation; the last
// counterparty message is still unread.
func SeedMessages(now time.Time) map[string][]*entity.Message {
	at := func(minutesAgo int) time.Time {
		return now.Add(-time.Duration(minutesAgo) * time.Minute)
	}
	thread := []*entity.Message{
		{ID: "m-1", ContactID: "1", Sender: entity.SenderCounterparty, Type: entity.MessageTypeText, Read: true, CreatedAt: at(55), Content: "Hi there! We loved your previous work and would like to discuss a potential collaboration for our upcoming summer campaign."},
		{ID: "m-2", ContactID: "1", Sender: entity.SenderCounterparty, Type: entity.MessageTypeText, Read: true, CreatedAt: at(54), Content: "We're looking for lifestyle content creators who can showcase our products in natural, everyday settings."},
		{ID: "m-3", ContactID: "1", Sender: entity.SenderSelf, Type: entity.MessageTypeText, Read: true, CreatedAt: at(42), Content: "Hello! Thank you for reaching out. I'd be very interested in learning more about your summer campaign."},
		{ID: "m-4", ContactID: "1", Sender: entity.SenderSelf, Type: entity.MessageTypeText, Read: true, CreatedAt: at(41), Content: "My content focuses on sustainable living and mindful travel, which might be a great fit for your brand if that aligns with your values."},
		{ID: "m-5", ContactID: "1", Sender: entity.SenderCounterparty, Type: entity.MessageTypeText, Read: true, CreatedAt: at(25), Content: "That sounds perfect! Sustainability is a key part of our brand identity. Could you share some examples of similar collaborations you've done in the past?"},
		{ID: "m-6", ContactID: "1", Sender: entity.SenderSelf, Type: entity.MessageTypeText, Read: true, CreatedAt: at(19), Content: "Absolutely! I've worked with several ethical brands. I'll send over some examples from my portfolio."},
		{ID: "m-7", ContactID: "1", Sender: entity.SenderCounterparty, Type: entity.MessageTypeText, Read: false, CreatedAt: at(12), Content: "Great! Looking forward to seeing them. Also, could you let me know your typical rates for Instagram posts and Stories?"},
	}
	return map[string][]*entity.Message{"1": thread}
}

// SeedDeals returns the deals a fresh session starts with.
func SeedDeals(now time.Time) []*entity.Deal {
	return []*entity.Deal{
		{
			ID:          "d-1",
			ContactID:   "1",
			Title:       "Summer Campaign Collaboration",
			Description: "Create 5 lifestyle photos featuring our new sustainable clothing line",
			Amount:      1200,
			Status:      entity.DealStatusPending,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "d-2",
			ContactID:   "4",
			Title:       "Beauty Product Review",
			Description: "Review our new skincare collection with minimum 3 Instagram posts",
			Amount:      800,
			Status:      entity.DealStatusAccepted,
			CreatedAt:   now.Add(-24 * time.Hour),
			UpdatedAt:   now.Add(-24 * time.Hour),
		},
	}
}
