package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"collabhub/internal/domain/entity"
	"collabhub/internal/domain/repository"
	"collabhub/internal/domain/service"
	"collabhub/internal/metrics"
	"collabhub/pkg/errors"
	"collabhub/pkg/logger"
)

const previewLimit = 60

// ConversationUseCase owns the contact list, the per-contact threads
// and the current selection. Deal and escrow flows post their system
// messages through PostSystemMessage.
type ConversationUseCase struct {
	contactRepo repository.ContactRepository
	messageRepo repository.MessageRepository
	coinUseCase *CoinUseCase
	notifier    service.Notifier

	mu         sync.RWMutex
	selectedID string
}

func NewConversationUseCase(
	contactRepo repository.ContactRepository,
	messageRepo repository.MessageRepository,
	coinUseCase *CoinUseCase,
	notifier service.Notifier,
) *ConversationUseCase {
	return &ConversationUseCase{
		contactRepo: contactRepo,
		messageRepo: messageRepo,
		coinUseCase: coinUseCase,
		notifier:    notifier,
	}
}

// SendMessage appends a self-authored message and credits the message
// reward. Blank content is rejected before any state changes.
func (uc *ConversationUseCase) SendMessage(ctx context.Context, contactID, content string) (*entity.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errors.Validation("message content cannot be empty")
	}

	contact, err := uc.contactRepo.GetByID(ctx, contactID)
	if err != nil {
		return nil, err
	}

	message := &entity.Message{
		ID:        uuid.New().String(),
		ContactID: contactID,
		Sender:    entity.SenderSelf,
		Type:      entity.MessageTypeText,
		Content:   content,
		Read:      true,
		CreatedAt: time.Now(),
	}
	if err := uc.messageRepo.Append(ctx, message); err != nil {
		return nil, errors.Internal("Failed to append message", err)
	}

	contact.LastMessage = content
	contact.LastMessageAt = message.CreatedAt
	if err := uc.contactRepo.Update(ctx, contact); err != nil {
		logger.Warn("SendMessage: failed to update contact %s preview: %v", contactID, err)
	}

	if err := uc.coinUseCase.Credit(RewardMessageSent, "message_sent"); err != nil {
		logger.Warn("SendMessage: failed to credit reward: %v", err)
	}

	metrics.MessagesSent.WithLabelValues(string(entity.SenderSelf), string(entity.MessageTypeText)).Inc()
	return message, nil
}

// ReceiveMessage appends a counterparty-authored message, typically a
// simulated arrival. Unread tracking and the notification only apply
// when the contact is not currently selected; a message landing in the
// open thread is delivered already read.
func (uc *ConversationUseCase) ReceiveMessage(ctx context.Context, contactID, content string) (*entity.Message, error) {
	contact, err := uc.contactRepo.GetByID(ctx, contactID)
	if err != nil {
		return nil, err
	}

	selected := uc.SelectedContact() == contactID

	message := &entity.Message{
		ID:        uuid.New().String(),
		ContactID: contactID,
		Sender:    entity.SenderCounterparty,
		Type:      entity.MessageTypeText,
		Content:   content,
		Read:      selected,
		CreatedAt: time.Now(),
	}
	if err := uc.messageRepo.Append(ctx, message); err != nil {
		return nil, errors.Internal("Failed to append message", err)
	}

	contact.LastMessage = content
	contact.LastMessageAt = message.CreatedAt
	if !selected {
		contact.Unread++
	}
	if err := uc.contactRepo.Update(ctx, contact); err != nil {
		logger.Warn("ReceiveMessage: failed to update contact %s: %v", contactID, err)
	}

	if !selected {
		uc.notifier.Notify(
			fmt.Sprintf("New message from %s", contact.Name),
			truncatePreview(content),
			"/messages",
		)
	}

	metrics.MessagesSent.WithLabelValues(string(entity.SenderCounterparty), string(entity.MessageTypeText)).Inc()
	return message, nil
}

// PostSystemMessage appends a synthesized deal/escrow notice. System
// messages arrive read and never touch the unread counter; the flows
// that post them raise their own notifications.
func (uc *ConversationUseCase) PostSystemMessage(ctx context.Context, contactID, content string) (*entity.Message, error) {
	contact, err := uc.contactRepo.GetByID(ctx, contactID)
	if err != nil {
		return nil, err
	}

	message := &entity.Message{
		ID:        uuid.New().String(),
		ContactID: contactID,
		Sender:    entity.SenderCounterparty,
		Type:      entity.MessageTypeSystem,
		Content:   content,
		Read:      true,
		CreatedAt: time.Now(),
	}
	if err := uc.messageRepo.Append(ctx, message); err != nil {
		return nil, errors.Internal("Failed to append system message", err)
	}

	contact.LastMessage = content
	contact.LastMessageAt = message.CreatedAt
	if err := uc.contactRepo.Update(ctx, contact); err != nil {
		logger.Warn("PostSystemMessage: failed to update contact %s: %v", contactID, err)
	}

	metrics.MessagesSent.WithLabelValues(string(entity.SenderCounterparty), string(entity.MessageTypeSystem)).Inc()
	return message, nil
}

// MarkAsRead flips unread counterparty messages in the thread and
// zeroes the contact's counter. Calling it again with no new messages
// changes nothing.
func (uc *ConversationUseCase) MarkAsRead(ctx context.Context, contactID string) error {
	contact, err := uc.contactRepo.GetByID(ctx, contactID)
	if err != nil {
		return err
	}

	flipped, err := uc.messageRepo.MarkThreadRead(ctx, contactID)
	if err != nil {
		return errors.Internal("Failed to mark thread read", err)
	}

	if flipped == 0 && contact.Unread == 0 {
		return nil
	}

	contact.Unread = 0
	return uc.contactRepo.Update(ctx, contact)
}

// SelectContact sets the current selection. Selection alone does not
// clear unread; callers pair it with MarkAsRead.
func (uc *ConversationUseCase) SelectContact(ctx context.Context, contactID string) error {
	if _, err := uc.contactRepo.GetByID(ctx, contactID); err != nil {
		return err
	}

	uc.mu.Lock()
	uc.selectedID = contactID
	uc.mu.Unlock()
	return nil
}

func (uc *ConversationUseCase) SelectedContact() string {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.selectedID
}

func (uc *ConversationUseCase) ListContacts(ctx context.Context) ([]*entity.Contact, error) {
	return uc.contactRepo.List(ctx)
}

func (uc *ConversationUseCase) ListMessages(ctx context.Context, contactID string) ([]*entity.Message, error) {
	if _, err := uc.contactRepo.GetByID(ctx, contactID); err != nil {
		return nil, err
	}
	return uc.messageRepo.ListByContact(ctx, contactID)
}

// TotalUnread sums unread counters across contacts (nav badge).
func (uc *ConversationUseCase) TotalUnread(ctx context.Context) (int, error) {
	contacts, err := uc.contactRepo.List(ctx)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, c := range contacts {
		total += c.Unread
	}
	return total, nil
}

func truncatePreview(content string) string {
	runes := []rune(content)
	if len(runes) <= previewLimit {
		return content
	}
	return string(runes[:previewLimit]) + "..."
}
