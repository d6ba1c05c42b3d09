package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"collabhub/internal/domain/entity"
	"collabhub/internal/domain/repository"
	"collabhub/internal/domain/service"
	"collabhub/internal/metrics"
	"collabhub/pkg/errors"
	"collabhub/pkg/logger"
)

var dealStatusMessages = map[entity.DealStatus]string{
	entity.DealStatusAccepted:  "✅ Deal accepted! Let's get started.",
	entity.DealStatusRejected:  "❌ Deal declined. Maybe next time!",
	entity.DealStatusCompleted: "🎉 Deal completed successfully!",
	entity.DealStatusPending:   "⏳ Deal status updated to pending.",
}

// DealUseCase owns the deal lifecycle. Every applied transition posts
// a system message into the owning contact's thread; completing a deal
// additionally awards the completion reward.
type DealUseCase struct {
	dealRepo     repository.DealRepository
	contactRepo  repository.ContactRepository
	conversation *ConversationUseCase
	coinUseCase  *CoinUseCase
	notifier     service.Notifier
}

func NewDealUseCase(
	dealRepo repository.DealRepository,
	contactRepo repository.ContactRepository,
	conversation *ConversationUseCase,
	coinUseCase *CoinUseCase,
	notifier service.Notifier,
) *DealUseCase {
	return &DealUseCase{
		dealRepo:     dealRepo,
		contactRepo:  contactRepo,
		conversation: conversation,
		coinUseCase:  coinUseCase,
		notifier:     notifier,
	}
}

type CreateDealInput struct {
	ContactID   string
	Title       string
	Description string
	Amount      float64
}

// CreateDeal validates the proposal and, on success, records a pending
// deal, posts the proposal system message and credits the creation
// reward. Validation failure leaves no trace.
func (uc *DealUseCase) CreateDeal(ctx context.Context, input CreateDealInput) (*entity.Deal, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, errors.Validation("deal title cannot be empty")
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, errors.Validation("deal description cannot be empty")
	}
	if math.IsNaN(input.Amount) || math.IsInf(input.Amount, 0) || input.Amount <= 0 {
		return nil, errors.Validation("deal amount must be a positive number")
	}
	if _, err := uc.contactRepo.GetByID(ctx, input.ContactID); err != nil {
		return nil, err
	}

	now := time.Now()
	deal := &entity.Deal{
		ID:          uuid.New().String(),
		ContactID:   input.ContactID,
		Title:       input.Title,
		Description: input.Description,
		Amount:      input.Amount,
		Status:      entity.DealStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.dealRepo.Create(ctx, deal); err != nil {
		return nil, err
	}

	proposal := fmt.Sprintf("💼 New deal proposed: %q for $%.0f", deal.Title, deal.Amount)
	if _, err := uc.conversation.PostSystemMessage(ctx, deal.ContactID, proposal); err != nil {
		logger.Warn("CreateDeal: failed to post proposal message for deal %s: %v", deal.ID, err)
	}

	if err := uc.coinUseCase.Credit(RewardDealCreated, "deal_created"); err != nil {
		logger.Warn("CreateDeal: failed to credit reward: %v", err)
	}

	uc.notifier.Notify("New deal created", fmt.Sprintf("%s was successfully created.", deal.Title), "/deals")
	metrics.DealsCreated.Inc()

	logger.Info("Deal created: %s (%s, $%.0f)", deal.ID, deal.Title, deal.Amount)
	return deal, nil
}

// UpdateStatus applies one transition from the lifecycle table. An
// unknown deal or a transition outside the table fails with no side
// effects. The completion reward is paid exactly once, on the
// accepted -> completed edge.
func (uc *DealUseCase) UpdateStatus(ctx context.Context, dealID string, status entity.DealStatus) (*entity.Deal, error) {
	if !status.Valid() {
		return nil, errors.Validation(fmt.Sprintf("unknown deal status %q", status))
	}

	deal, err := uc.dealRepo.GetByID(ctx, dealID)
	if err != nil {
		return nil, err
	}
	if !entity.CanTransition(deal.Status, status) {
		return nil, errors.InvalidTransition(string(deal.Status), string(status))
	}

	deal.Status = status
	deal.UpdatedAt = time.Now()
	if err := uc.dealRepo.Update(ctx, deal); err != nil {
		return nil, err
	}

	if _, err := uc.conversation.PostSystemMessage(ctx, deal.ContactID, dealStatusMessages[status]); err != nil {
		logger.Warn("UpdateStatus: failed to post status message for deal %s: %v", deal.ID, err)
	}

	if status == entity.DealStatusCompleted {
		if err := uc.coinUseCase.Credit(RewardDealCompleted, "deal_completed"); err != nil {
			logger.Warn("UpdateStatus: failed to credit completion reward: %v", err)
		}
		uc.notifier.Notify("Deal completed", fmt.Sprintf("You earned %d coins for completing the deal!", RewardDealCompleted), "/deals")
	}

	metrics.DealTransitions.WithLabelValues(string(status)).Inc()
	logger.Info("Deal %s moved to %s", deal.ID, status)
	return deal, nil
}

func (uc *DealUseCase) GetDeal(ctx context.Context, dealID string) (*entity.Deal, error) {
	return uc.dealRepo.GetByID(ctx, dealID)
}

// ListDeals returns deals in creation order, optionally filtered by
// status ("" means all).
func (uc *DealUseCase) ListDeals(ctx context.Context, status entity.DealStatus) ([]*entity.Deal, error) {
	if status != "" && !status.Valid() {
		return nil, errors.Validation(fmt.Sprintf("unknown deal status %q", status))
	}
	return uc.dealRepo.List(ctx, status)
}
