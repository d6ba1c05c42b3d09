package usecase

import (
	"context"
	"math"
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

// PaymentStatus is the orchestrator-wide processing state observable
// by the presentation layer.
type PaymentStatus string

const (
	PaymentStatusIdle       PaymentStatus = "idle"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusSuccess    PaymentStatus = "success"
	PaymentStatusError      PaymentStatus = "error"
)

// EscrowUseCase orchestrates payment holds tied to deals. A successful
// hold commits the deal's acceptance; a successful transfer completes
// it. Gateway failures leave all records as they were.
type EscrowUseCase struct {
	escrowRepo  repository.EscrowRepository
	gateway     service.PaymentGatewayService
	dealUseCase *DealUseCase
	notifier    service.Notifier
	feeRate     float64

	mu     sync.RWMutex
	status PaymentStatus
}

func NewEscrowUseCase(
	escrowRepo repository.EscrowRepository,
	gateway service.PaymentGatewayService,
	dealUseCase *DealUseCase,
	notifier service.Notifier,
	feeRate float64,
) *EscrowUseCase {
	return &EscrowUseCase{
		escrowRepo:  escrowRepo,
		gateway:     gateway,
		dealUseCase: dealUseCase,
		notifier:    notifier,
		feeRate:     feeRate,
		status:      PaymentStatusIdle,
	}
}

func (uc *EscrowUseCase) PaymentStatus() PaymentStatus {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.status
}

func (uc *EscrowUseCase) setStatus(s PaymentStatus) {
	uc.mu.Lock()
	uc.status = s
	uc.mu.Unlock()
}

// CreateEscrowPayment places a hold for the amount and records the
// pending transaction. The platform fee is quoted on the record but
// never charged. On gateway success the owning deal's
// pending -> accepted transition is committed.
func (uc *EscrowUseCase) CreateEscrowPayment(ctx context.Context, dealID string, amount float64) (*entity.EscrowTransaction, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return nil, errors.Validation("escrow amount must be a positive number")
	}

	deal, err := uc.dealUseCase.GetDeal(ctx, dealID)
	if err != nil {
		return nil, err
	}
	if deal.Status != entity.DealStatusPending {
		return nil, errors.Conflict("Deal is not awaiting payment")
	}
	if existing, err := uc.escrowRepo.GetPendingByDealID(ctx, dealID); err == nil && existing != nil {
		return nil, errors.Conflict("Deal already has a pending escrow transaction")
	}

	uc.setStatus(PaymentStatusProcessing)
	holdRef, err := uc.gateway.Hold(ctx, amount)
	if err != nil {
		uc.setStatus(PaymentStatusError)
		metrics.EscrowOperations.WithLabelValues("create", "failure").Inc()
		return nil, errors.PaymentFailed("Failed to create escrow payment. Please try again.", err)
	}

	txn := &entity.EscrowTransaction{
		ID:        uuid.New().String(),
		DealID:    dealID,
		Amount:    amount,
		Fee:       math.Round(amount*uc.feeRate*100) / 100,
		Status:    entity.EscrowStatusPending,
		HoldRef:   holdRef,
		CreatedAt: time.Now(),
	}
	if err := uc.escrowRepo.Create(ctx, txn); err != nil {
		uc.setStatus(PaymentStatusError)
		return nil, err
	}

	if _, err := uc.dealUseCase.UpdateStatus(ctx, dealID, entity.DealStatusAccepted); err != nil {
		logger.Warn("CreateEscrowPayment: failed to accept deal %s after hold: %v", dealID, err)
	}

	uc.setStatus(PaymentStatusSuccess)
	uc.notifier.Notify("Escrow created", "Funds securely held in escrow until deliverables are approved", "/wallet")
	metrics.EscrowOperations.WithLabelValues("create", "success").Inc()

	logger.Info("Escrow transaction %s created for deal %s ($%.2f, fee $%.2f)", txn.ID, dealID, txn.Amount, txn.Fee)
	return txn, nil
}

// ReleaseEscrowPayment transfers held funds to the counterparty and
// completes the owning deal. Only pending transactions can be
// released; terminal transactions are never re-processed.
func (uc *EscrowUseCase) ReleaseEscrowPayment(ctx context.Context, txnID string) (*entity.EscrowTransaction, error) {
	txn, err := uc.escrowRepo.GetByID(ctx, txnID)
	if err != nil {
		return nil, err
	}
	if txn.Status != entity.EscrowStatusPending {
		return nil, errors.Conflict("Escrow transaction is already " + string(txn.Status))
	}

	uc.setStatus(PaymentStatusProcessing)
	if err := uc.gateway.Transfer(ctx, txn.HoldRef); err != nil {
		uc.setStatus(PaymentStatusError)
		metrics.EscrowOperations.WithLabelValues("release", "failure").Inc()
		return nil, errors.PaymentFailed("Failed to release funds. Please try again.", err)
	}

	now := time.Now()
	txn.Status = entity.EscrowStatusReleased
	txn.ProcessedAt = &now
	if err := uc.escrowRepo.Update(ctx, txn); err != nil {
		uc.setStatus(PaymentStatusError)
		return nil, err
	}

	if _, err := uc.dealUseCase.UpdateStatus(ctx, txn.DealID, entity.DealStatusCompleted); err != nil {
		logger.Warn("ReleaseEscrowPayment: failed to complete deal %s: %v", txn.DealID, err)
	}

	uc.setStatus(PaymentStatusSuccess)
	uc.notifier.Notify("Funds released", "Funds released to influencer", "/wallet")
	metrics.EscrowOperations.WithLabelValues("release", "success").Inc()

	logger.Info("Escrow transaction %s released", txn.ID)
	return txn, nil
}

// RefundEscrowPayment returns held funds to the payer. The owning
// deal's status is left to the caller.
func (uc *EscrowUseCase) RefundEscrowPayment(ctx context.Context, txnID string) (*entity.EscrowTransaction, error) {
	txn, err := uc.escrowRepo.GetByID(ctx, txnID)
	if err != nil {
		return nil, err
	}
	if txn.Status != entity.EscrowStatusPending {
		return nil, errors.Conflict("Escrow transaction is already " + string(txn.Status))
	}

	uc.setStatus(PaymentStatusProcessing)
	if err := uc.gateway.Refund(ctx, txn.HoldRef); err != nil {
		uc.setStatus(PaymentStatusError)
		metrics.EscrowOperations.WithLabelValues("refund", "failure").Inc()
		return nil, errors.PaymentFailed("Failed to process refund. Please try again.", err)
	}

	now := time.Now()
	txn.Status = entity.EscrowStatusRefunded
	txn.ProcessedAt = &now
	if err := uc.escrowRepo.Update(ctx, txn); err != nil {
		uc.setStatus(PaymentStatusError)
		return nil, err
	}

	uc.setStatus(PaymentStatusSuccess)
	uc.notifier.Notify("Funds refunded", "Funds refunded to brand", "/wallet")
	metrics.EscrowOperations.WithLabelValues("refund", "success").Inc()

	logger.Info("Escrow transaction %s refunded", txn.ID)
	return txn, nil
}

// ProcessPayment is the generic one-shot charge with no hold.
func (uc *EscrowUseCase) ProcessPayment(ctx context.Context, amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return errors.Validation("payment amount must be a positive number")
	}

	uc.setStatus(PaymentStatusProcessing)
	if err := uc.gateway.Charge(ctx, amount); err != nil {
		uc.setStatus(PaymentStatusError)
		metrics.EscrowOperations.WithLabelValues("charge", "failure").Inc()
		return errors.PaymentFailed("Payment failed. Please try again.", err)
	}

	uc.setStatus(PaymentStatusSuccess)
	uc.notifier.Notify("Payment processed", "Payment processed successfully", "/wallet")
	metrics.EscrowOperations.WithLabelValues("charge", "success").Inc()
	return nil
}

func (uc *EscrowUseCase) ListTransactions(ctx context.Context) ([]*entity.EscrowTransaction, error) {
	return uc.escrowRepo.List(ctx)
}
