package usecase

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collabhub/internal/domain/entity"
	"collabhub/internal/domain/service"
	"collabhub/pkg/errors"
)

func newEscrowFixture(t *testing.T) (*fixture, *EscrowUseCase, *service.SimulatedPaymentService) {
	t.Helper()
	f := newFixture(0)
	gateway := service.NewSimulatedPaymentService(0)
	escrow := NewEscrowUseCase(f.escrowRepo, gateway, f.deals, f.notifier, 0.05)
	return f, escrow, gateway
}

func TestEscrowEndToEnd(t *testing.T) {
	f, escrow, _ := newEscrowFixture(t)
	ctx := context.Background()

	deal, err := f.deals.CreateDeal(ctx, CreateDealInput{ContactID: "1", Title: "Campaign", Description: "Desc", Amount: 100})
	require.NoError(t, err)
	beforeHold := f.coins.Balance()

	txn, err := escrow.CreateEscrowPayment(ctx, deal.ID, 105)
	require.NoError(t, err)
	assert.Equal(t, entity.EscrowStatusPending, txn.Status)
	assert.InDelta(t, 5.25, txn.Fee, 0.001)
	assert.Equal(t, PaymentStatusSuccess, escrow.PaymentStatus())

	accepted, err := f.deals.GetDeal(ctx, deal.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DealStatusAccepted, accepted.Status, "a successful hold commits acceptance")

	released, err := escrow.ReleaseEscrowPayment(ctx, txn.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.EscrowStatusReleased, released.Status)
	require.NotNil(t, released.ProcessedAt)

	completed, err := f.deals.GetDeal(ctx, deal.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DealStatusCompleted, completed.Status)
	assert.Equal(t, beforeHold+RewardDealCompleted, f.coins.Balance())

	// Proposal + acceptance + completion notices in the thread.
	messages, err := f.conversation.ListMessages(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, messages, 3)
}

func TestCreateEscrowRequiresPendingDeal(t *testing.T) {
	f, escrow, _ := newEscrowFixture(t)
	ctx := context.Background()

	deal, err := f.deals.CreateDeal(ctx, CreateDealInput{ContactID: "1", Title: "T", Description: "D", Amount: 100})
	require.NoError(t, err)
	_, err = f.deals.UpdateStatus(ctx, deal.ID, entity.DealStatusRejected)
	require.NoError(t, err)

	_, err = escrow.CreateEscrowPayment(ctx, deal.ID, 100)
	require.Error(t, err)

	txns, err := escrow.ListTransactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestCreateEscrowRejectsSecondPendingHold(t *testing.T) {
	f, escrow, _ := newEscrowFixture(t)
	ctx := context.Background()

	d1, err := f.deals.CreateDeal(ctx, CreateDealInput{ContactID: "1", Title: "T", Description: "D", Amount: 100})
	require.NoError(t, err)
	_, err = escrow.CreateEscrowPayment(ctx, d1.ID, 100)
	require.NoError(t, err)

	// The hold accepted the deal, so a second hold fails on status
	// before it ever reaches the duplicate check.
	_, err = escrow.CreateEscrowPayment(ctx, d1.ID, 100)
	require.Error(t, err)

	txns, err := escrow.ListTransactions(ctx)
	require.NoError(t, err)
	assert.Len(t, txns, 1)
}

func TestCreateEscrowGatewayFailureLeavesNoRecord(t *testing.T) {
	f, escrow, gateway := newEscrowFixture(t)
	ctx := context.Background()

	deal, err := f.deals.CreateDeal(ctx, CreateDealInput{ContactID: "1", Title: "T", Description: "D", Amount: 100})
	require.NoError(t, err)

	gateway.FailNext = func(op string) error {
		return stderrors.New("gateway unavailable")
	}

	_, err = escrow.CreateEscrowPayment(ctx, deal.ID, 100)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "PAYMENT_FAILED"))
	assert.Equal(t, PaymentStatusError, escrow.PaymentStatus())

	txns, err := escrow.ListTransactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, txns)

	still, err := f.deals.GetDeal(ctx, deal.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DealStatusPending, still.Status)
}

func TestReleaseGatewayFailureLeavesTransactionPending(t *testing.T) {
	f, escrow, gateway := newEscrowFixture(t)
	ctx := context.Background()

	deal, err := f.deals.CreateDeal(ctx, CreateDealInput{ContactID: "1", Title: "T", Description: "D", Amount: 100})
	require.NoError(t, err)
	txn, err := escrow.CreateEscrowPayment(ctx, deal.ID, 100)
	require.NoError(t, err)

	gateway.FailNext = func(op string) error {
		if op == "transfer" {
			return stderrors.New("transfer declined")
		}
		return nil
	}

	_, err = escrow.ReleaseEscrowPayment(ctx, txn.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "PAYMENT_FAILED"))

	current, err := f.escrowRepo.GetByID(ctx, txn.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.EscrowStatusPending, current.Status)

	dealNow, err := f.deals.GetDeal(ctx, deal.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DealStatusAccepted, dealNow.Status, "failed release must not complete the deal")
}

func TestTerminalTransactionsAreNeverReprocessed(t *testing.T) {
	f, escrow, _ := newEscrowFixture(t)
	ctx := context.Background()

	deal, err := f.deals.CreateDeal(ctx, CreateDealInput{ContactID: "1", Title: "T", Description: "D", Amount: 100})
	require.NoError(t, err)
	txn, err := escrow.CreateEscrowPayment(ctx, deal.ID, 100)
	require.NoError(t, err)
	_, err = escrow.ReleaseEscrowPayment(ctx, txn.ID)
	require.NoError(t, err)
	balance := f.coins.Balance()

	// Refunding a released transaction fails and changes nothing.
	_, err = escrow.RefundEscrowPayment(ctx, txn.ID)
	require.Error(t, err)

	// So does a second release.
	_, err = escrow.ReleaseEscrowPayment(ctx, txn.ID)
	require.Error(t, err)

	current, err := f.escrowRepo.GetByID(ctx, txn.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.EscrowStatusReleased, current.Status)
	assert.Equal(t, balance, f.coins.Balance())
}

func TestRefundLeavesDealStatusAlone(t *testing.T) {
	f, escrow, _ := newEscrowFixture(t)
	ctx := context.Background()

	deal, err := f.deals.CreateDeal(ctx, CreateDealInput{ContactID: "1", Title: "T", Description: "D", Amount: 100})
	require.NoError(t, err)
	txn, err := escrow.CreateEscrowPayment(ctx, deal.ID, 100)
	require.NoError(t, err)

	refunded, err := escrow.RefundEscrowPayment(ctx, txn.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.EscrowStatusRefunded, refunded.Status)

	dealNow, err := f.deals.GetDeal(ctx, deal.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DealStatusAccepted, dealNow.Status, "refund does not touch the deal")
}

func TestUnknownTransaction(t *testing.T) {
	_, escrow, _ := newEscrowFixture(t)

	_, err := escrow.ReleaseEscrowPayment(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))

	_, err = escrow.RefundEscrowPayment(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestProcessPaymentTracksStatus(t *testing.T) {
	_, escrow, gateway := newEscrowFixture(t)
	ctx := context.Background()

	require.NoError(t, escrow.ProcessPayment(ctx, 50))
	assert.Equal(t, PaymentStatusSuccess, escrow.PaymentStatus())

	gateway.FailNext = func(op string) error {
		return stderrors.New("card declined")
	}
	err := escrow.ProcessPayment(ctx, 50)
	require.Error(t, err)
	assert.Equal(t, PaymentStatusError, escrow.PaymentStatus())
}
