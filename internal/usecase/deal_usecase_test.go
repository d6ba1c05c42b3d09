package usecase

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collabhub/internal/domain/entity"
	"collabhub/pkg/errors"
)

func TestCreateDealValidationLeavesNoTrace(t *testing.T) {
	f := newFixture(0)
	ctx := context.Background()

	cases := []struct {
		name  string
		input CreateDealInput
	}{
		{"blank title", CreateDealInput{ContactID: "1", Title: "  ", Description: "Desc", Amount: 100}},
		{"blank description", CreateDealInput{ContactID: "1", Title: "Title", Description: "", Amount: 100}},
		{"zero amount", CreateDealInput{ContactID: "1", Title: "Title", Description: "Desc", Amount: 0}},
		{"negative amount", CreateDealInput{ContactID: "1", Title: "Title", Description: "Desc", Amount: -10}},
		{"nan amount", CreateDealInput{ContactID: "1", Title: "Title", Description: "Desc", Amount: math.NaN()}},
		{"inf amount", CreateDealInput{ContactID: "1", Title: "Title", Description: "Desc", Amount: math.Inf(1)}},
		{"unknown contact", CreateDealInput{ContactID: "404", Title: "Title", Description: "Desc", Amount: 100}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.deals.CreateDeal(ctx, tc.input)
			require.Error(t, err)
		})
	}

	deals, err := f.deals.ListDeals(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, deals)

	messages, err := f.conversation.ListMessages(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, messages, "failed creation must not post a system message")
	assert.Equal(t, int64(0), f.coins.Balance(), "failed creation must not credit coins")
}

func TestCreateDealSideEffects(t *testing.T) {
	f := newFixture(0)
	ctx := context.Background()

	deal, err := f.deals.CreateDeal(ctx, CreateDealInput{
		ContactID:   "1",
		Title:       "Summer Campaign",
		Description: "Five lifestyle photos",
		Amount:      100,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DealStatusPending, deal.Status)
	assert.Equal(t, "1", deal.ContactID)

	messages, err := f.conversation.ListMessages(ctx, "1")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, entity.MessageTypeSystem, messages[0].Type)
	assert.Contains(t, messages[0].Content, "Summer Campaign")

	assert.Equal(t, int64(RewardDealCreated), f.coins.Balance())
}

func TestUpdateStatusUnknownDeal(t *testing.T) {
	f := newFixture(0)

	_, err := f.deals.UpdateStatus(context.Background(), "missing", entity.DealStatusAccepted)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
	assert.Equal(t, int64(0), f.coins.Balance())
}

func TestDealLifecycleTransitions(t *testing.T) {
	f := newFixture(0)
	ctx := context.Background()

	deal, err := f.deals.CreateDeal(ctx, CreateDealInput{ContactID: "1", Title: "T", Description: "D", Amount: 50})
	require.NoError(t, err)

	// pending -> rejected -> pending (reconsideration) -> accepted -> completed
	for _, status := range []entity.DealStatus{
		entity.DealStatusRejected,
		entity.DealStatusPending,
		entity.DealStatusAccepted,
		entity.DealStatusCompleted,
	} {
		updated, err := f.deals.UpdateStatus(ctx, deal.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}

	// 1 proposal + 4 status notices.
	messages, err := f.conversation.ListMessages(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, messages, 5)

	assert.Equal(t, int64(RewardDealCreated+RewardDealCompleted), f.coins.Balance())
}

func TestInvalidTransitionsRejectedWithoutSideEffects(t *testing.T) {
	f := newFixture(0)
	ctx := context.Background()

	deal, err := f.deals.CreateDeal(ctx, CreateDealInput{ContactID: "1", Title: "T", Description: "D", Amount: 50})
	require.NoError(t, err)
	baseline := f.coins.Balance()

	// pending -> completed skips acceptance.
	_, err = f.deals.UpdateStatus(ctx, deal.ID, entity.DealStatusCompleted)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "INVALID_TRANSITION"))

	messages, err := f.conversation.ListMessages(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, messages, 1, "rejected transition must not post a notice")
	assert.Equal(t, baseline, f.coins.Balance())

	current, err := f.deals.GetDeal(ctx, deal.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DealStatusPending, current.Status)
}

func TestCompletionRewardPaidExactlyOnce(t *testing.T) {
	f := newFixture(0)
	ctx := context.Background()

	deal, err := f.deals.CreateDeal(ctx, CreateDealInput{ContactID: "1", Title: "T", Description: "D", Amount: 50})
	require.NoError(t, err)

	_, err = f.deals.UpdateStatus(ctx, deal.ID, entity.DealStatusAccepted)
	require.NoError(t, err)
	_, err = f.deals.UpdateStatus(ctx, deal.ID, entity.DealStatusCompleted)
	require.NoError(t, err)
	afterFirst := f.coins.Balance()

	// completed is terminal: re-completing is rejected and pays nothing.
	_, err = f.deals.UpdateStatus(ctx, deal.ID, entity.DealStatusCompleted)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "INVALID_TRANSITION"))
	assert.Equal(t, afterFirst, f.coins.Balance())
}

func TestListDealsFiltersByStatus(t *testing.T) {
	f := newFixture(0)
	ctx := context.Background()

	d1, err := f.deals.CreateDeal(ctx, CreateDealInput{ContactID: "1", Title: "A", Description: "D", Amount: 10})
	require.NoError(t, err)
	_, err = f.deals.CreateDeal(ctx, CreateDealInput{ContactID: "2", Title: "B", Description: "D", Amount: 20})
	require.NoError(t, err)

	_, err = f.deals.UpdateStatus(ctx, d1.ID, entity.DealStatusAccepted)
	require.NoError(t, err)

	all, err := f.deals.ListDeals(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	accepted, err := f.deals.ListDeals(ctx, entity.DealStatusAccepted)
	require.NoError(t, err)
	require.Len(t, accepted, 1)
	assert.Equal(t, d1.ID, accepted[0].ID)

	_, err = f.deals.ListDeals(ctx, entity.DealStatus("bogus"))
	require.Error(t, err)
}
