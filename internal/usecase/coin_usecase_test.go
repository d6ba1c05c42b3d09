package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collabhub/pkg/errors"
)

func TestCoinCreditAndDebit(t *testing.T) {
	coins := NewCoinUseCase(100)

	require.NoError(t, coins.Credit(50, "test"))
	assert.Equal(t, int64(150), coins.Balance())

	require.NoError(t, coins.Debit(30))
	assert.Equal(t, int64(120), coins.Balance())
}

func TestCoinDebitInsufficientFunds(t *testing.T) {
	coins := NewCoinUseCase(10)

	err := coins.Debit(25)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "INSUFFICIENT_FUNDS"))
	assert.Contains(t, err.Error(), "25")
	assert.Contains(t, err.Error(), "10")
	assert.Equal(t, int64(10), coins.Balance(), "failed debit must not change the balance")
}

func TestCoinRejectsNonPositiveAmounts(t *testing.T) {
	coins := NewCoinUseCase(10)

	assert.Error(t, coins.Credit(0, "test"))
	assert.Error(t, coins.Credit(-5, "test"))
	assert.Error(t, coins.Debit(0))
	assert.Error(t, coins.Debit(-5))
	assert.Equal(t, int64(10), coins.Balance())
}

func TestCoinBalanceEqualsCreditsMinusDebits(t *testing.T) {
	coins := NewCoinUseCase(0)

	credits := []int64{5, 50, 200, 5}
	debits := []int64{40, 100}

	var expected int64
	for _, c := range credits {
		require.NoError(t, coins.Credit(c, "test"))
		expected += c
	}
	for _, d := range debits {
		require.NoError(t, coins.Debit(d))
		expected -= d
	}

	assert.Equal(t, expected, coins.Balance())
	assert.GreaterOrEqual(t, coins.Balance(), int64(0))
}

func TestCoinNegativeSeedClampedToZero(t *testing.T) {
	coins := NewCoinUseCase(-7)
	assert.Equal(t, int64(0), coins.Balance())
}
