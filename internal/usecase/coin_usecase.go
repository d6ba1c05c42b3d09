package usecase

import (
	"sync"

	"collabhub/internal/metrics"
	"collabhub/pkg/errors"
	"collabhub/pkg/logger"
)

// Coin rewards for engagement actions.
const (
	RewardMessageSent   = 5
	RewardDealCreated   = 50
	RewardDealCompleted = 200
)

// CoinUseCase owns the session's coin balance. The balance is never
// negative; credits and debits are atomic per call.
type CoinUseCase struct {
	mu      sync.Mutex
	balance int64
}

func NewCoinUseCase(startingBalance int64) *CoinUseCase {
	if startingBalance < 0 {
		startingBalance = 0
	}
	return &CoinUseCase{balance: startingBalance}
}

// Credit increases the balance. Callers are responsible for any
// user-visible notification; reason is only used for metrics.
func (uc *CoinUseCase) Credit(amount int64, reason string) error {
	if amount <= 0 {
		return errors.Validation("credit amount must be positive")
	}

	uc.mu.Lock()
	uc.balance += amount
	balance := uc.balance
	uc.mu.Unlock()

	metrics.CoinsAwarded.WithLabelValues(reason).Add(float64(amount))
	logger.Debug("Credited %d coins (%s), balance now %d", amount, reason, balance)
	return nil
}

// Debit decreases the balance if it covers the amount; otherwise the
// balance is unchanged and an InsufficientFunds error is returned.
func (uc *CoinUseCase) Debit(amount int64) error {
	if amount <= 0 {
		return errors.Validation("debit amount must be positive")
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.balance < amount {
		return errors.InsufficientFunds(amount, uc.balance)
	}
	uc.balance -= amount
	return nil
}

func (uc *CoinUseCase) Balance() int64 {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.balance
}
