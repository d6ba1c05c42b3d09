package service

import (
	"context"
	"fmt"
	"time"

	"collabhub/pkg/logger"
)

// PaymentGatewayService abstracts the external payment processor. The
// core depends only on ok/fail outcomes; every call is a single round
// trip that either fully applies or fully fails.
type PaymentGatewayService interface {
	// Hold places funds on hold and returns a hold reference.
	Hold(ctx context.Context, amount float64) (string, error)
	// Transfer moves held funds to the counterparty.
	Transfer(ctx context.Context, holdRef string) error
	// Refund returns held funds to the payer.
	Refund(ctx context.Context, holdRef string) error
	// Charge is a one-shot payment with no hold.
	Charge(ctx context.Context, amount float64) error
}

// SimulatedPaymentService is the sandbox gateway used outside of real
// processor integration. It sleeps for a fixed latency and succeeds,
// unless a failure hook is installed.
type SimulatedPaymentService struct {
	latency time.Duration

	// FailNext, when set, is consulted before every call. Returning a
	// non-nil error fails the call without side effects.
	FailNext func(op string) error
}

func NewSimulatedPaymentService(latency time.Duration) *SimulatedPaymentService {
	return &SimulatedPaymentService{latency: latency}
}

func (s *SimulatedPaymentService) roundTrip(ctx context.Context, op string) error {
	if s.FailNext != nil {
		if err := s.FailNext(op); err != nil {
			return err
		}
	}
	select {
	case <-time.After(s.latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *SimulatedPaymentService) Hold(ctx context.Context, amount float64) (string, error) {
	logger.Debug("Simulated gateway: holding %.2f", amount)
	if err := s.roundTrip(ctx, "hold"); err != nil {
		return "", err
	}
	ref := fmt.Sprintf("hold-%d", time.Now().UnixNano())
	logger.Debug("Simulated gateway: hold placed, ref=%s", ref)
	return ref, nil
}

func (s *SimulatedPaymentService) Transfer(ctx context.Context, holdRef string) error {
	logger.Debug("Simulated gateway: transferring %s", holdRef)
	return s.roundTrip(ctx, "transfer")
}

func (s *SimulatedPaymentService) Refund(ctx context.Context, holdRef string) error {
	logger.Debug("Simulated gateway: refunding %s", holdRef)
	return s.roundTrip(ctx, "refund")
}

func (s *SimulatedPaymentService) Charge(ctx context.Context, amount float64) error {
	logger.Debug("Simulated gateway: charging %.2f", amount)
	return s.roundTrip(ctx, "charge")
}
