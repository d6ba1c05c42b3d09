package handler

import (
	"github.com/labstack/echo/v4"

	"collabhub/internal/usecase"
	"collabhub/pkg/errors"
	"collabhub/pkg/response"
)

type EscrowHandler struct {
	escrowUC *usecase.EscrowUseCase
}

func NewEscrowHandler(escrowUC *usecase.EscrowUseCase) *EscrowHandler {
	return &EscrowHandler{escrowUC: escrowUC}
}

type CreateEscrowRequest struct {
	DealID string  `json:"deal_id" validate:"required"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type ProcessPaymentRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

func (h *EscrowHandler) ListTransactions(c echo.Context) error {
	transactions, err := h.escrowUC.ListTransactions(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]interface{}{
		"transactions":   transactions,
		"payment_status": h.escrowUC.PaymentStatus(),
	})
}

func (h *EscrowHandler) CreateEscrowPayment(c echo.Context) error {
	var req CreateEscrowRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	txn, err := h.escrowUC.CreateEscrowPayment(c.Request().Context(), req.DealID, req.Amount)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, txn)
}

func (h *EscrowHandler) ReleaseEscrowPayment(c echo.Context) error {
	txn, err := h.escrowUC.ReleaseEscrowPayment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, txn)
}

func (h *EscrowHandler) RefundEscrowPayment(c echo.Context) error {
	txn, err := h.escrowUC.RefundEscrowPayment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, txn)
}

func (h *EscrowHandler) ProcessPayment(c echo.Context) error {
	var req ProcessPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.escrowUC.ProcessPayment(c.Request().Context(), req.Amount); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]interface{}{
		"message": "Payment processed successfully",
	})
}
