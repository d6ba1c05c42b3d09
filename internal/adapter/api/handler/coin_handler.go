package handler

import (
	"github.com/labstack/echo/v4"

	"collabhub/internal/usecase"
	"collabhub/pkg/errors"
	"collabhub/pkg/response"
)

type CoinHandler struct {
	coinUC *usecase.CoinUseCase
}

func NewCoinHandler(coinUC *usecase.CoinUseCase) *CoinHandler {
	return &CoinHandler{coinUC: coinUC}
}

type RedeemCoinsRequest struct {
	Amount int64 `json:"amount" validate:"required,gt=0"`
}

func (h *CoinHandler) GetBalance(c echo.Context) error {
	return response.Success(c, map[string]interface{}{
		"balance": h.coinUC.Balance(),
	})
}

// RedeemCoins debits the balance; insufficient funds surface as a
// recoverable error with both amounts in the message.
func (h *CoinHandler) RedeemCoins(c echo.Context) error {
	var req RedeemCoinsRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.coinUC.Debit(req.Amount); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]interface{}{
		"redeemed": req.Amount,
		"balance":  h.coinUC.Balance(),
	})
}
