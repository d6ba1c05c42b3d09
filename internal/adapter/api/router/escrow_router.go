package router

import (
	"github.com/labstack/echo/v4"

	"collabhub/internal/adapter/api/handler"
)

func SetupEscrowRouter(e *echo.Echo, escrowHandler *handler.EscrowHandler) {
	escrow := e.Group("/v1/escrow")

	escrow.GET("", escrowHandler.ListTransactions)           // GET  /v1/escrow - transactions + payment status
	escrow.POST("", escrowHandler.CreateEscrowPayment)       // POST /v1/escrow - hold funds for a deal
	escrow.POST("/:id/release", escrowHandler.ReleaseEscrowPayment) // POST /v1/escrow/:id/release
	escrow.POST("/:id/refund", escrowHandler.RefundEscrowPayment)   // POST /v1/escrow/:id/refund

	e.POST("/v1/payments", escrowHandler.ProcessPayment) // POST /v1/payments - one-shot charge
}
