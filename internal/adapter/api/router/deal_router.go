package router

import (
	"github.com/labstack/echo/v4"

	"collabhub/internal/adapter/api/handler"
)

func SetupDealRouter(e *echo.Echo, dealHandler *handler.DealHandler) {
	deals := e.Group("/v1/deals")

	deals.POST("", dealHandler.CreateDeal)          // POST /v1/deals
	deals.GET("", dealHandler.ListDeals)            // GET  /v1/deals?status=
	deals.GET("/:id", dealHandler.GetDeal)          // GET  /v1/deals/:id
	deals.PUT("/:id/status", dealHandler.UpdateStatus) // PUT  /v1/deals/:id/status
}
