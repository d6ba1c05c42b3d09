package router

import (
	"github.com/labstack/echo/v4"

	"collabhub/internal/adapter/api/handler"
)

func SetupCoinRouter(e *echo.Echo, coinHandler *handler.CoinHandler) {
	coins := e.Group("/v1/coins")

	coins.GET("", coinHandler.GetBalance)       // GET  /v1/coins
	coins.POST("/redeem", coinHandler.RedeemCoins) // POST /v1/coins/redeem
}
