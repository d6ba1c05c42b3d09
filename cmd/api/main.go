package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"collabhub/internal/adapter/api"
	"collabhub/internal/adapter/api/handler"
	apimiddleware "collabhub/internal/adapter/api/middleware"
	"collabhub/internal/adapter/api/router"
	"collabhub/internal/adapter/repository"
	"collabhub/internal/domain/service"
	"collabhub/internal/infrastructure/websocket"
	"collabhub/internal/usecase"
	"collabhub/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Session state: seeded in-memory repositories owned by this
	// composition root.
	now := time.Now()
	contactRepo := repository.NewMemoryContactRepository(repository.SeedContacts(now))
	messageRepo := repository.NewMemoryMessageRepository(repository.SeedMessages(now))
	dealRepo := repository.NewMemoryDealRepository(repository.SeedDeals(now))
	escrowRepo := repository.NewMemoryEscrowRepository()

	hub := websocket.NewHub()
	hub.Start(ctx)

	paymentGateway := service.NewSimulatedPaymentService(cfg.PaymentLatency)

	coinUseCase := usecase.NewCoinUseCase(cfg.StartingCoins)
	conversationUseCase := usecase.NewConversationUseCase(contactRepo, messageRepo, coinUseCase, hub)
	dealUseCase := usecase.NewDealUseCase(dealRepo, contactRepo, conversationUseCase, coinUseCase, hub)
	escrowUseCase := usecase.NewEscrowUseCase(escrowRepo, paymentGateway, dealUseCase, hub, cfg.PaymentFeeRate)

	simulator := usecase.NewArrivalSimulator(
		conversationUseCase,
		cfg.SimulatorInterval,
		cfg.SimulatorChance,
		rand.New(rand.NewSource(time.Now().UnixNano())),
	)
	simulator.Start(ctx)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(apimiddleware.Metrics)

	e.Validator = api.NewValidator()

	chatHandler := handler.NewChatHandler(conversationUseCase)
	dealHandler := handler.NewDealHandler(dealUseCase)
	escrowHandler := handler.NewEscrowHandler(escrowUseCase)
	coinHandler := handler.NewCoinHandler(coinUseCase)
	wsHandler := handler.NewWebSocketHandler(hub)
	healthHandler := handler.NewHealthHandler()

	router.SetupHealthRouter(e, healthHandler)
	router.SetupChatRouter(e, chatHandler)
	router.SetupDealRouter(e, dealHandler)
	router.SetupEscrowRouter(e, escrowHandler)
	router.SetupCoinRouter(e, coinHandler)
	router.SetupWebSocketRouter(e, wsHandler)

	go func() {
		log.Printf("Starting server on port %s...", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Cancel background work (simulator, hub) before stopping the
	// server so nothing mutates session state during teardown.
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
}
