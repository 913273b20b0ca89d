package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/xavierca1/rock-bullion-api/internal/config"
	"github.com/xavierca1/rock-bullion-api/internal/infra/database"
	"github.com/xavierca1/rock-bullion-api/internal/infra/http/handlers"
	"github.com/xavierca1/rock-bullion-api/internal/infra/http/router"
	"github.com/xavierca1/rock-bullion-api/internal/infra/integration/kommo"
	"github.com/xavierca1/rock-bullion-api/internal/infra/integration/whatsapp"
	"github.com/xavierca1/rock-bullion-api/internal/infra/mail"
	"github.com/xavierca1/rock-bullion-api/internal/infra/queue"
	"github.com/xavierca1/rock-bullion-api/internal/logger"
	"github.com/xavierca1/rock-bullion-api/internal/usecase"
)

func main() {
	// .env é opcional
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Storage
	store, err := database.Open(ctx, cfg.StorageURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open storage")
	}
	defer store.Close(context.Background())
	log.Info().Str("backend", store.Kind).Msg("🗄️ storage connected")

	// 2. Seed do catálogo, antes de aceitar tráfego
	catalogUC := usecase.NewCatalogUseCase(store.Products)
	if _, err := catalogUC.SeedIfEmpty(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to seed catalog")
	}

	// 3. Notificações (opcional)
	var producer usecase.QueueProducerInterface
	if cfg.NotificationsEnabled() {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQURL)
		if err != nil {
			log.Warn().Err(err).Msg("⚠️ RabbitMQ unavailable, lead notifications disabled")
		} else {
			defer rabbitMQ.Close()
			producer = queue.NewProducer(rabbitMQ.Ch)
			startNotificationWorker(ctx, cfg, rabbitMQ)
		}
	}

	// 4. UseCases
	createLeadUC := usecase.NewCreateLeadUseCase(store.Leads, producer)
	listLeadsUC := usecase.NewListLeadsUseCase(store.Leads)
	spotPriceUC := usecase.NewSpotPriceUseCase()

	// 5. Handlers + Router
	r := router.New(router.Handlers{
		Health:    handlers.NewHealthHandler(),
		Leads:     handlers.NewLeadHandler(createLeadUC, listLeadsUC),
		Products:  handlers.NewProductHandler(catalogUC),
		SpotPrice: handlers.NewSpotPriceHandler(spotPriceUC),
	})

	log.Warn().Msg("GET /api/leads is public and unauthenticated: anyone can read submitted leads")

	srv := &http.Server{
		Addr:              config.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("🔥 Rock International Bullion API running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
		os.Exit(1)
	}
	log.Info().Msg("server shutdown complete")
}

// startNotificationWorker consome a fila num canal próprio, separado do canal de publish.
func startNotificationWorker(ctx context.Context, cfg *config.Config, rabbitMQ *queue.RabbitMQ) {
	var notifiers []queue.LeadNotifier
	if cfg.MailEnabled() {
		notifiers = append(notifiers, mail.NewEmailSender(
			cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom, cfg.SalesInbox,
		))
	}
	if cfg.KommoEnabled() {
		notifiers = append(notifiers, kommo.NewClient(cfg.KommoAPIToken, cfg.KommoBaseURL))
	}
	if cfg.WhatsAppEnabled() {
		notifiers = append(notifiers, whatsapp.NewClient(
			cfg.WhatsAppAccessToken, cfg.WhatsAppPhoneID, cfg.WhatsAppBaseURL, cfg.WhatsAppTemplate, cfg.WhatsAppSalesDesks,
		))
	}

	consumerCh, err := rabbitMQ.Conn.Channel()
	if err != nil {
		log.Warn().Err(err).Msg("⚠️ failed to open consumer channel, worker not started")
		return
	}

	worker := queue.NewWorker(consumerCh, notifiers...).WithDeadLetter(consumerCh)
	go func() {
		defer consumerCh.Close()
		if err := worker.Start(ctx, queue.QueueName); err != nil {
			log.Error().Err(err).Msg("❌ notification worker stopped")
		}
	}()
}
