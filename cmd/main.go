package main

import (
	"context"
	stderrors "errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	adminapp "github.com/muhammadheryan/clinic-companion/application/admin"
	cartapp "github.com/muhammadheryan/clinic-companion/application/cart"
	"github.com/muhammadheryan/clinic-companion/application/endpoint"
	"github.com/muhammadheryan/clinic-companion/application/events"
	leadapp "github.com/muhammadheryan/clinic-companion/application/lead"
	membershipapp "github.com/muhammadheryan/clinic-companion/application/membership"
	otpapp "github.com/muhammadheryan/clinic-companion/application/otp"
	rewardapp "github.com/muhammadheryan/clinic-companion/application/reward"
	sessionapp "github.com/muhammadheryan/clinic-companion/application/session"
	"github.com/muhammadheryan/clinic-companion/application/store"
	"github.com/muhammadheryan/clinic-companion/cmd/config"
	redisclient "github.com/muhammadheryan/clinic-companion/cmd/redis"
	_ "github.com/muhammadheryan/clinic-companion/docs"
	"github.com/muhammadheryan/clinic-companion/repository/securestore"
	"github.com/muhammadheryan/clinic-companion/thirdparty/backend"
	"github.com/muhammadheryan/clinic-companion/thirdparty/rabbitmq"
	"github.com/muhammadheryan/clinic-companion/transport"
	"github.com/muhammadheryan/clinic-companion/utils/logger"
	"github.com/muhammadheryan/clinic-companion/utils/normalize"
	validatorx "github.com/muhammadheryan/clinic-companion/utils/validator"
	"go.uber.org/zap"
)

// @title Clinic Companion Bridge API
// @version 1.0
// @description Local bridge to the patient companion session
// @host localhost:8085
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	validatorx.Init()
	logger.Info("Starting clinic companion", zap.String("env", cfg.Environment))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	secure := openSecureStore(cfg)
	defer func() {
		_ = redisclient.Close()
	}()

	client := backend.NewClient(backend.WithHTTPClient(&http.Client{Timeout: cfg.Backend.HTTPTimeout}))
	resolver := endpoint.NewResolver(secure, normalize.DevBackendURL(cfg.Backend.DevHostURI, cfg.Backend.DevAPIPort))
	state := store.New(store.State{})

	// Analytics go straight to the backend unless the queue is enabled
	var publisher events.Publisher = events.NewDirectPublisher(client)
	if cfg.RabbitMQ.Enabled {
		queued, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cfg.RabbitMQ.Queue)
		if err != nil {
			logger.Fatal("err connect rabbitmq publisher", zap.Error(err))
		}
		defer queued.Close()

		consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cfg.RabbitMQ.Queue, client)
		if err != nil {
			logger.Fatal("err connect rabbitmq consumer", zap.Error(err))
		}
		defer consumer.Close()
		if err := consumer.Start(ctx); err != nil {
			logger.Fatal("err start rabbitmq consumer", zap.Error(err))
		}
		publisher = queued
	}
	tracker := events.NewTracker(publisher, state, uuid.NewString())
	defer tracker.Wait()

	// Initialize application layers
	MembershipApp := membershipapp.NewMembershipApp(client, state, tracker)
	SessionApp := sessionapp.NewSessionApp(cfg, client, resolver, secure, state, MembershipApp, tracker)
	OtpApp := otpapp.NewOtpApp(client, resolver, secure, state, SessionApp, otpapp.WithCooldownFallback(cfg.Otp.CooldownFallback))
	CartApp := cartapp.NewCartApp(client, state, tracker)
	RewardApp := rewardapp.NewRewardApp(state, tracker)
	AdminApp := adminapp.NewAdminApp(cfg, client, secure)
	LeadApp := leadapp.NewLeadApp(client, AdminApp)

	boot, err := SessionApp.Bootstrap(ctx)
	if err != nil {
		logger.Error("err bootstrap session", zap.Error(err))
	} else {
		logger.Info("session restored", zap.Bool("connected", boot.Connected), zap.String("step", string(boot.Step)))
	}

	httpTransport := transport.NewTransport(cfg.Bridge.APIKey, &transport.RestHandler{
		SessionApp:    SessionApp,
		OtpApp:        OtpApp,
		MembershipApp: MembershipApp,
		CartApp:       CartApp,
		RewardApp:     RewardApp,
		AdminApp:      AdminApp,
		LeadApp:       LeadApp,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("bridge running", zap.String("port", cfg.Server.Port))
	if err := server.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		logger.Fatal("failed server", zap.Error(err))
	}
}

func openSecureStore(cfg *config.Config) securestore.Store {
	switch cfg.Store.Driver {
	case "file":
		s, err := securestore.NewFileStore(cfg.Store.FilePath, cfg.Store.EncryptionKey)
		if err != nil {
			logger.Fatal("err open file store", zap.Error(err))
		}
		return s
	case "redis":
		c, err := redisclient.New(cfg)
		if err != nil {
			logger.Fatal("err connect redis", zap.Error(err))
		}
		return securestore.NewRedisStore(c, cfg.Redis.KeyPrefix)
	default:
		return securestore.NewMemoryStore()
	}
}
