package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vahanafin/vahana/internal/application/usecase"
	"github.com/vahanafin/vahana/internal/domain/service"
	"github.com/vahanafin/vahana/internal/infrastructure/adapter"
	"github.com/vahanafin/vahana/internal/infrastructure/cache"
	"github.com/vahanafin/vahana/internal/infrastructure/config"
	kafkaInfra "github.com/vahanafin/vahana/internal/infrastructure/kafka"
	pgRepo "github.com/vahanafin/vahana/internal/infrastructure/persistence/postgres"
	grpcPresentation "github.com/vahanafin/vahana/internal/presentation/grpc"
	"github.com/vahanafin/vahana/internal/presentation/rest"
	"github.com/vahanafin/vahana/pkg/auth"
	pkgkafka "github.com/vahanafin/vahana/pkg/kafka"
	"github.com/vahanafin/vahana/pkg/observability"
	pkgpostgres "github.com/vahanafin/vahana/pkg/postgres"
)

func main() {
	logger := observability.InitLogger(observability.LogConfig{
		Service: "vahana",
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  "json",
	})

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	cfg.Validate()

	logger.Info("starting vahana origination service",
		"grpc_port", cfg.GRPCPort,
		"http_port", cfg.HTTPPort,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Observability ------------------------------------------------------
	_, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Error("failed to init metrics", "error", err)
		os.Exit(1)
	}

	if cfg.OTLPEndpoint != "" {
		shutdownTracer, err := observability.InitTracer(ctx, observability.TracingConfig{
			ServiceName: cfg.ServiceName,
			Endpoint:    cfg.OTLPEndpoint,
			Insecure:    true,
		})
		if err != nil {
			logger.Error("failed to init tracing", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := shutdownTracer(context.Background()); err != nil {
				logger.Error("tracer shutdown error", "error", err)
			}
		}()
	}

	// --- Database -----------------------------------------------------------
	if err := pkgpostgres.RunMigrations(cfg.DB.DSN(), "file://migrations"); err != nil {
		logger.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	pool, err := pkgpostgres.NewPool(ctx, cfg.DB)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	// --- Kafka and Redis ----------------------------------------------------
	producer := pkgkafka.NewProducer(cfg.Kafka)
	defer func() {
		if err := producer.Close(); err != nil {
			logger.Error("kafka producer close error", "error", err)
		}
	}()
	publisher := kafkaInfra.NewEventPublisher(producer, cfg.EventTopic, logger)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	// --- Repositories and adapters -----------------------------------------
	appRepo := pgRepo.NewApplicationRepo(pool)
	commissionRepo := pgRepo.NewCommissionRepo(pool)
	policyRepo := pgRepo.NewPolicyRepo(pool)
	ruleRepo := pgRepo.NewLenderRuleRepo(pool)

	policyCounter := cache.NewPolicyCounter(redisClient, policyRepo)
	identity := adapter.NewStubIdentityVerifier()
	bureau := adapter.NewCreditBureauAdapter(adapter.DefaultCreditBureauConfig(), nil)

	// --- Domain services ----------------------------------------------------
	profiler := service.NewRiskProfiler()
	scorecard := service.NewCreditScorecard()
	afford := service.NewAffordabilityCalculator()
	filter := service.NewEligibilityFilter()
	commissionEngine := service.NewCommissionEngine(cfg.Commission)
	pricer := service.NewInsurancePricer(cfg.Insurance)

	// --- Use cases ----------------------------------------------------------
	submitUC := usecase.NewSubmitApplicationUseCase(appRepo, publisher)
	prescreenUC := usecase.NewPrescreenApplicantUseCase(
		appRepo, ruleRepo, publisher, identity, bureau,
		profiler, scorecard, afford, filter, cfg.AnnualRatePct,
	)
	decideUC := usecase.NewDecideApplicationUseCase(appRepo, publisher)
	disburseUC := usecase.NewDisburseLoanUseCase(appRepo, commissionRepo, publisher, commissionEngine)
	quoteUC := usecase.NewQuoteInsuranceUseCase(appRepo, policyRepo, policyCounter, publisher, pricer)
	bindUC := usecase.NewBindPolicyUseCase(policyRepo, publisher)
	payUC := usecase.NewPayCommissionUseCase(commissionRepo, publisher)
	getAppUC := usecase.NewGetApplicationUseCase(appRepo)
	getCommissionUC := usecase.NewGetCommissionUseCase(commissionRepo)
	listAppsUC := usecase.NewListApplicationsUseCase(appRepo)
	getQuotesUC := usecase.NewGetQuotesUseCase(policyRepo)

	// --- Auth ---------------------------------------------------------------
	jwtCfg := auth.JWTConfig{Secret: cfg.Auth.HMACSecret, Issuer: cfg.Auth.Issuer}
	if cfg.Auth.PublicKeyPath != "" {
		pem, err := os.ReadFile(cfg.Auth.PublicKeyPath)
		if err != nil {
			logger.Error("failed to read JWT public key", "error", err)
			os.Exit(1)
		}
		jwtCfg.PublicKeyPEM = string(pem)
	}
	jwtService, err := auth.NewJWTService(jwtCfg)
	if err != nil {
		logger.Error("failed to init JWT service", "error", err)
		os.Exit(1)
	}

	// --- gRPC server --------------------------------------------------------
	handler := grpcPresentation.NewOriginationHandler(
		submitUC, prescreenUC, decideUC, disburseUC,
		quoteUC, bindUC, payUC, getAppUC, getCommissionUC,
		listAppsUC, getQuotesUC,
	)
	grpcServer := grpcPresentation.NewServer(handler, logger, jwtService)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			logger.Error("gRPC server error", "error", err)
			os.Exit(1)
		}
	}()

	// --- HTTP health and metrics server -------------------------------------
	mux := http.NewServeMux()
	rest.NewHealthHandler(logger, pool).RegisterRoutes(mux)
	mux.Handle("GET /metrics", metricsHandler)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "addr", cfg.HTTPAddr())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// --- Graceful shutdown --------------------------------------------------
	<-ctx.Done()
	logger.Info("received shutdown signal")

	grpcServer.GracefulStop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("vahana origination service stopped")
}
