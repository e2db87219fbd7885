package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	appbilling "github.com/acme/dashboard/internal/application/billing"
	appidentity "github.com/acme/dashboard/internal/application/identity"
	apppartner "github.com/acme/dashboard/internal/application/partner"
	"github.com/acme/dashboard/internal/infrastructure/auth"
	"github.com/acme/dashboard/internal/infrastructure/cache"
	"github.com/acme/dashboard/internal/infrastructure/config"
	"github.com/acme/dashboard/internal/infrastructure/logger"
	"github.com/acme/dashboard/internal/infrastructure/persistence"
	"github.com/acme/dashboard/internal/interfaces/http/handler"
	"github.com/acme/dashboard/internal/interfaces/http/middleware"
	"github.com/acme/dashboard/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var version = "dev"

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("Server exited with error", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	db, err := persistence.NewDatabase(cfg.Database, log)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() { _ = redisClient.Close() }()

	invalidator := cache.NewRedisListingInvalidator(redisClient, log)

	// Every instance, this one included, hears its peers' invalidations here.
	// Cached listing responses would be dropped at this point; today the
	// subscriber gives operators a cluster-wide invalidation trail.
	subCtx, subCancel := context.WithCancel(context.Background())
	defer subCancel()
	go func() {
		err := invalidator.Subscribe(subCtx, func(path string) {
			log.Info("Listing invalidated", zap.String("path", path))
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Warn("Listing invalidation subscriber stopped", zap.Error(err))
		}
	}()

	invoiceRepo := persistence.NewGormInvoiceRepository(db)
	customerRepo := persistence.NewGormCustomerRepository(db)
	userRepo := persistence.NewGormUserRepository(db)

	tokens := auth.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiry)
	verifier := auth.NewBcryptCredentialVerifier(userRepo)

	invoiceService := appbilling.NewInvoiceService(invoiceRepo, invalidator, cfg.Dashboard.PageSize, log)
	customerService := apppartner.NewCustomerService(customerRepo, invalidator, cfg.Dashboard.PageSize, cfg.Dashboard.AvatarURL, log)
	authService := appidentity.NewAuthService(verifier, tokens, log)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.CORS())
	engine.Use(logger.GinMiddleware(log))

	authRequired := middleware.RequireAuth(tokens)
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(handler.NewSystemHandler(version))
	r.Register(handler.NewAuthHandler(authService))
	r.Register(protected{authRequired, handler.NewInvoiceHandler(invoiceService)})
	r.Register(protected{authRequired, handler.NewCustomerHandler(customerService)})
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server listening", zap.String("addr", srv.Addr), zap.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("Shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("Server stopped")
	return nil
}

// protected wraps a registrar so its routes sit behind the auth middleware.
type protected struct {
	auth      gin.HandlerFunc
	registrar router.RouteRegistrar
}

func (p protected) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("", p.auth)
	p.registrar.RegisterRoutes(group)
}
