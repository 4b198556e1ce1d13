package cmd

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"medicare/config"
	"medicare/cron"
	"medicare/handlers"
	"medicare/routes"
	"medicare/services/admin"
	"medicare/services/banner"
	"medicare/services/booking"
	"medicare/services/catalog"
	"medicare/services/payment"
	"medicare/services/storage"
	"medicare/services/tasks"
	"medicare/services/user"
	"medicare/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/spf13/cobra"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(parent context.Context) error {
	logger := utils.GetLogger()
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	utils.StartHealthMonitor(ctx, 30*time.Second, []*redis.Client{a.cache}, a.mongo)

	var reminders booking.ReminderScheduler
	if config.AppConfig.RedisAddr != "" {
		queue := asynq.NewClient(cron.QueueRedisOpt())
		defer queue.Close()
		reminders = tasks.NewScheduler(queue)
	} else {
		logger.Warn("REDIS_ADDR not set; appointment reminders are disabled")
	}

	var gateway payment.Gateway
	if config.AppConfig.StripeKey != "" {
		stripe.Key = config.AppConfig.StripeKey
		gateway = payment.StripeGateway{}
	} else {
		logger.Warn("STRIPE_SECRET_KEY not set; payment intents are disabled")
	}

	store, err := storage.NewStorageService(config.AppConfig.CloudinaryURL)
	if err != nil {
		return err
	}

	tokens := utils.NewTokenManager(config.AppConfig.JWTSecret, config.AppConfig.TokenTTL)
	userService := user.NewUserService(a.users, utils.NewCache(a.cache, utils.RoleCachePrefix))
	bookingService := booking.NewBookingService(a.bookings, a.appointments, a.users, reminders)
	catalogService := catalog.NewCatalogService(a.tests)
	bannerService := banner.NewBannerService(a.banners, utils.NewCache(a.cache, utils.BannerCachePrefix))
	paymentService := payment.NewPaymentService(a.payments, gateway, config.AppConfig.PaymentCurrency)
	adminService := admin.NewAdminService(a.users, a.tests, a.appointments, a.payments)

	hb := &handlers.HandlerBundle{
		Tokens:      tokens,
		Roles:       userService,
		Auth:        handlers.NewAuthHandler(tokens),
		User:        handlers.NewUserHandler(userService),
		Location:    handlers.NewLocationHandler(a.locations),
		Catalog:     handlers.NewCatalogHandler(catalogService, bookingService),
		Appointment: handlers.NewAppointmentHandler(bookingService),
		Banner:      handlers.NewBannerHandler(bannerService),
		Payment:     handlers.NewPaymentHandler(paymentService),
		Admin:       handlers.NewAdminHandler(adminService),
		Storage:     handlers.NewStorageHandler(store),
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := routes.NewRouter(hb)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + config.AppConfig.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	logger.Info("Server is shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
		return err
	}
	logger.Info("Server stopped gracefully")
	return nil
}
