package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"seven18/config"
	"seven18/database"
	"seven18/database/repository/inquiry"
	"seven18/handlers"
	"seven18/middleware"
	"seven18/routes"
	"seven18/services/mailer"
	"seven18/services/quote"
	"seven18/services/wizard"
	"seven18/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Mongo is optional: without it the inquiry lead log is disabled.
	if err := database.InitDB(); err != nil {
		logger.Warn("MongoDB unavailable; inquiry lead log disabled", zap.Error(err))
	}

	redisClient := utils.GetWizardCacheClient()

	stripe.Key = config.AppConfig.StripeKey

	pricer := quote.NewGeminiPricer(config.AppConfig.GeminiAPIKey, logger)
	dispatcher := mailer.NewSMTPDispatcher(
		config.AppConfig.SMTPHost,
		config.AppConfig.SMTPPort,
		config.AppConfig.EmailUser,
		config.AppConfig.EmailPass,
		logger,
	)
	mailService := mailer.NewService(dispatcher, config.AppConfig.EmailUser, config.AppConfig.BookingEmail, logger)

	var payments wizard.PaymentHandler
	if config.AppConfig.StripeKey != "" {
		payments = wizard.NewStripePaymentHandler(logger)
	} else {
		payments = wizard.NewSimulatedPaymentHandler(logger)
	}

	var leads wizard.LeadRecorder
	if repo := inquiry.NewRepository(database.MongoClient); repo != nil {
		leads = repo
	}

	store := wizard.NewRedisSessionStore(redisClient)
	wizardService := wizard.NewService(store, pricer, pricer, mailService, payments, leads, logger)

	wizardHandler := handlers.NewWizardHandler(wizardService)
	bookingHandler := handlers.NewBookingHandler(mailService, leads, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimit())

	routes.RegisterRoutes(router, wizardHandler, bookingHandler)

	utils.StartHealthMonitor(redisClient, database.MongoClient, mailService.Available(), pricer.Available())

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Info("server starting", zap.String("port", config.AppConfig.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}
