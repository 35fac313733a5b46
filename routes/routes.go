package routes

import (
	"time"

	"seven18/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires CORS and all API routes onto the router.
func RegisterRoutes(router *gin.Engine, wizardHandler *handlers.WizardHandler, bookingHandler *handlers.BookingHandler) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", handlers.HealthCheck)

	api := router.Group("/api")

	sessions := api.Group("/wizard/session")
	{
		sessions.POST("", wizardHandler.StartSession)
		sessions.GET("/:id", wizardHandler.GetSession)
		sessions.PUT("/:id", wizardHandler.UpdateForm)
		sessions.DELETE("/:id", wizardHandler.CancelSession)
		sessions.POST("/:id/next", wizardHandler.Next)
		sessions.POST("/:id/back", wizardHandler.Back)
		sessions.POST("/:id/quote", wizardHandler.SubmitQuote)
		sessions.POST("/:id/inspiration", wizardHandler.GetInspiration)
		sessions.POST("/:id/inquiry", wizardHandler.SendInquiry)
		sessions.POST("/:id/reopen", wizardHandler.Reopen)
		sessions.POST("/:id/deposit", wizardHandler.Deposit)
		sessions.POST("/:id/deposit/confirm", wizardHandler.ConfirmDeposit)
	}

	booking := api.Group("/booking")
	{
		booking.GET("/packages", bookingHandler.ListPackages)
		booking.POST("/inquiry", bookingHandler.SendInquiry)
	}
}
