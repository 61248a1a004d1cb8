package api

import (
	"net/http"

	"fitweek/fitness-tracker/internal/domain"
	"fitweek/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	logService service.WorkoutLogService,
	progressService service.ProgressService,
	paymentService service.PaymentService,
	premiumService service.PremiumService,
) {
	authHandler := NewAuthHandler(authService)
	scheduleHandler := NewScheduleHandler()
	logHandler := NewLogHandler(logService)
	progressHandler := NewProgressHandler(progressService)
	paymentHandler := NewPaymentHandler(paymentService)
	premiumHandler := NewPremiumHandler(premiumService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		// The processor calls this directly; auth is the signature check.
		apiV1.POST("/payments/webhook", paymentHandler.Webhook)
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/profile", authHandler.GetProfile)
		protected.PATCH("/profile", authHandler.UpdateProfile)

		// --- Weekly Schedule & Catalog ---
		scheduleGroup := protected.Group("/schedule")
		{
			scheduleGroup.GET("/week", scheduleHandler.GetWeek)
			scheduleGroup.GET("/day/:day", scheduleHandler.GetDayPlan)
		}

		// --- Workout Logs ---
		logGroup := protected.Group("/logs")
		{
			logGroup.GET("/:dateKey", logHandler.GetDayLog)
			logGroup.PUT("/:dateKey", logHandler.SaveDayLog)
		}

		// --- Weekly Progress ---
		protected.GET("/progress/week", progressHandler.GetWeeklyProgress)

		// --- Payments ---
		paymentGroup := protected.Group("/payments")
		{
			paymentGroup.POST("/checkout-session", paymentHandler.CreateCheckoutSession)
			paymentGroup.POST("/verify", paymentHandler.VerifyPayment)
		}

		// --- Premium Content ---
		premiumGroup := protected.Group("/premium")
		{
			premiumGroup.GET("/:postId", premiumHandler.GetPost)
			premiumGroup.GET("/:postId/media", premiumHandler.GetMediaURL)

			// Admin-only content management
			premiumGroup.POST("", RoleMiddleware(domain.RoleAdmin), premiumHandler.CreatePost)
			premiumGroup.POST("/:postId/media/upload-url", RoleMiddleware(domain.RoleAdmin), premiumHandler.RequestMediaUpload)
			premiumGroup.POST("/:postId/media/confirm", RoleMiddleware(domain.RoleAdmin), premiumHandler.ConfirmMediaUpload)
		}
	}
}
