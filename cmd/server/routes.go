package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tredora.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	authHandler          *handlers.AuthHandler
	bankHandler          *handlers.BankHandler
	emailTemplateHandler *handlers.EmailTemplateHandler
	formTemplateHandler  *handlers.FormTemplateHandler
	requestHandler       *handlers.RequestHandler
	analyticsHandler     *handlers.AnalyticsHandler
	agentHandler         *handlers.AgentHandler
	authMiddleware       gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		// Auth routes (public + protected)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.Refresh)
			auth.POST("/forgot-password", d.authHandler.ForgotPassword)
			auth.POST("/verify-otp", d.authHandler.VerifyOTP)
			auth.POST("/reset-password", d.authHandler.ResetPassword)
			auth.POST("/logout", d.authMiddleware, d.authHandler.Logout)
			auth.GET("/profile", d.authMiddleware, d.authHandler.Profile)
		}

		// Bank registry (protected)
		banks := v1.Group("/banks")
		banks.Use(d.authMiddleware)
		{
			banks.POST("", d.bankHandler.Create)
			banks.GET("", d.bankHandler.List)
			banks.GET("/:id", d.bankHandler.Get)
			banks.PATCH("/:id", d.bankHandler.Update)
			banks.DELETE("/:id", d.bankHandler.Delete)
		}

		// Email templates (protected)
		emailTemplates := v1.Group("/email-templates")
		emailTemplates.Use(d.authMiddleware)
		{
			emailTemplates.POST("", d.emailTemplateHandler.Create)
			emailTemplates.GET("", d.emailTemplateHandler.List)
			emailTemplates.GET("/by-key/:key", d.emailTemplateHandler.GetByKey)
			emailTemplates.GET("/render/:key", d.emailTemplateHandler.Render)
			emailTemplates.GET("/:id", d.emailTemplateHandler.Get)
			emailTemplates.PATCH("/:id", d.emailTemplateHandler.Update)
			emailTemplates.DELETE("/:id", d.emailTemplateHandler.Delete)
		}

		// Form templates (protected)
		formTemplates := v1.Group("/form-templates")
		formTemplates.Use(d.authMiddleware)
		{
			formTemplates.POST("", d.formTemplateHandler.Create)
			formTemplates.GET("", d.formTemplateHandler.List)
			formTemplates.GET("/:id", d.formTemplateHandler.Get)
			formTemplates.PATCH("/:id", d.formTemplateHandler.Update)
			formTemplates.DELETE("/:id", d.formTemplateHandler.Delete)
		}

		// Submitted requests (protected)
		requests := v1.Group("/requests")
		requests.Use(d.authMiddleware)
		{
			requests.POST("", d.requestHandler.Create)
			requests.GET("", d.requestHandler.List)
			requests.GET("/:id", d.requestHandler.Get)
			requests.PATCH("/:id", d.requestHandler.Update)
			requests.DELETE("/:id", d.requestHandler.Delete)
		}

		// Analytics (protected)
		v1.GET("/analytics", d.authMiddleware, d.analyticsHandler.Get)

		// AI form generation
		v1.POST("/ai/chat", d.agentHandler.Chat)
	}
}
