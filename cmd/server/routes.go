package main

import (
	"github.com/gin-gonic/gin"
	"github.com/quickta/backend/internal/middleware"
	"github.com/quickta/backend/pkg/logger"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, svc *appServices) {
	// Middleware
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(middleware.CORS())

	// Rate limiter for the completion-backed chat route
	chatLimiter := middleware.NewRateLimiter(5, 10)

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": "quickta"})
	})

	api := r.Group("/api")
	{
		student := api.Group("/student")
		{
			student.GET("/conversation", svc.conversationHandler.Get)
			student.POST("/conversation", svc.conversationHandler.Create)
			student.GET("/conversation/all", svc.conversationHandler.ListAll)
			student.POST("/conversation/csv", svc.conversationHandler.ExportCSV)
			student.GET("/conversation/history", svc.conversationHandler.ExportTranscript)

			student.POST("/chatlog", chatLimiter.Middleware(), svc.chatlogHandler.Create)
			student.GET("/chatlog", svc.chatlogHandler.List)
			student.GET("/chatlog/all", svc.chatlogHandler.ListAll)

			student.GET("/feedback", svc.feedbackHandler.Get)
			student.POST("/feedback", svc.feedbackHandler.Create)
			student.GET("/feedback/all", svc.feedbackHandler.ListAll)

			student.GET("/report", svc.reportHandler.Get)
			student.POST("/report", svc.reportHandler.Create)
			student.GET("/report/all", svc.reportHandler.ListAll)

			student.GET("/comfortability", svc.conversationHandler.GetComfortability)
			student.POST("/comfortability", svc.conversationHandler.SetComfortability)
		}

		course := api.Group("/course")
		{
			course.GET("", svc.courseHandler.Get)
			course.POST("", svc.courseHandler.Create)
			course.GET("/all", svc.courseHandler.ListAll)
			course.POST("/roster/add", svc.courseHandler.RosterAdd)
			course.POST("/roster/remove", svc.courseHandler.RosterRemove)
			course.GET("/roster", svc.courseHandler.RosterList)
		}

		user := api.Group("/user")
		{
			user.GET("", svc.userHandler.Get)
			user.POST("", svc.userHandler.Create)
			user.GET("/all", svc.userHandler.ListAll)
			user.GET("/courses", svc.userHandler.Courses)
			user.POST("/batch-add", svc.userHandler.BatchAdd)
		}

		model := api.Group("/model")
		{
			model.POST("", svc.modelHandler.Create)
			model.GET("/active", svc.modelHandler.GetActive)
			model.GET("/all", svc.modelHandler.List)
			model.POST("/activate", svc.modelHandler.Activate)
		}
	}
}
