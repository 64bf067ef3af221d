package main

import (
	"net/http"

	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/pkg/container"

	"github.com/gin-gonic/gin"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupPortfolioRoutes(v1, c)
		setupEditorRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", c.AuthHandler.Login)
		auth.POST("/logout", c.AuthHandler.Logout)
		auth.PUT("/password", middleware.OwnerAuth(c.AuthService), c.AuthHandler.ChangePassword)
	}
}

// ========================================
// PORTFOLIO ROUTES
// ========================================
// Reads and exports are public; mutations need an owner session.
func setupPortfolioRoutes(v1 *gin.RouterGroup, c *container.Container) {
	p := v1.Group("/portfolio")
	{
		p.GET("", c.PortfolioHandler.GetPortfolio)
		p.GET("/sections/:name", c.PortfolioHandler.GetSection)
		p.GET("/export/html", c.ExportHandler.ExportHTML)
		p.GET("/export/pdf", c.ExportHandler.ExportPDF)
	}

	owner := p.Group("")
	owner.Use(middleware.OwnerAuth(c.AuthService))
	{
		owner.PUT("/profile", c.PortfolioHandler.UpdateProfile)
		owner.PUT("/skills-summary", c.PortfolioHandler.UpdateSkillsSummary)
		owner.PUT("/sections/:name/items", c.PortfolioHandler.UpsertItem)
		owner.DELETE("/sections/:name/items/:id", c.PortfolioHandler.DeleteItem)
	}
}

// ========================================
// EDITOR ROUTES
// ========================================
func setupEditorRoutes(v1 *gin.RouterGroup, c *container.Container) {
	sessions := v1.Group("/editor/sessions")
	sessions.Use(middleware.OwnerAuth(c.AuthService))
	{
		sessions.POST("", c.EditorHandler.OpenSession)
		sessions.GET("/:id", c.EditorHandler.GetSession)
		sessions.PATCH("/:id/fields", c.EditorHandler.SetField)
		sessions.POST("/:id/image", c.EditorHandler.AttachImage)
		sessions.POST("/:id/refine", c.EditorHandler.RefineField)
		sessions.POST("/:id/save", c.EditorHandler.SaveSession)
		sessions.POST("/:id/delete", c.EditorHandler.DeleteItem)
		sessions.DELETE("/:id", c.EditorHandler.CancelSession)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := "healthy"
		code := http.StatusOK

		if err := c.Blobs.Ping(ctx.Request.Context()); err != nil {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		ctx.JSON(code, gin.H{
			"status":      status,
			"service":     c.Config.App.Name,
			"version":     c.Config.App.Version,
			"environment": c.Config.App.Environment,
		})
	}
}
