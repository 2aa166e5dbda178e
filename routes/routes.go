package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/config"
	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/internal/agent"
	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/internal/auth"
	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/internal/contact"
	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/internal/directory"
	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/internal/family"
	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/internal/reports"
	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/middleware"
)

// Setup wires repositories, services and handlers onto the router.
func Setup(r *gin.Engine, cfg *config.Config, db *gorm.DB) {
	tokens := auth.NewTokenService(cfg.SecretKey, cfg.TokenTTLMinutes)

	authRepo := auth.NewRepository(db)
	authSvc := auth.NewService(authRepo, tokens)
	authHandler := auth.NewHandler(authSvc)

	exporter := reports.NewExporter()
	dirRepo := directory.NewRepository(db)
	dirSvc := directory.NewService(dirRepo, exporter)
	dirHandler := directory.NewHandler(dirSvc)

	famRepo := family.NewRepository(db)
	famSvc := family.NewService(famRepo)
	famHandler := family.NewHandler(famSvc)

	contactRepo := contact.NewRepository(db)
	contactSvc := contact.NewService(contactRepo)
	contactHandler := contact.NewHandler(contactSvc)

	responder := agent.NewResponder(cfg)
	agentRepo := agent.NewRepository(db)
	agentSvc := agent.NewService(agentRepo, responder)
	agentHandler := agent.NewHandler(agentSvc)

	authn := middleware.AuthMiddleware(tokens, authSvc)
	adminOnly := middleware.RequireAdmin()

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "app": cfg.AppName})
	})

	api := r.Group("/api")
	api.Use(middleware.RateLimiter())

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.GET("/me", authn, authHandler.Me)
		authRoutes.PATCH("/me", authn, authHandler.UpdateMe)
		authRoutes.GET("/users", authn, adminOnly, authHandler.ListUsers)
		authRoutes.PATCH("/users/:id/activate", authn, adminOnly, authHandler.ActivateUser)
		authRoutes.PATCH("/users/:id/deactivate", authn, adminOnly, authHandler.DeactivateUser)
		authRoutes.GET("/stats", authn, adminOnly, authHandler.GetStats)
	}

	dirRoutes := api.Group("/directory")
	{
		dirRoutes.POST("/", dirHandler.Create)
		dirRoutes.GET("/", dirHandler.List)
		dirRoutes.GET("/count", dirHandler.Count)
		dirRoutes.GET("/community_strength", dirHandler.CommunityStrength)
		dirRoutes.GET("/export/csv", authn, adminOnly, dirHandler.ExportCSV)
		dirRoutes.GET("/export/pdf", authn, adminOnly, dirHandler.ExportPDF)
		dirRoutes.GET("/export/excel", authn, adminOnly, dirHandler.ExportExcel)

		famRoutes := dirRoutes.Group("/family")
		{
			famRoutes.POST("/", famHandler.Create)
			famRoutes.GET("/all", famHandler.List)
			famRoutes.GET("/total_population", famHandler.TotalPopulation)
			famRoutes.GET("/stats/caste", authn, adminOnly, famHandler.CasteStats)
			famRoutes.GET("/:id", famHandler.Get)
			famRoutes.PUT("/:id", authn, adminOnly, famHandler.Update)
			famRoutes.DELETE("/:id", authn, adminOnly, famHandler.Delete)
		}

		dirRoutes.GET("/:id", dirHandler.Get)
		dirRoutes.PUT("/:id", authn, adminOnly, dirHandler.Update)
		dirRoutes.DELETE("/:id", authn, adminOnly, dirHandler.Delete)
	}

	contactRoutes := api.Group("/contact")
	{
		contactRoutes.POST("/", contactHandler.Create)
		contactRoutes.GET("/", authn, adminOnly, contactHandler.List)
		contactRoutes.GET("/stats/count", authn, adminOnly, contactHandler.GetStats)
		contactRoutes.GET("/:id", authn, adminOnly, contactHandler.Get)
		contactRoutes.PATCH("/:id/read", authn, adminOnly, contactHandler.MarkRead)
		contactRoutes.PATCH("/:id/unread", authn, adminOnly, contactHandler.MarkUnread)
		contactRoutes.DELETE("/:id", authn, adminOnly, contactHandler.Delete)
	}

	agentRoutes := api.Group("/agent")
	{
		agentRoutes.POST("/chat", agentHandler.Chat)
		agentRoutes.GET("/conversations", authn, adminOnly, agentHandler.Conversations)
		agentRoutes.GET("/conversations/stats", authn, adminOnly, agentHandler.GetStats)
	}
}
