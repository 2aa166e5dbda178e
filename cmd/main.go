package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/config"
	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/database"
	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/internal/agent"
	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/internal/auth"
	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/internal/contact"
	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/internal/directory"
	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/internal/family"
	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/routes"
)

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)

	err := db.AutoMigrate(
		&auth.User{},
		&directory.Entry{},
		&family.Entry{},
		&contact.Message{},
		&agent.Conversation{},
	)
	if err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	log.Println("✅ Database migrated")

	if err := auth.SeedAdminUser(auth.NewRepository(db), cfg); err != nil {
		log.Fatalf("❌ Admin seed failed: %v", err)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.OriginsList(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.Setup(r, cfg, db)

	log.Printf("🚀 %s listening on port %s", cfg.AppName, cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
