package main

import (
	"log"
	"time"

	"github.com/Gnyfrt/miracotoelektronik/config"
	"github.com/Gnyfrt/miracotoelektronik/internal/models"
	"github.com/Gnyfrt/miracotoelektronik/internal/routes"
	"github.com/Gnyfrt/miracotoelektronik/internal/store"
	"github.com/Gnyfrt/miracotoelektronik/pkg/database"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load Configuration
	config.LoadConfig()

	// 2. Connect to Database
	db, err := database.Connect(config.AppConfig.Storage.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// 3. Auto-Migrate Models
	log.Println("Running migrations...")
	err = db.AutoMigrate(
		&models.User{},
		&models.LoginEvent{},
		&models.Brand{},
		&models.KeyType{},
		&models.StockItem{},
		&models.PriceEvent{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migrations completed successfully.")

	// 3a. Seed Data
	database.SeedAdminAndBrands(db)

	// 4. Initialize Router
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	sessionStore := cookie.NewStore([]byte(config.AppConfig.Server.SessionSecret))
	r.Use(sessions.Sessions("keystock_session", sessionStore))

	r.LoadHTMLGlob(config.AppConfig.Storage.TemplateGlob)
	r.Static("/static", "./static")

	// 5. Setup Routes
	routes.Register(r, store.New(db), config.AppConfig.Storage.LogoDir)

	// 6. Start Server
	port := config.AppConfig.Server.Port
	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
