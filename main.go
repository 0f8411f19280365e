package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Jlcht/Aurelian-Timeworks/auth"
	"github.com/Jlcht/Aurelian-Timeworks/models"
	"github.com/Jlcht/Aurelian-Timeworks/routes"
	"github.com/Jlcht/Aurelian-Timeworks/store"
)

func main() {
	log.Println("✅ Starting Aurelian Timeworks API...")

	// Load environment variables
	_ = godotenv.Load()

	deps := buildDeps()
	r := newRouter(deps)

	// Google sign-in is optional; without Firebase credentials the API still
	// serves public reads and token-authenticated requests.
	if err := auth.Setup(context.Background()); err != nil {
		log.Printf("⚠️ Google sign-in disabled: %v", err)
	} else {
		routes.SetupAuthRoutes(r, deps)
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// newRouter builds the engine with the CORS layer ahead of every route, so
// preflight OPTIONS requests are answered with 204 before any auth or
// business logic runs.
func newRouter(deps routes.Deps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	routes.SetupRoutes(r, deps)
	return r
}

// buildDeps connects the store gateways. DEV_MODE swaps in the in-memory
// stores so the API can run without a database.
func buildDeps() routes.Deps {
	if os.Getenv("DEV_MODE") == "true" {
		log.Println("⚠️ DEV_MODE enabled — using in-memory stores, data will not persist")
		return routes.Deps{
			Products:  store.NewMemoryProductStore(),
			Users:     store.NewMemoryUserStore(),
			Wishlists: store.NewMemoryWishlistStore(),
		}
	}

	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Wishlist{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	return routes.Deps{
		Products:  store.NewGormProductStore(db),
		Users:     store.NewGormUserStore(db),
		Wishlists: store.NewGormWishlistStore(db),
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}
