package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"kudospot/handlers"
	"kudospot/middleware"
	"kudospot/models"
	"kudospot/services"
	"kudospot/utils"
	"kudospot/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	app := fiber.New()

	app.Use(middleware.RequestLogger())

	// Load allowed origins from environment variable
	allowedOriginsEnv := os.Getenv("ALLOWED_ORIGINS")
	if allowedOriginsEnv == "" {
		log.Println("⚠️  ALLOWED_ORIGINS environment variable not set, using default: http://localhost:3000")
		allowedOriginsEnv = "http://localhost:3000"
	}
	allowedOriginsList := strings.Split(allowedOriginsEnv, ",")
	for i, origin := range allowedOriginsList {
		allowedOriginsList[i] = strings.TrimSpace(origin)
	}
	allowedOriginsString := strings.Join(allowedOriginsList, ",")

	app.Use(cors.New(cors.Config{
		AllowOrigins: allowedOriginsString,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, X-Requested-With, X-User-Name",
	}))

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}

	// TranslateError turns driver duplicate-key errors into
	// gorm.ErrDuplicatedKey, which the like path depends on.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Badge{},
		&models.Kudos{},
		&models.KudosLike{},
	); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	userService := services.NewUserService(db)
	badgeService := services.NewBadgeService(db)
	kudosService := services.NewKudosService(db)
	analyticsService := services.NewAnalyticsService(db)

	// Seed the fixed badge catalog (same upsert as POST /badges/init)
	if _, err := badgeService.InitBadges(); err != nil {
		log.Fatal("failed to seed badges:", err)
	}

	handlers.SetupUserRoutes(app, userService)
	handlers.SetupBadgeRoutes(app, badgeService)
	handlers.SetupKudosRoutes(app, kudosService)
	handlers.SetupAnalyticsRoutes(app, analyticsService)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Snapshot export is optional — only wired when R2 credentials exist
	if utils.R2Configured() {
		if err := utils.InitR2(); err != nil {
			log.Fatal("failed to initialize R2 client:", err)
		}
		analyticsService.StartSnapshotScheduler()
		log.Println("✅ Analytics snapshot scheduler running (daily)")
	} else {
		log.Println("⚠️  R2 credentials not set, analytics snapshot export disabled")
	}

	reconciler := workers.NewCounterReconciler(db)
	go workers.PollCounters(ctx, reconciler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5100"
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✅ KudoSpot API running on http://localhost:%s", port)
	log.Println("✅ Counter reconciliation worker running")
	log.Printf("✅ CORS configured for origins: %s", allowedOriginsString)

	<-ctx.Done()
	log.Println("Shutting down server...")
}
