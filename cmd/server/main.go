package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	config "github.com/postdeck/postdeck/configs"
	"github.com/postdeck/postdeck/db"
	"github.com/postdeck/postdeck/internal/api/handlers"
	"github.com/postdeck/postdeck/internal/database"
	"github.com/postdeck/postdeck/internal/repository"
	"github.com/postdeck/postdeck/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	conn, err := database.Open(cfg.PostgresURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer closeDB(conn)

	if err := db.Migrate(conn); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  1 * time.Minute,
		WriteTimeout: 1 * time.Minute,
		BodyLimit:    100 * 1024 * 1024, // 100 MB
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return true
		},
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	postRepo := repository.NewPostRepository(conn)
	scheduleRepo := repository.NewScheduleRepository(conn)
	analyticsRepo := repository.NewAnalyticsRepository(conn)
	mediaAssetRepo := repository.NewMediaAssetRepository(conn)

	postService := service.NewPostService(postRepo)
	scheduleService := service.NewScheduleService(scheduleRepo, postRepo)
	analyticsService := service.NewAnalyticsService(analyticsRepo, scheduleRepo)
	r2Service := service.NewR2Service(*cfg)
	mediaService := service.NewMediaService(mediaAssetRepo, r2Service)

	api := app.Group("/api")
	api.Get("/health", handlers.Health)

	post := handlers.NewPostHandler(postService)
	api.Get("/posts", post.ListPosts)
	api.Get("/posts/:id", post.GetPost)
	api.Post("/posts", post.CreatePost)
	api.Put("/posts/:id", post.UpdatePost)
	api.Delete("/posts/:id", post.DeletePost)

	schedule := handlers.NewScheduleHandler(scheduleService)
	api.Get("/schedules", schedule.ListSchedules)
	api.Get("/schedules/platform/:platform", schedule.ListSchedulesByPlatform)
	api.Get("/schedules/:id", schedule.GetSchedule)
	api.Post("/schedules", schedule.CreateSchedule)
	api.Put("/schedules/:id", schedule.UpdateSchedule)
	api.Delete("/schedules/:id", schedule.DeleteSchedule)

	analytics := handlers.NewAnalyticsHandler(analyticsService)
	api.Get("/analytics", analytics.ListAnalytics)
	api.Get("/analytics/schedule/:scheduleId", analytics.ListAnalyticsBySchedule)
	api.Get("/analytics/platform/:platform", analytics.ListAnalyticsByPlatform)
	api.Get("/analytics/dashboard/summary", analytics.DashboardSummary)
	api.Post("/analytics", analytics.CreateAnalytics)
	api.Put("/analytics/:id", analytics.UpdateAnalytics)

	media := handlers.NewMediaHandler(mediaService)
	api.Get("/media", media.ListAssets)
	api.Post("/media/upload", media.UploadAsset)
	api.Delete("/media/:id", media.DeleteAsset)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("Server is running on http://localhost:%s", cfg.Port)

	gracefulShutdown(app, conn)
}

func closeDB(conn *sql.DB) {
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	if err := conn.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App, conn *sql.DB) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	closeDB(conn)
	log.Println("Server shutdown complete.")
}
