package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	config "github.com/anjiri1684/precision_martial/configs"
	"github.com/anjiri1684/precision_martial/database"
	"github.com/anjiri1684/precision_martial/handlers"
	"github.com/anjiri1684/precision_martial/jobs"
	"github.com/anjiri1684/precision_martial/middleware"
	"github.com/anjiri1684/precision_martial/payments"
	"github.com/anjiri1684/precision_martial/routes"
	"github.com/anjiri1684/precision_martial/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	if cfg.AccessTokenSecret == "" {
		log.Fatal("🔥 ACCESS_TOKEN_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := database.Connect(ctx, cfg.StoreURI())
	if err != nil {
		log.Fatalf("🔥 Failed to connect to the database: %v", err)
	}
	store := database.NewStore(client, cfg.DBName)

	c := cron.New()
	if _, err := c.AddFunc(cfg.StorePingSchedule, jobs.StorePing(store)); err != nil {
		log.Printf("⚠️ Store ping job not scheduled: %v", err)
	} else {
		c.Start()
		log.Printf("✅ Store ping job scheduled (%s).", cfg.StorePingSchedule)
	}

	// A nil *UploadSigner must not leak into the interface.
	var signer handlers.UploadSigner
	if cfg.CloudinaryURL != "" {
		s, err := services.NewUploadSigner(cfg.CloudinaryURL, cfg.CloudinaryFolder)
		if err != nil {
			log.Printf("⚠️ Uploads disabled: %v", err)
		} else {
			signer = s
		}
	} else {
		log.Println("⚠️ CLOUDINARY_URL not set, uploads disabled")
	}

	app := fiber.New(fiber.Config{
		AppName:      "Precision Martial",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		MaxAge:       86400,
	}))
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))

	tokens := services.NewTokenService(cfg.AccessTokenSecret, cfg.TokenTTL)
	guard := middleware.Protected(tokens)

	routes.PublicRoutes(app)
	routes.AuthRoutes(app, handlers.NewAuthHandler(tokens))
	routes.UserRoutes(app, handlers.NewUserHandler(store.Users), guard)
	routes.ClassRoutes(app, handlers.NewClassHandler(store.Classes))
	routes.EnrollmentRoutes(app, handlers.NewEnrollmentHandler(store.Enrollments))
	routes.PaymentRoutes(app, handlers.NewPaymentHandler(payments.NewStripeService(cfg.PaymentSecretKey)), guard)
	routes.UploadRoutes(app, handlers.NewUploadHandler(signer), guard)

	go func() {
		log.Printf("✅ Precision Martial is running on port %s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("🔥 Server failed to start: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		log.Printf("⚠️ HTTP shutdown: %v", err)
	}
	<-c.Stop().Done()

	closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := store.Close(closeCtx); err != nil {
		log.Printf("⚠️ Database disconnect: %v", err)
	}
	log.Println("✅ Shutdown complete.")
}
