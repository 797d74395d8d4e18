package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/choco-radar/site/config"
	"github.com/choco-radar/site/db"
	"github.com/choco-radar/site/geoip"
	h "github.com/choco-radar/site/handlers"
	"github.com/choco-radar/site/notification"
	"github.com/choco-radar/site/photo"
	"github.com/choco-radar/site/store"
)

func main() {
	// Initialize database
	if err := db.Init(config.DatabaseURL); err != nil {
		log.Fatalf("error initializing database: %v", err)
	}

	// Initialize store collection cache
	if err := store.InitCollectionCache(); err != nil {
		log.Fatalf("Failed to initialize store collection cache: %v", err)
	}

	// Initialize geolocation cache
	if err := geoip.Init(); err != nil {
		log.Fatalf("Failed to initialize geolocation cache: %v", err)
	}

	// Initialize photo storage
	if err := photo.Init(); err != nil {
		log.Fatalf("Failed to initialize photo storage: %v", err)
	}

	// Start the availability watcher
	hub := notification.NewHub()
	h.SetEventHub(hub)
	watcher := notification.NewWatcher(hub)
	if err := watcher.Start(context.Background()); err != nil {
		log.Printf("availability watcher not running: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: h.CustomErrorHandler,
		BodyLimit:    config.ServerUploadLimit,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	// Add rate limiter
	app.Use(limiter.New(limiter.Config{
		Max:        config.ServerRateLimitMax,
		Expiration: config.ServerRateLimitExp,
	}))

	// Add JWT middleware
	app.Use(h.JWTMiddleware)

	// Add logger middleware
	app.Use(logger.New())

	// Static files
	app.Static("/", "./static")

	// Main page and search
	app.Get("/", h.HandleHome)
	app.Get("/search", h.HandleSearch)

	// Store detail partials; the static segment must come first
	app.Get("/store/close", h.HandleCloseDetail)
	app.Get("/store/:id", h.HandleStoreDetail)
	app.Get("/store/:id/claim", h.AuthRequired, h.HandleClaimForm)

	// Views for HTMX view switching
	app.Post("/view/list", h.HandleListView)
	app.Post("/view/map", h.HandleMapView)

	// Announcement gallery
	app.Get("/posts", h.HandleRecentPosts)

	// Availability alerts
	app.Get("/events", h.HandleEvents)

	// API group
	api := app.Group("/api")
	api.Get("/suggest", h.HandleSuggest)
	api.Get("/map-clusters", h.HandleMapClusters)
	api.Get("/my-location", h.HandleMyLocation)
	api.Post("/location", h.HandleShareLocation)
	api.Post("/filter/in-stock", h.HandleToggleInStock)
	api.Post("/favorite/:id", h.HandleToggleFavorite)
	api.Post("/notify/:id", h.HandleToggleNotification)
	api.Post("/store/:id/report", h.HandleReportSighting)
	api.Post("/store/:id/stock", h.AuthRequired, h.HandleUpdateStock)
	api.Post("/store/:id/post", h.AuthRequired, h.HandleNewPost)
	api.Delete("/store/:id/post", h.AuthRequired, h.HandleDeletePost)
	api.Post("/store/:id/claim", h.AuthRequired, h.HandleClaimStore)

	// Owner registration/authentication
	app.Get("/register", h.HandleRegister)
	api.Post("/register", h.HandleRegisterSubmission)
	api.Post("/register/verify", h.HandleVerifySubmission)
	app.Get("/login", h.HandleLogin)
	api.Post("/login", h.HandleLoginSubmission)
	app.Post("/logout", h.HandleLogout)

	// Health check
	app.Get("/health", h.HandleHealth)

	fmt.Printf("Starting server on %s...\n", config.ServerPort)
	log.Fatal(app.Listen(config.ServerPort))
}
