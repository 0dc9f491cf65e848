package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/google/uuid"

	"raportku_backend/internals/configs"
	narrativeService "raportku_backend/internals/features/narratives/service"
	"raportku_backend/internals/features/students/repository"
	middlewares "raportku_backend/internals/middlewares"
	routes "raportku_backend/internals/route"
	seeds "raportku_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
	})

	// ⚙️ middleware dasar + performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching

	// 🔎 Request-ID + timing (observability ringan)
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		// Guard timeout per request (panggilan Gemini ikut terikat context ini)
		ctx, cancel := context.WithTimeout(c.Context(), 30*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		err := c.Next()
		dur := time.Since(start)
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), dur)
		return err
	})

	middlewares.SetupMiddlewares(app)

	// 📋 Roster in-memory + seed awal (tanpa database — restart = kembali ke seed)
	roster := repository.NewRosterStore()
	seeds.SeedStudents(roster)

	// ✨ Generator narasi Gemini (nonaktif kalau API key tidak diset)
	var generator narrativeService.NarrativeGenerator = narrativeService.DisabledNarrativeService{}
	if configs.GeminiAPIKey != "" {
		gemini, err := narrativeService.NewGeminiNarrativeService(
			context.Background(), configs.GeminiAPIKey, configs.GeminiModel,
		)
		if err != nil {
			log.Printf("❌ Gagal inisialisasi Gemini: %v", err)
		} else {
			generator = gemini
		}
	}

	// ✅ Routes
	routes.SetupRoutes(app, roster, generator)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 60 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	// Start server non-blocking
	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)
}
