package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/BharathDevanaboina/Linkup/ai"
	"github.com/BharathDevanaboina/Linkup/database"
	"github.com/BharathDevanaboina/Linkup/handlers"
	"github.com/BharathDevanaboina/Linkup/routes"
	"github.com/BharathDevanaboina/Linkup/store"
	"github.com/BharathDevanaboina/Linkup/websocket"
)

func main() {
	log.Println("🚀 Starting LinkUp Backend Server...")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("❌ JWT_SECRET must be set")
	}

	// ===== BACKEND SELECTION =====
	// Picked once here. Mongo when configured, the seeded in-memory store
	// otherwise. Never an implicit per-call fallback.
	var st store.Store
	if uri := os.Getenv("MONGODB_URI"); uri != "" {
		log.Println("🔌 Connecting to MongoDB...")

		var dbErr error
		for i := 1; i <= 3; i++ {
			if err := database.Connect(uri); err != nil {
				dbErr = err
				log.Printf("❌ MongoDB connection attempt %d failed: %v", i, err)
				time.Sleep(2 * time.Second)
				continue
			}
			dbErr = nil
			break
		}
		if dbErr != nil {
			log.Fatal("❌ Failed to connect to MongoDB:", dbErr)
		}
		defer database.Disconnect()

		st = store.NewMongo(database.Client.Database("linkup"))
		log.Println("✅ Using MongoDB store")
	} else {
		st = store.NewSeededMemory()
		log.Println("⚠️ MONGODB_URI not set, using in-memory store with sample signals")
	}
	handlers.SetStore(st)

	// ===== AI ENHANCEMENT =====
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		enhancer, err := ai.NewGemini(context.Background(), apiKey)
		if err != nil {
			log.Printf("❌ Gemini init failed, enhancement will use fallback: %v", err)
		} else {
			handlers.SetEnhancer(enhancer)
			log.Println("✅ Gemini enhancement enabled")
		}
	} else {
		log.Println("⚠️ GEMINI_API_KEY not set, enhancement will use fallback")
	}

	// ===== GIN MODE =====
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
		log.Println("⚙️ Running in RELEASE mode")
	} else {
		gin.SetMode(gin.DebugMode)
		log.Println("⚙️ Running in DEBUG mode")
	}

	// ===== ROUTER =====
	router := routes.SetupRouter()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "LinkUp Backend Running 🚀",
			"service": "healthy",
		})
	})

	// ===== WEBSOCKET =====
	wsManager := websocket.NewManager()
	go wsManager.Start()
	handlers.SetWebSocketManager(wsManager)

	router.GET("/ws", func(c *gin.Context) {
		websocket.Handler(wsManager)(c.Writer, c.Request)
	})
	log.Println("✅ WebSocket endpoint: /ws")

	// ===== SERVER CONFIG =====
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("🌐 Server running on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("❌ Server error:", err)
		}
	}()

	// ===== GRACEFUL SHUTDOWN =====
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("❌ Forced shutdown:", err)
	}

	log.Println("👋 Server stopped gracefully")
}
