package routes

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/BharathDevanaboina/Linkup/handlers"
	"github.com/BharathDevanaboina/Linkup/middleware"
)

func SetupRouter() *gin.Engine {
	router := gin.Default()

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "LinkUp API is running",
			"time":    time.Now().Unix(),
			"ws":      "WebSocket available at /ws",
		})
	})

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8080", "http://127.0.0.1:8080", "http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Public routes
	public := router.Group("/api")
	public.Use(middleware.RateLimitMiddleware())
	public.POST("/signup", handlers.Signup)
	public.POST("/login", handlers.Login)
	public.GET("/taxonomy", handlers.GetTaxonomy)

	// Protected routes
	protected := router.Group("/api")
	protected.Use(middleware.JWTAuthMiddleware())

	// Profile
	protected.GET("/me", handlers.GetMyProfile)
	protected.GET("/user/:id", handlers.GetUser)

	// Signals
	protected.POST("/signals", handlers.CreateSignal)
	protected.GET("/feed", handlers.GetFeed)
	protected.GET("/signals/:id", handlers.GetSignal)
	protected.POST("/signals/:id/join", handlers.JoinSignal)
	protected.GET("/my/signals", handlers.GetMySignals)
	protected.GET("/user/:id/signals", handlers.GetUserSignals)

	// Radar
	protected.GET("/radar", handlers.GetRadar)

	// AI enhancement
	protected.POST("/enhance", handlers.EnhancePost)

	// Moderation
	protected.POST("/reports", handlers.ReportSignal)

	// Chats
	protected.GET("/chats", handlers.GetChatList)
	protected.POST("/chats", handlers.CreateChat)
	protected.GET("/chats/:id/messages", handlers.GetMessages)
	protected.POST("/message", handlers.SendMessage)
	protected.POST("/typing", handlers.SendTypingIndicator)

	// Media upload
	protected.POST("/upload-photo", handlers.UploadPhoto)

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(404, gin.H{
				"error":   "Endpoint not found",
				"path":    c.Request.URL.Path,
				"message": "Check the API documentation for available endpoints",
			})
			return
		}
		c.Next()
	})

	return router
}
