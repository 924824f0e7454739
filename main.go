package main

import (
	"log"
	"net/http"
	"os"

	"conduit-api/config"
	"conduit-api/handlers"
	"conduit-api/logger"
	"conduit-api/middleware"
	"conduit-api/repositories"
	"conduit-api/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	logger.InitLogger()
	defer logger.Log.Sync()

	// Initialize database
	db := config.InitDB()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	followRepo := repositories.NewFollowRepository(db)
	favoriteRepo := repositories.NewFavoriteRepository(db)

	// Initialize services
	presenter := services.NewPresenterService(followRepo, favoriteRepo)
	authService := services.NewAuthService(userRepo)
	profileService := services.NewProfileService(userRepo, followRepo, presenter)
	articleService := services.NewArticleService(articleRepo, tagRepo, userRepo, followRepo, favoriteRepo, presenter)
	commentService := services.NewCommentService(commentRepo, articleRepo, userRepo, presenter)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	profileHandler := handlers.NewProfileHandler(profileService)
	articleHandler := handlers.NewArticleHandler(articleService)
	commentHandler := handlers.NewCommentHandler(commentService)

	// Setup router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logging())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Users
	router.POST("/users", authHandler.Register)
	router.POST("/users/login", authHandler.Login)

	user := router.Group("/user")
	user.Use(middleware.AuthMiddleware())
	{
		user.GET("", authHandler.CurrentUser)
		user.PUT("", authHandler.UpdateUser)
	}

	// Profiles
	profiles := router.Group("/profiles")
	{
		profiles.GET("/:username", middleware.OptionalAuthMiddleware(), profileHandler.GetProfile)
		profiles.POST("/:username/follow", middleware.AuthMiddleware(), profileHandler.Follow)
		profiles.DELETE("/:username/follow", middleware.AuthMiddleware(), profileHandler.Unfollow)
	}

	// Articles
	articles := router.Group("/articles")
	{
		articles.GET("", middleware.OptionalAuthMiddleware(), articleHandler.GetArticles)
		articles.GET("/feed", middleware.AuthMiddleware(), articleHandler.GetFeed)
		articles.POST("", middleware.AuthMiddleware(), articleHandler.CreateArticle)
		articles.GET("/:slug", middleware.OptionalAuthMiddleware(), articleHandler.GetArticle)
		articles.PUT("/:slug", middleware.AuthMiddleware(), articleHandler.UpdateArticle)
		articles.DELETE("/:slug", middleware.AuthMiddleware(), articleHandler.DeleteArticle)
		articles.POST("/:slug/favorite", middleware.AuthMiddleware(), articleHandler.FavoriteArticle)
		articles.DELETE("/:slug/favorite", middleware.AuthMiddleware(), articleHandler.UnfavoriteArticle)
		articles.GET("/:slug/comments", middleware.OptionalAuthMiddleware(), commentHandler.GetComments)
		articles.POST("/:slug/comments", middleware.AuthMiddleware(), commentHandler.AddComment)
		articles.DELETE("/:slug/comments/:commentId", middleware.AuthMiddleware(), commentHandler.RemoveComment)
	}

	// Tags
	router.GET("/tags", articleHandler.GetTags)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
