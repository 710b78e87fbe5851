package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"microblog/internal/config"
	"microblog/internal/database"
	"microblog/internal/handlers"
	"microblog/internal/middleware"
	"microblog/internal/repository"
	"microblog/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  "Start the Microblog HTTP API server.",
	Run:   runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := database.Connect(ctx, cfg.Database.URI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(cfg.Database.Name)

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	tokens := services.NewTokenManager([]byte(cfg.Auth.Secret), cfg.Auth.TokenTTL)
	authService := services.NewAuthService(userRepo, tokens, cfg.Auth.BcryptCost)
	feedService := services.NewFeedService(postRepo, userRepo, cfg.Feed.PageSize)
	userService := services.NewUserService(userRepo)

	authHandler := handlers.NewAuthHandler(authService)
	feedHandler := handlers.NewFeedHandler(feedService)
	userHandler := handlers.NewUserHandler(userService)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"OPTIONS", "GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
	}))

	r.GET("/healthz", healthCheck(client))

	auth := r.Group("/auth")
	{
		auth.PUT("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	feed := r.Group("/feed")
	{
		feed.GET("/posts", middleware.OptionalAuth(tokens), feedHandler.ListPosts)

		protected := feed.Group("/")
		protected.Use(middleware.Auth(tokens))
		{
			protected.GET("/post-requests", feedHandler.ListPending)
			protected.POST("/post-request/:postId", feedHandler.Approve)
			protected.POST("/post", feedHandler.Create)
			protected.GET("/post/:postId", feedHandler.Get)
			protected.PUT("/post/:postId", feedHandler.Update)
			protected.DELETE("/post/:postId", feedHandler.Delete)
		}
	}

	users := r.Group("/users")
	users.Use(middleware.Auth(tokens))
	{
		users.GET("/all", userHandler.List)
		users.GET("/:userId", userHandler.Get)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
		log.Printf("Starting server on %s", addr)
		if err := r.Run(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")
}

func healthCheck(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
