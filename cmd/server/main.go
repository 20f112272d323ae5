package main

import (
	"log"
	"strings"
	"time"

	"github.com/farhanadi/bloomlog/internal/config"
	"github.com/farhanadi/bloomlog/internal/handler"
	"github.com/farhanadi/bloomlog/internal/middleware"
	"github.com/farhanadi/bloomlog/internal/model"
	"github.com/farhanadi/bloomlog/internal/repository"
	"github.com/farhanadi/bloomlog/internal/service"
	"github.com/farhanadi/bloomlog/pkg/database"
	"github.com/farhanadi/bloomlog/pkg/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db := database.Connect()
	if err := migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	imageStorage, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		log.Fatalf("failed to initialize image storage: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	imageRepo := repository.NewGalleryImageRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	authHandler := handler.NewAuthHandler(authService)

	postService := service.NewPostService(postRepo, userRepo, commentRepo, likeRepo, cfg.PageSize)
	postHandler := handler.NewPostHandler(postService)

	commentService := service.NewCommentService(commentRepo, postRepo)
	commentHandler := handler.NewCommentHandler(commentService)

	likeService := service.NewLikeService(likeRepo, postRepo)
	likeHandler := handler.NewLikeHandler(likeService)

	profileService := service.NewProfileService(userRepo, imageStorage)
	profileHandler := handler.NewProfileHandler(profileService)

	galleryService := service.NewGalleryService(imageRepo, imageStorage)
	galleryHandler := handler.NewGalleryHandler(galleryService)

	router := gin.Default()
	setupCORS(router, cfg.AllowedOrigins)

	// Uploaded files are served straight from the content directory.
	router.Static("/media", cfg.UploadDir)

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWTSecret)

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.GET("/posts", postHandler.ListPosts)
		protected.POST("/posts", postHandler.CreatePost)
		protected.GET("/posts/:id", postHandler.GetPost)
		protected.PUT("/posts/:id", postHandler.UpdatePost)
		protected.DELETE("/posts/:id", postHandler.DeletePost)

		protected.POST("/posts/:id/comments", commentHandler.AddComment)
		protected.PUT("/comments/:id", commentHandler.UpdateComment)
		protected.DELETE("/comments/:id", commentHandler.DeleteComment)

		protected.POST("/posts/:id/like", likeHandler.LikePost)
		protected.DELETE("/posts/:id/like", likeHandler.UnlikePost)
		protected.GET("/posts/:id/likes", likeHandler.GetLikeCount)

		protected.GET("/users", profileHandler.ListProfiles)
		protected.GET("/profiles/me", profileHandler.GetCurrentProfile)
		protected.GET("/profiles/:username", profileHandler.GetProfileByUsername)
		protected.PUT("/profile", profileHandler.UpdateProfile)

		protected.GET("/gallery", galleryHandler.ListImages)
		protected.POST("/gallery", galleryHandler.UploadImage)
	}

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.Post{},
		&model.Comment{},
		&model.Like{},
		&model.GalleryImage{},
	)
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	origins := strings.Split(allowedOrigins, ",")

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Location"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
