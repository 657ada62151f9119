package routes

import (
	"github.com/admitpath/api-go/config"
	"github.com/admitpath/api-go/controllers"
	"github.com/admitpath/api-go/middleware"
	"github.com/admitpath/api-go/repository"
	"github.com/admitpath/api-go/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	repo := repository.NewPostgresRepository(db)
	sink := services.NewAuditSink(repo)

	var store services.ObjectStore
	if cfg := config.GetStorageConfig(); cfg != nil {
		store = services.NewR2Store(cfg)
	}

	adminService := services.NewAdminService(repo, sink, config.NewRedisClient(), store)

	authController := controllers.NewAuthController(db)
	adminController := controllers.NewAdminController(adminService)

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/login", authController.Login)
		public.GET("/auth/google/url", authController.GoogleAuthURL)
		public.POST("/auth/google", authController.GoogleLogin)
		public.POST("/auth/google/callback", authController.GoogleCallback)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		admin := protected.Group("/admin")
		admin.Use(middleware.RequireAdmin())
		SetupAdminRoutes(admin, adminController)
	}
}
