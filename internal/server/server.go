package server

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/amirulhakim/themajlis/config"
	"github.com/amirulhakim/themajlis/internal/handlers"
	"github.com/amirulhakim/themajlis/internal/middleware"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	r := gin.Default()

	setupRoutes(r, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return r.Run(":" + port)
}

func setupRoutes(r *gin.Engine, db *gorm.DB) {
	r.Use(middleware.DatabaseMiddleware(db))

	r.Static("/uploads", "./uploads")

	public := r.Group("/v1")
	{
		public.POST("/register", handlers.Register)
		public.POST("/login", handlers.Login)
		public.GET("/meta", handlers.GetMeta)

		majlisPublic := public.Group("/majlis")
		{
			majlisPublic.GET("", handlers.ListMajlis)
			majlisPublic.GET("/:id", handlers.GetMajlis)
			majlisPublic.GET("/:id/share", handlers.ShareMajlis)
			majlisPublic.GET("/:id/qr", handlers.MajlisQRCode)
		}
	}

	protected := r.Group("/v1")
	protected.Use(middleware.JWTAuthMiddleware())
	{
		majlisProtected := protected.Group("/majlis")
		{
			majlisProtected.POST("", handlers.CreateMajlis)
			majlisProtected.GET("/mine", handlers.ListMyMajlis)
			majlisProtected.PUT("/:id", handlers.UpdateMajlis)
			majlisProtected.DELETE("/:id", handlers.DeleteMajlis)
			majlisProtected.POST("/:id/like", handlers.ToggleLike)
			majlisProtected.GET("/:id/liked", handlers.CheckLiked)
		}

		protected.GET("/dashboard/stats", handlers.DashboardStats)
		protected.GET("/profile", handlers.GetProfile)

		protected.GET("/users", handlers.ListUsers)
		protected.PUT("/users/:id/role", handlers.UpdateUserRole)
	}
}
