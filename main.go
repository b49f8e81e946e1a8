package main

import (
	"travelrisk/config"
	"travelrisk/database"
	"travelrisk/handlers"
	"travelrisk/middleware"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.InitializeSchema(db); err != nil {
		log.Fatalf("Failed to initialize database schema: %v", err)
	}

	service := database.NewService(db, cfg.JWTSecret)
	router := setupRouter(service, cfg)

	log.Infof("Travel risk service starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(service *database.Service, cfg *config.Config) *gin.Engine {
	router := gin.Default()
	router.SetTrustedProxies(cfg.TrustedProxies)

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.SecurityHeaders())

	// The resource endpoints share a uniform verb mapping; anything else
	// gets a 405 naming the allowed verbs.
	router.HandleMethodNotAllowed = true
	router.NoMethod(handlers.MethodNotAllowed)

	h := handlers.NewHandlers(service)

	router.GET("/health", h.HealthCheck)

	public := router.Group("/api")
	{
		public.POST("/auth/login", h.Login)
		public.POST("/users", h.CreateUser)
		public.GET("/danger-zones", h.DangerZones)
		public.GET("/travel-risks", h.TravelRisks)
	}

	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware(service))
	{
		protected.POST("/reports", h.CreateReport)
		protected.GET("/reports", h.ListReports)
	}

	admin := router.Group("/api")
	admin.Use(middleware.AuthMiddleware(service), middleware.RequireAdmin())
	{
		admin.PUT("/reports", h.UpdateReport)
		admin.DELETE("/reports", h.DeleteReport)

		admin.GET("/users", h.ListUsers)
		admin.PUT("/users", h.UpdateUser)
		admin.DELETE("/users", h.DeleteUser)

		admin.POST("/dangers", h.CreateDanger)
		admin.GET("/dangers", h.ListDangers)
		admin.PUT("/dangers", h.UpdateDanger)
		admin.DELETE("/dangers", h.DeleteDanger)
	}

	return router
}
