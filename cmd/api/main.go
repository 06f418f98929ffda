package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/tomcat65/philly-wings-sub000/internal/auth"
	"github.com/tomcat65/philly-wings-sub000/internal/catalog"
	"github.com/tomcat65/philly-wings-sub000/internal/db"
	"github.com/tomcat65/philly-wings-sub000/internal/draft"
	"github.com/tomcat65/philly-wings-sub000/internal/kv"
	"github.com/tomcat65/philly-wings-sub000/internal/middleware"
	"github.com/tomcat65/philly-wings-sub000/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"REDIS_URL",
		"ADMIN_PASSWORD_HASH",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── REDIS ─────────────────────────
	redisClient, err := kv.ConnectRedis(os.Getenv("REDIS_URL"))
	if err != nil {
		log.Fatal("❌ Redis init failed:", err)
	}
	defer redisClient.Close()

	draftKV := kv.NewRedisStore(redisClient)

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── AUTH ─────────────────────────
	authService := auth.NewService(os.Getenv("ADMIN_PASSWORD_HASH"))
	authHandler := auth.NewHandler(authService)

	r.POST("/admin/login", authHandler.Login)

	// ───────────────────────── CATALOG ─────────────────────────
	catalogRepo := catalog.NewPostgresRepository(pgDB)
	catalogService := catalog.NewService(catalogRepo, r2Client)
	catalogHandler := catalog.NewHandler(catalogService)

	cat := r.Group("/catalog")
	{
		cat.GET("/sauces", catalogHandler.ListSauces)
		cat.GET("/packages", catalogHandler.ListPackages)
	}

	// ───────────────────────── DRAFTS ─────────────────────────
	draftService := draft.NewService(catalogService, draftKV, time.Now)
	draftHub := draft.NewHub()
	draftHandler := draft.NewHandler(draftService, draftHub)

	drafts := r.Group("/drafts")
	{
		drafts.POST("", draftHandler.Create)
		drafts.GET("/:id", draftHandler.Get)
		drafts.DELETE("/:id", draftHandler.Delete)
		drafts.PUT("/:id/event-details", draftHandler.SetEventDetails)
		drafts.POST("/:id/distribution", draftHandler.ApplyPreference)
		drafts.PUT("/:id/distribution", draftHandler.SetDistribution)
		drafts.PUT("/:id/sauces", draftHandler.SelectSauces)
		drafts.POST("/:id/preset", draftHandler.ApplyPreset)
		drafts.POST("/:id/assignments/reset", draftHandler.ResetAssignments)
		drafts.PATCH("/:id/assignments", draftHandler.EditAssignment)
		drafts.GET("/:id/summary", draftHandler.Summary)
		drafts.GET("/:id/ws", draftHandler.Watch)
	}

	// ───────────────────────── ADMIN ROUTES ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleAdmin),
	)
	{
		admin.POST("/sauces", catalogHandler.CreateSauce)
		admin.POST("/sauces/:id/image", catalogHandler.UploadSauceImage)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}
