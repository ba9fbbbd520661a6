//go:build !cli
// +build !cli

package main

import (
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/DoTranTuyen/fullstack-dath/api"
	assistantApi "github.com/DoTranTuyen/fullstack-dath/api/assistant"
	graphqlApi "github.com/DoTranTuyen/fullstack-dath/api/graphql"
	inventoryApi "github.com/DoTranTuyen/fullstack-dath/api/inventory"
	menuApi "github.com/DoTranTuyen/fullstack-dath/api/menu"
	orderApi "github.com/DoTranTuyen/fullstack-dath/api/order"
	recommendApi "github.com/DoTranTuyen/fullstack-dath/api/recommend"
	sessionApi "github.com/DoTranTuyen/fullstack-dath/api/session"
	tableApi "github.com/DoTranTuyen/fullstack-dath/api/table"
	"github.com/DoTranTuyen/fullstack-dath/config"
	"github.com/DoTranTuyen/fullstack-dath/core/auth"
	_ "github.com/DoTranTuyen/fullstack-dath/custom"
	assistantService "github.com/DoTranTuyen/fullstack-dath/service/assistant"
	diningService "github.com/DoTranTuyen/fullstack-dath/service/dining"
	recommendService "github.com/DoTranTuyen/fullstack-dath/service/recommend"
)

// newLLM builds the chat model for the assistant. Returns nil when no key is
// configured; the assistant endpoint then answers 503.
func newLLM() llms.Model {
	apiKey := os.Getenv("LLM_API_KEY")
	if apiKey == "" {
		return nil
	}
	opts := []openai.Option{openai.WithToken(apiKey)}
	if base := os.Getenv("LLM_BASE_URL"); base != "" {
		opts = append(opts, openai.WithBaseURL(base))
	}
	if model := os.Getenv("LLM_MODEL"); model != "" {
		opts = append(opts, openai.WithModel(model))
	}
	llm, err := openai.New(opts...)
	if err != nil {
		log.Printf("LLM init failed, assistant disabled: %v", err)
		return nil
	}
	return llm
}

func main() {
	config.LoadEnv()
	config.LoadAppConfig()

	config.InitRedis()
	redisStatus := "Redis not configured or not reachable, caching disabled."
	if config.RedisClient != nil {
		err := config.RedisClient.Ping(config.RedisCtx()).Err()
		if err == nil {
			redisStatus = "Redis connection successful."
		} else {
			config.RedisClient = nil // Disable Redis if not reachable
			redisStatus = "Redis configured but not reachable, caching disabled."
		}
	}
	log.Println(redisStatus)

	db, err := config.NewDB()
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	sqldb, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get DB instance: %v", err)
	}
	if err := sqldb.Ping(); err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	log.Println("Database connection successful.")

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.Decompress())

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start).Milliseconds()
			c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
			return err
		}
	})

	// Recommendation model is optional; the endpoint answers 503 until one loads.
	recommender := recommendService.NewService(db)
	modelPath := config.GetEnv("RECOMMEND_MODEL_PATH", "models/cf_model.json")
	idsPath := config.GetEnv("RECOMMEND_IDS_PATH", "models/product_ids.json")
	if err := recommender.LoadFromFiles(modelPath, idsPath); err != nil {
		log.Printf("Recommendation model not loaded: %v", err)
	}

	assistant := assistantService.NewService(db, newLLM())
	tables := diningService.NewService(db, nil)

	apiGroup := e.Group("/api")
	apiGroup.Use(auth.Middleware())

	menuApi.RegisterMenuRoutes(apiGroup, db)
	menuApi.RegisterSearchRoutes(apiGroup, db)
	orderApi.RegisterOrderRoutes(apiGroup, db)
	sessionApi.RegisterSessionRoutes(apiGroup, db)
	inventoryApi.RegisterInventoryRoutes(apiGroup, db)
	tableApi.RegisterTableRoutes(apiGroup, db, tables)
	recommendApi.RegisterRecommendRoutes(apiGroup, recommender)
	assistantApi.RegisterAssistantRoutes(apiGroup, assistant)

	graphqlApi.RegisterGraphQLRoutes(e, db)

	api.ApplyModules(apiGroup, db)
	api.ApplyRoutes(e, db)

	e.Static("/media", config.AppConfig.MediaDir)

	fonts := []string{"banner", "big", "block", "slant", "standard", "small", "shadow", "speed", "thick", "doom", "larry3d", "puffy", "rectangles"}
	fig := figure.NewFigure("DATH POS ->", fonts[rand.Intn(len(fonts))], true)
	fig.Print()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on :%s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
