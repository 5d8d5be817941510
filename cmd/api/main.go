package main

import (
	"fmt"
	"log"
	"os"

	"agripulse-terminal/internal/api/handlers"
	"agripulse-terminal/internal/api/middleware"
	"agripulse-terminal/internal/config"
	"agripulse-terminal/internal/data"
	"agripulse-terminal/internal/engine"
	"agripulse-terminal/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real env vars win.
	_ = godotenv.Load()

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	cfg := loadConfig()
	log.Printf("Backend: %s (timeout %v)", cfg.Backend.BaseURL, cfg.Timeout())

	client := data.NewClient(cfg.Backend.BaseURL)

	eng := engine.New(client,
		engine.WithTimeout(cfg.Timeout()),
		engine.WithQueryDefaults(model.QueryParameters{
			Commodity:   cfg.Query.Commodity,
			Location:    cfg.Query.Location,
			HorizonDays: cfg.Query.HorizonDays,
		}),
		engine.WithTradeDefaults(model.TradeParameters{
			Commodity:   cfg.Trade.Commodity,
			Source:      cfg.Trade.Source,
			Destination: cfg.Trade.Destination,
			QtyTonnes:   cfg.Trade.QtyTonnes,
			Domestic:    cfg.Trade.Domestic,
		}),
		engine.WithDashboardCity(cfg.Query.DashboardCity),
	)

	// Mount-time fetches: initial analytics, one-shot catalog load, dashboard.
	eng.Init()

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	terminalHandler := handlers.NewTerminalHandler(eng)
	tradeHandler := handlers.NewTradeHandler(eng)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.GET("/state", terminalHandler.GetState)
		api.POST("/query/commodity", terminalHandler.SubmitCommodity)
		api.POST("/query/location", terminalHandler.SubmitLocation)
		api.POST("/query/horizon", terminalHandler.SetHorizon)
		api.POST("/generate", terminalHandler.Generate)
		api.POST("/dashboard/city", terminalHandler.SubmitDashboardCity)

		api.POST("/trade/params", tradeHandler.UpdateParams)
		api.POST("/trade/simulate", tradeHandler.Simulate)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// loadConfig reads CONFIG_FILE (or ./config.yaml when present) and falls back
// to built-in defaults with environment overrides.
func loadConfig() *config.Config {
	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = "config.yaml"
	}
	if _, err := os.Stat(path); err != nil {
		log.Printf("Config file %s not found, using defaults", path)
		return config.FromEnv()
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("Failed to load config %s: %v", path, err)
	}
	return cfg
}
