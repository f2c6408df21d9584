package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shackchat/internal/chat"
	"shackchat/internal/config"
	"shackchat/internal/database"
	"shackchat/internal/llm"
	"shackchat/internal/menu"
	"shackchat/internal/monitoring"
	"shackchat/internal/orders"
	"shackchat/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	port        = flag.Int("port", 0, "API server port (overrides config)")
	metricsPort = flag.Int("metrics-port", 0, "Metrics server port (overrides config)")
	configFile  = flag.String("config", "configs/config.yaml", "Path to configuration file")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *metricsPort != 0 {
		cfg.Server.MetricsPort = *metricsPort
	}

	if err := database.InitDB(cfg.Database.Path); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.CloseDB()

	catalog := menu.NewCatalog(menu.NewGormStore(database.GetDB()))
	monitor := monitoring.NewMonitor(nil)
	orderStore := orders.NewGormStore(database.GetDB())

	provider := initializeProvider(cfg)
	factory := func(apiKey string) (llm.Provider, error) {
		return llm.NewOpenAIProvider(apiKey, cfg.LLM.Model)
	}

	chatRouter := chat.NewRouter(catalog, provider, factory, orderStore, monitor)
	api := server.NewServer(chatRouter, catalog, monitor, cfg.Auth.Secret)

	go startMetricsServer(cfg.Server.MetricsPort)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: api.Router(),
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down servers...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("API server shutdown error: %v", err)
		}
	}()

	log.Printf("Starting API server on port %d", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("API server error: %v", err)
	}
}

// initializeProvider builds the process-wide completion provider. A missing
// API key is a normal state: the server starts and asks users to supply one.
func initializeProvider(cfg *config.Config) llm.Provider {
	if cfg.LLM.Provider == "azure" {
		provider, err := llm.NewAzureOpenAIProvider()
		if err != nil {
			log.Printf("Azure OpenAI unavailable: %v", err)
			return nil
		}
		return provider
	}

	key, ok := llm.ResolveAPIKey("")
	if !ok {
		log.Printf("No OpenAI API key configured; sessions must supply their own")
		return nil
	}

	provider, err := llm.NewOpenAIProvider(key, cfg.LLM.Model)
	if err != nil {
		log.Printf("Failed to create OpenAI provider: %v", err)
		return nil
	}
	return provider
}

func startMetricsServer(port int) {
	metricsRouter := gin.Default()
	metricsRouter.GET("/metrics", gin.WrapH(promhttp.Handler()))

	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: metricsRouter,
	}

	log.Printf("Starting metrics server on port %d", port)
	if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Printf("Metrics server error: %v", err)
	}
}
