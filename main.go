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

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/poachurch/pcobridge/audit"
	"github.com/poachurch/pcobridge/config"
	"github.com/poachurch/pcobridge/controller"
	logger "github.com/poachurch/pcobridge/logging"
	"github.com/poachurch/pcobridge/pco"
	"github.com/poachurch/pcobridge/router"
	"github.com/poachurch/pcobridge/service"
)

func main() {
	// Initialize configuration
	if err := config.InitConfig(); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}
	cfg := config.GetConfig()

	// Initialize logger
	logger.InitLogger(cfg.Log.Dir)
	defer logger.Sync()

	// Initialize the optional upstream-fetch audit trail
	var auditService audit.Service
	if cfg.Elasticsearch.URL != "" {
		auditRepository, err := audit.NewElasticsearchRepository(cfg.Elasticsearch.URL)
		if err != nil {
			logger.Fatal("Failed to initialize audit repository", zap.Error(err))
		}
		auditService = audit.NewService(auditRepository)
	}

	// Initialize the Planning Center client
	pcoClient := pco.NewClient(
		cfg.PlanningCenter.BaseURL,
		cfg.PlanningCenter.AppID,
		cfg.PlanningCenter.Secret,
		auditService,
	)

	// Initialize services
	services := service.InitializeServices(pcoClient, cfg.PlanningCenter.EventsPerPage)

	// Initialize controllers
	controllers := controller.InitializeControllers(services)

	// Set up Gin
	gin.SetMode(gin.ReleaseMode)
	engine := router.SetupRouter(controllers, cfg.CORS.AllowedOrigins)

	// Set up the server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: engine,
	}

	// Start the server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}
