package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	log "github.com/sirupsen/logrus"

	"github.com/ablehire/jobs-api/internal/api"
	"github.com/ablehire/jobs-api/internal/clients/jsearch"
	"github.com/ablehire/jobs-api/internal/config"
	"github.com/ablehire/jobs-api/internal/logger"
	"github.com/ablehire/jobs-api/internal/metrics"
	"github.com/ablehire/jobs-api/internal/repositories"
	"github.com/ablehire/jobs-api/internal/services"
)

func buildSearchService(cfg *config.Config, bus EventBus.Bus) *services.JobSearchService {

	client := jsearch.NewClient(cfg.Search.APIKey)
	client.SetRateLimit(cfg.Search.UpstreamMaxRequestsPerSecond)

	retriever := services.NewJobsRetriever(client)

	return services.NewJobSearchService(bus, retriever, cfg.Search.APIKey, cfg.Search.CacheTTL())
}

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	metrics.StartMetricsServer(fmt.Sprintf(":%d", cfg.Server.MetricsPort))

	dbContext, err := repositories.NewDbContext(cfg.DB.ConnectionString)
	if err != nil {
		log.Fatalf("can't create db context: %v", err)
	}
	defer dbContext.Close()

	if err = dbContext.Migrate(); err != nil {
		log.Fatalf("can't migrate db context: %v", err)
	}

	records := repositories.NewSearchRecordsRepository(dbContext.DB)
	bus := EventBus.New()

	if _, err = services.NewHistoryRecorder(bus, records); err != nil {
		log.Fatalf("can't create history recorder: %v", err)
	}

	cleaner, err := services.NewHistoryCleaner(records, cfg.Search.HistoryRetentionInDays)
	if err != nil {
		log.Fatalf("can't create history cleaner: %v", err)
	}
	defer cleaner.Stop()

	searchService := buildSearchService(cfg, bus)

	router := gin.Default()
	api.SetupRoutes(router, api.NewAPI(searchService, records))

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Infof("starting server on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down services...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("server shutdown: %v", err)
	}
	log.Info("Services stopped.")
}
