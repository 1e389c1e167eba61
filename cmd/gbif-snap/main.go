package main

import (
	"context"
	"errors"
	"gbif-snap/internal/archive"
	"gbif-snap/internal/config"
	"gbif-snap/internal/event"
	"gbif-snap/internal/gbif"
	"gbif-snap/internal/snapshot"
	"gbif-snap/internal/store"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	// Root context cancelled on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := log.New(os.Stdout, "[gbif-snap] ", log.LstdFlags)

	cfg, err := config.FromEnv()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	httpClient := &http.Client{Timeout: cfg.Timeout}
	client := gbif.NewClient(cfg.SearchURL, httpClient)
	st := store.New(cfg.ImageDir, cfg.MetadataDir, logger)

	// Archive sink (MongoDB), wired only when enabled
	var archiver snapshot.Archiver
	if cfg.ArchiveEnabled {
		mongoClient, err := archive.Connect(ctx, cfg.MongoURI)
		if err != nil {
			logger.Fatalf("failed to connect to archive db: %v", err)
		}
		defer func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := mongoClient.Disconnect(disconnectCtx); err != nil {
				logger.Printf("mongo disconnect error: %v", err)
			}
		}()

		repo, err := archive.NewMongoRepository(mongoClient.Database(cfg.MongoDBName), logger)
		if err != nil {
			logger.Fatalf("failed to init archive repository: %v", err)
		}
		archiver = repo
		logger.Println("archive repository initialised")
	}

	// Event publisher (RabbitMQ), wired only when enabled
	var publisher snapshot.Publisher
	if cfg.EventsEnabled {
		pub, err := event.NewRabbitPublisher(
			cfg.RabbitURI,
			cfg.RabbitExchange,
			cfg.RabbitRoutingKey,
			logger,
		)
		if err != nil {
			logger.Fatalf("failed to init rabbit publisher: %v", err)
		}
		defer pub.Close()
		publisher = pub
	}

	svc := snapshot.NewService(
		client,
		st,
		archiver,
		publisher,
		cfg.Species,
		cfg.Limit,
		logger,
	)

	// Single-shot run. Errors are reported to the operator but do not map to
	// a distinct exit code; missing-data conditions already returned nil.
	if err := svc.RunOnce(ctx); err != nil {
		var reqErr *gbif.RequestError
		if errors.As(err, &reqErr) {
			logger.Printf("error making API request: %v", reqErr)
		} else {
			logger.Printf("error: %v", err)
		}
	}
}
