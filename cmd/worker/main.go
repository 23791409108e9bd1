package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/murean5/ML-OPS/cmd"
	"github.com/murean5/ML-OPS/internal/database"
	"github.com/murean5/ML-OPS/internal/dataset"
	"github.com/murean5/ML-OPS/internal/messaging"
	"github.com/murean5/ML-OPS/internal/storage"
	"github.com/murean5/ML-OPS/internal/tracking"
	"github.com/murean5/ML-OPS/internal/training"

	"github.com/caarlos0/env/v11"
)

type WorkerConfig struct {
	DatabaseURL string `env:"DATABASE_URL,notEmpty,required"`
	RabbitMQURL string `env:"RABBITMQ_URL,notEmpty,required"`

	S3EndpointURL     string `env:"S3_ENDPOINT_URL"`
	S3AccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	S3SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
	S3Region          string `env:"AWS_REGION" envDefault:"us-east-1"`
	ArtifactBucket    string `env:"ARTIFACT_BUCKET_NAME" envDefault:"ml-artifacts"`
	LocalStorageDir   string `env:"LOCAL_STORAGE_DIR" envDefault:"./data"`

	TrackingServerURL string `env:"TRACKING_SERVER_URL"`

	Concurrency int `env:"CONCURRENCY" envDefault:"1"`
}

func main() {
	log.Println("Starting training worker...")

	cmd.LoadEnvFile()

	var cfg WorkerConfig
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("error parsing config: %v", err)
	}

	ctx := context.Background()

	db, err := database.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	var store storage.ObjectStore
	if cfg.S3EndpointURL != "" {
		s3Store, err := storage.NewS3ObjectStore(ctx, cfg.ArtifactBucket, storage.S3ClientConfig{
			Endpoint:        cfg.S3EndpointURL,
			Region:          cfg.S3Region,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
		})
		if err != nil {
			log.Fatalf("failed to create S3 object store: %v", err)
		}
		store = s3Store
	} else {
		localStore, err := storage.NewLocalObjectStore(cfg.LocalStorageDir)
		if err != nil {
			log.Fatalf("failed to create local object store: %v", err)
		}
		store = localStore
	}
	store = storage.WithRetry(store)

	var tracker tracking.Tracker = tracking.NoopTracker{}
	if cfg.TrackingServerURL != "" {
		tracker = tracking.NewHTTPTracker(cfg.TrackingServerURL)
	}

	receiver, err := messaging.NewRabbitMQReceiver(cfg.RabbitMQURL, cfg.Concurrency)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}

	datasets := dataset.NewRegistry(db, store)
	engine := training.NewEngine(db, store, datasets, tracker)

	worker := messaging.NewWorker(receiver, engine, cfg.Concurrency)
	worker.Start(ctx)

	log.Println("worker started, waiting for tasks")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutdown signal received, draining in-flight tasks")
	receiver.Close()
	worker.Wait()

	log.Println("worker stopped")
}
