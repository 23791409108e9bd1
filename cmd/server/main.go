package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/murean5/ML-OPS/cmd"
	backend "github.com/murean5/ML-OPS/internal/api"
	"github.com/murean5/ML-OPS/internal/database"
	"github.com/murean5/ML-OPS/internal/dataset"
	"github.com/murean5/ML-OPS/internal/messaging"
	"github.com/murean5/ML-OPS/internal/prediction"
	"github.com/murean5/ML-OPS/internal/storage"
	"github.com/murean5/ML-OPS/internal/tracking"
	"github.com/murean5/ML-OPS/internal/training"
	"github.com/murean5/ML-OPS/proto"

	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"google.golang.org/grpc"
)

type ServerConfig struct {
	DatabaseURL string `env:"DATABASE_URL" envDefault:"mlops.db"`
	APIPort     string `env:"API_PORT" envDefault:"8000"`
	GrpcPort    string `env:"GRPC_PORT" envDefault:"50051"`

	// Empty runs the in-memory queue with an in-process worker; set to run
	// against RabbitMQ with separate worker processes.
	RabbitMQURL string `env:"RABBITMQ_URL"`

	// Empty uses local disk storage under LocalStorageDir.
	S3EndpointURL     string `env:"S3_ENDPOINT_URL"`
	S3AccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	S3SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
	S3Region          string `env:"AWS_REGION" envDefault:"us-east-1"`
	ArtifactBucket    string `env:"ARTIFACT_BUCKET_NAME" envDefault:"ml-artifacts"`
	LocalStorageDir   string `env:"LOCAL_STORAGE_DIR" envDefault:"./data"`

	// Empty disables experiment tracking.
	TrackingServerURL string `env:"TRACKING_SERVER_URL"`

	WorkerConcurrency int `env:"CONCURRENCY" envDefault:"1"`
}

func main() {
	log.Println("Starting ML-OPS server...")

	cmd.LoadEnvFile()

	var cfg ServerConfig
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

	datasets := dataset.NewRegistry(db, store)
	predictor := prediction.NewEngine(db, store)

	var publisher messaging.Publisher
	var worker *messaging.Worker
	if cfg.RabbitMQURL != "" {
		rmqPublisher, err := messaging.NewRabbitMQPublisher(cfg.RabbitMQURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		publisher = rmqPublisher
	} else {
		queue := messaging.NewInMemoryQueue()
		publisher = queue

		engine := training.NewEngine(db, store, datasets, tracker)
		worker = messaging.NewWorker(queue, engine, cfg.WorkerConcurrency)
		worker.Start(ctx)
	}
	defer publisher.Close()

	service := backend.NewBackendService(db, datasets, predictor, store, publisher)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Route("/api/v1", service.AddRoutes)

	server := &http.Server{
		Addr:    ":" + cfg.APIPort,
		Handler: r,
	}

	grpcServer := grpc.NewServer()
	proto.RegisterMLServiceServer(grpcServer, backend.NewGrpcServer(service))

	grpcListener, err := net.Listen("tcp", ":"+cfg.GrpcPort)
	if err != nil {
		log.Fatalf("failed to listen on grpc port %s: %v", cfg.GrpcPort, err)
	}

	go func() {
		log.Printf("gRPC server listening on port %s", cfg.GrpcPort)
		if err := grpcServer.Serve(grpcListener); err != nil {
			log.Fatalf("grpc server error: %v", err)
		}
	}()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("shutting down...")

		grpcServer.GracefulStop()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Fatalf("server forced to shutdown: %v", err)
		}
	}()

	log.Printf("REST server listening on port %s", cfg.APIPort)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("could not listen on %s: %v", cfg.APIPort, err)
	}

	if worker != nil {
		publisher.Close()
		worker.Wait()
	}

	log.Println("server stopped")
}
