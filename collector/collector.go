package main

import (
	"context"
	datasetservice "goapex/collector/services/dataset"
	"goapex/pkg/config"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
)

func main() {
	// Load the environment variables if not running on Docker.
	if os.Getenv("ENVIRONMENT") != "docker" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, reading the environment directly.")
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Couldn't initialize the configuration: %v", err)
	}

	service, err := datasetservice.BuildDatasetService(cfg)
	if err != nil {
		log.Fatalf("Couldn't build the pipeline: %v", err)
	}

	// Stop cleanly on SIGINT or SIGTERM, the checkpoint of the last
	// finished batch survives the interruption.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Println("Starting the collector.")
	runErr := service.Run(ctx)

	if err := service.UploadRunLog(); err != nil {
		log.Printf("Couldn't upload the run log: %v", err)
	}

	if runErr != nil {
		log.Fatalf("Collection run failed: %v", runErr)
	}
}
