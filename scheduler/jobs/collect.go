package jobs

import (
	"context"
	"fmt"
	datasetservice "goapex/collector/services/dataset"
	"goapex/pkg/config"
	"log"
)

// CollectDataset runs one full dataset collection.
// The job builds its own pipeline, so a failed run never poisons the
// next scheduled one.
func CollectDataset(cfg *config.Config) error {
	log.Println("Starting the dataset collection job.")

	service, err := datasetservice.BuildDatasetService(cfg)
	if err != nil {
		return fmt.Errorf("couldn't build the pipeline: %w", err)
	}

	if err := service.Run(context.Background()); err != nil {
		return fmt.Errorf("dataset collection failed: %w", err)
	}

	if err := service.UploadRunLog(); err != nil {
		log.Printf("Couldn't upload the run log: %v", err)
	}

	log.Println("Finished the dataset collection job.")
	return nil
}
