package worker

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/persnickety/venues-ms-go/internal/port"
	"github.com/persnickety/venues-ms-go/internal/task"
	"github.com/persnickety/venues-ms-go/internal/validation"
)

// CleanupObjectsHandler removes storage objects orphaned by a failed ingest.
// Keys that fail to delete are collected into the returned error so the task
// is retried; keys already gone count as removed.
func CleanupObjectsHandler(ctx context.Context, p task.CleanupObjectsPayload, strg port.Storage) error {
	if err := validation.ValidateStruct(p); err != nil {
		log.Printf("❌  Invalid cleanup-objects payload: %v", err)
		return err
	}

	var errs []error
	for _, key := range p.Keys {
		if err := strg.RemoveFile(ctx, p.Bucket, key); err != nil {
			log.Printf("❌  Failed to remove orphaned object %q from bucket %q: %v", key, p.Bucket, err)
			errs = append(errs, fmt.Errorf("remove %q: %w", key, err))
			continue
		}
		log.Printf("✅  Removed orphaned object %q from bucket %q", key, p.Bucket)
	}
	return errors.Join(errs...)
}
