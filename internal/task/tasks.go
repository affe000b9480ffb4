package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const TypeCleanupObjects = "media:cleanup_objects"

// CleanupObjectsPayload lists storage objects left behind by a failed ingest.
type CleanupObjectsPayload struct {
	Bucket string   `json:"bucket" validate:"required"`
	Keys   []string `json:"keys" validate:"required,min=1"`
}

// NewCleanupObjectsTask creates an Asynq task removing orphaned storage objects.
func NewCleanupObjectsTask(bucket string, keys []string) (*asynq.Task, error) {
	p := CleanupObjectsPayload{Bucket: bucket, Keys: keys}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("could not marshal cleanup-objects payload: %w", err)
	}
	return asynq.NewTask(TypeCleanupObjects, data), nil
}

// ParseCleanupObjectsPayload parses the task payload to CleanupObjectsPayload.
func ParseCleanupObjectsPayload(t *asynq.Task) (CleanupObjectsPayload, error) {
	var p CleanupObjectsPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return CleanupObjectsPayload{}, fmt.Errorf("could not unmarshal payload: %w", err)
	}
	return p, nil
}
