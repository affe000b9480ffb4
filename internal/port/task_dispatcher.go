package port

import "context"

// TaskDispatcher enqueues asynchronous tasks related to media storage upkeep.
type TaskDispatcher interface {
	// EnqueueCleanupObjects schedules the removal of orphaned storage objects.
	EnqueueCleanupObjects(ctx context.Context, bucket string, keys []string) error
}
