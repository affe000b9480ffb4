package task

import (
	"context"

	"github.com/persnickety/venues-ms-go/internal/port"
)

type NoopDispatcher struct{}

var _ port.TaskDispatcher = (*NoopDispatcher)(nil)

func NewNoopDispatcher() *NoopDispatcher { return &NoopDispatcher{} }

func (d *NoopDispatcher) EnqueueCleanupObjects(ctx context.Context, bucket string, keys []string) error {
	return nil
}
