package task

import (
	"context"

	"github.com/hibiken/asynq"

	"github.com/persnickety/venues-ms-go/internal/port"
)

type Dispatcher struct {
	client *asynq.Client
}

// compile-time check
var _ port.TaskDispatcher = (*Dispatcher)(nil)

func NewDispatcher(addr, password string) *Dispatcher {
	c := asynq.NewClient(asynq.RedisClientOpt{Addr: addr, Password: password})
	return &Dispatcher{client: c}
}

func (d *Dispatcher) EnqueueCleanupObjects(ctx context.Context, bucket string, keys []string) error {
	t, err := NewCleanupObjectsTask(bucket, keys)
	if err != nil {
		return err
	}
	if _, err := d.client.EnqueueContext(ctx, t); err != nil {
		return err
	}
	return nil
}
