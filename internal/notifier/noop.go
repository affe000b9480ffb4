package notifier

import "github.com/persnickety/venues-ms-go/internal/port"

// NoopNotifier discards every event. Wired when websockets are disabled.
type NoopNotifier struct{}

var _ port.Notifier = (*NoopNotifier)(nil)

func NewNoop() *NoopNotifier { return &NoopNotifier{} }

func (n *NoopNotifier) Publish(topic string, payload any) {}
