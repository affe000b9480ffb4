package port

// Notifier publishes an event to every subscriber of a topic.
// Publishing is fire-and-forget: a failed or slow delivery never fails the caller.
type Notifier interface {
	Publish(topic string, payload any)
}
