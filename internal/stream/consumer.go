package stream

import "context"

// StreamConsumer pulls chat requests off a message stream and runs them
// through the chat executor. Setup creates whatever the provider needs
// (consumer groups etc.) and must be called before Start.
type StreamConsumer interface {
	Setup(ctx context.Context) error
	Start(ctx context.Context) error
	Stop() error
}
