package cmd

import "context"

// GatewayWatcher keeps the gateway liveness cache in sync. Watch blocks until
// the stream drops or ctx is cancelled.
type GatewayWatcher interface {
	Watch(ctx context.Context) error
}
