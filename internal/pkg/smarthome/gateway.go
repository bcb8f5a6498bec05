package smarthome

import (
	"context"

	"github.com/anicoll/webthings-integration/internal/pkg/model"
)

// Gateway is the collaborator contract against the thing gateway. The core
// only consumes it; internal/pkg/webthings provides the production
// implementation.
type Gateway interface {
	// ListThings returns all things when ids is nil, otherwise only those
	// whose identifier is in ids.
	ListThings(ctx context.Context, ids []string) ([]model.Thing, error)
	// ThingID returns the stable identifier for a thing record.
	ThingID(thing model.Thing) string
	// GetProperty reads a single named property.
	GetProperty(ctx context.Context, thing model.Thing, name string) (any, error)
	// SetProperty writes a single named property and returns the value the
	// gateway actually committed, which may differ from the requested one.
	SetProperty(ctx context.Context, thing model.Thing, name string, value any) (any, error)
	// IsOnline reports whether the thing is currently reachable. The seed
	// property and its just-read value let the implementation probe the
	// device instead of trusting a cached answer.
	IsOnline(ctx context.Context, thing model.Thing, seedProperty string, seedValue any) (bool, error)
}
