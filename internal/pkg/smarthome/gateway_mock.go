package smarthome

import (
	"context"
	"errors"

	"github.com/anicoll/webthings-integration/internal/pkg/model"
)

// MockGateway is a function-field implementation of the Gateway interface.
type MockGateway struct {
	ListThingsFunc  func(ctx context.Context, ids []string) ([]model.Thing, error)
	ThingIDFunc     func(thing model.Thing) string
	GetPropertyFunc func(ctx context.Context, thing model.Thing, name string) (any, error)
	SetPropertyFunc func(ctx context.Context, thing model.Thing, name string, value any) (any, error)
	IsOnlineFunc    func(ctx context.Context, thing model.Thing, seedProperty string, seedValue any) (bool, error)
}

func (m *MockGateway) ListThings(ctx context.Context, ids []string) ([]model.Thing, error) {
	if m.ListThingsFunc != nil {
		return m.ListThingsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *MockGateway) ThingID(thing model.Thing) string {
	if m.ThingIDFunc != nil {
		return m.ThingIDFunc(thing)
	}
	return thing.ID()
}

func (m *MockGateway) GetProperty(ctx context.Context, thing model.Thing, name string) (any, error) {
	if m.GetPropertyFunc != nil {
		return m.GetPropertyFunc(ctx, thing, name)
	}
	return nil, errors.New("mocked GetProperty not implemented")
}

func (m *MockGateway) SetProperty(ctx context.Context, thing model.Thing, name string, value any) (any, error) {
	if m.SetPropertyFunc != nil {
		return m.SetPropertyFunc(ctx, thing, name, value)
	}
	return nil, errors.New("mocked SetProperty not implemented")
}

func (m *MockGateway) IsOnline(ctx context.Context, thing model.Thing, seedProperty string, seedValue any) (bool, error) {
	if m.IsOnlineFunc != nil {
		return m.IsOnlineFunc(ctx, thing, seedProperty, seedValue)
	}
	return true, nil
}
