package cmd

import (
	"context"
	"errors"
)

type MockGatewayWatcher struct {
	WatchFunc func(ctx context.Context) error
}

func (m *MockGatewayWatcher) Watch(ctx context.Context) error {
	if m.WatchFunc != nil {
		return m.WatchFunc(ctx)
	}
	return errors.New("mocked Watch not implemented")
}
