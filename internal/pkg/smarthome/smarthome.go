// Package smarthome translates between the gateway's generic thing
// representation and the assistant's smart home device schema: capability
// classification, state reads, command writes and the per-batch fan-out
// across things.
package smarthome

import (
	"context"
	"sync"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/anicoll/webthings-integration/internal/pkg/model"
)

type service struct {
	gateway         Gateway
	willReportState bool
	logger          *zap.Logger
}

// New returns the smart home service. willReportState is fixed for the life
// of the process and stamped into every capability descriptor; it reflects
// whether continuous state polling is configured, not any per-device fact.
func New(gw Gateway, willReportState bool) *service {
	return &service{
		gateway:         gw,
		willReportState: willReportState,
		logger:          zap.L(),
	}
}

// Devices resolves the id list (nil means all known things) and classifies
// each resolved thing. Things whose category has no classification are left
// out of the result silently.
func (s *service) Devices(ctx context.Context, ids []string) (map[string]*model.Device, error) {
	things, err := s.gateway.ListThings(ctx, ids)
	if err != nil {
		return nil, err
	}

	devices := make(map[string]*model.Device, len(things))
	for _, thing := range things {
		id := s.gateway.ThingID(thing)
		device := Classify(id, thing, s.willReportState)
		if device == nil {
			s.logger.Debug("thing not classifiable", zap.String("thing", id), zap.String("category", thing.Type.String()))
			continue
		}
		devices[id] = device
	}
	return devices, nil
}

// States reads every resolved thing concurrently. Every resolved thing gets
// an entry, offline ones included; one thing's failure never aborts the rest.
func (s *service) States(ctx context.Context, ids []string) (map[string]model.DeviceState, error) {
	things, err := s.gateway.ListThings(ctx, ids)
	if err != nil {
		return nil, err
	}

	states := s.fanOut(ctx, things, func(ctx context.Context, thing model.Thing) model.DeviceState {
		return ReadState(ctx, s.gateway, thing)
	})
	return s.keyByThing(things, states), nil
}

// Execute merges all execution parameter maps into one (later entries win per
// key), broadcasts the merged set to every resolved thing concurrently, and
// returns the per-thing results along with the merged map that was applied.
func (s *service) Execute(ctx context.Context, ids []string, execs []model.Execution) (map[string]model.DeviceState, model.CommandParams, error) {
	things, err := s.gateway.ListThings(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	params := MergeParams(execs)
	states := s.fanOut(ctx, things, func(ctx context.Context, thing model.Thing) model.DeviceState {
		return WriteState(ctx, s.gateway, thing, params)
	})
	return s.keyByThing(things, states), params, nil
}

// MergeParams flattens a batch of executions into one last-write-wins
// parameter map.
func MergeParams(execs []model.Execution) model.CommandParams {
	params := model.CommandParams{}
	for _, exec := range execs {
		params = lo.Assign(params, exec.Params)
	}
	return params
}

// fanOut runs one unit of work per thing and waits for all of them. Workers
// write disjoint slice slots, so no locking is needed, and they report
// failure through the snapshot itself rather than an error, so one thing
// cannot cancel or block its siblings.
func (s *service) fanOut(ctx context.Context, things []model.Thing, work func(context.Context, model.Thing) model.DeviceState) []model.DeviceState {
	states := make([]model.DeviceState, len(things))
	var wg sync.WaitGroup
	for i, thing := range things {
		i, thing := i, thing
		wg.Add(1)
		go func() {
			defer wg.Done()
			states[i] = work(ctx, thing)
		}()
	}
	wg.Wait()
	return states
}

func (s *service) keyByThing(things []model.Thing, states []model.DeviceState) map[string]model.DeviceState {
	result := make(map[string]model.DeviceState, len(things))
	for i, thing := range things {
		result[s.gateway.ThingID(thing)] = states[i]
	}
	return result
}
