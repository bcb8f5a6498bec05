package smarthome

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/anicoll/webthings-integration/internal/pkg/model"
)

// ReadState reads the current state of a thing into a snapshot. Failures are
// absorbed at whole-thing granularity: any error along the read or liveness
// path yields {online:false} with no other fields, discarding partial reads.
func ReadState(ctx context.Context, gw Gateway, thing model.Thing) model.DeviceState {
	state, err := readState(ctx, gw, thing)
	if err != nil {
		zap.L().Error("state read failed",
			zap.String("thing", gw.ThingID(thing)),
			zap.String("category", thing.Type.String()),
			zap.Error(err))
		return model.OfflineState()
	}
	return state
}

func readState(ctx context.Context, gw Gateway, thing model.Thing) (model.DeviceState, error) {
	state := model.DeviceState{Online: true}

	switch thing.Type {
	case model.CategoryOnOffSwitch, model.CategoryMultilevelSwitch,
		model.CategorySmartPlug, model.CategoryOnOffLight:
		on, err := readBool(ctx, gw, thing, model.PropertyOn)
		if err != nil {
			return state, err
		}
		state.On = &on
		return seedOnline(ctx, gw, thing, state, model.PropertyOn, on)

	case model.CategoryDimmableLight:
		var (
			on         bool
			brightness int
		)
		eg, gctx := errgroup.WithContext(ctx)
		eg.Go(func() (err error) {
			on, err = readBool(gctx, gw, thing, model.PropertyOn)
			return err
		})
		eg.Go(func() (err error) {
			brightness, err = readInt(gctx, gw, thing, model.PropertyLevel)
			return err
		})
		if err := eg.Wait(); err != nil {
			return state, err
		}
		state.On = &on
		state.Brightness = &brightness
		return seedOnline(ctx, gw, thing, state, model.PropertyOn, on)

	case model.CategoryOnOffColorLight:
		var (
			on    bool
			color *model.ColorState
		)
		eg, gctx := errgroup.WithContext(ctx)
		eg.Go(func() (err error) {
			on, err = readBool(gctx, gw, thing, model.PropertyOn)
			return err
		})
		if thing.HasProperty(model.PropertyColor) {
			eg.Go(func() (err error) {
				color, err = readColor(gctx, gw, thing)
				return err
			})
		}
		if err := eg.Wait(); err != nil {
			return state, err
		}
		state.On = &on
		state.Color = color
		return seedOnline(ctx, gw, thing, state, model.PropertyOn, on)

	case model.CategoryDimmableColorLight:
		var (
			on         bool
			brightness int
			color      *model.ColorState
		)
		eg, gctx := errgroup.WithContext(ctx)
		eg.Go(func() (err error) {
			on, err = readBool(gctx, gw, thing, model.PropertyOn)
			return err
		})
		eg.Go(func() (err error) {
			brightness, err = readInt(gctx, gw, thing, model.PropertyLevel)
			return err
		})
		if thing.HasProperty(model.PropertyColor) {
			eg.Go(func() (err error) {
				color, err = readColor(gctx, gw, thing)
				return err
			})
		}
		if err := eg.Wait(); err != nil {
			return state, err
		}
		state.On = &on
		state.Brightness = &brightness
		state.Color = color
		return seedOnline(ctx, gw, thing, state, model.PropertyOn, on)

	case model.CategoryThing:
		if !thing.HasProperty(model.PropertyMode) || !thing.HasProperty(model.PropertyTemperature) {
			return state, nil
		}
		var (
			mode        string
			temperature float64
		)
		eg, gctx := errgroup.WithContext(ctx)
		eg.Go(func() (err error) {
			mode, err = readString(gctx, gw, thing, model.PropertyMode)
			return err
		})
		eg.Go(func() (err error) {
			temperature, err = readFloat(gctx, gw, thing, model.PropertyTemperature)
			return err
		})
		if err := eg.Wait(); err != nil {
			return state, err
		}
		state.ThermostatMode = &mode
		state.ThermostatTemperatureSetpoint = &temperature
		return seedOnline(ctx, gw, thing, state, model.PropertyMode, mode)

	default:
		// category outside the capability table: reachable, no fields
		return state, nil
	}
}

// seedOnline runs the liveness check after the reads it depends on have
// completed, seeded with the value just read so the gateway can probe rather
// than trust a cached answer.
func seedOnline(ctx context.Context, gw Gateway, thing model.Thing, state model.DeviceState, seedProperty string, seedValue any) (model.DeviceState, error) {
	online, err := gw.IsOnline(ctx, thing, seedProperty, seedValue)
	if err != nil {
		return state, err
	}
	state.Online = online
	return state, nil
}

func readBool(ctx context.Context, gw Gateway, thing model.Thing, name string) (bool, error) {
	v, err := gw.GetProperty(ctx, thing, name)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%w: property %s is %T", ErrPropertyFormat, name, v)
	}
	return b, nil
}

func readInt(ctx context.Context, gw Gateway, thing model.Thing, name string) (int, error) {
	f, err := readFloat(ctx, gw, thing, name)
	return int(f), err
}

func readFloat(ctx context.Context, gw Gateway, thing model.Thing, name string) (float64, error) {
	v, err := gw.GetProperty(ctx, thing, name)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	}
	return 0, fmt.Errorf("%w: property %s is %T", ErrPropertyFormat, name, v)
}

func readString(ctx context.Context, gw Gateway, thing model.Thing, name string) (string, error) {
	v, err := gw.GetProperty(ctx, thing, name)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: property %s is %T", ErrPropertyFormat, name, v)
	}
	return s, nil
}

func readColor(ctx context.Context, gw Gateway, thing model.Thing) (*model.ColorState, error) {
	hex, err := readString(ctx, gw, thing, model.PropertyColor)
	if err != nil {
		return nil, err
	}
	rgb, err := HexToRGB(hex)
	if err != nil {
		return nil, err
	}
	return &model.ColorState{SpectrumRGB: rgb}, nil
}
