package smarthome

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/anicoll/webthings-integration/internal/pkg/model"
)

// WriteState applies the merged command parameters to a thing, writing only
// the fields that are both requested and applicable to its category. Every
// field in the returned snapshot echoes the value the gateway actually
// committed. Failures degrade to {online:false} exactly as in ReadState; any
// writes that already landed stay in effect downstream, only the report is
// truncated.
func WriteState(ctx context.Context, gw Gateway, thing model.Thing, params model.CommandParams) model.DeviceState {
	state, err := writeState(ctx, gw, thing, params)
	if err != nil {
		zap.L().Error("state write failed",
			zap.String("thing", gw.ThingID(thing)),
			zap.String("category", thing.Type.String()),
			zap.Error(err))
		return model.OfflineState()
	}
	return state
}

func writeState(ctx context.Context, gw Gateway, thing model.Thing, params model.CommandParams) (model.DeviceState, error) {
	state := model.DeviceState{Online: true}
	eg, gctx := errgroup.WithContext(ctx)

	switch thing.Type {
	case model.CategoryOnOffSwitch, model.CategoryMultilevelSwitch,
		model.CategorySmartPlug, model.CategoryOnOffLight:
		writeOn(gctx, eg, gw, thing, params, &state)

	case model.CategoryDimmableLight:
		writeOn(gctx, eg, gw, thing, params, &state)
		writeBrightness(gctx, eg, gw, thing, params, &state)

	case model.CategoryOnOffColorLight:
		writeOn(gctx, eg, gw, thing, params, &state)
		writeColor(gctx, eg, gw, thing, params, &state)

	case model.CategoryDimmableColorLight:
		writeOn(gctx, eg, gw, thing, params, &state)
		writeBrightness(gctx, eg, gw, thing, params, &state)
		writeColor(gctx, eg, gw, thing, params, &state)

	case model.CategoryThing:
		if thing.HasProperty(model.PropertyMode) && thing.HasProperty(model.PropertyTemperature) {
			writeThermostat(gctx, eg, gw, thing, params, &state)
		}
	default:
		// category outside the capability table: nothing to apply
	}

	if err := eg.Wait(); err != nil {
		return state, err
	}
	return state, nil
}

// The helpers below each schedule at most one goroutine per snapshot field,
// so concurrent writes for the same thing touch disjoint state fields.

func writeOn(ctx context.Context, eg *errgroup.Group, gw Gateway, thing model.Thing, params model.CommandParams, state *model.DeviceState) {
	on, ok := params.On()
	if !ok {
		return
	}
	eg.Go(func() error {
		accepted, err := gw.SetProperty(ctx, thing, model.PropertyOn, on)
		if err != nil {
			return err
		}
		committed, ok := accepted.(bool)
		if !ok {
			return fmt.Errorf("%w: property %s is %T", ErrPropertyFormat, model.PropertyOn, accepted)
		}
		state.On = &committed
		return nil
	})
}

// writeBrightness handles both the absolute and the relative form. The
// relative form is a read-modify-write: the current level read completes
// before the dependent write issues, even though unrelated writes for the
// same thing may be in flight.
func writeBrightness(ctx context.Context, eg *errgroup.Group, gw Gateway, thing model.Thing, params model.CommandParams, state *model.DeviceState) {
	absolute, hasAbsolute := params.Brightness()
	weight, hasWeight := params.BrightnessRelativeWeight()
	if !hasAbsolute && !hasWeight {
		return
	}
	eg.Go(func() error {
		if hasAbsolute {
			committed, err := setInt(ctx, gw, thing, model.PropertyLevel, absolute)
			if err != nil {
				return err
			}
			state.Brightness = &committed
		}
		if hasWeight {
			current, err := readInt(ctx, gw, thing, model.PropertyLevel)
			if err != nil {
				return err
			}
			committed, err := setInt(ctx, gw, thing, model.PropertyLevel, current+weight)
			if err != nil {
				return err
			}
			state.Brightness = &committed
		}
		return nil
	})
}

func writeColor(ctx context.Context, eg *errgroup.Group, gw Gateway, thing model.Thing, params model.CommandParams, state *model.DeviceState) {
	rgb, ok := params.SpectrumRGB()
	if !ok {
		return
	}
	eg.Go(func() error {
		accepted, err := gw.SetProperty(ctx, thing, model.PropertyColor, RGBToHex(rgb))
		if err != nil {
			return err
		}
		hex, ok := accepted.(string)
		if !ok {
			return fmt.Errorf("%w: property %s is %T", ErrPropertyFormat, model.PropertyColor, accepted)
		}
		committed, err := HexToRGB(hex)
		if err != nil {
			return err
		}
		state.Color = &model.ColorState{SpectrumRGB: committed}
		return nil
	})
}

func writeThermostat(ctx context.Context, eg *errgroup.Group, gw Gateway, thing model.Thing, params model.CommandParams, state *model.DeviceState) {
	if mode, ok := params.ThermostatMode(); ok {
		eg.Go(func() error {
			accepted, err := gw.SetProperty(ctx, thing, model.PropertyMode, mode)
			if err != nil {
				return err
			}
			committed, ok := accepted.(string)
			if !ok {
				return fmt.Errorf("%w: property %s is %T", ErrPropertyFormat, model.PropertyMode, accepted)
			}
			state.ThermostatMode = &committed
			return nil
		})
	}
	if setpoint, ok := params.ThermostatTemperatureSetpoint(); ok {
		eg.Go(func() error {
			accepted, err := gw.SetProperty(ctx, thing, model.PropertyTemperature, setpoint)
			if err != nil {
				return err
			}
			committed, err := asTemperature(accepted)
			if err != nil {
				return err
			}
			state.ThermostatTemperatureSetpoint = &committed
			return nil
		})
	}
}

func setInt(ctx context.Context, gw Gateway, thing model.Thing, name string, value int) (int, error) {
	accepted, err := gw.SetProperty(ctx, thing, name, value)
	if err != nil {
		return 0, err
	}
	switch n := accepted.(type) {
	case float64:
		return int(n), nil
	case int:
		return n, nil
	case int64:
		return int(n), nil
	}
	return 0, fmt.Errorf("%w: property %s is %T", ErrPropertyFormat, name, accepted)
}

func asTemperature(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	}
	return 0, fmt.Errorf("%w: property %s is %T", ErrPropertyFormat, model.PropertyTemperature, v)
}
