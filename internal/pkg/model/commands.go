package model

// CommandParams is a flat command parameter map, keyed by the assistant's
// state field names. Values keep the loose types produced by JSON decoding;
// the typed accessors below coerce them at the point of use.
type CommandParams map[string]any

// Parameter keys understood by the state writer.
const (
	ParamOn                            = "on"
	ParamBrightness                    = "brightness"
	ParamBrightnessRelativeWeight      = "brightnessRelativeWeight"
	ParamColor                         = "color"
	ParamColorSpectrumRGB              = "spectrumRGB"
	ParamThermostatMode                = "thermostatMode"
	ParamThermostatTemperatureSetpoint = "thermostatTemperatureSetpoint"
)

// On returns the requested on/off value, if present.
func (p CommandParams) On() (bool, bool) {
	v, ok := p[ParamOn].(bool)
	return v, ok
}

// Brightness returns the requested absolute brightness, if present.
func (p CommandParams) Brightness() (int, bool) {
	return asInt(p[ParamBrightness])
}

// BrightnessRelativeWeight returns the requested brightness delta, if present.
func (p CommandParams) BrightnessRelativeWeight() (int, bool) {
	return asInt(p[ParamBrightnessRelativeWeight])
}

// SpectrumRGB returns the requested color as an RGB integer, if a color
// object with a spectrumRGB member is present.
func (p CommandParams) SpectrumRGB() (int, bool) {
	color, ok := p[ParamColor].(map[string]any)
	if !ok {
		return 0, false
	}
	return asInt(color[ParamColorSpectrumRGB])
}

// ThermostatMode returns the requested thermostat mode, if present.
func (p CommandParams) ThermostatMode() (string, bool) {
	v, ok := p[ParamThermostatMode].(string)
	return v, ok
}

// ThermostatTemperatureSetpoint returns the requested setpoint, if present.
func (p CommandParams) ThermostatTemperatureSetpoint() (float64, bool) {
	return asFloat(p[ParamThermostatTemperatureSetpoint])
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	}
	return 0, false
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
