package model

// ColorState carries a color as a single RGB integer in [0, 0xFFFFFF].
type ColorState struct {
	SpectrumRGB int `json:"spectrumRGB"`
}

// DeviceState is the snapshot returned from a state read or write. Fields
// other than Online are pointers so that "absent" and "false/zero" stay
// distinct on the wire: a field left nil was not requested or not applicable
// for the device, not merely off.
type DeviceState struct {
	Online                        bool        `json:"online"`
	On                            *bool       `json:"on,omitempty"`
	Brightness                    *int        `json:"brightness,omitempty"`
	Color                         *ColorState `json:"color,omitempty"`
	ThermostatMode                *string     `json:"thermostatMode,omitempty"`
	ThermostatTemperatureSetpoint *float64    `json:"thermostatTemperatureSetpoint,omitempty"`
}

// OfflineState is the degraded snapshot for a thing whose read or write path
// failed. Online=false invalidates the whole snapshot, so no other field is
// ever carried alongside it.
func OfflineState() DeviceState {
	return DeviceState{Online: false}
}
