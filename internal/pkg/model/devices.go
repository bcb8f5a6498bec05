package model

// DeviceType is the assistant's device type tag.
type DeviceType string

func (dt DeviceType) String() string {
	return string(dt)
}

const (
	DeviceTypeSwitch     DeviceType = "action.devices.types.SWITCH"
	DeviceTypeLight      DeviceType = "action.devices.types.LIGHT"
	DeviceTypeThermostat DeviceType = "action.devices.types.THERMOSTAT"
	DeviceTypeOutlet     DeviceType = "action.devices.types.OUTLET"
)

// Trait is a declared capability in the assistant's smart home schema.
type Trait string

func (t Trait) String() string {
	return string(t)
}

const (
	TraitOnOff              Trait = "action.devices.traits.OnOff"
	TraitBrightness         Trait = "action.devices.traits.Brightness"
	TraitColorSpectrum      Trait = "action.devices.traits.ColorSpectrum"
	TraitTemperatureSetting Trait = "action.devices.traits.TemperatureSetting"
)

type DeviceName struct {
	Name string `json:"name"`
}

type DeviceInfo struct {
	Manufacturer string `json:"manufacturer"`
	Model        string `json:"model"`
	HwVersion    string `json:"hwVersion"`
	SwVersion    string `json:"swVersion"`
}

// Device is the capability descriptor returned for a classified thing.
type Device struct {
	ID              string         `json:"id"`
	Type            DeviceType     `json:"type"`
	Traits          []Trait        `json:"traits"`
	Name            DeviceName     `json:"name"`
	WillReportState bool           `json:"willReportState"`
	Attributes      map[string]any `json:"attributes"`
	DeviceInfo      DeviceInfo     `json:"deviceInfo"`
}

// HasTrait reports whether the descriptor declares the given trait.
func (d *Device) HasTrait(trait Trait) bool {
	for _, t := range d.Traits {
		if t == trait {
			return true
		}
	}
	return false
}
