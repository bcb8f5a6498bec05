package smarthome

import (
	"strings"

	"github.com/samber/lo"

	"github.com/anicoll/webthings-integration/internal/pkg/model"
)

// Things whose identifier carries this vendor prefix are sold as wall plugs
// even though the gateway categorises them as plain on/off switches.
const outletVendorPrefix = "tplink-"

var gatewayDeviceInfo = model.DeviceInfo{
	Manufacturer: "mozilla",
	Model:        "gateway",
	HwVersion:    "1.0",
	SwVersion:    "1.0",
}

// Classify maps a gateway thing onto the assistant's device schema: device
// type, capability traits and fixed per-type attributes. It returns nil for
// categories outside the supported table; such things are dropped from
// catalog output entirely.
func Classify(id string, thing model.Thing, willReportState bool) *model.Device {
	device := &model.Device{
		ID:              id,
		Name:            model.DeviceName{Name: thing.Name},
		WillReportState: willReportState,
		Attributes:      map[string]any{},
		DeviceInfo:      gatewayDeviceInfo,
	}

	switch thing.Type {
	case model.CategoryOnOffSwitch:
		if strings.HasPrefix(id, outletVendorPrefix) {
			device.Type = model.DeviceTypeOutlet
		} else {
			device.Type = model.DeviceTypeSwitch
		}
		device.Traits = append(device.Traits, model.TraitOnOff)
	case model.CategoryMultilevelSwitch:
		// only the on/off property is surfaced for these
		device.Type = model.DeviceTypeSwitch
		device.Traits = append(device.Traits, model.TraitOnOff)
	case model.CategorySmartPlug:
		device.Type = model.DeviceTypeOutlet
		device.Traits = append(device.Traits, model.TraitOnOff)
	case model.CategoryOnOffLight:
		device.Type = model.DeviceTypeLight
		device.Traits = append(device.Traits, model.TraitOnOff)
	case model.CategoryDimmableLight:
		device.Type = model.DeviceTypeLight
		device.Traits = append(device.Traits, model.TraitOnOff, model.TraitBrightness)
	case model.CategoryOnOffColorLight:
		device.Type = model.DeviceTypeLight
		device.Traits = append(device.Traits, model.TraitOnOff)
		if thing.HasProperty(model.PropertyColor) {
			device.Traits = append(device.Traits, model.TraitColorSpectrum)
		}
		device.Attributes["colorModel"] = "rgb"
	case model.CategoryDimmableColorLight:
		device.Type = model.DeviceTypeLight
		device.Traits = append(device.Traits, model.TraitOnOff)
		if thing.HasProperty(model.PropertyColor) {
			device.Traits = append(device.Traits, model.TraitColorSpectrum)
		}
		device.Traits = append(device.Traits, model.TraitBrightness)
		device.Attributes["colorModel"] = "rgb"
	case model.CategoryThing:
		// generic things qualify as thermostats when they expose both a mode
		// and a temperature property
		if !thing.HasProperty(model.PropertyMode) || !thing.HasProperty(model.PropertyTemperature) {
			return nil
		}
		device.Type = model.DeviceTypeThermostat
		device.Traits = append(device.Traits, model.TraitTemperatureSetting)
		device.Attributes["availableThermostatModes"] = "off,heat,cool,on"
		device.Attributes["thermostatTemperatureUnit"] = "C"
	default:
		// unknown category, not exposed to the assistant
		return nil
	}

	device.Traits = lo.Uniq(device.Traits)
	return device
}
