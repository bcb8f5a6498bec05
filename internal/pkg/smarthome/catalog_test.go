package smarthome

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anicoll/webthings-integration/internal/pkg/model"
)

func thingWithProperties(category model.ThingCategory, properties ...string) model.Thing {
	props := make(map[string]model.PropertyDescription, len(properties))
	for _, name := range properties {
		props[name] = model.PropertyDescription{}
	}
	return model.Thing{
		Name:       "test thing",
		Type:       category,
		Properties: props,
	}
}

func TestClassify(t *testing.T) {
	testCases := []struct {
		name           string
		id             string
		thing          model.Thing
		expectedType   model.DeviceType
		expectedTraits []model.Trait
		expectedAttrs  map[string]any
	}{
		{
			name:           "on off switch",
			id:             "switch-1",
			thing:          thingWithProperties(model.CategoryOnOffSwitch, "on"),
			expectedType:   model.DeviceTypeSwitch,
			expectedTraits: []model.Trait{model.TraitOnOff},
			expectedAttrs:  map[string]any{},
		},
		{
			name:           "on off switch with outlet vendor prefix",
			id:             "tplink-hs100-1",
			thing:          thingWithProperties(model.CategoryOnOffSwitch, "on"),
			expectedType:   model.DeviceTypeOutlet,
			expectedTraits: []model.Trait{model.TraitOnOff},
			expectedAttrs:  map[string]any{},
		},
		{
			name:           "multilevel switch only surfaces on off",
			id:             "multilevel-1",
			thing:          thingWithProperties(model.CategoryMultilevelSwitch, "on", "level"),
			expectedType:   model.DeviceTypeSwitch,
			expectedTraits: []model.Trait{model.TraitOnOff},
			expectedAttrs:  map[string]any{},
		},
		{
			name:           "smart plug",
			id:             "plug-1",
			thing:          thingWithProperties(model.CategorySmartPlug, "on"),
			expectedType:   model.DeviceTypeOutlet,
			expectedTraits: []model.Trait{model.TraitOnOff},
			expectedAttrs:  map[string]any{},
		},
		{
			name:           "on off light",
			id:             "light-1",
			thing:          thingWithProperties(model.CategoryOnOffLight, "on"),
			expectedType:   model.DeviceTypeLight,
			expectedTraits: []model.Trait{model.TraitOnOff},
			expectedAttrs:  map[string]any{},
		},
		{
			name:           "dimmable light",
			id:             "light-2",
			thing:          thingWithProperties(model.CategoryDimmableLight, "on", "level"),
			expectedType:   model.DeviceTypeLight,
			expectedTraits: []model.Trait{model.TraitOnOff, model.TraitBrightness},
			expectedAttrs:  map[string]any{},
		},
		{
			name:           "on off color light with color property",
			id:             "light-3",
			thing:          thingWithProperties(model.CategoryOnOffColorLight, "on", "color"),
			expectedType:   model.DeviceTypeLight,
			expectedTraits: []model.Trait{model.TraitOnOff, model.TraitColorSpectrum},
			expectedAttrs:  map[string]any{"colorModel": "rgb"},
		},
		{
			name:           "on off color light without color property",
			id:             "light-4",
			thing:          thingWithProperties(model.CategoryOnOffColorLight, "on"),
			expectedType:   model.DeviceTypeLight,
			expectedTraits: []model.Trait{model.TraitOnOff},
			expectedAttrs:  map[string]any{"colorModel": "rgb"},
		},
		{
			name:           "dimmable color light with color property",
			id:             "light-5",
			thing:          thingWithProperties(model.CategoryDimmableColorLight, "on", "level", "color"),
			expectedType:   model.DeviceTypeLight,
			expectedTraits: []model.Trait{model.TraitOnOff, model.TraitColorSpectrum, model.TraitBrightness},
			expectedAttrs:  map[string]any{"colorModel": "rgb"},
		},
		{
			name:           "dimmable color light without color property",
			id:             "light-6",
			thing:          thingWithProperties(model.CategoryDimmableColorLight, "on", "level"),
			expectedType:   model.DeviceTypeLight,
			expectedTraits: []model.Trait{model.TraitOnOff, model.TraitBrightness},
			expectedAttrs:  map[string]any{"colorModel": "rgb"},
		},
		{
			name:           "generic thing with mode and temperature is a thermostat",
			id:             "thermo-1",
			thing:          thingWithProperties(model.CategoryThing, "mode", "temperature"),
			expectedType:   model.DeviceTypeThermostat,
			expectedTraits: []model.Trait{model.TraitTemperatureSetting},
			expectedAttrs: map[string]any{
				"availableThermostatModes":  "off,heat,cool,on",
				"thermostatTemperatureUnit": "C",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			device := Classify(tc.id, tc.thing, false)
			require.NotNil(t, device)

			assert.Equal(t, tc.id, device.ID)
			assert.Equal(t, tc.expectedType, device.Type)
			assert.Equal(t, tc.expectedTraits, device.Traits)
			assert.Equal(t, tc.expectedAttrs, device.Attributes)
			assert.Equal(t, "test thing", device.Name.Name)
			assert.Equal(t, "mozilla", device.DeviceInfo.Manufacturer)
		})
	}
}

func TestClassify_Unclassifiable(t *testing.T) {
	testCases := []struct {
		name  string
		thing model.Thing
	}{
		{name: "unknown category", thing: thingWithProperties("binarySensor", "on")},
		{name: "empty category", thing: thingWithProperties("", "on")},
		{name: "generic thing missing temperature", thing: thingWithProperties(model.CategoryThing, "mode")},
		{name: "generic thing missing mode", thing: thingWithProperties(model.CategoryThing, "temperature")},
		{name: "generic thing with no properties", thing: thingWithProperties(model.CategoryThing)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Nil(t, Classify("id-1", tc.thing, false))
		})
	}
}

func TestClassify_WillReportState(t *testing.T) {
	thing := thingWithProperties(model.CategoryOnOffLight, "on")

	assert.False(t, Classify("light-1", thing, false).WillReportState)
	assert.True(t, Classify("light-1", thing, true).WillReportState)
}
