package model

import "path"

// ThingCategory is the category tag the gateway assigns to a thing.
type ThingCategory string

func (tc ThingCategory) String() string {
	return string(tc)
}

const (
	CategoryOnOffSwitch        ThingCategory = "onOffSwitch"
	CategoryMultilevelSwitch   ThingCategory = "multilevelSwitch"
	CategorySmartPlug          ThingCategory = "smartPlug"
	CategoryOnOffLight         ThingCategory = "onOffLight"
	CategoryDimmableLight      ThingCategory = "dimmableLight"
	CategoryOnOffColorLight    ThingCategory = "onOffColorLight"
	CategoryDimmableColorLight ThingCategory = "dimmableColorLight"
	CategoryThing              ThingCategory = "thing"
)

// Thing property names at the gateway boundary.
const (
	PropertyOn          = "on"
	PropertyLevel       = "level"
	PropertyColor       = "color"
	PropertyMode        = "mode"
	PropertyTemperature = "temperature"
)

// PropertyDescription describes a single named property on a thing. Only its
// presence matters to capability classification; the metadata itself is opaque.
type PropertyDescription struct {
	Type string `json:"type,omitempty"`
	Unit string `json:"unit,omitempty"`
	Href string `json:"href,omitempty"`
}

// Thing is the gateway's generic representation of a controllable device.
type Thing struct {
	Name       string                         `json:"name"`
	Type       ThingCategory                  `json:"type"`
	Href       string                         `json:"href"`
	Properties map[string]PropertyDescription `json:"properties"`
}

// HasProperty reports whether the thing declares the named property.
func (t Thing) HasProperty(name string) bool {
	_, ok := t.Properties[name]
	return ok
}

// ID derives the stable thing identifier from the href the gateway assigns,
// falling back to the thing name for records without one.
func (t Thing) ID() string {
	if t.Href == "" {
		return t.Name
	}
	return path.Base(t.Href)
}
