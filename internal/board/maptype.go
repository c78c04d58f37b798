package board

import "fmt"

// MapType is the scale a board is played at.
type MapType uint8

const (
	Ground MapType = iota
	LowAtmosphere
	Space
	Radar
	CapitalRadar
)

var mapTypeCodes = [...]string{
	Ground:        "G",
	LowAtmosphere: "A",
	Space:         "S",
	Radar:         "R",
	CapitalRadar:  "C",
}

var mapTypeNames = [...]string{
	Ground:        "Ground",
	LowAtmosphere: "Low Atmosphere",
	Space:         "Space",
	Radar:         "Radar",
	CapitalRadar:  "Capital Radar",
}

func (m MapType) IsGround() bool { return m == Ground }
func (m MapType) IsLowAtmosphere() bool { return m == LowAtmosphere }
func (m MapType) IsSpace() bool { return m == Space }
func (m MapType) IsRadar() bool { return m == Radar }
func (m MapType) IsCapitalRadar() bool { return m == CapitalRadar }

// Code returns the single letter used in scenario files and menus.
func (m MapType) Code() string {
	if int(m) < len(mapTypeCodes) {
		return mapTypeCodes[m]
	}
	return "?"
}

func (m MapType) String() string {
	if int(m) < len(mapTypeNames) {
		return mapTypeNames[m]
	}
	return "Unknown"
}

// MapTypeForCode is the inverse of Code.
func MapTypeForCode(code string) (MapType, error) {
	for i, c := range mapTypeCodes {
		if c == code {
			return MapType(i), nil
		}
	}
	return Ground, fmt.Errorf("no map type for code %q", code)
}

// MapTypeFlag refines a MapType.
type MapTypeFlag uint8

const (
	FlagNone MapTypeFlag = iota
	// FlagHighAtmosphere marks a space map with gravity.
	FlagHighAtmosphere
	// FlagSky marks a low atmosphere map without ground terrain.
	FlagSky
)

func (f MapTypeFlag) IsHighAtmosphere() bool { return f == FlagHighAtmosphere }
func (f MapTypeFlag) IsSky() bool { return f == FlagSky }
func (f MapTypeFlag) IsNone() bool { return f == FlagNone }

// MapTypeFlagForName parses "", "none", "high_atmosphere" or "sky".
func MapTypeFlagForName(name string) (MapTypeFlag, error) {
	switch name {
	case "", "none":
		return FlagNone, nil
	case "high_atmosphere":
		return FlagHighAtmosphere, nil
	case "sky":
		return FlagSky, nil
	default:
		return FlagNone, fmt.Errorf("unknown map type flag %q", name)
	}
}

// Name is the inverse of MapTypeFlagForName.
func (f MapTypeFlag) Name() string {
	switch f {
	case FlagHighAtmosphere:
		return "high_atmosphere"
	case FlagSky:
		return "sky"
	default:
		return "none"
	}
}
