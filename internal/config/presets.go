package config

import "sort"

// crossing runs long enough for the slow y oscillation to take the point
// through the plane and back.
var crossing = &Config{
	Path:     DefaultConfig().Path,
	Steps:    1200,
	Dt:       DefaultDt,
	Interval: DefaultInterval,
}

var floor = &Config{
	Path:     PathConfig{XAmp: 1.5, YBase: 0, YAmp: 1.5, YFreq: 1, ZAmp: 1},
	Steps:    1000,
	Dt:       0.01,
	Interval: DefaultInterval,
}

// Presets are named producer setups. "level" reproduces the default feed.
var Presets = map[string]*Config{
	"level":    DefaultConfig(),
	"crossing": withPlane(crossing, [3]float64{0, 1, 0}, -0.5),
	"tilted":   withPlane(DefaultConfig(), [3]float64{1, 1, 1}, 0.2),
	"floor":    withPlane(floor, [3]float64{0, 0, 1}, -0.25),
}

func withPlane(c *Config, n [3]float64, b float64) *Config {
	c.Plane = PlaneConfig{Normal: n, Offset: b}
	return c
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *p
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
