package config

import "sort"

var Presets = map[string]*Config{
	"sine": withSteps(
		Rotation("sine", false, 1, 4),
	),
	"cosine": withSteps(
		Rotation("cosine", false, 1, 4),
		Scroll("cos = x", 1),
	),
	"tangent": withSteps(
		Rotation("tangent", false, 1, 6),
		Scroll("tan = sin / cos", 1),
	),
	"all": withSteps(
		Rotation("sine", false, 1, 4),
		Rotation("cosine", false, 1, 4),
		Rotation("tangent", false, 1, 6),
		Rotation("cotangent", false, 1, 6),
		Rotation("secant", false, 1, 6),
		Rotation("cosecant", false, 1, 6),
	),
	"reciprocal": withSteps(
		Rotation("secant", false, 1, 6),
		Scroll("sec = 1 / cos", 1),
		Rotation("cosecant", false, 1, 6),
		Scroll("csc = 1 / sin", 1),
		Wait(1),
	),
	"clockwise": withSteps(
		Rotation("sine", true, 2, 6),
		Rotation("cotangent", true, 1, 6),
	),
	"notes": withSteps(
		Scroll("sin^2 + cos^2 = 1", 1),
		Scroll("1 + tan^2 = sec^2", 1),
		Scroll("1 + cot^2 = csc^2", 1),
		Wait(2),
	),
}

func withSteps(steps ...StepConfig) *Config {
	cfg := DefaultConfig()
	cfg.Steps = steps
	return cfg
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
