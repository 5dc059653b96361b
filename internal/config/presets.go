package config

import "sort"

var Presets = map[string]func(*Config){
	"classic": func(c *Config) {},
	"warm": func(c *Config) {
		c.Scheme = "warm"
	},
	"confetti": func(c *Config) {
		c.Scheme = "random"
		c.CubeSize = 30
		c.PhaseStep = 2
	},
	"slowmo": func(c *Config) {
		c.PhaseStep = 0.1
		c.FPS = 30
	},
	"giant": func(c *Config) {
		c.CubeSize = 70
		c.Radius = 260
	},
}

// GetPreset returns the defaults with the named preset applied, or nil.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

// ApplyPreset applies the named preset on top of cfg.
func ApplyPreset(cfg *Config, name string) bool {
	apply, ok := Presets[name]
	if ok {
		apply(cfg)
	}
	return ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
