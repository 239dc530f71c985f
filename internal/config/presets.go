package config

// Presets covers the pi-digit ladder: each step multiplies the mass ratio by
// 100 and yields one more digit. Durations grow with the ratio since the
// large block takes longer to turn around.
var Presets = map[string]*Config{
	"digits-1": {
		MassLarge: 1, VelocityLarge: -100.0,
		Dt: DefaultDt, Duration: 30.0, FPS: DefaultFPS, StopOnFinish: true,
	},
	"digits-2": {
		MassLarge: 100, VelocityLarge: -100.0,
		Dt: DefaultDt, Duration: 60.0, FPS: DefaultFPS, StopOnFinish: true,
	},
	"digits-3": {
		MassLarge: 10000, VelocityLarge: -50.0,
		Dt: DefaultDt, Duration: 120.0, FPS: DefaultFPS, StopOnFinish: true,
	},
	"digits-4": {
		MassLarge: 1e6, VelocityLarge: -50.0,
		Dt: DefaultDt, Duration: 240.0, FPS: DefaultFPS, StopOnFinish: true,
	},
	"digits-5": {
		MassLarge: 1e8, VelocityLarge: -50.0,
		Dt: DefaultDt, Duration: 480.0, FPS: DefaultFPS, StopOnFinish: true,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
