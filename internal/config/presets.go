package config

var Presets = map[string]*Config{
	// Reference scenario: delta in the middle, stable stepping.
	"spread": {
		Sites: 80, Steps: 100, Rate: 5.0, Dt: 0.02, Stepper: "euler",
		Init:      InitConfig{Type: "delta", Site: 39},
		Snapshots: []int{0, 10, 50, 99},
	},
	// Delta pinned against the reflecting wall.
	"edge": {
		Sites: 80, Steps: 200, Rate: 5.0, Dt: 0.02, Stepper: "euler",
		Init:      InitConfig{Type: "delta", Site: 0},
		Snapshots: []int{0, 25, 100, 199},
	},
	// Long run that visibly relaxes to the flat stationary state.
	"relax": {
		Sites: 40, Steps: 2000, Rate: 5.0, Dt: 0.02, Stepper: "euler",
		Init:      InitConfig{Type: "delta", Site: 19},
		Snapshots: []int{0, 100, 500, 1999},
	},
	// k*dt = 1.0: deliberately past the stability bound, for demonstrating
	// how the scheme blows up.
	"unstable": {
		Sites: 40, Steps: 60, Rate: 5.0, Dt: 0.2, Stepper: "euler",
		Init:      InitConfig{Type: "delta", Site: 19},
		Snapshots: []int{0, 20, 59},
	},
	// k=0: distribution frozen in place.
	"frozen": {
		Sites: 20, Steps: 50, Rate: 0.0, Dt: 0.02, Stepper: "euler",
		Init:      InitConfig{Type: "delta", Site: 9},
		Snapshots: []int{0, 49},
	},
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
