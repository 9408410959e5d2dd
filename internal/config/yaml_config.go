package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLConfig represents the structure of the config.yaml file.
// Dashboard form settings are easier to manage in YAML than env vars.
type YAMLConfig struct {
	Dashboard DashboardConfig `yaml:"dashboard"`
}

// DashboardConfig controls the inputs offered by the dashboard form.
type DashboardConfig struct {
	Tagline string          `yaml:"tagline"`
	About   string          `yaml:"about"`
	Note    string          `yaml:"note"`
	Area    AreaInputConfig `yaml:"area"`
	Bhk     SelectConfig    `yaml:"bhk"`
	Bath    SelectConfig    `yaml:"bath"`
}

// AreaInputConfig defines the numeric area input in square feet.
type AreaInputConfig struct {
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
	Step    float64 `yaml:"step"`
	Default float64 `yaml:"default"`
}

// SelectConfig defines a select box of whole numbers.
type SelectConfig struct {
	Options []int `yaml:"options"`
	Default int   `yaml:"default"`
}

// DefaultYAMLConfig returns the settings used when no config file exists.
func DefaultYAMLConfig() *YAMLConfig {
	return &YAMLConfig{
		Dashboard: DashboardConfig{
			Tagline: "Get accurate price estimates for properties across Delhi & NCR",
			About:   "Estimates are based on property location, total area in square feet, number of bedrooms (BHK) and number of bathrooms. The model is trained on real estate data from Delhi, Noida, Gurgaon and Ghaziabad.",
			Note:    "Prices are estimates and may vary based on market conditions, property condition, and other factors.",
			Area:    AreaInputConfig{Min: 100, Max: 10000, Step: 100, Default: 1000},
			Bhk:     SelectConfig{Options: []int{1, 2, 3, 4, 5}, Default: 2},
			Bath:    SelectConfig{Options: []int{1, 2, 3, 4, 5}, Default: 2},
		},
	}
}

// LoadYAMLConfig loads the YAML configuration file at path.
// Returns the defaults without error if the config file doesn't exist.
func LoadYAMLConfig(path string) (*YAMLConfig, error) {
	cfg := DefaultYAMLConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	cfg.fillDefaults()
	return cfg, nil
}

// fillDefaults restores defaults for settings the file left empty.
func (c *YAMLConfig) fillDefaults() {
	def := DefaultYAMLConfig().Dashboard
	d := &c.Dashboard

	if d.Area.Max <= d.Area.Min {
		d.Area = def.Area
	}
	if d.Area.Step <= 0 {
		d.Area.Step = def.Area.Step
	}
	if d.Area.Default < d.Area.Min || d.Area.Default > d.Area.Max {
		d.Area.Default = d.Area.Min
	}
	if len(d.Bhk.Options) == 0 {
		d.Bhk = def.Bhk
	}
	if len(d.Bath.Options) == 0 {
		d.Bath = def.Bath
	}
}
