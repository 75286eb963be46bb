package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig holds the tunable rules of a session. Time-like values
// are in seconds and converted to ticks when the session starts.
type GameConfig struct {
	StartingStock   int `yaml:"startingStock"`   // potatoes carried at session start
	DonationGoal    int `yaml:"donationGoal"`    // donation total that wins the game
	DeadlineSeconds int `yaml:"deadlineSeconds"` // time before the game is lost
	WeightThreshold int `yaml:"weightThreshold"` // stock at which running is refused
	HarvestCapacity int `yaml:"harvestCapacity"` // stock cap for working a bush

	ForwardCost          int `yaml:"forwardCost"`          // stock cost of the forward trigger
	ForwardRewindSeconds int `yaml:"forwardRewindSeconds"` // deadline lost per forward use
	ForwardShiftSeconds  int `yaml:"forwardShiftSeconds"`  // growth fast-forward per use

	BackwardCost         int `yaml:"backwardCost"`         // stock cost of the backward trigger
	BackwardDelaySeconds int `yaml:"backwardDelaySeconds"` // deadline gained per backward use
	BackwardShiftSeconds int `yaml:"backwardShiftSeconds"` // growth delay per use

	StopCost            int `yaml:"stopCost"`            // stock cost of stopping time
	StopDurationSeconds int `yaml:"stopDurationSeconds"` // how long time stays stopped

	GrowSeconds     int `yaml:"growSeconds"`     // bush growth duration, also the delay cap
	HarvestYield    int `yaml:"harvestYield"`    // potatoes per harvested bush
	StopBonus       int `yaml:"stopBonus"`       // extra yield while time is stopped
	DonationStep    int `yaml:"donationStep"`    // top of the halving donation ladder
}

// DefaultGameConfig returns the built-in rule set.
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		StartingStock:        1000,
		DonationGoal:         1000,
		DeadlineSeconds:      99999,
		WeightThreshold:      250,
		HarvestCapacity:      500,
		ForwardCost:          20,
		ForwardRewindSeconds: 5,
		ForwardShiftSeconds:  5,
		BackwardCost:         40,
		BackwardDelaySeconds: 15,
		BackwardShiftSeconds: 20,
		StopCost:             250,
		StopDurationSeconds:  25,
		GrowSeconds:          20,
		HarvestYield:         50,
		StopBonus:            50,
		DonationStep:         500,
	}
}

// LoadGameConfig reads a rules config from a YAML file. Missing
// optional fields fall back to the defaults.
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file %s: %w", path, err)
	}
	return ParseGameConfig(data)
}

// ParseGameConfig parses YAML rules config data.
func ParseGameConfig(data []byte) (*GameConfig, error) {
	var cfg GameConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}

	applyGameConfigDefaults(&cfg)

	if err := validateGameConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	return &cfg, nil
}

// applyGameConfigDefaults fills unset fields with the default rule
// set. Zero is not a meaningful value for any field, so zero means
// unset.
func applyGameConfigDefaults(cfg *GameConfig) {
	def := DefaultGameConfig()
	if cfg.StartingStock == 0 {
		cfg.StartingStock = def.StartingStock
	}
	if cfg.DonationGoal == 0 {
		cfg.DonationGoal = def.DonationGoal
	}
	if cfg.DeadlineSeconds == 0 {
		cfg.DeadlineSeconds = def.DeadlineSeconds
	}
	if cfg.WeightThreshold == 0 {
		cfg.WeightThreshold = def.WeightThreshold
	}
	if cfg.HarvestCapacity == 0 {
		cfg.HarvestCapacity = def.HarvestCapacity
	}
	if cfg.ForwardCost == 0 {
		cfg.ForwardCost = def.ForwardCost
	}
	if cfg.ForwardRewindSeconds == 0 {
		cfg.ForwardRewindSeconds = def.ForwardRewindSeconds
	}
	if cfg.ForwardShiftSeconds == 0 {
		cfg.ForwardShiftSeconds = def.ForwardShiftSeconds
	}
	if cfg.BackwardCost == 0 {
		cfg.BackwardCost = def.BackwardCost
	}
	if cfg.BackwardDelaySeconds == 0 {
		cfg.BackwardDelaySeconds = def.BackwardDelaySeconds
	}
	if cfg.BackwardShiftSeconds == 0 {
		cfg.BackwardShiftSeconds = def.BackwardShiftSeconds
	}
	if cfg.StopCost == 0 {
		cfg.StopCost = def.StopCost
	}
	if cfg.StopDurationSeconds == 0 {
		cfg.StopDurationSeconds = def.StopDurationSeconds
	}
	if cfg.GrowSeconds == 0 {
		cfg.GrowSeconds = def.GrowSeconds
	}
	if cfg.HarvestYield == 0 {
		cfg.HarvestYield = def.HarvestYield
	}
	if cfg.StopBonus == 0 {
		cfg.StopBonus = def.StopBonus
	}
	if cfg.DonationStep == 0 {
		cfg.DonationStep = def.DonationStep
	}
}

// validateGameConfig rejects rule sets the state machine cannot run.
func validateGameConfig(cfg *GameConfig) error {
	if cfg.StartingStock < 0 {
		return fmt.Errorf("startingStock cannot be negative, got %d", cfg.StartingStock)
	}
	if cfg.DonationGoal < 0 {
		return fmt.Errorf("donationGoal cannot be negative, got %d", cfg.DonationGoal)
	}
	if cfg.DeadlineSeconds < 1 {
		return fmt.Errorf("deadlineSeconds must be at least 1, got %d", cfg.DeadlineSeconds)
	}
	if cfg.GrowSeconds < 1 {
		return fmt.Errorf("growSeconds must be at least 1, got %d", cfg.GrowSeconds)
	}
	if cfg.StopDurationSeconds < 1 {
		return fmt.Errorf("stopDurationSeconds must be at least 1, got %d", cfg.StopDurationSeconds)
	}
	if cfg.DonationStep < 1 {
		return fmt.Errorf("donationStep must be at least 1, got %d", cfg.DonationStep)
	}
	for name, v := range map[string]int{
		"forwardCost":  cfg.ForwardCost,
		"backwardCost": cfg.BackwardCost,
		"stopCost":     cfg.StopCost,
		"harvestYield": cfg.HarvestYield,
		"stopBonus":    cfg.StopBonus,
	} {
		if v < 0 {
			return fmt.Errorf("%s cannot be negative, got %d", name, v)
		}
	}
	return nil
}
