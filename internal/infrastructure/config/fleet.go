package config

import "time"

// FleetConfig holds vessel registry and dashboard settings
type FleetConfig struct {
	// Start each session with the demo fleet and maintenance board
	Seed *bool `mapstructure:"seed"`

	// How far ahead a maintenance task counts as upcoming on the dashboard
	UpcomingWindow time.Duration `mapstructure:"upcoming_window" validate:"gte=0"`
}

// ShouldSeed reports whether sessions start with demo data (default true)
func (c FleetConfig) ShouldSeed() bool {
	return c.Seed == nil || *c.Seed
}
