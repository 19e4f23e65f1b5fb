package fixedloop

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the timing parameters of a Loop.
type Config struct {
	// Hz is the fixed update rate in updates per second.
	Hz int

	// FixedDt is the duration of one simulation step, derived from Hz.
	FixedDt time.Duration

	// MaxFrameDt clamps the real time credited to a single tick, so a long
	// stall (debugger, suspend) does not trigger a burst of updates.
	MaxFrameDt time.Duration

	// MaxUpdatesPerTick caps the updates run in one tick. When the cap is
	// hit the remaining accumulated time is dropped, which keeps a slow
	// renderer from falling further and further behind.
	MaxUpdatesPerTick int
}

// NewConfig returns a config for the given update rate with default limits
// (250ms frame clamp, 10 updates per tick). A non-positive hz falls back
// to 60.
func NewConfig(hz int) Config {
	if hz <= 0 {
		hz = 60
	}
	return Config{
		Hz:                hz,
		FixedDt:           time.Second / time.Duration(hz),
		MaxFrameDt:        250 * time.Millisecond,
		MaxUpdatesPerTick: 10,
	}
}

// WithLimits returns a copy of the config with the given frame clamp and
// update cap.
func (c Config) WithLimits(maxFrameDt time.Duration, maxUpdatesPerTick int) Config {
	c.MaxFrameDt = maxFrameDt
	c.MaxUpdatesPerTick = maxUpdatesPerTick
	return c
}

// configFile is the YAML representation of a Config.
type configFile struct {
	Hz                int `yaml:"hz"`
	MaxFrameDtMs      int `yaml:"max_frame_dt_ms"`
	MaxUpdatesPerTick int `yaml:"max_updates_per_tick"`
}

// ParseConfig reads a Config from YAML. Omitted fields keep the NewConfig
// defaults:
//
//	hz: 120
//	max_frame_dt_ms: 100
//	max_updates_per_tick: 5
func ParseConfig(data []byte) (Config, error) {
	var f configFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Config{}, fmt.Errorf("fixedloop: parsing config: %w", err)
	}
	cfg := NewConfig(f.Hz)
	if f.MaxFrameDtMs > 0 {
		cfg.MaxFrameDt = time.Duration(f.MaxFrameDtMs) * time.Millisecond
	}
	if f.MaxUpdatesPerTick > 0 {
		cfg.MaxUpdatesPerTick = f.MaxUpdatesPerTick
	}
	return cfg, nil
}
