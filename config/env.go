package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// LoadEnv applies environment overrides on top of the defaults set in init.
func LoadEnv() error {
	if err := env.Parse(&Debug); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if Debug.TPS > 0 {
		C.TPS = Debug.TPS
	}
	return nil
}

// FrameStep is the fixed simulation step for the configured tick rate.
func FrameStep() time.Duration {
	if C.TPS <= 0 {
		return 0
	}
	return time.Second / time.Duration(C.TPS)
}
