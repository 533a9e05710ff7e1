package kinetype

import (
	"encoding/json"
	"errors"
	"fmt"
)

// PhysicsConfig controls the per-frame simulation of a Scene.
type PhysicsConfig struct {
	// Elasticity of collision response: 0 = inelastic, 1 = perfectly elastic.
	Elasticity float64 `json:"elasticity"`

	// AbsorbEnergy is passed through to the Responder, which ignores it.
	AbsorbEnergy float64 `json:"absorbEnergy"`

	// TrustZeroSeparation disables the one-sided zero fallback in the SAT
	// solver. See Separation.TrustZero.
	TrustZeroSeparation bool `json:"trustZeroSeparation"`

	// ZeroTolerance is the MTD length treated as "no overlap". 0 is exact.
	ZeroTolerance float64 `json:"zeroTolerance"`

	// TickRate is the number of Update calls per simulated second. Velocities
	// are in world units per second.
	TickRate float64 `json:"tickRate"`

	// Gravity is added to every movable node's velocity each second.
	Gravity Vec2 `json:"gravity"`
}

const defaultTickRate = 60

// DefaultPhysicsConfig returns elastic collisions at 60 ticks per second with
// no gravity.
func DefaultPhysicsConfig() PhysicsConfig {
	return PhysicsConfig{
		Elasticity: 1,
		TickRate:   defaultTickRate,
	}
}

// LoadPhysicsConfig parses a JSON physics config. Omitted fields keep their
// DefaultPhysicsConfig values.
func LoadPhysicsConfig(jsonData []byte) (PhysicsConfig, error) {
	cfg := DefaultPhysicsConfig()
	if err := json.Unmarshal(jsonData, &cfg); err != nil {
		return PhysicsConfig{}, fmt.Errorf("parse physics config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return PhysicsConfig{}, fmt.Errorf("parse physics config: %w", err)
	}
	return cfg, nil
}

// Validate reports the first out-of-range field.
func (c PhysicsConfig) Validate() error {
	switch {
	case c.Elasticity < 0:
		return errors.New("elasticity must be >= 0")
	case c.ZeroTolerance < 0:
		return errors.New("zeroTolerance must be >= 0")
	case c.TickRate <= 0:
		return errors.New("tickRate must be > 0")
	}
	return nil
}

// Responder builds the collision responder described by the config.
func (c PhysicsConfig) Responder() Responder {
	return Responder{
		Elasticity:   c.Elasticity,
		AbsorbEnergy: c.AbsorbEnergy,
		Separation: Separation{
			TrustZero:     c.TrustZeroSeparation,
			ZeroTolerance: c.ZeroTolerance,
		},
	}
}
