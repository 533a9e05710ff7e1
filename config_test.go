package kinetype

import (
	"strings"
	"testing"
)

func TestDefaultPhysicsConfig(t *testing.T) {
	c := DefaultPhysicsConfig()
	if c.Elasticity != 1 || c.TickRate != 60 {
		t.Errorf("defaults = %+v, want elasticity 1, tick rate 60", c)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadPhysicsConfigKeepsDefaults(t *testing.T) {
	c, err := LoadPhysicsConfig([]byte(`{"gravity": {"X": 0, "Y": 98}, "trustZeroSeparation": true}`))
	if err != nil {
		t.Fatal(err)
	}
	if c.Elasticity != 1 || c.TickRate != 60 {
		t.Errorf("omitted fields = %+v, want defaults", c)
	}
	if c.Gravity != (Vec2{0, 98}) {
		t.Errorf("Gravity = %v, want (0,98)", c.Gravity)
	}
	if !c.TrustZeroSeparation {
		t.Error("TrustZeroSeparation should be set")
	}
	r := c.Responder()
	if !r.Separation.TrustZero || r.Elasticity != 1 {
		t.Errorf("Responder = %+v", r)
	}
}

func TestLoadPhysicsConfigErrors(t *testing.T) {
	tests := []struct {
		json string
		want string
	}{
		{`nope`, "parse physics config:"},
		{`{"elasticity": -0.5}`, "elasticity must be >= 0"},
		{`{"zeroTolerance": -1}`, "zeroTolerance must be >= 0"},
		{`{"tickRate": 0}`, "tickRate must be > 0"},
	}
	for _, tt := range tests {
		_, err := LoadPhysicsConfig([]byte(tt.json))
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("LoadPhysicsConfig(%s) err = %v, want %q", tt.json, err, tt.want)
		}
	}
}
