package object

import (
	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/physics"
)

// Craft is the player-controlled ship at the bottom of the field.
type Craft struct {
	Entity
	Health    float64
	MaxHealth float64

	direction  int
	fieldWidth float64
}

// NewCraft places a craft horizontally centered near the field bottom.
func NewCraft(r config.Rules, p Palette) *Craft {
	return &Craft{
		Entity: Entity{
			Rect: physics.Rect{
				X:      r.Field.Width/2 - r.Craft.Width/2,
				Y:      r.Field.Height - r.Craft.BottomMargin,
				Width:  r.Craft.Width,
				Height: r.Craft.Height,
			},
			Kind:  KindCraft,
			Color: p.Craft,
			Speed: r.Craft.Speed,
		},
		Health:     r.Craft.MaxHealth,
		MaxHealth:  r.Craft.MaxHealth,
		fieldWidth: r.Field.Width,
	}
}

// Move sets the steering intent; values are reduced to -1, 0 or 1.
func (c *Craft) Move(direction int) {
	switch {
	case direction < 0:
		c.direction = -1
	case direction > 0:
		c.direction = 1
	default:
		c.direction = 0
	}
}

// Direction returns the current steering intent.
func (c *Craft) Direction() int {
	return c.direction
}

// Update moves the craft one step, never leaving the horizontal bounds.
func (c *Craft) Update() {
	c.X += float64(c.direction) * c.Speed
	c.X = physics.Clamp(c.X, 0, c.fieldWidth-c.Width)
}

// Damage removes health.
func (c *Craft) Damage(amount float64) {
	c.Health -= amount
}

// Heal restores health up to MaxHealth.
func (c *Craft) Heal(amount float64) {
	c.Health = min(c.Health+amount, c.MaxHealth)
}

// Alive reports whether the craft still has health left.
func (c *Craft) Alive() bool {
	return c.Health > 0
}
