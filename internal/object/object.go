// Package object defines the rectangles that live on the play field: the
// player craft, projectiles, enemies and power-ups, plus the timers that
// spawn them.
package object

import (
	"fmt"
	"time"

	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/draw"
	"github.com/tomz197/skyraid/internal/physics"
)

// Kind tags the role of an Entity.
type Kind int

const (
	KindCraft Kind = iota
	KindProjectile
	KindEnemy
	KindPowerUp
)

func (k Kind) String() string {
	switch k {
	case KindCraft:
		return "craft"
	case KindProjectile:
		return "projectile"
	case KindEnemy:
		return "enemy"
	case KindPowerUp:
		return "power-up"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Rand is the random source used for spawn positions and intervals.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Sink receives newly spawned entities.
type Sink interface {
	Spawn(e *Entity)
}

// UpdateContext carries the per-step inputs of Entity.Update.
type UpdateContext struct {
	Delta time.Duration
	// SpeedMultiplier scales the fall speed of enemies and power-ups.
	SpeedMultiplier float64
}

// Entity is a flat-colored rectangle. Kind decides how it moves and what
// the kind-specific fields mean.
type Entity struct {
	physics.Rect
	Kind  Kind
	Color draw.Color

	// Speed is units per step for projectiles and base units per second
	// for enemies and power-ups.
	Speed float64
	// HitPoints is only used by enemies.
	HitPoints int
	// Heal is the health restored by a power-up.
	Heal float64

	destroyed bool
}

// MarkDestroyed flags the entity for removal at the next purge.
func (e *Entity) MarkDestroyed() {
	e.destroyed = true
}

// IsDestroyed reports whether the entity is waiting to be purged.
func (e *Entity) IsDestroyed() bool {
	return e.destroyed
}

// Update integrates the entity's position for one step.
func (e *Entity) Update(ctx UpdateContext) {
	switch e.Kind {
	case KindProjectile:
		e.Y -= e.Speed
	case KindEnemy, KindPowerUp:
		e.Y += e.Speed * ctx.Delta.Seconds() * ctx.SpeedMultiplier
	}
}

// OffField reports whether the entity has left a field of the given height
// in its direction of travel. Fallers above the top edge are still entering.
func (e *Entity) OffField(fieldHeight float64) bool {
	switch e.Kind {
	case KindProjectile:
		return e.Bottom() <= 0
	case KindEnemy, KindPowerUp:
		return e.Y-e.Height >= fieldHeight
	default:
		return false
	}
}

// Draw fills the entity's rectangle in its color.
func (e *Entity) Draw(s draw.Surface) {
	s.FillRect(e.X, e.Y, e.Width, e.Height, e.Color)
}

// Palette holds the parsed colors of every kind.
type Palette struct {
	Craft      draw.Color
	Projectile draw.Color
	Enemy      draw.Color
	PowerUp    draw.Color
}

// NewPalette parses the colors named in the rules.
func NewPalette(r config.Rules) (Palette, error) {
	var p Palette
	for _, c := range []struct {
		hex string
		dst *draw.Color
	}{
		{r.Craft.Color, &p.Craft},
		{r.Projectile.Color, &p.Projectile},
		{r.Enemy.Color, &p.Enemy},
		{r.PowerUp.Color, &p.PowerUp},
	} {
		parsed, err := draw.ParseColor(c.hex)
		if err != nil {
			return Palette{}, err
		}
		*c.dst = parsed
	}
	return p, nil
}
