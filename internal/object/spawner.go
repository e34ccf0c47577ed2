package object

import (
	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/physics"
)

// Spawner runs the three spawn timers. Each accumulates elapsed time and
// fires once it exceeds its interval, then starts over from zero. Enemy and
// power-up intervals are drawn again after every firing.
type Spawner struct {
	rules   config.Rules
	palette Palette
	rng     Rand

	projectileTimer float64
	enemyTimer      float64
	powerUpTimer    float64

	enemyInterval   float64
	powerUpInterval float64
}

// NewSpawner creates a spawner with fresh timers.
func NewSpawner(r config.Rules, p Palette, rng Rand) *Spawner {
	s := &Spawner{rules: r, palette: p, rng: rng}
	s.Reset()
	return s
}

// Reset zeroes every timer and draws new random intervals.
func (s *Spawner) Reset() {
	s.projectileTimer = 0
	s.enemyTimer = 0
	s.powerUpTimer = 0
	s.enemyInterval = s.uniform(s.rules.Enemy.MinInterval, s.rules.Enemy.MaxInterval)
	s.powerUpInterval = s.uniform(s.rules.PowerUp.MinInterval, s.rules.PowerUp.MaxInterval)
}

// Tick advances the timers by dt seconds and sends whatever fires to sink.
func (s *Spawner) Tick(dt float64, craft *Craft, sink Sink) {
	s.projectileTimer += dt
	s.enemyTimer += dt
	s.powerUpTimer += dt

	if s.projectileTimer > s.rules.Projectile.Interval {
		sink.Spawn(s.NewProjectile(craft))
		s.projectileTimer = 0
	}
	if s.enemyTimer > s.enemyInterval {
		sink.Spawn(s.NewEnemy())
		s.enemyTimer = 0
		s.enemyInterval = s.uniform(s.rules.Enemy.MinInterval, s.rules.Enemy.MaxInterval)
	}
	if s.powerUpTimer > s.powerUpInterval {
		sink.Spawn(s.NewPowerUp())
		s.powerUpTimer = 0
		s.powerUpInterval = s.uniform(s.rules.PowerUp.MinInterval, s.rules.PowerUp.MaxInterval)
	}
}

// NewProjectile creates a projectile centered on the craft's nose.
func (s *Spawner) NewProjectile(craft *Craft) *Entity {
	pr := s.rules.Projectile
	return &Entity{
		Rect: physics.Rect{
			X:      craft.CenterX() - pr.Width/2,
			Y:      craft.Y,
			Width:  pr.Width,
			Height: pr.Height,
		},
		Kind:  KindProjectile,
		Color: s.palette.Projectile,
		Speed: pr.Speed,
	}
}

// NewEnemy creates an enemy at a random column just above the field.
func (s *Spawner) NewEnemy() *Entity {
	er := s.rules.Enemy
	return &Entity{
		Rect: physics.Rect{
			X:      s.rng.Float64() * (s.rules.Field.Width - er.Width),
			Y:      -er.Height,
			Width:  er.Width,
			Height: er.Height,
		},
		Kind:      KindEnemy,
		Color:     s.palette.Enemy,
		Speed:     s.rules.Fall.BaseSpeed,
		HitPoints: er.HitPoints,
	}
}

// NewPowerUp creates a power-up at a random column just above the field.
func (s *Spawner) NewPowerUp() *Entity {
	pr := s.rules.PowerUp
	return &Entity{
		Rect: physics.Rect{
			X:      s.rng.Float64() * (s.rules.Field.Width - pr.Width),
			Y:      -pr.Height,
			Width:  pr.Width,
			Height: pr.Height,
		},
		Kind:  KindPowerUp,
		Color: s.palette.PowerUp,
		Speed: s.rules.Fall.BaseSpeed,
		Heal:  pr.Heal,
	}
}

func (s *Spawner) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}
