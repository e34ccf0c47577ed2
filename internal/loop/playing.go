package loop

import (
	"time"

	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/object"
)

// SpeedMultiplier is the fall speed factor for a score: it grows linearly
// with score and is capped so that the fall speed never exceeds MaxSpeed.
func SpeedMultiplier(score float64, fall config.FallRules) float64 {
	return min(1+score/fall.ScoreScale, fall.MaxSpeedRatio())
}

// Step advances the game by delta: move the craft, move everything else,
// resolve collisions, accrue score, purge and finally run the spawn timers.
func (s *State) Step(delta time.Duration) {
	if s.Over {
		return
	}

	s.Craft.Update()

	ctx := object.UpdateContext{
		Delta:           delta,
		SpeedMultiplier: SpeedMultiplier(s.Score, s.Rules.Fall),
	}
	for _, group := range [][]*object.Entity{s.Projectiles, s.Enemies, s.PowerUps} {
		for _, e := range group {
			e.Update(ctx)
		}
	}

	s.Resolve()
	if s.Over {
		return
	}

	dt := delta.Seconds()
	s.Score += s.Rules.Score.PerSecond * dt
	s.Purge()
	s.Spawner.Tick(dt, s.Craft, s)
}

// Purge drops destroyed entities and those that left the field.
func (s *State) Purge() {
	h := s.Rules.Field.Height
	s.Projectiles = purge(s.Projectiles, h)
	s.Enemies = purge(s.Enemies, h)
	s.PowerUps = purge(s.PowerUps, h)
}

func purge(entities []*object.Entity, fieldHeight float64) []*object.Entity {
	kept := entities[:0]
	for _, e := range entities {
		if !e.IsDestroyed() && !e.OffField(fieldHeight) {
			kept = append(kept, e)
		}
	}
	clear(entities[len(kept):])
	return kept
}
