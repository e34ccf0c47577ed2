// Package loop owns the simulation: the state of one game, the per-frame
// step with its collision resolver, and the frame driver that moves a game
// through its idle, running and over phases.
package loop

import (
	"math"

	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/draw"
	"github.com/tomz197/skyraid/internal/object"
)

// State is everything one game mutates. Only Step and its helpers change it.
type State struct {
	Rules config.Rules

	Craft       *object.Craft
	Projectiles []*object.Entity
	Enemies     []*object.Entity
	PowerUps    []*object.Entity
	Spawner     *object.Spawner

	// Score only grows: time survived plus kill bonuses.
	Score float64
	Kills int

	// Over is the terminal flag; once set Step does nothing.
	Over       bool
	FinalScore int

	palette object.Palette
}

var _ object.Sink = (*State)(nil)

// NewState builds a fresh game for the given rules.
func NewState(rules config.Rules, rng object.Rand) (*State, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	palette, err := object.NewPalette(rules)
	if err != nil {
		return nil, err
	}
	s := &State{
		Rules:   rules,
		palette: palette,
		Spawner: object.NewSpawner(rules, palette, rng),
	}
	s.Reset()
	return s, nil
}

// Reset clears every collection and counter and puts a new craft in place.
func (s *State) Reset() {
	s.Craft = object.NewCraft(s.Rules, s.palette)
	s.Projectiles = s.Projectiles[:0]
	s.Enemies = s.Enemies[:0]
	s.PowerUps = s.PowerUps[:0]
	s.Spawner.Reset()
	s.Score = 0
	s.Kills = 0
	s.Over = false
	s.FinalScore = 0
}

// Spawn files a new entity into the collection of its kind.
func (s *State) Spawn(e *object.Entity) {
	switch e.Kind {
	case object.KindProjectile:
		s.Projectiles = append(s.Projectiles, e)
	case object.KindEnemy:
		s.Enemies = append(s.Enemies, e)
	case object.KindPowerUp:
		s.PowerUps = append(s.PowerUps, e)
	}
}

// DisplayScore is the score as shown to the player.
func (s *State) DisplayScore() int {
	return int(math.Floor(s.Score))
}

// Draw paints every entity onto the surface, craft last.
func (s *State) Draw(surface draw.Surface) {
	for _, group := range [][]*object.Entity{s.Projectiles, s.Enemies, s.PowerUps} {
		for _, e := range group {
			if !e.IsDestroyed() {
				e.Draw(surface)
			}
		}
	}
	s.Craft.Draw(surface)
}

func (s *State) gameOver() {
	s.Over = true
	s.FinalScore = s.DisplayScore()
}
