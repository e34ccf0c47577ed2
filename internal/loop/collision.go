package loop

// Resolve applies the outcome of every overlapping pair. Removed entities are
// only marked; Purge drops them. Marked entities take no part in later tests,
// so an enemy can neither be killed twice nor hurt the craft after dying.
func (s *State) Resolve() {
	s.resolveProjectileHits()
	s.resolvePowerUps()
	s.resolveCraftHits()
}

// resolveProjectileHits lets each projectile damage at most one enemy.
func (s *State) resolveProjectileHits() {
	for _, p := range s.Projectiles {
		if p.IsDestroyed() {
			continue
		}
		for _, e := range s.Enemies {
			if e.IsDestroyed() || !p.Overlaps(e.Rect) {
				continue
			}
			p.MarkDestroyed()
			e.HitPoints--
			if e.HitPoints <= 0 {
				e.MarkDestroyed()
				s.Score += s.Rules.Score.KillBonus
				s.Kills++
			}
			break
		}
	}
}

func (s *State) resolvePowerUps() {
	for _, p := range s.PowerUps {
		if p.IsDestroyed() || !s.Craft.Overlaps(p.Rect) {
			continue
		}
		s.Craft.Heal(p.Heal)
		p.MarkDestroyed()
	}
}

// resolveCraftHits costs one health per colliding enemy and ends the game
// when health runs out.
func (s *State) resolveCraftHits() {
	for _, e := range s.Enemies {
		if e.IsDestroyed() || !s.Craft.Overlaps(e.Rect) {
			continue
		}
		s.Craft.Damage(1)
		e.MarkDestroyed()
		if !s.Craft.Alive() {
			s.gameOver()
			return
		}
	}
}
