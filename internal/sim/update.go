package sim

// Update advances the simulation by one fixed frame.
//
// While Playing the order is: input, physics, spawn, volley, bullet motion,
// bullet/enemy hits, enemy-bullet/player hits. While in GameOver nothing
// moves and only Retry is honoured. Quit wins in either phase.
func Update(s *State, in Input) Events {
	var ev Events

	if in.Quit {
		s.Quit = true
		ev.Quit = true
		return ev
	}

	if s.Phase == PhaseGameOver {
		if in.Retry {
			s.Reset()
			ev.Retried = true
		}
		// Swallow a fire key that is still down from before the retry.
		s.fireHeld = in.Fire
		return ev
	}

	s.Frame++

	ev.Fired = applyInput(s, in)
	integrate(s)
	ev.EnemiesSpawned = tickSpawner(s)
	ev.EnemyShots = tickVolley(s)
	moveBullets(s)
	ev.Kills = resolveHits(s)

	if playerHit(s) {
		ev.GameOver = true
		ev.NewHighScore = endRound(s)
	}

	return ev
}

func applyInput(s *State, in Input) bool {
	p := &s.Player

	if in.Left {
		p.X -= PlayerSpeed
		p.Facing = FacingLeft
	}
	if in.Right {
		p.X += PlayerSpeed
		p.Facing = FacingRight
	}
	p.X = clamp(p.X, 0, ScreenWidth-PlayerWidth)

	if in.Jump && p.Grounded {
		p.VY = JumpVelocity
		p.Grounded = false
	}

	fired := in.Fire && !s.fireHeld
	s.fireHeld = in.Fire
	if fired {
		s.Bullets = append(s.Bullets, muzzle(*p))
	}
	return fired
}

// muzzle places a new bullet at the player's leading edge, half way down.
func muzzle(p Player) Bullet {
	y := p.Y + PlayerHeight/2
	if p.Facing == FacingLeft {
		return Bullet{X: p.X - BulletWidth, Y: y, VX: -BulletSpeed}
	}
	return Bullet{X: p.X + PlayerWidth, Y: y, VX: BulletSpeed}
}

// endRound freezes the round and folds the score into the high score.
// It reports whether the high score went up.
func endRound(s *State) bool {
	s.Phase = PhaseGameOver
	s.FinalScore = s.Score
	if s.Score > s.HighScore {
		s.HighScore = s.Score
		return true
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
