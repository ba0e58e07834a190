package sim

// moveBullets advances every bullet and drops the ones whose x has left
// [0, ScreenWidth).
func moveBullets(s *State) {
	s.Bullets = advance(s.Bullets)
	s.EnemyBullets = advance(s.EnemyBullets)
}

func advance(bullets []Bullet) []Bullet {
	kept := bullets[:0]
	for _, b := range bullets {
		b.X += b.VX
		if b.X >= 0 && b.X < ScreenWidth {
			kept = append(kept, b)
		}
	}
	return kept
}

// resolveHits pairs each player bullet with the first live enemy it
// overlaps. Both are removed and the score goes up by one per pair.
func resolveHits(s *State) int {
	if len(s.Bullets) == 0 || len(s.Enemies) == 0 {
		return 0
	}

	deadBullet := make([]bool, len(s.Bullets))
	deadEnemy := make([]bool, len(s.Enemies))
	kills := 0

	for bi, b := range s.Bullets {
		br := b.Rect()
		for ei, e := range s.Enemies {
			if deadEnemy[ei] || !br.Overlaps(e.Rect()) {
				continue
			}
			deadBullet[bi] = true
			deadEnemy[ei] = true
			kills++
			break
		}
	}

	if kills == 0 {
		return 0
	}

	s.Bullets = compact(s.Bullets, deadBullet)
	s.Enemies = compact(s.Enemies, deadEnemy)
	s.Score += kills
	return kills
}

func compact[T any](items []T, dead []bool) []T {
	kept := items[:0]
	for i, it := range items {
		if !dead[i] {
			kept = append(kept, it)
		}
	}
	return kept
}

// playerHit reports whether any enemy bullet overlaps the player. It stops
// at the first hit.
func playerHit(s *State) bool {
	pr := s.Player.Rect()
	for _, b := range s.EnemyBullets {
		if b.EnemyRect().Overlaps(pr) {
			return true
		}
	}
	return false
}
