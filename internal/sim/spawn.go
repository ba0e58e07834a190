package sim

// tickSpawner advances the enemy spawn timer and drops one enemy on the
// ground somewhere near the player when it fires.
func tickSpawner(s *State) int {
	s.SpawnTimer++
	if s.SpawnTimer < EnemySpawnInterval {
		return 0
	}
	s.SpawnTimer = 0

	s.Enemies = append(s.Enemies, Enemy{
		X: float64(spawnX(s.rng, s.Player.X)),
		Y: GroundY - EnemyHeight,
	})
	return 1
}

// spawnX picks an integer x in [px-range, px+range] clipped to the screen,
// both ends inclusive.
func spawnX(rng Rand, px float64) int {
	lo := max(0, int(px)-EnemySpawnRange)
	hi := min(ScreenWidth-EnemyWidth, int(px)+EnemySpawnRange)
	if hi <= lo || rng == nil {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// tickVolley advances the volley timer; when it fires every enemy shoots
// once, horizontally toward the player's current x.
func tickVolley(s *State) int {
	s.ShootTimer++
	if s.ShootTimer < EnemyShootInterval {
		return 0
	}
	s.ShootTimer = 0

	for _, e := range s.Enemies {
		dir := -1.0
		if e.X < s.Player.X {
			dir = 1.0
		}
		s.EnemyBullets = append(s.EnemyBullets, Bullet{
			X:  e.X + EnemyWidth/2,
			Y:  e.Y + EnemyHeight/2,
			VX: dir * EnemyBulletSpeed,
		})
	}
	return len(s.Enemies)
}
