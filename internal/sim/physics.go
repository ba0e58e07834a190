package sim

// integrate applies one semi-implicit Euler step to the player and then
// resolves grounding against the ground line and the platforms.
func integrate(s *State) {
	p := &s.Player

	p.VY += Gravity
	p.Y += p.VY

	grounded := false

	if p.Y+PlayerHeight >= GroundY {
		p.Y = GroundY - PlayerHeight
		p.VY = 0
		grounded = true
	}

	// First match in list order wins, even when the player straddles two
	// platforms at once.
	for _, plat := range s.Platforms {
		if landsOn(*p, plat) {
			p.Y = plat.Y - PlayerHeight
			p.VY = 0
			grounded = true
			break
		}
	}

	p.Grounded = grounded
}

// landsOn reports whether the player's feet are inside the platform's slab
// while horizontally overlapping it.
func landsOn(p Player, plat Rect) bool {
	if !(plat.X < p.X+PlayerWidth && p.X < plat.X+plat.W) {
		return false
	}
	bottom := p.Y + PlayerHeight
	return plat.Y < bottom && bottom <= plat.Y+plat.H
}
