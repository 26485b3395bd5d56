package component

// Shooter rate-limits firing of the Projectile prefab. Timer counts down to
// zero; firing resets it to Cooldown.
type Shooter struct {
	Cooldown   int
	Timer      int
	Projectile string
}

// Ready reports whether the shooter may fire this tick.
func (s *Shooter) Ready() bool {
	return s.Timer <= 0
}

var ShooterComponent = NewComponent[Shooter]()
