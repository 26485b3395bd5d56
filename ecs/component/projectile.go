package component

// Projectile carries its damage as HP. Spent projectiles are removed after
// collision resolution.
type Projectile struct {
	VX         float64
	VY         float64
	HP         int
	FromPlayer bool
	Spent      bool
	RemX       float64
	RemY       float64
}

var ProjectileComponent = NewComponent[Projectile]()
