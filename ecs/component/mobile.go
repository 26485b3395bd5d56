package component

// Mobile is a ship. Velocities are pixels per tick; RemX/RemY carry the
// sub-pixel part between ticks.
type Mobile struct {
	VX       float64
	VY       float64
	HP       int
	IsPlayer bool
	RemX     float64
	RemY     float64
}

var MobileComponent = NewComponent[Mobile]()
