package collision

// Kind is the collision category of a body.
type Kind uint8

const (
	KindNone Kind = iota
	KindTerrain
	KindMobile
	KindProjectile
	KindWall
)

func (k Kind) String() string {
	switch k {
	case KindTerrain:
		return "terrain"
	case KindMobile:
		return "mobile"
	case KindProjectile:
		return "projectile"
	case KindWall:
		return "wall"
	default:
		return "none"
	}
}

// ParseKind maps a prefab name to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "terrain":
		return KindTerrain, true
	case "mobile":
		return KindMobile, true
	case "projectile":
		return KindProjectile, true
	case "wall":
		return KindWall, true
	}
	return KindNone, false
}

const (
	categoryTerrain uint = 1 << iota
	categoryMobile
	categoryProjectile
	categoryWall
)

// Category is the bit this kind occupies in shape filters.
func (k Kind) Category() uint {
	switch k {
	case KindTerrain:
		return categoryTerrain
	case KindMobile:
		return categoryMobile
	case KindProjectile:
		return categoryProjectile
	case KindWall:
		return categoryWall
	}
	return 0
}

// Mask is the set of categories this kind collides with. Projectiles pass
// through each other, and walls only stop things that move.
func (k Kind) Mask() uint {
	switch k {
	case KindTerrain:
		return categoryTerrain | categoryMobile | categoryProjectile
	case KindMobile:
		return categoryTerrain | categoryMobile | categoryProjectile | categoryWall
	case KindProjectile:
		return categoryTerrain | categoryMobile | categoryWall
	case KindWall:
		return categoryMobile | categoryProjectile
	}
	return 0
}

// Collides reports whether bodies of kinds a and b generate contacts.
func Collides(a, b Kind) bool {
	return a.Mask()&b.Category() != 0 && b.Mask()&a.Category() != 0
}

// PairClass orders contacts. Resolution walks contacts in this order.
type PairClass uint8

const (
	PairMobileMobile PairClass = iota
	PairMobileTerrain
	PairMobileWall
	PairProjectileMobile
	PairProjectileTerrain
	PairProjectileWall
	PairTerrainTerrain
	pairInvalid
)

// classify returns the pair class for kinds a and b and whether the operands
// must be swapped to put them in canonical order.
func classify(a, b Kind) (PairClass, bool, bool) {
	switch {
	case a == KindMobile && b == KindMobile:
		return PairMobileMobile, false, true
	case a == KindTerrain && b == KindTerrain:
		return PairTerrainTerrain, false, true
	}
	for _, p := range []struct {
		first, second Kind
		class         PairClass
	}{
		{KindMobile, KindTerrain, PairMobileTerrain},
		{KindMobile, KindWall, PairMobileWall},
		{KindProjectile, KindMobile, PairProjectileMobile},
		{KindProjectile, KindTerrain, PairProjectileTerrain},
		{KindProjectile, KindWall, PairProjectileWall},
	} {
		if a == p.first && b == p.second {
			return p.class, false, true
		}
		if a == p.second && b == p.first {
			return p.class, true, true
		}
	}
	return pairInvalid, false, false
}
