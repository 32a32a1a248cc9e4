package component

import "go-battle-city/pkg/geom"

// Kind tags the closed set of collidable entity variants.
type Kind uint8

const (
	KindTank Kind = iota
	KindProjectile
	KindWall
	KindBase
)

func (k Kind) String() string {
	switch k {
	case KindTank:
		return "tank"
	case KindProjectile:
		return "projectile"
	case KindWall:
		return "wall"
	case KindBase:
		return "base"
	}
	return "unknown"
}

// Collider is implemented by every entity that takes part in AABB checks.
type Collider interface {
	Kind() Kind
	Bounds() geom.Rect
}

var (
	_ Collider = (*Tank)(nil)
	_ Collider = (*Projectile)(nil)
	_ Collider = (*Wall)(nil)
	_ Collider = (*Base)(nil)
)

// Collide tests two colliders with the AABB primitive.
func Collide(a, b Collider) bool {
	return geom.Overlaps(a.Bounds(), b.Bounds())
}
