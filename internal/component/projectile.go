// internal/component/projectile.go
package component

import (
	"go-battle-city/internal/config"
	"go-battle-city/internal/types"
	"go-battle-city/pkg/geom"
)

// Projectile представляет летящий снаряд.
type Projectile struct {
	ID        types.EntityID
	X, Y      float64
	Width     float64
	Height    float64
	Direction Direction
	Speed     float64
	Owner     Faction
	Destroyed bool
}

func NewProjectile(x, y float64, dir Direction, owner Faction) *Projectile {
	return &Projectile{
		X:         x,
		Y:         y,
		Width:     config.ProjectileSize,
		Height:    config.ProjectileSize,
		Direction: dir,
		Speed:     config.ProjectileSpeed,
		Owner:     owner,
	}
}

func (p *Projectile) Kind() Kind { return KindProjectile }

func (p *Projectile) Bounds() geom.Rect {
	return geom.NewRect(p.X, p.Y, p.Width, p.Height)
}

// Advance moves the projectile one tick along its direction.
func (p *Projectile) Advance() {
	dx, dy := p.Direction.Vector()
	p.X += dx * p.Speed
	p.Y += dy * p.Speed
}

// OffArena reports whether the projectile has fully left an arena of the given size.
// The margin equals the projectile's own size on the near edges, so it is culled only
// after it has completely exited.
func (p *Projectile) OffArena(width, height float64) bool {
	return p.X < -p.Width ||
		p.X > width ||
		p.Y < -p.Height ||
		p.Y > height
}
