package component

import (
	"go-battle-city/internal/config"
	"go-battle-city/internal/types"
	"go-battle-city/pkg/geom"
)

// Tank — танк игрока или противника.
//
// CanFire и Cooldown всегда согласованы: CanFire == (Cooldown == 0).
// DirectionTimer и FireTimer используются только ИИ противника.
type Tank struct {
	ID        types.EntityID
	X, Y      float64
	Width     float64
	Height    float64
	Faction   Faction
	Direction Direction
	Speed     float64
	CanFire   bool
	Cooldown  int

	DirectionTimer float64
	FireTimer      float64

	Destroyed bool
}

// NewTank creates a fire-ready tank facing up with the speed of its faction.
func NewTank(x, y float64, faction Faction) *Tank {
	speed := config.EnemySpeed
	if faction == FactionPlayer {
		speed = config.PlayerSpeed
	}
	return &Tank{
		X:         x,
		Y:         y,
		Width:     config.TankSize,
		Height:    config.TankSize,
		Faction:   faction,
		Direction: DirUp,
		Speed:     speed,
		CanFire:   true,
	}
}

func (t *Tank) Kind() Kind { return KindTank }

func (t *Tank) Bounds() geom.Rect {
	return geom.NewRect(t.X, t.Y, t.Width, t.Height)
}

// Move displaces the tank by (dx, dy) * Speed. Bounds and walls are the caller's concern.
func (t *Tank) Move(dx, dy float64) {
	t.X += dx * t.Speed
	t.Y += dy * t.Speed
}

// Step moves the tank one step along its current facing.
func (t *Tank) Step() {
	t.Move(t.Direction.Vector())
}

func (t *Tank) Rotate(d Direction) {
	t.Direction = d
}

// SetPosition places the tank without touching its facing or cooldown.
func (t *Tank) SetPosition(x, y float64) {
	t.X = x
	t.Y = y
}

// UpdateCooldown counts the reload down by one tick. The tank becomes fire-ready on the
// tick the counter reaches zero.
func (t *Tank) UpdateCooldown() {
	if t.Cooldown > 0 {
		t.Cooldown--
		if t.Cooldown == 0 {
			t.CanFire = true
		}
	}
}

// Fire returns a new projectile leaving the tank's leading edge, or nil while reloading.
// The projectile's ID is assigned when it is added to the world.
func (t *Tank) Fire() *Projectile {
	if !t.CanFire {
		return nil
	}

	cx, cy := t.Bounds().Center()
	x := cx - config.ProjectileSize/2
	y := cy - config.ProjectileSize/2
	switch t.Direction {
	case DirUp:
		y = t.Y - config.ProjectileSize
	case DirDown:
		y = t.Y + t.Height
	case DirLeft:
		x = t.X - config.ProjectileSize
	case DirRight:
		x = t.X + t.Width
	}

	t.CanFire = false
	t.Cooldown = config.ReloadTicks

	return NewProjectile(x, y, t.Direction, t.Faction)
}
