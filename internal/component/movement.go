// component/movement.go
package component

// Direction — направление взгляда танка или полёта снаряда.
type Direction uint8

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// DirectionCount is the number of cardinal directions; random facings are drawn from [0, DirectionCount).
const DirectionCount = 4

// Vector returns the unit step for the direction in screen coordinates (y grows downwards).
func (d Direction) Vector() (dx, dy float64) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	}
	return "unknown"
}
