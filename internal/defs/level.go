// internal/defs/level.go
package defs

import (
	"fmt"

	"go-battle-city/internal/component"
	"go-battle-city/internal/config"
	"go-battle-city/pkg/geom"
)

// WallPlacement describes one obstacle of a level.
type WallPlacement struct {
	X        float64            `json:"x"`
	Y        float64            `json:"y"`
	Material component.Material `json:"material"`
}

// BasePlacement is the top-left corner of the objective.
type BasePlacement struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Level — данные уровня: стены, база и волна противников.
// Это только данные; движок принимает любой набор.
type Level struct {
	Name  string          `json:"name"`
	Walls []WallPlacement `json:"walls"`
	Base  BasePlacement   `json:"base"`
	Wave  WaveDefinition  `json:"wave"`
}

// DefaultLevel builds the stock arena: a steel ring on the perimeter, two brick rows in
// the middle and a brick guard above the base, open where the player spawns.
func DefaultLevel() Level {
	const ws = config.WallSize
	w, h := float64(config.ArenaWidth), float64(config.ArenaHeight)

	var walls []WallPlacement
	steel := func(x, y float64) {
		walls = append(walls, WallPlacement{X: x, Y: y, Material: component.MaterialSteel})
	}
	brick := func(x, y float64) {
		walls = append(walls, WallPlacement{X: x, Y: y, Material: component.MaterialBrick})
	}

	for x := 0.0; x < w; x += ws {
		steel(x, 0)
	}
	for x := 0.0; x < w; x += ws {
		steel(x, h-ws)
	}
	for y := ws; y < h-ws; y += ws {
		steel(0, y)
	}
	for y := ws; y < h-ws; y += ws {
		steel(w-ws, y)
	}

	for x := 100.0; x < 200; x += ws {
		brick(x, 200)
	}
	for x := 300.0; x < 400; x += ws {
		brick(x, 300)
	}

	// Над базой ряд кирпичей с проходом там, где появляется игрок.
	baseX := w/2 - config.BaseSize/2
	baseY := h - config.BaseSize - 16
	spawn := geom.NewRect(config.PlayerSpawnX, config.PlayerSpawnY, config.TankSize, config.TankSize)
	for x := baseX - ws*3; x < baseX+config.BaseSize+ws*3; x += ws {
		if geom.Overlaps(spawn, geom.NewRect(x, baseY-ws, ws, ws)) {
			continue
		}
		brick(x, baseY-ws)
	}

	return Level{
		Name:  "default",
		Walls: walls,
		Base:  BasePlacement{X: baseX, Y: baseY},
		Wave:  DefaultWave(),
	}
}

// Validate returns human-readable warnings for suspicious placements. A level with
// warnings is still playable.
func (l Level) Validate() []string {
	var warnings []string
	arena := geom.NewRect(0, 0, config.ArenaWidth, config.ArenaHeight)

	rects := make([]geom.Rect, len(l.Walls))
	for i, wp := range l.Walls {
		rects[i] = geom.NewRect(wp.X, wp.Y, config.WallSize, config.WallSize)
		if wp.Material != component.MaterialBrick && wp.Material != component.MaterialSteel {
			warnings = append(warnings, fmt.Sprintf("wall %d: unknown material %q", i, wp.Material))
		}
		if !arena.Contains(rects[i]) {
			warnings = append(warnings, fmt.Sprintf("wall %d at (%g,%g) is outside the arena", i, wp.X, wp.Y))
		}
	}
	for i := range rects {
		for j := i + 1; j < len(rects); j++ {
			if geom.Overlaps(rects[i], rects[j]) {
				warnings = append(warnings, fmt.Sprintf("walls %d and %d overlap", i, j))
			}
		}
	}

	spawn := geom.NewRect(config.PlayerSpawnX, config.PlayerSpawnY, config.TankSize, config.TankSize)
	for i, r := range rects {
		if geom.Overlaps(spawn, r) {
			warnings = append(warnings, fmt.Sprintf("wall %d overlaps the player spawn", i))
		}
	}

	base := geom.NewRect(l.Base.X, l.Base.Y, config.BaseSize, config.BaseSize)
	if !arena.Contains(base) {
		warnings = append(warnings, fmt.Sprintf("base at (%g,%g) is outside the arena", l.Base.X, l.Base.Y))
	}
	if len(l.Wave.Spawns) == 0 {
		warnings = append(warnings, "wave has no enemy spawns: the round is won on the first tick")
	}
	return warnings
}

// BuildWalls instantiates fresh wall entities for the level.
func (l Level) BuildWalls() []*component.Wall {
	walls := make([]*component.Wall, 0, len(l.Walls))
	for _, wp := range l.Walls {
		walls = append(walls, component.NewWall(wp.X, wp.Y, wp.Material))
	}
	return walls
}

// BuildBase instantiates a fresh, intact base.
func (l Level) BuildBase() *component.Base {
	return component.NewBase(l.Base.X, l.Base.Y)
}
