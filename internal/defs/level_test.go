package defs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-battle-city/internal/component"
	"go-battle-city/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countMaterial(l Level, m component.Material) int {
	n := 0
	for _, w := range l.Walls {
		if w.Material == m {
			n++
		}
	}
	return n
}

func TestDefaultLevel_Layout(t *testing.T) {
	l := DefaultLevel()

	// 64 top + 64 bottom + 54 left + 54 right
	assert.Equal(t, 236, countMaterial(l, component.MaterialSteel))
	// 13 + 13 in the middle, 6 guarding the base (two left out for the player)
	assert.Equal(t, 32, countMaterial(l, component.MaterialBrick))

	assert.Equal(t, 248.0, l.Base.X)
	assert.Equal(t, 416.0, l.Base.Y)
	assert.Len(t, l.Wave.Spawns, config.EnemyCount)
	assert.Equal(t, SpawnPoint{X: 50, Y: 32}, l.Wave.Spawns[0])
	assert.Equal(t, SpawnPoint{X: 450, Y: 32}, l.Wave.Spawns[2])
}

func TestDefaultLevel_IsClean(t *testing.T) {
	assert.Empty(t, DefaultLevel().Validate())
}

func TestValidate_FlagsSpawnOverlap(t *testing.T) {
	l := DefaultLevel()
	l.Walls = append(l.Walls, WallPlacement{X: config.PlayerSpawnX, Y: config.PlayerSpawnY + 8, Material: component.MaterialBrick})

	warnings := l.Validate()

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "overlaps the player spawn")
}

func TestValidate_FlagsProblems(t *testing.T) {
	l := Level{
		Walls: []WallPlacement{
			{X: 600, Y: 10, Material: component.MaterialSteel},
			{X: 100, Y: 100, Material: component.MaterialBrick},
			{X: 104, Y: 100, Material: component.MaterialBrick},
			{X: 40, Y: 40, Material: "glass"},
		},
		Base: BasePlacement{X: -20, Y: 0},
	}

	warnings := strings.Join(l.Validate(), "\n")

	assert.Contains(t, warnings, "wall 0 at (600,10) is outside the arena")
	assert.Contains(t, warnings, "walls 1 and 2 overlap")
	assert.Contains(t, warnings, `unknown material "glass"`)
	assert.Contains(t, warnings, "base at (-20,0) is outside the arena")
	assert.Contains(t, warnings, "no enemy spawns")
}

func TestBuildWallsAndBase_AreFresh(t *testing.T) {
	l := DefaultLevel()

	a := l.BuildWalls()
	b := l.BuildWalls()
	require.Len(t, a, len(l.Walls))
	a[0].Destroyed = true
	assert.False(t, b[0].Destroyed)

	base := l.BuildBase()
	assert.False(t, base.Destroyed)
	assert.Equal(t, config.BaseSize, base.Width)
}

func TestLoadLevel_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.json")
	want := DefaultLevel()

	require.NoError(t, SaveLevel(path, want))
	got, err := LoadLevel(path)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestParseLevel_EmptyWaveGetsDefault(t *testing.T) {
	level, err := ParseLevel([]byte(`{
		"name": "tiny",
		"walls": [{"x": 8, "y": 8, "material": "steel"}],
		"base": {"x": 200, "y": 200}
	}`))

	require.NoError(t, err)
	assert.Equal(t, "tiny", level.Name)
	require.Len(t, level.Walls, 1)
	assert.Equal(t, component.MaterialSteel, level.Walls[0].Material)
	assert.Equal(t, DefaultWave(), level.Wave)
}

func TestLoadLevel_Errors(t *testing.T) {
	_, err := LoadLevel(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = ParseLevel([]byte(`{"walls": 3}`))
	assert.Error(t, err)
}
