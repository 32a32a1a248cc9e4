package component

import (
	"testing"

	"go-battle-city/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestProjectileAdvance(t *testing.T) {
	tests := []struct {
		dir          Direction
		wantX, wantY float64
	}{
		{DirUp, 10, 6},
		{DirDown, 10, 14},
		{DirLeft, 6, 10},
		{DirRight, 14, 10},
	}
	for _, tt := range tests {
		p := NewProjectile(10, 10, tt.dir, FactionPlayer)
		p.Advance()
		assert.Equal(t, tt.wantX, p.X, tt.dir.String())
		assert.Equal(t, tt.wantY, p.Y, tt.dir.String())
	}
}

func TestProjectileOffArena(t *testing.T) {
	w, h := float64(config.ArenaWidth), float64(config.ArenaHeight)

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 100, 100, false},
		{"partly out left", -2, 100, false},
		{"exactly one size out left", -4, 100, false},
		{"fully out left", -4.5, 100, true},
		{"at right edge", w, 100, false},
		{"past right edge", w + 1, 100, true},
		{"fully out top", 100, -5, true},
		{"past bottom edge", 100, h + 0.5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProjectile(tt.x, tt.y, DirUp, FactionEnemy)
			assert.Equal(t, tt.want, p.OffArena(w, h))
		})
	}
}

func TestWallTakeDamage(t *testing.T) {
	assert.True(t, NewWall(0, 0, MaterialBrick).TakeDamage())
	assert.False(t, NewWall(0, 0, MaterialSteel).TakeDamage())
}

func TestBaseTakeDamage(t *testing.T) {
	b := NewBase(0, 0)
	assert.True(t, b.Intact())

	b.TakeDamage()
	assert.True(t, b.Destroyed)
	assert.False(t, b.Intact())

	var missing *Base
	assert.False(t, missing.Intact())
}

func TestPhaseTerminal(t *testing.T) {
	assert.False(t, PhasePlaying.Terminal())
	assert.True(t, PhaseGameOver.Terminal())
	assert.True(t, PhaseWin.Terminal())
}
