package system

import (
	"testing"

	"go-battle-city/internal/component"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectileSystem_AdvanceAndCull(t *testing.T) {
	w := newWorld()
	stays := component.NewProjectile(504, 100, component.DirRight, component.FactionPlayer)
	leaves := component.NewProjectile(510, 100, component.DirRight, component.FactionPlayer)
	up := component.NewProjectile(100, 0, component.DirUp, component.FactionEnemy)
	w.ecs.AddProjectile(stays)
	w.ecs.AddProjectile(leaves)
	w.ecs.AddProjectile(up)

	w.projectile.Update()

	require.Len(t, w.ecs.Projectiles, 2)
	assert.Same(t, stays, w.ecs.Projectiles[0])
	assert.Equal(t, 508.0, stays.X)
	assert.Same(t, up, w.ecs.Projectiles[1])
	assert.Equal(t, -4.0, up.Y, "a projectile just past the top edge is still in flight")

	w.projectile.Update()
	require.Len(t, w.ecs.Projectiles, 1)
	assert.Same(t, stays, w.ecs.Projectiles[0])
}
