package event

import (
	"testing"

	"github.com/chaoscraft/chaos-engine-go/internal/chaos/world"
	"github.com/stretchr/testify/assert"
)

func TestNew_PopulatesCommonFields(t *testing.T) {
	a := New(BlockBreak)
	b := New(BlockBreak)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, BlockBreak, a.Type)
	assert.True(t, a.DropItems)
	assert.False(t, a.Timestamp.IsZero())
}

func TestNewBlockBreak_SnapsToBlock(t *testing.T) {
	ev := NewBlockBreak(world.At("world", 3.6, 70.2, -1.5), world.MaterialDirt, 2)
	assert.Equal(t, world.At("world", 3, 70, -2), ev.Location)
	assert.Equal(t, world.MaterialDirt, ev.Block)
	assert.Equal(t, 2, ev.XP)
}

func TestImpactLocation(t *testing.T) {
	arrow := world.Entity{ID: "arrow", Kind: world.KindArrow, Location: world.At("world", 1, 1, 1)}
	block := world.At("world", 10, 64, 10)
	cow := world.Entity{ID: "cow", Kind: world.KindCow, Location: world.At("world", 5, 65, 5)}

	tests := []struct {
		name string
		ev   *Event
		want world.Location
	}{
		{"block", NewProjectileHit(arrow, &block, nil), world.At("world", 10.5, 64.5, 10.5)},
		{"entity", NewProjectileHit(arrow, nil, &cow), cow.Location},
		{"nothing", NewProjectileHit(arrow, nil, nil), arrow.Location},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ev.ImpactLocation())
		})
	}
}

func TestDestroysSubject(t *testing.T) {
	zombie := world.Entity{ID: "z", Kind: world.KindZombie}

	assert.True(t, NewDeath(zombie, nil).DestroysSubject())
	assert.True(t, NewSubjectRemoved(zombie).DestroysSubject())

	dmg := NewDamage(zombie, 4)
	assert.False(t, dmg.DestroysSubject())
	dmg.SubjectGone = true
	assert.True(t, dmg.DestroysSubject())
}

func TestNewProjectileDamage(t *testing.T) {
	target := world.Entity{ID: "t", Kind: world.KindZombie, Location: world.At("world", 0, 65, 0)}
	arrow := world.Entity{ID: "a", Kind: world.KindArrow}

	ev := NewProjectileDamage(target, arrow, 6)
	assert.Equal(t, target, ev.Subject)
	if assert.NotNil(t, ev.Damager) {
		assert.Equal(t, world.EntityID("a"), ev.Damager.ID)
	}
	assert.Equal(t, 6.0, ev.Damage)
}
