package sim

import (
	"math/rand"

	"github.com/andrevlas/starwalk/internal/core"
)

// Collectible is a single star on the walkway. Taken stars keep their
// slot until the whole batch is replaced; Spin advances only while the
// star is still up.
type Collectible struct {
	ID    int
	Pos   core.Vec2
	Taken bool
	Spin  float64
}

// batch manages the current set of stars. Stars are created size at a
// time and replaced wholesale once every one of them has been taken.
type batch struct {
	items  []Collectible
	size   int
	rng    *rand.Rand
	nextID int
}

func newBatch(size int, rng *rand.Rand) *batch {
	return &batch{
		items: make([]Collectible, 0, size),
		size:  size,
		rng:   rng,
	}
}

// regenerate replaces the batch with fresh stars at independent
// uniform-random positions inside the spawn rectangle. Overlap between
// stars is allowed.
func (b *batch) regenerate(spawn core.Rect) {
	b.items = b.items[:0]
	for i := 0; i < b.size; i++ {
		b.items = append(b.items, Collectible{
			ID: b.nextID,
			Pos: core.Vec2{
				X: spawn.MinX + b.rng.Float64()*spawn.Width(),
				Y: spawn.MinY + b.rng.Float64()*spawn.Height(),
			},
		})
		b.nextID++
	}
}

// step spins the remaining stars and collects those within radius of
// the leader. Returns how many stars were picked up this frame.
func (b *batch) step(dt float64, leader core.Vec2, radius, spinRate float64) int {
	picked := 0
	for i := range b.items {
		item := &b.items[i]
		if item.Taken {
			continue
		}
		item.Spin += dt * spinRate
		if item.Pos.Distance(leader) < radius {
			item.Taken = true
			picked++
		}
	}
	return picked
}

// exhausted reports whether every star in the batch has been taken.
func (b *batch) exhausted() bool {
	for i := range b.items {
		if !b.items[i].Taken {
			return false
		}
	}
	return len(b.items) > 0
}

// snapshot returns a copy of the batch for the render layer.
func (b *batch) snapshot() []Collectible {
	out := make([]Collectible, len(b.items))
	copy(out, b.items)
	return out
}
