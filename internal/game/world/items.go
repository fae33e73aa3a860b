package world

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/galleon/internal/engine/model"
)

// Errors returned by the inventory.
var (
	ErrHandsFull   = errors.New("already holding an item")
	ErrNothingHeld = errors.New("not holding an item")
	ErrOutOfReach  = errors.New("no item within reach")
	ErrNoDeck      = errors.New("no deck to put the item on")
)

// Item is a loose object. While it lies on the deck its position is kept
// in deck (model) space, so it rides along when the ship moves.
type Item struct {
	Name  string
	Model *model.Model
	Local mgl32.Vec3
	Scale float32
}

// Matrix returns the item's model matrix on deck.
func (it *Item) Matrix(deck Transform) mgl32.Mat4 {
	s := it.Scale
	if s == 0 {
		s = 1
	}
	return deck.Matrix().
		Mul4(mgl32.Translate3D(it.Local[0], it.Local[1], it.Local[2])).
		Mul4(mgl32.Scale3D(s, s, s))
}

// Inventory tracks items on the deck and the one the player holds.
type Inventory struct {
	deck  *Deck
	reach float32
	items []*Item
	held  *Item
}

// NewInventory creates an empty inventory. reach is the pickup distance
// in world units.
func NewInventory(deck *Deck, reach float32) *Inventory {
	return &Inventory{deck: deck, reach: reach}
}

// Place puts an item on the deck at the deck-space (x, z) on the surface
// closest to refY, also in deck space.
func (inv *Inventory) Place(it *Item, x, z, refY float32) error {
	h, ok := inv.deck.Ground.HeightAt(x, z, refY)
	if !ok {
		return ErrNoDeck
	}
	it.Local = mgl32.Vec3{x, h, z}
	inv.items = append(inv.items, it)
	return nil
}

// Items returns the items lying on the deck.
func (inv *Inventory) Items() []*Item {
	return inv.items
}

// Held returns the held item, or nil.
func (inv *Inventory) Held() *Item {
	return inv.held
}

// WorldPosition returns where an item on the deck is in the world.
func (inv *Inventory) WorldPosition(it *Item) mgl32.Vec3 {
	return inv.deck.Transform.ToWorld(it.Local)
}

// PickUp takes the item nearest to the player's feet within reach.
func (inv *Inventory) PickUp(feet mgl32.Vec3) (*Item, error) {
	if inv.held != nil {
		return nil, ErrHandsFull
	}
	best := -1
	bestDist := inv.reach
	for i, it := range inv.items {
		if d := inv.WorldPosition(it).Sub(feet).Len(); d <= bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return nil, ErrOutOfReach
	}
	inv.held = inv.items[best]
	inv.items = append(inv.items[:best], inv.items[best+1:]...)
	return inv.held, nil
}

// Drop puts the held item down half the reach ahead of the player,
// snapped to the deck. forward must be horizontal. When there is no deck
// there the item stays held.
func (inv *Inventory) Drop(feet, forward mgl32.Vec3) (*Item, error) {
	if inv.held == nil {
		return nil, ErrNothingHeld
	}
	target := feet.Add(forward.Mul(inv.reach / 2))
	local := inv.deck.Transform.ToLocal(mgl32.Vec3{target[0], feet[1], target[2]})
	h, ok := inv.deck.Ground.HeightAt(local[0], local[2], local[1])
	if !ok {
		return nil, ErrNoDeck
	}

	it := inv.held
	it.Local = mgl32.Vec3{local[0], h, local[2]}
	inv.items = append(inv.items, it)
	inv.held = nil
	return it, nil
}
