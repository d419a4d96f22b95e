package entity

import "github.com/lixenwraith/term-invaders/render"

// Group is an ordered collection of entities of one role.
// Membership after an update pass is exactly the entities alive at the start
// of the pass minus those killed during it: updates run first over every
// living member, pruning happens once at the end.
type Group struct {
	members []Entity
}

// NewGroup creates an empty group.
func NewGroup() *Group {
	return &Group{}
}

// Add appends an entity to the group.
func (g *Group) Add(e Entity) {
	g.members = append(g.members, e)
}

// Update runs each living member's per-kind update with the shared context,
// then prunes members whose alive flag dropped during the pass.
func (g *Group) Update(ctx *Context) {
	for _, e := range g.members {
		if e.Alive() {
			e.Update(ctx)
		}
	}
	g.Prune()
}

// Prune removes dead members. Collision phases call it explicitly so kills
// recorded after the movement pass still vanish before the frame is drawn.
func (g *Group) Prune() {
	kept := g.members[:0]
	for _, e := range g.members {
		if e.Alive() {
			kept = append(kept, e)
		}
	}
	// Clear the tail so dropped entities are collectable
	for i := len(kept); i < len(g.members); i++ {
		g.members[i] = nil
	}
	g.members = kept
}

// Draw draws every living member.
func (g *Group) Draw(s render.Surface) {
	for _, e := range g.members {
		if e.Alive() {
			e.Draw(s)
		}
	}
}

// Count returns the number of members (dead ones are gone after pruning).
func (g *Group) Count() int {
	return len(g.members)
}

// Empty reports whether the group has no members.
func (g *Group) Empty() bool {
	return len(g.members) == 0
}

// Members exposes the backing slice for collision scans. Callers must not
// add or remove entities through it.
func (g *Group) Members() []Entity {
	return g.members
}

// Slot is the single-occupant group variant used for the player: it holds
// zero or one entity, and adding replaces any existing occupant.
type Slot struct {
	occupant Entity
}

// NewSlot creates an empty slot.
func NewSlot() *Slot {
	return &Slot{}
}

// Add places an entity in the slot, replacing any occupant.
func (s *Slot) Add(e Entity) {
	s.occupant = e
}

// Occupant returns the current occupant, or nil.
func (s *Slot) Occupant() Entity {
	return s.occupant
}

// Update runs the occupant's update if it is alive, then prunes it if dead.
func (s *Slot) Update(ctx *Context) {
	if s.occupant != nil && s.occupant.Alive() {
		s.occupant.Update(ctx)
	}
	s.Prune()
}

// Prune clears the slot if the occupant died.
func (s *Slot) Prune() {
	if s.occupant != nil && !s.occupant.Alive() {
		s.occupant = nil
	}
}

// Draw draws the occupant if present and alive.
func (s *Slot) Draw(surf render.Surface) {
	if s.occupant != nil && s.occupant.Alive() {
		s.occupant.Draw(surf)
	}
}

// Count returns 0 or 1.
func (s *Slot) Count() int {
	if s.occupant != nil {
		return 1
	}
	return 0
}
