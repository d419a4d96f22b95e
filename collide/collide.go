// Package collide implements the two group-collision algorithms over the
// half-open AABB intersection test in core.
package collide

import "github.com/lixenwraith/term-invaders/entity"

// Pair records one colliding (A, B) entity pair found by Groups.
type Pair struct {
	A, B entity.Entity
}

// Groups tests every (a, b) pair across the two groups that is alive at the
// time the pair is reached. Intersecting pairs are recorded and killed per
// the kill flags. An entity killed earlier in the same call is excluded from
// further matches, so no entity's alive flag drops more than once per call.
func Groups(a, b *entity.Group, killA, killB bool) []Pair {
	var pairs []Pair

	for _, ea := range a.Members() {
		if !ea.Alive() {
			continue
		}
		for _, eb := range b.Members() {
			if !ea.Alive() {
				break // killed by an earlier match in this call
			}
			if !eb.Alive() {
				continue
			}
			if !ea.Bounds().Intersects(*eb.Bounds()) {
				continue
			}

			pairs = append(pairs, Pair{A: ea, B: eb})
			if killA {
				ea.Kill()
			}
			if killB {
				eb.Kill()
			}
		}
	}
	return pairs
}

// Sprite tests one probe entity against a group, killing matched group
// members when kill is set. The probe itself is never killed here. A dead
// probe short-circuits to no collisions.
func Sprite(probe entity.Entity, g *entity.Group, kill bool) []entity.Entity {
	if probe == nil || !probe.Alive() {
		return nil
	}

	var hits []entity.Entity
	for _, e := range g.Members() {
		if !e.Alive() {
			continue
		}
		if !probe.Bounds().Intersects(*e.Bounds()) {
			continue
		}

		hits = append(hits, e)
		if kill {
			e.Kill()
		}
	}
	return hits
}
