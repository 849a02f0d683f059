package dsu

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned by New for a negative element count.
	ErrInvalidSize = errors.New("dsu: invalid size")

	// ErrOutOfRange is returned for an element outside 0..n-1.
	ErrOutOfRange = errors.New("dsu: element out of range")
)

// DisjointSet partitions the elements 0..n-1 into disjoint components.
//
// root[i] is the representative of i's component. members is keyed by
// representative only; a key disappears when its component is absorbed.
type DisjointSet struct {
	root    []int
	members map[int][]int
}

// New returns a DisjointSet of n singleton components: every element is its
// own root with member list {i}.
// Complexity: O(n).
func New(n int) (*DisjointSet, error) {
	if n < 0 {
		return nil, fmt.Errorf("New(%d): %w", n, ErrInvalidSize)
	}
	d := &DisjointSet{
		root:    make([]int, n),
		members: make(map[int][]int, n),
	}
	for i := range d.root {
		d.root[i] = i
		d.members[i] = []int{i}
	}

	return d, nil
}

// Len returns n, the number of elements.
func (d *DisjointSet) Len() int { return len(d.root) }

// Count returns the number of components.
func (d *DisjointSet) Count() int { return len(d.members) }

// Find returns the root of i's component.
// Complexity: O(1).
func (d *DisjointSet) Find(i int) (int, error) {
	if err := d.check(i); err != nil {
		return 0, fmt.Errorf("Find: %w", err)
	}

	return d.root[i], nil
}

// Connected reports whether a and b are in the same component.
func (d *DisjointSet) Connected(a, b int) (bool, error) {
	if err := d.check(a); err != nil {
		return false, fmt.Errorf("Connected: %w", err)
	}
	if err := d.check(b); err != nil {
		return false, fmt.Errorf("Connected: %w", err)
	}

	return d.root[a] == d.root[b], nil
}

// Union merges the components of a and b.
//
// It returns false, leaving the structure untouched, when a and b already
// share a root: for Kruskal this means the edge would close a cycle.
// Otherwise the component with fewer members is absorbed into the one with
// more; on a tie b's root is absorbed into a's. Every absorbed member is
// re-rooted and Union returns true.
//
// Complexity: O(size of the absorbed component).
func (d *DisjointSet) Union(a, b int) (bool, error) {
	if err := d.check(a); err != nil {
		return false, fmt.Errorf("Union: %w", err)
	}
	if err := d.check(b); err != nil {
		return false, fmt.Errorf("Union: %w", err)
	}

	ra, rb := d.root[a], d.root[b]
	if ra == rb {
		return false, nil
	}

	to, from := ra, rb
	if len(d.members[rb]) > len(d.members[ra]) {
		to, from = rb, ra
	}
	d.absorb(to, from)

	return true, nil
}

// absorb re-roots every member of from to to and moves the member list.
func (d *DisjointSet) absorb(to, from int) {
	moved := d.members[from]
	for _, m := range moved {
		d.root[m] = to
	}
	d.members[to] = append(d.members[to], moved...)
	delete(d.members, from)
}

// Size returns the number of members in i's component.
// Complexity: O(1).
func (d *DisjointSet) Size(i int) (int, error) {
	if err := d.check(i); err != nil {
		return 0, fmt.Errorf("Size: %w", err)
	}

	return len(d.members[d.root[i]]), nil
}

// Members returns a copy of the members of i's component, in the order they
// joined it.
// Complexity: O(size).
func (d *DisjointSet) Members(i int) ([]int, error) {
	if err := d.check(i); err != nil {
		return nil, fmt.Errorf("Members: %w", err)
	}
	src := d.members[d.root[i]]
	out := make([]int, len(src))
	copy(out, src)

	return out, nil
}

// Roots returns the current representatives in ascending order.
// Complexity: O(n).
func (d *DisjointSet) Roots() []int {
	out := make([]int, 0, len(d.members))
	for i, r := range d.root {
		if i == r {
			out = append(out, r)
		}
	}

	return out
}

func (d *DisjointSet) check(i int) error {
	if i < 0 || i >= len(d.root) {
		return fmt.Errorf("element %d not in [0,%d): %w", i, len(d.root), ErrOutOfRange)
	}

	return nil
}
