// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Read-only access to the adjacency for algorithms in other packages.
// Concurrency:
//   - Read holds the read lock for the whole callback; mutations wait.

package core

import "fmt"

// View is a read-only window onto a Graph's adjacency, valid only for the
// duration of the Read callback that produced it.
type View interface {
	// HasNode reports whether id is present.
	HasNode(id int) bool

	// Nodes returns all node ids in ascending order.
	Nodes() []int

	// NodeCount returns the number of nodes.
	NodeCount() int

	// Edges returns the stored edges of id in insertion order, or nil if id
	// is absent. The slice is the graph's own storage: do not modify it and
	// do not keep it after the callback returns.
	Edges(id int) []Edge
}

// Read runs fn with a View of g while holding the read lock, and returns
// fn's error. fn must not call mutating methods of g.
func (g *Graph) Read(fn func(View) error) error {
	if fn == nil {
		return fmt.Errorf("core: nil view callback")
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return fn(lockedView{g: g})
}

// lockedView implements View over a graph whose read lock is held.
type lockedView struct {
	g *Graph
}

func (v lockedView) HasNode(id int) bool {
	_, ok := v.g.adjacency[id]

	return ok
}

func (v lockedView) Nodes() []int { return v.g.sortedNodesLocked() }

func (v lockedView) NodeCount() int { return len(v.g.adjacency) }

func (v lockedView) Edges(id int) []Edge { return v.g.adjacency[id] }
