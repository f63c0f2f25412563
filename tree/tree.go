// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tree implements a minimal rooted phylogenetic tree
// used to annotate samples.
//
// Nodes are identified by an integer ID
// assigned in preorder when the tree is built,
// so the root is always node 0.
// A tree is read-only after it is built;
// annotations are stored by callers
// in maps keyed by node ID.
package tree

import (
	"fmt"
	"iter"
	"slices"
)

// A Tree is a rooted phylogenetic tree.
type Tree struct {
	nodes []*node
	taxa  map[string]int
}

type node struct {
	id       int
	name     string
	parent   int
	depth    int
	length   float64
	children []int
}

// NotFoundError is returned when a set of leaf names
// can not be resolved in a tree.
type NotFoundError struct {
	// Name is the leaf name not found in the tree.
	// It is empty if the set of names was empty.
	Name string
}

func (e *NotFoundError) Error() string {
	if e.Name == "" {
		return "tree: empty set of terminal names"
	}
	return fmt.Sprintf("tree: terminal %q not found", e.Name)
}

// builder assembles a tree in preorder.
type builder struct {
	t *Tree
}

func newBuilder() *builder {
	return &builder{
		t: &Tree{
			taxa: make(map[string]int),
		},
	}
}

// add adds a new node as a child of parent
// (use -1 for the root).
func (b *builder) add(parent int) int {
	n := &node{
		id:     len(b.t.nodes),
		parent: parent,
	}
	if parent >= 0 {
		p := b.t.nodes[parent]
		n.depth = p.depth + 1
		p.children = append(p.children, n.id)
	}
	b.t.nodes = append(b.t.nodes, n)
	return n.id
}

func (b *builder) setName(id int, name string) {
	b.t.nodes[id].name = name
}

func (b *builder) setLen(id int, length float64) {
	b.t.nodes[id].length = length
}

// finish checks terminal names
// and builds the terminal index.
func (b *builder) finish() (*Tree, error) {
	if len(b.t.nodes) == 0 {
		return nil, fmt.Errorf("empty tree")
	}
	for _, n := range b.t.nodes {
		if len(n.children) > 0 {
			continue
		}
		if n.name == "" {
			return nil, fmt.Errorf("terminal node %d without name", n.id)
		}
		if _, dup := b.t.taxa[n.name]; dup {
			return nil, fmt.Errorf("terminal %q repeated", n.name)
		}
		b.t.taxa[n.name] = n.id
	}
	return b.t, nil
}

// Root returns the ID of the root node.
func (t *Tree) Root() int {
	return 0
}

// Len returns the length of the branch
// that ends in the indicated node.
func (t *Tree) Len(id int) float64 {
	return t.nodes[id].length
}

// Name returns the name of a node.
// Internal nodes are usually unnamed.
func (t *Tree) Name(id int) string {
	return t.nodes[id].name
}

// Parent returns the ID of the parent of a node.
// It returns -1 for the root.
func (t *Tree) Parent(id int) int {
	return t.nodes[id].parent
}

// Children returns the IDs of the children of a node,
// in the order stored in the tree.
func (t *Tree) Children(id int) []int {
	return slices.Clone(t.nodes[id].children)
}

// IsTerm returns true if the node is a terminal.
func (t *Tree) IsTerm(id int) bool {
	return len(t.nodes[id].children) == 0
}

// IsRoot returns true if the node is the root of the tree.
func (t *Tree) IsRoot(id int) bool {
	return t.nodes[id].parent < 0
}

// Nodes returns the IDs of all nodes in preorder.
func (t *Tree) Nodes() []int {
	ids := make([]int, 0, len(t.nodes))
	for id := range t.Preorder() {
		ids = append(ids, id)
	}
	return ids
}

// TaxNode returns the ID of the terminal with the given name.
func (t *Tree) TaxNode(name string) (int, bool) {
	id, ok := t.taxa[name]
	return id, ok
}

// Terms returns the names of the terminals of the tree,
// sorted alphabetically.
func (t *Tree) Terms() []string {
	terms := make([]string, 0, len(t.taxa))
	for tax := range t.taxa {
		terms = append(terms, tax)
	}
	slices.Sort(terms)
	return terms
}

// NumTerms returns the number of terminals
// descendant from a node
// (a terminal counts itself).
func (t *Tree) NumTerms(id int) int {
	var n int
	for d := range t.Subtree(id) {
		if t.IsTerm(d) {
			n++
		}
	}
	return n
}

// Preorder returns a sequence with the IDs of all nodes,
// visiting the root first,
// and then each child subtree
// in the order the children are stored.
func (t *Tree) Preorder() iter.Seq[int] {
	return t.Subtree(t.Root())
}

// Subtree returns a sequence with the IDs
// of a node and all of its descendants
// in preorder.
func (t *Tree) Subtree(id int) iter.Seq[int] {
	return func(yield func(int) bool) {
		stack := []int{id}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n) {
				return
			}
			ch := t.nodes[n].children
			for i := len(ch) - 1; i >= 0; i-- {
				stack = append(stack, ch[i])
			}
		}
	}
}

// IsAncestor returns true if anc is an ancestor of id,
// or if both are the same node.
func (t *Tree) IsAncestor(anc, id int) bool {
	for ; id >= 0; id = t.nodes[id].parent {
		if id == anc {
			return true
		}
	}
	return false
}

// MRCA returns the ID of the most recent common ancestor
// of the indicated terminals,
// i.e., the deepest node that is an ancestor
// of every named terminal.
//
// It returns a *NotFoundError
// if a name is not a terminal of the tree
// or if no name is given.
func (t *Tree) MRCA(names ...string) (int, error) {
	if len(names) == 0 {
		return -1, &NotFoundError{}
	}

	mrca := -1
	for _, nm := range names {
		id, ok := t.taxa[nm]
		if !ok {
			return -1, &NotFoundError{Name: nm}
		}
		if mrca < 0 {
			mrca = id
			continue
		}
		mrca = t.lca(mrca, id)
	}
	return mrca, nil
}

// lca returns the lowest common ancestor of two nodes
// by lifting the deepest node
// until both reach the same depth,
// and then lifting both.
func (t *Tree) lca(a, b int) int {
	for t.nodes[a].depth > t.nodes[b].depth {
		a = t.nodes[a].parent
	}
	for t.nodes[b].depth > t.nodes[a].depth {
		b = t.nodes[b].parent
	}
	for a != b {
		a = t.nodes[a].parent
		b = t.nodes[b].parent
	}
	return a
}
