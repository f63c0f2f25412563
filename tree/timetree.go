// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import "github.com/js-arias/timetree"

const millionYears = 1_000_000

// FromTimeTree creates a tree from a time calibrated tree,
// for example,
// a tree stored in a PhyGeo tree file.
// Branch lengths are set in million years.
func FromTimeTree(tt *timetree.Tree) (*Tree, error) {
	b := newBuilder()
	copyTimeNode(b, tt, tt.Root(), -1)
	return b.finish()
}

func copyTimeNode(b *builder, tt *timetree.Tree, src, parent int) {
	id := b.add(parent)
	if tt.IsTerm(src) {
		b.setName(id, tt.Taxon(src))
	}
	if !tt.IsRoot(src) {
		l := tt.Age(tt.Parent(src)) - tt.Age(src)
		b.setLen(id, float64(l)/millionYears)
	}
	for _, c := range tt.Children(src) {
		copyTimeNode(b, tt, c, id)
	}
}
