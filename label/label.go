// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package label implements the assignment of outbreak labels
// to the nodes of a phylogenetic tree.
//
// For each outbreak,
// the most recent common ancestor (MRCA)
// of the samples in the outbreak is found.
// Then the tree is traversed in preorder
// and each time an MRCA is found,
// all the nodes of its subtree
// are labeled with the outbreak.
// As preorder visits an ancestor before its descendants,
// when outbreak subtrees are nested,
// the nested outbreak keeps its own label
// (i.e., the MRCA visited later wins).
package label

import (
	"fmt"
	"slices"
	"strings"

	"github.com/js-arias/ebov/nodedata"
	"github.com/js-arias/ebov/outbreak"
	"github.com/js-arias/ebov/tree"
	"go.uber.org/zap"
)

// A NodeLabel is the outbreak assigned to a node.
type NodeLabel struct {
	Outbreak string
	Geo      string
}

// A BranchLabel is the label of the branch
// that ends in the MRCA of an outbreak.
// Empty fields are not displayed.
type BranchLabel struct {
	Outbreak string
	Geo      string
}

// MRCA stores the diagnostics
// of the MRCA of an outbreak.
type MRCA struct {
	Outbreak string

	// ID of the MRCA node
	Node int

	// Number of samples in the outbreak
	Members int

	// Number of terminals descendant of the MRCA
	Terms int
}

// An Overwrite is a node label
// replaced by a nested outbreak.
type Overwrite struct {
	Node int
	From string
	To   string
}

// Labels are the outbreak labels of a tree.
type Labels struct {
	// Node labels, keyed by node ID.
	Nodes map[int]NodeLabel

	// Branch labels, keyed by node ID.
	Branches map[int]BranchLabel

	// MRCAs of each outbreak,
	// sorted by outbreak tag.
	MRCAs []MRCA

	// Overwrites in the order they happen.
	Overwrites []Overwrite
}

// AmbiguousGroupingError is returned when two outbreaks
// have the same MRCA.
type AmbiguousGroupingError struct {
	Node      int
	Outbreaks [2]string
}

func (e *AmbiguousGroupingError) Error() string {
	return fmt.Sprintf("label: outbreaks %q and %q share the same MRCA (node %d)", e.Outbreaks[0], e.Outbreaks[1], e.Node)
}

// An Option sets an optional parameter
// of the labeling.
type Option func(*config)

type config struct {
	logger *zap.Logger
	diag   func(MRCA)
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithDiagnostics sets a function
// called with the MRCA of each outbreak.
func WithDiagnostics(fn func(MRCA)) Option {
	return func(c *config) {
		c.diag = fn
	}
}

// Outbreaks assigns outbreak labels to the nodes of a tree.
//
// The resolver is used to get the geographic names of the outbreaks.
// The returned error is one of *tree.NotFoundError,
// *AmbiguousGroupingError,
// or the error of the resolver.
// On error no labels are returned.
func Outbreaks(t *tree.Tree, groups []outbreak.Group, r outbreak.Resolver, opts ...Option) (*Labels, error) {
	cfg := config{logger: zap.NewNop()}
	for _, o := range opts {
		o(&cfg)
	}

	ordered := slices.Clone(groups)
	slices.SortStableFunc(ordered, func(a, b outbreak.Group) int {
		return strings.Compare(a.Name, b.Name)
	})

	lb := &Labels{
		Nodes:    make(map[int]NodeLabel),
		Branches: make(map[int]BranchLabel),
	}

	mrcas := make(map[int]string, len(ordered))
	geo := make(map[string]outbreak.Descriptor, len(ordered))
	for _, g := range ordered {
		if err := g.Validate(); err != nil {
			return nil, fmt.Errorf("label: %w", err)
		}
		if _, dup := geo[g.Name]; dup {
			return nil, fmt.Errorf("label: outbreak %q repeated", g.Name)
		}

		d, err := r.Resolve(g.Name)
		if err != nil {
			return nil, fmt.Errorf("label: outbreak %q: %w", g.Name, err)
		}
		geo[g.Name] = d

		id, err := t.MRCA(g.Members...)
		if err != nil {
			return nil, fmt.Errorf("label: outbreak %q: %w", g.Name, err)
		}
		if prev, ok := mrcas[id]; ok {
			return nil, &AmbiguousGroupingError{
				Node:      id,
				Outbreaks: [2]string{prev, g.Name},
			}
		}
		mrcas[id] = g.Name

		m := MRCA{
			Outbreak: g.Name,
			Node:     id,
			Members:  len(g.Members),
			Terms:    t.NumTerms(id),
		}
		lb.MRCAs = append(lb.MRCAs, m)
		cfg.logger.Info("outbreak MRCA",
			zap.String("outbreak", g.Name),
			zap.Int("node", id),
			zap.String("name", t.Name(id)),
			zap.Int("samples", m.Members),
			zap.Int("descendants", m.Terms),
		)
		if cfg.diag != nil {
			cfg.diag(m)
		}
	}

	for n := range t.Preorder() {
		tag, ok := mrcas[n]
		if !ok {
			continue
		}
		d := geo[tag]

		for id := range t.Subtree(n) {
			if prev, ok := lb.Nodes[id]; ok {
				cfg.logger.Info("overwriting outbreak label",
					zap.Int("node", id),
					zap.String("name", t.Name(id)),
					zap.String("from", prev.Outbreak),
					zap.String("to", tag),
				)
				lb.Overwrites = append(lb.Overwrites, Overwrite{
					Node: id,
					From: prev.Outbreak,
					To:   tag,
				})
			}
			lb.Nodes[id] = NodeLabel{
				Outbreak: tag,
				Geo:      d.Name,
			}
		}

		var bl BranchLabel
		if tag != outbreak.Unassigned {
			bl.Outbreak = tag
		}
		if d.Label {
			bl.Geo = d.Name
		}
		lb.Branches[n] = bl
	}

	return lb, nil
}

// Tags returns the outbreak tags used as labels,
// sorted alphabetically.
func (lb *Labels) Tags() []string {
	tags := make([]string, 0, len(lb.MRCAs))
	for _, m := range lb.MRCAs {
		tags = append(tags, m.Outbreak)
	}
	return tags
}

// Node data attribute names.
const (
	OutbreakAttr = "outbreak"
	GeoAttr      = "outbreak_geo"
)

// NodeData returns the labels as a node data document.
// Nodes are identified by its name,
// so unnamed nodes are not included.
// If several nodes share a name,
// the last one in preorder is used.
func (lb *Labels) NodeData(t *tree.Tree) *nodedata.Data {
	d := nodedata.New()
	for id := range t.Preorder() {
		name := t.Name(id)
		if name == "" {
			continue
		}
		if nl, ok := lb.Nodes[id]; ok {
			d.Set(name, OutbreakAttr, nl.Outbreak)
			d.Set(name, GeoAttr, nl.Geo)
		}

		bl, ok := lb.Branches[id]
		if !ok {
			continue
		}
		b := nodedata.Branch{Labels: make(map[string]string)}
		if bl.Outbreak != "" {
			b.Labels[OutbreakAttr] = bl.Outbreak
		}
		if bl.Geo != "" {
			b.Labels[GeoAttr] = bl.Geo
		}
		d.Branches[name] = b
	}
	return d
}
