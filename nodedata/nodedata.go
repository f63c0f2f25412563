// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package nodedata implements node data documents,
// JSON files with attributes of tree nodes
// keyed by node name,
// as used by the augur and auspice tools.
//
// Here is an example document:
//
//	{
//	  "nodes": {
//	    "KY426689": {"outbreak": "Ebov-2013", "outbreak_geo": "West Africa 2013"},
//	    "NODE_0000001": {"outbreak": "Ebov-2013", "outbreak_geo": "West Africa 2013"}
//	  },
//	  "branches": {
//	    "NODE_0000001": {"labels": {"outbreak": "Ebov-2013", "outbreak_geo": "West Africa 2013"}}
//	  }
//	}
package nodedata

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
)

// Attrs are the attributes of a node.
// Values are usually strings,
// but documents written by other tools
// can store any JSON value.
type Attrs map[string]any

// A Branch stores the labels
// of the branch that ends in a node.
type Branch struct {
	Labels map[string]string `json:"labels"`
}

// Data is a node data document.
type Data struct {
	Nodes    map[string]Attrs  `json:"nodes"`
	Branches map[string]Branch `json:"branches,omitempty"`
}

// New returns an empty document.
func New() *Data {
	return &Data{
		Nodes:    make(map[string]Attrs),
		Branches: make(map[string]Branch),
	}
}

// Set sets the value of an attribute of a node.
func (d *Data) Set(node, attr, value string) {
	a, ok := d.Nodes[node]
	if !ok {
		a = make(Attrs)
		d.Nodes[node] = a
	}
	a[attr] = value
}

// SetLabel sets a label of the branch
// that ends in a node.
func (d *Data) SetLabel(node, label, value string) {
	b, ok := d.Branches[node]
	if !ok {
		b = Branch{Labels: make(map[string]string)}
	}
	b.Labels[label] = value
	d.Branches[node] = b
}

// Names returns the names of the nodes with attributes,
// sorted alphabetically.
func (d *Data) Names() []string {
	return slices.Sorted(maps.Keys(d.Nodes))
}

// Read reads a node data document.
func Read(r io.Reader) (*Data, error) {
	d := New()
	if err := json.NewDecoder(r).Decode(d); err != nil {
		return nil, fmt.Errorf("while decoding node data: %v", err)
	}
	if d.Nodes == nil {
		d.Nodes = make(map[string]Attrs)
	}
	if d.Branches == nil {
		d.Branches = make(map[string]Branch)
	}
	return d, nil
}

// Write writes a node data document.
// Keys are always written in sorted order,
// so the same document
// always produces the same output.
func (d *Data) Write(w io.Writer) error {
	e := json.NewEncoder(w)
	e.SetEscapeHTML(false)
	if err := e.Encode(d); err != nil {
		return fmt.Errorf("while encoding node data: %v", err)
	}
	return nil
}

// Hidden value used to hide a node
// in the time tree view of auspice.
const Hidden = "timetree"

// Hide returns a document in which each node
// with the given attribute value
// is flagged as hidden.
func (d *Data) Hide(attr, value string) *Data {
	nd := New()
	for name, a := range d.Nodes {
		if v, ok := a[attr].(string); ok && v == value {
			nd.Set(name, "hidden", Hidden)
		}
	}
	return nd
}
