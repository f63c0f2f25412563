// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package input implements functions to read input files,
// and write outputs,
// shared by ebov commands.
package input

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/js-arias/ebov/outbreak"
	"github.com/js-arias/ebov/palette"
	"github.com/js-arias/ebov/tree"
	"github.com/js-arias/timetree"
	"go.uber.org/zap"
)

// Tree reads a tree from a file.
// If name is empty or "-",
// the tree is read from r.
// If tsvTree is not empty,
// the file is read as a PhyGeo tab-delimited tree file
// and the tree with that name is returned;
// otherwise the file is read as a newick tree.
func Tree(r io.Reader, name, tsvTree string) (*tree.Tree, error) {
	if name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		name = "stdin"
	}

	if tsvTree == "" {
		t, err := tree.ReadNewick(r)
		if err != nil {
			return nil, fmt.Errorf("while reading file %q: %w", name, err)
		}
		return t, nil
	}

	c, err := timetree.ReadTSV(r)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %w", name, err)
	}
	tt := c.Tree(tsvTree)
	if tt == nil {
		return nil, fmt.Errorf("on file %q: tree %q not found", name, tsvTree)
	}
	t, err := tree.FromTimeTree(tt)
	if err != nil {
		return nil, fmt.Errorf("on file %q: tree %q: %w", name, tsvTree, err)
	}
	return t, nil
}

// Registry returns the outbreak registry
// stored in a file.
// If name is empty,
// the built-in registry is returned.
func Registry(name string) (*outbreak.Registry, error) {
	if name == "" {
		return outbreak.Default(), nil
	}
	return outbreak.Read(name)
}

// Resolver returns the resolver of a registry.
// If degraded is true,
// unknown tags are accepted
// and reported with the logger.
func Resolver(reg *outbreak.Registry, degraded bool, logger *zap.Logger) outbreak.Resolver {
	if degraded {
		return outbreak.Degraded(reg, logger)
	}
	return reg
}

// Scheme returns the color scheme.
func Scheme(iridescent bool) palette.Scheme {
	if iridescent {
		return palette.Iridescent
	}
	return palette.Auspice
}

// Output writes the output of a command
// using the given function.
// If name is empty or "-",
// the output is written to w.
func Output(w io.Writer, name string, fn func(io.Writer) error) (err error) {
	if name == "" || name == "-" {
		return fn(w)
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := fn(f); err != nil {
		return fmt.Errorf("while writing to %q: %w", name, err)
	}
	return nil
}

// IDColumns returns the list of ID columns
// from a comma separated list.
func IDColumns(s string) []string {
	var ids []string
	for _, id := range strings.Split(s, ",") {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// Colorings prints suggested colorings
// as auspice configuration entries,
// one per line.
func Colorings(w io.Writer, cs []palette.Coloring) error {
	if len(cs) == 0 {
		return nil
	}
	fmt.Fprintf(w, "Suggested auspice-config colors entries:\n")
	for _, cl := range cs {
		b, err := json.Marshal(cl)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\t%s,\n", b)
	}
	return nil
}
