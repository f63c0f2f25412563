// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package outbreak implements outbreak tags,
// groups of samples assigned to an outbreak,
// and the registry of geographic names for each outbreak.
//
// An outbreak tag is a short identifier of an epidemiological event,
// for example "Ebov-2018b".
// A tag with a "/r<year>" suffix,
// for example "Ebov-2013/r2021",
// is a relapse of the outbreak identified by the base tag.
package outbreak

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// Unassigned is the tag used for samples
// without an outbreak.
const Unassigned = "unassigned"

var relapseSuffix = regexp.MustCompile(`/r[0-9]+$`)

// Base returns the base tag of an outbreak tag,
// i.e., the tag without the relapse suffix,
// and true if the tag is a relapse.
func Base(tag string) (string, bool) {
	loc := relapseSuffix.FindStringIndex(tag)
	if loc == nil {
		return tag, false
	}
	return tag[:loc[0]], true
}

// IsRelapse returns true if the tag
// is a relapse of another outbreak.
func IsRelapse(tag string) bool {
	_, r := Base(tag)
	return r
}

// A Group is a set of samples
// (terminals of a tree)
// assigned to the same outbreak.
type Group struct {
	// Name is the outbreak tag.
	Name string

	// Members are the names of the samples.
	Members []string
}

// GroupBy builds outbreak groups
// from a map of sample names to outbreak tags.
// Samples with an empty tag are ignored.
// Groups are sorted by tag,
// and members of each group are sorted by name.
func GroupBy(tags map[string]string) []Group {
	byTag := make(map[string][]string)
	for sample, tag := range tags {
		if tag == "" {
			continue
		}
		byTag[tag] = append(byTag[tag], sample)
	}

	groups := make([]Group, 0, len(byTag))
	for tag, m := range byTag {
		slices.Sort(m)
		groups = append(groups, Group{Name: tag, Members: m})
	}
	slices.SortFunc(groups, func(a, b Group) int {
		return strings.Compare(a.Name, b.Name)
	})
	return groups
}

// Validate checks that a group is well formed.
func (g Group) Validate() error {
	if g.Name == "" {
		return fmt.Errorf("outbreak: group without tag")
	}
	if len(g.Members) == 0 {
		return fmt.Errorf("outbreak: group %q without members", g.Name)
	}
	return nil
}
