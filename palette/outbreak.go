// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package palette

import (
	"fmt"

	"github.com/js-arias/ebov/outbreak"
)

// Outbreaks returns the suggested colorings
// for a set of outbreak tags:
// one for the "outbreak" attribute
// (the tags)
// and one for the "outbreak_geo" attribute
// (the geographic names).
//
// Tags are sorted by year
// (relapses by its relapse year).
// A geographic name takes the color of its tag,
// and it is only included
// if it is used as a label.
func Outbreaks(tags []string, r outbreak.Resolver, scheme Scheme) ([]Coloring, error) {
	s, err := Assign(tags, Year, scheme)
	if err != nil {
		return nil, err
	}

	var geo Scale
	seen := make(map[string]bool)
	for _, e := range s {
		d, err := r.Resolve(e.Category)
		if err != nil {
			return nil, fmt.Errorf("palette: %w", err)
		}
		if !d.Label || seen[d.Name] {
			continue
		}
		seen[d.Name] = true
		geo = append(geo, Entry{Category: d.Name, Color: e.Color})
	}

	return []Coloring{
		Categorical("outbreak", "Outbreak (Nextclade name)", s),
		Categorical("outbreak_geo", "Outbreak (Geographic name)", geo),
	}, nil
}
