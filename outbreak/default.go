// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package outbreak

import "slices"

// Geographic names of Ebola virus outbreaks,
// using the names of the Nextclade clades
// as tags.
// Names follow the INRB usage
// (for example "Nord-Kivu").
var defaultOutbreaks = map[string]Descriptor{
	"Ebov-1976":  {Name: "Yambuku 1976", Label: true},
	"Ebov-1994":  {Name: "Gabon 1994", Label: true},
	"Ebov-1995":  {Name: "Kikwit 1995", Label: true},
	"Ebov-1996a": {Name: "Gabon 1996 A", Label: true},
	"Ebov-1996b": {Name: "Gabon 1996 B", Label: true},
	"Ebov-2001a": {Name: "Gabon 2001", Label: true},
	"Ebov-2003":  {Name: "Kelle 2003", Label: true}, // Kelle is in the Republic of Congo
	"Ebov-2007":  {Name: "Luebo 2007", Label: true},
	"Ebov-2013":  {Name: "West Africa 2013", Label: true},
	"Ebov-2014":  {Name: "Boende 2014", Label: true},
	"Ebov-2017":  {Name: "Likati 2017", Label: true},
	"Ebov-2018a": {Name: "Tumba 2018", Label: true},
	"Ebov-2018b": {Name: "Nord-Kivu 2018", Label: true},
	"Ebov-2020":  {Name: "Mbandaka 2020", Label: true},
	"Ebov-2025":  {Name: "Bulape 2025", Label: true},
}

// Default returns a registry
// with the known Ebola virus outbreaks.
func Default() *Registry {
	r := New()
	for tag, d := range defaultOutbreaks {
		r.desc[tag] = d
	}
	return r
}

// Known relapses of the outbreaks in the default registry.
var knownRelapses = []string{
	"Ebov-2013/r2021",
}

// AllTags returns the tags of the registry
// together with the known relapses
// of its outbreaks,
// sorted alphabetically.
func (r *Registry) AllTags() []string {
	tags := r.Tags()
	for _, tag := range knownRelapses {
		base, _ := Base(tag)
		if _, ok := r.desc[base]; !ok {
			continue
		}
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}
