// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package palette assigns colors to categories
// for categorical color scales.
//
// Colors are taken from fixed palettes
// hand-tuned for each number of categories,
// and assigned to categories sorted by a key
// (for example, the year of an outbreak),
// so the same set of categories
// always produce the same scale.
package palette

import (
	"encoding/json"
	"fmt"
	"image/color"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/js-arias/blind"
)

// MaxCategories is the largest number of categories
// supported by the palettes.
const MaxCategories = len(auspiceTable)

// UnsupportedCountError is returned when a palette
// is requested for a number of categories
// not defined in the palette table.
type UnsupportedCountError struct {
	N int
}

func (e *UnsupportedCountError) Error() string {
	return fmt.Sprintf("palette: unsupported number of categories %d (valid range is 1-%d)", e.N, MaxCategories)
}

// MalformedKeyError is returned when a sort key
// can not be extracted from a category.
type MalformedKeyError struct {
	Category string
}

func (e *MalformedKeyError) Error() string {
	return fmt.Sprintf("palette: category %q: sort key not found", e.Category)
}

// A Scheme returns the colors
// for a given number of categories.
type Scheme interface {
	Colors(n int) ([]string, error)
}

// Auspice is the default scheme,
// using the categorical palettes of auspice.
var Auspice Scheme = auspice{}

type auspice struct{}

func (auspice) Colors(n int) ([]string, error) {
	if n < 1 || n > MaxCategories {
		return nil, &UnsupportedCountError{N: n}
	}
	return slices.Clone(auspiceTable[n-1]), nil
}

// Iridescent is a color-blind safe scheme,
// made of evenly spaced samples
// of the Iridescent sequential scale of Paul Tol.
var Iridescent Scheme = iridescent{}

type iridescent struct{}

func (iridescent) Colors(n int) ([]string, error) {
	if n < 1 || n > MaxCategories {
		return nil, &UnsupportedCountError{N: n}
	}
	if n == 1 {
		return []string{Hex(blind.Sequential(blind.Iridescent, 0.5))}, nil
	}
	cs := make([]string, n)
	for i := range cs {
		v := float64(i) / float64(n-1)
		cs[i] = Hex(blind.Sequential(blind.Iridescent, v))
	}
	return cs, nil
}

// Hex returns a color
// as an hexadecimal RGB string.
func Hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02X%02X%02X", r>>8, g>>8, b>>8)
}

// A KeyFunc returns the sort key of a category.
type KeyFunc func(category string) (int, error)

var yearRun = regexp.MustCompile(`[0-9]{4}`)

// Year returns the last group of four digits
// found in a category,
// read as a year.
// Digits are taken in non-overlapping groups of four
// from the left,
// so "12345" is read as 1234.
// For an outbreak relapse
// (for example "Ebov-2013/r2021")
// it will be the relapse year.
func Year(category string) (int, error) {
	runs := yearRun.FindAllString(category, -1)
	if len(runs) == 0 {
		return 0, &MalformedKeyError{Category: category}
	}
	y, err := strconv.Atoi(runs[len(runs)-1])
	if err != nil {
		return 0, &MalformedKeyError{Category: category}
	}
	return y, nil
}

// An Entry is a category with its color.
type Entry struct {
	Category string
	Color    string
}

// A Scale is an ordered list of categories
// with its colors.
type Scale []Entry

// MarshalJSON encodes a scale
// as a list of [category, color] pairs.
func (s Scale) MarshalJSON() ([]byte, error) {
	pairs := make([][2]string, 0, len(s))
	for _, e := range s {
		pairs = append(pairs, [2]string{e.Category, e.Color})
	}
	return json.Marshal(pairs)
}

// Color returns the color of a category.
func (s Scale) Color(category string) (string, bool) {
	for _, e := range s {
		if e.Category == category {
			return e.Color, true
		}
	}
	return "", false
}

// Unassigned is the category for elements without category.
// It is never colored.
const Unassigned = "unassigned"

// Assign builds a color scale for a set of categories.
//
// The Unassigned category and empty or repeated categories
// are removed.
// Categories are sorted by its key,
// and ties are sorted alphabetically,
// so the result does not depend
// on the order of the input.
// If key is nil, Year will be used.
// If scheme is nil, Auspice will be used.
func Assign(categories []string, key KeyFunc, scheme Scheme) (Scale, error) {
	if key == nil {
		key = Year
	}
	if scheme == nil {
		scheme = Auspice
	}

	type keyed struct {
		cat string
		key int
	}
	seen := make(map[string]bool, len(categories))
	cats := make([]keyed, 0, len(categories))
	for _, c := range categories {
		if c == "" || c == Unassigned || seen[c] {
			continue
		}
		seen[c] = true
		k, err := key(c)
		if err != nil {
			return nil, err
		}
		cats = append(cats, keyed{cat: c, key: k})
	}
	slices.SortFunc(cats, func(a, b keyed) int {
		if a.key != b.key {
			return a.key - b.key
		}
		return strings.Compare(a.cat, b.cat)
	})

	colors, err := scheme.Colors(len(cats))
	if err != nil {
		return nil, err
	}

	s := make(Scale, 0, len(cats))
	for i, c := range cats {
		s = append(s, Entry{Category: c.cat, Color: colors[i]})
	}
	return s, nil
}

// A Coloring is a color definition
// for a node attribute
// as used in an auspice configuration file.
type Coloring struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Type  string `json:"type"`
	Scale Scale  `json:"scale"`
}

// Categorical returns a categorical coloring.
func Categorical(key, title string, s Scale) Coloring {
	return Coloring{
		Key:   key,
		Title: title,
		Type:  "categorical",
		Scale: s,
	}
}
