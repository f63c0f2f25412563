// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package outbreak

import (
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"
)

// A Descriptor is the geographic description
// of an outbreak.
type Descriptor struct {
	// Name is a human readable place and year,
	// for example "Nord-Kivu 2018".
	Name string

	// Label is true if the geographic name
	// should be used as a branch label.
	Label bool
}

// UnknownTagError is returned when an outbreak tag
// is not defined in a registry.
type UnknownTagError struct {
	Tag string
}

func (e *UnknownTagError) Error() string {
	base, _ := Base(e.Tag)
	if base != e.Tag {
		return fmt.Sprintf("outbreak: unknown tag %q (base tag %q not in registry)", e.Tag, base)
	}
	return fmt.Sprintf("outbreak: unknown tag %q", e.Tag)
}

// A Resolver returns the geographic description
// of an outbreak tag.
type Resolver interface {
	Resolve(tag string) (Descriptor, error)
}

// A Registry is a table of geographic descriptors
// keyed by base outbreak tags.
type Registry struct {
	desc map[string]Descriptor
}

// New creates a new empty registry.
func New() *Registry {
	return &Registry{
		desc: make(map[string]Descriptor),
	}
}

// Add adds an outbreak to the registry.
// The tag must be a base tag
// (relapses are resolved from its base tag).
func (r *Registry) Add(tag string, d Descriptor) error {
	if tag == "" {
		return errors.New("outbreak: empty tag")
	}
	if tag == Unassigned {
		return fmt.Errorf("outbreak: tag %q is reserved", tag)
	}
	if IsRelapse(tag) {
		base, _ := Base(tag)
		return fmt.Errorf("outbreak: tag %q is a relapse: add base tag %q instead", tag, base)
	}
	if d.Name == "" {
		return fmt.Errorf("outbreak: tag %q: empty geographic name", tag)
	}
	r.desc[tag] = d
	return nil
}

// Len returns the number of outbreaks in the registry.
func (r *Registry) Len() int {
	return len(r.desc)
}

// Tags returns the tags in the registry,
// sorted alphabetically.
func (r *Registry) Tags() []string {
	tags := make([]string, 0, len(r.desc))
	for t := range r.desc {
		tags = append(tags, t)
	}
	slices.Sort(tags)
	return tags
}

// Descriptor returns the stored descriptor of a base tag.
func (r *Registry) Descriptor(tag string) (Descriptor, bool) {
	d, ok := r.desc[tag]
	return d, ok
}

// Resolve returns the geographic description of an outbreak tag.
//
// The relapse suffix is removed before looking up the tag,
// and relapses are never used as branch labels.
// The Unassigned tag is always resolved
// to a non-label descriptor.
// If the base tag is not in the registry
// it returns an *UnknownTagError.
func (r *Registry) Resolve(tag string) (Descriptor, error) {
	base, relapse := Base(tag)
	if base == Unassigned {
		return Descriptor{Name: Unassigned}, nil
	}
	d, ok := r.desc[base]
	if !ok {
		return Descriptor{}, &UnknownTagError{Tag: tag}
	}
	if relapse {
		d.Label = false
	}
	return d, nil
}

// Degraded returns a resolver that resolves unknown tags
// using the tag as its own geographic name.
// Unknown relapses are not used as labels.
// Each use of an unknown tag is logged as a warning.
func Degraded(r Resolver, logger *zap.Logger) Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return degraded{r: r, logger: logger}
}

type degraded struct {
	r      Resolver
	logger *zap.Logger
}

func (dg degraded) Resolve(tag string) (Descriptor, error) {
	d, err := dg.r.Resolve(tag)
	var unknown *UnknownTagError
	if !errors.As(err, &unknown) {
		return d, err
	}

	dg.logger.Warn("outbreak tag not in registry, using tag as geographic name",
		zap.String("tag", tag),
	)
	return Descriptor{Name: tag, Label: !IsRelapse(tag)}, nil
}
