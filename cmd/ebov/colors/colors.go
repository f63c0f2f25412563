// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package colors implements a command to suggest
// outbreak colors.
package colors

import (
	"github.com/js-arias/command"
	"github.com/js-arias/ebov/cmd/ebov/input"
	"github.com/js-arias/ebov/cmd/ebov/logger"
	"github.com/js-arias/ebov/palette"
)

var Command = &command.Command{
	Usage: `colors [--registry <file>] [--degraded]
	[--iridescent] [<tag>...]`,
	Short: "suggest colors for outbreaks",
	Long: `
Command colors prints the suggested color scales for a set of outbreak tags,
and their geographic names, as auspice configuration entries.

The arguments of the command are the outbreak tags. If no tag is given, all
the tags in the outbreak registry, and the known relapses of the registered
outbreaks, will be used.

Colors are assigned by outbreak year, i.e., the last four-digit number in the
tag (so relapses are sorted by its relapse year). By default the colors are
taken from the fixed auspice palettes. Use the flag --iridescent to use a
color blind safe scale.

Geographic names are taken from the built-in outbreak registry. Use the flag
--registry to read the registry from a file (see "ebov help registry"). If
the flag --degraded is given, a tag not found in the registry will be used as
its own geographic name.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var degraded bool
var iridescent bool
var regFile string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&degraded, "degraded", false, "")
	c.Flags().BoolVar(&iridescent, "iridescent", false, "")
	c.Flags().StringVar(&regFile, "registry", "", "")
}

func run(c *command.Command, args []string) error {
	reg, err := input.Registry(regFile)
	if err != nil {
		return err
	}
	log := logger.New(c.Stderr(), false)
	defer log.Sync()

	tags := args
	if len(tags) == 0 {
		tags = reg.AllTags()
	}

	cs, err := palette.Outbreaks(tags, input.Resolver(reg, degraded, log), input.Scheme(iridescent))
	if err != nil {
		return err
	}
	return input.Colorings(c.Stdout(), cs)
}
