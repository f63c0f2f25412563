// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package outbreaks implements a command to print
// the outbreak registry.
package outbreaks

import (
	"github.com/js-arias/command"
	"github.com/js-arias/ebov/cmd/ebov/input"
)

var Command = &command.Command{
	Usage: `outbreaks [--registry <file>] [-o|--output <file>]`,
	Short: "print the outbreak registry",
	Long: `
Command outbreaks prints the outbreak registry, i.e., the outbreak tags and
their geographic names, as a tab-delimited file.

By default the built-in registry is printed. Use the flag --registry to read
the registry from a file (see "ebov help registry"). As the output is a valid
registry file, this command can be used to start a new registry from the
built-in one.

By default, the output is written to the standard output. Use the flag -o, or
--output, to define an output file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var output string
var regFile string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
	c.Flags().StringVar(&regFile, "registry", "", "")
}

func run(c *command.Command, args []string) error {
	reg, err := input.Registry(regFile)
	if err != nil {
		return err
	}
	return input.Output(c.Stdout(), output, reg.TSV)
}
