// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package years implements a command to write
// the sampling year of the samples
// as node data.
package years

import (
	"fmt"
	"maps"
	"slices"

	"github.com/js-arias/command"
	"github.com/js-arias/ebov/cmd/ebov/input"
	"github.com/js-arias/ebov/metadata"
	"github.com/js-arias/ebov/nodedata"
	"github.com/js-arias/ebov/palette"
)

var Command = &command.Command{
	Usage: `years [--id-columns <column-list>] [--column <name>]
	[--iridescent] [-o|--output <file>]
	<metadata-file>`,
	Short: "write sampling years as node data",
	Long: `
Command years reads a metadata table and writes the sampling year of each
sample as a node data JSON file (attribute "year").

The argument of the command is the metadata file. It is a tab-delimited file
in which each row is a sample. Samples are identified by the first column
found of the list of columns defined by the flag --id-columns, a comma
separated list (default "accession"). The year is the first part of the value
of the column "date" (in the format "YYYY-MM-DD"), use the flag --column to
define a different column. Samples without a date, or with a masked year
(e.g., "XXXX-XX-XX"), are ignored.

By default, the output is written to the standard output. Use the flag -o, or
--output, to define an output file.

After writing the years, the command suggests a color scale for the years, as
an auspice configuration entry. Use the flag --iridescent to use a color blind
safe scale. If the output is the standard output, the suggestion will be
printed in the standard error. If no suggestion can be made, a message is
printed, but the command does not fail.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var iridescent bool
var column string
var idColumns string
var output string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&iridescent, "iridescent", false, "")
	c.Flags().StringVar(&column, "column", metadata.Date, "")
	c.Flags().StringVar(&idColumns, "id-columns", metadata.DefaultID, "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

// Attr is the node data attribute
// used for the sampling year.
const Attr = "year"

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting metadata file")
	}

	m, err := metadata.Read(args[0], input.IDColumns(idColumns))
	if err != nil {
		return err
	}
	years, err := m.Years(column)
	if err != nil {
		return fmt.Errorf("on file %q: %w", args[0], err)
	}

	d := nodedata.New()
	for id, y := range years {
		d.Set(id, Attr, y)
	}
	if err := input.Output(c.Stdout(), output, d.Write); err != nil {
		return err
	}

	report := c.Stdout()
	if output == "" || output == "-" {
		report = c.Stderr()
	}

	ys := slices.Sorted(maps.Values(years))
	s, err := palette.Assign(slices.Compact(ys), palette.Year, input.Scheme(iridescent))
	if err != nil {
		fmt.Fprintf(report, "Failed to suggest colours for the auspice config: %v\n", err)
		return nil
	}
	return input.Colorings(report, []palette.Coloring{
		palette.Categorical(Attr, "Sampling Year", s),
	})
}
