// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package hidden implements a command to flag
// nodes as hidden in a node data file.
package hidden

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/ebov/cmd/ebov/input"
	"github.com/js-arias/ebov/nodedata"
)

var Command = &command.Command{
	Usage: `hidden [--attr <name>] [--value <value>]
	<node-data-file> [<output-file>]`,
	Short: "flag nodes as hidden",
	Long: `
Command hidden reads a node data JSON file, and writes a new node data file in
which the nodes with a given attribute value are flagged as hidden in the
time tree view of auspice (i.e., with the attribute "hidden" set to
"timetree"). Other nodes are not included in the output.

The first argument of the command is the input node data file. The second
argument is the output file. If no output file is given, the result will be
printed in the standard output.

By default, nodes with the value "unassigned" in the attribute
"clade_membership" are flagged. Use the flag --attr to define a different
attribute, and the flag --value to define a different value.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var attrFlag string
var valueFlag string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&attrFlag, "attr", "clade_membership", "")
	c.Flags().StringVar(&valueFlag, "value", "unassigned", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting node data file")
	}
	var out string
	if len(args) > 1 {
		out = args[1]
	}

	d, err := readNodeData(args[0])
	if err != nil {
		return err
	}

	h := d.Hide(attrFlag, valueFlag)
	return input.Output(c.Stdout(), out, h.Write)
}

func readNodeData(name string) (*nodedata.Data, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := nodedata.Read(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return d, nil
}
