// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package draw implements a command to draw
// a tree with outbreak labels as an SVG file.
package draw

import (
	"bufio"
	"fmt"
	"io"

	"github.com/js-arias/command"
	"github.com/js-arias/ebov/cmd/ebov/input"
	"github.com/js-arias/ebov/cmd/ebov/logger"
	"github.com/js-arias/ebov/label"
	"github.com/js-arias/ebov/metadata"
	"github.com/js-arias/ebov/palette"
)

var Command = &command.Command{
	Usage: `draw --metadata <metadata-file>
	[--id-columns <column-list>] [--column <name>]
	[--tsv <tree-name>]
	[--registry <file>] [--degraded]
	[--iridescent] [--step <value>]
	[-o|--output <file>] [<tree-file>]`,
	Short: "draw a tree with outbreak labels",
	Long: `
Command draw reads a phylogenetic tree and a metadata table, labels the tree
with outbreaks (as in the command "ebov label"), and draws the tree into a
SVG-encoded file. Branches are colored by outbreak, using the suggested
outbreak colors, and the branch that ends in the most recent common ancestor
of each outbreak is labeled with the geographic name of the outbreak (or the
outbreak tag, if the geographic name is not used as a label).

The argument of the command is the tree file. If no file is given, or the file
is "-", the tree will be read from the standard input. By default the tree is
expected to be a newick tree. Use the flag --tsv with the name of a tree to
read it from a PhyGeo tab-delimited tree file.

The flags --metadata, --id-columns, --column, --registry, and --degraded work
as in the command "ebov label". Use the flag --iridescent to use a color
blind safe scale.

By default, 100 pixel units will be used per branch length unit; use the flag
--step to define a different value (it can have decimal points). If the tree
does not have branch lengths, each branch will have a length of one unit.

By default, the output is written to the standard output. Use the flag -o, or
--output, to define an output file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var degraded bool
var iridescent bool
var stepX float64
var column string
var idColumns string
var metaFile string
var output string
var regFile string
var tsvTree string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&degraded, "degraded", false, "")
	c.Flags().BoolVar(&iridescent, "iridescent", false, "")
	c.Flags().Float64Var(&stepX, "step", 100, "")
	c.Flags().StringVar(&column, "column", metadata.Outbreak, "")
	c.Flags().StringVar(&idColumns, "id-columns", metadata.DefaultID, "")
	c.Flags().StringVar(&metaFile, "metadata", "", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
	c.Flags().StringVar(&regFile, "registry", "", "")
	c.Flags().StringVar(&tsvTree, "tsv", "", "")
}

func run(c *command.Command, args []string) error {
	if metaFile == "" {
		return c.UsageError("expecting metadata file, flag --metadata")
	}
	if stepX <= 0 {
		return c.UsageError(fmt.Sprintf("invalid --step value %.6f", stepX))
	}
	var treeFile string
	if len(args) > 0 {
		treeFile = args[0]
	}

	log := logger.New(c.Stderr(), false)
	defer log.Sync()

	t, err := input.Tree(c.Stdin(), treeFile, tsvTree)
	if err != nil {
		return err
	}
	m, err := metadata.Read(metaFile, input.IDColumns(idColumns))
	if err != nil {
		return err
	}
	groups, err := m.Groups(column)
	if err != nil {
		return fmt.Errorf("on file %q: %w", metaFile, err)
	}

	reg, err := input.Registry(regFile)
	if err != nil {
		return err
	}
	r := input.Resolver(reg, degraded, log)

	lb, err := label.Outbreaks(t, groups, r, label.WithLogger(log))
	if err != nil {
		return err
	}
	s, err := outbreakScale(lb, input.Scheme(iridescent))
	if err != nil {
		return err
	}

	st := copyTree(t, lb, s, stepX)
	return input.Output(c.Stdout(), output, st.write)
}

// outbreakScale returns the color scale
// of the outbreaks used as labels.
func outbreakScale(lb *label.Labels, scheme palette.Scheme) (palette.Scale, error) {
	var tags []string
	for _, tag := range lb.Tags() {
		if tag == palette.Unassigned {
			continue
		}
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		return nil, nil
	}
	s, err := palette.Assign(tags, palette.Year, scheme)
	if err != nil {
		return nil, fmt.Errorf("while assigning colors: %w", err)
	}
	return s, nil
}

func (s *svgTree) write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if err := s.draw(bw); err != nil {
		return err
	}
	return bw.Flush()
}
