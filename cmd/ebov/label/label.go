// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package label implements a command to label
// the nodes of a tree with outbreaks.
package label

import (
	"fmt"
	"slices"

	"github.com/js-arias/command"
	"github.com/js-arias/ebov/cmd/ebov/input"
	"github.com/js-arias/ebov/cmd/ebov/logger"
	"github.com/js-arias/ebov/label"
	"github.com/js-arias/ebov/metadata"
	"github.com/js-arias/ebov/outbreak"
	"github.com/js-arias/ebov/palette"
	"go.uber.org/zap"
)

var Command = &command.Command{
	Usage: `label --metadata <metadata-file>
	[--id-columns <column-list>] [--column <name>]
	[--tsv <tree-name>]
	[--registry <file>] [--degraded]
	[--all] [--iridescent] [--verbose]
	[-o|--output <file>] [<tree-file>]`,
	Short: "label tree nodes with outbreaks",
	Long: `
Command label reads a phylogenetic tree and a metadata table, and assigns to
each node of the tree the outbreak in which it is included. The result is
written as a node data JSON file, as used by augur and auspice.

The argument of the command is the tree file. If no file is given, or the file
is "-", the tree will be read from the standard input. By default the tree is
expected to be a newick tree. Use the flag --tsv with the name of a tree to
read it from a PhyGeo tab-delimited tree file.

The flag --metadata is required, and defines the metadata file. It is a
tab-delimited file in which each row is a sample. Samples are identified by
the first column found of the list of columns defined by the flag
--id-columns, a comma separated list (default "accession"). The outbreak of
each sample is read from the column "outbreak", use the flag --column to
define a different column. Samples without outbreak are ignored.

For each outbreak, the most recent common ancestor (MRCA) of its samples is
found, and every node descendant of that MRCA is labeled with the outbreak tag
(attribute "outbreak") and its geographic name (attribute "outbreak_geo").
When outbreaks are nested, the nodes of the nested outbreak keep the nested
outbreak label. The branch that ends at each MRCA is labeled with the
outbreak tag (except for "unassigned") and the geographic name (except for
relapses, i.e., tags with a "/r<year>" suffix).

Geographic names are taken from the built-in outbreak registry. Use the flag
--registry to read the registry from a file (see "ebov help registry"). By
default an outbreak tag not found in the registry is an error. If the flag
--degraded is given, the tag will be used as its own geographic name, and a
warning will be reported.

By default, the output is written to the standard output. Use the flag -o, or
--output, to define an output file.

After labeling, the command suggests a color scale for the outbreak tags and
the geographic names, as auspice configuration entries. Colors are assigned
by outbreak year. By default only the tags used in the tree are colored; use
the flag --all to color all the tags in the registry too, together with the
known relapses of the registered outbreaks (e.g., "Ebov-2013/r2021"). Use the flag
--iridescent to use a color blind safe scale. If the output is the standard
output, the suggestion will be printed in the standard error.

Diagnostic messages (the MRCA of each outbreak, and labels overwritten by
nested outbreaks) are printed in the standard error. Use the flag --verbose
to print debug messages.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var allTags bool
var degraded bool
var iridescent bool
var verbose bool
var column string
var idColumns string
var metaFile string
var output string
var regFile string
var tsvTree string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&allTags, "all", false, "")
	c.Flags().BoolVar(&degraded, "degraded", false, "")
	c.Flags().BoolVar(&iridescent, "iridescent", false, "")
	c.Flags().BoolVar(&verbose, "verbose", false, "")
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
	var treeFile string
	if len(args) > 0 {
		treeFile = args[0]
	}

	log := logger.New(c.Stderr(), verbose)
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
	log.Debug("metadata read",
		zap.String("file", metaFile),
		zap.String("id", m.ID()),
		zap.Int("outbreaks", len(groups)),
	)

	reg, err := input.Registry(regFile)
	if err != nil {
		return err
	}
	r := input.Resolver(reg, degraded, log)

	lb, err := label.Outbreaks(t, groups, r, label.WithLogger(log))
	if err != nil {
		return err
	}

	tags := lb.Tags()
	if allTags {
		tags = slices.Concat(tags, reg.AllTags())
	}
	var cs []palette.Coloring
	if slices.ContainsFunc(tags, isTag) {
		cs, err = palette.Outbreaks(tags, r, input.Scheme(iridescent))
		if err != nil {
			return fmt.Errorf("while suggesting colors: %w", err)
		}
	}

	d := lb.NodeData(t)
	if err := input.Output(c.Stdout(), output, d.Write); err != nil {
		return err
	}

	report := c.Stdout()
	if output == "" || output == "-" {
		report = c.Stderr()
	}
	return input.Colorings(report, cs)
}

func isTag(tag string) bool {
	return tag != outbreak.Unassigned
}
