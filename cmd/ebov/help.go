// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(nodeDataGuide)
	app.Add(registryGuide)
}

var registryGuide = &command.Command{
	Usage: "registry",
	Short: "about outbreak registry files",
	Long: `
An outbreak registry defines the geographic name of each outbreak. Outbreaks
are identified by a tag, for example "Ebov-2018b", the name of the outbreak
clade. A tag with a suffix "/r<year>", for example "Ebov-2013/r2021", is a
relapse of an outbreak: it uses the geographic name of the tag without the
suffix, and its name is never used as a branch label. The tag "unassigned" is
reserved for samples without an outbreak.

Ebov includes a built-in registry with the known outbreaks. Use the command
"ebov outbreaks" to print it. Commands that use the registry accept the flag
--registry to read the registry from a file.

A registry file can be a tab-delimited file with the following fields:

	- tag    the outbreak tag, without relapse suffix
	- name   the geographic name of the outbreak
	- label  optional, "false" if the name should not be used
	         as a branch label (default "true")

Here is an example file:

	# outbreak registry
	tag	name	label
	Ebov-1995	Kikwit 1995	true
	Ebov-2018b	Nord-Kivu 2018	true

If the file name ends with ".yaml" or ".yml" the registry is read as a YAML
document with an "outbreaks" list. Here is an example:

	outbreaks:
	  - tag: Ebov-1995
	    name: Kikwit 1995
	  - tag: Ebov-2018b
	    name: Nord-Kivu 2018
	    label: true

Tags and names are required, and tags must be unique.
	`,
}

var nodeDataGuide = &command.Command{
	Usage: "nodedata",
	Short: "about node data files",
	Long: `
Node data files are JSON files that store attributes of the nodes of a tree,
as used by augur and auspice. Nodes are identified by their names, so unnamed
internal nodes are not included.

The file contains a "nodes" object, with the attributes of each node, and
optionally a "branches" object, with the labels of the branch that ends in a
node. Here is an example file:

	{
	  "nodes": {
	    "KY426689": {"outbreak": "Ebov-2013", "outbreak_geo": "West Africa 2013"},
	    "NODE_0000001": {"outbreak": "Ebov-2013", "outbreak_geo": "West Africa 2013"}
	  },
	  "branches": {
	    "NODE_0000001": {"labels": {"outbreak": "Ebov-2013", "outbreak_geo": "West Africa 2013"}}
	  }
	}

The command "ebov label" writes the attributes "outbreak" (the outbreak tag)
and "outbreak_geo" (the geographic name), and the branch labels of the most
recent common ancestor of each outbreak. The command "ebov years" writes the
attribute "year". The command "ebov hidden" writes the attribute "hidden".

Keys are always written in alphabetical order, so the same input always
produces the same file.
	`,
}
