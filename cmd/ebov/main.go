// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Ebov is a tool to annotate Ebola virus phylogenies
// with outbreaks.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/ebov/cmd/ebov/colors"
	"github.com/js-arias/ebov/cmd/ebov/draw"
	"github.com/js-arias/ebov/cmd/ebov/hidden"
	"github.com/js-arias/ebov/cmd/ebov/label"
	"github.com/js-arias/ebov/cmd/ebov/outbreaks"
	"github.com/js-arias/ebov/cmd/ebov/years"
)

var app = &command.Command{
	Usage: "ebov <command> [<argument>...]",
	Short: "a tool to annotate Ebola virus phylogenies",
}

func init() {
	app.Add(colors.Command)
	app.Add(draw.Command)
	app.Add(hidden.Command)
	app.Add(label.Command)
	app.Add(outbreaks.Command)
	app.Add(years.Command)
}

func main() {
	app.Main()
}
