// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package label_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/js-arias/ebov/label"
	"github.com/js-arias/ebov/nodedata"
	"github.com/js-arias/ebov/outbreak"
	"github.com/js-arias/ebov/tree"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func readTree(t testing.TB, nw string) *tree.Tree {
	t.Helper()

	tr, err := tree.ReadNewick(strings.NewReader(nw))
	if err != nil {
		t.Fatalf("unable to read tree %q: %v", nw, err)
	}
	return tr
}

func nodeID(t testing.TB, tr *tree.Tree, name string) int {
	t.Helper()

	for id := range tr.Preorder() {
		if tr.Name(id) == name {
			return id
		}
	}
	t.Fatalf("node %q not found", name)
	return -1
}

func TestDisjointOutbreaks(t *testing.T) {
	tr := readTree(t, "((a,b)AB,(c,d)CD)root;")
	groups := []outbreak.Group{
		{Name: "Ebov-2018b", Members: []string{"c", "d"}},
		{Name: "Ebov-1995", Members: []string{"a", "b"}},
	}

	lb, err := label.Outbreaks(tr, groups, outbreak.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	d := lb.NodeData(tr)
	want := &nodedata.Data{
		Nodes: map[string]nodedata.Attrs{
			"a":  {"outbreak": "Ebov-1995", "outbreak_geo": "Kikwit 1995"},
			"b":  {"outbreak": "Ebov-1995", "outbreak_geo": "Kikwit 1995"},
			"AB": {"outbreak": "Ebov-1995", "outbreak_geo": "Kikwit 1995"},
			"c":  {"outbreak": "Ebov-2018b", "outbreak_geo": "Nord-Kivu 2018"},
			"d":  {"outbreak": "Ebov-2018b", "outbreak_geo": "Nord-Kivu 2018"},
			"CD": {"outbreak": "Ebov-2018b", "outbreak_geo": "Nord-Kivu 2018"},
		},
		Branches: map[string]nodedata.Branch{
			"AB": {Labels: map[string]string{"outbreak": "Ebov-1995", "outbreak_geo": "Kikwit 1995"}},
			"CD": {Labels: map[string]string{"outbreak": "Ebov-2018b", "outbreak_geo": "Nord-Kivu 2018"}},
		},
	}
	if diff := cmp.Diff(want, d); diff != "" {
		t.Errorf("node data: (-want +got)\n%s", diff)
	}
	if len(lb.Overwrites) != 0 {
		t.Errorf("overwrites: got %d, want 0", len(lb.Overwrites))
	}
	if diff := cmp.Diff([]string{"Ebov-1995", "Ebov-2018b"}, lb.Tags()); diff != "" {
		t.Errorf("tags: (-want +got)\n%s", diff)
	}
}

func TestUnnamedInternalNodes(t *testing.T) {
	tr := readTree(t, "((a,b),(c,d));")
	groups := []outbreak.Group{
		{Name: "Ebov-1995", Members: []string{"a", "b"}},
		{Name: "Ebov-2018b", Members: []string{"c", "d"}},
	}

	lb, err := label.Outbreaks(tr, groups, outbreak.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lb.Nodes) != 6 {
		t.Errorf("labeled nodes: got %d, want %d", len(lb.Nodes), 6)
	}
	if len(lb.Branches) != 2 {
		t.Errorf("branch labels: got %d, want %d", len(lb.Branches), 2)
	}

	d := lb.NodeData(tr)
	if diff := cmp.Diff([]string{"a", "b", "c", "d"}, d.Names()); diff != "" {
		t.Errorf("node data names: (-want +got)\n%s", diff)
	}
	if len(d.Branches) != 0 {
		t.Errorf("node data branches: got %d, want 0", len(d.Branches))
	}
}

func TestNestedOutbreaks(t *testing.T) {
	tr := readTree(t, "(((a,b)B,c)A,d)root;")
	groups := []outbreak.Group{
		{Name: "Ebov-2013/r2021", Members: []string{"a", "b"}},
		{Name: "Ebov-2013", Members: []string{"a", "b", "c"}},
	}

	core, logs := observer.New(zap.InfoLevel)
	lb, err := label.Outbreaks(tr, groups, outbreak.Default(), label.WithLogger(zap.New(core)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	nodes := map[string]label.NodeLabel{
		"A": {Outbreak: "Ebov-2013", Geo: "West Africa 2013"},
		"c": {Outbreak: "Ebov-2013", Geo: "West Africa 2013"},
		"B": {Outbreak: "Ebov-2013/r2021", Geo: "West Africa 2013"},
		"a": {Outbreak: "Ebov-2013/r2021", Geo: "West Africa 2013"},
		"b": {Outbreak: "Ebov-2013/r2021", Geo: "West Africa 2013"},
	}
	for name, w := range nodes {
		id := nodeID(t, tr, name)
		nl, ok := lb.Nodes[id]
		if !ok {
			t.Errorf("node %q: not labeled", name)
			continue
		}
		if nl != w {
			t.Errorf("node %q: got %+v, want %+v", name, nl, w)
		}
	}
	for _, name := range []string{"root", "d"} {
		if nl, ok := lb.Nodes[nodeID(t, tr, name)]; ok {
			t.Errorf("node %q: unexpected label %+v", name, nl)
		}
	}

	branches := map[string]label.BranchLabel{
		"A": {Outbreak: "Ebov-2013", Geo: "West Africa 2013"},
		"B": {Outbreak: "Ebov-2013/r2021"},
	}
	if len(lb.Branches) != len(branches) {
		t.Errorf("branch labels: got %d, want %d", len(lb.Branches), len(branches))
	}
	for name, w := range branches {
		if bl := lb.Branches[nodeID(t, tr, name)]; bl != w {
			t.Errorf("branch %q: got %+v, want %+v", name, bl, w)
		}
	}

	// relapse branch label has no geographic name
	d := lb.NodeData(tr)
	if _, ok := d.Branches["B"].Labels["outbreak_geo"]; ok {
		t.Errorf("branch %q: relapse with geographic label", "B")
	}

	if len(lb.Overwrites) != 3 {
		t.Errorf("overwrites: got %d, want 3", len(lb.Overwrites))
	}
	for _, o := range lb.Overwrites {
		if o.From != "Ebov-2013" || o.To != "Ebov-2013/r2021" {
			t.Errorf("overwrite of node %q: from %q to %q", tr.Name(o.Node), o.From, o.To)
		}
	}
	if n := logs.FilterMessage("overwriting outbreak label").Len(); n != 3 {
		t.Errorf("overwrite logs: got %d, want 3", n)
	}
	if n := logs.FilterMessage("outbreak MRCA").Len(); n != 2 {
		t.Errorf("MRCA logs: got %d, want 2", n)
	}
}

func TestUnassigned(t *testing.T) {
	tr := readTree(t, "((a,b)U,(c,d)K)root;")
	groups := []outbreak.Group{
		{Name: "unassigned", Members: []string{"a", "b"}},
		{Name: "Ebov-1995", Members: []string{"c", "d"}},
	}

	lb, err := label.Outbreaks(tr, groups, outbreak.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d := lb.NodeData(tr)

	want := nodedata.Attrs{"outbreak": "unassigned", "outbreak_geo": "unassigned"}
	if diff := cmp.Diff(want, d.Nodes["a"]); diff != "" {
		t.Errorf("node %q: (-want +got)\n%s", "a", diff)
	}
	b, ok := d.Branches["U"]
	if !ok {
		t.Fatalf("branch %q: not found", "U")
	}
	if len(b.Labels) != 0 {
		t.Errorf("branch %q: got labels %v, want none", "U", b.Labels)
	}
}

func TestDiagnostics(t *testing.T) {
	tr := readTree(t, "(((a,b)B,c,e)A,d)root;")
	groups := []outbreak.Group{
		{Name: "Ebov-2013", Members: []string{"a", "c"}},
		{Name: "Ebov-1995", Members: []string{"d"}},
	}

	var got []label.MRCA
	lb, err := label.Outbreaks(tr, groups, outbreak.Default(), label.WithDiagnostics(func(m label.MRCA) {
		got = append(got, m)
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []label.MRCA{
		{Outbreak: "Ebov-1995", Node: nodeID(t, tr, "d"), Members: 1, Terms: 1},
		{Outbreak: "Ebov-2013", Node: nodeID(t, tr, "A"), Members: 2, Terms: 4},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("diagnostics: (-want +got)\n%s", diff)
	}
	if diff := cmp.Diff(want, lb.MRCAs); diff != "" {
		t.Errorf("MRCAs: (-want +got)\n%s", diff)
	}
}

func TestErrors(t *testing.T) {
	tr := readTree(t, "((a,b)X,(c,d)Y)root;")

	t.Run("not found", func(t *testing.T) {
		groups := []outbreak.Group{
			{Name: "Ebov-1995", Members: []string{"a", "zz"}},
		}
		_, err := label.Outbreaks(tr, groups, outbreak.Default())
		var nf *tree.NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("got error %v, want NotFoundError", err)
		}
		if !strings.Contains(err.Error(), "Ebov-1995") {
			t.Errorf("error %q does not identify the outbreak", err)
		}
	})

	t.Run("ambiguous", func(t *testing.T) {
		groups := []outbreak.Group{
			{Name: "Ebov-2003", Members: []string{"b", "a"}},
			{Name: "Ebov-1995", Members: []string{"a", "b"}},
		}
		_, err := label.Outbreaks(tr, groups, outbreak.Default())
		var ag *label.AmbiguousGroupingError
		if !errors.As(err, &ag) {
			t.Fatalf("got error %v, want AmbiguousGroupingError", err)
		}
		if ag.Outbreaks != [2]string{"Ebov-1995", "Ebov-2003"} {
			t.Errorf("ambiguous outbreaks: got %v", ag.Outbreaks)
		}
		if ag.Node != nodeID(t, tr, "X") {
			t.Errorf("ambiguous node: got %d, want %d", ag.Node, nodeID(t, tr, "X"))
		}
	})

	t.Run("unknown tag", func(t *testing.T) {
		groups := []outbreak.Group{
			{Name: "Ebov-2099", Members: []string{"a", "b"}},
		}
		_, err := label.Outbreaks(tr, groups, outbreak.Default())
		var unknown *outbreak.UnknownTagError
		if !errors.As(err, &unknown) {
			t.Fatalf("got error %v, want UnknownTagError", err)
		}
	})

	t.Run("empty group", func(t *testing.T) {
		groups := []outbreak.Group{
			{Name: "Ebov-1995"},
		}
		if _, err := label.Outbreaks(tr, groups, outbreak.Default()); err == nil {
			t.Fatalf("expecting error")
		}
	})

	t.Run("repeated group", func(t *testing.T) {
		groups := []outbreak.Group{
			{Name: "Ebov-1995", Members: []string{"a", "b"}},
			{Name: "Ebov-1995", Members: []string{"c", "d"}},
		}
		if _, err := label.Outbreaks(tr, groups, outbreak.Default()); err == nil {
			t.Fatalf("expecting error")
		}
	})
}

func TestDegradedMode(t *testing.T) {
	tr := readTree(t, "((a,b)X,(c,d)Y)root;")
	groups := []outbreak.Group{
		{Name: "Ebov-2099", Members: []string{"a", "b"}},
	}

	core, logs := observer.New(zap.WarnLevel)
	logger := zap.New(core)
	lb, err := label.Outbreaks(tr, groups, outbreak.Degraded(outbreak.Default(), logger), label.WithLogger(logger))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := label.NodeLabel{Outbreak: "Ebov-2099", Geo: "Ebov-2099"}
	if nl := lb.Nodes[nodeID(t, tr, "a")]; nl != want {
		t.Errorf("node %q: got %+v, want %+v", "a", nl, want)
	}
	if logs.Len() == 0 {
		t.Errorf("degraded mode: no warning logged")
	}
}

func TestIdempotent(t *testing.T) {
	tr := readTree(t, "(((a,b)B,c)A,((d,e)D,f)F,g)root;")
	groups := []outbreak.Group{
		{Name: "Ebov-2013", Members: []string{"a", "b", "c"}},
		{Name: "Ebov-2013/r2021", Members: []string{"a", "b"}},
		{Name: "Ebov-2018b", Members: []string{"d", "f"}},
		{Name: "unassigned", Members: []string{"g"}},
	}
	reversed := []outbreak.Group{groups[3], groups[2], groups[1], groups[0]}

	var outputs []string
	for _, gs := range [][]outbreak.Group{groups, groups, reversed} {
		lb, err := label.Outbreaks(tr, gs, outbreak.Default())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var w bytes.Buffer
		if err := lb.NodeData(tr).Write(&w); err != nil {
			t.Fatalf("unable to write node data: %v", err)
		}
		outputs = append(outputs, w.String())
	}
	for i := 1; i < len(outputs); i++ {
		if outputs[i] != outputs[0] {
			t.Errorf("run %d: output differs:\n%s\nwant:\n%s", i, outputs[i], outputs[0])
		}
	}
}

func TestRepeatedInternalNames(t *testing.T) {
	// support values as internal labels
	tr := readTree(t, "((a,b)100,(c,d)100)root;")
	groups := []outbreak.Group{
		{Name: "Ebov-1995", Members: []string{"a", "b"}},
		{Name: "Ebov-2018b", Members: []string{"c", "d"}},
	}

	var first string
	for i := 0; i < 50; i++ {
		lb, err := label.Outbreaks(tr, groups, outbreak.Default())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		d := lb.NodeData(tr)

		// the last node in preorder is kept
		want := nodedata.Attrs{"outbreak": "Ebov-2018b", "outbreak_geo": "Nord-Kivu 2018"}
		if diff := cmp.Diff(want, d.Nodes["100"]); diff != "" {
			t.Fatalf("node %q: (-want +got)\n%s", "100", diff)
		}
		wantBranch := map[string]string{"outbreak": "Ebov-2018b", "outbreak_geo": "Nord-Kivu 2018"}
		if diff := cmp.Diff(wantBranch, d.Branches["100"].Labels); diff != "" {
			t.Fatalf("branch %q: (-want +got)\n%s", "100", diff)
		}

		var w bytes.Buffer
		if err := d.Write(&w); err != nil {
			t.Fatalf("unable to write node data: %v", err)
		}
		if i == 0 {
			first = w.String()
			continue
		}
		if w.String() != first {
			t.Fatalf("run %d: output differs:\n%s\nwant:\n%s", i, w.String(), first)
		}
	}
}
