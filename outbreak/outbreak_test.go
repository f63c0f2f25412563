// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package outbreak_test

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/js-arias/ebov/outbreak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestBase(t *testing.T) {
	tests := []struct {
		tag     string
		base    string
		relapse bool
	}{
		{"Ebov-2013", "Ebov-2013", false},
		{"Ebov-2013/r2021", "Ebov-2013", true},
		{"Ebov-2018b", "Ebov-2018b", false},
		{"Ebov-2018b/r2019", "Ebov-2018b", true},
		{"Ebov-2013/rX", "Ebov-2013/rX", false},
		{"unassigned", "unassigned", false},
	}
	for _, test := range tests {
		base, relapse := outbreak.Base(test.tag)
		if base != test.base || relapse != test.relapse {
			t.Errorf("base %q: got %q, %v, want %q, %v", test.tag, base, relapse, test.base, test.relapse)
		}
	}
}

func TestGroupBy(t *testing.T) {
	samples := map[string]string{
		"d": "Ebov-2018b",
		"a": "Ebov-1995",
		"c": "Ebov-2018b",
		"b": "Ebov-1995",
		"e": "",
	}
	want := []outbreak.Group{
		{Name: "Ebov-1995", Members: []string{"a", "b"}},
		{Name: "Ebov-2018b", Members: []string{"c", "d"}},
	}
	if diff := cmp.Diff(want, outbreak.GroupBy(samples)); diff != "" {
		t.Errorf("groups: (-want +got)\n%s", diff)
	}
}

func TestGroupValidate(t *testing.T) {
	if err := (outbreak.Group{Name: "Ebov-1995", Members: []string{"a"}}).Validate(); err != nil {
		t.Errorf("valid group: unexpected error: %v", err)
	}
	if err := (outbreak.Group{Name: "Ebov-1995"}).Validate(); err == nil {
		t.Errorf("group without members: expecting error")
	}
	if err := (outbreak.Group{Members: []string{"a"}}).Validate(); err == nil {
		t.Errorf("group without tag: expecting error")
	}
}

func TestResolve(t *testing.T) {
	reg := outbreak.Default()

	tests := []struct {
		tag  string
		want outbreak.Descriptor
	}{
		{"Ebov-1995", outbreak.Descriptor{Name: "Kikwit 1995", Label: true}},
		{"Ebov-2018b", outbreak.Descriptor{Name: "Nord-Kivu 2018", Label: true}},
		{"Ebov-2013", outbreak.Descriptor{Name: "West Africa 2013", Label: true}},
		{"Ebov-2013/r2021", outbreak.Descriptor{Name: "West Africa 2013", Label: false}},
		{"unassigned", outbreak.Descriptor{Name: "unassigned", Label: false}},
	}
	for _, test := range tests {
		d, err := reg.Resolve(test.tag)
		if err != nil {
			t.Errorf("resolve %q: unexpected error: %v", test.tag, err)
			continue
		}
		if d != test.want {
			t.Errorf("resolve %q: got %+v, want %+v", test.tag, d, test.want)
		}
	}

	// the stored descriptor is not modified by a relapse
	if d, _ := reg.Descriptor("Ebov-2013"); !d.Label {
		t.Errorf("descriptor %q: label modified by relapse resolution", "Ebov-2013")
	}
}

func TestResolveUnknown(t *testing.T) {
	reg := outbreak.Default()

	for _, tag := range []string{"Ebov-2099", "Ebov-2099/r2100"} {
		_, err := reg.Resolve(tag)
		var unknown *outbreak.UnknownTagError
		if !errors.As(err, &unknown) {
			t.Errorf("resolve %q: got error %v, want UnknownTagError", tag, err)
			continue
		}
		if unknown.Tag != tag {
			t.Errorf("resolve %q: error tag %q", tag, unknown.Tag)
		}
	}
}

func TestDegraded(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	r := outbreak.Degraded(outbreak.Default(), zap.New(core))

	d, err := r.Resolve("Ebov-1995")
	if err != nil {
		t.Fatalf("resolve known tag: %v", err)
	}
	if d.Name != "Kikwit 1995" {
		t.Errorf("resolve known tag: got %q, want %q", d.Name, "Kikwit 1995")
	}
	if logs.Len() != 0 {
		t.Errorf("resolve known tag: got %d warnings, want 0", logs.Len())
	}

	d, err = r.Resolve("Ebov-2099")
	if err != nil {
		t.Fatalf("resolve unknown tag: %v", err)
	}
	if want := (outbreak.Descriptor{Name: "Ebov-2099", Label: true}); d != want {
		t.Errorf("resolve unknown tag: got %+v, want %+v", d, want)
	}

	d, err = r.Resolve("Ebov-2099/r2101")
	if err != nil {
		t.Fatalf("resolve unknown relapse: %v", err)
	}
	if want := (outbreak.Descriptor{Name: "Ebov-2099/r2101", Label: false}); d != want {
		t.Errorf("resolve unknown relapse: got %+v, want %+v", d, want)
	}

	if logs.Len() != 2 {
		t.Errorf("degraded mode: got %d warnings, want 2", logs.Len())
	}
}

func TestAdd(t *testing.T) {
	reg := outbreak.New()

	if err := reg.Add("Ebov-2099", outbreak.Descriptor{Name: "Somewhere 2099", Label: true}); err != nil {
		t.Fatalf("add: unexpected error: %v", err)
	}
	bad := map[string]outbreak.Descriptor{
		"":                {Name: "no tag"},
		"unassigned":      {Name: "reserved"},
		"Ebov-2013/r2021": {Name: "relapse"},
		"Ebov-2100":       {},
	}
	for tag, d := range bad {
		if err := reg.Add(tag, d); err == nil {
			t.Errorf("add %q: expecting error", tag)
		}
	}
	if reg.Len() != 1 {
		t.Errorf("registry size: got %d, want %d", reg.Len(), 1)
	}
}

func TestReadYAML(t *testing.T) {
	doc := `
outbreaks:
  - tag: Ebov-1995
    name: Kikwit 1995
  - tag: Ebov-2013
    name: West Africa 2013
    label: true
  - tag: Ebov-2014
    name: Boende 2014
    label: false
`
	reg, err := outbreak.ReadYAML(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unable to read YAML: %v", err)
	}
	testRegistry(t, "yaml", reg)
}

func TestReadYAMLErrors(t *testing.T) {
	tests := map[string]string{
		"missing name": "outbreaks:\n  - tag: Ebov-1995\n",
		"missing tag":  "outbreaks:\n  - name: Kikwit 1995\n",
		"relapse":      "outbreaks:\n  - tag: Ebov-2013/r2021\n    name: West Africa 2013\n",
		"unknown key":  "outbreaks:\n  - tag: Ebov-1995\n    name: Kikwit 1995\n    color: red\n",
		"repeated":     "outbreaks:\n  - tag: Ebov-1995\n    name: Kikwit 1995\n  - tag: Ebov-1995\n    name: Kikwit\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := outbreak.ReadYAML(strings.NewReader(doc)); err == nil {
				t.Errorf("expecting error")
			}
		})
	}
}

func TestTSV(t *testing.T) {
	in := "# outbreak registry\ntag\tname\tlabel\nEbov-1995\tKikwit 1995\t\nEbov-2013\tWest Africa 2013\ttrue\nEbov-2014\tBoende 2014\tfalse\n"
	reg, err := outbreak.ReadTSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unable to read TSV: %v", err)
	}
	testRegistry(t, "tsv", reg)

	var w bytes.Buffer
	if err := reg.TSV(&w); err != nil {
		t.Fatalf("unable to write TSV: %v", err)
	}
	t.Logf("output:\n%s\n", w.String())

	nr, err := outbreak.ReadTSV(strings.NewReader(w.String()))
	if err != nil {
		t.Fatalf("unable to read written TSV: %v", err)
	}
	testRegistry(t, "tsv-written", nr)
}

func TestReadTSVErrors(t *testing.T) {
	tests := map[string]string{
		"no name field": "tag\tlabel\nEbov-1995\ttrue\n",
		"bad label":     "tag\tname\tlabel\nEbov-1995\tKikwit 1995\tmaybe\n",
		"empty name":    "tag\tname\nEbov-1995\t\n",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := outbreak.ReadTSV(strings.NewReader(in)); err == nil {
				t.Errorf("expecting error")
			}
		})
	}
}

func testRegistry(t testing.TB, name string, reg *outbreak.Registry) {
	t.Helper()

	want := []string{"Ebov-1995", "Ebov-2013", "Ebov-2014"}
	if diff := cmp.Diff(want, reg.Tags()); diff != "" {
		t.Errorf("%s: tags: (-want +got)\n%s", name, diff)
	}

	desc := map[string]outbreak.Descriptor{
		"Ebov-1995": {Name: "Kikwit 1995", Label: true},
		"Ebov-2013": {Name: "West Africa 2013", Label: true},
		"Ebov-2014": {Name: "Boende 2014", Label: false},
	}
	for tag, w := range desc {
		d, ok := reg.Descriptor(tag)
		if !ok {
			t.Errorf("%s: tag %q not found", name, tag)
			continue
		}
		if d != w {
			t.Errorf("%s: tag %q: got %+v, want %+v", name, tag, d, w)
		}
	}
}

func TestReadTSVQuotes(t *testing.T) {
	in := "tag\tname\nEbov-2099\tKinshasa \"Ouest\" 2099\n"
	reg, err := outbreak.ReadTSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unable to read TSV: %v", err)
	}
	d, ok := reg.Descriptor("Ebov-2099")
	if !ok {
		t.Fatalf("tag %q not found", "Ebov-2099")
	}
	if want := `Kinshasa "Ouest" 2099`; d.Name != want {
		t.Errorf("name: got %q, want %q", d.Name, want)
	}
}

func TestAllTags(t *testing.T) {
	tags := outbreak.Default().AllTags()
	if len(tags) != 16 {
		t.Errorf("default tags: got %d, want %d", len(tags), 16)
	}
	if !slices.Contains(tags, "Ebov-2013/r2021") {
		t.Errorf("default tags: relapse %q not found", "Ebov-2013/r2021")
	}

	// relapses of unregistered outbreaks are ignored
	reg := outbreak.New()
	if err := reg.Add("Ebov-1995", outbreak.Descriptor{Name: "Kikwit 1995", Label: true}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if diff := cmp.Diff([]string{"Ebov-1995"}, reg.AllTags()); diff != "" {
		t.Errorf("tags: (-want +got)\n%s", diff)
	}
}
