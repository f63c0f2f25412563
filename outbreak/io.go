// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package outbreak

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// entry is a registry entry as stored in a file.
type entry struct {
	Tag   string `yaml:"tag" validate:"required,max=64"`
	Name  string `yaml:"name" validate:"required,max=128"`
	Label *bool  `yaml:"label"`
}

func (e entry) add(r *Registry) error {
	if err := validate.Struct(e); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			return fmt.Errorf("field %q: failed %q validation", strings.ToLower(ve[0].Field()), ve[0].Tag())
		}
		return err
	}
	d := Descriptor{
		Name:  e.Name,
		Label: true,
	}
	if e.Label != nil {
		d.Label = *e.Label
	}
	if _, dup := r.desc[e.Tag]; dup {
		return fmt.Errorf("tag %q repeated", e.Tag)
	}
	return r.Add(e.Tag, d)
}

// Read reads a registry file.
// If the file extension is ".yaml" or ".yml"
// it will be read as a YAML file,
// otherwise it will be read as a TSV file.
func Read(name string) (*Registry, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r *Registry
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		r, err = ReadYAML(f)
	default:
		r, err = ReadTSV(f)
	}
	if err != nil {
		return nil, fmt.Errorf("on file %q: %w", name, err)
	}
	return r, nil
}

// ReadYAML reads a registry from a YAML document.
//
// The document must contain an "outbreaks" list,
// each element with the fields:
//
//   - tag, the base outbreak tag
//   - name, the geographic name
//   - label, optional, false if the name
//     should not be used as a branch label
//     (default true)
//
// Here is an example:
//
//	outbreaks:
//	  - tag: Ebov-1995
//	    name: Kikwit 1995
//	  - tag: Ebov-2018b
//	    name: Nord-Kivu 2018
//	    label: true
func ReadYAML(r io.Reader) (*Registry, error) {
	var doc struct {
		Outbreaks []entry `yaml:"outbreaks"`
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("while decoding YAML: %v", err)
	}

	reg := New()
	for i, e := range doc.Outbreaks {
		if err := e.add(reg); err != nil {
			return nil, fmt.Errorf("outbreak %d: %v", i+1, err)
		}
	}
	return reg, nil
}

// ReadTSV reads a registry from a TSV file.
//
// The TSV file must contain the following fields:
//
//   - tag, the base outbreak tag
//   - name, the geographic name
//
// Optionally it can contain the field:
//
//   - label, "true" or "false"
//     (if empty, true is assumed)
//
// Any other columns will be ignored.
// Here is an example file:
//
//	# outbreak registry
//	tag	name	label
//	Ebov-1995	Kikwit 1995	true
//	Ebov-2018b	Nord-Kivu 2018	true
func ReadTSV(r io.Reader) (*Registry, error) {
	tab := csv.NewReader(r)
	tab.Comma = '\t'
	tab.Comment = '#'
	tab.LazyQuotes = true

	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(strings.TrimSpace(h))
		fields[h] = i
	}
	for _, h := range []string{"tag", "name"} {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	reg := New()
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		e := entry{
			Tag:  strings.TrimSpace(row[fields["tag"]]),
			Name: strings.Join(strings.Fields(row[fields["name"]]), " "),
		}

		f := "label"
		if i, ok := fields[f]; ok {
			if v := strings.TrimSpace(row[i]); v != "" {
				lb, err := strconv.ParseBool(v)
				if err != nil {
					return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
				}
				e.Label = &lb
			}
		}

		if err := e.add(reg); err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}
	}
	return reg, nil
}

// TSV writes a registry as a TSV file.
func (r *Registry) TSV(w io.Writer) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	header := []string{"tag", "name", "label"}
	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	for _, tag := range r.Tags() {
		d := r.desc[tag]
		row := []string{
			tag,
			d.Name,
			strconv.FormatBool(d.Label),
		}
		if err := tab.Write(row); err != nil {
			return fmt.Errorf("when writing data: %v", err)
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}
