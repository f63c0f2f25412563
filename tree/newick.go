// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadNewick reads a single tree in newick
// (parenthetical) format.
//
// Labels can be set on terminals and internal nodes,
// and can be quoted with single quotes
// (a doubled quote is a literal quote).
// Unquoted labels are kept verbatim,
// underscores are not replaced by blanks,
// as names are used as keys in metadata tables.
// Branch lengths are optional.
// Comments in square brackets are ignored.
//
// Here is an example:
//
//	((KY426689:0.01,KY426690:0.02)NODE_0000001:0.1,MH733477:0.3)NODE_0000000;
func ReadNewick(r io.Reader) (*Tree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	p := &parser{
		src: string(data),
		b:   newBuilder(),
	}
	p.skip()
	if p.eof() {
		return nil, fmt.Errorf("newick: empty input")
	}
	if err := p.subtree(-1); err != nil {
		return nil, err
	}
	p.skip()
	if p.eof() || p.peek() != ';' {
		return nil, p.errorf("expecting ';'")
	}
	p.pos++
	p.skip()
	if !p.eof() {
		return nil, p.errorf("unexpected data after end of tree")
	}

	t, err := p.b.finish()
	if err != nil {
		return nil, fmt.Errorf("newick: %v", err)
	}
	return t, nil
}

type parser struct {
	src string
	pos int
	b   *builder
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *parser) peek() byte {
	return p.src[p.pos]
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("newick: at byte %d: %s", p.pos, fmt.Sprintf(format, args...))
}

// skip skips blanks and comments.
func (p *parser) skip() {
	for !p.eof() {
		switch c := p.peek(); {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			p.pos++
		case c == '[':
			end := strings.IndexByte(p.src[p.pos:], ']')
			if end < 0 {
				p.pos = len(p.src)
				return
			}
			p.pos += end + 1
		default:
			return
		}
	}
}

// subtree reads a node,
// its descendants,
// its label,
// and its branch length.
func (p *parser) subtree(parent int) error {
	id := p.b.add(parent)

	p.skip()
	if !p.eof() && p.peek() == '(' {
		p.pos++
		for {
			if err := p.subtree(id); err != nil {
				return err
			}
			p.skip()
			if p.eof() {
				return p.errorf("unbalanced parenthesis")
			}
			c := p.peek()
			p.pos++
			if c == ')' {
				break
			}
			if c != ',' {
				return p.errorf("unexpected character %q", c)
			}
		}
	}

	name, err := p.label()
	if err != nil {
		return err
	}
	p.b.setName(id, name)

	p.skip()
	if !p.eof() && p.peek() == ':' {
		p.pos++
		p.skip()
		start := p.pos
		for !p.eof() && !isDelim(p.peek()) {
			p.pos++
		}
		v := p.src[start:p.pos]
		l, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return p.errorf("invalid branch length %q: %v", v, err)
		}
		p.b.setLen(id, l)
	}
	return nil
}

func (p *parser) label() (string, error) {
	p.skip()
	if p.eof() {
		return "", nil
	}
	if p.peek() == '\'' {
		p.pos++
		var sb strings.Builder
		for {
			if p.eof() {
				return "", p.errorf("unterminated quoted label")
			}
			c := p.peek()
			p.pos++
			if c != '\'' {
				sb.WriteByte(c)
				continue
			}
			if !p.eof() && p.peek() == '\'' {
				sb.WriteByte('\'')
				p.pos++
				continue
			}
			return sb.String(), nil
		}
	}

	start := p.pos
	for !p.eof() && !isDelim(p.peek()) {
		p.pos++
	}
	return p.src[start:p.pos], nil
}

func isDelim(c byte) bool {
	switch c {
	case '(', ')', ',', ':', ';', '[', ' ', '\t', '\n', '\r':
		return true
	}
	return false
}
