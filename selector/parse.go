package selector

import (
	"fmt"
	"strings"
)

// Segment is one comma-separated element of a selector.
type Segment struct {
	Path  []string  // slash-separated identifiers; empty for an anonymous element group
	Group []Segment // parenthesized sub-selector, nil when absent
}

// String renders the segment in selector syntax.
func (s Segment) String() string {
	var b strings.Builder
	s.write(&b)

	return b.String()
}

func (s Segment) write(b *strings.Builder) {
	b.WriteString(strings.Join(s.Path, pathSep))

	if s.Group != nil {
		b.WriteByte('(')
		writeSegments(b, s.Group)
		b.WriteByte(')')
	}
}

// Format renders segments back into a selector string.
func Format(segs []Segment) string {
	var b strings.Builder
	writeSegments(&b, segs)

	return b.String()
}

func writeSegments(b *strings.Builder, segs []Segment) {
	for i, s := range segs {
		if i > 0 {
			b.WriteByte(separator)
		}
		s.write(b)
	}
}

// SyntaxError describes a malformed selector.
type SyntaxError struct {
	Offset int // byte offset in the input
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("selector: %s at offset %d", e.Msg, e.Offset)
}

// Parse parses a selector. The empty string yields no segments.
func Parse(s string) ([]Segment, error) {
	if s == "" {
		return nil, nil
	}

	p := &parser{src: s}

	segs, err := p.selector()
	if err != nil {
		return nil, err
	}

	if !p.eof() {
		if p.peek() == ')' {
			return nil, p.errorf("unmatched ')'")
		}

		return nil, p.errorf("unexpected %q", p.peek())
	}

	return segs, nil
}

// Validate reports whether s is a well-formed selector.
func Validate(s string) error {
	_, err := Parse(s)
	return err
}

type parser struct {
	src string
	pos int
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() byte { return p.src[p.pos] }

func (p *parser) errorf(format string, args ...any) *SyntaxError {
	return &SyntaxError{Offset: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) selector() ([]Segment, error) {
	var segs []Segment

	for {
		seg, err := p.segment()
		if err != nil {
			return nil, err
		}

		segs = append(segs, seg)

		if p.eof() || p.peek() != separator {
			return segs, nil
		}

		p.pos++
	}
}

func (p *parser) segment() (Segment, error) {
	var seg Segment

	// A group without a path is the element group of a nested collection.
	if p.eof() || p.peek() != '(' {
		for {
			ident, err := p.ident()
			if err != nil {
				return Segment{}, err
			}

			seg.Path = append(seg.Path, ident)

			if p.eof() || p.peek() != '/' {
				break
			}

			p.pos++
		}
	}

	if !p.eof() && p.peek() == '(' {
		open := p.pos
		p.pos++

		if !p.eof() && p.peek() == ')' {
			return Segment{}, p.errorf("empty group")
		}

		group, err := p.selector()
		if err != nil {
			return Segment{}, err
		}

		if p.eof() || p.peek() != ')' {
			return Segment{}, &SyntaxError{Offset: open, Msg: "unclosed '('"}
		}

		p.pos++
		seg.Group = group
	}

	return seg, nil
}

func (p *parser) ident() (string, error) {
	start := p.pos
	for !p.eof() && !strings.ContainsRune("/(),", rune(p.peek())) {
		p.pos++
	}

	if p.pos == start {
		return "", p.errorf("expected identifier")
	}

	return p.src[start:p.pos], nil
}
