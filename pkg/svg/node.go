// Package svg provides a minimal typed node tree for building SVG documents.
//
// Nodes are plain values: an element has a tag, attributes kept in the
// order they were added, and children. Rendering is deterministic, so the
// same tree always serializes to the same bytes.
//
//	g := svg.El("g", svg.Attr("transform", "translate(25, 0)"),
//	    svg.El("text", svg.Attr("x", "25"), svg.Text("Total Stars:")),
//	)
//	out := svg.String(g)
package svg

import (
	"bytes"
	"encoding/xml"
	"strconv"
)

// Node is anything that can write itself as SVG markup.
type Node interface {
	WriteTo(buf *bytes.Buffer)
}

// Attribute is a single name="value" pair. Values are escaped on output.
type Attribute struct {
	Name, Value string
}

// Element is an SVG element with ordered attributes and children.
type Element struct {
	Tag      string
	Attrs    []Attribute
	Children []Node
}

// Part is an argument to [El]: either an [Attribute] or a [Node].
type Part interface{}

// El builds an element from a tag and a mix of attributes and child nodes.
// Nil nodes are skipped, which keeps optional children terse at call sites.
func El(tag string, parts ...Part) *Element {
	e := &Element{Tag: tag}
	for _, p := range parts {
		switch v := p.(type) {
		case Attribute:
			e.Attrs = append(e.Attrs, v)
		case []Attribute:
			e.Attrs = append(e.Attrs, v...)
		case Node:
			if !isNil(v) {
				e.Children = append(e.Children, v)
			}
		case []Node:
			for _, n := range v {
				if !isNil(n) {
					e.Children = append(e.Children, n)
				}
			}
		}
	}
	return e
}

// Attr creates an attribute.
func Attr(name, value string) Attribute { return Attribute{Name: name, Value: value} }

// Num creates an attribute with a formatted number value.
func Num(name string, v float64) Attribute { return Attribute{Name: name, Value: FormatNum(v)} }

// Set replaces the value of an existing attribute or appends a new one.
func (e *Element) Set(name, value string) *Element {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs[i].Value = value
			return e
		}
	}
	e.Attrs = append(e.Attrs, Attribute{Name: name, Value: value})
	return e
}

// Append adds child nodes.
func (e *Element) Append(children ...Node) *Element {
	for _, c := range children {
		if !isNil(c) {
			e.Children = append(e.Children, c)
		}
	}
	return e
}

// WriteTo implements [Node].
func (e *Element) WriteTo(buf *bytes.Buffer) {
	buf.WriteByte('<')
	buf.WriteString(e.Tag)
	for _, a := range e.Attrs {
		buf.WriteByte(' ')
		buf.WriteString(a.Name)
		buf.WriteString(`="`)
		buf.WriteString(Escape(a.Value))
		buf.WriteByte('"')
	}
	if len(e.Children) == 0 {
		buf.WriteString("/>")
		return
	}
	buf.WriteByte('>')
	for _, c := range e.Children {
		c.WriteTo(buf)
	}
	buf.WriteString("</")
	buf.WriteString(e.Tag)
	buf.WriteByte('>')
}

// Text is escaped character data.
type Text string

// WriteTo implements [Node].
func (t Text) WriteTo(buf *bytes.Buffer) { buf.WriteString(Escape(string(t))) }

// Raw is trusted markup written verbatim, such as icon path data or CSS.
type Raw string

// WriteTo implements [Node].
func (r Raw) WriteTo(buf *bytes.Buffer) { buf.WriteString(string(r)) }

// Group is a sequence of nodes without an enclosing element.
type Group []Node

// WriteTo implements [Node].
func (g Group) WriteTo(buf *bytes.Buffer) {
	for _, n := range g {
		if !isNil(n) {
			n.WriteTo(buf)
		}
	}
}

// String renders a node to a string.
func String(n Node) string {
	var buf bytes.Buffer
	n.WriteTo(&buf)
	return buf.String()
}

// Escape escapes text for use in character data and attribute values.
func Escape(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// FormatNum formats a coordinate with the shortest exact representation,
// so 25 renders as "25" and 79.01 as "79.01".
func FormatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func isNil(n Node) bool {
	if n == nil {
		return true
	}
	if e, ok := n.(*Element); ok && e == nil {
		return true
	}
	return false
}
