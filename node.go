package mdsite

import (
	"fmt"
	"strings"
)

// Node is an element of the rendered document tree.
// The only implementations are *Leaf and *Parent.
type Node interface {
	// Render returns the HTML markup for the node and its descendants.
	Render() string
	// Tag returns the HTML tag name, or "" for a raw text leaf.
	Tag() string
	// Attrs returns a copy of the node's attributes in insertion order.
	Attrs() Attrs

	sealed()
}

// Attr is a single HTML attribute.
type Attr struct {
	Key   string
	Value string
}

// Attrs is an ordered attribute list. Order is preserved when rendering.
type Attrs []Attr

// Render serializes the attributes as ` key="value"` pairs.
// Values are emitted as-is; the supported grammar has no markup to escape.
func (a Attrs) Render() string {
	if len(a) == 0 {
		return ""
	}
	var b strings.Builder
	for _, attr := range a {
		b.WriteByte(' ')
		b.WriteString(attr.Key)
		b.WriteString(`="`)
		b.WriteString(attr.Value)
		b.WriteByte('"')
	}
	return b.String()
}

// Get returns the value for key and whether it was present.
func (a Attrs) Get(key string) (string, bool) {
	for _, attr := range a {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

func (a Attrs) clone() Attrs {
	if len(a) == 0 {
		return nil
	}
	return append(Attrs(nil), a...)
}

// Leaf is a node holding a literal value.
type Leaf struct {
	tag   string
	value string
	attrs Attrs
}

// NewLeaf creates a leaf. An empty tag makes a raw text fragment.
func NewLeaf(tag, value string, attrs ...Attr) *Leaf {
	return &Leaf{tag: tag, value: value, attrs: Attrs(attrs).clone()}
}

// NewText creates an untagged leaf that renders value verbatim.
func NewText(value string) *Leaf {
	return &Leaf{value: value}
}

// Tag returns the leaf tag, "" for raw text.
func (l *Leaf) Tag() string { return l.tag }

// Value returns the literal content.
func (l *Leaf) Value() string { return l.value }

// Attrs returns a copy of the leaf attributes.
func (l *Leaf) Attrs() Attrs { return l.attrs.clone() }

// Render returns value for raw text, otherwise <tag attrs>value</tag>.
func (l *Leaf) Render() string {
	if l.tag == "" {
		return l.value
	}
	return "<" + l.tag + l.attrs.Render() + ">" + l.value + "</" + l.tag + ">"
}

// String formats the leaf for debugging.
func (l *Leaf) String() string {
	return fmt.Sprintf("Leaf(%q, %q%s)", l.tag, l.value, l.attrs.Render())
}

func (*Leaf) sealed() {}

// Parent is a tagged container with at least one child.
type Parent struct {
	tag      string
	children []Node
	attrs    Attrs
}

// NewParent creates a parent node.
// Returns ErrInvalidNode if tag is empty or children is empty.
func NewParent(tag string, children []Node, attrs ...Attr) (*Parent, error) {
	if tag == "" {
		return nil, fmt.Errorf("%w: parent requires a tag", ErrInvalidNode)
	}
	if len(children) == 0 {
		return nil, fmt.Errorf("%w: parent %q requires at least one child", ErrInvalidNode, tag)
	}
	for i, c := range children {
		if c == nil {
			return nil, fmt.Errorf("%w: parent %q has nil child at index %d", ErrInvalidNode, tag, i)
		}
	}
	return &Parent{
		tag:      tag,
		children: append([]Node(nil), children...),
		attrs:    Attrs(attrs).clone(),
	}, nil
}

// Tag returns the parent tag.
func (p *Parent) Tag() string { return p.tag }

// Children returns a copy of the child list.
func (p *Parent) Children() []Node { return append([]Node(nil), p.children...) }

// Attrs returns a copy of the parent attributes.
func (p *Parent) Attrs() Attrs { return p.attrs.clone() }

// Render returns <tag attrs> followed by each child's markup and </tag>.
func (p *Parent) Render() string {
	var b strings.Builder
	b.WriteString("<" + p.tag + p.attrs.Render() + ">")
	for _, c := range p.children {
		b.WriteString(c.Render())
	}
	b.WriteString("</" + p.tag + ">")
	return b.String()
}

// String formats the parent for debugging.
func (p *Parent) String() string {
	parts := make([]string, len(p.children))
	for i, c := range p.children {
		parts[i] = fmt.Sprint(c)
	}
	return fmt.Sprintf("Parent(%q%s, [%s])", p.tag, p.attrs.Render(), strings.Join(parts, ", "))
}

func (*Parent) sealed() {}

// Equal reports whether a and b are structurally identical trees.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Tag() != b.Tag() || !attrsEqual(a.Attrs(), b.Attrs()) {
		return false
	}

	switch x := a.(type) {
	case *Leaf:
		y, ok := b.(*Leaf)
		return ok && x.value == y.value
	case *Parent:
		y, ok := b.(*Parent)
		if !ok || len(x.children) != len(y.children) {
			return false
		}
		for i := range x.children {
			if !Equal(x.children[i], y.children[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func attrsEqual(a, b Attrs) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
