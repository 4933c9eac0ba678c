package mdsite

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParseDocument converts markdown into a tree wrapped in a single div.
// Blocks appear in source order. A document with no blocks returns
// ErrInvalidNode because the wrapping div would have no children.
func ParseDocument(markdown string) (*Parent, error) {
	blocks := SplitBlocks(markdown)
	nodes := make([]Node, 0, len(blocks))
	for i, block := range blocks {
		node, err := BlockToNode(block, ClassifyBlock(block))
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i+1, err)
		}
		node, err = ExpandInline(node)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i+1, err)
		}
		nodes = append(nodes, node)
	}
	return NewParent("div", nodes)
}

// BlockToNode builds the initial node for a classified block.
// Inline markup is left unparsed; see ExpandInline.
func BlockToNode(block string, typ BlockType) (Node, error) {
	switch typ {
	case BlockHeading:
		level, ok := headingLevel(block)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a heading", ErrInvalidNode, block)
		}
		text := strings.TrimLeftFunc(block[level:], unicode.IsSpace)
		return NewLeaf("h"+strconv.Itoa(level), text), nil

	case BlockCode:
		inner := strings.TrimPrefix(block, codeFence)
		inner = strings.TrimSuffix(inner, codeFence)
		return NewLeaf("code", strings.TrimSpace(inner)), nil

	case BlockQuote:
		lines := strings.Split(block, "\n")
		for i, l := range lines {
			lines[i] = stripMarker(l, ">")
		}
		return NewLeaf("blockquote", strings.Join(lines, "\n")), nil

	case BlockUnorderedList:
		return listNode("ul", block, func(_ int, l string) string {
			return stripMarker(l, l[:1])
		})

	case BlockOrderedList:
		return listNode("ol", block, func(i int, l string) string {
			return stripMarker(l, orderedMarker(i))
		})

	case BlockParagraph:
		return NewLeaf("p", block), nil
	}
	return nil, fmt.Errorf("%w: unsupported block type %s", ErrInvalidNode, typ)
}

// listNode wraps one li leaf per line in a list container.
func listNode(tag, block string, item func(int, string) string) (Node, error) {
	lines := strings.Split(block, "\n")
	items := make([]Node, len(lines))
	for i, l := range lines {
		items[i] = NewLeaf("li", item(i, l))
	}
	return NewParent(tag, items)
}

// stripMarker removes marker and any whitespace following it.
func stripMarker(line, marker string) string {
	return strings.TrimLeftFunc(strings.TrimPrefix(line, marker), unicode.IsSpace)
}

// ExpandInline replaces the value of every non-code leaf with its inline
// spans. A leaf whose value is a single text run is returned unchanged.
// List containers are expanded per item.
func ExpandInline(node Node) (Node, error) {
	switch n := node.(type) {
	case *Leaf:
		return expandLeaf(n)
	case *Parent:
		children := make([]Node, len(n.children))
		for i, c := range n.children {
			expanded, err := ExpandInline(c)
			if err != nil {
				return nil, err
			}
			children[i] = expanded
		}
		return NewParent(n.tag, children, n.attrs...)
	}
	return nil, fmt.Errorf("%w: unknown node type %T", ErrInvalidNode, node)
}

func expandLeaf(l *Leaf) (Node, error) {
	if l.tag == "code" {
		return l, nil
	}

	spans, err := Tokenize(l.value)
	if err != nil {
		return nil, err
	}
	if len(spans) == 1 && spans[0].Kind == SpanText {
		return l, nil
	}

	children := make([]Node, len(spans))
	for i, s := range spans {
		child, err := SpanToNode(s)
		if err != nil {
			return nil, err
		}
		children[i] = child
	}
	return NewParent(l.tag, children, l.attrs...)
}

// SpanToNode converts an inline span into its leaf node.
func SpanToNode(s Span) (*Leaf, error) {
	switch s.Kind {
	case SpanText:
		return NewText(s.Text), nil
	case SpanBold:
		return NewLeaf("b", s.Text), nil
	case SpanItalic:
		return NewLeaf("i", s.Text), nil
	case SpanCode:
		return NewLeaf("code", s.Text), nil
	case SpanLink:
		return NewLeaf("a", s.Text, Attr{Key: "href", Value: s.URL}), nil
	case SpanImage:
		return NewLeaf("img", "", Attr{Key: "src", Value: s.URL}, Attr{Key: "alt", Value: s.Text}), nil
	}
	return nil, fmt.Errorf("%w: unsupported span kind %s", ErrInvalidNode, s.Kind)
}
