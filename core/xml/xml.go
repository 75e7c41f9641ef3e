// Package xml wraps xmlquery/xpath behind the small query surface the TOC
// extractor needs. Parsing uses Go's encoding/xml underneath, which does
// not fetch external entities, so scraped documents cannot trigger XXE.
package xml

import (
	"fmt"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

// Document is a parsed XML (or XHTML) document.
type Document struct {
	root *xmlquery.Node
}

// Node is one element of a parsed document.
type Node struct {
	node *xmlquery.Node
}

// Parse parses document text. Malformed markup returns an error; callers
// that consume scraped pages treat that as "use the fallback scan".
func Parse(text string) (*Document, error) {
	root, err := xmlquery.Parse(strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	return &Document{root: root}, nil
}

// Query runs an XPath expression and returns all matching nodes in
// document order.
func (d *Document) Query(expr string) ([]*Node, error) {
	if _, err := xpath.Compile(expr); err != nil {
		return nil, fmt.Errorf("invalid xpath %q: %w", expr, err)
	}
	matches, err := xmlquery.QueryAll(d.root, expr)
	if err != nil {
		return nil, fmt.Errorf("xpath query %q: %w", expr, err)
	}
	nodes := make([]*Node, len(matches))
	for i, m := range matches {
		nodes[i] = &Node{node: m}
	}
	return nodes, nil
}

// Name returns the element name.
func (n *Node) Name() string {
	if n.node == nil {
		return ""
	}
	return n.node.Data
}

// Text returns the concatenated text content of the node and its
// descendants.
func (n *Node) Text() string {
	if n.node == nil {
		return ""
	}
	return n.node.InnerText()
}

// Attr returns the value of the named attribute, or "" when absent.
func (n *Node) Attr(name string) string {
	if n.node == nil {
		return ""
	}
	return n.node.SelectAttr(name)
}

// Parent returns the enclosing element, or nil at the document root.
func (n *Node) Parent() *Node {
	if n.node == nil || n.node.Parent == nil {
		return nil
	}
	return &Node{node: n.node.Parent}
}
