// Package html parses HTML markup into dom trees using
// golang.org/x/net/html as the underlying parser implementation.
package html

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"containfit/dom"
)

// ParseDocument parses a full HTML document and returns it as a
// dom.Document. The parser supplies html/head/body elements when the
// markup omits them.
func ParseDocument(markup string) (*dom.Document, error) {
	return ParseDocumentReader(strings.NewReader(markup))
}

// ParseDocumentReader parses a full HTML document from a reader.
func ParseDocumentReader(r io.Reader) (*dom.Document, error) {
	netRoot, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	doc := dom.NewDocument()
	for c := netRoot.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			root := convertNode(doc, c)
			if el := root.AsElement(); el != nil {
				doc.SetDocumentElement(el)
			}
			break
		}
	}
	return doc, nil
}

// ParseFragment parses an HTML fragment in the context of the given
// element and returns the resulting nodes, owned by the element's
// document but not yet inserted.
func ParseFragment(context *dom.Element, fragment string) ([]*dom.Node, error) {
	contextNode := &html.Node{
		Type:     html.ElementNode,
		Data:     context.LocalName(),
		DataAtom: atom.Lookup([]byte(context.LocalName())),
	}
	netNodes, err := html.ParseFragment(strings.NewReader(fragment), contextNode)
	if err != nil {
		return nil, err
	}
	doc := context.OwnerDocument()
	nodes := make([]*dom.Node, 0, len(netNodes))
	for _, nn := range netNodes {
		if converted := convertNode(doc, nn); converted != nil {
			nodes = append(nodes, converted)
		}
	}
	return nodes, nil
}

// SetInner replaces the element's children with the parsed fragment.
// Document mutation listeners are notified once for the whole batch,
// which is the insertion signal asynchronously bound hosts rely on.
func SetInner(el *dom.Element, fragment string) error {
	nodes, err := ParseFragment(el, fragment)
	if err != nil {
		return err
	}
	el.AsNode().ReplaceChildren(nodes...)
	return nil
}

// convertNode converts a golang.org/x/net/html node and its subtree
// into dom nodes owned by doc. Unsupported node kinds return nil.
func convertNode(doc *dom.Document, n *html.Node) *dom.Node {
	var node *dom.Node
	switch n.Type {
	case html.ElementNode:
		el := doc.CreateElement(n.Data)
		for _, a := range n.Attr {
			el.SetAttribute(a.Key, a.Val)
		}
		node = el.AsNode()
	case html.TextNode:
		node = doc.CreateTextNode(n.Data)
	default:
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if child := convertNode(doc, c); child != nil {
			node.AppendChild(child)
		}
	}
	return node
}
