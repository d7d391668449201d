// Package dom provides a headless DOM subset: an element tree with
// attributes, class lists, event targets, and media element dimensions.
// It carries no layout or rendering state.
package dom

import "strings"

// Node represents a node in the DOM tree. Element, Text, and Document
// nodes share this representation; type-specific data hangs off the
// elementData and textData fields.
type Node struct {
	nodeType NodeType
	nodeName string
	ownerDoc *Document

	parentNode  *Node
	firstChild  *Node
	lastChild   *Node
	prevSibling *Node
	nextSibling *Node

	// Type-specific data (at most one non-nil, based on nodeType)
	elementData *elementData
	textData    *string

	events *EventTarget
}

// elementData holds data specific to Element nodes.
type elementData struct {
	localName string
	tagName   string
	attrs     []Attribute
	classList *DOMTokenList
	media     *mediaData
}

// Attribute is a single name/value attribute pair.
type Attribute struct {
	Name  string
	Value string
}

// newNode creates a new node with the given type and name.
func newNode(nodeType NodeType, nodeName string, ownerDoc *Document) *Node {
	return &Node{
		nodeType: nodeType,
		nodeName: nodeName,
		ownerDoc: ownerDoc,
	}
}

// NodeType returns the type of the node.
func (n *Node) NodeType() NodeType {
	return n.nodeType
}

// NodeName returns the name of the node: the uppercase tag name for
// elements, "#text" for text nodes, "#document" for documents.
func (n *Node) NodeName() string {
	return n.nodeName
}

// OwnerDocument returns the document this node belongs to, or nil.
func (n *Node) OwnerDocument() *Document {
	return n.ownerDoc
}

// ParentNode returns the parent of this node, or nil.
func (n *Node) ParentNode() *Node {
	return n.parentNode
}

// FirstChild returns the first child of this node, or nil.
func (n *Node) FirstChild() *Node {
	return n.firstChild
}

// LastChild returns the last child of this node, or nil.
func (n *Node) LastChild() *Node {
	return n.lastChild
}

// PreviousSibling returns the previous sibling of this node, or nil.
func (n *Node) PreviousSibling() *Node {
	return n.prevSibling
}

// NextSibling returns the next sibling of this node, or nil.
func (n *Node) NextSibling() *Node {
	return n.nextSibling
}

// ChildNodes returns a slice of all child nodes.
func (n *Node) ChildNodes() []*Node {
	var children []*Node
	for c := n.firstChild; c != nil; c = c.nextSibling {
		children = append(children, c)
	}
	return children
}

// AsElement returns the node as an Element, or nil if it is not one.
func (n *Node) AsElement() *Element {
	if n == nil || n.nodeType != ElementNode {
		return nil
	}
	return (*Element)(n)
}

// AppendChild adds a child node to the end of this node's children,
// detaching it from any previous parent first.
func (n *Node) AppendChild(c *Node) {
	n.appendChildQuiet(c)
	if n.connected() {
		n.ownerDoc.notifyChildList(n, []*Node{c})
	}
}

// connected reports whether the node is attached to its document tree.
// Mutations in detached subtrees (fragments under construction) are not
// reported to document mutation listeners.
func (n *Node) connected() bool {
	return n.ownerDoc != nil && n.ownerDoc.node.Contains(n)
}

func (n *Node) appendChildQuiet(c *Node) {
	if c.parentNode != nil {
		c.parentNode.RemoveChild(c)
	}
	c.parentNode = n
	c.ownerDoc = n.ownerDoc
	adoptSubtree(c, n.ownerDoc)
	c.prevSibling = n.lastChild
	c.nextSibling = nil
	if n.lastChild != nil {
		n.lastChild.nextSibling = c
	} else {
		n.firstChild = c
	}
	n.lastChild = c
}

// RemoveChild removes a child node from this node's children.
func (n *Node) RemoveChild(c *Node) {
	if c.parentNode != n {
		return
	}
	if c.prevSibling != nil {
		c.prevSibling.nextSibling = c.nextSibling
	} else {
		n.firstChild = c.nextSibling
	}
	if c.nextSibling != nil {
		c.nextSibling.prevSibling = c.prevSibling
	} else {
		n.lastChild = c.prevSibling
	}
	c.parentNode = nil
	c.prevSibling = nil
	c.nextSibling = nil
}

// ReplaceChildren removes all existing children and appends the given
// nodes, notifying document mutation listeners once for the whole batch.
func (n *Node) ReplaceChildren(children ...*Node) {
	for c := n.firstChild; c != nil; {
		next := c.nextSibling
		n.RemoveChild(c)
		c = next
	}
	for _, c := range children {
		n.appendChildQuiet(c)
	}
	if n.connected() && len(children) > 0 {
		n.ownerDoc.notifyChildList(n, children)
	}
}

// Contains reports whether other is an inclusive descendant of this node.
func (n *Node) Contains(other *Node) bool {
	for p := other; p != nil; p = p.parentNode {
		if p == n {
			return true
		}
	}
	return false
}

// TextContent returns the concatenated text of this node's subtree.
func (n *Node) TextContent() string {
	var sb strings.Builder
	n.collectText(&sb)
	return sb.String()
}

func (n *Node) collectText(sb *strings.Builder) {
	if n.nodeType == TextNode && n.textData != nil {
		sb.WriteString(*n.textData)
		return
	}
	for c := n.firstChild; c != nil; c = c.nextSibling {
		c.collectText(sb)
	}
}

// adoptSubtree updates the owner document of every node under root.
func adoptSubtree(root *Node, doc *Document) {
	root.ownerDoc = doc
	for c := root.firstChild; c != nil; c = c.nextSibling {
		adoptSubtree(c, doc)
	}
}

// eventTarget lazily creates the node's event target.
func (n *Node) eventTarget() *EventTarget {
	if n.events == nil {
		n.events = NewEventTarget()
	}
	return n.events
}

// AddEventListener registers a listener for the given event type and
// returns a handle for later removal.
func (n *Node) AddEventListener(eventType string, fn ListenerFunc) int {
	return n.eventTarget().AddListener(eventType, fn)
}

// RemoveEventListener unregisters the listener with the given handle.
func (n *Node) RemoveEventListener(eventType string, handle int) {
	if n.events != nil {
		n.events.RemoveListener(eventType, handle)
	}
}

// DispatchEvent dispatches an event of the given type with this node
// as its target.
func (n *Node) DispatchEvent(eventType string) {
	if n.events != nil {
		n.events.Dispatch(&Event{Type: eventType, Target: n})
	}
}

// HasEventListeners reports whether any listeners are registered for
// the given event type.
func (n *Node) HasEventListeners(eventType string) bool {
	return n.events != nil && n.events.HasListeners(eventType)
}
