package dom

import (
	"strings"
	"sync"

	"containfit/css"
)

// Document owns a DOM tree: it creates nodes, tracks the root element,
// exposes the environment's style-property support table, and notifies
// registered listeners about child-list mutations.
type Document struct {
	node            *Node
	documentElement *Element

	styleSupport *css.Support

	mu                sync.Mutex
	mutationListeners []*mutationListener
	nextListenerID    int
}

// mutationListener is a registered child-list mutation callback.
type mutationListener struct {
	id int
	fn ChildListFunc
}

// ChildListFunc is called when child nodes are inserted under target.
type ChildListFunc func(target *Node, added []*Node)

// NewDocument creates a new empty document. Its style support table
// starts at css.DefaultSupport.
func NewDocument() *Document {
	d := &Document{
		styleSupport: css.DefaultSupport(),
	}
	d.node = newNode(DocumentNode, "#document", d)
	return d
}

// AsNode returns the document's underlying node.
func (d *Document) AsNode() *Node {
	return d.node
}

// StyleSupport returns the document's style-property support table.
func (d *Document) StyleSupport() *css.Support {
	return d.styleSupport
}

// SetStyleSupport replaces the document's style-property support table.
func (d *Document) SetStyleSupport(s *css.Support) {
	d.styleSupport = s
}

// CreateElement creates a new element with the given local name.
func (d *Document) CreateElement(localName string) *Element {
	localName = strings.ToLower(localName)
	n := newNode(ElementNode, strings.ToUpper(localName), d)
	n.elementData = &elementData{
		localName: localName,
		tagName:   strings.ToUpper(localName),
	}
	return n.AsElement()
}

// CreateTextNode creates a new text node with the given content.
func (d *Document) CreateTextNode(text string) *Node {
	n := newNode(TextNode, "#text", d)
	n.textData = &text
	return n
}

// SetDocumentElement sets the root element of the document, appending
// it to the document node.
func (d *Document) SetDocumentElement(root *Element) {
	d.documentElement = root
	d.node.AppendChild(root.AsNode())
}

// DocumentElement returns the root element of the document, or nil.
func (d *Document) DocumentElement() *Element {
	return d.documentElement
}

// GetElementById returns the first element with the given id attribute,
// in document order, or nil.
func (d *Document) GetElementById(id string) *Element {
	if d.documentElement == nil {
		return nil
	}
	if d.documentElement.Id() == id {
		return d.documentElement
	}
	var found *Element
	walkElements(d.documentElement.AsNode(), func(el *Element) bool {
		if el.Id() == id {
			found = el
			return false
		}
		return true
	})
	return found
}

// GetElementsByTagName returns all elements with the given lowercase
// local name in document order. "*" matches every element.
func (d *Document) GetElementsByTagName(localName string) []*Element {
	if d.documentElement == nil {
		return nil
	}
	localName = strings.ToLower(localName)
	var out []*Element
	if localName == "*" || d.documentElement.LocalName() == localName {
		out = append(out, d.documentElement)
	}
	return append(out, d.documentElement.GetElementsByTagName(localName)...)
}

// AddMutationListener registers a callback for child-list insertions
// anywhere in the document. The returned function removes it.
func (d *Document) AddMutationListener(fn ChildListFunc) (remove func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.nextListenerID++
	l := &mutationListener{id: d.nextListenerID, fn: fn}
	d.mutationListeners = append(d.mutationListeners, l)

	id := l.id
	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		for i, existing := range d.mutationListeners {
			if existing.id == id {
				d.mutationListeners = append(d.mutationListeners[:i], d.mutationListeners[i+1:]...)
				return
			}
		}
	}
}

// notifyChildList notifies all registered listeners about inserted children.
func (d *Document) notifyChildList(target *Node, added []*Node) {
	d.mu.Lock()
	listeners := make([]*mutationListener, len(d.mutationListeners))
	copy(listeners, d.mutationListeners)
	d.mu.Unlock()

	for _, l := range listeners {
		l.fn(target, added)
	}
}
