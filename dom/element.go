package dom

import "strings"

// Element represents an element in the DOM tree.
// Element inherits from Node and provides element-specific properties
// and methods.
type Element Node

// AsNode returns the underlying Node.
func (e *Element) AsNode() *Node {
	return (*Node)(e)
}

// TagName returns the tag name in uppercase.
func (e *Element) TagName() string {
	if e.AsNode().elementData != nil {
		return e.AsNode().elementData.tagName
	}
	return strings.ToUpper(e.AsNode().nodeName)
}

// LocalName returns the lowercase local name of the element.
func (e *Element) LocalName() string {
	if e.AsNode().elementData != nil {
		return e.AsNode().elementData.localName
	}
	return strings.ToLower(e.AsNode().nodeName)
}

// Id returns the id attribute value.
func (e *Element) Id() string {
	return e.GetAttribute("id")
}

// ClassName returns the class attribute value.
func (e *Element) ClassName() string {
	return e.GetAttribute("class")
}

// SetClassName sets the class attribute value.
func (e *Element) SetClassName(className string) {
	e.SetAttribute("class", className)
}

// ClassList returns a DOMTokenList for the class attribute.
func (e *Element) ClassList() *DOMTokenList {
	data := e.data()
	if data.classList == nil {
		data.classList = newDOMTokenList(e, "class")
	}
	return data.classList
}

func (e *Element) data() *elementData {
	if e.AsNode().elementData == nil {
		e.AsNode().elementData = &elementData{}
	}
	return e.AsNode().elementData
}

// GetAttribute returns the value of the attribute with the given name,
// or the empty string if it is absent. Names are lowercased before lookup.
func (e *Element) GetAttribute(name string) string {
	name = strings.ToLower(name)
	for _, a := range e.data().attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// SetAttribute sets the value of the attribute with the given name.
func (e *Element) SetAttribute(name, value string) {
	name = strings.ToLower(name)
	data := e.data()
	for i, a := range data.attrs {
		if a.Name == name {
			data.attrs[i].Value = value
			return
		}
	}
	data.attrs = append(data.attrs, Attribute{Name: name, Value: value})
}

// HasAttribute reports whether the element has the given attribute.
func (e *Element) HasAttribute(name string) bool {
	name = strings.ToLower(name)
	for _, a := range e.data().attrs {
		if a.Name == name {
			return true
		}
	}
	return false
}

// RemoveAttribute removes the attribute with the given name.
func (e *Element) RemoveAttribute(name string) {
	name = strings.ToLower(name)
	data := e.data()
	for i, a := range data.attrs {
		if a.Name == name {
			data.attrs = append(data.attrs[:i], data.attrs[i+1:]...)
			return
		}
	}
}

// Attributes returns a copy of the element's attributes in set order.
func (e *Element) Attributes() []Attribute {
	attrs := e.data().attrs
	out := make([]Attribute, len(attrs))
	copy(out, attrs)
	return out
}

// GetElementsByTagName returns all descendant elements with the given
// lowercase local name, in document order. "*" matches every element.
func (e *Element) GetElementsByTagName(localName string) []*Element {
	localName = strings.ToLower(localName)
	var out []*Element
	walkElements(e.AsNode(), func(el *Element) bool {
		if localName == "*" || el.LocalName() == localName {
			out = append(out, el)
		}
		return true
	})
	return out
}

// FirstByTag returns the first descendant element with the given
// lowercase local name in document order, or nil.
func (e *Element) FirstByTag(localName string) *Element {
	localName = strings.ToLower(localName)
	var found *Element
	walkElements(e.AsNode(), func(el *Element) bool {
		if el.LocalName() == localName {
			found = el
			return false
		}
		return true
	})
	return found
}

// walkElements visits every descendant element of root in document
// (pre-)order, stopping early if visit returns false.
func walkElements(root *Node, visit func(*Element) bool) bool {
	for c := root.firstChild; c != nil; c = c.nextSibling {
		if el := c.AsElement(); el != nil {
			if !visit(el) {
				return false
			}
		}
		if !walkElements(c, visit) {
			return false
		}
	}
	return true
}

// AddEventListener registers a listener on the element's node.
func (e *Element) AddEventListener(eventType string, fn ListenerFunc) int {
	return e.AsNode().AddEventListener(eventType, fn)
}

// RemoveEventListener unregisters the listener with the given handle.
func (e *Element) RemoveEventListener(eventType string, handle int) {
	e.AsNode().RemoveEventListener(eventType, handle)
}

// DispatchEvent dispatches an event of the given type on the element.
func (e *Element) DispatchEvent(eventType string) {
	e.AsNode().DispatchEvent(eventType)
}

// OwnerDocument returns the document this element belongs to, or nil.
func (e *Element) OwnerDocument() *Document {
	return e.AsNode().ownerDoc
}
