package html

import (
	"testing"

	"containfit/dom"
)

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument(`<html><body><div id="host"><img src="a.png"></div></body></html>`)
	if err != nil {
		t.Fatalf("ParseDocument returned error: %v", err)
	}

	root := doc.DocumentElement()
	if root == nil {
		t.Fatal("Expected a document element")
	}
	if root.LocalName() != "html" {
		t.Errorf("Expected root 'html', got '%s'", root.LocalName())
	}

	host := doc.GetElementById("host")
	if host == nil {
		t.Fatal("Expected to find #host")
	}
	img := host.FirstByTag("img")
	if img == nil {
		t.Fatal("Expected an img descendant")
	}
	if img.GetAttribute("src") != "a.png" {
		t.Errorf("Expected src 'a.png', got '%s'", img.GetAttribute("src"))
	}
}

func TestParseDocument_SuppliesStructure(t *testing.T) {
	// The parser inserts html/head/body around bare content
	doc, err := ParseDocument(`<p>hello</p>`)
	if err != nil {
		t.Fatalf("ParseDocument returned error: %v", err)
	}
	if doc.DocumentElement() == nil {
		t.Fatal("Expected a document element")
	}
	ps := doc.GetElementsByTagName("p")
	if len(ps) != 1 {
		t.Fatalf("Expected 1 p element, got %d", len(ps))
	}
	if got := ps[0].AsNode().TextContent(); got != "hello" {
		t.Errorf("Expected text 'hello', got '%s'", got)
	}
}

func TestParseFragment(t *testing.T) {
	doc, err := ParseDocument(`<html><body><div id="host"></div></body></html>`)
	if err != nil {
		t.Fatalf("ParseDocument returned error: %v", err)
	}
	host := doc.GetElementById("host")

	nodes, err := ParseFragment(host, `<img id="a"><video id="b"></video>`)
	if err != nil {
		t.Fatalf("ParseFragment returned error: %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("Expected 2 nodes, got %d", len(nodes))
	}
	if el := nodes[0].AsElement(); el == nil || el.LocalName() != "img" {
		t.Error("Expected first fragment node to be an img")
	}
	// Fragment nodes are owned but not yet inserted
	if nodes[0].ParentNode() != nil {
		t.Error("Expected fragment nodes to be detached")
	}
	if nodes[0].OwnerDocument() != doc {
		t.Error("Expected fragment nodes to belong to the context document")
	}
}

func TestSetInner(t *testing.T) {
	doc, err := ParseDocument(`<html><body><div id="host"><p>old</p></div></body></html>`)
	if err != nil {
		t.Fatalf("ParseDocument returned error: %v", err)
	}
	host := doc.GetElementById("host")

	notifications := 0
	var added int
	doc.AddMutationListener(func(target *dom.Node, nodes []*dom.Node) {
		if target == host.AsNode() {
			notifications++
			added = len(nodes)
		}
	})

	if err := SetInner(host, `<img id="a"><img id="b">`); err != nil {
		t.Fatalf("SetInner returned error: %v", err)
	}

	if host.FirstByTag("p") != nil {
		t.Error("Expected old children to be removed")
	}
	imgs := host.GetElementsByTagName("img")
	if len(imgs) != 2 {
		t.Fatalf("Expected 2 images, got %d", len(imgs))
	}

	// One notification for the whole batch, fired after insertion
	if notifications != 1 {
		t.Errorf("Expected 1 mutation notification, got %d", notifications)
	}
	if added != 2 {
		t.Errorf("Expected 2 added nodes in the batch, got %d", added)
	}
}
