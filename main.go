// Command containfit loads an HTML file, installs the containment
// behavior on every element marked data-contain, and prints the
// resulting class lists for the given viewport size.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"containfit/contain"
	"containfit/dom"
	"containfit/html"
	"containfit/loop"
	"containfit/window"
)

func main() {
	width := flag.Int("width", 1024, "viewport width")
	height := flag.Int("height", 768, "viewport height")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: containfit [-width W] [-height H] page.html")
		os.Exit(2)
	}
	path := flag.Arg(0)

	markup, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "containfit:", err)
		os.Exit(1)
	}

	doc, err := html.ParseDocument(string(markup))
	if err != nil {
		fmt.Fprintln(os.Stderr, "containfit:", err)
		os.Exit(1)
	}

	lp := loop.New()
	win := window.New(lp, *width, *height)

	var hosts []*dom.Element
	for _, el := range doc.GetElementsByTagName("*") {
		if el.HasAttribute("data-contain") {
			hosts = append(hosts, el)
		}
	}

	for _, host := range hosts {
		contain.Attach(host, win, lp, contain.Options{})
	}

	baseDir := filepath.Dir(path)
	for _, el := range doc.GetElementsByTagName("img") {
		loadImage(el, baseDir)
	}
	for _, el := range doc.GetElementsByTagName("video") {
		if w, h, ok := attrSize(el); ok {
			el.SetIntrinsicSize(w, h)
		}
	}

	lp.RunUntilIdle()

	for _, host := range hosts {
		name := host.LocalName()
		if id := host.Id(); id != "" {
			name += "#" + id
		}
		fmt.Printf("%s class=%q\n", name, host.ClassName())
	}
}

// loadImage resolves the element's src relative to the page and sniffs
// its intrinsic dimensions. Falls back to width/height attributes when
// the file is missing or undecodable.
func loadImage(el *dom.Element, baseDir string) {
	if src := el.GetAttribute("src"); src != "" {
		if data, err := os.ReadFile(filepath.Join(baseDir, src)); err == nil {
			if el.LoadImageBytes(data) == nil {
				return
			}
		}
	}
	if w, h, ok := attrSize(el); ok {
		el.SetIntrinsicSize(w, h)
	}
}

// attrSize reads the width/height attributes as a pixel size.
func attrSize(el *dom.Element) (w, h int, ok bool) {
	w, errW := strconv.Atoi(el.GetAttribute("width"))
	h, errH := strconv.Atoi(el.GetAttribute("height"))
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}
