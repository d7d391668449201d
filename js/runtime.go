// Package js exposes the toolkit to scripts through a goja runtime:
// window, document, element wrappers, timers, and applyContainFit.
package js

import (
	"fmt"
	"strings"
	"time"

	"github.com/dop251/goja"

	"containfit/contain"
	"containfit/dom"
	"containfit/html"
	"containfit/loop"
	"containfit/window"
)

// Runtime wires a goja VM to a window, a document, and their event loop.
// Script callbacks run on the loop, never concurrently with Go-side
// DOM work.
type Runtime struct {
	vm   *goja.Runtime
	loop *loop.Loop
	win  *window.Window
	doc  *dom.Document

	wrappers map[*dom.Element]*goja.Object
	unwrap   map[*goja.Object]*dom.Element
}

// New creates a runtime bound to the given window and document.
func New(win *window.Window, doc *dom.Document) *Runtime {
	r := &Runtime{
		vm:       goja.New(),
		loop:     win.Loop(),
		win:      win,
		doc:      doc,
		wrappers: make(map[*dom.Element]*goja.Object),
		unwrap:   make(map[*goja.Object]*dom.Element),
	}
	r.setupConsole()
	r.setupTimers()
	r.setupWindow()
	r.setupDocument()
	r.setupContainFit()
	return r
}

// Execute runs a script in the runtime and returns its value.
func (r *Runtime) Execute(src string) (goja.Value, error) {
	return r.vm.RunString(src)
}

// scriptListener pairs a script callback with the closure that
// unregisters it, so removeEventListener can match by function identity.
type scriptListener struct {
	value  goja.Value
	remove func()
}

func (r *Runtime) setupConsole() {
	console := r.vm.NewObject()
	console.Set("log", func(call goja.FunctionCall) goja.Value {
		parts := make([]string, len(call.Arguments))
		for i, arg := range call.Arguments {
			parts[i] = arg.String()
		}
		fmt.Println(strings.Join(parts, " "))
		return goja.Undefined()
	})
	r.vm.Set("console", console)
}

func (r *Runtime) setupTimers() {
	r.vm.Set("setTimeout", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			return r.vm.ToValue(0)
		}
		callback, ok := goja.AssertFunction(call.Arguments[0])
		if !ok {
			return r.vm.ToValue(0)
		}
		var delay time.Duration
		if len(call.Arguments) > 1 {
			delay = time.Duration(call.Arguments[1].ToInteger()) * time.Millisecond
		}
		id := r.loop.SetTimeout(func() {
			_, _ = callback(goja.Undefined())
		}, delay)
		return r.vm.ToValue(id)
	})

	r.vm.Set("clearTimeout", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) > 0 {
			r.loop.ClearTimeout(int(call.Arguments[0].ToInteger()))
		}
		return goja.Undefined()
	})
}

func (r *Runtime) setupWindow() {
	win := r.vm.NewObject()

	win.DefineAccessorProperty("innerWidth",
		r.vm.ToValue(func() int { return r.win.InnerWidth() }),
		nil, goja.FLAG_FALSE, goja.FLAG_TRUE)
	win.DefineAccessorProperty("innerHeight",
		r.vm.ToValue(func() int { return r.win.InnerHeight() }),
		nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	win.Set("resizeTo", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) >= 2 {
			r.win.Resize(int(call.Arguments[0].ToInteger()), int(call.Arguments[1].ToInteger()))
		}
		return goja.Undefined()
	})

	var resizeListeners []scriptListener

	win.Set("addEventListener", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 2 {
			return goja.Undefined()
		}
		eventType := call.Arguments[0].String()
		callback, ok := goja.AssertFunction(call.Arguments[1])
		if !ok || eventType != window.EventResize {
			return goja.Undefined()
		}
		value := call.Arguments[1]
		for _, l := range resizeListeners {
			if l.value.SameAs(value) {
				return goja.Undefined() // already registered
			}
		}
		remove := r.win.AddResizeListener(func() {
			_, _ = callback(goja.Undefined())
		})
		resizeListeners = append(resizeListeners, scriptListener{value: value, remove: remove})
		return goja.Undefined()
	})

	win.Set("removeEventListener", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 2 || call.Arguments[0].String() != window.EventResize {
			return goja.Undefined()
		}
		value := call.Arguments[1]
		for i, l := range resizeListeners {
			if l.value.SameAs(value) {
				l.remove()
				resizeListeners = append(resizeListeners[:i], resizeListeners[i+1:]...)
				break
			}
		}
		return goja.Undefined()
	})

	r.vm.Set("window", win)
}

func (r *Runtime) setupDocument() {
	doc := r.vm.NewObject()

	doc.Set("getElementById", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			return goja.Null()
		}
		el := r.doc.GetElementById(call.Arguments[0].String())
		if el == nil {
			return goja.Null()
		}
		return r.wrapElement(el)
	})

	doc.Set("getElementsByTagName", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			return r.vm.ToValue([]interface{}{})
		}
		els := r.doc.GetElementsByTagName(call.Arguments[0].String())
		wrapped := make([]interface{}, len(els))
		for i, el := range els {
			wrapped[i] = r.wrapElement(el)
		}
		return r.vm.ToValue(wrapped)
	})

	doc.Set("createElement", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			return goja.Null()
		}
		return r.wrapElement(r.doc.CreateElement(call.Arguments[0].String()))
	})

	r.vm.Set("document", doc)
}

// wrapElement returns the script object for an element, creating and
// caching it on first use so identity comparisons hold across calls.
func (r *Runtime) wrapElement(el *dom.Element) *goja.Object {
	if obj, ok := r.wrappers[el]; ok {
		return obj
	}

	obj := r.vm.NewObject()
	r.wrappers[el] = obj
	r.unwrap[obj] = el

	obj.Set("tagName", el.TagName())

	obj.DefineAccessorProperty("id",
		r.vm.ToValue(func() string { return el.Id() }),
		nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	obj.DefineAccessorProperty("className",
		r.vm.ToValue(func() string { return el.ClassName() }),
		r.vm.ToValue(func(v string) { el.SetClassName(v) }),
		goja.FLAG_FALSE, goja.FLAG_TRUE)

	obj.DefineAccessorProperty("innerHTML",
		nil,
		r.vm.ToValue(func(markup string) { _ = html.SetInner(el, markup) }),
		goja.FLAG_FALSE, goja.FLAG_TRUE)

	obj.DefineAccessorProperty("naturalWidth",
		r.vm.ToValue(func() int { return el.NaturalWidth() }),
		nil, goja.FLAG_FALSE, goja.FLAG_TRUE)
	obj.DefineAccessorProperty("naturalHeight",
		r.vm.ToValue(func() int { return el.NaturalHeight() }),
		nil, goja.FLAG_FALSE, goja.FLAG_TRUE)
	obj.DefineAccessorProperty("videoWidth",
		r.vm.ToValue(func() int { return el.VideoWidth() }),
		nil, goja.FLAG_FALSE, goja.FLAG_TRUE)
	obj.DefineAccessorProperty("videoHeight",
		r.vm.ToValue(func() int { return el.VideoHeight() }),
		nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	classList := r.vm.NewObject()
	classList.Set("add", func(call goja.FunctionCall) goja.Value {
		for _, arg := range call.Arguments {
			el.ClassList().Add(arg.String())
		}
		return goja.Undefined()
	})
	classList.Set("remove", func(call goja.FunctionCall) goja.Value {
		for _, arg := range call.Arguments {
			el.ClassList().Remove(arg.String())
		}
		return goja.Undefined()
	})
	classList.Set("contains", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			return r.vm.ToValue(false)
		}
		return r.vm.ToValue(el.ClassList().Contains(call.Arguments[0].String()))
	})
	classList.Set("toggle", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			return r.vm.ToValue(false)
		}
		present, _ := el.ClassList().Toggle(call.Arguments[0].String())
		return r.vm.ToValue(present)
	})
	obj.Set("classList", classList)

	listeners := make(map[string][]scriptListener)

	obj.Set("addEventListener", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 2 {
			return goja.Undefined()
		}
		eventType := call.Arguments[0].String()
		callback, ok := goja.AssertFunction(call.Arguments[1])
		if !ok {
			return goja.Undefined()
		}
		value := call.Arguments[1]
		for _, l := range listeners[eventType] {
			if l.value.SameAs(value) {
				return goja.Undefined() // already registered
			}
		}
		handle := el.AddEventListener(eventType, func(*dom.Event) {
			_, _ = callback(goja.Undefined())
		})
		listeners[eventType] = append(listeners[eventType], scriptListener{
			value:  value,
			remove: func() { el.RemoveEventListener(eventType, handle) },
		})
		return goja.Undefined()
	})

	obj.Set("removeEventListener", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 2 {
			return goja.Undefined()
		}
		eventType := call.Arguments[0].String()
		value := call.Arguments[1]
		for i, l := range listeners[eventType] {
			if l.value.SameAs(value) {
				l.remove()
				listeners[eventType] = append(listeners[eventType][:i], listeners[eventType][i+1:]...)
				break
			}
		}
		return goja.Undefined()
	})

	return obj
}

// setupContainFit exposes applyContainFit(element, options), the script
// entry point for installing the containment behavior on a host.
func (r *Runtime) setupContainFit() {
	r.vm.Set("applyContainFit", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			return goja.Null()
		}
		host, ok := r.unwrap[call.Arguments[0].ToObject(r.vm)]
		if !ok {
			return goja.Null()
		}

		var opts contain.Options
		if len(call.Arguments) > 1 {
			if optObj := call.Arguments[1].ToObject(r.vm); optObj != nil {
				if v := optObj.Get("asyncContent"); v != nil && !goja.IsUndefined(v) {
					opts.AsyncContent = v.ToBoolean()
				}
				if v := optObj.Get("contentDelayMs"); v != nil && !goja.IsUndefined(v) {
					opts.ContentDelay = time.Duration(v.ToInteger()) * time.Millisecond
				}
				if v := optObj.Get("debounceMs"); v != nil && !goja.IsUndefined(v) {
					opts.DebounceInterval = time.Duration(v.ToInteger()) * time.Millisecond
				}
			}
		}

		behavior := contain.Attach(host, r.win, r.loop, opts)

		handle := r.vm.NewObject()
		handle.Set("native", behavior.Native())
		handle.Set("detach", func(call goja.FunctionCall) goja.Value {
			behavior.Detach()
			return goja.Undefined()
		})
		return handle
	})
}
