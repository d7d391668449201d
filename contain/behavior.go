// Package contain makes embedded image or video content fill its host
// in one dimension while preserving aspect ratio, emulating the CSS
// object-fit containment property for environments that lack it.
//
// In supported environments Attach is a pure no-op. Otherwise the host
// is marked with PolyfillClass so fallback stylesheet rules apply, and
// FillHeightClass is kept on the host exactly while the governed
// media's aspect ratio is narrower than the viewport's.
package contain

import (
	"time"

	"containfit/css"
	"containfit/dom"
	"containfit/loop"
)

// Class names toggled on the host element. The visual rules behind them
// live in stylesheets; this package only controls their presence.
const (
	// PolyfillClass marks a host governed by the polyfill.
	PolyfillClass = "contain-polyfill"
	// FillHeightClass is present while the media is narrower than the
	// viewport and should fill by height instead of width.
	FillHeightClass = "contain-fill-height"
)

// Defaults for the tunable intervals.
const (
	// DefaultContentDelay is the pause after a content-population signal
	// before retrying initialization, giving inserted markup time to
	// parse and begin loading. A heuristic with no correctness
	// guarantee; tune via Options.ContentDelay.
	DefaultContentDelay = 50 * time.Millisecond
	// DefaultDebounceInterval is the resize coalescing window.
	DefaultDebounceInterval = 150 * time.Millisecond
)

// Viewport supplies the display surface dimensions and resize signal.
// *window.Window implements it.
type Viewport interface {
	InnerWidth() int
	InnerHeight() int
	AddResizeListener(fn func()) (remove func())
}

// FeatureProbe reports whether the environment's style objects
// recognize a CSS property. *css.Support implements it.
type FeatureProbe interface {
	Supports(property string) bool
}

// Options configures an attachment. The zero value gives defaults:
// synchronous content, 50ms content delay, 150ms debounce, and feature
// detection against the host document's style support table.
type Options struct {
	// AsyncContent indicates the host's content is populated
	// asynchronously (e.g. bound from a remote HTML fragment), so
	// initialization should be retried after content insertion.
	AsyncContent bool

	// ContentDelay is the pause between a content-population signal and
	// the re-initialization attempt. Zero means DefaultContentDelay.
	ContentDelay time.Duration

	// DebounceInterval is the resize coalescing window. Zero means
	// DefaultDebounceInterval.
	DebounceInterval time.Duration

	// Probe overrides feature detection. Nil means the host document's
	// style support table.
	Probe FeatureProbe
}

// Behavior tracks one host element and its governed media element.
type Behavior struct {
	host *dom.Element
	vp   Viewport
	loop *loop.Loop
	opts Options

	// native is fixed at attach time; when true the behavior is inert.
	native bool

	media *dom.Element

	loadTarget *dom.Element
	loadEvent  string
	loadHandle int // 0 when no load listener is attached

	debounce      *loop.Debouncer
	removeResize  func()
	removeContent func()
	retryTimer    int // pending content-delay timer id, 0 if none

	detached bool
}

// Attach installs the behavior on host. Feature detection happens once
// here: if the probe reports native containment support, the returned
// behavior does nothing at all — no classes, no listeners.
func Attach(host *dom.Element, vp Viewport, lp *loop.Loop, opts Options) *Behavior {
	if opts.ContentDelay == 0 {
		opts.ContentDelay = DefaultContentDelay
	}
	if opts.DebounceInterval == 0 {
		opts.DebounceInterval = DefaultDebounceInterval
	}
	if opts.Probe == nil {
		if doc := host.OwnerDocument(); doc != nil {
			opts.Probe = doc.StyleSupport()
		}
	}

	b := &Behavior{
		host: host,
		vp:   vp,
		loop: lp,
		opts: opts,
	}

	if opts.Probe != nil && opts.Probe.Supports(css.ObjectFit) {
		b.native = true
		return b
	}

	host.ClassList().Add(PolyfillClass)
	b.initAttempt()

	b.debounce = loop.NewDebouncer(lp, opts.DebounceInterval, func() {
		b.evaluate()
	})
	b.removeResize = vp.AddResizeListener(b.debounce.Call)

	return b
}

// Native reports whether attach detected native support and the
// behavior is inert.
func (b *Behavior) Native() bool {
	return b.native
}

// initAttempt runs one full initialization pass: bind the host itself
// as media if it is an img or video, try to evaluate, fall back to a
// load listener, and — for async-content hosts — arm the content signal
// so insertion triggers a delayed retry.
func (b *Behavior) initAttempt() {
	if b.detached {
		return
	}

	if b.media == nil && b.host.IsMedia() {
		b.media = b.host
	}

	if b.evaluate() {
		return
	}
	if b.attachLoadListener() {
		return
	}

	if b.opts.AsyncContent && b.removeContent == nil {
		doc := b.host.OwnerDocument()
		if doc == nil {
			return
		}
		b.removeContent = doc.AddMutationListener(func(target *dom.Node, added []*dom.Node) {
			if target != b.host.AsNode() && !b.host.AsNode().Contains(target) {
				return
			}
			b.scheduleRetry()
		})
	}
}

// scheduleRetry arms (or re-arms) the delayed re-initialization that
// follows a content-population signal.
func (b *Behavior) scheduleRetry() {
	if b.detached {
		return
	}
	if b.retryTimer != 0 {
		b.loop.ClearTimeout(b.retryTimer)
	}
	b.retryTimer = b.loop.SetTimeout(func() {
		b.retryTimer = 0
		b.initAttempt()
	}, b.opts.ContentDelay)
}

// evaluate recomputes the fit state. It reports whether a media element
// with known intrinsic dimensions was found; until then the fit class
// stays untouched.
func (b *Behavior) evaluate() bool {
	if b.detached || b.native {
		return false
	}

	if b.media == nil {
		// Images take priority over videos regardless of document
		// order: the first image descendant wins even when a video
		// appears before it.
		if img := b.host.FirstByTag("img"); img != nil {
			b.media = img
		} else if vid := b.host.FirstByTag("video"); vid != nil {
			b.media = vid
		}
	}
	if b.media == nil {
		return false
	}

	mediaWidth, mediaHeight := b.media.IntrinsicSize()
	if mediaWidth <= 0 || mediaHeight <= 0 {
		return false
	}

	viewportWidth, viewportHeight := b.vp.InnerWidth(), b.vp.InnerHeight()
	if viewportWidth <= 0 || viewportHeight <= 0 {
		return false
	}

	mediaAspect := float64(mediaWidth) / float64(mediaHeight)
	viewportAspect := float64(viewportWidth) / float64(viewportHeight)

	cl := b.host.ClassList()
	if mediaAspect < viewportAspect {
		cl.Add(FillHeightClass)
	} else {
		cl.Remove(FillHeightClass)
	}

	b.removeLoadListener()
	return true
}

// attachLoadListener arms the one-shot load (img) or loadedmetadata
// (video) listener that re-runs evaluation once dimensions arrive.
// Removal on success is evaluate's responsibility. Reports whether a
// listener is in place, i.e. whether a media element was tracked.
func (b *Behavior) attachLoadListener() bool {
	if b.media == nil {
		return false
	}
	if b.loadHandle != 0 {
		return true
	}

	b.loadTarget = b.media
	b.loadEvent = b.media.LoadEventType()
	b.loadHandle = b.media.AddEventListener(b.loadEvent, func(*dom.Event) {
		b.evaluate()
	})
	return true
}

// removeLoadListener detaches the pending load listener, if any.
func (b *Behavior) removeLoadListener() {
	if b.loadHandle == 0 {
		return
	}
	b.loadTarget.RemoveEventListener(b.loadEvent, b.loadHandle)
	b.loadTarget = nil
	b.loadEvent = ""
	b.loadHandle = 0
}

// Detach removes every subscription the behavior holds: the resize
// listener, the pending load listener, the content-population
// subscription, and any outstanding timers. Idempotent.
func (b *Behavior) Detach() {
	if b.detached {
		return
	}
	b.detached = true

	if b.removeResize != nil {
		b.removeResize()
		b.removeResize = nil
	}
	if b.debounce != nil {
		b.debounce.Stop()
	}
	b.removeLoadListener()
	if b.removeContent != nil {
		b.removeContent()
		b.removeContent = nil
	}
	if b.retryTimer != 0 {
		b.loop.ClearTimeout(b.retryTimer)
		b.retryTimer = 0
	}
}
