// Package css provides CSS property-name normalization and a
// per-environment property support table used for feature detection.
package css

import "strings"

// ObjectFit is the containment property the polyfill probes for.
const ObjectFit = "object-fit"

// NormalizeProperty converts a camelCase property name ("objectFit")
// to its kebab-case CSS form ("object-fit") and lowercases it.
// Already-hyphenated names pass through unchanged.
func NormalizeProperty(property string) string {
	property = strings.TrimSpace(property)
	if property == "" {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(property) + 4)
	for _, r := range property {
		if r >= 'A' && r <= 'Z' {
			sb.WriteByte('-')
			sb.WriteRune(r + ('a' - 'A'))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Support is the set of CSS properties an environment's style objects
// recognize. Probing it emulates checking whether a property exists on
// a generic style declaration.
type Support struct {
	props map[string]bool
}

// NewSupport creates a support table containing the given properties.
// Names may be camelCase or kebab-case.
func NewSupport(properties ...string) *Support {
	s := &Support{props: make(map[string]bool, len(properties))}
	s.Add(properties...)
	return s
}

// Add registers additional supported properties.
func (s *Support) Add(properties ...string) {
	for _, p := range properties {
		if p = NormalizeProperty(p); p != "" {
			s.props[p] = true
		}
	}
}

// Remove unregisters properties.
func (s *Support) Remove(properties ...string) {
	for _, p := range properties {
		delete(s.props, NormalizeProperty(p))
	}
}

// Supports reports whether the given property (camelCase or kebab-case)
// is recognized.
func (s *Support) Supports(property string) bool {
	if s == nil {
		return false
	}
	return s.props[NormalizeProperty(property)]
}

// baseline is the property set every targeted environment recognizes.
// object-fit is deliberately absent: environments that know it are
// constructed with FullSupport or Add.
var baseline = []string{
	"background", "background-color", "background-image",
	"background-position", "background-repeat", "background-size",
	"border", "border-color", "border-radius", "border-style",
	"border-width", "bottom", "box-sizing", "clear", "color", "cursor",
	"display", "float", "font", "font-family", "font-size", "font-style",
	"font-weight", "height", "left", "letter-spacing", "line-height",
	"margin", "margin-bottom", "margin-left", "margin-right", "margin-top",
	"max-height", "max-width", "min-height", "min-width", "opacity",
	"overflow", "overflow-x", "overflow-y", "padding", "padding-bottom",
	"padding-left", "padding-right", "padding-top", "position", "right",
	"text-align", "text-decoration", "text-transform", "top", "vertical-align",
	"visibility", "white-space", "width", "z-index",
}

// DefaultSupport returns the support table of an environment that lacks
// the containment feature and therefore needs the polyfill.
func DefaultSupport() *Support {
	return NewSupport(baseline...)
}

// FullSupport returns the support table of an environment with native
// containment support.
func FullSupport() *Support {
	s := DefaultSupport()
	s.Add(ObjectFit)
	return s
}
