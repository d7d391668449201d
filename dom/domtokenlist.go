package dom

import (
	"fmt"
	"strings"
)

// TokenValidationError represents an error during token validation.
type TokenValidationError struct {
	Type    string // "SyntaxError" or "InvalidCharacterError"
	Message string
}

func (e *TokenValidationError) Error() string {
	return e.Message
}

// validateToken checks if a token is valid per the DOMTokenList spec.
func validateToken(token string) *TokenValidationError {
	if token == "" {
		return &TokenValidationError{
			Type:    "SyntaxError",
			Message: "The token provided must not be empty.",
		}
	}
	if strings.ContainsAny(token, " \t\n\r\f") {
		return &TokenValidationError{
			Type:    "InvalidCharacterError",
			Message: fmt.Sprintf("The token provided ('%s') contains HTML space characters, which are not valid in tokens.", token),
		}
	}
	return nil
}

// DOMTokenList represents a set of space-separated tokens.
// It is used for Element.classList.
type DOMTokenList struct {
	element  *Element
	attrName string
}

// newDOMTokenList creates a new DOMTokenList for the given element and attribute.
func newDOMTokenList(element *Element, attrName string) *DOMTokenList {
	return &DOMTokenList{
		element:  element,
		attrName: attrName,
	}
}

// tokens returns the current list of tokens, deduplicated, preserving order.
func (dtl *DOMTokenList) tokens() []string {
	if dtl.element == nil {
		return nil
	}
	value := dtl.element.GetAttribute(dtl.attrName)
	if value == "" {
		return nil
	}
	allTokens := strings.Fields(value)
	seen := make(map[string]bool)
	result := make([]string, 0, len(allTokens))
	for _, token := range allTokens {
		if !seen[token] {
			seen[token] = true
			result = append(result, token)
		}
	}
	return result
}

// setTokens writes the tokens back to the attribute. If the attribute
// did not exist and no tokens are being added, it stays unset.
func (dtl *DOMTokenList) setTokens(tokens []string) {
	if dtl.element == nil {
		return
	}
	if len(tokens) > 0 {
		dtl.element.SetAttribute(dtl.attrName, strings.Join(tokens, " "))
		return
	}
	if dtl.element.HasAttribute(dtl.attrName) {
		dtl.element.SetAttribute(dtl.attrName, "")
	}
}

// Length returns the number of tokens.
func (dtl *DOMTokenList) Length() int {
	return len(dtl.tokens())
}

// Item returns the token at the given index, or empty string if out of bounds.
func (dtl *DOMTokenList) Item(index int) string {
	tokens := dtl.tokens()
	if index < 0 || index >= len(tokens) {
		return ""
	}
	return tokens[index]
}

// Contains reports whether the given token is in the list.
// Invalid tokens (empty or containing whitespace) report false.
func (dtl *DOMTokenList) Contains(token string) bool {
	if err := validateToken(token); err != nil {
		return false
	}
	for _, t := range dtl.tokens() {
		if t == token {
			return true
		}
	}
	return false
}

// Add adds one or more tokens to the list.
// Returns an error if any token is empty or contains whitespace.
func (dtl *DOMTokenList) Add(tokens ...string) *TokenValidationError {
	for _, token := range tokens {
		if err := validateToken(token); err != nil {
			return err
		}
	}

	current := dtl.tokens()
	for _, token := range tokens {
		found := false
		for _, t := range current {
			if t == token {
				found = true
				break
			}
		}
		if !found {
			current = append(current, token)
		}
	}
	dtl.setTokens(current)
	return nil
}

// Remove removes one or more tokens from the list.
// Returns an error if any token is empty or contains whitespace.
func (dtl *DOMTokenList) Remove(tokens ...string) *TokenValidationError {
	for _, token := range tokens {
		if err := validateToken(token); err != nil {
			return err
		}
	}

	toRemove := make(map[string]bool)
	for _, token := range tokens {
		toRemove[token] = true
	}

	var result []string
	for _, t := range dtl.tokens() {
		if !toRemove[t] {
			result = append(result, t)
		}
	}
	dtl.setTokens(result)
	return nil
}

// Toggle toggles the presence of a token. If force is provided, it
// forces add (true) or remove (false). Returns whether the token is
// present after the operation.
func (dtl *DOMTokenList) Toggle(token string, force ...bool) (bool, *TokenValidationError) {
	if err := validateToken(token); err != nil {
		return false, err
	}

	contains := dtl.Contains(token)

	if len(force) > 0 {
		if force[0] {
			if !contains {
				dtl.Add(token)
			}
			return true, nil
		}
		if contains {
			dtl.Remove(token)
		}
		return false, nil
	}

	if contains {
		dtl.Remove(token)
		return false, nil
	}
	dtl.Add(token)
	return true, nil
}

// Value returns the underlying attribute string.
func (dtl *DOMTokenList) Value() string {
	if dtl.element == nil {
		return ""
	}
	return dtl.element.GetAttribute(dtl.attrName)
}

// Values returns the current tokens.
func (dtl *DOMTokenList) Values() []string {
	return dtl.tokens()
}

// String returns the string representation (same as Value).
func (dtl *DOMTokenList) String() string {
	return dtl.Value()
}
