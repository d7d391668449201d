package css

import "testing"

func TestNormalizeProperty(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"objectFit", "object-fit"},
		{"object-fit", "object-fit"},
		{"backgroundColor", "background-color"},
		{"width", "width"},
		{"  marginTop  ", "margin-top"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeProperty(tt.in); got != tt.want {
			t.Errorf("NormalizeProperty(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDefaultSupport(t *testing.T) {
	s := DefaultSupport()

	if !s.Supports("width") || !s.Supports("display") {
		t.Error("Expected baseline properties to be supported")
	}
	if s.Supports(ObjectFit) {
		t.Error("Expected object-fit to be unsupported by default")
	}
	if s.Supports("objectFit") {
		t.Error("Expected camelCase probe to agree with kebab-case")
	}
}

func TestFullSupport(t *testing.T) {
	s := FullSupport()

	if !s.Supports(ObjectFit) {
		t.Error("Expected object-fit to be supported")
	}
	if !s.Supports("objectFit") {
		t.Error("Expected camelCase probe to find object-fit")
	}
}

func TestSupport_AddRemove(t *testing.T) {
	s := NewSupport("width")

	s.Add("objectFit")
	if !s.Supports("object-fit") {
		t.Error("Expected added property to be supported")
	}

	s.Remove("object-fit")
	if s.Supports("objectFit") {
		t.Error("Expected removed property to be unsupported")
	}
}

func TestSupport_NilSafe(t *testing.T) {
	var s *Support
	if s.Supports("width") {
		t.Error("Expected nil support table to report unsupported")
	}
}
