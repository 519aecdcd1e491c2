package cmdline

import (
	"errors"
	"testing"
)

func TestDeclarationShapeErrors(t *testing.T) {
	tests := []struct {
		name string
		decl Arg
	}{
		{"name too short", NewFlag("v", "v", "Single character name")},
		{"letter too long", NewFlag("version", "ve", "Two character letter")},
		{"default outside allow-list", NewArg("colour", "c", "Colour", "red", "green").WithDefault("mauve")},
		{"required and defaulted", NewArg("colour", "c", "Colour").WithDefault("red").Require()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.decl)
			if err == nil {
				t.Fatal("Expected registry construction to fail")
			}
			var derr *DeclError
			if !errors.As(err, &derr) {
				t.Fatalf("Expected *DeclError, got %T", err)
			}
		})
	}
}

func TestDuplicateDeclarations(t *testing.T) {
	if _, err := New(
		NewFlag("version", "v", "Version"),
		NewArg("version", "n", "Same name again"),
	); err == nil {
		t.Error("Expected duplicate name to be rejected")
	}

	if _, err := New(
		NewFlag("version", "v", "Version"),
		NewFlag("verbose", "v", "Same letter again"),
	); err == nil {
		t.Error("Expected duplicate letter to be rejected")
	}
}

func TestIsValidValue(t *testing.T) {
	free := NewArg("number", "n", "Any value accepted")
	if !free.IsValidValue("anything") || !free.IsValidValue("") {
		t.Error("Expected empty allow-list to accept every value")
	}

	restricted := NewArg("colour", "c", "Colour", "red", "green", "blue")
	if !restricted.IsValidValue("red") {
		t.Error("Expected listed value to be accepted")
	}
	if restricted.IsValidValue("mauve") {
		t.Error("Expected unlisted value to be rejected")
	}
}

func TestDeclarationAccessors(t *testing.T) {
	decl := NewArg("operation", "o", "Operation to perform", "add", "subtract").WithDefault("add")

	if decl.Name() != "operation" || decl.Letter() != "o" {
		t.Errorf("Unexpected identity: %q / %q", decl.Name(), decl.Letter())
	}
	if decl.Kind() != KindValue || decl.IsFlag() {
		t.Error("Expected a valued declaration")
	}
	if def, ok := decl.Default(); !ok || def != "add" {
		t.Errorf("Expected default 'add', got %q (set=%v)", def, ok)
	}
	if decl.IsRequired() {
		t.Error("Expected a defaulted declaration to be optional")
	}

	values := decl.AllowedValues()
	if len(values) != 2 || values[0] != "add" {
		t.Errorf("Unexpected allow-list %v", values)
	}
	// The returned slice is a copy; mutating it must not touch the declaration.
	values[0] = "divide"
	if !decl.IsValidValue("add") {
		t.Error("Expected declaration to be unaffected by mutation of the returned allow-list")
	}
}

func TestPositionalDefaults(t *testing.T) {
	p := NewPositional("input", "Input file")
	if !p.IsRequired() {
		t.Error("Expected positionals to default to required")
	}
	if p.Letter() != "" {
		t.Error("Expected positionals to have no letter")
	}

	opt := p.WithDefault("stdin")
	if opt.IsRequired() {
		t.Error("Expected a defaulted positional to be optional")
	}
	// The modifier returns a copy; the original stays required.
	if !p.IsRequired() {
		t.Error("Expected the original declaration to be unchanged")
	}
}
