package cmdline

import (
	"fmt"
	"slices"
	"unicode/utf8"
)

// Kind classifies a declaration by how the parser binds it.
type Kind string

const (
	// KindFlag is a presence-only argument; it never consumes a value token.
	KindFlag Kind = "flag"
	// KindValue is a named argument that consumes exactly one following token.
	KindValue Kind = "value"
	// KindPositional is bound by order of appearance rather than by name.
	KindPositional Kind = "positional"
)

// Arg is an immutable description of one accepted flag, valued option or
// positional argument. Construct one with NewFlag, NewArg or NewPositional
// and refine it with the copy-returning modifiers; shape violations are
// recorded in the declaration and reported by New as a *DeclError.
type Arg struct {
	name        string
	letter      string
	description string
	kind        Kind
	values      []string
	def         string
	hasDefault  bool
	required    bool
	err         error
}

// NewFlag declares a presence-only flag, e.g. --version / -v.
func NewFlag(name, letter, description string) Arg {
	a := Arg{
		name:        name,
		letter:      letter,
		description: description,
		kind:        KindFlag,
	}
	a.err = a.shapeError()
	return a
}

// NewArg declares a valued option, e.g. --colour red / -c red. A non-empty
// values list restricts the accepted values; an empty list accepts anything.
func NewArg(name, letter, description string, values ...string) Arg {
	a := Arg{
		name:        name,
		letter:      letter,
		description: description,
		kind:        KindValue,
		values:      values,
	}
	a.err = a.shapeError()
	return a
}

// NewPositional declares an argument bound by position. Positionals have no
// letter and are required unless given a default.
func NewPositional(name, description string, values ...string) Arg {
	a := Arg{
		name:        name,
		description: description,
		kind:        KindPositional,
		values:      values,
		required:    true,
	}
	a.err = a.shapeError()
	return a
}

// Require returns a copy marked as required: parsing fails unless the
// argument appears on the command line. A required flag only ever tests that
// the user supplied it.
func (a Arg) Require() Arg {
	a.required = true
	return a
}

// WithDefault returns a copy carrying a default value. A defaulted argument
// is optional; the default is seeded at the start of every parse and must be
// a member of the allow-list when one is set.
func (a Arg) WithDefault(value string) Arg {
	a.def = value
	a.hasDefault = true
	a.required = false
	return a
}

// Name returns the canonical identifier, used as "--name".
func (a Arg) Name() string { return a.name }

// Letter returns the single-character short form, used as "-x". Empty means
// the declaration has no short form.
func (a Arg) Letter() string { return a.letter }

// Description returns the free text shown in usage output.
func (a Arg) Description() string { return a.description }

// Kind returns the declaration kind.
func (a Arg) Kind() Kind { return a.kind }

// AllowedValues returns a copy of the allow-list; empty means any value.
func (a Arg) AllowedValues() []string { return slices.Clone(a.values) }

// Default returns the default value and whether one is set.
func (a Arg) Default() (string, bool) { return a.def, a.hasDefault }

// IsRequired reports whether parsing fails when the argument is absent.
func (a Arg) IsRequired() bool { return a.required }

// IsFlag reports whether the declaration takes no value.
func (a Arg) IsFlag() bool { return a.kind == KindFlag }

// IsValidValue reports whether v is acceptable for this declaration. An
// empty allow-list accepts every value.
func (a Arg) IsValidValue(v string) bool {
	if len(a.values) == 0 {
		return true
	}
	return slices.Contains(a.values, v)
}

// shapeError validates the declaration's own shape. Cross-declaration checks
// (duplicate names and letters) happen in New.
func (a Arg) shapeError() error {
	if utf8.RuneCountInString(a.name) < 2 {
		return &DeclError{Arg: a.name, Message: fmt.Sprintf("name %q needs at least two characters", a.name)}
	}
	if utf8.RuneCountInString(a.letter) > 1 {
		return &DeclError{Arg: a.name, Message: fmt.Sprintf("letter %q needs at most one character", a.letter)}
	}
	return nil
}

// validate re-checks shape plus the invariants a modifier may have broken
// after construction.
func (a Arg) validate() error {
	if a.err != nil {
		return a.err
	}
	if err := a.shapeError(); err != nil {
		return err
	}
	if a.required && a.hasDefault {
		return &DeclError{Arg: a.name, Message: fmt.Sprintf("%s cannot be both required and defaulted", a.name)}
	}
	if a.hasDefault && !a.IsValidValue(a.def) {
		return &DeclError{Arg: a.name, Message: fmt.Sprintf("default %q for %s isn't one of the allowed values", a.def, a.name)}
	}
	return nil
}
