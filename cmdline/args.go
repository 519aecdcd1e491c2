package cmdline

import (
	"fmt"
	"strings"

	"github.com/wildcoast/go-cmdline/internal/fuzzy"
	cmdio "github.com/wildcoast/go-cmdline/io"
)

// suggestionMaxDistance caps the edit distance for "did you mean" hints.
const suggestionMaxDistance = 2

// Args holds a validated set of declarations and parses token sequences
// against them. The indices are built once by New and never mutated; the
// resolved values and positional cursor are per-instance mutable state, so a
// single Args must not be parsed from multiple goroutines concurrently.
// Declarations themselves are immutable and safe to share.
type Args struct {
	decls      []Arg
	byName     map[string]int // name -> index into decls
	byLetter   map[string]int // letter -> index into decls
	positional []int          // indices into decls, in declaration order

	values  map[string]string
	cursor  int
	claimed map[int]bool // positional decl indices bound by name this parse
	lastErr *ParseError

	io *cmdio.Manager
}

// New builds a registry from the given declarations. It validates every
// declaration's shape, rejects duplicate names and letters, and indexes the
// set for parsing. A non-nil error is always a *DeclError: the embedding
// application declared something malformed and the registry is unusable.
func New(decls ...Arg) (*Args, error) {
	a := &Args{
		decls:    decls,
		byName:   make(map[string]int, len(decls)),
		byLetter: make(map[string]int, len(decls)),
		values:   make(map[string]string, len(decls)),
		claimed:  make(map[int]bool),
		io:       cmdio.New(),
	}

	for i, d := range decls {
		if err := d.validate(); err != nil {
			return nil, err
		}
		if _, dup := a.byName[d.name]; dup {
			return nil, &DeclError{Arg: d.name, Message: fmt.Sprintf("duplicate argument name %q", d.name)}
		}
		a.byName[d.name] = i
		if d.letter != "" {
			if _, dup := a.byLetter[d.letter]; dup {
				return nil, &DeclError{Arg: d.name, Message: fmt.Sprintf("duplicate argument letter %q", d.letter)}
			}
			a.byLetter[d.letter] = i
		}
		if d.kind == KindPositional {
			a.positional = append(a.positional, i)
		}
	}

	a.reset()
	return a, nil
}

// WithIO replaces the IO manager, redirecting the diagnostic write that
// Parse performs on failure. Returns the registry for chaining.
func (a *Args) WithIO(m *cmdio.Manager) *Args {
	a.io = m
	return a
}

// IO returns the registry's IO manager.
func (a *Args) IO() *cmdio.Manager { return a.io }

// Parse parses a token sequence. On failure it writes a single line of the
// form "Parsing command line failed, details: <message>" to the diagnostic
// sink and returns false; the registry stays usable and holds only the
// declaration defaults. On success the accessors expose the bound values.
func (a *Args) Parse(tokens []string) bool {
	if err := a.ParseTokens(tokens); err != nil {
		fmt.Fprintf(a.io.Err(), "Parsing command line failed, details: %s\n", err.Error())
		return false
	}
	return true
}

// ParseArgv behaves like Parse but takes a full argument vector as handed to
// the process, dropping the leading program name.
func (a *Args) ParseArgv(argv []string) bool {
	if len(argv) == 0 {
		return a.Parse(nil)
	}
	return a.Parse(argv[1:])
}

// ParseTokens is the error-returning form of Parse. It performs no
// diagnostic write; the returned error is always a *ParseError.
func (a *Args) ParseTokens(tokens []string) error {
	if err := a.parse(tokens); err != nil {
		// Discard anything bound before the failure; the post-failure state
		// is the default-seeded one, never a mix of old and new values.
		a.reset()
		a.lastErr = err
		return err
	}
	return nil
}

// LastError returns the ParseError recorded by the most recent failed parse,
// including any fuzzy suggestion, or nil if the last parse succeeded.
func (a *Args) LastError() *ParseError { return a.lastErr }

// parse runs the single-pass token walk described by the declaration set:
// classify each token, bind flags and valued options by name or letter, feed
// unresolved tokens to the ordered positionals, then enforce required-ness.
// State is reset up front, so a failed parse leaves defaults only, never a
// mix of old and new values.
func (a *Args) parse(tokens []string) *ParseError {
	a.reset()

	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		name, perr := stripDashes(tok)
		if perr != nil {
			return perr
		}

		decl, ok := a.lookup(name)
		if !ok {
			// Positionals already bound by name don't take a slot here.
			for a.cursor < len(a.positional) && a.claimed[a.positional[a.cursor]] {
				a.cursor++
			}
			if a.cursor < len(a.positional) {
				pos := &a.decls[a.positional[a.cursor]]
				if !pos.IsValidValue(tok) {
					return &ParseError{
						Type:    ErrorTypeInvalidValue,
						Arg:     pos.name,
						Message: fmt.Sprintf("value %s for argument %s isn't one of the options", tok, pos.name),
					}
				}
				a.values[pos.name] = tok
				a.cursor++
				i++
				continue
			}
			return a.unknownArgumentError(tok, name)
		}

		if decl.IsFlag() {
			a.values[decl.name] = ""
			i++
			continue
		}

		// Valued option (or a positional referenced by name): the next token
		// is claimed as the value unconditionally, even if it looks like an
		// option reference itself.
		if i+1 >= len(tokens) {
			return &ParseError{
				Type:    ErrorTypeMissingValue,
				Arg:     decl.name,
				Message: fmt.Sprintf("argument %s given without a value", tok),
			}
		}
		value := tokens[i+1]
		if !decl.IsValidValue(value) {
			return &ParseError{
				Type:    ErrorTypeInvalidValue,
				Arg:     decl.name,
				Message: fmt.Sprintf("value %s for argument %s isn't one of the options", value, tok),
			}
		}
		a.values[decl.name] = value
		if decl.kind == KindPositional {
			a.claimed[a.byName[decl.name]] = true
		}
		i += 2
	}

	// An empty command line is valid input; only this check can reject it.
	for idx := range a.decls {
		d := &a.decls[idx]
		if !d.required {
			continue
		}
		if _, set := a.values[d.name]; !set {
			return &ParseError{
				Type:    ErrorTypeMissingRequired,
				Arg:     d.name,
				Message: fmt.Sprintf("%s is required but was not set", d.name),
			}
		}
	}

	return nil
}

// reset clears resolved values and re-seeds declaration defaults, making
// Parse idempotent across repeated calls on the same registry.
func (a *Args) reset() {
	clear(a.values)
	clear(a.claimed)
	a.cursor = 0
	a.lastErr = nil
	for _, d := range a.decls {
		if d.hasDefault {
			a.values[d.name] = d.def
		}
	}
}

// lookup resolves a stripped token against the letter index first, then the
// name index.
func (a *Args) lookup(name string) (*Arg, bool) {
	if i, ok := a.byLetter[name]; ok {
		return &a.decls[i], true
	}
	if i, ok := a.byName[name]; ok {
		return &a.decls[i], true
	}
	return nil, false
}

// unknownArgumentError builds the unknown-token error, attaching a fuzzy
// suggestion when a declared name is within editing distance. The suggestion
// never changes the diagnostic line itself.
func (a *Args) unknownArgumentError(tok, name string) *ParseError {
	err := &ParseError{
		Type:    ErrorTypeUnknownArgument,
		Message: fmt.Sprintf("couldn't find %s in specified list of arguments", tok),
	}
	names := make([]string, 0, len(a.decls))
	for _, d := range a.decls {
		names = append(names, d.name)
	}
	if best := fuzzy.FindBest(name, names, suggestionMaxDistance); best != "" {
		err.Suggestion = fmt.Sprintf("Did you mean '--%s'?", best)
	}
	return err
}

// stripDashes classifies a token: "--name" yields a long-name reference,
// "-x" a letter reference, and a bare token is returned unchanged so the
// caller can attempt positional binding. An empty token is malformed.
func stripDashes(tok string) (string, *ParseError) {
	if tok == "" {
		return "", NewParseError(ErrorTypeMalformedToken, "argument needs at least one character")
	}
	if strings.HasPrefix(tok, "--") {
		return tok[2:], nil
	}
	if strings.HasPrefix(tok, "-") {
		return tok[1:], nil
	}
	return tok, nil
}
