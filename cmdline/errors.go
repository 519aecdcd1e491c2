package cmdline

// ErrorType categorizes parse failures so callers can branch on the cause
// without matching message text.
type ErrorType string

const (
	ErrorTypeMalformedToken  ErrorType = "malformed_token"
	ErrorTypeUnknownArgument ErrorType = "unknown_argument"
	ErrorTypeMissingValue    ErrorType = "missing_value"
	ErrorTypeInvalidValue    ErrorType = "invalid_value"
	ErrorTypeMissingRequired ErrorType = "missing_required"
)

// ParseError reports a failure while parsing a token sequence. Parse errors
// are recoverable: the registry remains usable and a later Parse call starts
// from a clean, default-seeded state.
type ParseError struct {
	Type       ErrorType
	Message    string
	Arg        string // declaration name, when one is involved
	Suggestion string // optional "Did you mean ...?" hint for unknown tokens
}

func (e *ParseError) Error() string {
	return e.Message
}

// NewParseError creates a ParseError with the given type and message.
func NewParseError(typ ErrorType, message string) *ParseError {
	return &ParseError{Type: typ, Message: message}
}

// DeclError reports a malformed or conflicting declaration detected while
// building a registry. Unlike a ParseError it signals a programming mistake
// in the embedding application, and New refuses to construct the registry.
type DeclError struct {
	Arg     string
	Message string
}

func (e *DeclError) Error() string {
	return e.Message
}
