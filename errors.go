package knuckleball

// ErrorKind is one of the stable, wire-visible failure categories a
// dispatcher operation can raise. Its String form is the reply text a
// client actually sees, so the constants below must never be renamed.
type ErrorKind int

const (
	// ExcUnknownError is the fallback for otherwise uncategorized failures.
	ExcUnknownError ErrorKind = iota
	// ExcMalformedInput is raised when the parser cannot tokenize a line.
	ExcMalformedInput
	// ExcInvalidMessage is raised when the actor is recognized but the
	// selector is not in its table.
	ExcInvalidMessage
	// ExcWrongNumberOfArguments is raised on selector arity mismatch.
	ExcWrongNumberOfArguments
	// ExcInvalidArgument is raised when an argument fails its selector's
	// per-argument predicate.
	ExcInvalidArgument
	// ExcVariableNameAlreadyUsed is raised when a non-createIfNotExists
	// creation selector targets an occupied name.
	ExcVariableNameAlreadyUsed
	// ExcUnexistentVariable is raised when a variable or delete target is
	// not found.
	ExcUnexistentVariable
)

var exceptionText = map[ErrorKind]string{
	ExcUnknownError:            "EXC_UNKNOWN_ERROR",
	ExcMalformedInput:          "EXC_MALFORMED_INPUT",
	ExcInvalidMessage:          "EXC_INVALID_MESSAGE",
	ExcWrongNumberOfArguments:  "EXC_WRONG_NUMBER_OF_ARGUMENTS",
	ExcInvalidArgument:         "EXC_INVALID_ARGUMENT",
	ExcVariableNameAlreadyUsed: "EXC_VARIABLE_NAME_ALREADY_USED",
	ExcUnexistentVariable:      "EXC_UNEXISTENT_VARIABLE",
}

// String returns the wire representation of the error kind.
func (k ErrorKind) String() string {
	if s, ok := exceptionText[k]; ok {
		return s
	}
	return exceptionText[ExcUnknownError]
}

// Error is a dispatcher failure. It satisfies the error interface so
// that internal code threads it through ordinary Go error returns;
// only Context.Execute converts one to its wire text.
type Error struct {
	Kind ErrorKind
	// Detail is an optional, human-oriented addition. It is never
	// included in the wire reply: the wire protocol only ever exposes
	// the stable Kind string, per the error taxonomy's contract.
	Detail string
}

// Error implements the error interface, returning the stable wire code.
func (e *Error) Error() string {
	return e.Kind.String()
}

func newError(kind ErrorKind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

// asReply converts any error into its wire text, mapping errors not
// produced by this package to EXC_UNKNOWN_ERROR. A nil error should
// never reach this function; callers convert successful results
// separately.
func asReply(err error) string {
	if e, ok := err.(*Error); ok {
		return e.Kind.String()
	}
	return ExcUnknownError.String()
}
