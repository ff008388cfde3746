package knuckleball

import "strings"

// RenderContext supplies the float rendering precision and comparison
// tolerance an Instance needs while rendering or comparing values.
// Instances depend on this small interface rather than on *Context
// directly, per the guidance to avoid a process-wide singleton: tests
// can supply a fixed stub instead of standing up a whole Context.
type RenderContext interface {
	FloatPrecision() int
	FloatTolerance() float64
}

// Instance is a value held in the registry under a unique name, with
// a fixed Kind for its lifetime and a uniform message-receiving
// contract.
type Instance interface {
	// Name is the instance's fully-qualified registry key. Immutable.
	Name() string
	// Kind is the instance's concrete variant. Immutable.
	Kind() Kind
	// Receive handles one message already routed to this instance,
	// returning its textual reply or an *Error.
	Receive(rc RenderContext, messageName string, arguments []string) (string, error)
	// Representation renders the instance's current value in its
	// wire form.
	Representation(rc RenderContext) string
}

// staticRenderContext is a fixed-precision RenderContext, used by
// tests and by any caller that needs to render outside of a live
// Context (e.g. constructing a literal default).
type staticRenderContext struct {
	precision int
	tolerance float64
}

func (s staticRenderContext) FloatPrecision() int      { return s.precision }
func (s staticRenderContext) FloatTolerance() float64  { return s.tolerance }

// defaultRenderContext matches the Context's own default tunables.
var defaultRenderContext = staticRenderContext{precision: 6, tolerance: 1e-6}

// newInstance constructs a fresh Instance of kind from a type-actor
// creation message. elems carries the element kind(s) parsed from the
// type actor for collection kinds (nil for scalars). Every
// constructor treats arguments[0] as the target instance's name.
func newInstance(kind Kind, elems []Kind, messageName string, arguments []string) (Instance, error) {
	if len(arguments) == 0 {
		return nil, newError(ExcWrongNumberOfArguments, "missing target name")
	}
	name := arguments[0]
	if !IsVariable(name) {
		return nil, newError(ExcInvalidArgument, "not a valid variable name: "+name)
	}
	rest := arguments[1:]
	switch kind {
	case KindBoolean:
		return newBooleanInstance(name, messageName, rest)
	case KindCharacter:
		return newCharacterInstance(name, messageName, rest)
	case KindInteger:
		return newIntegerInstance(name, messageName, rest)
	case KindFloat:
		return newFloatInstance(name, messageName, rest)
	case KindString:
		return newStringInstance(name, messageName, rest)
	case KindVector:
		return newVectorInstance(name, elems[0], messageName, rest)
	case KindSet:
		return newSetInstance(name, elems[0], messageName, rest)
	case KindDictionary:
		return newDictionaryInstance(name, elems[0], elems[1], messageName, rest)
	default:
		return nil, newError(ExcInvalidMessage, "unknown type")
	}
}

// requireArity fails with ExcWrongNumberOfArguments unless args has
// exactly n elements.
func requireArity(args []string, n int) error {
	if len(args) != n {
		return newError(ExcWrongNumberOfArguments, "")
	}
	return nil
}

// requireScalarConstructor validates the two selectors every scalar
// type's constructor accepts and reports which one is a
// createIfNotExists variant.
func requireScalarConstructor(messageName string, args []string) (createIfNotExists bool, err error) {
	switch {
	case messageName == "create:withValue:":
		createIfNotExists = false
	case messageName == "createIfNotExists:withValue:":
		createIfNotExists = true
	default:
		return false, newError(ExcInvalidMessage, "unknown constructor: "+messageName)
	}
	if err := requireArity(args, 1); err != nil {
		return false, err
	}
	return createIfNotExists, nil
}

// requireCollectionConstructor validates the four selectors every
// collection type's constructor accepts.
func requireCollectionConstructor(messageName string, args []string) (createIfNotExists, withElements bool, err error) {
	switch messageName {
	case "create:":
		return false, false, requireArity(args, 0)
	case "createIfNotExists:":
		return true, false, requireArity(args, 0)
	case "create:withElements:":
		return false, true, requireArity(args, 1)
	case "createIfNotExists:withElements:":
		return true, true, requireArity(args, 1)
	default:
		return false, false, newError(ExcInvalidMessage, "unknown constructor: "+messageName)
	}
}

// splitCollectionLiteral strips the surrounding [ ] or { } delimiters
// and top-level-comma-splits the interior, honoring nested
// [ ] / { } depth and "..."/'...' quoting exactly as the parser does
// for message arguments.
func splitCollectionLiteral(lit string, open, close byte) ([]string, error) {
	if len(lit) < 2 || lit[0] != open || lit[len(lit)-1] != close {
		return nil, newError(ExcInvalidArgument, "malformed collection literal: "+lit)
	}
	inner := lit[1 : len(lit)-1]
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return nil, nil
	}
	var parts []string
	depth := 0
	start := 0
	i := 0
	for i < len(inner) {
		c := inner[i]
		switch c {
		case '"', '\'':
			j, err := skipQuotedAt(inner, i)
			if err != nil {
				return nil, err
			}
			i = j
			continue
		case '[', '{':
			depth++
		case ']', '}':
			depth--
			if depth < 0 {
				return nil, newError(ExcInvalidArgument, "unbalanced collection literal: "+lit)
			}
		case ',':
			if depth == 0 {
				part := strings.TrimSpace(inner[start:i])
				if part == "" {
					return nil, newError(ExcInvalidArgument, "empty element in: "+lit)
				}
				parts = append(parts, part)
				start = i + 1
			}
		}
		i++
	}
	if depth != 0 {
		return nil, newError(ExcInvalidArgument, "unbalanced collection literal: "+lit)
	}
	last := strings.TrimSpace(inner[start:])
	if last == "" {
		return nil, newError(ExcInvalidArgument, "empty element in: "+lit)
	}
	parts = append(parts, last)
	return parts, nil
}

// skipQuotedAt returns the index just past the closing quote of the
// quoted region starting at i in s.
func skipQuotedAt(s string, i int) (int, error) {
	quote := s[i]
	i++
	for {
		if i >= len(s) {
			return 0, newError(ExcInvalidArgument, "unterminated quote")
		}
		c := s[i]
		if c == '\\' {
			if i+1 >= len(s) {
				return 0, newError(ExcInvalidArgument, "dangling escape")
			}
			i += 2
			continue
		}
		i++
		if c == quote {
			return i, nil
		}
	}
}
