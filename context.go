package knuckleball

import (
	"strconv"
	"strings"
	"sync"
)

// SessionHandle answers the small message table the Connection actor
// forwards to, one instance per client session.
type SessionHandle interface {
	Receive(messageName string, arguments []string) string
}

// Context is the shared dispatcher: a registry of live instances plus
// the two global rendering tunables every Float operation consults.
// A single *Context is meant to be shared across every connection in
// a process, so Execute and ApplyConfig take mu. The RenderContext
// accessors FloatPrecision and FloatTolerance do not; they are called
// from within Execute while mu is held.
type Context struct {
	mu sync.Mutex

	reg *registry

	floatPrecision  int
	floatTolerance  float64
	quiet           bool
	sink            LogSink
}

// NewContext builds a Context with the given tunables and log sink.
// A nil sink disables file logging; whether stdout logging happens in
// that case is controlled by quiet.
func NewContext(floatPrecision int, floatTolerance float64, quiet bool, sink LogSink) *Context {
	return &Context{
		reg:            newRegistry(),
		floatPrecision: floatPrecision,
		floatTolerance: floatTolerance,
		quiet:          quiet,
		sink:           sink,
	}
}

// FloatPrecision implements RenderContext.
func (c *Context) FloatPrecision() int { return c.floatPrecision }

// FloatTolerance implements RenderContext.
func (c *Context) FloatTolerance() float64 { return c.floatTolerance }

// Execute parses input, routes it to the right handler based on its
// actor's grammatical role, and returns the wire reply. Every failure
// along the way, parse or dispatch, is caught and rendered as its
// EXC_* text rather than propagated, matching the try/catch-everything
// boundary the original dispatcher draws around one request. session
// is used only when the actor is the Connection keyword; it may be nil
// otherwise.
func (c *Context) Execute(input string, session SessionHandle) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	output := c.dispatch(input, session)
	c.log(input, output)
	return output
}

func (c *Context) dispatch(input string, session SessionHandle) (output string) {
	defer func() {
		if r := recover(); r != nil {
			output = ExcUnknownError.String()
		}
	}()

	msg, err := Parse(input)
	if err != nil {
		return asReply(err)
	}

	switch {
	case IsType(msg.Actor):
		result, err := c.executeInType(msg)
		if err != nil {
			return asReply(err)
		}
		return result
	case IsContext(msg.Actor):
		result, err := c.executeInContext(msg)
		if err != nil {
			return asReply(err)
		}
		return result
	case IsVariable(msg.Actor):
		result, err := c.executeInVariable(msg)
		if err != nil {
			return asReply(err)
		}
		return result
	case IsConnection(msg.Actor):
		if session == nil {
			return ExcInvalidMessage.String()
		}
		return session.Receive(msg.Selector, msg.Arguments)
	default:
		return ExcInvalidMessage.String()
	}
}

// executeInType handles a message whose actor is a type actor: it
// constructs a new instance of that type and registers it under the
// name its first argument names, following a find-or-register-or-reject
// sequence.
func (c *Context) executeInType(msg Message) (string, error) {
	kind, elems, ok := ParseTypeActor(msg.Actor)
	if !ok {
		return "", newError(ExcInvalidMessage, "not a recognized type actor: "+msg.Actor)
	}
	inst, err := newInstance(kind, elems, msg.Selector, msg.Arguments)
	if err != nil {
		return "", err
	}
	if !c.reg.has(inst.Name()) {
		c.reg.put(inst)
		return "null", nil
	}
	if strings.HasPrefix(msg.Selector, "createIfNotExists:") {
		return "null", nil
	}
	return "", newError(ExcVariableNameAlreadyUsed, inst.Name())
}

// executeInVariable forwards a message to an already-registered
// instance.
func (c *Context) executeInVariable(msg Message) (string, error) {
	inst, ok := c.reg.get(msg.Actor)
	if !ok {
		return "", newError(ExcUnexistentVariable, msg.Actor)
	}
	return inst.Receive(c, msg.Selector, msg.Arguments)
}

// executeInContext handles the fixed Context message table.
func (c *Context) executeInContext(msg Message) (string, error) {
	switch msg.Selector {
	case "listNamespaces":
		return c.opListNamespaces(msg.Arguments)
	case "listVariables":
		return c.opListVariables(msg.Arguments)
	case "listVariablesOfNamespace:":
		return c.opListVariablesOfNamespace(msg.Arguments)
	case "deleteVariable:":
		return c.opDeleteVariable(msg.Arguments)
	case "deleteVariablesOfNamespace:":
		return c.opDeleteVariablesOfNamespace(msg.Arguments)
	case "getFloatPrecision":
		return c.opGetFloatPrecision(msg.Arguments)
	case "setFloatPrecision:":
		return c.opSetFloatPrecision(msg.Arguments)
	case "getFloatComparisonTolerance":
		return c.opGetFloatComparisonTolerance(msg.Arguments)
	case "setFloatComparisonTolerance:":
		return c.opSetFloatComparisonTolerance(msg.Arguments)
	default:
		return "", newError(ExcInvalidMessage, "Context has no message "+msg.Selector)
	}
}

func (c *Context) opListNamespaces(args []string) (string, error) {
	if err := requireArity(args, 0); err != nil {
		return "", err
	}
	names := c.reg.namespaces()
	return "[" + strings.Join(names, ",") + "]", nil
}

func (c *Context) opListVariables(args []string) (string, error) {
	if err := requireArity(args, 0); err != nil {
		return "", err
	}
	return "[" + strings.Join(c.reg.names(), ",") + "]", nil
}

func (c *Context) opListVariablesOfNamespace(args []string) (string, error) {
	if err := requireArity(args, 1); err != nil {
		return "", err
	}
	if !IsNamespace(args[0]) {
		return "", newError(ExcInvalidArgument, args[0])
	}
	return "[" + strings.Join(c.reg.namesInNamespace(args[0]), ",") + "]", nil
}

func (c *Context) opDeleteVariable(args []string) (string, error) {
	if err := requireArity(args, 1); err != nil {
		return "", err
	}
	if !IsVariable(args[0]) {
		return "", newError(ExcInvalidArgument, args[0])
	}
	if !c.reg.delete(args[0]) {
		return "", newError(ExcUnexistentVariable, args[0])
	}
	return "null", nil
}

func (c *Context) opDeleteVariablesOfNamespace(args []string) (string, error) {
	if err := requireArity(args, 1); err != nil {
		return "", err
	}
	if !IsNamespace(args[0]) {
		return "", newError(ExcInvalidArgument, args[0])
	}
	// Collect before deleting: mutating the registry while walking its
	// name list would be as unsound here as it is in the original's
	// two-pass collect-then-erase.
	for _, name := range c.reg.namesInNamespace(args[0]) {
		c.reg.delete(name)
	}
	return "null", nil
}

func (c *Context) opGetFloatPrecision(args []string) (string, error) {
	if err := requireArity(args, 0); err != nil {
		return "", err
	}
	return strconv.Itoa(c.floatPrecision), nil
}

func (c *Context) opSetFloatPrecision(args []string) (string, error) {
	if err := requireArity(args, 1); err != nil {
		return "", err
	}
	v, err := parseScalarLiteral(KindInteger, args[0])
	if err != nil {
		return "", err
	}
	p := v.(int64)
	if p <= 0 {
		return "", newError(ExcInvalidArgument, args[0])
	}
	c.floatPrecision = int(p)
	return "null", nil
}

func (c *Context) opGetFloatComparisonTolerance(args []string) (string, error) {
	if err := requireArity(args, 0); err != nil {
		return "", err
	}
	return renderFloat(c.floatTolerance, c), nil
}

func (c *Context) opSetFloatComparisonTolerance(args []string) (string, error) {
	if err := requireArity(args, 1); err != nil {
		return "", err
	}
	v, err := parseScalarLiteral(KindFloat, args[0])
	if err != nil {
		return "", err
	}
	t := v.(float64)
	if t < 0 {
		return "", newError(ExcInvalidArgument, args[0])
	}
	c.floatTolerance = t
	return "null", nil
}

// ApplyConfig hot-applies a reloaded configuration's tunables. Invalid
// values (precision <= 0, tolerance < 0) are silently ignored rather
// than allowed to corrupt live state; quiet is always applied. The caller (the config watcher) is expected to have already
// validated with config.Config.Validate, so this is a second line of
// defense, not the primary check.
func (c *Context) ApplyConfig(precision int, tolerance float64, quiet bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if precision > 0 {
		c.floatPrecision = precision
	}
	if tolerance >= 0 {
		c.floatTolerance = tolerance
	}
	c.quiet = quiet
}
