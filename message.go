package knuckleball

import "strings"

// Message is the decomposed form of one input line: the leading actor
// token, the (possibly multi-keyword) selector, and its argument
// texts. Arguments are kept verbatim — the parser does not evaluate
// them, per the parser's contract; the receiving instance parses each
// one in its own grammar.
type Message struct {
	Actor     string
	Selector  string
	Arguments []string
}

// Arity is the number of colon-terminated keywords in the selector,
// which is by construction always equal to len(Arguments).
func (m Message) Arity() int {
	return strings.Count(m.Selector, ":")
}

// IsUnary reports whether the selector takes no arguments.
func (m Message) IsUnary() bool {
	return m.Arity() == 0
}
