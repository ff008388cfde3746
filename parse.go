package knuckleball

import "strings"

// Parse decomposes an input line into an actor, a message selector,
// and an argument list, per the syntactic contract:
//
//	line     := actor WS message
//	message  := unary
//	          | keyword ":" WS* arg ("," WS* keyword ":" WS* arg)*
//
// Each keyword is followed by its own argument, Smalltalk-style; the
// returned selector is the keywords joined ("create:withValue:").
// Arguments are returned as their raw textual form, unevaluated.
// Parse fails with an ExcMalformedInput *Error when the line does not
// fit this grammar.
//
// This is a synchronous recursive-descent scan rather than a streaming
// lexer: with no operator precedence and no arbitrarily nested block
// structure to stream, a single-pass scan over the line is simpler and
// carries the same correctness guarantees. See DESIGN.md.
func Parse(line string) (Message, error) {
	p := &parser{src: line}
	return p.parse()
}

type parser struct {
	src string
	pos int
}

func malformed() error {
	return newError(ExcMalformedInput, "could not tokenize input")
}

func (p *parser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && isSpace(p.src[p.pos]) {
		p.pos++
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func (p *parser) parse() (Message, error) {
	p.skipSpace()
	actor, err := p.scanActor()
	if err != nil {
		return Message{}, err
	}
	if p.pos >= len(p.src) || !isSpace(p.src[p.pos]) {
		return Message{}, malformed()
	}
	p.skipSpace()
	selector, args, err := p.scanSelector()
	if err != nil {
		return Message{}, err
	}
	return Message{Actor: actor, Selector: selector, Arguments: args}, nil
}

// scanActor reads the leading actor token, normalizing away interior
// whitespace around a generic type parameter list per the actor
// normalization rule ("Vector < Integer >" -> "Vector<Integer>").
func (p *parser) scanActor() (string, error) {
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if isIdentChar(c) {
			p.pos++
			continue
		}
		if c == ':' && p.pos+1 < len(p.src) && p.src[p.pos+1] == ':' {
			p.pos += 2
			continue
		}
		break
	}
	if p.pos == start {
		return "", malformed()
	}
	base := p.src[start:p.pos]

	// Look ahead past insignificant whitespace for a generic parameter list.
	save := p.pos
	p.skipSpace()
	if p.peek() != '<' {
		p.pos = save
		return base, nil
	}
	var b strings.Builder
	b.WriteString(base)
	depth := 0
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch {
		case c == '<':
			depth++
			b.WriteByte(c)
			p.pos++
		case c == '>':
			depth--
			b.WriteByte(c)
			p.pos++
			if depth == 0 {
				return b.String(), nil
			}
			if depth < 0 {
				return "", malformed()
			}
		case isSpace(c):
			p.pos++
		default:
			b.WriteByte(c)
			p.pos++
		}
	}
	return "", malformed()
}

// scanSelector reads either a unary identifier or a run of
// "keyword:" segments interleaved with their comma-separated
// arguments, and returns the reconstructed selector text alongside
// the collected argument texts.
func (p *parser) scanSelector() (string, []string, error) {
	ident, ok := p.scanIdentifier()
	if !ok {
		return "", nil, malformed()
	}
	if p.peek() != ':' {
		// Unary selector: nothing may follow but trailing whitespace.
		p.skipSpace()
		if p.pos != len(p.src) {
			return "", nil, malformed()
		}
		return ident, nil, nil
	}

	var selector strings.Builder
	var args []string
	for {
		p.pos++ // consume ':'
		selector.WriteString(ident)
		selector.WriteByte(':')
		p.skipSpace()
		arg, err := p.scanArgument()
		if err != nil {
			return "", nil, err
		}
		args = append(args, arg)
		p.skipSpace()
		if p.pos == len(p.src) {
			break
		}
		if p.peek() != ',' {
			return "", nil, malformed()
		}
		p.pos++ // consume ','
		p.skipSpace()
		ident, ok = p.scanIdentifier()
		if !ok || p.peek() != ':' {
			return "", nil, malformed()
		}
	}
	return selector.String(), args, nil
}

func (p *parser) scanIdentifier() (string, bool) {
	start := p.pos
	if p.pos >= len(p.src) || !isIdentStart(p.src[p.pos]) {
		return "", false
	}
	p.pos++
	for p.pos < len(p.src) && isIdentChar(p.src[p.pos]) {
		p.pos++
	}
	return p.src[start:p.pos], true
}

// scanArgument consumes the raw text of one argument, stopping at the
// next top-level comma (depth zero, outside any quoted region) or at
// the end of the line, and returns it with surrounding whitespace
// trimmed. Nested [...] and {...} depth and "..."/'...' quoting are
// tracked so that commas inside a collection or string/character
// literal do not end the argument early.
func (p *parser) scanArgument() (string, error) {
	start := p.pos
	depth := 0
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch c {
		case '"':
			if err := p.skipQuoted('"'); err != nil {
				return "", err
			}
			continue
		case '\'':
			if err := p.skipQuoted('\''); err != nil {
				return "", err
			}
			continue
		case '[', '{':
			depth++
			p.pos++
		case ']', '}':
			depth--
			if depth < 0 {
				return "", malformed()
			}
			p.pos++
		case ',':
			if depth == 0 {
				arg := strings.TrimSpace(p.src[start:p.pos])
				if arg == "" {
					return "", malformed()
				}
				return arg, nil
			}
			p.pos++
		default:
			p.pos++
		}
	}
	if depth != 0 {
		return "", malformed()
	}
	arg := strings.TrimSpace(p.src[start:p.pos])
	if arg == "" {
		return "", malformed()
	}
	return arg, nil
}

// skipQuoted advances past a quoted region delimited by quote,
// honoring \\ and \<quote> as the only two recognized escapes.
func (p *parser) skipQuoted(quote byte) error {
	p.pos++ // opening quote
	for {
		if p.pos >= len(p.src) {
			return malformed()
		}
		c := p.src[p.pos]
		if c == '\\' {
			if p.pos+1 >= len(p.src) {
				return malformed()
			}
			p.pos += 2
			continue
		}
		p.pos++
		if c == quote {
			return nil
		}
	}
}
