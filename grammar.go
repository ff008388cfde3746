package knuckleball

import "strings"

// Kind identifies the concrete variant an Instance implements.
type Kind int

const (
	KindBoolean Kind = iota
	KindCharacter
	KindInteger
	KindFloat
	KindString
	KindVector
	KindSet
	KindDictionary
)

func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "Boolean"
	case KindCharacter:
		return "Character"
	case KindInteger:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindVector:
		return "Vector"
	case KindSet:
		return "Set"
	case KindDictionary:
		return "Dictionary"
	default:
		return "?"
	}
}

// scalarKindByName maps the five scalar type names to their Kind. Only
// these five may appear as Vector/Set/Dictionary type parameters: the
// element-kind space is closed-world, there is no user-defined type.
var scalarKindByName = map[string]Kind{
	"Boolean":   KindBoolean,
	"Character": KindCharacter,
	"Integer":   KindInteger,
	"Float":     KindFloat,
	"String":    KindString,
}

const reservedContext = "Context"
const reservedConnection = "Connection"

func isIdentChar(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isIdentifier reports whether s matches [A-Za-z_][A-Za-z0-9_]*.
func isIdentifier(s string) bool {
	if s == "" || !isIdentStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isIdentChar(s[i]) {
			return false
		}
	}
	return true
}

// IsScalarType reports whether s is one of the five scalar type names.
func IsScalarType(s string) bool {
	_, ok := scalarKindByName[s]
	return ok
}

// IsType reports whether s is a valid type actor: a scalar type name,
// or Vector<T>/Set<T>/Dictionary<K,V> with T, K, V scalar type names.
// s is assumed already normalized (no interior whitespace), as the
// parser guarantees for the actor token.
func IsType(s string) bool {
	_, _, ok := ParseTypeActor(s)
	return ok
}

// IsNamespace reports whether s matches a bare identifier.
func IsNamespace(s string) bool {
	return isIdentifier(s)
}

// IsVariable reports whether s matches identifier("::"identifier)?.
// Context and Connection are reserved and never valid variable names.
func IsVariable(s string) bool {
	if s == reservedContext || s == reservedConnection {
		return false
	}
	if i := strings.Index(s, "::"); i >= 0 {
		ns, name := s[:i], s[i+2:]
		if strings.Contains(name, "::") {
			return false
		}
		return isIdentifier(ns) && isIdentifier(name)
	}
	return isIdentifier(s)
}

// IsContext reports whether s is the Context keyword.
func IsContext(s string) bool {
	return s == reservedContext
}

// IsConnection reports whether s is the Connection keyword.
func IsConnection(s string) bool {
	return s == reservedConnection
}

// namespaceOf returns the namespace prefix of a namespaced variable
// name and true, or "", false if name carries no namespace.
func namespaceOf(name string) (string, bool) {
	i := strings.Index(name, "::")
	if i < 0 {
		return "", false
	}
	return name[:i], true
}

// ParseTypeActor structurally classifies a (pre-normalized) type actor
// string, extracting its element kinds via balanced angle-bracket
// matching rather than offset arithmetic. It reports ok=false for
// anything that is not a well-formed type actor, including a
// Dictionary<...> whose parameters lack a top-level comma — the
// dispatcher must treat that as EXC_INVALID_MESSAGE rather than
// constructing a partially initialized instance.
func ParseTypeActor(s string) (kind Kind, elems []Kind, ok bool) {
	if k, found := scalarKindByName[s]; found {
		return k, nil, true
	}
	name, params, hasParams := splitGeneric(s)
	if !hasParams {
		return 0, nil, false
	}
	switch name {
	case "Vector":
		if k, found := scalarKindByName[params]; found && !strings.Contains(params, ",") {
			return KindVector, []Kind{k}, true
		}
	case "Set":
		if k, found := scalarKindByName[params]; found && !strings.Contains(params, ",") {
			return KindSet, []Kind{k}, true
		}
	case "Dictionary":
		i := strings.IndexByte(params, ',')
		if i < 0 {
			return 0, nil, false
		}
		keyName, valName := params[:i], params[i+1:]
		if strings.Contains(valName, ",") {
			return 0, nil, false
		}
		kk, kok := scalarKindByName[keyName]
		vk, vok := scalarKindByName[valName]
		if kok && vok {
			return KindDictionary, []Kind{kk, vk}, true
		}
	}
	return 0, nil, false
}

// splitGeneric splits "Name<params>" into ("Name", "params", true),
// matching the closing '>' by bracket depth so nested angle brackets
// (never actually produced by this closed-world grammar, but tolerated
// per the parser's design) don't confuse the split. It requires the
// '>' to be the final character of s.
func splitGeneric(s string) (name, params string, ok bool) {
	open := strings.IndexByte(s, '<')
	if open < 0 || s[len(s)-1] != '>' {
		return "", "", false
	}
	name = s[:open]
	if !isIdentifier(name) {
		return "", "", false
	}
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '<':
			depth++
		case '>':
			depth--
			if depth == 0 {
				if i != len(s)-1 {
					return "", "", false
				}
				return name, s[open+1 : i], true
			}
			if depth < 0 {
				return "", "", false
			}
		}
	}
	return "", "", false
}
