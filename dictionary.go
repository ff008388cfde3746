package knuckleball

import (
	"sort"
	"strconv"
	"strings"
)

type dictEntry struct {
	key   interface{}
	value interface{}
}

// dictionaryInstance holds an insertion-ordered mapping from keys of
// one scalar kind to values of another, under a fixed name.
type dictionaryInstance struct {
	name     string
	keyKind  Kind
	valKind  Kind
	entries  []dictEntry
}

func newDictionaryInstance(name string, keyKind, valKind Kind, messageName string, args []string) (Instance, error) {
	_, withElements, err := requireCollectionConstructor(messageName, args)
	if err != nil {
		return nil, err
	}
	d := &dictionaryInstance{name: name, keyKind: keyKind, valKind: valKind}
	if withElements {
		pairs, err := splitCollectionLiteral(args[0], '{', '}')
		if err != nil {
			return nil, err
		}
		for _, pair := range pairs {
			key, val, err := d.parsePair(pair)
			if err != nil {
				return nil, err
			}
			d.put(key, val, nil)
		}
	}
	return d, nil
}

// parsePair splits one "key:value" element of a Dictionary literal at
// its single top-level colon (outside of any quoted region), then
// parses each half in its own kind's grammar.
func (d *dictionaryInstance) parsePair(pair string) (key, val interface{}, err error) {
	i, err := findTopLevelColon(pair)
	if err != nil {
		return nil, nil, err
	}
	keyLit := strings.TrimSpace(pair[:i])
	valLit := strings.TrimSpace(pair[i+1:])
	key, err = parseScalarLiteral(d.keyKind, keyLit)
	if err != nil {
		return nil, nil, err
	}
	val, err = parseScalarLiteral(d.valKind, valLit)
	if err != nil {
		return nil, nil, err
	}
	return key, val, nil
}

func findTopLevelColon(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"', '\'':
			j, err := skipQuotedAt(s, i)
			if err != nil {
				return 0, err
			}
			i = j - 1
		case ':':
			return i, nil
		}
	}
	return 0, newError(ExcInvalidArgument, "malformed Dictionary entry: "+s)
}

func (d *dictionaryInstance) find(key interface{}, rc RenderContext) int {
	for i, e := range d.entries {
		if scalarEqual(d.keyKind, e.key, key, rc) {
			return i
		}
	}
	return -1
}

func (d *dictionaryInstance) put(key, val interface{}, rc RenderContext) {
	if i := d.find(key, rc); i >= 0 {
		d.entries[i].value = val
		return
	}
	d.entries = append(d.entries, dictEntry{key: key, value: val})
}

func (d *dictionaryInstance) Name() string { return d.name }
func (d *dictionaryInstance) Kind() Kind   { return KindDictionary }

func (d *dictionaryInstance) Representation(rc RenderContext) string {
	pairs := make([]string, len(d.entries))
	for i, e := range d.entries {
		pairs[i] = renderScalar(d.keyKind, e.key, rc) + ":" + renderScalar(d.valKind, e.value, rc)
	}
	sort.Strings(pairs)
	return "{" + strings.Join(pairs, ",") + "}"
}

func (d *dictionaryInstance) Receive(rc RenderContext, messageName string, args []string) (string, error) {
	switch messageName {
	case "at:put:":
		if err := requireArity(args, 2); err != nil {
			return "", err
		}
		key, err := parseScalarLiteral(d.keyKind, args[0])
		if err != nil {
			return "", err
		}
		val, err := parseScalarLiteral(d.valKind, args[1])
		if err != nil {
			return "", err
		}
		d.put(key, val, rc)
		return d.Representation(rc), nil
	case "at:":
		if err := requireArity(args, 1); err != nil {
			return "", err
		}
		key, err := parseScalarLiteral(d.keyKind, args[0])
		if err != nil {
			return "", err
		}
		i := d.find(key, rc)
		if i < 0 {
			return "", newError(ExcInvalidArgument, "no such key")
		}
		return renderScalar(d.valKind, d.entries[i].value, rc), nil
	case "removeKey:":
		if err := requireArity(args, 1); err != nil {
			return "", err
		}
		key, err := parseScalarLiteral(d.keyKind, args[0])
		if err != nil {
			return "", err
		}
		if i := d.find(key, rc); i >= 0 {
			d.entries = append(d.entries[:i], d.entries[i+1:]...)
		}
		return d.Representation(rc), nil
	case "size":
		if err := requireArity(args, 0); err != nil {
			return "", err
		}
		return strconv.Itoa(len(d.entries)), nil
	case "keys":
		if err := requireArity(args, 0); err != nil {
			return "", err
		}
		rendered := make([]string, len(d.entries))
		for i, e := range d.entries {
			rendered[i] = renderScalar(d.keyKind, e.key, rc)
		}
		sort.Strings(rendered)
		return "[" + strings.Join(rendered, ",") + "]", nil
	case "values":
		if err := requireArity(args, 0); err != nil {
			return "", err
		}
		rendered := make([]string, len(d.entries))
		for i, e := range d.entries {
			rendered[i] = renderScalar(d.valKind, e.value, rc)
		}
		sort.Strings(rendered)
		return "[" + strings.Join(rendered, ",") + "]", nil
	case "toString":
		if err := requireArity(args, 0); err != nil {
			return "", err
		}
		return renderString(d.Representation(rc)), nil
	default:
		return "", newError(ExcInvalidMessage, "Dictionary has no message "+messageName)
	}
}
