package knuckleball

import (
	"strconv"
	"strings"
)

// vectorInstance holds an ordered, insertion-ordered sequence of
// scalar values of a single element kind under a fixed name.
type vectorInstance struct {
	name     string
	elemKind Kind
	values   []interface{}
}

func newVectorInstance(name string, elemKind Kind, messageName string, args []string) (Instance, error) {
	createIfNotExists, withElements, err := requireCollectionConstructor(messageName, args)
	_ = createIfNotExists
	if err != nil {
		return nil, err
	}
	v := &vectorInstance{name: name, elemKind: elemKind}
	if withElements {
		elems, err := splitCollectionLiteral(args[0], '[', ']')
		if err != nil {
			return nil, err
		}
		for _, lit := range elems {
			val, err := parseScalarLiteral(elemKind, lit)
			if err != nil {
				return nil, err
			}
			v.values = append(v.values, val)
		}
	}
	return v, nil
}

func (v *vectorInstance) Name() string { return v.name }
func (v *vectorInstance) Kind() Kind   { return KindVector }

func (v *vectorInstance) Representation(rc RenderContext) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range v.values {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(renderScalar(v.elemKind, e, rc))
	}
	b.WriteByte(']')
	return b.String()
}

func (v *vectorInstance) Receive(rc RenderContext, messageName string, args []string) (string, error) {
	switch messageName {
	case "add:":
		if err := requireArity(args, 1); err != nil {
			return "", err
		}
		val, err := parseScalarLiteral(v.elemKind, args[0])
		if err != nil {
			return "", err
		}
		v.values = append(v.values, val)
		return v.Representation(rc), nil
	case "at:":
		if err := requireArity(args, 1); err != nil {
			return "", err
		}
		i, err := v.index(args[0])
		if err != nil {
			return "", err
		}
		return renderScalar(v.elemKind, v.values[i], rc), nil
	case "removeAt:":
		if err := requireArity(args, 1); err != nil {
			return "", err
		}
		i, err := v.index(args[0])
		if err != nil {
			return "", err
		}
		v.values = append(v.values[:i], v.values[i+1:]...)
		return v.Representation(rc), nil
	case "size":
		if err := requireArity(args, 0); err != nil {
			return "", err
		}
		return strconv.Itoa(len(v.values)), nil
	case "asArray":
		if err := requireArity(args, 0); err != nil {
			return "", err
		}
		return v.Representation(rc), nil
	case "toString":
		if err := requireArity(args, 0); err != nil {
			return "", err
		}
		return renderString(v.Representation(rc)), nil
	default:
		return "", newError(ExcInvalidMessage, "Vector has no message "+messageName)
	}
}

func (v *vectorInstance) index(lit string) (int64, error) {
	idx, err := parseScalarLiteral(KindInteger, lit)
	if err != nil {
		return 0, err
	}
	i := idx.(int64)
	if i < 0 || i >= int64(len(v.values)) {
		return 0, newError(ExcInvalidArgument, "index out of range")
	}
	return i, nil
}
