package knuckleball

// booleanInstance holds a single mutable bool under a fixed name.
type booleanInstance struct {
	name  string
	value bool
}

func newBooleanInstance(name, messageName string, args []string) (Instance, error) {
	_, err := requireScalarConstructor(messageName, args)
	if err != nil {
		return nil, err
	}
	v, err := parseScalarLiteral(KindBoolean, args[0])
	if err != nil {
		return nil, err
	}
	return &booleanInstance{name: name, value: v.(bool)}, nil
}

func (b *booleanInstance) Name() string { return b.name }
func (b *booleanInstance) Kind() Kind   { return KindBoolean }

func (b *booleanInstance) Representation(rc RenderContext) string {
	return renderScalar(KindBoolean, b.value, rc)
}

func (b *booleanInstance) Receive(rc RenderContext, messageName string, args []string) (string, error) {
	switch messageName {
	case "getValue":
		if err := requireArity(args, 0); err != nil {
			return "", err
		}
		return b.Representation(rc), nil
	case "setValue:":
		if err := requireArity(args, 1); err != nil {
			return "", err
		}
		v, err := parseScalarLiteral(KindBoolean, args[0])
		if err != nil {
			return "", err
		}
		b.value = v.(bool)
		return b.Representation(rc), nil
	case "and:", "or:":
		if err := requireArity(args, 1); err != nil {
			return "", err
		}
		v, err := parseScalarLiteral(KindBoolean, args[0])
		if err != nil {
			return "", err
		}
		other := v.(bool)
		var result bool
		if messageName == "and:" {
			result = b.value && other
		} else {
			result = b.value || other
		}
		return renderScalar(KindBoolean, result, rc), nil
	case "not":
		if err := requireArity(args, 0); err != nil {
			return "", err
		}
		return renderScalar(KindBoolean, !b.value, rc), nil
	case "equals:":
		if err := requireArity(args, 1); err != nil {
			return "", err
		}
		v, err := parseScalarLiteral(KindBoolean, args[0])
		if err != nil {
			return "", err
		}
		return renderScalar(KindBoolean, scalarEqual(KindBoolean, b.value, v.(bool), rc), rc), nil
	case "toString":
		if err := requireArity(args, 0); err != nil {
			return "", err
		}
		return renderString(b.Representation(rc)), nil
	default:
		return "", newError(ExcInvalidMessage, "Boolean has no message "+messageName)
	}
}
