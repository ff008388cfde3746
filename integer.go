package knuckleball

// integerInstance holds a single mutable int64 under a fixed name.
type integerInstance struct {
	name  string
	value int64
}

func newIntegerInstance(name, messageName string, args []string) (Instance, error) {
	_, err := requireScalarConstructor(messageName, args)
	if err != nil {
		return nil, err
	}
	v, err := parseScalarLiteral(KindInteger, args[0])
	if err != nil {
		return nil, err
	}
	return &integerInstance{name: name, value: v.(int64)}, nil
}

func (n *integerInstance) Name() string { return n.name }
func (n *integerInstance) Kind() Kind   { return KindInteger }

func (n *integerInstance) Representation(rc RenderContext) string {
	return renderScalar(KindInteger, n.value, rc)
}

func (n *integerInstance) Receive(rc RenderContext, messageName string, args []string) (string, error) {
	arith := func(op func(a, b int64) (int64, error)) (string, error) {
		if err := requireArity(args, 1); err != nil {
			return "", err
		}
		v, err := parseScalarLiteral(KindInteger, args[0])
		if err != nil {
			return "", err
		}
		result, err := op(n.value, v.(int64))
		if err != nil {
			return "", err
		}
		return renderScalar(KindInteger, result, rc), nil
	}
	switch messageName {
	case "getValue":
		if err := requireArity(args, 0); err != nil {
			return "", err
		}
		return n.Representation(rc), nil
	case "setValue:":
		if err := requireArity(args, 1); err != nil {
			return "", err
		}
		v, err := parseScalarLiteral(KindInteger, args[0])
		if err != nil {
			return "", err
		}
		n.value = v.(int64)
		return n.Representation(rc), nil
	case "add:":
		return arith(func(a, b int64) (int64, error) { return a + b, nil })
	case "subtract:":
		return arith(func(a, b int64) (int64, error) { return a - b, nil })
	case "multiply:":
		return arith(func(a, b int64) (int64, error) { return a * b, nil })
	case "divide:":
		return arith(func(a, b int64) (int64, error) {
			if b == 0 {
				return 0, newError(ExcInvalidArgument, "division by zero")
			}
			return a / b, nil
		})
	case "mod:":
		return arith(func(a, b int64) (int64, error) {
			if b == 0 {
				return 0, newError(ExcInvalidArgument, "modulo by zero")
			}
			return a % b, nil
		})
	case "equals:":
		if err := requireArity(args, 1); err != nil {
			return "", err
		}
		v, err := parseScalarLiteral(KindInteger, args[0])
		if err != nil {
			return "", err
		}
		return renderScalar(KindBoolean, scalarEqual(KindInteger, n.value, v.(int64), rc), rc), nil
	case "lessThan:":
		if err := requireArity(args, 1); err != nil {
			return "", err
		}
		v, err := parseScalarLiteral(KindInteger, args[0])
		if err != nil {
			return "", err
		}
		return renderScalar(KindBoolean, n.value < v.(int64), rc), nil
	case "toString":
		if err := requireArity(args, 0); err != nil {
			return "", err
		}
		return renderString(n.Representation(rc)), nil
	default:
		return "", newError(ExcInvalidMessage, "Integer has no message "+messageName)
	}
}
