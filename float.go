package knuckleball

// floatInstance holds a single mutable float64 under a fixed name.
type floatInstance struct {
	name  string
	value float64
}

func newFloatInstance(name, messageName string, args []string) (Instance, error) {
	_, err := requireScalarConstructor(messageName, args)
	if err != nil {
		return nil, err
	}
	v, err := parseScalarLiteral(KindFloat, args[0])
	if err != nil {
		return nil, err
	}
	return &floatInstance{name: name, value: v.(float64)}, nil
}

func (f *floatInstance) Name() string { return f.name }
func (f *floatInstance) Kind() Kind   { return KindFloat }

func (f *floatInstance) Representation(rc RenderContext) string {
	return renderScalar(KindFloat, f.value, rc)
}

func (f *floatInstance) Receive(rc RenderContext, messageName string, args []string) (string, error) {
	arith := func(op func(a, b float64) (float64, error)) (string, error) {
		if err := requireArity(args, 1); err != nil {
			return "", err
		}
		v, err := parseScalarLiteral(KindFloat, args[0])
		if err != nil {
			return "", err
		}
		result, err := op(f.value, v.(float64))
		if err != nil {
			return "", err
		}
		return renderScalar(KindFloat, result, rc), nil
	}
	switch messageName {
	case "getValue":
		if err := requireArity(args, 0); err != nil {
			return "", err
		}
		return f.Representation(rc), nil
	case "setValue:":
		if err := requireArity(args, 1); err != nil {
			return "", err
		}
		v, err := parseScalarLiteral(KindFloat, args[0])
		if err != nil {
			return "", err
		}
		f.value = v.(float64)
		return f.Representation(rc), nil
	case "add:":
		return arith(func(a, b float64) (float64, error) { return a + b, nil })
	case "subtract:":
		return arith(func(a, b float64) (float64, error) { return a - b, nil })
	case "multiply:":
		return arith(func(a, b float64) (float64, error) { return a * b, nil })
	case "divide:":
		return arith(func(a, b float64) (float64, error) {
			if b == 0 {
				return 0, newError(ExcInvalidArgument, "division by zero")
			}
			return a / b, nil
		})
	case "mod:":
		return arith(func(a, b float64) (float64, error) {
			if int64(b) == 0 {
				return 0, newError(ExcInvalidArgument, "modulo by zero")
			}
			return float64(int64(a) % int64(b)), nil
		})
	case "equals:":
		if err := requireArity(args, 1); err != nil {
			return "", err
		}
		v, err := parseScalarLiteral(KindFloat, args[0])
		if err != nil {
			return "", err
		}
		return renderScalar(KindBoolean, scalarEqual(KindFloat, f.value, v.(float64), rc), rc), nil
	case "lessThan:":
		if err := requireArity(args, 1); err != nil {
			return "", err
		}
		v, err := parseScalarLiteral(KindFloat, args[0])
		if err != nil {
			return "", err
		}
		return renderScalar(KindBoolean, f.value < v.(float64), rc), nil
	case "toString":
		if err := requireArity(args, 0); err != nil {
			return "", err
		}
		return renderString(f.Representation(rc)), nil
	default:
		return "", newError(ExcInvalidMessage, "Float has no message "+messageName)
	}
}
