package knuckleball

import "unicode"

// characterInstance holds a single mutable rune under a fixed name.
type characterInstance struct {
	name  string
	value rune
}

func newCharacterInstance(name, messageName string, args []string) (Instance, error) {
	_, err := requireScalarConstructor(messageName, args)
	if err != nil {
		return nil, err
	}
	v, err := parseScalarLiteral(KindCharacter, args[0])
	if err != nil {
		return nil, err
	}
	return &characterInstance{name: name, value: v.(rune)}, nil
}

func (c *characterInstance) Name() string { return c.name }
func (c *characterInstance) Kind() Kind   { return KindCharacter }

func (c *characterInstance) Representation(rc RenderContext) string {
	return renderScalar(KindCharacter, c.value, rc)
}

func (c *characterInstance) Receive(rc RenderContext, messageName string, args []string) (string, error) {
	switch messageName {
	case "getValue":
		if err := requireArity(args, 0); err != nil {
			return "", err
		}
		return c.Representation(rc), nil
	case "setValue:":
		if err := requireArity(args, 1); err != nil {
			return "", err
		}
		v, err := parseScalarLiteral(KindCharacter, args[0])
		if err != nil {
			return "", err
		}
		c.value = v.(rune)
		return c.Representation(rc), nil
	case "equals:":
		if err := requireArity(args, 1); err != nil {
			return "", err
		}
		v, err := parseScalarLiteral(KindCharacter, args[0])
		if err != nil {
			return "", err
		}
		return renderScalar(KindBoolean, scalarEqual(KindCharacter, c.value, v.(rune), rc), rc), nil
	case "isLetter":
		if err := requireArity(args, 0); err != nil {
			return "", err
		}
		return renderScalar(KindBoolean, unicode.IsLetter(c.value), rc), nil
	case "isDigit":
		if err := requireArity(args, 0); err != nil {
			return "", err
		}
		return renderScalar(KindBoolean, unicode.IsDigit(c.value), rc), nil
	case "toString":
		if err := requireArity(args, 0); err != nil {
			return "", err
		}
		return renderString(string(c.value)), nil
	default:
		return "", newError(ExcInvalidMessage, "Character has no message "+messageName)
	}
}
