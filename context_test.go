package knuckleball

import "testing"

func newTestContext() *Context {
	return NewContext(6, 1e-6, true, nil)
}

// TestEndToEndScenarios reproduces the six worked scenarios verbatim,
// each a sequence of inputs paired with the reply each one must
// produce.
func TestEndToEndScenarios(t *testing.T) {
	t.Run("CreateThenGet", func(t *testing.T) {
		ctx := newTestContext()
		expect(t, ctx, "Integer create: x, withValue: 42", "null")
		expect(t, ctx, "x getValue", "42")
	})

	t.Run("DoubleCreateThenCreateIfNotExists", func(t *testing.T) {
		ctx := newTestContext()
		expect(t, ctx, "Integer create: x, withValue: 0", "null")
		expect(t, ctx, "Integer create: x, withValue: 1", "EXC_VARIABLE_NAME_ALREADY_USED")
		expect(t, ctx, "Integer createIfNotExists: x, withValue: 99", "null")
		expect(t, ctx, "x getValue", "0")
	})

	t.Run("NamespaceListAndDelete", func(t *testing.T) {
		ctx := newTestContext()
		expect(t, ctx, "Integer create: ns::a, withValue: 1", "null")
		expect(t, ctx, "Integer create: ns::b, withValue: 2", "null")
		expect(t, ctx, "Context listVariablesOfNamespace: ns", "[ns::a,ns::b]")
		expect(t, ctx, "Context deleteVariablesOfNamespace: ns", "null")
		expect(t, ctx, "Context listVariables", "[]")
	})

	t.Run("FloatPrecision", func(t *testing.T) {
		ctx := newTestContext()
		expect(t, ctx, "Float create: f, withValue: 1.0", "null")
		expect(t, ctx, "Context setFloatPrecision: 3", "null")
		expect(t, ctx, "f getValue", "1.000")
		expect(t, ctx, "Context setFloatPrecision: -1", "EXC_INVALID_ARGUMENT")
	})

	t.Run("SetSortedAsArray", func(t *testing.T) {
		ctx := newTestContext()
		expect(t, ctx, "Set<Integer> create: s, withElements: [3,1,2,1]", "null")
		expect(t, ctx, "s asArray", "[1,2,3]")
	})

	t.Run("DeleteMissingVariable", func(t *testing.T) {
		ctx := newTestContext()
		expect(t, ctx, "Context deleteVariable: missing", "EXC_UNEXISTENT_VARIABLE")
	})
}

func expect(t *testing.T, ctx *Context, input, want string) {
	t.Helper()
	got := ctx.Execute(input, nil)
	if got != want {
		t.Errorf("Execute(%q) = %q, want %q", input, got, want)
	}
}

func TestMalformedDictionaryActorIsInvalidMessage(t *testing.T) {
	ctx := newTestContext()
	expect(t, ctx, "Dictionary<Integer> create: d", "EXC_INVALID_MESSAGE")
}

func TestConnectionActorForwardsToSession(t *testing.T) {
	ctx := newTestContext()
	got := ctx.Execute("Connection ping", NewDefaultSession("127.0.0.1:9"))
	if got != "pong" {
		t.Errorf("Connection ping = %q, want pong", got)
	}
}

func TestConnectionActorWithoutSessionIsInvalid(t *testing.T) {
	ctx := newTestContext()
	got := ctx.Execute("Connection ping", nil)
	if got != "EXC_INVALID_MESSAGE" {
		t.Errorf("Connection ping without session = %q", got)
	}
}

func TestUnexistentVariable(t *testing.T) {
	ctx := newTestContext()
	expect(t, ctx, "missing getValue", "EXC_UNEXISTENT_VARIABLE")
}

func TestApplyConfigHotReload(t *testing.T) {
	ctx := newTestContext()
	expect(t, ctx, "Float create: f, withValue: 1.0", "null")
	ctx.ApplyConfig(2, 1e-3, true)
	expect(t, ctx, "f getValue", "1.00")
	// A rejected reload (precision <= 0) must leave the tunable untouched.
	ctx.ApplyConfig(0, -1, true)
	expect(t, ctx, "f getValue", "1.00")
}
