package knuckleball

import "testing"

func TestParseWorkedExamples(t *testing.T) {
	cases := map[string]struct {
		line     string
		actor    string
		selector string
		args     []string
	}{
		"IntegerCreate": {
			"Integer create: x, withValue: 42",
			"Integer", "create:withValue:", []string{"x", "42"},
		},
		"SetWithElements": {
			"Set<Integer> create: s, withElements: [3,1,2,1]",
			"Set<Integer>", "create:withElements:", []string{"s", "[3,1,2,1]"},
		},
		"NormalizedGenericSpacing": {
			"Vector < Integer > create: v",
			"Vector<Integer>", "create:", []string{"v"},
		},
		"UnaryMessage": {
			"x getValue",
			"x", "getValue", nil,
		},
		"NamespacedActor": {
			"shapes::circle getValue",
			"shapes::circle", "getValue", nil,
		},
		"StringLiteralWithComma": {
			`String create: s, withValue: "a, b"`,
			"String", "create:withValue:", []string{"s", `"a, b"`},
		},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			msg, err := Parse(c.line)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", c.line, err)
			}
			if msg.Actor != c.actor {
				t.Errorf("actor = %q, want %q", msg.Actor, c.actor)
			}
			if msg.Selector != c.selector {
				t.Errorf("selector = %q, want %q", msg.Selector, c.selector)
			}
			if len(msg.Arguments) != len(c.args) {
				t.Fatalf("arguments = %v, want %v", msg.Arguments, c.args)
			}
			for i := range c.args {
				if msg.Arguments[i] != c.args[i] {
					t.Errorf("arguments[%d] = %q, want %q", i, msg.Arguments[i], c.args[i])
				}
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	cases := map[string]string{
		"NoSelector":        "Integer",
		"TrailingComma":     "Integer create: x,",
		"UnbalancedBracket": "Vector<Integer> create: v, withElements: [1,2",
		"BareActor":         "",
		"DanglingColon":     "x foo:",
	}
	for name, line := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse(line); err == nil {
				t.Fatalf("Parse(%q) expected an error", line)
			}
		})
	}
}
