package knuckleball

import "testing"

func TestParseScalarLiteral(t *testing.T) {
	cases := map[string]struct {
		kind Kind
		lit  string
		ok   bool
	}{
		"BoolTrue":       {KindBoolean, "true", true},
		"BoolBad":        {KindBoolean, "True", false},
		"CharSimple":     {KindCharacter, "'a'", true},
		"CharEscaped":    {KindCharacter, `'\''`, true},
		"CharTooLong":    {KindCharacter, "'ab'", false},
		"IntegerOK":      {KindInteger, "42", true},
		"IntegerBad":     {KindInteger, "4.2", false},
		"FloatOK":        {KindFloat, "3.14", true},
		"FloatNaN":       {KindFloat, "NaN", false},
		"StringOK":       {KindString, `"hello"`, true},
		"StringEscaped":  {KindString, `"a\"b"`, true},
		"StringBadEscape": {KindString, `"a\nb"`, false},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseScalarLiteral(c.kind, c.lit)
			if (err == nil) != c.ok {
				t.Errorf("parseScalarLiteral(%v, %q) err = %v, want ok=%v", c.kind, c.lit, err, c.ok)
			}
		})
	}
}

func TestRenderScalarRoundTrip(t *testing.T) {
	rc := staticRenderContext{precision: 2, tolerance: 1e-6}
	v, err := parseScalarLiteral(KindFloat, "3.14159")
	if err != nil {
		t.Fatal(err)
	}
	got := renderScalar(KindFloat, v, rc)
	if got != "3.14" {
		t.Errorf("renderScalar = %q, want 3.14", got)
	}
}

func TestScalarEqualFloatTolerance(t *testing.T) {
	rc := staticRenderContext{precision: 6, tolerance: 0.01}
	if !scalarEqual(KindFloat, 1.0, 1.005, rc) {
		t.Error("expected values within tolerance to be equal")
	}
	if scalarEqual(KindFloat, 1.0, 1.5, rc) {
		t.Error("expected values outside tolerance to be unequal")
	}
}

func TestSanitizeStringLiteralRejectsInvalidUTF8(t *testing.T) {
	if _, err := sanitizeStringLiteral(string([]byte{0xff, 0xfe})); err == nil {
		t.Error("expected an error for invalid UTF-8")
	}
}

func TestSanitizeStringLiteralStripsBOM(t *testing.T) {
	withBOM := "\ufeffhello"
	got, err := sanitizeStringLiteral(withBOM)
	if err != nil {
		t.Fatal(err)
	}
	if got != "hello" {
		t.Errorf("sanitizeStringLiteral = %q, want %q", got, "hello")
	}
}
