package knuckleball

import "testing"

func TestParseTypeActor(t *testing.T) {
	cases := map[string]struct {
		actor string
		kind  Kind
		elems []Kind
		ok    bool
	}{
		"Boolean":                {"Boolean", KindBoolean, nil, true},
		"Integer":                {"Integer", KindInteger, nil, true},
		"VectorInteger":          {"Vector<Integer>", KindVector, []Kind{KindInteger}, true},
		"SetString":              {"Set<String>", KindSet, []Kind{KindString}, true},
		"DictionaryIntegerFloat": {"Dictionary<Integer,Float>", KindDictionary, []Kind{KindInteger, KindFloat}, true},
		"DictionaryMissingComma": {"Dictionary<Integer>", 0, nil, false},
		"UnknownType":            {"Frobnicator", 0, nil, false},
		"VectorUnknownElem":      {"Vector<Frobnicator>", 0, nil, false},
		"NotClosed":              {"Vector<Integer", 0, nil, false},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			kind, elems, ok := ParseTypeActor(c.actor)
			if ok != c.ok {
				t.Fatalf("%q: ok = %v, want %v", c.actor, ok, c.ok)
			}
			if !ok {
				return
			}
			if kind != c.kind {
				t.Errorf("%q: kind = %v, want %v", c.actor, kind, c.kind)
			}
			if len(elems) != len(c.elems) {
				t.Fatalf("%q: elems = %v, want %v", c.actor, elems, c.elems)
			}
			for i := range elems {
				if elems[i] != c.elems[i] {
					t.Errorf("%q: elems[%d] = %v, want %v", c.actor, i, elems[i], c.elems[i])
				}
			}
		})
	}
}

func TestIsVariable(t *testing.T) {
	cases := map[string]bool{
		"x":            true,
		"my_var2":      true,
		"ns::x":        true,
		"Context":      false,
		"Connection":   false,
		"ns::x::y":     false,
		"::leadingDbl": false,
		"1abc":         false,
		"":             false,
	}
	for actor, want := range cases {
		if got := IsVariable(actor); got != want {
			t.Errorf("IsVariable(%q) = %v, want %v", actor, got, want)
		}
	}
}

func TestNamespaceOf(t *testing.T) {
	if ns, ok := namespaceOf("shapes::circle"); !ok || ns != "shapes" {
		t.Errorf("namespaceOf(shapes::circle) = %q, %v", ns, ok)
	}
	if _, ok := namespaceOf("circle"); ok {
		t.Errorf("namespaceOf(circle) should report false")
	}
}
