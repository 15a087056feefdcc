package querypack

import "testing"

func TestForCompilesAllFourQueries(t *testing.T) {
	pack, err := For("go")
	if err != nil {
		t.Fatalf("For(go): %v", err)
	}
	if pack.Scopes == nil {
		t.Error("Go pack missing Scopes query")
	}
	if pack.Definitions == nil {
		t.Error("Go pack missing Definitions query")
	}
	if pack.References == nil {
		t.Error("Go pack missing References query")
	}
	if pack.Imports == nil {
		t.Error("Go pack missing Imports query")
	}
}

func TestForIsCached(t *testing.T) {
	a, err := For("python")
	if err != nil {
		t.Fatalf("For(python): %v", err)
	}
	b, err := For("python")
	if err != nil {
		t.Fatalf("For(python) second call: %v", err)
	}
	if a != b {
		t.Errorf("For() should return the cached pack on repeat calls")
	}
}

func TestForUnknownLanguage(t *testing.T) {
	if _, err := For("cobol"); err == nil {
		t.Error("expected error for unregistered language")
	}
}

func TestLuaWithoutClassKindsStillHasDefinitionsQuery(t *testing.T) {
	pack, err := For("lua")
	if err != nil {
		t.Fatalf("For(lua): %v", err)
	}
	// Lua declares no ClassNodeTypes, but still has function definitions,
	// so its definitions query must not be nil purely from that absence.
	if pack.Definitions == nil {
		t.Error("Lua pack should still have a Definitions query for functions")
	}
}

func TestKindStringer(t *testing.T) {
	cases := map[Kind]string{
		KindScopes:      "scopes",
		KindDefinitions: "definitions",
		KindReferences:  "references",
		KindImports:     "imports",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", k, got, want)
		}
	}
}
