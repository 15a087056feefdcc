package langspec

import "testing"

func TestForExtension(t *testing.T) {
	tests := []struct {
		ext  string
		lang Language
	}{
		{".py", Python},
		{".go", Go},
		{".js", JavaScript},
		{".ts", TypeScript},
		{".tsx", TSX},
		{".rs", Rust},
		{".java", Java},
		{".cpp", CPP},
		{".h", CPP},
		{".c", C},
		{".cs", CSharp},
		{".php", PHP},
		{".rb", Ruby},
		{".lua", Lua},
		{".scala", Scala},
		{".kt", Kotlin},
		{".kts", Kotlin},
	}
	for _, tt := range tests {
		spec := ForExtension(tt.ext)
		if spec == nil {
			t.Errorf("ForExtension(%q) = nil, want %s", tt.ext, tt.lang)
			continue
		}
		if spec.Language != tt.lang {
			t.Errorf("ForExtension(%q).Language = %s, want %s", tt.ext, spec.Language, tt.lang)
		}
	}
}

func TestForLanguage(t *testing.T) {
	for _, lang := range AllLanguages() {
		spec := ForLanguage(lang)
		if spec == nil {
			t.Errorf("ForLanguage(%s) = nil", lang)
		}
	}
}

func TestAllLanguagesCount(t *testing.T) {
	if got := len(AllLanguages()); got != 15 {
		t.Errorf("AllLanguages() returned %d languages, want 15", got)
	}
}

func TestUnknownExtension(t *testing.T) {
	if spec := ForExtension(".xyz"); spec != nil {
		t.Errorf("ForExtension(.xyz) should be nil, got %v", spec)
	}
}

func TestLanguageForExtension(t *testing.T) {
	lang, ok := LanguageForExtension(".py")
	if !ok || lang != Python {
		t.Errorf("LanguageForExtension(.py) = %s, %v, want python, true", lang, ok)
	}
	if _, ok := LanguageForExtension(".xyz"); ok {
		t.Errorf("LanguageForExtension(.xyz) should report false")
	}
}

func TestGoSpec(t *testing.T) {
	spec := ForLanguage(Go)
	if spec == nil {
		t.Fatal("Go spec not registered")
	}
	if len(spec.FunctionNodeTypes) != 2 {
		t.Errorf("Go FunctionNodeTypes: got %d, want 2", len(spec.FunctionNodeTypes))
	}
	found := map[string]bool{}
	for _, nt := range spec.FunctionNodeTypes {
		found[nt] = true
	}
	if !found["function_declaration"] || !found["method_declaration"] {
		t.Errorf("Go FunctionNodeTypes missing expected types: %v", spec.FunctionNodeTypes)
	}
	if !spec.Exported("Visible") || spec.Exported("hidden") {
		t.Errorf("Go Exported convention wrong for Visible/hidden")
	}
}

func TestPythonSpec(t *testing.T) {
	spec := ForLanguage(Python)
	if spec == nil {
		t.Fatal("Python spec not registered")
	}
	if spec.PackageIndicators[0] != "__init__.py" {
		t.Errorf("Python PackageIndicators: got %v, want [__init__.py]", spec.PackageIndicators)
	}
	if len(spec.ComprehensionNodeTypes) == 0 {
		t.Errorf("Python should declare comprehension node types")
	}
	if !spec.Exported("visible") || spec.Exported("_hidden") {
		t.Errorf("Python Exported convention wrong for visible/_hidden")
	}
}

func TestHoistingIsPerLanguage(t *testing.T) {
	py := ForLanguage(Python)
	if !py.Hoisted[DefFunction] {
		t.Errorf("Python functions should be hoisted")
	}
	ts := ForLanguage(TypeScript)
	if ts.Hoisted[DefClass] {
		t.Errorf("TypeScript classes should not be hoisted")
	}
	if !ts.Hoisted[DefFunction] {
		t.Errorf("TypeScript functions should be hoisted")
	}
}

func TestEveryRegisteredSpecHasModuleNodeType(t *testing.T) {
	for _, lang := range AllLanguages() {
		spec := ForLanguage(lang)
		if len(spec.ModuleNodeTypes) == 0 {
			t.Errorf("%s: ModuleNodeTypes must not be empty", lang)
		}
		if spec.IdentifierNodeType == "" {
			t.Errorf("%s: IdentifierNodeType must not be empty", lang)
		}
		if spec.Exported == nil {
			t.Errorf("%s: Exported must not be nil", lang)
		}
	}
}
