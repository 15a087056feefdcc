package resolve

import (
	"testing"

	"github.com/ariadnehq/ariadne/internal/indexfile"
	"github.com/ariadnehq/ariadne/internal/langspec"
	"github.com/ariadnehq/ariadne/internal/project"
	"github.com/ariadnehq/ariadne/internal/scopegraph"
)

func buildProject(t *testing.T, files map[string]string) (*project.Builder, *project.Index) {
	t.Helper()
	b := project.NewBuilder("/proj", nil)
	for path, src := range files {
		id := b.AllocateFileID(path)
		res := indexfile.Index(nil, id, path, []byte(src), langspec.Python)
		b.Replace(res.Graph)
	}
	idx := b.Build()
	ComputeModulePaths(b, idx)
	return b, idx
}

func findCall(g *scopegraph.Graph, name string) (*scopegraph.Reference, bool) {
	for i := range g.References {
		if g.References[i].Name == name && g.References[i].Usage == scopegraph.UsageCall {
			return &g.References[i], true
		}
	}
	return nil, false
}

func edgeTarget(idx *project.Index, g *scopegraph.Graph, ref scopegraph.RefID) (scopegraph.DefID, bool) {
	e, ok := idx.Edge(ref)
	if !ok || len(e.Targets) != 1 {
		return scopegraph.DefID{}, false
	}
	return e.Targets[0], true
}

// TestAliasedCrossFileImport covers spec scenario 2: `from utils import
// helper as h` in one file, a call to `h()`, resolving across files to
// utils.py's `helper` definition.
func TestAliasedCrossFileImport(t *testing.T) {
	b, idx := buildProject(t, map[string]string{
		"/proj/utils.py": "def helper():\n    pass\n",
		"/proj/main.py":  "from utils import helper as h\n\nh()\n",
	})

	ResolveImports(idx)
	ResolveReferences(b, idx)

	mainID, ok := idx.FileByPath("/proj/main.py")
	if !ok {
		t.Fatal("main.py not indexed")
	}
	utilsID, ok := idx.FileByPath("/proj/utils.py")
	if !ok {
		t.Fatal("utils.py not indexed")
	}
	main, _ := idx.File(mainID)
	utils, _ := idx.File(utilsID)

	helperDef, ok := findDef(utils, "helper")
	if !ok {
		t.Fatal("helper definition not found in utils.py")
	}

	call, ok := findCall(main, "h")
	if !ok {
		t.Fatal("no call reference to h found")
	}

	target, ok := edgeTarget(idx, main, call.ID)
	if !ok {
		t.Fatal("h() did not resolve")
	}
	if target != helperDef.ID {
		t.Errorf("h() resolved to %v, want utils.helper %v", target, helperDef.ID)
	}
}

func findDef(g *scopegraph.Graph, name string) (*scopegraph.Definition, bool) {
	for i := range g.Definitions {
		if g.Definitions[i].Name == name {
			return &g.Definitions[i], true
		}
	}
	return nil, false
}

func TestWildcardImportExpandsExports(t *testing.T) {
	b, idx := buildProject(t, map[string]string{
		"/proj/utils.py": "def helper():\n    pass\n\ndef other():\n    pass\n",
		"/proj/main.py":  "from utils import *\n\nhelper()\n",
	})

	ResolveImports(idx)
	ResolveReferences(b, idx)

	mainID, _ := idx.FileByPath("/proj/main.py")
	utilsID, _ := idx.FileByPath("/proj/utils.py")
	main, _ := idx.File(mainID)
	utils, _ := idx.File(utilsID)

	helperDef, ok := findDef(utils, "helper")
	if !ok {
		t.Fatal("helper definition missing")
	}

	call, ok := findCall(main, "helper")
	if !ok {
		t.Fatal("no call to helper found")
	}
	target, ok := edgeTarget(idx, main, call.ID)
	if !ok {
		t.Fatal("wildcard-imported helper() did not resolve")
	}
	if target != helperDef.ID {
		t.Errorf("helper() resolved to %v, want %v", target, helperDef.ID)
	}
}

func TestNamespaceImportMemberAccessCall(t *testing.T) {
	b, idx := buildProject(t, map[string]string{
		"/proj/utils.py": "def helper():\n    pass\n",
		"/proj/main.py":  "import utils\n\nutils.helper()\n",
	})

	ResolveImports(idx)
	ResolveReferences(b, idx)

	mainID, _ := idx.FileByPath("/proj/main.py")
	utilsID, _ := idx.FileByPath("/proj/utils.py")
	main, _ := idx.File(mainID)
	utils, _ := idx.File(utilsID)

	helperDef, ok := findDef(utils, "helper")
	if !ok {
		t.Fatal("helper definition missing")
	}

	call, ok := findCall(main, "helper")
	if !ok {
		t.Fatal("no call to helper found through namespace access")
	}
	target, ok := edgeTarget(idx, main, call.ID)
	if !ok {
		t.Fatal("utils.helper() did not resolve")
	}
	if target != helperDef.ID {
		t.Errorf("utils.helper() resolved to %v, want %v", target, helperDef.ID)
	}
}

// TestUnresolvableImportLeavesBindingUnproxied covers an import naming a
// module that isn't indexed (stdlib, third-party, typo): the call still
// resolves to the synthetic import-binding Definition stage 4.2 always
// creates, but that Definition's ProxyTarget stays nil — the signal that
// it names something outside the project rather than a real symbol.
func TestUnresolvableImportLeavesBindingUnproxied(t *testing.T) {
	b, idx := buildProject(t, map[string]string{
		"/proj/main.py": "from nonexistent_package import thing\n\nthing()\n",
	})

	ResolveImports(idx)
	ResolveReferences(b, idx)

	mainID, _ := idx.FileByPath("/proj/main.py")
	main, _ := idx.File(mainID)

	call, ok := findCall(main, "thing")
	if !ok {
		t.Fatal("no call reference to thing found")
	}
	target, ok := edgeTarget(idx, main, call.ID)
	if !ok {
		t.Fatal("expected thing() to resolve to the import-binding placeholder")
	}
	d, ok := idx.Definition(target)
	if !ok {
		t.Fatal("import-binding definition missing")
	}
	if d.Kind != langspec.DefImportBinding {
		t.Errorf("thing() resolved to a %v, want an import binding", d.Kind)
	}
	if d.ProxyTarget != nil {
		t.Error("expected ProxyTarget to stay nil for an unresolvable import")
	}
}
