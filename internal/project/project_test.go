package project

import (
	"testing"

	"github.com/ariadnehq/ariadne/internal/langspec"
	"github.com/ariadnehq/ariadne/internal/scopegraph"
)

func graphWithExport(id scopegraph.FileID, path, name string, vis scopegraph.Visibility) *scopegraph.Graph {
	f := scopegraph.File{ID: id, Path: path, Language: langspec.Python}
	g := scopegraph.NewGraph(f, scopegraph.Range{})
	g.AddDefinition(g.RootScope(), name, langspec.DefFunction, scopegraph.Range{}, "", true, vis)
	return g
}

func TestBuilderReplaceAndExportTable(t *testing.T) {
	b := NewBuilder("/proj", nil)
	id := b.AllocateFileID("/proj/a.py")
	g := graphWithExport(id, "/proj/a.py", "publicFn", scopegraph.VisibilityExported)
	b.Replace(g)
	idx := b.Build()

	defID, ok := idx.Export(id, "publicFn")
	if !ok {
		t.Fatal("expected publicFn to be exported")
	}
	d, ok := idx.Definition(defID)
	if !ok || d.Name != "publicFn" {
		t.Fatalf("Definition lookup failed for exported def: %+v, %v", d, ok)
	}
}

func TestBuilderRemoveClearsExports(t *testing.T) {
	b := NewBuilder("/proj", nil)
	id := b.AllocateFileID("/proj/a.py")
	g := graphWithExport(id, "/proj/a.py", "publicFn", scopegraph.VisibilityExported)
	b.Replace(g)
	b.Remove(id)
	idx := b.Build()

	if _, ok := idx.Export(id, "publicFn"); ok {
		t.Error("expected export to be removed along with the file")
	}
	if _, ok := idx.File(id); ok {
		t.Error("expected file to be gone after Remove")
	}
}

func TestSeedCarriesForwardUnchangedFiles(t *testing.T) {
	b1 := NewBuilder("/proj", nil)
	id := b1.AllocateFileID("/proj/a.py")
	b1.Replace(graphWithExport(id, "/proj/a.py", "fn", scopegraph.VisibilityExported))
	seed := b1.Build()

	b2 := NewBuilder("/proj", seed)
	bID := b2.AllocateFileID("/proj/b.py")
	b2.Replace(graphWithExport(bID, "/proj/b.py", "fn2", scopegraph.VisibilityExported))
	idx2 := b2.Build()

	if _, ok := idx2.File(id); !ok {
		t.Error("expected file a.py carried forward from seed")
	}
	if _, ok := idx2.File(bID); !ok {
		t.Error("expected new file b.py present")
	}
	if id == bID {
		t.Error("new file should not reuse an existing file id")
	}
}

func TestReverseImporters(t *testing.T) {
	b := NewBuilder("/proj", nil)
	target := b.AllocateFileID("/proj/lib.py")
	importer := b.AllocateFileID("/proj/main.py")
	b.AddReverseImport(target, importer)
	idx := b.Build()

	got := idx.ReverseImporters(target)
	if len(got) != 1 || got[0] != importer {
		t.Errorf("ReverseImporters(target) = %v, want [%v]", got, importer)
	}
}

func TestStorePublishAndLoad(t *testing.T) {
	store := NewStore()
	if store.Load() != nil {
		t.Error("expected nil snapshot before first Publish")
	}
	b := NewBuilder("/proj", nil)
	idx := b.Build()
	store.Publish(idx)
	if store.Load() != idx {
		t.Error("Load() should return the just-published snapshot")
	}
}

func TestUnexportedDefinitionNotInExportTable(t *testing.T) {
	b := NewBuilder("/proj", nil)
	id := b.AllocateFileID("/proj/a.py")
	g := graphWithExport(id, "/proj/a.py", "_hidden", scopegraph.VisibilityPrivate)
	b.Replace(g)
	idx := b.Build()

	if _, ok := idx.Export(id, "_hidden"); ok {
		t.Error("private definition should not appear in the export table")
	}
}
