package resolve

import (
	"path/filepath"
	"strings"

	"github.com/ariadnehq/ariadne/internal/langspec"
	"github.com/ariadnehq/ariadne/internal/project"
	"github.com/ariadnehq/ariadne/internal/scopegraph"
)

// relativeExtensions lists, per language, the suffixes tried in order when
// a relative import path names a module rather than an exact file.
var relativeExtensions = map[langspec.Language][]string{
	langspec.Python:     {".py", "/__init__.py"},
	langspec.JavaScript: {".js", ".jsx", "/index.js"},
	langspec.TypeScript: {".ts", ".tsx", "/index.ts"},
	langspec.TSX:        {".tsx", ".ts", "/index.tsx"},
}

// ResolveImports is spec.md §4.4: for every ImportStatement in every
// indexed file, find the file RawModule names (if any is indexed), expand
// wildcard imports into one proxy Definition per export, and point every
// named binding's synthetic Definition at the real Definition it proxies.
func ResolveImports(idx *project.Index) {
	for _, id := range idx.Files() {
		g, ok := idx.File(id)
		if !ok {
			continue
		}
		spec := langspec.ForLanguage(g.File.Language)
		if spec == nil {
			continue
		}
		for i := range g.Imports {
			resolveOneImport(idx, g, spec, &g.Imports[i])
		}
	}
}

func resolveOneImport(idx *project.Index, g *scopegraph.Graph, spec *langspec.Spec, imp *scopegraph.ImportStatement) {
	target, ok := resolveImportTarget(idx, g, spec, imp.RawModule)
	if !ok {
		return
	}
	imp.TargetFile = &target

	switch imp.Style {
	case scopegraph.ImportWildcard:
		expandWildcard(idx, g, imp, target)
	case scopegraph.ImportNamed:
		for i := range imp.Bindings {
			bindNamed(idx, g, &imp.Bindings[i], target)
		}
	case scopegraph.ImportNamespace:
		// The binding names the whole module; `ns.attr` member access is
		// resolved later, by walking imp.TargetFile's export table.
	}
}

func bindNamed(idx *project.Index, g *scopegraph.Graph, b *scopegraph.ImportBinding, target scopegraph.FileID) {
	defID, ok := idx.Export(target, b.ImportedName)
	if !ok {
		return
	}
	d, ok := g.Definition(b.DefID)
	if !ok {
		return
	}
	d.ProxyTarget = &defID
}

// expandWildcard materializes one import-binding Definition per name the
// target file exports, since `from m import *` binds no names the grammar
// can see directly.
func expandWildcard(idx *project.Index, g *scopegraph.Graph, imp *scopegraph.ImportStatement, target scopegraph.FileID) {
	root := g.RootScope()
	for name, defID := range idx.AllExports(target) {
		defID := defID
		newDefID := g.AddDefinition(root, name, langspec.DefImportBinding, imp.Range, "", true, scopegraph.VisibilityUnknown)
		d, _ := g.Definition(newDefID)
		d.ProxyTarget = &defID
		imp.Bindings = append(imp.Bindings, scopegraph.ImportBinding{
			ImportedName: name,
			LocalName:    name,
			DefID:        newDefID,
		})
	}
}

func resolveImportTarget(idx *project.Index, g *scopegraph.Graph, spec *langspec.Spec, rawModule string) (scopegraph.FileID, bool) {
	if rawModule == "" {
		return 0, false
	}
	if isRelative(spec.Language, rawModule) {
		return resolveRelative(idx, g, spec, rawModule)
	}
	return resolveByModulePath(idx, rawModule)
}

func isRelative(l langspec.Language, rawModule string) bool {
	switch l {
	case langspec.Python:
		return strings.HasPrefix(rawModule, ".")
	case langspec.JavaScript, langspec.TypeScript, langspec.TSX:
		return strings.HasPrefix(rawModule, ".") || strings.HasPrefix(rawModule, "/")
	default:
		return false
	}
}

// resolveRelative joins a relative import onto the importer's own
// directory. Python's leading-dot level counts ancestor hops before the
// remainder is treated as a slash path; every other relative-capable
// language is already slash-shaped.
func resolveRelative(idx *project.Index, g *scopegraph.Graph, spec *langspec.Spec, rawModule string) (scopegraph.FileID, bool) {
	dir := filepath.Dir(g.File.Path)
	rel := rawModule

	if spec.Language == langspec.Python {
		level := 0
		for level < len(rawModule) && rawModule[level] == '.' {
			level++
		}
		for i := 1; i < level; i++ {
			dir = filepath.Dir(dir)
		}
		rel = strings.ReplaceAll(rawModule[level:], ".", "/")
	}

	base := filepath.Join(dir, rel)
	if id, ok := idx.FileByPath(filepath.Clean(base)); ok {
		return id, true
	}
	for _, ext := range relativeExtensions[spec.Language] {
		if id, ok := idx.FileByPath(filepath.Clean(base + ext)); ok {
			return id, true
		}
	}
	return 0, false
}

// resolveByModulePath looks up a package-style import path as-is, then
// with dots replaced by slashes, then by its final segment alone.
func resolveByModulePath(idx *project.Index, rawModule string) (scopegraph.FileID, bool) {
	if id, ok := idx.FileByModulePath(rawModule); ok {
		return id, true
	}
	if alt := strings.ReplaceAll(rawModule, ".", "/"); alt != rawModule {
		if id, ok := idx.FileByModulePath(alt); ok {
			return id, true
		}
	}
	return idx.FileByModulePath(lastSegment(rawModule))
}
