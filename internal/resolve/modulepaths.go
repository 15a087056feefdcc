// Package resolve implements the project-wide resolution stages that run
// after every file has its own intra-file scope graph: computing each
// file's module path (spec.md §4.3), resolving ImportStatements to the
// files they name (spec.md §4.4), and chasing references that only
// resolved locally to an import-binding proxy through to the real
// cross-file Definition (spec.md §4.5).
package resolve

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ariadnehq/ariadne/internal/langspec"
	"github.com/ariadnehq/ariadne/internal/project"
)

// ComputeModulePaths registers every module-path form a sibling file could
// plausibly import each indexed file by: the root-relative slash path
// every language accepts as a fallback, the dotted package path for
// Python, and the bare basename for languages whose imports typically
// name just the final segment.
func ComputeModulePaths(b *project.Builder, idx *project.Index) {
	for _, id := range idx.Files() {
		g, ok := idx.File(id)
		if !ok {
			continue
		}
		spec := langspec.ForLanguage(g.File.Language)
		if spec == nil {
			continue
		}
		for _, mp := range modulePathsFor(idx.Root, g.File.Path, spec) {
			if mp != "" {
				b.SetModulePath(mp, id)
			}
		}
	}
}

func modulePathsFor(root, path string, spec *langspec.Spec) []string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)
	rel = strings.TrimSuffix(rel, filepath.Ext(rel))

	paths := []string{rel, lastSegment(rel)}

	if spec.Language == langspec.Python {
		paths = append(paths, pythonDottedPath(root, path))
	}

	return paths
}

// pythonDottedPath climbs from path's directory while __init__.py marks
// each ancestor as a package, building the dotted module path a sibling
// `import` statement would name.
func pythonDottedPath(root, path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	var segments []string
	if base != "__init__" {
		segments = append(segments, base)
	}

	dir := filepath.Dir(path)
	for dir != root && dir != "." && dir != string(filepath.Separator) {
		if _, err := os.Stat(filepath.Join(dir, "__init__.py")); err != nil {
			break
		}
		segments = append([]string{filepath.Base(dir)}, segments...)
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return strings.Join(segments, ".")
}

func lastSegment(path string) string {
	path = strings.TrimRight(path, "/")
	if i := strings.LastIndexAny(path, "./"); i >= 0 && i+1 < len(path) {
		return path[i+1:]
	}
	return path
}
