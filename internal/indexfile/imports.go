package indexfile

import (
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/ariadnehq/ariadne/internal/langspec"
	"github.com/ariadnehq/ariadne/internal/querypack"
	"github.com/ariadnehq/ariadne/internal/scopegraph"
)

// buildImports runs the imports query, converts each match into an
// ImportStatement, and creates a synthetic import-binding Definition at
// the root scope for every name it binds (spec.md §4.2 step 5).
func buildImports(g *scopegraph.Graph, pack *querypack.Pack, spec *langspec.Spec, source []byte) {
	root := g.File.Tree.RootNode()
	matches := querypack.Matches(pack.Imports, root, source)
	rootScope := g.RootScope()

	for _, n := range matches {
		rawModule, names, style := parseImportNode(spec, n, source)
		if rawModule == "" && len(names) == 0 {
			continue
		}

		var bindings []scopegraph.ImportBinding
		for _, nm := range names {
			defID := g.AddDefinition(rootScope, nm.local, langspec.DefImportBinding, rangeOf(n), "", true, scopegraph.VisibilityUnknown)
			bindings = append(bindings, scopegraph.ImportBinding{
				ImportedName: nm.imported,
				LocalName:    nm.local,
				DefID:        defID,
			})
		}

		g.AddImport(style, rawModule, rangeOf(n), bindings)
	}
}

type importedName struct{ imported, local string }

// parseImportNode extracts a raw module path, the names it binds, and the
// import style. Python, JavaScript/TypeScript and Go get precise
// extraction grounded in their well-known field names; every other
// language falls back to a generic string-literal + identifier scan,
// which degrades to best-effort per spec.md's own non-goal for malformed
// or unfamiliar constructs.
func parseImportNode(spec *langspec.Spec, n *tree_sitter.Node, source []byte) (string, []importedName, scopegraph.ImportStyle) {
	switch spec.Language {
	case langspec.Python:
		return parsePythonImport(n, source)
	case langspec.JavaScript, langspec.TypeScript, langspec.TSX:
		return parseJSImport(n, source)
	case langspec.Go:
		return parseGoImport(n, source)
	default:
		return parseGenericImport(n, source)
	}
}

func parsePythonImport(n *tree_sitter.Node, source []byte) (string, []importedName, scopegraph.ImportStyle) {
	switch n.Kind() {
	case "import_statement":
		// import a.b, c.d as e
		var names []importedName
		var module string
		for i := uint(0); i < n.ChildCount(); i++ {
			child := n.Child(i)
			if child == nil {
				continue
			}
			switch child.Kind() {
			case "dotted_name":
				module = nodeText(child, source)
				local := lastSegment(module)
				names = append(names, importedName{imported: module, local: local})
			case "aliased_import":
				dotted := child.ChildByFieldName("name")
				alias := child.ChildByFieldName("alias")
				module = nodeText(dotted, source)
				names = append(names, importedName{imported: module, local: nodeText(alias, source)})
			}
		}
		return module, names, scopegraph.ImportNamespace
	case "import_from_statement":
		moduleNode := n.ChildByFieldName("module_name")
		module := nodeText(moduleNode, source)
		var names []importedName
		wildcard := false
		for i := uint(0); i < n.ChildCount(); i++ {
			child := n.Child(i)
			if child == nil {
				continue
			}
			switch child.Kind() {
			case "wildcard_import":
				wildcard = true
			case "dotted_name":
				if child == moduleNode {
					continue
				}
				name := nodeText(child, source)
				names = append(names, importedName{imported: name, local: name})
			case "aliased_import":
				orig := child.ChildByFieldName("name")
				alias := child.ChildByFieldName("alias")
				names = append(names, importedName{imported: nodeText(orig, source), local: nodeText(alias, source)})
			}
		}
		if wildcard {
			return module, nil, scopegraph.ImportWildcard
		}
		return module, names, scopegraph.ImportNamed
	default:
		return parseGenericImport(n, source)
	}
}

func parseJSImport(n *tree_sitter.Node, source []byte) (string, []importedName, scopegraph.ImportStyle) {
	sourceField := n.ChildByFieldName("source")
	module := nodeText(sourceField, source)
	module = strings.Trim(module, "\"'`")

	clause := n.ChildByFieldName("import_clause")
	if clause == nil {
		// side-effect import: `import "styles.css"`
		return module, nil, scopegraph.ImportSideEffect
	}

	var names []importedName
	style := scopegraph.ImportNamed
	for i := uint(0); i < clause.ChildCount(); i++ {
		child := clause.Child(i)
		if child == nil {
			continue
		}
		switch child.Kind() {
		case "identifier":
			// default import
			names = append(names, importedName{imported: "default", local: nodeText(child, source)})
		case "namespace_import":
			style = scopegraph.ImportNamespace
			if id := lastIdentifierDescendant(child, source); id != "" {
				names = append(names, importedName{imported: "*", local: id})
			}
		case "named_imports":
			for j := uint(0); j < child.ChildCount(); j++ {
				spec := child.Child(j)
				if spec == nil || spec.Kind() != "import_specifier" {
					continue
				}
				orig := spec.ChildByFieldName("name")
				alias := spec.ChildByFieldName("alias")
				local := nodeText(orig, source)
				imported := local
				if alias != nil {
					local = nodeText(alias, source)
				}
				names = append(names, importedName{imported: imported, local: local})
			}
		}
	}
	return module, names, style
}

func parseGoImport(n *tree_sitter.Node, source []byte) (string, []importedName, scopegraph.ImportStyle) {
	var names []importedName
	var lastModule string
	for i := uint(0); i < n.ChildCount(); i++ {
		spec := n.Child(i)
		if spec == nil {
			continue
		}
		if spec.Kind() == "import_spec" {
			pathNode := spec.ChildByFieldName("path")
			path := strings.Trim(nodeText(pathNode, source), "\"")
			lastModule = path
			local := lastSegment(path)
			if nameNode := spec.ChildByFieldName("name"); nameNode != nil {
				alias := nodeText(nameNode, source)
				if alias == "_" {
					continue // blank import: side effect only, no binding
				}
				local = alias
			}
			names = append(names, importedName{imported: path, local: local})
		} else if spec.Kind() == "import_spec_list" {
			for j := uint(0); j < spec.ChildCount(); j++ {
				inner := spec.Child(j)
				if inner == nil || inner.Kind() != "import_spec" {
					continue
				}
				pathNode := inner.ChildByFieldName("path")
				path := strings.Trim(nodeText(pathNode, source), "\"")
				lastModule = path
				local := lastSegment(path)
				if nameNode := inner.ChildByFieldName("name"); nameNode != nil {
					alias := nodeText(nameNode, source)
					if alias == "_" {
						continue
					}
					local = alias
				}
				names = append(names, importedName{imported: path, local: local})
			}
		}
	}
	if len(names) == 0 {
		return lastModule, nil, scopegraph.ImportSideEffect
	}
	return lastModule, names, scopegraph.ImportNamespace
}

// parseGenericImport is the fallback for languages without a precise
// extractor: the first string literal descendant is the module path, and
// plain identifier children of the import node itself become named
// bindings. Good enough to build an import table that stage 4.4 can
// attempt to resolve; it never invents a target it didn't see text for.
func parseGenericImport(n *tree_sitter.Node, source []byte) (string, []importedName, scopegraph.ImportStyle) {
	var module string
	var names []importedName

	var findString func(*tree_sitter.Node)
	findString = func(cur *tree_sitter.Node) {
		if module != "" || cur == nil {
			return
		}
		if strings.Contains(cur.Kind(), "string") {
			module = strings.Trim(nodeText(cur, source), "\"'")
			return
		}
		for i := uint(0); i < cur.ChildCount(); i++ {
			findString(cur.Child(i))
		}
	}
	findString(n)

	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		switch child.Kind() {
		case "identifier", "simple_identifier", "name", "scoped_identifier", "qualified_identifier":
			text := nodeText(child, source)
			if text == "" || text == "*" {
				continue
			}
			names = append(names, importedName{imported: text, local: lastSegment(text)})
		}
	}

	if module == "" && len(names) == 0 {
		return "", nil, scopegraph.ImportSideEffect
	}
	if len(names) == 0 {
		return module, nil, scopegraph.ImportSideEffect
	}
	return module, names, scopegraph.ImportNamed
}

func lastIdentifierDescendant(n *tree_sitter.Node, source []byte) string {
	var found string
	var walk func(*tree_sitter.Node)
	walk = func(cur *tree_sitter.Node) {
		if cur == nil {
			return
		}
		if cur.Kind() == "identifier" {
			found = nodeText(cur, source)
		}
		for i := uint(0); i < cur.ChildCount(); i++ {
			walk(cur.Child(i))
		}
	}
	walk(n)
	return found
}

func lastSegment(path string) string {
	path = strings.TrimRight(path, "/")
	if i := strings.LastIndexAny(path, "./"); i >= 0 && i+1 < len(path) {
		return path[i+1:]
	}
	return path
}
