package indexfile

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/ariadnehq/ariadne/internal/langspec"
	"github.com/ariadnehq/ariadne/internal/querypack"
	"github.com/ariadnehq/ariadne/internal/scopegraph"
)

// buildDefinitions runs the definitions query and attaches a Definition to
// the innermost scope containing each match, per spec.md §4.2 step 3.
func buildDefinitions(g *scopegraph.Graph, pack *querypack.Pack, spec *langspec.Spec, source []byte, ranges *scopeRanges) {
	root := g.File.Tree.RootNode()
	matches := querypack.Matches(pack.Definitions, root, source)

	for _, n := range matches {
		kind := n.Kind()
		var defKind langspec.DefKind
		var name, declaredType, assignedExpr string
		switch {
		case kindIn(kind, spec.ClassNodeTypes):
			defKind = langspec.DefClass
			name = definitionName(n, source)
			declaredType = declaredTypeOf(n, source)
		case kindIn(kind, spec.FunctionNodeTypes):
			defKind = classifyFunctionKind(spec, n, source)
			name = definitionName(n, source)
			declaredType = declaredTypeOf(n, source)
		case kindIn(kind, spec.FieldNodeTypes):
			defKind = langspec.DefProperty
			name = definitionName(n, source)
			declaredType = declaredTypeOf(n, source)
		case kindIn(kind, spec.ParameterNodeTypes):
			defKind = langspec.DefParameter
			name = parameterName(n, source)
			declaredType = declaredTypeOf(n, source)
		case kindIn(kind, spec.VariableNodeTypes):
			defKind = langspec.DefVariable
			var ok bool
			name, assignedExpr, ok = variableBinding(n, source)
			if !ok {
				continue
			}
			declaredType = declaredTypeOf(n, source)
		default:
			continue
		}

		if name == "" {
			continue
		}

		// Start from the parent: a class or function node registers its own
		// scope, and the Definition belongs to the scope that contains it.
		scope := ranges.enclosing(n.Parent(), g.RootScope())
		hoisted := spec.Hoisted[defKind]
		vis := visibilityOf(spec, name)

		defID := g.AddDefinition(scope, name, defKind, rangeOf(n), declaredType, hoisted, vis)
		if defKind == langspec.DefClass {
			if d, ok := g.Definition(defID); ok {
				d.Bases = basesOf(n, source)
			}
		}
		if defKind == langspec.DefVariable && assignedExpr != "" {
			if d, ok := g.Definition(defID); ok {
				d.AssignedExpr = assignedExpr
			}
		}
	}
}

// basesOf extracts verbatim superclass/interface names from a class node's
// heritage field, trying every field name the supported grammars use for
// it. Best-effort: a name that turns out to be a generic type parameter
// rather than a real base is harmless noise internal/typeinfer's base
// resolution simply fails to look up.
func basesOf(n *tree_sitter.Node, source []byte) []string {
	var bases []string
	for _, field := range []string{"superclasses", "superclass", "interfaces"} {
		if node := n.ChildByFieldName(field); node != nil {
			collectIdentifiers(node, source, &bases)
		}
	}
	return bases
}

func collectIdentifiers(n *tree_sitter.Node, source []byte, out *[]string) {
	switch n.Kind() {
	case "identifier", "type_identifier", "constant", "simple_identifier":
		*out = append(*out, nodeText(n, source))
		return
	}
	for i := uint(0); i < n.ChildCount(); i++ {
		if child := n.Child(i); child != nil {
			collectIdentifiers(child, source, out)
		}
	}
}

// classifyFunctionKind distinguishes DefMethod from DefFunction (and the
// Python-specific static/class-method decorator forms) by looking at
// whether the function node sits directly inside a class body.
func classifyFunctionKind(spec *langspec.Spec, n *tree_sitter.Node, source []byte) langspec.DefKind {
	parent := n.Parent()
	for parent != nil {
		if kindIn(parent.Kind(), spec.ClassNodeTypes) {
			return methodKindFor(spec, n, source)
		}
		if kindIn(parent.Kind(), spec.FunctionNodeTypes) || kindIn(parent.Kind(), spec.ModuleNodeTypes) {
			break
		}
		parent = parent.Parent()
	}
	return langspec.DefFunction
}

// methodKindFor inspects a Python-style decorator list for @staticmethod /
// @classmethod; every other language just gets DefMethod. Python is
// special-cased because it's the only langspec entry whose spec.md
// concrete scenarios (advanced_oop.py) exercise the distinction.
func methodKindFor(spec *langspec.Spec, n *tree_sitter.Node, source []byte) langspec.DefKind {
	if spec.Language != langspec.Python {
		return langspec.DefMethod
	}
	decorated := n.Parent()
	if decorated == nil || decorated.Kind() != "decorated_definition" {
		return langspec.DefMethod
	}
	for i := uint(0); i < decorated.ChildCount(); i++ {
		child := decorated.Child(i)
		if child == nil || child.Kind() != "decorator" {
			continue
		}
		text := decoratorName(child, source)
		switch text {
		case "staticmethod":
			return langspec.DefStaticMethod
		case "classmethod":
			return langspec.DefClassMethod
		}
	}
	return langspec.DefMethod
}

func decoratorName(decorator *tree_sitter.Node, source []byte) string {
	for i := uint(0); i < decorator.ChildCount(); i++ {
		child := decorator.Child(i)
		if child != nil && child.Kind() == "identifier" {
			return nodeText(child, source)
		}
	}
	return ""
}

// definitionName extracts the declared name from a definition node. Most
// grammars expose a "name" field; a handful (C-style declarators,
// anonymous functions assigned to a variable) need a fallback walk.
func definitionName(n *tree_sitter.Node, source []byte) string {
	if name := n.ChildByFieldName("name"); name != nil {
		return nodeText(unwrapDeclarator(name), source)
	}
	if declarator := n.ChildByFieldName("declarator"); declarator != nil {
		return nodeText(unwrapDeclarator(declarator), source)
	}
	// Anonymous function/arrow assigned to a variable: `const f = () => {}`.
	if parent := n.Parent(); parent != nil {
		switch parent.Kind() {
		case "variable_declarator", "assignment_expression", "short_var_declaration":
			if lhs := parent.ChildByFieldName("name"); lhs != nil {
				return nodeText(lhs, source)
			}
			if lhs := parent.ChildByFieldName("left"); lhs != nil {
				return nodeText(lhs, source)
			}
		}
	}
	return firstIdentifierChild(n, source)
}

// unwrapDeclarator descends C/C++ pointer/array/function declarators, and
// PHP's variable_name wrapper, down to the innermost identifier.
func unwrapDeclarator(n *tree_sitter.Node) *tree_sitter.Node {
	for n != nil {
		switch n.Kind() {
		case "pointer_declarator", "array_declarator", "function_declarator", "init_declarator":
			if inner := n.ChildByFieldName("declarator"); inner != nil {
				n = inner
				continue
			}
		case "variable_name":
			descended := false
			for i := uint(0); i < n.ChildCount(); i++ {
				if c := n.Child(i); c != nil && c.Kind() == "name" {
					n = c
					descended = true
					break
				}
			}
			if descended {
				continue
			}
		}
		return n
	}
	return n
}

func firstIdentifierChild(n *tree_sitter.Node, source []byte) string {
	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		switch child.Kind() {
		case "identifier", "type_identifier", "field_identifier", "simple_identifier", "name", "constant":
			return nodeText(child, source)
		}
	}
	return ""
}

// parameterName extracts a parameter declaration's bound name: a bare
// identifier node for the grammars that represent simple parameters that
// way, or whichever of "name"/"pattern" the structured parameter forms
// (typed, defaulted, destructured) expose.
func parameterName(n *tree_sitter.Node, source []byte) string {
	switch n.Kind() {
	case "identifier", "simple_identifier":
		return nodeText(n, source)
	}
	if field := firstField(n, "name", "pattern"); field != nil {
		return nodeText(unwrapDeclarator(field), source)
	}
	return firstIdentifierChild(n, source)
}

// variableBinding extracts the bound name and, when available, the
// verbatim right-hand-side expression text from a variable definition
// node, per spec.md §4.6 step 3's "most recent assignment" descriptor
// fallback. Reports ok=false when the left-hand side isn't a plain name
// (e.g. `self.x = 1`, tuple unpacking, subscript assignment) — those
// bindings aren't local variables Ariadne tracks as Definitions.
func variableBinding(n *tree_sitter.Node, source []byte) (name, rhs string, ok bool) {
	switch n.Kind() {
	case "local_variable_declaration":
		for i := uint(0); i < n.ChildCount(); i++ {
			if child := n.Child(i); child != nil && child.Kind() == "variable_declarator" {
				return variableBinding(child, source)
			}
		}
		return "", "", false
	case "declaration":
		// C/C++: the declarator field holds an init_declarator (name +
		// initializer) only when the declaration assigns a value; recurse
		// into it so the generic path below sees "declarator"/"value"
		// directly instead of this extra layer of nesting.
		if decl := n.ChildByFieldName("declarator"); decl != nil && decl.Kind() == "init_declarator" {
			return variableBinding(decl, source)
		}
	}

	left := firstField(n, "left", "name", "pattern", "declarator")
	if left == nil {
		left = firstIdentifierNode(n)
	}
	left = unwrapSingleName(left)
	if left == nil {
		return "", "", false
	}

	name = nodeText(left, source)
	if right := firstField(n, "right", "value"); right != nil {
		rhs = nodeText(unwrapSingleExpr(right), source)
	}
	return name, rhs, name != ""
}

// unwrapSingleName descends through a single-element name list (Go's
// expression_list on the left of `:=`) down to a plain identifier, and
// rejects anything else: tuple unpacking and attribute/subscript targets
// aren't local variables Ariadne tracks as Definitions.
func unwrapSingleName(n *tree_sitter.Node) *tree_sitter.Node {
	if n == nil {
		return nil
	}
	n = unwrapDeclarator(n)
	switch n.Kind() {
	case "identifier", "simple_identifier", "field_identifier", "name":
		return n
	case "expression_list":
		if n.NamedChildCount() == 1 {
			return unwrapSingleName(n.NamedChild(0))
		}
	}
	return nil
}

// unwrapSingleExpr mirrors unwrapSingleName for the right-hand side, minus
// the identifier-only restriction: any single expression in a one-element
// expression_list is worth keeping as the assigned value text.
func unwrapSingleExpr(n *tree_sitter.Node) *tree_sitter.Node {
	if n != nil && n.Kind() == "expression_list" && n.NamedChildCount() == 1 {
		return n.NamedChild(0)
	}
	return n
}

func firstIdentifierNode(n *tree_sitter.Node) *tree_sitter.Node {
	for i := uint(0); i < n.ChildCount(); i++ {
		if child := n.Child(i); child != nil {
			switch child.Kind() {
			case "identifier", "simple_identifier", "field_identifier":
				return child
			}
		}
	}
	return nil
}

// declaredTypeOf captures the verbatim type-annotation text when the
// grammar exposes a "type" or "return_type" field, left unresolved for
// internal/typeinfer.
func declaredTypeOf(n *tree_sitter.Node, source []byte) string {
	for _, field := range []string{"type", "return_type"} {
		if t := n.ChildByFieldName(field); t != nil {
			return nodeText(t, source)
		}
	}
	return ""
}

func visibilityOf(spec *langspec.Spec, name string) scopegraph.Visibility {
	if spec.Exported == nil {
		return scopegraph.VisibilityUnknown
	}
	if spec.Exported(name) {
		return scopegraph.VisibilityExported
	}
	return scopegraph.VisibilityPrivate
}
