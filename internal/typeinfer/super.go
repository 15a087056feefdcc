package typeinfer

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/ariadnehq/ariadne/internal/langspec"
	"github.com/ariadnehq/ariadne/internal/project"
	"github.com/ariadnehq/ariadne/internal/scopegraph"
	"github.com/ariadnehq/ariadne/internal/tsparse"
)

// resolveSuperCalls covers spec scenario 4: `super().method()`. The
// member-access receiver there is a call expression (`super()`), not a
// bare name, so the ordinary receiver-chain reference internal/indexfile
// builds never captures it — this walks the syntax tree directly looking
// for the pattern and resolves the member name through the enclosing
// method's owner's MRO, one step past the owner itself.
func resolveSuperCalls(b *project.Builder, idx *project.Index, e *Engine, g *scopegraph.Graph) {
	if g.File.Tree == nil {
		return
	}
	spec := langspec.ForLanguage(g.File.Language)
	if spec == nil {
		return
	}
	source := g.File.Source
	root := g.File.Tree.RootNode()

	var walk func(*tree_sitter.Node)
	walk = func(n *tree_sitter.Node) {
		if n == nil {
			return
		}
		if nameNode := superMemberName(spec, n, source); nameNode != nil {
			resolveSuperMemberRef(b, e, g, n, nameNode, source)
		}
		for i := uint(0); i < n.ChildCount(); i++ {
			walk(n.Child(i))
		}
	}
	walk(root)
}

// superMemberName returns the member-name node of n if n is a member
// access whose object is a zero-argument call to an identifier literally
// named "super".
func superMemberName(spec *langspec.Spec, n *tree_sitter.Node, source []byte) *tree_sitter.Node {
	if !kindIn(n.Kind(), spec.MemberAccessNodeTypes) {
		return nil
	}
	object := firstField(n, "object", "operand", "argument", "value")
	if object == nil || object.Kind() != "call" && object.Kind() != "call_expression" {
		return nil
	}
	callee := firstField(object, "function", "method")
	if callee == nil || tsparse.NodeText(callee, source) != "super" {
		return nil
	}
	return firstField(n, "property", "attribute", "field", "name")
}

func resolveSuperMemberRef(b *project.Builder, e *Engine, g *scopegraph.Graph, memberAccess, nameNode *tree_sitter.Node, source []byte) {
	owner, ok := enclosingMethodOwner(g, memberAccess)
	if !ok {
		return
	}
	name := tsparse.NodeText(nameNode, source)
	target, ok := e.SuperMember(owner, name)
	if !ok {
		return
	}
	refID, ok := referenceAt(g, nameNode)
	if !ok {
		return
	}
	b.AddResolvedEdge(scopegraph.ResolvedEdge{Source: refID, Targets: []scopegraph.DefID{target}, Quality: scopegraph.QualityHeuristic})
}

// enclosingMethodOwner finds the method Definition whose range contains n,
// then the class that method is a member of.
func enclosingMethodOwner(g *scopegraph.Graph, n *tree_sitter.Node) (scopegraph.DefID, bool) {
	start, end := n.StartByte(), n.EndByte()
	var method *scopegraph.Definition
	for i := range g.Definitions {
		d := &g.Definitions[i]
		switch d.Kind {
		case langspec.DefMethod, langspec.DefStaticMethod, langspec.DefClassMethod:
		default:
			continue
		}
		if d.Range.StartByte > start || d.Range.EndByte < end {
			continue
		}
		if method == nil || withinRange(d.Range, method.Range) {
			method = d
		}
	}
	if method == nil {
		return scopegraph.DefID{}, false
	}
	return enclosingClass(g, method)
}

func referenceAt(g *scopegraph.Graph, n *tree_sitter.Node) (scopegraph.RefID, bool) {
	start, end := n.StartByte(), n.EndByte()
	for i := range g.References {
		r := &g.References[i]
		if r.Range.StartByte == start && r.Range.EndByte == end {
			return r.ID, true
		}
	}
	return scopegraph.RefID{}, false
}

func kindIn(kind string, set []string) bool {
	for _, k := range set {
		if k == kind {
			return true
		}
	}
	return false
}

func firstField(n *tree_sitter.Node, fields ...string) *tree_sitter.Node {
	for _, f := range fields {
		if v := n.ChildByFieldName(f); v != nil {
			return v
		}
	}
	return nil
}
