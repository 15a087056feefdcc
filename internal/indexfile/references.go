package indexfile

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/ariadnehq/ariadne/internal/langspec"
	"github.com/ariadnehq/ariadne/internal/querypack"
	"github.com/ariadnehq/ariadne/internal/scopegraph"
)

// buildReferences runs the references query and classifies every
// identifier leaf it matches by inspecting its immediate parent context,
// per spec.md §4.2 step 4. Call and member-access nodes are also matched
// by the compiled query (so the query pack's alternation fully covers the
// concern it names) but only drive classification of their identifier
// children here; they don't produce their own Reference.
func buildReferences(g *scopegraph.Graph, pack *querypack.Pack, spec *langspec.Spec, source []byte, ranges *scopeRanges) {
	root := g.File.Tree.RootNode()
	matches := querypack.Matches(pack.References, root, source)

	byNode := make(map[byteSpan]scopegraph.RefID, len(matches))

	for _, n := range matches {
		if n.Kind() != spec.IdentifierNodeType {
			continue
		}
		name := nodeText(n, source)
		if name == "" {
			continue
		}

		usage, receiverNode := classifyReference(spec, n)
		scope := ranges.enclosing(n, g.RootScope())

		var receiver *scopegraph.RefID
		if receiverNode != nil {
			if rid, ok := byNode[rangeKey(receiverNode)]; ok {
				receiver = &rid
			} else if receiverNode.Kind() == spec.IdentifierNodeType {
				// object identifier wasn't itself a query match (shouldn't
				// normally happen since the identifier kind is always in
				// the alternation, but guard for grammar irregularities).
				rid := g.AddReference(scope, nodeText(receiverNode, source), scopegraph.UsageRead, rangeOf(receiverNode), nil)
				byNode[rangeKey(receiverNode)] = rid
				receiver = &rid
			}
		}

		id := g.AddReference(scope, name, usage, rangeOf(n), receiver)
		byNode[rangeKey(n)] = id
	}
}

// classifyReference inspects n's parent to decide its UsageKind and,
// for a member-access property, the receiver node whose Reference it
// should chain off of.
func classifyReference(spec *langspec.Spec, n *tree_sitter.Node) (scopegraph.UsageKind, *tree_sitter.Node) {
	parent := n.Parent()
	if parent == nil {
		return scopegraph.UsageRead, nil
	}

	if kindIn(parent.Kind(), spec.MemberAccessNodeTypes) {
		object := firstField(parent, "object", "operand", "argument", "value")
		if object == nil {
			object = parent.Child(0)
		}
		property := firstField(parent, "property", "attribute", "field", "name")

		if property != nil && sameNode(property, n) {
			// `a.b()` — if this member access is itself the callee of an
			// enclosing call, b is a call usage, not a plain member read.
			if grandparent := parent.Parent(); grandparent != nil && kindIn(grandparent.Kind(), spec.CallNodeTypes) {
				if callee := fieldOrPositional(grandparent, "function", 0); callee != nil && sameNode(callee, parent) {
					return scopegraph.UsageCall, object
				}
			}
			return scopegraph.UsageMemberAccess, object
		}
		if object != nil && sameNode(object, n) {
			// The receiver's own usage depends on what its parent is; a
			// bare read is the safe default, member access for a chained
			// object is reclassified when its own Reference is looked up
			// as someone else's receiver.
			return scopegraph.UsageRead, nil
		}
	}

	if kindIn(parent.Kind(), spec.CallNodeTypes) {
		callee := fieldOrPositional(parent, "function", 0)
		if callee == nil {
			callee = fieldOrPositional(parent, "method", 0)
		}
		if callee != nil && sameNode(callee, n) {
			return scopegraph.UsageCall, nil
		}
		// n is an argument; default read usage applies below.
	}

	switch parent.Kind() {
	case "type_annotation", "type_identifier":
		return scopegraph.UsageTypeAnnotation, nil
	}

	return scopegraph.UsageRead, nil
}

// firstField returns the first named field present on n, trying each
// grammar's own name for "the member being accessed" (Python's attribute
// node calls it "attribute", JS/TS's member_expression calls it
// "property", C/C++'s field_expression calls it "field").
func firstField(n *tree_sitter.Node, fields ...string) *tree_sitter.Node {
	for _, f := range fields {
		if v := n.ChildByFieldName(f); v != nil {
			return v
		}
	}
	return nil
}

func fieldOrPositional(n *tree_sitter.Node, field string, positionalIndex int) *tree_sitter.Node {
	if f := n.ChildByFieldName(field); f != nil {
		return f
	}
	if positionalIndex >= 0 && uint(positionalIndex) < n.ChildCount() {
		return n.Child(uint(positionalIndex))
	}
	if positionalIndex == -1 && n.ChildCount() > 0 {
		return n.Child(n.ChildCount() - 1)
	}
	return nil
}

func sameNode(a, b *tree_sitter.Node) bool {
	return a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte()
}
