// Package typeinfer resolves the type of a member-access receiver so a
// call like `self.x.y()` or `super().y()` can be attributed to the right
// Definition once lexical and import-based resolution (internal/resolve)
// have run out of name matches to try. It works entirely off the scope
// graph already built by internal/indexfile — no re-parsing beyond the
// occasional direct tree walk super() needs.
package typeinfer

import (
	"github.com/ariadnehq/ariadne/internal/langspec"
	"github.com/ariadnehq/ariadne/internal/project"
	"github.com/ariadnehq/ariadne/internal/scopegraph"
)

// Kind classifies what a Descriptor names.
type Kind int

const (
	KindUnknown Kind = iota
	KindClass
	KindInstance
	KindCallable
	KindGeneric
	KindUnion
)

// Descriptor is Ariadne's (deliberately small) type-descriptor vocabulary:
// a class itself, an instance of one, a callable, a generic wrapping
// another descriptor, or a union of several.
type Descriptor struct {
	Kind     Kind
	Class    scopegraph.DefID
	Callable *scopegraph.DefID
	Generic  *Descriptor
	Union    []Descriptor
}

// Engine memoizes MRO linearizations across a single resolution batch; it holds no state that survives past one
// project.Index snapshot.
type Engine struct {
	idx *project.Index
	mro map[scopegraph.DefID][]scopegraph.DefID
}

// NewEngine returns a type-inference engine reading from idx.
func NewEngine(idx *project.Index) *Engine {
	return &Engine{idx: idx, mro: map[scopegraph.DefID][]scopegraph.DefID{}}
}

// DescriptorForReceiver infers the type of a receiver reference: the
// enclosing class for `self`/`this`, or whatever internal/resolve already
// attributed the reference to, widened from a Definition into a Descriptor.
func (e *Engine) DescriptorForReceiver(g *scopegraph.Graph, ref *scopegraph.Reference) (Descriptor, bool) {
	if ref.Name == "self" || ref.Name == "this" {
		if classID, ok := classDefForScope(g, ref.Scope); ok {
			return Descriptor{Kind: KindInstance, Class: classID}, true
		}
	}

	edge, ok := e.idx.Edge(ref.ID)
	if !ok || len(edge.Targets) != 1 {
		return Descriptor{}, false
	}
	return e.descriptorForDefinition(edge.Targets[0])
}

func (e *Engine) descriptorForDefinition(id scopegraph.DefID) (Descriptor, bool) {
	d, ok := e.idx.Definition(id)
	if !ok {
		return Descriptor{}, false
	}
	switch d.Kind {
	case langspec.DefClass:
		return Descriptor{Kind: KindClass, Class: id}, true
	case langspec.DefFunction, langspec.DefMethod, langspec.DefStaticMethod, langspec.DefClassMethod:
		return Descriptor{Kind: KindCallable, Callable: &id}, true
	case langspec.DefVariable, langspec.DefParameter, langspec.DefProperty:
		return e.descriptorFromAnnotationOrAssignment(id, d)
	}
	return Descriptor{}, false
}

// descriptorFromAnnotationOrAssignment implements spec.md §4.6 step 3's
// derivation order for a variable/parameter/property Definition: an
// explicit declared type annotation first, then the right-hand side of its
// most recent assignment, otherwise unknown.
func (e *Engine) descriptorFromAnnotationOrAssignment(id scopegraph.DefID, d *scopegraph.Definition) (Descriptor, bool) {
	if d.DeclaredType != "" {
		if classID, ok := e.resolveBaseName(id, firstTypeName(d.DeclaredType)); ok {
			return Descriptor{Kind: KindInstance, Class: classID}, true
		}
		return Descriptor{}, false
	}
	if d.AssignedExpr != "" {
		if classID, ok := e.resolveBaseName(id, firstTypeName(d.AssignedExpr)); ok {
			return Descriptor{Kind: KindInstance, Class: classID}, true
		}
	}
	return Descriptor{}, false
}

// ClassOf unwraps a Descriptor to the class its members should be looked
// up on (an instance and the class itself share a member set for
// resolution purposes — Ariadne doesn't distinguish static vs. instance
// member access).
func ClassOf(d Descriptor) (scopegraph.DefID, bool) {
	switch d.Kind {
	case KindClass, KindInstance:
		return d.Class, true
	default:
		return scopegraph.DefID{}, false
	}
}

// classDefForScope climbs from scope outward to the nearest ScopeClass and
// returns the DefClass Definition whose range matches it — the class body
// query node and its Scope share a byte range by construction
// (internal/indexfile's scopes pass registers one Scope per matched node).
func classDefForScope(g *scopegraph.Graph, scope scopegraph.ScopeID) (scopegraph.DefID, bool) {
	for {
		s, ok := g.Scope(scope)
		if !ok {
			return scopegraph.DefID{}, false
		}
		if s.Kind == langspec.ScopeClass {
			if classID, ok := classDefWithRange(g, s.Range); ok {
				return classID, true
			}
		}
		if s.Parent == nil {
			return scopegraph.DefID{}, false
		}
		scope = *s.Parent
	}
}

func classDefWithRange(g *scopegraph.Graph, r scopegraph.Range) (scopegraph.DefID, bool) {
	for i := range g.Definitions {
		d := &g.Definitions[i]
		if d.Kind == langspec.DefClass && d.Range.StartByte == r.StartByte && d.Range.EndByte == r.EndByte {
			return d.ID, true
		}
	}
	return scopegraph.DefID{}, false
}

// firstTypeName extracts the leading identifier from a verbatim type
// annotation ("Optional[Base]", "*Base", "Base | None", "Base") — good
// enough to name the base it should resolve to, without building a real
// type-expression parser for every grammar.
func firstTypeName(declared string) string {
	start := -1
	for i, r := range declared {
		isIdentChar := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_' || (start >= 0 && r >= '0' && r <= '9')
		if isIdentChar {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			return declared[start:i]
		}
	}
	if start >= 0 {
		return declared[start:]
	}
	return ""
}
