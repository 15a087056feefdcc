package typeinfer

import (
	"github.com/ariadnehq/ariadne/internal/langspec"
	"github.com/ariadnehq/ariadne/internal/scopegraph"
)

// PolymorphicImplementers finds every indexed class other than iface whose
// method-name set is a superset of iface's own declared methods, and
// returns each implementer's Definition for methodName. This is the
// structural-protocol fallback for a receiver typed as an interface with no
// single resolvable target: the class's declared methods stand in for the
// interface's required method set, the same coverage check a Go compiler
// runs to decide interface satisfaction, just name-only instead of
// signature-checked.
func (e *Engine) PolymorphicImplementers(iface scopegraph.DefID, methodName string) []scopegraph.DefID {
	ifaceDef, ok := e.idx.Definition(iface)
	if !ok || ifaceDef.Kind != langspec.DefClass {
		return nil
	}
	ifaceG, ok := e.idx.File(iface.File)
	if !ok {
		return nil
	}
	required := memberNames(ifaceG, ifaceDef)
	if len(required) == 0 {
		return nil
	}

	var out []scopegraph.DefID
	for _, fid := range e.idx.Files() {
		g, ok := e.idx.File(fid)
		if !ok {
			continue
		}
		for i := range g.Definitions {
			candidate := &g.Definitions[i]
			if candidate.Kind != langspec.DefClass || candidate.ID == iface {
				continue
			}
			methods := memberNames(g, candidate)
			if !satisfies(required, methods) {
				continue
			}
			if m, ok := memberNamed(g, candidate, methodName); ok {
				out = append(out, m.ID)
			}
		}
	}
	return out
}

// memberNames collects the distinct names of every method-like Definition
// owned directly by classDef.
func memberNames(g *scopegraph.Graph, classDef *scopegraph.Definition) map[string]bool {
	names := map[string]bool{}
	for i := range g.Definitions {
		d := &g.Definitions[i]
		switch d.Kind {
		case langspec.DefMethod, langspec.DefStaticMethod, langspec.DefClassMethod:
		default:
			continue
		}
		if !withinRange(d.Range, classDef.Range) {
			continue
		}
		if owner, ok := enclosingClass(g, d); !ok || owner != classDef.ID {
			continue
		}
		names[d.Name] = true
	}
	return names
}

// satisfies reports whether every name in required is present in have,
// mirroring a Go compiler's interface-satisfaction check but on names alone.
func satisfies(required, have map[string]bool) bool {
	for name := range required {
		if !have[name] {
			return false
		}
	}
	return true
}
