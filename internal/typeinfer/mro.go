package typeinfer

import (
	"github.com/ariadnehq/ariadne/internal/langspec"
	"github.com/ariadnehq/ariadne/internal/scopegraph"
)

// MRO returns class's C3-linearized method resolution order, class itself
// first. Bases that can't be resolved to an indexed Definition are
// skipped rather than failing the whole linearization — the same
// degrade-gracefully stance internal/resolve takes for unindexed imports.
func (e *Engine) MRO(class scopegraph.DefID) []scopegraph.DefID {
	return e.mroLocked(class, map[scopegraph.DefID]bool{})
}

func (e *Engine) mroLocked(class scopegraph.DefID, visiting map[scopegraph.DefID]bool) []scopegraph.DefID {
	if cached, ok := e.mro[class]; ok {
		return cached
	}
	if visiting[class] {
		return nil // cyclic inheritance guard
	}
	visiting[class] = true
	defer delete(visiting, class)

	def, ok := e.idx.Definition(class)
	if !ok || def.Kind != langspec.DefClass {
		return []scopegraph.DefID{class}
	}

	var bases []scopegraph.DefID
	sequences := [][]scopegraph.DefID{{class}}
	for _, baseName := range def.Bases {
		baseID, ok := e.resolveBaseName(class, baseName)
		if !ok {
			continue
		}
		bases = append(bases, baseID)
		sequences = append(sequences, e.mroLocked(baseID, visiting))
	}
	sequences = append(sequences, bases)

	merged := c3Merge(sequences)
	if merged == nil {
		// Inconsistent hierarchy (a diamond C3 can't order) — degrade to
		// depth-first order rather than dropping the class's own MRO.
		merged = append([]scopegraph.DefID{class}, flattenUnique(sequences[1:len(sequences)-1])...)
	}
	e.mro[class] = merged
	return merged
}

// c3Merge implements the standard C3 linearization merge: repeatedly take
// the head of the first sequence that doesn't appear in the tail of any
// other sequence, until every sequence is empty. Returns nil if no valid
// head can be found (the hierarchy has no linear extension).
func c3Merge(seqs [][]scopegraph.DefID) []scopegraph.DefID {
	seqs = cloneNonEmpty(seqs)
	var result []scopegraph.DefID
	for len(seqs) > 0 {
		head, ok := pickHead(seqs)
		if !ok {
			return nil
		}
		result = append(result, head)
		seqs = removeHeadEverywhere(seqs, head)
	}
	return result
}

func cloneNonEmpty(seqs [][]scopegraph.DefID) [][]scopegraph.DefID {
	var out [][]scopegraph.DefID
	for _, s := range seqs {
		if len(s) == 0 {
			continue
		}
		cp := make([]scopegraph.DefID, len(s))
		copy(cp, s)
		out = append(out, cp)
	}
	return out
}

func pickHead(seqs [][]scopegraph.DefID) (scopegraph.DefID, bool) {
	for _, s := range seqs {
		candidate := s[0]
		if !appearsInAnyTail(candidate, seqs) {
			return candidate, true
		}
	}
	return scopegraph.DefID{}, false
}

func appearsInAnyTail(candidate scopegraph.DefID, seqs [][]scopegraph.DefID) bool {
	for _, s := range seqs {
		for _, id := range s[1:] {
			if id == candidate {
				return true
			}
		}
	}
	return false
}

func removeHeadEverywhere(seqs [][]scopegraph.DefID, head scopegraph.DefID) [][]scopegraph.DefID {
	var out [][]scopegraph.DefID
	for _, s := range seqs {
		var filtered []scopegraph.DefID
		for _, id := range s {
			if id == head {
				continue
			}
			filtered = append(filtered, id)
		}
		if len(filtered) > 0 {
			out = append(out, filtered)
		}
	}
	return out
}

func flattenUnique(seqs [][]scopegraph.DefID) []scopegraph.DefID {
	seen := map[scopegraph.DefID]bool{}
	var out []scopegraph.DefID
	for _, s := range seqs {
		for _, id := range s {
			if seen[id] {
				continue
			}
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// resolveBaseName resolves a verbatim base-class name text to a DefID:
// first among definitions in the class's own file, chasing import-binding
// proxies, then by scanning every indexed file's exports as a last resort.
func (e *Engine) resolveBaseName(class scopegraph.DefID, name string) (scopegraph.DefID, bool) {
	name = lastDotSegment(name)
	if name == "" {
		return scopegraph.DefID{}, false
	}

	g, ok := e.idx.File(class.File)
	if !ok {
		return scopegraph.DefID{}, false
	}
	for i := range g.Definitions {
		d := &g.Definitions[i]
		if d.Name != name {
			continue
		}
		if d.Kind == langspec.DefClass {
			return d.ID, true
		}
		if d.Kind == langspec.DefImportBinding {
			if target, ok := e.chaseToClass(d); ok {
				return target, true
			}
		}
	}

	for _, fid := range e.idx.Files() {
		defID, ok := e.idx.Export(fid, name)
		if !ok {
			continue
		}
		if d, ok := e.idx.Definition(defID); ok && d.Kind == langspec.DefClass {
			return defID, true
		}
	}
	return scopegraph.DefID{}, false
}

func (e *Engine) chaseToClass(d *scopegraph.Definition) (scopegraph.DefID, bool) {
	seen := map[scopegraph.DefID]bool{}
	cur := d
	for depth := 0; depth < 8; depth++ {
		if cur.ProxyTarget == nil {
			return scopegraph.DefID{}, false
		}
		target := *cur.ProxyTarget
		if seen[target] {
			return scopegraph.DefID{}, false
		}
		seen[target] = true
		td, ok := e.idx.Definition(target)
		if !ok {
			return scopegraph.DefID{}, false
		}
		if td.Kind == langspec.DefClass {
			return target, true
		}
		cur = td
	}
	return scopegraph.DefID{}, false
}

func lastDotSegment(name string) string {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			return name[i+1:]
		}
	}
	return name
}
