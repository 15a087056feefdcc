package typeinfer

import (
	"testing"

	"github.com/ariadnehq/ariadne/internal/indexfile"
	"github.com/ariadnehq/ariadne/internal/langspec"
	"github.com/ariadnehq/ariadne/internal/project"
	"github.com/ariadnehq/ariadne/internal/scopegraph"
)

func buildSingleFile(t *testing.T, src string) (*project.Builder, *project.Index, *scopegraph.Graph) {
	t.Helper()
	b := project.NewBuilder("/proj", nil)
	id := b.AllocateFileID("/proj/a.py")
	res := indexfile.Index(nil, id, "/proj/a.py", []byte(src), langspec.Python)
	b.Replace(res.Graph)
	idx := b.Build()
	g, ok := idx.File(id)
	if !ok {
		t.Fatal("file not found after Replace")
	}
	return b, idx, g
}

func classNamed(g *scopegraph.Graph, name string) (*scopegraph.Definition, bool) {
	for i := range g.Definitions {
		d := &g.Definitions[i]
		if d.Kind == langspec.DefClass && d.Name == name {
			return d, true
		}
	}
	return nil, false
}

const inheritanceSrc = `class Base:
    def greet(self):
        pass

    def shared(self):
        pass

class Child(Base):
    def greet(self):
        super().greet()
`

func TestMROSingleInheritance(t *testing.T) {
	_, idx, g := buildSingleFile(t, inheritanceSrc)

	base, ok := classNamed(g, "Base")
	if !ok {
		t.Fatal("Base class not found")
	}
	child, ok := classNamed(g, "Child")
	if !ok {
		t.Fatal("Child class not found")
	}

	e := NewEngine(idx)
	mro := e.MRO(child.ID)
	if len(mro) != 2 || mro[0] != child.ID || mro[1] != base.ID {
		t.Errorf("MRO(Child) = %v, want [Child, Base] (%v, %v)", mro, child.ID, base.ID)
	}
}

func TestResolveMemberOverrideWinsOverBase(t *testing.T) {
	_, idx, g := buildSingleFile(t, inheritanceSrc)
	child, _ := classNamed(g, "Child")

	e := NewEngine(idx)
	got, ok := e.ResolveMember(child.ID, "greet")
	if !ok {
		t.Fatal("greet not resolved on Child")
	}
	want, ok := memberNamed(g, child, "greet")
	if !ok {
		t.Fatal("Child.greet definition not found directly")
	}
	if got != want.ID {
		t.Errorf("ResolveMember(Child, greet) = %v, want Child's own %v", got, want.ID)
	}
}

func TestResolveMemberInheritedFromBase(t *testing.T) {
	_, idx, g := buildSingleFile(t, inheritanceSrc)
	child, _ := classNamed(g, "Child")
	base, _ := classNamed(g, "Base")

	e := NewEngine(idx)
	got, ok := e.ResolveMember(child.ID, "shared")
	if !ok {
		t.Fatal("shared not resolved through Child's MRO")
	}
	want, ok := memberNamed(g, base, "shared")
	if !ok {
		t.Fatal("Base.shared definition not found directly")
	}
	if got != want.ID {
		t.Errorf("ResolveMember(Child, shared) = %v, want Base's %v", got, want.ID)
	}
}

func TestSuperCallResolvesToBaseMethod(t *testing.T) {
	b, idx, g := buildSingleFile(t, inheritanceSrc)
	base, _ := classNamed(g, "Base")
	baseGreet, ok := memberNamed(g, base, "greet")
	if !ok {
		t.Fatal("Base.greet not found")
	}

	ResolveMemberAccess(b, idx)

	var callRef *scopegraph.Reference
	for i := range g.References {
		r := &g.References[i]
		if r.Name == "greet" && r.Usage == scopegraph.UsageCall {
			callRef = r
		}
	}
	if callRef == nil {
		t.Fatal("no call reference to greet found (expected the super().greet() call site)")
	}

	edge, ok := idx.Edge(callRef.ID)
	if !ok || len(edge.Targets) != 1 {
		t.Fatal("super().greet() did not resolve")
	}
	if edge.Targets[0] != baseGreet.ID {
		t.Errorf("super().greet() resolved to %v, want Base.greet %v", edge.Targets[0], baseGreet.ID)
	}
}

func TestPolymorphicProtocolFallback(t *testing.T) {
	src := `class Shape:
    def area(self):
        pass

class Circle:
    def area(self):
        pass

class Square:
    def area(self):
        pass

def render(shape: Shape):
    shape.area()
`
	b, idx, g := buildSingleFile(t, src)
	shape, _ := classNamed(g, "Shape")
	circle, _ := classNamed(g, "Circle")
	square, _ := classNamed(g, "Square")
	circleArea, ok := memberNamed(g, circle, "area")
	if !ok {
		t.Fatal("Circle.area not found")
	}
	squareArea, ok := memberNamed(g, square, "area")
	if !ok {
		t.Fatal("Square.area not found")
	}

	e := NewEngine(idx)
	impls := e.PolymorphicImplementers(shape.ID, "area")
	if len(impls) != 2 {
		t.Fatalf("PolymorphicImplementers(Shape, area) = %v, want 2 entries", impls)
	}
	found := map[scopegraph.DefID]bool{impls[0]: true, impls[1]: true}
	if !found[circleArea.ID] || !found[squareArea.ID] {
		t.Errorf("PolymorphicImplementers(Shape, area) = %v, want {%v, %v}", impls, circleArea.ID, squareArea.ID)
	}

	ResolveMemberAccess(b, idx)

	var callRef *scopegraph.Reference
	for i := range g.References {
		r := &g.References[i]
		if r.Name == "area" && r.Usage == scopegraph.UsageCall {
			callRef = r
		}
	}
	if callRef == nil {
		t.Fatal("no call reference to area found (expected the shape.area() call site)")
	}

	edge, ok := idx.Edge(callRef.ID)
	if !ok {
		t.Fatal("shape.area() did not resolve")
	}
	if edge.Quality != scopegraph.QualityPolymorphicSet {
		t.Errorf("shape.area() resolved with quality %v, want QualityPolymorphicSet", edge.Quality)
	}
	gotTargets := map[scopegraph.DefID]bool{}
	for _, target := range edge.Targets {
		gotTargets[target] = true
	}
	if len(edge.Targets) != 2 || !gotTargets[circleArea.ID] || !gotTargets[squareArea.ID] {
		t.Errorf("shape.area() resolved to %v, want {%v, %v}", edge.Targets, circleArea.ID, squareArea.ID)
	}
}

func TestSelfMemberAccessResolvesThroughMRO(t *testing.T) {
	src := `class Base:
    def helper(self):
        pass

class Child(Base):
    def run(self):
        self.helper()
`
	b, idx, g := buildSingleFile(t, src)
	base, _ := classNamed(g, "Base")
	baseHelper, ok := memberNamed(g, base, "helper")
	if !ok {
		t.Fatal("Base.helper not found")
	}

	ResolveMemberAccess(b, idx)

	var callRef *scopegraph.Reference
	for i := range g.References {
		r := &g.References[i]
		if r.Name == "helper" && r.Usage == scopegraph.UsageCall {
			callRef = r
		}
	}
	if callRef == nil {
		t.Fatal("no call reference to helper found")
	}
	edge, ok := idx.Edge(callRef.ID)
	if !ok || len(edge.Targets) != 1 {
		t.Fatal("self.helper() did not resolve")
	}
	if edge.Targets[0] != baseHelper.ID {
		t.Errorf("self.helper() resolved to %v, want Base.helper %v", edge.Targets[0], baseHelper.ID)
	}
}
