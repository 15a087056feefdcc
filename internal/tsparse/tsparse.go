// Package tsparse owns the tree-sitter grammars: one *tree_sitter.Language
// per internal/langspec.Language, and a sync.Pool of parsers per language so
// concurrent file indexing never allocates a fresh parser per file.
package tsparse

import (
	"fmt"
	"sync"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	tree_sitter_c "github.com/tree-sitter/tree-sitter-c/bindings/go"
	tree_sitter_cpp "github.com/tree-sitter/tree-sitter-cpp/bindings/go"
	tree_sitter_c_sharp "github.com/tree-sitter/tree-sitter-c-sharp/bindings/go"
	tree_sitter_go "github.com/tree-sitter/tree-sitter-go/bindings/go"
	tree_sitter_java "github.com/tree-sitter/tree-sitter-java/bindings/go"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	tree_sitter_php "github.com/tree-sitter/tree-sitter-php/bindings/go"
	tree_sitter_python "github.com/tree-sitter/tree-sitter-python/bindings/go"
	tree_sitter_ruby "github.com/tree-sitter/tree-sitter-ruby/bindings/go"
	tree_sitter_rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"
	tree_sitter_scala "github.com/tree-sitter/tree-sitter-scala/bindings/go"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"

	tree_sitter_kotlin "github.com/tree-sitter-grammars/tree-sitter-kotlin/bindings/go"
	tree_sitter_lua "github.com/tree-sitter-grammars/tree-sitter-lua/bindings/go"

	"github.com/ariadnehq/ariadne/internal/langspec"
)

var (
	initOnce sync.Once
	grammars map[langspec.Language]*tree_sitter.Language
	pools    map[langspec.Language]*sync.Pool
)

func initGrammars() {
	initOnce.Do(func() {
		grammars = map[langspec.Language]*tree_sitter.Language{
			langspec.Python:     tree_sitter.NewLanguage(tree_sitter_python.Language()),
			langspec.JavaScript: tree_sitter.NewLanguage(tree_sitter_javascript.Language()),
			langspec.TypeScript: tree_sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript()),
			langspec.TSX:        tree_sitter.NewLanguage(tree_sitter_typescript.LanguageTSX()),
			langspec.Go:         tree_sitter.NewLanguage(tree_sitter_go.Language()),
			langspec.Java:       tree_sitter.NewLanguage(tree_sitter_java.Language()),
			langspec.Rust:       tree_sitter.NewLanguage(tree_sitter_rust.Language()),
			langspec.C:          tree_sitter.NewLanguage(tree_sitter_c.Language()),
			langspec.CPP:        tree_sitter.NewLanguage(tree_sitter_cpp.Language()),
			langspec.CSharp:     tree_sitter.NewLanguage(tree_sitter_c_sharp.Language()),
			langspec.PHP:        tree_sitter.NewLanguage(tree_sitter_php.LanguagePHPOnly()),
			langspec.Ruby:       tree_sitter.NewLanguage(tree_sitter_ruby.Language()),
			langspec.Lua:        tree_sitter.NewLanguage(tree_sitter_lua.Language()),
			langspec.Scala:      tree_sitter.NewLanguage(tree_sitter_scala.Language()),
			langspec.Kotlin:     tree_sitter.NewLanguage(tree_sitter_kotlin.Language()),
		}

		pools = make(map[langspec.Language]*sync.Pool, len(grammars))
		for l, g := range grammars {
			g := g
			pools[l] = &sync.Pool{
				New: func() any {
					p := tree_sitter.NewParser()
					if err := p.SetLanguage(g); err != nil {
						panic(fmt.Sprintf("tsparse: set language %v: %v", g, err))
					}
					return p
				},
			}
		}
	})
}

// Grammar returns the compiled tree-sitter Language for l.
func Grammar(l langspec.Language) (*tree_sitter.Language, error) {
	initGrammars()
	g, ok := grammars[l]
	if !ok {
		return nil, fmt.Errorf("tsparse: unsupported language %q", l)
	}
	return g, nil
}

// Parse parses source with the pooled parser for l. The caller must call
// tree.Close() when done with the returned tree.
func Parse(l langspec.Language, source []byte) (*tree_sitter.Tree, error) {
	initGrammars()

	pool, ok := pools[l]
	if !ok {
		return nil, fmt.Errorf("tsparse: unsupported language %q", l)
	}

	p, _ := pool.Get().(*tree_sitter.Parser)
	if p == nil {
		return nil, fmt.Errorf("tsparse: failed to obtain parser for %q", l)
	}
	defer pool.Put(p)

	tree := p.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("tsparse: parse failed for %q", l)
	}
	return tree, nil
}

// WalkFunc is invoked for each node in a depth-first traversal. Returning
// false skips the node's children.
type WalkFunc func(node *tree_sitter.Node) bool

// Walk traverses an AST rooted at node in depth-first order.
func Walk(node *tree_sitter.Node, fn WalkFunc) {
	if node == nil {
		return
	}
	if !fn(node) {
		return
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		if child := node.Child(i); child != nil {
			Walk(child, fn)
		}
	}
}

// NodeText returns the source slice spanned by node.
func NodeText(node *tree_sitter.Node, source []byte) string {
	return string(source[node.StartByte():node.EndByte()])
}

// Point is a 0-indexed (row, column) source position, mirroring
// tree-sitter's own Point but decoupled from the tree-sitter package so
// downstream packages don't need to import it directly.
type Point struct {
	Row    uint
	Column uint
}

// NodeRange captures a node's byte span and start/end source points.
type NodeRange struct {
	StartByte uint
	EndByte   uint
	Start     Point
	End       Point
}

// RangeOf extracts NodeRange from a tree-sitter node.
func RangeOf(node *tree_sitter.Node) NodeRange {
	start := node.StartPosition()
	end := node.EndPosition()
	return NodeRange{
		StartByte: node.StartByte(),
		EndByte:   node.EndByte(),
		Start:     Point{Row: start.Row, Column: start.Column},
		End:       Point{Row: end.Row, Column: end.Column},
	}
}
