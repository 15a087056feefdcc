package langspec

func init() {
	Register(&Spec{
		Language: Rust,
		FileExtensions: []string{".rs"},
		FunctionNodeTypes: []string{
			"function_item",
			"closure_expression",
		},
		ClassNodeTypes: []string{
			"struct_item",
			"enum_item",
			"union_item",
			"trait_item",
			"impl_item",
		},
		ParameterNodeTypes:    []string{"parameter", "self_parameter"},
		VariableNodeTypes:     []string{"let_declaration"},
		ModuleNodeTypes:       []string{"source_file", "mod_item"},
		BlockNodeTypes:        []string{"block"},
		CallNodeTypes:         []string{"call_expression", "macro_invocation"},
		MemberAccessNodeTypes: []string{"field_expression"},
		IdentifierNodeType:    "identifier",
		ImportNodeTypes:       []string{"use_declaration", "extern_crate_declaration"},
		PackageIndicators:     []string{"Cargo.toml"},
		Hoisted: map[DefKind]bool{
			DefFunction: true,
			DefClass:    true,
		},
		// Rust visibility is a `pub` modifier on the item, not a naming
		// convention; Exported can't see the modifier from a bare name, so
		// this conservatively treats everything as visible (best-effort,
		// per spec.md's degrade-to-lexical non-goal).
		Exported: alwaysExported,
	})
}
