package langspec

func init() {
	Register(&Spec{
		Language:              C,
		FileExtensions:        []string{".c", ".h"},
		FunctionNodeTypes:     []string{"function_definition"},
		ClassNodeTypes:        []string{"struct_specifier", "enum_specifier", "union_specifier"},
		ParameterNodeTypes:    []string{"parameter_declaration"},
		VariableNodeTypes:     []string{"declaration"},
		ModuleNodeTypes:       []string{"translation_unit"},
		BlockNodeTypes:        []string{"compound_statement"},
		CallNodeTypes:         []string{"call_expression"},
		MemberAccessNodeTypes: []string{"field_expression"},
		IdentifierNodeType:    "identifier",
		ImportNodeTypes:       []string{"preproc_include"},
		PackageIndicators:     []string{"Makefile", "CMakeLists.txt"},
		Hoisted: map[DefKind]bool{
			DefFunction: true,
			DefClass:    true,
		},
		// Visibility in C is the `static` keyword, not a name convention;
		// treat every top-level symbol as potentially visible across
		// translation units and let header-inclusion narrow it.
		Exported: alwaysExported,
	})
}
