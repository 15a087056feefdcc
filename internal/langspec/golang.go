package langspec

func init() {
	Register(&Spec{
		Language:              Go,
		FileExtensions:        []string{".go"},
		FunctionNodeTypes:     []string{"function_declaration", "method_declaration"},
		ClassNodeTypes:        []string{"type_spec"},
		FieldNodeTypes:        []string{"field_declaration"},
		ParameterNodeTypes:    []string{"parameter_declaration"},
		VariableNodeTypes:     []string{"short_var_declaration", "var_spec"},
		ModuleNodeTypes:       []string{"source_file"},
		BlockNodeTypes:        []string{"block"},
		CallNodeTypes:         []string{"call_expression"},
		MemberAccessNodeTypes: []string{"selector_expression"},
		IdentifierNodeType:    "identifier",
		ImportNodeTypes:       []string{"import_declaration"},
		PackageIndicators:     []string{"go.mod"},
		Hoisted: map[DefKind]bool{
			DefFunction: true,
			DefClass:    true,
		},
		Exported: capitalizedExported,
	})
}
