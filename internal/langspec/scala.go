package langspec

func init() {
	Register(&Spec{
		Language:          Scala,
		FileExtensions:    []string{".scala"},
		FunctionNodeTypes: []string{"function_definition", "function_declaration"},
		ClassNodeTypes: []string{
			"class_definition",
			"object_definition",
			"trait_definition",
		},
		ParameterNodeTypes: []string{"parameter", "class_parameter"},
		VariableNodeTypes:  []string{"val_definition", "var_definition"},
		ModuleNodeTypes:    []string{"compilation_unit"},
		BlockNodeTypes:     []string{"block"},
		CallNodeTypes: []string{
			"call_expression",
			"generic_function",
			"field_expression",
			"infix_expression",
		},
		MemberAccessNodeTypes: []string{"field_expression"},
		IdentifierNodeType:    "identifier",
		ImportNodeTypes:       []string{"import_declaration"},
		PackageIndicators:     []string{"build.sbt"},
		Hoisted: map[DefKind]bool{
			DefFunction: true,
			DefClass:    true,
		},
		Exported: alwaysExported,
	})
}
