package langspec

func init() {
	Register(&Spec{
		Language: PHP,
		FileExtensions: []string{".php"},
		FunctionNodeTypes: []string{
			"function_static_declaration",
			"anonymous_function",
			"function_definition",
			"arrow_function",
			"method_declaration",
		},
		ClassNodeTypes: []string{
			"trait_declaration",
			"enum_declaration",
			"interface_declaration",
			"class_declaration",
		},
		FieldNodeTypes:     []string{"property_declaration"},
		ParameterNodeTypes: []string{"simple_parameter", "variadic_parameter", "property_promotion_parameter"},
		// PHP has no distinct variable_declarator node; a bare `$x = 1;`
		// is an assignment_expression, same kind the parser also matches
		// as one of CallNodeTypes' relatives — harmless here since this
		// is a separate query from References.
		VariableNodeTypes:     []string{"assignment_expression"},
		ModuleNodeTypes:       []string{"program"},
		BlockNodeTypes:        []string{"compound_statement"},
		CallNodeTypes: []string{
			"member_call_expression",
			"scoped_call_expression",
			"function_call_expression",
			"nullsafe_member_call_expression",
		},
		MemberAccessNodeTypes: []string{"member_access_expression", "scoped_property_access_expression"},
		IdentifierNodeType:    "name",
		ImportNodeTypes:       []string{"namespace_use_declaration"},
		PackageIndicators:     []string{"composer.json"},
		Hoisted: map[DefKind]bool{
			DefFunction: true,
			DefClass:    true,
		},
		Exported: alwaysExported,
	})
}
