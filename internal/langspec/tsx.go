package langspec

func init() {
	Register(&Spec{
		Language: TSX,
		FileExtensions: []string{".tsx"},
		FunctionNodeTypes: []string{
			"function_declaration",
			"generator_function_declaration",
			"function_expression",
			"arrow_function",
			"method_definition",
			"function_signature",
		},
		ClassNodeTypes: []string{
			"class_declaration",
			"class",
			"abstract_class_declaration",
			"enum_declaration",
			"interface_declaration",
			"type_alias_declaration",
		},
		ParameterNodeTypes:    []string{"required_parameter", "optional_parameter", "rest_parameter"},
		VariableNodeTypes:     []string{"variable_declarator"},
		ModuleNodeTypes:       []string{"program"},
		BlockNodeTypes:        []string{"statement_block"},
		CallNodeTypes:         []string{"call_expression"},
		MemberAccessNodeTypes: []string{"member_expression"},
		IdentifierNodeType:    "identifier",
		ImportNodeTypes:       []string{"import_statement"},
		Hoisted: map[DefKind]bool{
			DefFunction: true,
			DefClass:    false,
		},
		Exported: alwaysExported,
	})
}
