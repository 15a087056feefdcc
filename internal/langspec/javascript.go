package langspec

func init() {
	Register(&Spec{
		Language: JavaScript,
		FileExtensions: []string{".js", ".jsx"},
		FunctionNodeTypes: []string{
			"function_declaration",
			"generator_function_declaration",
			"function_expression",
			"arrow_function",
			"method_definition",
		},
		ClassNodeTypes: []string{"class_declaration", "class"},
		VariableNodeTypes: []string{"variable_declarator"},
		// Plain JS parameters are bare "identifier" nodes with no wrapper
		// node kind to key off, so they're matched via DefinitionPatterns
		// scoped to a parameter list instead of a flat kind table.
		DefinitionPatterns:    []string{"(formal_parameters (identifier) @target)"},
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
