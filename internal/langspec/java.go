package langspec

func init() {
	Register(&Spec{
		Language:          Java,
		FileExtensions:    []string{".java"},
		FunctionNodeTypes: []string{"method_declaration", "constructor_declaration"},
		ClassNodeTypes: []string{
			"class_declaration",
			"interface_declaration",
			"enum_declaration",
			"annotation_type_declaration",
			"record_declaration",
		},
		FieldNodeTypes:        []string{"field_declaration"},
		ParameterNodeTypes:    []string{"formal_parameter", "spread_parameter"},
		VariableNodeTypes:     []string{"local_variable_declaration"},
		ModuleNodeTypes:       []string{"program"},
		BlockNodeTypes:        []string{"block"},
		CallNodeTypes:         []string{"method_invocation"},
		MemberAccessNodeTypes: []string{"field_access"},
		IdentifierNodeType:    "identifier",
		ImportNodeTypes:       []string{"import_declaration"},
		Hoisted: map[DefKind]bool{
			DefFunction: true,
			DefClass:    true,
		},
		Exported: capitalizedExported,
	})
}
