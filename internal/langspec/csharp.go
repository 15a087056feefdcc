package langspec

func init() {
	Register(&Spec{
		Language: CSharp,
		FileExtensions: []string{".cs"},
		FunctionNodeTypes: []string{
			"destructor_declaration",
			"local_function_statement",
			"function_pointer_type",
			"constructor_declaration",
			"anonymous_method_expression",
			"lambda_expression",
			"method_declaration",
		},
		ClassNodeTypes: []string{
			"class_declaration",
			"struct_declaration",
			"enum_declaration",
			"interface_declaration",
		},
		FieldNodeTypes:        []string{"field_declaration", "property_declaration"},
		ParameterNodeTypes:    []string{"parameter"},
		VariableNodeTypes:     []string{"variable_declarator"},
		ModuleNodeTypes:       []string{"compilation_unit", "namespace_declaration"},
		BlockNodeTypes:        []string{"block"},
		CallNodeTypes:         []string{"invocation_expression"},
		MemberAccessNodeTypes: []string{"member_access_expression"},
		IdentifierNodeType:    "identifier",
		ImportNodeTypes:       []string{"using_directive"},
		PackageIndicators:     []string{"*.csproj", "*.sln"},
		Hoisted: map[DefKind]bool{
			DefFunction: true,
			DefClass:    true,
		},
		Exported: capitalizedExported,
	})
}
