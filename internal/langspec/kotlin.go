package langspec

func init() {
	Register(&Spec{
		Language: Kotlin,
		FileExtensions: []string{".kt", ".kts"},
		FunctionNodeTypes: []string{
			"function_declaration",
			"secondary_constructor",
			"anonymous_function",
		},
		ClassNodeTypes: []string{
			"class_declaration",
			"object_declaration",
			"companion_object",
		},
		FieldNodeTypes: []string{"property_declaration"},
		// property_declaration already covers both class-level properties
		// and function-local `val`/`var` bindings in this grammar, so
		// local variables fall under FieldNodeTypes rather than a separate
		// VariableNodeTypes entry — adding it again here would just be
		// shadowed by the FieldNodeTypes case in buildDefinitions' switch.
		ParameterNodeTypes:    []string{"parameter", "function_value_parameter"},
		ModuleNodeTypes:       []string{"source_file"},
		BlockNodeTypes:        []string{"statements"},
		CallNodeTypes:         []string{"call_expression", "navigation_expression"},
		MemberAccessNodeTypes: []string{"navigation_expression"},
		IdentifierNodeType:    "simple_identifier",
		ImportNodeTypes:       []string{"import"},
		PackageIndicators:     []string{"build.gradle.kts", "build.gradle"},
		Hoisted: map[DefKind]bool{
			DefFunction: true,
			DefClass:    true,
		},
		// `private`/`internal` modifiers gate visibility in Kotlin, not
		// name shape; treat everything as visible absent modifier parsing.
		Exported: alwaysExported,
	})
}
