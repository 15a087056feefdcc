package langspec

func init() {
	Register(&Spec{
		Language:       Python,
		FileExtensions: []string{".py"},
		FunctionNodeTypes: []string{"function_definition"},
		ClassNodeTypes:    []string{"class_definition"},
		// typed_parameter/default_parameter/typed_default_parameter are
		// distinct node kinds; a bare, undecorated parameter is just an
		// "identifier" child of "parameters" with no wrapper to key off,
		// so it's matched via DefinitionPatterns instead.
		ParameterNodeTypes:     []string{"typed_parameter", "default_parameter", "typed_default_parameter"},
		DefinitionPatterns:     []string{"(parameters (identifier) @target)"},
		VariableNodeTypes:      []string{"assignment"},
		ModuleNodeTypes:        []string{"module"},
		BlockNodeTypes:         []string{"block"},
		ComprehensionNodeTypes: []string{"list_comprehension", "set_comprehension", "dictionary_comprehension", "generator_expression"},
		CallNodeTypes:          []string{"call"},
		MemberAccessNodeTypes:  []string{"attribute"},
		IdentifierNodeType:     "identifier",
		ImportNodeTypes:        []string{"import_statement", "import_from_statement"},
		PackageIndicators:      []string{"__init__.py"},
		Hoisted: map[DefKind]bool{
			DefFunction: true,
			DefClass:    true,
		},
		Exported: defaultExported,
	})
}
