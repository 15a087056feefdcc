package langspec

func init() {
	Register(&Spec{
		Language:              Lua,
		FileExtensions:        []string{".lua"},
		FunctionNodeTypes: []string{"function_declaration", "function_definition"},
		ClassNodeTypes:    []string{},
		VariableNodeTypes: []string{"variable_declaration", "local_variable_declaration"},
		// Lua function parameters are bare "identifier" nodes with no
		// wrapper kind to key off, so they're matched via
		// DefinitionPatterns scoped to a parameter list.
		DefinitionPatterns:    []string{"(parameters (identifier) @target)"},
		ModuleNodeTypes:       []string{"chunk"},
		BlockNodeTypes:        []string{"block"},
		CallNodeTypes:         []string{"function_call"},
		MemberAccessNodeTypes: []string{"dot_index_expression", "method_index_expression"},
		IdentifierNodeType:    "identifier",
		ImportNodeTypes:       []string{"function_call"},
		Hoisted: map[DefKind]bool{
			DefFunction: true,
		},
		// `local` is the only scoping keyword Lua has; anything declared
		// without it is implicitly a global and thus visible everywhere.
		Exported: alwaysExported,
	})
}
