package langspec

func init() {
	Register(&Spec{
		Language:          Ruby,
		FileExtensions:    []string{".rb"},
		FunctionNodeTypes: []string{"method", "singleton_method"},
		ClassNodeTypes:    []string{"class", "module"},
		FieldNodeTypes: []string{
			"var_field",
			"instance_variable",
			"class_variable",
		},
		// A plain `x = 1` and an ivar/cvar assignment share the same
		// "assignment" node kind in this grammar; ivars/cvars are filtered
		// out by variableBinding's left-hand-side check (their node kinds
		// aren't among the plain-identifier kinds it accepts), so only
		// local variable re-bindings turn into DefVariable Definitions.
		VariableNodeTypes:  []string{"assignment"},
		ParameterNodeTypes: []string{"optional_parameter", "splat_parameter", "hash_splat_parameter", "keyword_parameter"},
		// A required positional parameter with no default is a bare
		// "identifier" child of "method_parameters" — ambiguous by kind
		// alone, so it's matched via DefinitionPatterns instead.
		DefinitionPatterns:    []string{"(method_parameters (identifier) @target)"},
		ModuleNodeTypes:       []string{"program"},
		BlockNodeTypes:        []string{"block", "do_block"},
		CallNodeTypes:         []string{"call", "command", "command_call"},
		MemberAccessNodeTypes: []string{"call"},
		IdentifierNodeType:    "identifier",
		ImportNodeTypes:       []string{"require", "require_relative"},
		PackageIndicators:     []string{"Gemfile"},
		Hoisted: map[DefKind]bool{
			DefFunction: true,
			DefClass:    true,
		},
		// Ruby constants/classes are exported by capitalization; methods
		// are exported unless declared under a `private` call, which is a
		// runtime statement this lexical spec can't see — best-effort.
		Exported: capitalizedExported,
	})
}
