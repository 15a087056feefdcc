package langspec

func init() {
	Register(&Spec{
		Language: CPP,
		FileExtensions: []string{".cpp", ".cc", ".cxx", ".hpp", ".hh", ".h"},
		FunctionNodeTypes: []string{
			"function_definition",
			"declaration",
			"field_declaration",
			"template_declaration",
			"lambda_expression",
		},
		ClassNodeTypes: []string{
			"class_specifier",
			"struct_specifier",
			"union_specifier",
			"enum_specifier",
		},
		// VariableNodeTypes is deliberately empty: C++'s bare "declaration"
		// node kind already does double duty as a FunctionNodeTypes and
		// ModuleNodeTypes entry in this table (the grammar doesn't distinguish a
		// variable declaration from a function prototype by kind alone),
		// and classifyFunctionKind claims it first in buildDefinitions'
		// classification order.
		ParameterNodeTypes: []string{"parameter_declaration"},
		ModuleNodeTypes: []string{
			"translation_unit",
			"namespace_definition",
			"linkage_specification",
			"declaration",
		},
		BlockNodeTypes: []string{"compound_statement"},
		CallNodeTypes: []string{
			"call_expression",
			"field_expression",
			"subscript_expression",
			"new_expression",
			"delete_expression",
		},
		MemberAccessNodeTypes: []string{"field_expression"},
		IdentifierNodeType:    "identifier",
		ImportNodeTypes: []string{
			"preproc_include",
			"template_function",
			"declaration",
		},
		PackageIndicators: []string{"CMakeLists.txt", "Makefile"},
		Hoisted: map[DefKind]bool{
			DefFunction: true,
			DefClass:    true,
		},
		// C++ has no universal public/private-by-name convention at file
		// scope; treat everything as potentially import-visible and let
		// header-guard/include resolution narrow it.
		Exported: alwaysExported,
	})
}
