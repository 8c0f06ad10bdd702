package syntax

// AllLanguageSpecs returns every language this repository ships an
// analyzer for (spec.md §4.1's supported-languages table).
func AllLanguageSpecs() []*LanguageSpec {
	return []*LanguageSpec{
		goSpec(),
		rustSpec(),
		pythonSpec(),
		javaSpec(),
		typescriptSpec(),
		javascriptSpec(),
		cSpec(),
		cppSpec(),
		scalaSpec(),
		swiftSpec(),
	}
}
