package rules

import (
	"sort"

	"github.com/hollowcheck/hollowcheck/domain"
	"github.com/hollowcheck/hollowcheck/internal/facts"
)

// DetectGodObject implements spec.md §4.4(h).
func DetectGodObject(store *facts.Store, contract *domain.Contract, opts domain.Options) []domain.Finding {
	if !contract.GodObjects.IsEnabled() {
		return nil
	}
	maxFileLines, maxFuncLines, maxFuncComplexity, maxFuncsPerFile, maxClassMethods := contract.GodObjects.Thresholds(opts.GodObjectMultiplier)

	var out []domain.Finding
	for _, f := range store.Files() {
		if f.TotalLines > maxFileLines {
			out = append(out, finding(
				domain.RuleGodObject, domain.SeverityMedium,
				f.RelPath, 1,
				"file exceeds max line count",
				"max_file_lines",
			))
		}
		if f.FunctionCount > maxFuncsPerFile {
			out = append(out, finding(
				domain.RuleGodObject, domain.SeverityMedium,
				f.RelPath, 1,
				"file exceeds max function count",
				"max_functions_per_file",
			))
		}
		classNames := make([]string, 0, len(f.MethodCountsByClass))
		for className := range f.MethodCountsByClass {
			classNames = append(classNames, className)
		}
		sort.Strings(classNames)
		for _, className := range classNames {
			count := f.MethodCountsByClass[className]
			if count > maxClassMethods {
				out = append(out, finding(
					domain.RuleGodObject, domain.SeverityMedium,
					f.RelPath, 1,
					"class "+className+" exceeds max method count",
					"max_class_methods",
				))
			}
		}
		for i := range f.Declarations {
			d := &f.Declarations[i]
			if !d.Kind.IsCallable() {
				continue
			}
			if d.Complexity > maxFuncComplexity {
				out = append(out, finding(
					domain.RuleGodObject, domain.SeverityMedium,
					f.RelPath, d.StartLine,
					"function "+d.QualifiedName()+" exceeds max complexity",
					"max_function_complexity",
				))
			}
			if lineCount(d) > maxFuncLines {
				out = append(out, finding(
					domain.RuleGodObject, domain.SeverityMedium,
					f.RelPath, d.StartLine,
					"function "+d.QualifiedName()+" exceeds max line count",
					"max_function_lines",
				))
			}
		}
	}
	return out
}

func lineCount(d *domain.Declaration) int {
	return d.EndLine - d.StartLine + 1
}
