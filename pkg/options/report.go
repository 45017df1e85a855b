package options

import (
	"fmt"
	"sort"
	"strconv"
)

// Setting is one named toggle value, rendered for reporting.
type Setting struct {
	Name  string
	Value string
}

// Settings flattens the record into an ordered list of name/value pairs,
// grouped the way the struct is. The order is stable so reports for two
// records can be diffed line by line.
func (o *Options) Settings() []Setting {
	b := func(v bool) string { return strconv.FormatBool(v) }

	out := []Setting{
		{"skipAllPasses", b(o.SkipAllPasses)},
		{"dependencyMode", o.DependencyMode.String()},

		{"checkSymbols", b(o.CheckSymbols)},
		{"checkTypes", b(o.CheckTypes)},

		{"closurePass", b(o.ClosurePass)},
		{"removeClosureAsserts", b(o.RemoveClosureAsserts)},
		{"removeJ2clAsserts", b(o.RemoveJ2CLAsserts)},
		{"removeAbstractMethods", b(o.RemoveAbstractMethods)},
		{"replaceIdGenerators", b(o.ReplaceIDGenerators)},

		{"variableRenaming", o.VariableRenaming.String()},
		{"propertyRenaming", o.PropertyRenaming.String()},
		{"labelRenaming", b(o.LabelRenaming)},
		{"generatePseudoNames", b(o.GeneratePseudoNames)},

		{"inlineVariables", o.InlineVariables.String()},
		{"inlineFunctions", o.InlineFunctions.String()},
		{"inlineConstantVars", b(o.InlineConstantVars)},
		{"inlineProperties", b(o.InlineProperties)},

		{"deadAssignmentElimination", b(o.DeadAssignmentElimination)},
		{"removeUnreachableCode", b(o.RemoveUnreachableCode)},
		{"removeUnusedVariables", o.RemoveUnusedVariables.String()},
		{"removeUnusedPrototypeProperties", b(o.RemoveUnusedPrototypeProperties)},
		{"removeUnusedClassProperties", b(o.RemoveUnusedClassProperties)},
		{"smartNameRemoval", b(o.SmartNameRemoval)},

		{"foldConstants", b(o.FoldConstants)},
		{"coalesceVariableNames", b(o.CoalesceVariableNames)},
		{"collapseVariableDeclarations", b(o.CollapseVariableDeclarations)},
		{"collapseAnonymousFunctions", b(o.CollapseAnonymousFunctions)},
		{"collapseObjectLiterals", b(o.CollapseObjectLiterals)},
		{"collapseProperties", o.CollapseProperties.String()},
		{"convertToDottedProperties", b(o.ConvertToDottedProperties)},
		{"extractPrototypeMemberDeclarations", b(o.ExtractPrototypeMemberDeclarations)},
		{"optimizeArgumentsArray", b(o.OptimizeArgumentsArray)},
		{"protectHiddenSideEffects", b(o.ProtectHiddenSideEffects)},

		{"crossChunkCodeMotion", b(o.CrossChunkCodeMotion)},
		{"crossChunkMethodMotion", b(o.CrossChunkMethodMotion)},

		{"devirtualizeMethods", b(o.DevirtualizeMethods)},
		{"optimizeCalls", b(o.OptimizeCalls)},
		{"optimizeESClassConstructors", b(o.OptimizeESClassConstructors)},

		{"disambiguateProperties", b(o.DisambiguateProperties)},
		{"ambiguateProperties", b(o.AmbiguateProperties)},
		{"useTypesForLocalOptimization", b(o.UseTypesForLocalOptimization)},

		{"assumeClosuresOnlyCaptureReferences", b(o.AssumeClosuresOnlyCaptureReferences)},
		{"assumeStrictThis", b(o.AssumeStrictThis)},
		{"computeFunctionSideEffects", b(o.ComputeFunctionSideEffects)},
		{"rewriteFunctionExpressions", b(o.RewriteFunctionExpressions)},

		{"reserveRawExports", b(o.ReserveRawExports)},
	}

	groups := make([]string, 0, len(o.WarningLevels))
	for g := range o.WarningLevels {
		groups = append(groups, string(g))
	}
	sort.Strings(groups)
	for _, g := range groups {
		out = append(out, Setting{
			Name:  fmt.Sprintf("warningLevel.%s", g),
			Value: o.WarningLevels[DiagnosticGroup(g)].String(),
		})
	}

	return out
}
