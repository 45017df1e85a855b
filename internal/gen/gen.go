// Package gen emits a resolved options record as Go source, so a snapshot
// of a compilation configuration can be committed and embedded instead of
// being re-resolved at runtime.
package gen

import (
	"strings"
	"unicode"

	"github.com/dave/jennifer/jen"

	"github.com/jstoolsmith/jscomp/pkg/options"
)

const optionsPkg = "github.com/jstoolsmith/jscomp/pkg/options"

// VarName derives an exported Go identifier from a snapshot name, e.g.
// "advanced-default" becomes "AdvancedDefault".
func VarName(name string) string {
	var b strings.Builder
	up := true
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			up = true
			continue
		}
		if up {
			b.WriteRune(unicode.ToUpper(r))
			up = false
			continue
		}
		b.WriteRune(r)
	}
	if b.Len() == 0 {
		return "Snapshot"
	}
	return b.String()
}

// File builds a generated source file declaring the resolved record as a
// package-level var. Only toggles that differ from their zero value are
// emitted, so the literal reads the way a hand-written one would;
// WarningLevels is the exception, present even when empty so the record
// matches what options.New produces.
func File(pkgName, varName, snapshotName string, o *options.Options) *jen.File {
	f := jen.NewFile(pkgName)
	f.HeaderComment("Code generated by jscomp snapshot. DO NOT EDIT.")

	f.Comment(varName + " is the resolved options record for the " + snapshotName + " snapshot.")
	f.Var().Id(varName).Op("=").Qual(optionsPkg, "Options").Values(optionsDict(o))

	return f
}

func optionsDict(o *options.Options) jen.Dict {
	d := jen.Dict{}

	setBool := func(field string, v bool) {
		if v {
			d[jen.Id(field)] = jen.Lit(true)
		}
	}
	setEnum := func(field, constName string, zero bool) {
		if !zero {
			d[jen.Id(field)] = jen.Qual(optionsPkg, constName)
		}
	}

	setBool("SkipAllPasses", o.SkipAllPasses)
	setEnum("DependencyMode", dependencyConst(o.DependencyMode), o.DependencyMode == options.DependencyNone)

	setBool("CheckSymbols", o.CheckSymbols)
	setBool("CheckTypes", o.CheckTypes)

	setBool("ClosurePass", o.ClosurePass)
	setBool("RemoveClosureAsserts", o.RemoveClosureAsserts)
	setBool("RemoveJ2CLAsserts", o.RemoveJ2CLAsserts)
	setBool("RemoveAbstractMethods", o.RemoveAbstractMethods)
	setBool("ReplaceIDGenerators", o.ReplaceIDGenerators)

	setEnum("VariableRenaming", variableRenamingConst(o.VariableRenaming), o.VariableRenaming == options.RenameVariablesOff)
	setEnum("PropertyRenaming", propertyRenamingConst(o.PropertyRenaming), o.PropertyRenaming == options.RenamePropertiesOff)
	setBool("LabelRenaming", o.LabelRenaming)
	setBool("GeneratePseudoNames", o.GeneratePseudoNames)

	setEnum("InlineVariables", reachConst(o.InlineVariables), o.InlineVariables == options.ReachNone)
	setEnum("InlineFunctions", reachConst(o.InlineFunctions), o.InlineFunctions == options.ReachNone)
	setBool("InlineConstantVars", o.InlineConstantVars)
	setBool("InlineProperties", o.InlineProperties)

	setBool("DeadAssignmentElimination", o.DeadAssignmentElimination)
	setBool("RemoveUnreachableCode", o.RemoveUnreachableCode)
	setEnum("RemoveUnusedVariables", reachConst(o.RemoveUnusedVariables), o.RemoveUnusedVariables == options.ReachNone)
	setBool("RemoveUnusedPrototypeProperties", o.RemoveUnusedPrototypeProperties)
	setBool("RemoveUnusedClassProperties", o.RemoveUnusedClassProperties)
	setBool("SmartNameRemoval", o.SmartNameRemoval)

	setBool("FoldConstants", o.FoldConstants)
	setBool("CoalesceVariableNames", o.CoalesceVariableNames)
	setBool("CollapseVariableDeclarations", o.CollapseVariableDeclarations)
	setBool("CollapseAnonymousFunctions", o.CollapseAnonymousFunctions)
	setBool("CollapseObjectLiterals", o.CollapseObjectLiterals)
	setEnum("CollapseProperties", collapseConst(o.CollapseProperties), o.CollapseProperties == options.CollapsePropertiesNone)
	setBool("ConvertToDottedProperties", o.ConvertToDottedProperties)
	setBool("ExtractPrototypeMemberDeclarations", o.ExtractPrototypeMemberDeclarations)
	setBool("OptimizeArgumentsArray", o.OptimizeArgumentsArray)
	setBool("ProtectHiddenSideEffects", o.ProtectHiddenSideEffects)

	setBool("CrossChunkCodeMotion", o.CrossChunkCodeMotion)
	setBool("CrossChunkMethodMotion", o.CrossChunkMethodMotion)

	setBool("DevirtualizeMethods", o.DevirtualizeMethods)
	setBool("OptimizeCalls", o.OptimizeCalls)
	setBool("OptimizeESClassConstructors", o.OptimizeESClassConstructors)

	setBool("DisambiguateProperties", o.DisambiguateProperties)
	setBool("AmbiguateProperties", o.AmbiguateProperties)
	setBool("UseTypesForLocalOptimization", o.UseTypesForLocalOptimization)

	setBool("AssumeClosuresOnlyCaptureReferences", o.AssumeClosuresOnlyCaptureReferences)
	setBool("AssumeStrictThis", o.AssumeStrictThis)
	setBool("ComputeFunctionSideEffects", o.ComputeFunctionSideEffects)
	setBool("RewriteFunctionExpressions", o.RewriteFunctionExpressions)

	setBool("ReserveRawExports", o.ReserveRawExports)

	// Always emitted, even empty: New produces a non-nil map and the
	// generated record should round-trip to the same shape.
	wl := jen.Dict{}
	for g, l := range o.WarningLevels {
		wl[diagnosticExpr(g)] = jen.Qual(optionsPkg, checkLevelConst(l))
	}
	d[jen.Id("WarningLevels")] = jen.Map(jen.Qual(optionsPkg, "DiagnosticGroup")).
		Qual(optionsPkg, "CheckLevel").Values(wl)

	return d
}

// enum constant names ---------------------------------------------------------

func reachConst(r options.Reach) string {
	switch r {
	case options.ReachLocalOnly:
		return "ReachLocalOnly"
	case options.ReachAll:
		return "ReachAll"
	default:
		return "ReachNone"
	}
}

func variableRenamingConst(v options.VariableRenaming) string {
	switch v {
	case options.RenameVariablesLocal:
		return "RenameVariablesLocal"
	case options.RenameVariablesAll:
		return "RenameVariablesAll"
	default:
		return "RenameVariablesOff"
	}
}

func propertyRenamingConst(p options.PropertyRenaming) string {
	if p == options.RenamePropertiesAllUnquoted {
		return "RenamePropertiesAllUnquoted"
	}
	return "RenamePropertiesOff"
}

func dependencyConst(d options.DependencyMode) string {
	if d == options.DependencySortOnly {
		return "DependencySortOnly"
	}
	return "DependencyNone"
}

func collapseConst(p options.PropertyCollapseLevel) string {
	switch p {
	case options.CollapsePropertiesModuleExport:
		return "CollapsePropertiesModuleExport"
	case options.CollapsePropertiesAll:
		return "CollapsePropertiesAll"
	default:
		return "CollapsePropertiesNone"
	}
}

func checkLevelConst(l options.CheckLevel) string {
	switch l {
	case options.CheckWarning:
		return "CheckWarning"
	case options.CheckError:
		return "CheckError"
	default:
		return "CheckOff"
	}
}

func diagnosticExpr(g options.DiagnosticGroup) jen.Code {
	if g == options.DiagnosticGlobalThis {
		return jen.Qual(optionsPkg, "DiagnosticGlobalThis")
	}
	return jen.Qual(optionsPkg, "DiagnosticGroup").Call(jen.Lit(string(g)))
}
