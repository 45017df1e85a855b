// Package level maps named optimization levels onto compiler options
// records. A level is a closed enum; each level owns a complete preset of
// toggles, and optional add-ons (type-based optimization, wrapped-output
// optimization, debug output) layer conditional patches on top. Appliers
// only ever write fields; they never read pipeline state and never fail.
package level

import (
	"fmt"

	"github.com/jstoolsmith/jscomp/pkg/options"
)

// Level is the optimization level applied when compiling JavaScript code.
type Level int

const (
	// Bundle orders and concatenates files to the output without
	// transforming them.
	Bundle Level = iota

	// WhitespaceOnly removes comments and extra whitespace in the input.
	WhitespaceOnly

	// Simple performs transformations that do not require any changes to
	// code that depends on the input. Function arguments are renamed, the
	// functions themselves are not.
	Simple

	// Advanced aggressively reduces code size by renaming globals,
	// removing code which is never called, and moving code across chunks.
	Advanced
)

// Levels returns all levels in increasing order of aggressiveness.
func Levels() []Level {
	return []Level{Bundle, WhitespaceOnly, Simple, Advanced}
}

// Parse resolves free-form text to a level. The match is case-sensitive and
// exact; ok is false for anything outside the alias table, including the
// empty string.
func Parse(text string) (l Level, ok bool) {
	switch text {
	case "BUNDLE":
		return Bundle, true
	case "WHITESPACE_ONLY", "WHITESPACE":
		return WhitespaceOnly, true
	case "SIMPLE_OPTIMIZATIONS", "SIMPLE":
		return Simple, true
	case "ADVANCED_OPTIMIZATIONS", "ADVANCED":
		return Advanced, true
	default:
		return 0, false
	}
}

func (l Level) String() string {
	switch l {
	case Bundle:
		return "BUNDLE"
	case WhitespaceOnly:
		return "WHITESPACE_ONLY"
	case Simple:
		return "SIMPLE_OPTIMIZATIONS"
	case Advanced:
		return "ADVANCED_OPTIMIZATIONS"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// MarshalText implements encoding.TextMarshaler so levels round-trip
// through yaml and viper configs.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using the same alias
// table as Parse.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, ok := Parse(string(text))
	if !ok {
		return fmt.Errorf("unknown optimization level %q", string(text))
	}
	*l = parsed
	return nil
}

// ApplyPreset writes the level's full toggle preset into o. Exactly one
// preset is active per compilation; presets are not cumulative, so Advanced
// carries its own complete list rather than delegating to Simple's.
func (l Level) ApplyPreset(o *options.Options) {
	switch l {
	case Bundle:
		// Concatenation only. Every toggle stays at the caller's defaults.
	case WhitespaceOnly:
		applyWhitespaceOptions(o)
	case Simple:
		applySafeOptions(o)
	case Advanced:
		applyFullOptions(o)
	}
}

// applyWhitespaceOptions configures stripping of whitespace and comments
// with no other transformation.
func applyWhitespaceOptions(o *options.Options) {
	o.SkipAllCompilerPasses()
}

// applySafeOptions enables the transformations that cannot break code
// depending on the input, even when no symbols are exported and no coding
// convention is used.
func applySafeOptions(o *options.Options) {
	o.DependencyMode = options.DependencySortOnly

	// Id-generator replacement runs by default but is unsafe without
	// whole-program analysis.
	o.ReplaceIDGenerators = false

	// Does not reuse applyWhitespaceOptions: SkipAllCompilerPasses cannot
	// be undone.
	o.ClosurePass = true
	o.SetRenamingPolicy(options.RenameVariablesLocal, options.RenamePropertiesOff)
	o.InlineVariables = options.ReachLocalOnly
	o.InlineFunctions = options.ReachLocalOnly
	o.AssumeClosuresOnlyCaptureReferences = false
	o.SetWarningLevel(options.DiagnosticGlobalThis, options.CheckOff)
	o.FoldConstants = true
	o.CoalesceVariableNames = true
	o.DeadAssignmentElimination = true
	o.CollapseVariableDeclarations = true
	o.ConvertToDottedProperties = true
	o.LabelRenaming = true
	o.RemoveUnreachableCode = true
	o.OptimizeArgumentsArray = true
	o.RemoveUnusedVariables = options.ReachLocalOnly
	o.CollapseObjectLiterals = true
	o.ProtectHiddenSideEffects = true
}

// applyFullOptions enables everything applySafeOptions does plus the
// optimizations that only work when all public symbols are exported
// correctly. The safe toggles are enumerated again on purpose: sharing
// applySafeOptions would couple the two presets, and its diagnostic
// settings conflict with the ones below.
func applyFullOptions(o *options.Options) {
	o.DependencyMode = options.DependencySortOnly

	o.CheckSymbols = true
	o.CheckTypes = true

	// The safe optimizations.
	o.ClosurePass = true
	o.FoldConstants = true
	o.CoalesceVariableNames = true
	o.DeadAssignmentElimination = true
	o.ExtractPrototypeMemberDeclarations = true
	o.CollapseVariableDeclarations = true
	o.ConvertToDottedProperties = true
	o.LabelRenaming = true
	o.RemoveUnreachableCode = true
	o.OptimizeArgumentsArray = true
	o.CollapseObjectLiterals = true
	o.ProtectHiddenSideEffects = true

	// The aggressive optimizations.
	o.RemoveClosureAsserts = true
	o.RemoveAbstractMethods = true

	// Collect the raw exports so public names survive renaming.
	o.ReserveRawExports = true

	// Property renaming stays off: renaming unquoted properties breaks
	// host-platform APIs that are not covered by externs.
	o.SetRenamingPolicy(options.RenameVariablesAll, options.RenamePropertiesOff)

	o.RemoveUnusedPrototypeProperties = true
	o.RemoveUnusedClassProperties = true
	o.CollapseAnonymousFunctions = true
	o.CollapseProperties = options.CollapsePropertiesAll
	o.SetWarningLevel(options.DiagnosticGlobalThis, options.CheckWarning)
	o.RewriteFunctionExpressions = false
	o.SmartNameRemoval = true
	o.InlineConstantVars = true
	o.InlineFunctions = options.ReachAll
	o.AssumeClosuresOnlyCaptureReferences = false
	o.InlineVariables = options.ReachAll
	o.ComputeFunctionSideEffects = true
	o.AssumeStrictThis = true

	// Removing unused vars also removes unused functions.
	o.RemoveUnusedVariables = options.ReachAll

	// Move code around based on the declared chunk dependency structure.
	o.CrossChunkCodeMotion = true
	o.CrossChunkMethodMotion = true

	// Call optimizations. OptimizeCalls subsumes a further unused-code
	// removal pass.
	o.DevirtualizeMethods = true
	o.OptimizeCalls = true
	o.OptimizeESClassConstructors = true
}

// ApplyTypeBasedOptimizations enables the additional optimizations that use
// type information. Only Advanced has the type analysis these rely on; for
// every other level the record is left untouched.
func (l Level) ApplyTypeBasedOptimizations(o *options.Options) {
	switch l {
	case Advanced:
		o.DisambiguateProperties = true
		o.AmbiguateProperties = true
		o.InlineProperties = true
		o.UseTypesForLocalOptimization = true
	case Simple, WhitespaceOnly, Bundle:
	}
}

// ApplyWrappedOutputOptimizations enables optimizations on global
// declarations for output that is enclosed by a function wrapper. Advanced
// does this by default; Simple can only do it safely because the wrapper
// makes the code self contained.
func (l Level) ApplyWrappedOutputOptimizations(o *options.Options) {
	// Wrapped global names and properties cannot conflict with the host page.
	o.ReserveRawExports = false
	switch l {
	case Simple:
		// Global variable optimizations, but not property optimizations.
		o.VariableRenaming = options.RenameVariablesAll
		o.CollapseProperties = options.CollapsePropertiesModuleExport
		o.CollapseAnonymousFunctions = true
		o.InlineConstantVars = true
		o.InlineFunctions = options.ReachAll
		o.InlineVariables = options.ReachAll
		o.RemoveUnusedVariables = options.ReachAll
	case Advanced, WhitespaceOnly, Bundle:
	}
}

// ApplyDebugOptions configures diagnostic-friendly output regardless of
// level: readable pseudo-names instead of minified identifiers, and
// assertions left in place so they stay visible while debugging.
func ApplyDebugOptions(o *options.Options) {
	o.GeneratePseudoNames = true
	o.RemoveClosureAsserts = false
	o.RemoveJ2CLAsserts = false
}
