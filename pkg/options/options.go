// Package options defines the compiler options record consumed by the
// optimization pipeline. The record is a wide struct of independently
// settable toggles; preset levels and add-ons (pkg/level) write into it,
// the pipeline reads from it. Setting one field never implicitly changes
// another, which the preset appliers rely on.
package options

// Reach is the breadth over which a definition may be substituted at its
// use sites.
type Reach int

const (
	ReachNone      Reach = iota
	ReachLocalOnly       // within the enclosing function only
	ReachAll             // whole program
)

func (r Reach) String() string {
	switch r {
	case ReachLocalOnly:
		return "LOCAL_ONLY"
	case ReachAll:
		return "ALL"
	default:
		return "NONE"
	}
}

// VariableRenaming is the scope over which variables may be renamed.
type VariableRenaming int

const (
	RenameVariablesOff   VariableRenaming = iota
	RenameVariablesLocal                  // function-local variables only
	RenameVariablesAll                    // globals too; requires whole-program view
)

func (v VariableRenaming) String() string {
	switch v {
	case RenameVariablesLocal:
		return "LOCAL"
	case RenameVariablesAll:
		return "ALL"
	default:
		return "OFF"
	}
}

// PropertyRenaming is the policy for renaming object properties.
type PropertyRenaming int

const (
	RenamePropertiesOff         PropertyRenaming = iota
	RenamePropertiesAllUnquoted // every property not quoted or declared in externs
)

func (p PropertyRenaming) String() string {
	if p == RenamePropertiesAllUnquoted {
		return "ALL_UNQUOTED"
	}
	return "OFF"
}

// PropertyCollapseLevel is how aggressively dotted qualified names are
// flattened into single identifiers (a.b becomes a$b).
type PropertyCollapseLevel int

const (
	CollapsePropertiesNone         PropertyCollapseLevel = iota
	CollapsePropertiesModuleExport                       // exported module boundaries only
	CollapsePropertiesAll
)

func (p PropertyCollapseLevel) String() string {
	switch p {
	case CollapsePropertiesModuleExport:
		return "MODULE_EXPORT"
	case CollapsePropertiesAll:
		return "ALL"
	default:
		return "NONE"
	}
}

// DependencyMode controls how input files are ordered and pruned before
// compilation.
type DependencyMode int

const (
	DependencyNone     DependencyMode = iota
	DependencySortOnly                // topologically sort, never prune
)

func (d DependencyMode) String() string {
	if d == DependencySortOnly {
		return "SORT_ONLY"
	}
	return "NONE"
}

// CheckLevel is the severity applied to a diagnostic group.
type CheckLevel int

const (
	CheckOff CheckLevel = iota
	CheckWarning
	CheckError
)

func (c CheckLevel) String() string {
	switch c {
	case CheckWarning:
		return "WARNING"
	case CheckError:
		return "ERROR"
	default:
		return "OFF"
	}
}

// DiagnosticGroup names a category of warnings whose severity can be tuned
// independently of the rest of the checks.
type DiagnosticGroup string

// DiagnosticGlobalThis flags uses of `this` outside of a method or
// constructor context.
const DiagnosticGlobalThis DiagnosticGroup = "globalThis"

// Options is the full set of pipeline capabilities for one compilation.
// Callers construct it with New, hand it to the preset appliers, and then
// pass it to the pipeline. Fields are grouped by concern so the per-level
// toggle lists stay auditable against each other.
type Options struct {
	// Structural ----------------------------------------------------------
	SkipAllPasses  bool // strip whitespace/comments only, run nothing else
	DependencyMode DependencyMode

	// Checks --------------------------------------------------------------
	CheckSymbols  bool // report undefined/duplicate symbols
	CheckTypes    bool // run the type checker
	WarningLevels map[DiagnosticGroup]CheckLevel

	// Closure-library handling --------------------------------------------
	ClosurePass           bool // recognize the closure coding convention
	RemoveClosureAsserts  bool // strip assertion calls from the closure library
	RemoveJ2CLAsserts     bool // strip assertion calls from J2CL-generated code
	RemoveAbstractMethods bool
	ReplaceIDGenerators   bool // rewrite id-generator calls; unsafe outside whole-program analysis

	// Renaming ------------------------------------------------------------
	VariableRenaming    VariableRenaming
	PropertyRenaming    PropertyRenaming
	LabelRenaming       bool
	GeneratePseudoNames bool // debug aid: long readable names instead of minified ones

	// Inlining reach ------------------------------------------------------
	InlineVariables    Reach
	InlineFunctions    Reach
	InlineConstantVars bool
	InlineProperties   bool // requires type information

	// Dead-code elimination -------------------------------------------------
	DeadAssignmentElimination       bool
	RemoveUnreachableCode           bool
	RemoveUnusedVariables           Reach
	RemoveUnusedPrototypeProperties bool // also inlines pulled-up getters
	RemoveUnusedClassProperties     bool
	SmartNameRemoval                bool // unused vars plus unused prototype props together

	// Folding and collapsing ----------------------------------------------
	FoldConstants                      bool
	CoalesceVariableNames              bool
	CollapseVariableDeclarations       bool
	CollapseAnonymousFunctions         bool
	CollapseObjectLiterals             bool
	CollapseProperties                 PropertyCollapseLevel
	ConvertToDottedProperties          bool
	ExtractPrototypeMemberDeclarations bool
	OptimizeArgumentsArray             bool
	ProtectHiddenSideEffects           bool

	// Cross-chunk motion --------------------------------------------------
	CrossChunkCodeMotion   bool
	CrossChunkMethodMotion bool

	// Call optimization ---------------------------------------------------
	DevirtualizeMethods         bool
	OptimizeCalls               bool // dead arguments, dead returns, further unused-code removal
	OptimizeESClassConstructors bool // elide explicit constructors that do nothing

	// Type-based optimization ---------------------------------------------
	DisambiguateProperties       bool
	AmbiguateProperties          bool
	UseTypesForLocalOptimization bool

	// Semantics assumptions -------------------------------------------------
	AssumeClosuresOnlyCaptureReferences bool
	AssumeStrictThis                    bool
	ComputeFunctionSideEffects          bool
	RewriteFunctionExpressions          bool

	// Exports -------------------------------------------------------------
	ReserveRawExports bool // keep publicly declared names untouched
}

// New returns an Options record with pipeline defaults. Everything starts
// disabled except ReplaceIDGenerators, which runs unless a preset turns it
// off.
func New() *Options {
	return &Options{
		ReplaceIDGenerators: true,
		WarningLevels:       map[DiagnosticGroup]CheckLevel{},
	}
}

// SkipAllCompilerPasses marks the compilation as whitespace-and-comments
// stripping only. There is no inverse; presets that run passes build up
// from a fresh record instead of undoing this.
func (o *Options) SkipAllCompilerPasses() {
	o.SkipAllPasses = true
}

// SetRenamingPolicy sets the variable and property renaming scopes together.
func (o *Options) SetRenamingPolicy(v VariableRenaming, p PropertyRenaming) {
	o.VariableRenaming = v
	o.PropertyRenaming = p
}

// SetWarningLevel tunes the severity of one diagnostic group.
func (o *Options) SetWarningLevel(g DiagnosticGroup, l CheckLevel) {
	if o.WarningLevels == nil {
		o.WarningLevels = map[DiagnosticGroup]CheckLevel{}
	}
	o.WarningLevels[g] = l
}

// WarningLevel reports the configured severity for a diagnostic group,
// CheckOff when the group was never tuned.
func (o *Options) WarningLevel(g DiagnosticGroup) CheckLevel {
	return o.WarningLevels[g]
}

// Clone returns a deep copy of the record.
func (o *Options) Clone() *Options {
	out := *o
	out.WarningLevels = make(map[DiagnosticGroup]CheckLevel, len(o.WarningLevels))
	for g, l := range o.WarningLevels {
		out.WarningLevels[g] = l
	}
	return &out
}
