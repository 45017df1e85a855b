package level

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/jstoolsmith/jscomp/pkg/options"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input  string
		want   Level
		wantOk bool
	}{
		{input: "BUNDLE", want: Bundle, wantOk: true},
		{input: "WHITESPACE_ONLY", want: WhitespaceOnly, wantOk: true},
		{input: "WHITESPACE", want: WhitespaceOnly, wantOk: true},
		{input: "SIMPLE_OPTIMIZATIONS", want: Simple, wantOk: true},
		{input: "SIMPLE", want: Simple, wantOk: true},
		{input: "ADVANCED_OPTIMIZATIONS", want: Advanced, wantOk: true},
		{input: "ADVANCED", want: Advanced, wantOk: true},
		{input: "", wantOk: false},
		{input: "FOO", wantOk: false},
		{input: "bundle", wantOk: false},
		{input: "Simple", wantOk: false},
		{input: " SIMPLE", wantOk: false},
	}
	for _, tt := range tests {
		t.Run("input="+tt.input, func(t *testing.T) {
			got, ok := Parse(tt.input)
			require.Equal(t, tt.wantOk, ok)
			if tt.wantOk {
				require.Equal(t, tt.want, got)
			}
		})
	}
}

func TestLevelTextRoundTrip(t *testing.T) {
	for _, l := range Levels() {
		text, err := l.MarshalText()
		require.NoError(t, err)

		var got Level
		require.NoError(t, got.UnmarshalText(text))
		require.Equal(t, l, got)
	}

	var l Level
	require.Error(t, l.UnmarshalText([]byte("whitespace")))
}

func TestBundlePresetLeavesDefaultsUntouched(t *testing.T) {
	o := options.New()
	Bundle.ApplyPreset(o)

	if diff := cmp.Diff(options.New(), o); diff != "" {
		t.Errorf("BUNDLE mutated the record (-default +got):\n%s", diff)
	}
}

func TestWhitespaceOnlyPresetTouchesOnlySkipFlag(t *testing.T) {
	o := options.New()
	WhitespaceOnly.ApplyPreset(o)

	want := options.New()
	want.SkipAllPasses = true

	if diff := cmp.Diff(want, o); diff != "" {
		t.Errorf("WHITESPACE_ONLY touched more than the skip flag (-want +got):\n%s", diff)
	}
}

// simpleRecord is the full record SIMPLE_OPTIMIZATIONS is expected to
// produce from defaults. Kept independent of ApplyPreset so edits to the
// preset list show up here.
func simpleRecord() *options.Options {
	o := options.New()
	o.DependencyMode = options.DependencySortOnly
	o.ReplaceIDGenerators = false
	o.ClosurePass = true
	o.VariableRenaming = options.RenameVariablesLocal
	o.PropertyRenaming = options.RenamePropertiesOff
	o.InlineVariables = options.ReachLocalOnly
	o.InlineFunctions = options.ReachLocalOnly
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
	return o
}

func TestSimplePreset(t *testing.T) {
	o := options.New()
	Simple.ApplyPreset(o)

	require.Equal(t, options.RenameVariablesLocal, o.VariableRenaming)
	require.Equal(t, options.RenamePropertiesOff, o.PropertyRenaming)
	require.Equal(t, options.ReachLocalOnly, o.InlineVariables)
	require.Equal(t, options.ReachLocalOnly, o.InlineFunctions)
	require.False(t, o.ReplaceIDGenerators)

	if diff := cmp.Diff(simpleRecord(), o); diff != "" {
		t.Errorf("SIMPLE_OPTIMIZATIONS preset drifted (-want +got):\n%s", diff)
	}
}

// advancedRecord is the full record ADVANCED_OPTIMIZATIONS is expected to
// produce from defaults, enumerated independently of ApplyPreset like
// simpleRecord.
func advancedRecord() *options.Options {
	o := options.New()
	o.DependencyMode = options.DependencySortOnly
	o.CheckSymbols = true
	o.CheckTypes = true
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
	o.RemoveClosureAsserts = true
	o.RemoveAbstractMethods = true
	o.ReserveRawExports = true
	o.VariableRenaming = options.RenameVariablesAll
	o.PropertyRenaming = options.RenamePropertiesOff
	o.RemoveUnusedPrototypeProperties = true
	o.RemoveUnusedClassProperties = true
	o.CollapseAnonymousFunctions = true
	o.CollapseProperties = options.CollapsePropertiesAll
	o.SetWarningLevel(options.DiagnosticGlobalThis, options.CheckWarning)
	o.RewriteFunctionExpressions = false
	o.SmartNameRemoval = true
	o.InlineConstantVars = true
	o.InlineFunctions = options.ReachAll
	o.InlineVariables = options.ReachAll
	o.ComputeFunctionSideEffects = true
	o.AssumeStrictThis = true
	o.RemoveUnusedVariables = options.ReachAll
	o.CrossChunkCodeMotion = true
	o.CrossChunkMethodMotion = true
	o.DevirtualizeMethods = true
	o.OptimizeCalls = true
	o.OptimizeESClassConstructors = true
	return o
}

func TestAdvancedPreset(t *testing.T) {
	o := options.New()
	Advanced.ApplyPreset(o)

	require.True(t, o.CheckSymbols)
	require.True(t, o.CheckTypes)
	require.Equal(t, options.RenameVariablesAll, o.VariableRenaming)
	require.Equal(t, options.RenamePropertiesOff, o.PropertyRenaming)
	require.Equal(t, options.ReachAll, o.InlineVariables)
	require.Equal(t, options.ReachAll, o.InlineFunctions)
	require.Equal(t, options.ReachAll, o.RemoveUnusedVariables)
	require.Equal(t, options.CollapsePropertiesAll, o.CollapseProperties)
	require.Equal(t, options.CheckWarning, o.WarningLevel(options.DiagnosticGlobalThis))
	require.True(t, o.ReserveRawExports)
	require.True(t, o.CrossChunkCodeMotion)
	require.True(t, o.CrossChunkMethodMotion)
	require.True(t, o.DevirtualizeMethods)
	require.True(t, o.OptimizeCalls)
	require.True(t, o.OptimizeESClassConstructors)
	require.False(t, o.RewriteFunctionExpressions)

	// Id-generator replacement is only disabled by SIMPLE; ADVANCED has the
	// whole-program view it needs.
	require.True(t, o.ReplaceIDGenerators)

	if diff := cmp.Diff(advancedRecord(), o); diff != "" {
		t.Errorf("ADVANCED_OPTIMIZATIONS preset drifted (-want +got):\n%s", diff)
	}
}

// TestSharedTogglesStayInSync guards the toggles both presets enumerate
// independently. The two lists are complete on purpose; this is the check
// that keeps them from drifting apart.
func TestSharedTogglesStayInSync(t *testing.T) {
	simple := options.New()
	Simple.ApplyPreset(simple)

	advanced := options.New()
	Advanced.ApplyPreset(advanced)

	shared := []struct {
		name string
		get  func(*options.Options) bool
	}{
		{"foldConstants", func(o *options.Options) bool { return o.FoldConstants }},
		{"coalesceVariableNames", func(o *options.Options) bool { return o.CoalesceVariableNames }},
		{"deadAssignmentElimination", func(o *options.Options) bool { return o.DeadAssignmentElimination }},
		{"collapseVariableDeclarations", func(o *options.Options) bool { return o.CollapseVariableDeclarations }},
		{"convertToDottedProperties", func(o *options.Options) bool { return o.ConvertToDottedProperties }},
		{"labelRenaming", func(o *options.Options) bool { return o.LabelRenaming }},
		{"removeUnreachableCode", func(o *options.Options) bool { return o.RemoveUnreachableCode }},
		{"optimizeArgumentsArray", func(o *options.Options) bool { return o.OptimizeArgumentsArray }},
		{"collapseObjectLiterals", func(o *options.Options) bool { return o.CollapseObjectLiterals }},
		{"protectHiddenSideEffects", func(o *options.Options) bool { return o.ProtectHiddenSideEffects }},
	}

	for _, s := range shared {
		t.Run(s.name, func(t *testing.T) {
			require.Equal(t, s.get(simple), s.get(advanced),
				"SIMPLE and ADVANCED disagree on %s", s.name)
		})
	}
}

func TestTypeBasedOptimizations(t *testing.T) {
	for _, l := range []Level{Bundle, WhitespaceOnly, Simple} {
		t.Run(l.String(), func(t *testing.T) {
			o := options.New()
			l.ApplyPreset(o)

			before := o.Clone()
			l.ApplyTypeBasedOptimizations(o)

			if diff := cmp.Diff(before, o); diff != "" {
				t.Errorf("type-based add-on must be a no-op for %s (-before +after):\n%s", l, diff)
			}
		})
	}

	o := options.New()
	Advanced.ApplyPreset(o)
	Advanced.ApplyTypeBasedOptimizations(o)

	require.True(t, o.DisambiguateProperties)
	require.True(t, o.AmbiguateProperties)
	require.True(t, o.InlineProperties)
	require.True(t, o.UseTypesForLocalOptimization)
}

func TestWrappedOutputOptimizations(t *testing.T) {
	// Every level clears the raw-export reservation: wrapped globals cannot
	// conflict with the host page.
	for _, l := range Levels() {
		t.Run(l.String()+"/clears-exports", func(t *testing.T) {
			o := options.New()
			l.ApplyPreset(o)
			l.ApplyWrappedOutputOptimizations(o)
			require.False(t, o.ReserveRawExports)
		})
	}

	// Beyond the export flag, the add-on only extends SIMPLE.
	for _, l := range []Level{Bundle, WhitespaceOnly, Advanced} {
		t.Run(l.String()+"/otherwise-noop", func(t *testing.T) {
			o := options.New()
			l.ApplyPreset(o)

			want := o.Clone()
			want.ReserveRawExports = false

			l.ApplyWrappedOutputOptimizations(o)
			if diff := cmp.Diff(want, o); diff != "" {
				t.Errorf("wrapped-output add-on changed more than exports for %s (-want +got):\n%s", l, diff)
			}
		})
	}

	o := options.New()
	Simple.ApplyPreset(o)
	Simple.ApplyWrappedOutputOptimizations(o)

	require.Equal(t, options.RenameVariablesAll, o.VariableRenaming)
	require.Equal(t, options.RenamePropertiesOff, o.PropertyRenaming)
	require.Equal(t, options.CollapsePropertiesModuleExport, o.CollapseProperties)
	require.True(t, o.CollapseAnonymousFunctions)
	require.True(t, o.InlineConstantVars)
	require.Equal(t, options.ReachAll, o.InlineFunctions)
	require.Equal(t, options.ReachAll, o.InlineVariables)
	require.Equal(t, options.ReachAll, o.RemoveUnusedVariables)
}

func TestApplyDebugOptions(t *testing.T) {
	for _, l := range Levels() {
		t.Run(l.String(), func(t *testing.T) {
			o := options.New()
			l.ApplyPreset(o)
			ApplyDebugOptions(o)

			require.True(t, o.GeneratePseudoNames)
			require.False(t, o.RemoveClosureAsserts)
			require.False(t, o.RemoveJ2CLAsserts)
		})
	}
}

func TestAppliersAreIdempotent(t *testing.T) {
	appliers := []struct {
		name  string
		apply func(Level, *options.Options)
	}{
		{"preset", Level.ApplyPreset},
		{"typeBased", Level.ApplyTypeBasedOptimizations},
		{"wrappedOutput", Level.ApplyWrappedOutputOptimizations},
		{"debug", func(_ Level, o *options.Options) { ApplyDebugOptions(o) }},
	}

	for _, l := range Levels() {
		for _, a := range appliers {
			t.Run(l.String()+"/"+a.name, func(t *testing.T) {
				once := options.New()
				a.apply(l, once)

				twice := options.New()
				a.apply(l, twice)
				a.apply(l, twice)

				if diff := cmp.Diff(once, twice); diff != "" {
					t.Errorf("second application changed the record (-once +twice):\n%s", diff)
				}
			})
		}
	}
}
