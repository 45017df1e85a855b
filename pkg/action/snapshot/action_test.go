package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jstoolsmith/jscomp/pkg/profile"
)

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "snapshots")
	manifestPath := filepath.Join(dir, "manifest.yaml")

	outFile, err := Generate(profile.Build(profile.WithLevelAlias("ADVANCED")), outDir, manifestPath, "advanced-default")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(outDir, "advanceddefault_gen.go"), outFile)

	src, err := os.ReadFile(outFile)
	require.NoError(t, err)
	require.Contains(t, string(src), "package snapshots")
	require.Contains(t, string(src), "var AdvancedDefault = options.Options{")

	m, err := List(manifestPath)
	require.NoError(t, err)
	require.Equal(t, "advanced-default", m.Current)
	require.Equal(t, "ADVANCED_OPTIMIZATIONS", m.Snapshots[0].Level)
	require.Equal(t, outFile, m.SnapshotFile("advanced-default"))
}

func TestGenerateUnknownLevel(t *testing.T) {
	dir := t.TempDir()
	_, err := Generate(profile.Build(profile.WithLevelAlias("nope")),
		filepath.Join(dir, "snapshots"), filepath.Join(dir, "manifest.yaml"), "bad")
	require.Error(t, err)
}

func TestDiffCurrentWithPrevious(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "snapshots")
	manifestPath := filepath.Join(dir, "manifest.yaml")

	_, err := Generate(profile.Build(profile.WithLevelAlias("SIMPLE")), outDir, manifestPath, "simple")
	require.NoError(t, err)

	// Only one snapshot recorded, nothing to diff against.
	_, err = DiffCurrentWithPrevious(manifestPath)
	require.Error(t, err)

	_, err = Generate(profile.Build(profile.WithLevelAlias("ADVANCED")), outDir, manifestPath, "advanced")
	require.NoError(t, err)

	diff, err := DiffCurrentWithPrevious(manifestPath)
	require.NoError(t, err)
	require.NotEmpty(t, diff)
}
