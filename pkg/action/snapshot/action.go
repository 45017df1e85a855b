package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/jstoolsmith/jscomp/internal/gen"
	"github.com/jstoolsmith/jscomp/pkg/manifest"
	"github.com/jstoolsmith/jscomp/pkg/options"
	"github.com/jstoolsmith/jscomp/pkg/profile"
)

// PkgName is the package declared by generated snapshot files.
const PkgName = "snapshots"

// Generate resolves the profile, writes the configured record as generated
// Go source into outDir, and records it in the manifest.
func Generate(p *profile.Profile, outDir, manifestPath, snapshotName string) (string, error) {
	l, err := p.ResolveLevel()
	if err != nil {
		return "", err
	}

	o := options.New()
	p.ApplyWith(l, o)

	m, err := manifest.Load(manifestPath)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("create snapshot directory: %w", err)
	}

	base := strings.ToLower(gen.VarName(snapshotName)) + "_gen.go"
	outFile := filepath.Clean(filepath.Join(outDir, base))

	f := gen.File(PkgName, gen.VarName(snapshotName), snapshotName, o)

	ff, err := os.OpenFile(outFile, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return "", fmt.Errorf("create snapshot file: %w", err)
	}
	defer func() { _ = ff.Close() }()

	if err := f.Render(ff); err != nil {
		return "", fmt.Errorf("render snapshot: %w", err)
	}

	m.AddSnapshot(manifest.Snapshot{Name: snapshotName, Level: l.String(), File: outFile})

	if err := m.Save(manifestPath); err != nil {
		return "", err
	}

	return outFile, nil
}

// List returns all snapshots recorded in the manifest.
func List(manifestPath string) (*manifest.Manifest, error) {
	return manifest.Load(manifestPath)
}

// DiffCurrentWithPrevious loads the manifest, locates the current and
// previous snapshot files, and returns a textual diff of their contents.
func DiffCurrentWithPrevious(manifestPath string) (string, error) {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return "", err
	}

	if m.Current == "" || m.Previous == "" {
		return "", fmt.Errorf("no current/previous snapshots recorded")
	}

	currentPath := m.SnapshotFile(m.Current)
	previousPath := m.SnapshotFile(m.Previous)

	if currentPath == "" || previousPath == "" {
		return "", fmt.Errorf("snapshot files not found in manifest")
	}

	current, err := os.ReadFile(currentPath)
	if err != nil {
		return "", fmt.Errorf("read current snapshot: %w", err)
	}

	previous, err := os.ReadFile(previousPath)
	if err != nil {
		return "", fmt.Errorf("read previous snapshot: %w", err)
	}

	return cmp.Diff(string(previous), string(current)), nil
}
