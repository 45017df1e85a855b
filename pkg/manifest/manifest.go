package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Snapshot records one generated options snapshot: the profile name it was
// resolved from, the level that produced it, and the file it was written to.
type Snapshot struct {
	Name  string `yaml:"name" json:"name"`
	Level string `yaml:"level" json:"level"`
	File  string `yaml:"file" json:"file"`
}

// Manifest tracks the lifecycle of generated options snapshots.
type Manifest struct {
	Current   string     `yaml:"current" json:"current"`
	Previous  string     `yaml:"previous" json:"previous"`
	Snapshots []Snapshot `yaml:"snapshots" json:"snapshots"`
}

// Load reads a manifest from the provided path. If the file does not exist,
// an empty manifest is returned.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Manifest{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal manifest: %w", err)
	}

	return &m, nil
}

// Save writes the manifest to the provided path, creating parent directories as needed.
func (m *Manifest) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create manifest directory: %w", err)
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	return nil
}

// AddSnapshot records a snapshot, updating the current/previous pointers and
// replacing an existing entry with the same name.
func (m *Manifest) AddSnapshot(s Snapshot) {
	if m.Current != "" && m.Current != s.Name {
		m.Previous = m.Current
	}
	m.Current = s.Name

	for i := range m.Snapshots {
		if m.Snapshots[i].Name == s.Name {
			m.Snapshots[i] = s
			return
		}
	}

	m.Snapshots = append(m.Snapshots, s)
}

// SnapshotFile returns the path associated with the named snapshot, if present.
func (m *Manifest) SnapshotFile(name string) string {
	for _, s := range m.Snapshots {
		if s.Name == name {
			return s.File
		}
	}
	return ""
}
