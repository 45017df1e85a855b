// Package profile bundles a level choice with its add-ons so a whole
// compilation configuration can be named, stored in yaml, and resolved in
// one step. Resolution applies the primary preset first and the add-ons
// after it, which is the order the add-ons' overlapping toggles require.
package profile

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jstoolsmith/jscomp/pkg/level"
	"github.com/jstoolsmith/jscomp/pkg/options"
)

// ErrUnknownLevel is returned when a profile names a level outside the
// alias table.
var ErrUnknownLevel = errors.New("unknown optimization level")

// Profile is one named compilation configuration.
//
// Level         – level alias, e.g. "SIMPLE" or "ADVANCED_OPTIMIZATIONS".
// TypeBased     – enable the type-information add-on (Advanced only).
// WrappedOutput – enable the wrapped-output add-on (extends Simple).
// Debug         – readable pseudo-names, assertions kept.
type Profile struct {
	Level         string `json:"level" yaml:"level" mapstructure:"level"`
	TypeBased     bool   `json:"type_based_optimizations,omitempty" yaml:"type_based_optimizations,omitempty" mapstructure:"type_based_optimizations,omitempty"`
	WrappedOutput bool   `json:"wrapped_output,omitempty" yaml:"wrapped_output,omitempty" mapstructure:"wrapped_output,omitempty"`
	Debug         bool   `json:"debug,omitempty" yaml:"debug,omitempty" mapstructure:"debug,omitempty"`
}

// New returns a profile for the default level with no add-ons.
func New() *Profile {
	return &Profile{Level: level.Simple.String()}
}

// Load reads a profile from a yaml file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}

	return &p, nil
}

// ResolveLevel parses the profile's level alias.
func (p *Profile) ResolveLevel() (level.Level, error) {
	l, ok := level.Parse(p.Level)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, p.Level)
	}
	return l, nil
}

// ApplyTo configures o with the profile's preset and add-ons.
func (p *Profile) ApplyTo(o *options.Options) error {
	l, err := p.ResolveLevel()
	if err != nil {
		return err
	}

	p.ApplyWith(l, o)
	return nil
}

// ApplyWith configures o using an already-resolved level, for callers that
// have parsed the profile's level themselves and should not pay for (or
// fail on) a second parse.
func (p *Profile) ApplyWith(l level.Level, o *options.Options) {
	l.ApplyPreset(o)
	if p.TypeBased {
		l.ApplyTypeBasedOptimizations(o)
	}
	if p.WrappedOutput {
		l.ApplyWrappedOutputOptimizations(o)
	}
	if p.Debug {
		level.ApplyDebugOptions(o)
	}
}

// Resolve builds a freshly defaulted record and configures it.
func (p *Profile) Resolve() (*options.Options, error) {
	o := options.New()
	if err := p.ApplyTo(o); err != nil {
		return nil, err
	}
	return o, nil
}

// functional option pattern ---------------------------------------------------

type Option func(*Profile)

func WithLevel(l level.Level) Option     { return func(p *Profile) { p.Level = l.String() } }
func WithLevelAlias(alias string) Option { return func(p *Profile) { p.Level = alias } }
func WithTypeBased() Option              { return func(p *Profile) { p.TypeBased = true } }
func WithWrappedOutput() Option          { return func(p *Profile) { p.WrappedOutput = true } }
func WithDebug() Option                  { return func(p *Profile) { p.Debug = true } }

// Build assembles a profile from functional options.
func Build(opts ...Option) *Profile {
	p := New()
	for _, opt := range opts {
		opt(p)
	}
	return p
}
