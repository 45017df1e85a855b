package resolve

import (
	"fmt"
	"io"

	"github.com/jstoolsmith/jscomp/pkg/options"
	"github.com/jstoolsmith/jscomp/pkg/profile"
)

// Resolve configures a fresh options record from the profile.
func Resolve(p *profile.Profile) (*options.Options, error) {
	return p.Resolve()
}

// Report resolves the profile and writes the configured record as a flat
// name=value listing. The listing order is stable, so reports for two
// profiles can be diffed directly.
func Report(w io.Writer, p *profile.Profile) error {
	o, err := p.Resolve()
	if err != nil {
		return err
	}

	for _, s := range o.Settings() {
		if _, err := fmt.Fprintf(w, "%s=%s\n", s.Name, s.Value); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}
