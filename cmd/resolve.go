package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jstoolsmith/jscomp/pkg/action/resolve"
	"github.com/jstoolsmith/jscomp/pkg/profile"
)

func init() {
	var resolveCmd = NewResolveCommand()
	rootCmd.AddCommand(resolveCmd)
}

func NewResolveCommand() *cobra.Command {
	var (
		p           = profile.New()
		profilePath string
	)

	// resolveCmd represents the jscomp resolve command
	var resolveCmd = &cobra.Command{
		Use:   "resolve",
		Short: "resolve a compilation level",
		Long:  "Resolve a compilation level and add-ons into the full options record and print it as a name=value listing",
		RunE: func(c *cobra.Command, args []string) error {
			active, err := activeProfile(c, p, profilePath)
			if err != nil {
				return err
			}
			return resolve.Report(c.OutOrStdout(), active)
		},
	}
	addProfileFlags(resolveCmd, p, &profilePath)

	return resolveCmd
}

// addProfileFlags registers the flags shared by every command that resolves
// a profile into an options record.
func addProfileFlags(cmd *cobra.Command, p *profile.Profile, profilePath *string) {
	cmd.PersistentFlags().StringVarP(&p.Level, "compilation-level", "O", p.Level, "optimization level (BUNDLE, WHITESPACE_ONLY, SIMPLE, ADVANCED)")
	cmd.PersistentFlags().BoolVarP(&p.TypeBased, "type-based", "t", false, "enable type-based optimizations (ADVANCED only)")
	cmd.PersistentFlags().BoolVarP(&p.WrappedOutput, "wrapped-output", "w", false, "enable global optimizations valid for wrapped output")
	cmd.PersistentFlags().BoolVarP(&p.Debug, "debug", "d", false, "readable pseudo-names, assertions kept")
	cmd.PersistentFlags().StringVarP(profilePath, "profile", "p", "", "yaml profile file; flags above are ignored when set")
}

// activeProfile returns the profile the command should resolve: the one
// loaded from profilePath when provided, otherwise the flag-built profile
// with the merged config's `profile` section filling in any field whose
// flag was not set on the command line.
func activeProfile(c *cobra.Command, p *profile.Profile, profilePath string) (*profile.Profile, error) {
	if profilePath != "" {
		return profile.Load(profilePath)
	}

	if viper.IsSet("profile") {
		base := profile.New()
		if err := viper.UnmarshalKey("profile", base); err != nil {
			return nil, fmt.Errorf("unmarshal profile config: %w", err)
		}

		flags := c.Flags()
		if !flags.Changed("compilation-level") {
			p.Level = base.Level
		}
		if !flags.Changed("type-based") {
			p.TypeBased = base.TypeBased
		}
		if !flags.Changed("wrapped-output") {
			p.WrappedOutput = base.WrappedOutput
		}
		if !flags.Changed("debug") {
			p.Debug = base.Debug
		}
	}

	return p, nil
}
