package cmd

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/jstoolsmith/jscomp/pkg/profile"
)

func TestActiveProfileUsesConfigDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("profile.level", "ADVANCED")
	viper.Set("profile.debug", true)

	c := NewResolveCommand()
	got, err := activeProfile(c, profile.New(), "")
	require.NoError(t, err)
	require.Equal(t, "ADVANCED", got.Level)
	require.True(t, got.Debug)
	require.False(t, got.TypeBased)
	require.False(t, got.WrappedOutput)
}

func TestActiveProfileFlagsOverrideConfig(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("profile.level", "ADVANCED")
	viper.Set("profile.type_based_optimizations", true)

	c := NewResolveCommand()
	require.NoError(t, c.Flags().Set("compilation-level", "WHITESPACE_ONLY"))

	p := profile.New()
	p.Level = "WHITESPACE_ONLY"
	got, err := activeProfile(c, p, "")
	require.NoError(t, err)

	// The flag wins; fields without a set flag still fall back to config.
	require.Equal(t, "WHITESPACE_ONLY", got.Level)
	require.True(t, got.TypeBased)
}

func TestActiveProfileWithoutConfig(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	c := NewResolveCommand()
	got, err := activeProfile(c, profile.New(), "")
	require.NoError(t, err)
	require.Equal(t, profile.New(), got)
}
