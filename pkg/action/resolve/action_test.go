package resolve

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jstoolsmith/jscomp/pkg/profile"
)

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Report(&buf, profile.Build(profile.WithLevelAlias("ADVANCED"))))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Contains(t, lines, "checkTypes=true")
	require.Contains(t, lines, "variableRenaming=ALL")
	require.Contains(t, lines, "propertyRenaming=OFF")
	require.Contains(t, lines, "inlineFunctions=ALL")
	require.Contains(t, lines, "warningLevel.globalThis=WARNING")
}

func TestReportUnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	err := Report(&buf, profile.Build(profile.WithLevelAlias("FOO")))
	require.Error(t, err)
	require.Zero(t, buf.Len())
}

func TestResolve(t *testing.T) {
	o, err := Resolve(profile.Build(profile.WithLevelAlias("WHITESPACE")))
	require.NoError(t, err)
	require.True(t, o.SkipAllPasses)
}
