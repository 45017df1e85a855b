package cmd

import (
	"fmt"
	"strings"

	"github.com/jinzhu/inflection"
	"github.com/spf13/cobra"

	"github.com/jstoolsmith/jscomp/pkg/action/snapshot"
	"github.com/jstoolsmith/jscomp/pkg/profile"
)

func init() {
	var snapshotCmd = NewSnapshotCommand()
	rootCmd.AddCommand(snapshotCmd)
}

func NewSnapshotCommand() *cobra.Command {
	var (
		p            = profile.New()
		profilePath  string
		outDir       string
		manifestPath string
		name         string
	)

	// snapshotCmd represents the jscomp snapshot command
	var snapshotCmd = &cobra.Command{
		Use:   "snapshot",
		Short: "snapshot a resolved options record",
		Long:  "Resolve a compilation level and write the configured record as generated Go source, recording it in the snapshot manifest",
		RunE: func(c *cobra.Command, args []string) error {
			active, err := activeProfile(c, p, profilePath)
			if err != nil {
				return err
			}
			if name == "" {
				name = strings.ToLower(active.Level)
			}
			outFile, err := snapshot.Generate(active, outDir, manifestPath, name)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.OutOrStdout(), outFile)
			return nil
		},
	}
	addProfileFlags(snapshotCmd, p, &profilePath)
	snapshotCmd.PersistentFlags().StringVarP(&outDir, "output-directory", "o", "snapshots", "directory to write generated snapshots")
	snapshotCmd.PersistentFlags().StringVarP(&manifestPath, "manifest", "m", "snapshots/manifest.yaml", "snapshot manifest file")
	snapshotCmd.PersistentFlags().StringVarP(&name, "name", "n", "", "snapshot name (defaults to the lowercased level)")

	snapshotCmd.AddCommand(newSnapshotListCommand(&manifestPath))
	snapshotCmd.AddCommand(newSnapshotDiffCommand(&manifestPath))

	return snapshotCmd
}

func newSnapshotListCommand(manifestPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list recorded snapshots",
		RunE: func(c *cobra.Command, args []string) error {
			m, err := snapshot.List(*manifestPath)
			if err != nil {
				return err
			}
			for _, s := range m.Snapshots {
				marker := " "
				if s.Name == m.Current {
					marker = "*"
				}
				fmt.Fprintf(c.OutOrStdout(), "%s %s\t%s\t%s\n", marker, s.Name, s.Level, s.File)
			}
			word := "snapshot"
			if len(m.Snapshots) != 1 {
				word = inflection.Plural(word)
			}
			fmt.Fprintf(c.OutOrStdout(), "%d %s recorded\n", len(m.Snapshots), word)
			return nil
		},
	}
}

func newSnapshotDiffCommand(manifestPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "diff",
		Short: "diff the current snapshot against the previous one",
		RunE: func(c *cobra.Command, args []string) error {
			diff, err := snapshot.DiffCurrentWithPrevious(*manifestPath)
			if err != nil {
				return err
			}
			if diff == "" {
				fmt.Fprintln(c.OutOrStdout(), "no changes")
				return nil
			}
			fmt.Fprintln(c.OutOrStdout(), diff)
			return nil
		},
	}
}
