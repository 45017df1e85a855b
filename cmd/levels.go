package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jstoolsmith/jscomp/pkg/level"
)

func init() {
	rootCmd.AddCommand(NewLevelsCommand())
}

func NewLevelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "list the supported compilation levels",
		RunE: func(c *cobra.Command, args []string) error {
			for _, l := range level.Levels() {
				fmt.Fprintln(c.OutOrStdout(), l)
			}
			return nil
		},
	}
}
