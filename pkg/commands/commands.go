// Package commands wires the brew CLI.
package commands

import (
	"github.com/spf13/cobra"
)

var verbose bool

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "brew",
		Short: "Browse, record, and share coffee recipes from the command line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging.")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addGet(topLevel)
	addShow(topLevel)
	addAdd(topLevel)
	addFav(topLevel)
	addRecent(topLevel)
	addWiki(topLevel)
	addShare(topLevel)
	addVersion(topLevel)
}
