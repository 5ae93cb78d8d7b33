package commands

import (
	"github.com/spf13/cobra"

	"github.com/brewlog/brew/pkg/commands/options"
	"github.com/brewlog/brew/pkg/runner/recent"
)

func addRecent(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	var clear bool
	var follow bool

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Show recently viewed recipes.",
		Example: `
brew recent
brew recent --clear
brew recent --follow
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			s := recent.Recent{
				Clear:   clear,
				Follow:  follow,
				ShowID:  io.ShowID,
				Recents: e.recents(),
			}
			return s.Do(cmd.Context())
		},
	}
	options.AddShowIDArg(cmd, io)
	cmd.Flags().BoolVar(&clear, "clear", false, "Clear the recently viewed list.")
	cmd.Flags().BoolVar(&follow, "follow", false, "Keep printing as the list changes.")

	topLevel.AddCommand(cmd)
}
