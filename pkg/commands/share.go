package commands

import (
	"github.com/spf13/cobra"

	"github.com/brewlog/brew/pkg/runner/share"
)

func addShare(topLevel *cobra.Command) {
	var out string

	cmd := &cobra.Command{
		Use:   "share",
		Short: "Export a tasting summary file.",
		Example: `
brew share
brew share --out ./coffee.txt
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}
			s := share.Share{
				Out:    out,
				Client: e.client,
			}
			return s.Do(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "Destination file for the summary.")

	topLevel.AddCommand(cmd)
}
