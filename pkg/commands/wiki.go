package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/brewlog/brew/pkg/httpclient"
	"github.com/brewlog/brew/pkg/resolve"
	"github.com/brewlog/brew/pkg/runner/wiki"
)

func addWiki(topLevel *cobra.Command) {
	var open bool

	cmd := &cobra.Command{
		Use:   "wiki <title>",
		Short: "Resolve a recipe's reference article.",
		Example: `
brew wiki Flat White
brew wiki "Cold Brew" --open
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}

			// Opening is fire-and-forget, so that path only needs a
			// constructible URL; plain resolution verifies reachability.
			probe := resolve.LinkProbe(httpclient.New(nil))
			if open {
				probe = resolve.NopProbe()
			}

			s := wiki.Wiki{
				Title:    strings.Join(args, " "),
				Open:     open,
				Resolver: resolve.New(probe, e.logger),
			}
			return s.Do(cmd.Context())
		},
	}
	cmd.Flags().BoolVar(&open, "open", false, "Open the resolved article in the browser.")

	topLevel.AddCommand(cmd)
}
