package commands

import (
	"github.com/spf13/cobra"

	"github.com/brewlog/brew/pkg/commands/options"
	"github.com/brewlog/brew/pkg/recipe"
	"github.com/brewlog/brew/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	co := &options.CategoryOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one recipe and record the view.",
		Example: `
brew show 12 --type hot
brew show 3 -t iced
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := recipe.ParseCategory(co.Category)
			if err != nil {
				return err
			}

			e, err := newEnv()
			if err != nil {
				return err
			}
			s := show.Show{
				Category: cat,
				ID:       args[0],
				ShowID:   io.ShowID,
				Client:   e.client,
				Recents:  e.recents(),
			}
			return s.Do(cmd.Context())
		},
	}
	options.AddCategoryArg(cmd, co)
	options.AddShowIDArg(cmd, io)

	topLevel.AddCommand(cmd)
}
