package commands

import (
	"github.com/spf13/cobra"

	"github.com/brewlog/brew/pkg/commands/options"
	"github.com/brewlog/brew/pkg/recipe"
	"github.com/brewlog/brew/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	co := &options.CategoryOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "get [hot|iced]",
		Short: "List recipes in a category.",
		Example: `
brew get hot
brew get iced --id
brew get --all
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				co.Category = args[0]
			}

			cat := recipe.Hot
			if !co.All {
				var err error
				cat, err = recipe.ParseCategory(co.Category)
				if err != nil {
					return err
				}
			}

			e, err := newEnv()
			if err != nil {
				return err
			}
			s := get.Get{
				Category: cat,
				All:      co.All,
				ShowID:   io.ShowID,
				Client:   e.client,
			}
			return s.Do(cmd.Context())
		},
	}
	options.AddCategoryArg(cmd, co)
	options.AddAllCategoriesArg(cmd, co)
	options.AddShowIDArg(cmd, io)

	topLevel.AddCommand(cmd)
}
