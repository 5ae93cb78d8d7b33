package commands

import (
	"github.com/spf13/cobra"

	"github.com/brewlog/brew/pkg/commands/options"
	"github.com/brewlog/brew/pkg/recipe"
	"github.com/brewlog/brew/pkg/runner/fav"
)

func addFav(topLevel *cobra.Command) {
	co := &options.CategoryOptions{}
	io := &options.IDOptions{}

	var remove string
	var clear bool

	cmd := &cobra.Command{
		Use:   "fav [id]",
		Short: "List or edit favorite recipes.",
		Example: `
brew fav
brew fav 12 --type hot
brew fav --remove 12
brew fav --clear
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}

			s := fav.Fav{
				Category:  recipe.Category(co.Category),
				Remove:    remove,
				Clear:     clear,
				ShowID:    io.ShowID,
				Client:    e.client,
				Favorites: e.favorites(),
			}
			if len(args) > 0 {
				s.Add = args[0]
			}
			return s.Do(cmd.Context())
		},
	}
	options.AddCategoryArg(cmd, co)
	options.AddShowIDArg(cmd, io)
	cmd.Flags().StringVar(&remove, "remove", "", "Remove a favorite by id.")
	cmd.Flags().BoolVar(&clear, "clear", false, "Clear all favorites.")

	topLevel.AddCommand(cmd)
}
