package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/brewlog/brew/pkg/commands/options"
	"github.com/brewlog/brew/pkg/httpclient"
	"github.com/brewlog/brew/pkg/image"
	"github.com/brewlog/brew/pkg/recipe"
	"github.com/brewlog/brew/pkg/runner/add"
	"github.com/brewlog/brew/pkg/submit"
)

func addAdd(topLevel *cobra.Command) {
	co := &options.CategoryOptions{}
	imo := &options.ImageOptions{}

	var description string
	var ingredients string
	var tasted bool
	var favorite bool

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Submit a new recipe.",
		Example: `
brew add "Flat White" -t hot --ingredients "espresso, steamed milk"
brew add "Cold Brew" -t iced --image brew.jpg --favorite
brew add "Affogato" -t iced --camera
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}

			var source image.Source
			switch {
			case imo.Camera:
				source = &image.CameraSource{
					Command: e.cfg.CaptureCommand(),
				}
			case imo.Path != "":
				source = &image.LibrarySource{
					Dir:  e.cfg.LibraryDir(),
					Path: imo.Path,
				}
			}

			pipeline := &submit.Pipeline{
				Creator: e.client,
				Uploader: &image.Uploader{
					Endpoint:  e.cfg.ImageHost(),
					ClientKey: e.cfg.ImageClientKey(),
					HTTP:      httpclient.New(nil),
					Logger:    e.logger,
				},
				Router:    e.router,
				Recents:   e.recents(),
				Favorites: e.favorites(),
				Logger:    e.logger,
			}

			s := add.Add{
				Draft: recipe.Draft{
					Title:       strings.Join(args, " "),
					Description: description,
					Ingredients: ingredients,
					Category:    recipe.Category(co.Category),
					Tasted:      tasted,
					Favorite:    favorite,
				},
				Source:   source,
				Pipeline: pipeline,
			}
			return s.Do(cmd.Context())
		},
	}
	options.AddCategoryArg(cmd, co)
	options.AddImageArgs(cmd, imo)
	cmd.Flags().StringVarP(&description, "description", "d", "", "Recipe description.")
	cmd.Flags().StringVarP(&ingredients, "ingredients", "i", "", "Comma separated ingredients.")
	cmd.Flags().BoolVar(&tasted, "tasted", false, "Mark the recipe as tasted.")
	cmd.Flags().BoolVar(&favorite, "favorite", false, "Favorite the recipe once created.")

	topLevel.AddCommand(cmd)
}
