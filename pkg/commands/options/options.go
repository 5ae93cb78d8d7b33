// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// CategoryOptions captures category selection flags.
type CategoryOptions struct {
	Category string
	All      bool
}

// AddCategoryArg wires the category flag on the provided command.
func AddCategoryArg(cmd *cobra.Command, o *CategoryOptions) {
	cmd.Flags().StringVarP(&o.Category, "type", "t", "hot",
		"Recipe category, hot or iced.")
}

// AddAllCategoriesArg registers the flag that covers every category.
func AddAllCategoriesArg(cmd *cobra.Command, o *CategoryOptions) {
	cmd.Flags().BoolVar(&o.All, "all", false,
		"All categories.")
}

// IDOptions controls identifier display.
type IDOptions struct {
	ShowID bool
}

func AddShowIDArg(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVar(&o.ShowID, "id", false,
		"Show record ids.")
}

// ImageOptions captures image acquisition flags for add.
type ImageOptions struct {
	Path   string
	Camera bool
}

func AddImageArgs(cmd *cobra.Command, o *ImageOptions) {
	cmd.Flags().StringVar(&o.Path, "image", "",
		"Attach an image from the library directory (path, absolute or relative to it).")
	cmd.Flags().BoolVar(&o.Camera, "camera", false,
		"Capture the image with the configured capture command.")
}
