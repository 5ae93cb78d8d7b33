// Package printers renders recipes and cache entries for the terminal.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/brewlog/brew/pkg/recipe"
)

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)
	switch count {
	case 1:
		_, _ = c.Println(" recipe")
	default:
		_, _ = c.Println(" recipes")
	}
}

// Records prints a recipe listing as a table.
func (pp *PrettyPrint) Records(records ...recipe.Record) {
	if len(records) == 0 {
		pp.none()
		return
	}

	table := uitable.New()
	table.MaxColWidth = 60
	table.Wrap = true
	if pp.ShowID {
		table.AddRow("ID", "TITLE", "TASTED", "INGREDIENTS")
	} else {
		table.AddRow("TITLE", "TASTED", "INGREDIENTS")
	}
	for _, r := range records {
		tasted := ""
		if r.Tasted {
			tasted = "yes"
		}
		ingredients := strings.Join(r.Ingredients, ", ")
		if pp.ShowID {
			table.AddRow(r.ID, r.Title, tasted, ingredients)
		} else {
			table.AddRow(r.Title, tasted, ingredients)
		}
	}
	fmt.Println(table)
	fmt.Println("")
}

// Record prints one recipe in detail.
func (pp *PrettyPrint) Record(r recipe.Record) {
	t := color.New(color.Bold)
	f := color.New(color.Faint)

	_, _ = t.Println(r.Title)
	if r.Description != "" {
		fmt.Println(r.Description)
	}
	_, _ = f.Printf("category: %s", r.Category)
	if r.Tasted {
		_, _ = f.Print("  tasted")
	}
	_, _ = f.Println("")
	if len(r.Ingredients) > 0 {
		fmt.Println("ingredients:")
		for _, ing := range r.Ingredients {
			fmt.Printf("  - %s\n", ing)
		}
	}
	if r.Image != "" {
		_, _ = f.Printf("image: %s\n", r.Image)
	}
	fmt.Println("")
}

// Entries prints cache entries (recents, favorites), newest first.
func (pp *PrettyPrint) Entries(entries ...recipe.CacheEntry) {
	if len(entries) == 0 {
		pp.none()
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	t := color.New()
	for _, e := range entries {
		if pp.ShowID {
			_, _ = y.Printf("%-10s", e.ID)
		}
		_, _ = t.Println(e.Title)
	}
	fmt.Println("")
}

// Link prints a resolved external reference URL.
func (pp *PrettyPrint) Link(url string) {
	c := color.New(color.FgCyan, color.Underline)
	_, _ = c.Println(url)
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Print(" none\n\n")
}
