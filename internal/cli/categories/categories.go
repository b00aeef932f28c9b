package categories

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/tracker"
)

type CategoryCmd struct {
	Add    CategoryAddCmd    `cmd:"" help:"Add a custom category."`
	List   CategoryListCmd   `cmd:"" help:"List categories."`
	Delete CategoryDeleteCmd `cmd:"" help:"Delete a custom category."`
}

type CategoryAddCmd struct {
	Name  string `arg:"" help:"Category name."`
	Icon  string `short:"i" help:"Icon name (see 'category list --options')."`
	Color string `short:"c" help:"Hex colour (see 'category list --options')."`
}

func (c *CategoryAddCmd) Run(ctx *cli.Context) error {
	icon, err := ctx.Choose(c.Icon, "Icon", tracker.AvailableIcons)
	if err != nil {
		return err
	}
	color, err := ctx.Choose(c.Color, "Color", tracker.AvailableColors)
	if err != nil {
		return err
	}

	cat, err := ctx.Tracker.Categories.Add(ctx.Background(), c.Name, icon, color)
	if err != nil {
		return err
	}
	ctx.Printf("Added category: %s\n", cat.Name)
	return nil
}

type CategoryListCmd struct {
	Options bool `help:"Show the icons and colours available for custom categories."`
}

func (c *CategoryListCmd) Run(ctx *cli.Context) error {
	if c.Options {
		ctx.Println("Icons:")
		for _, icon := range tracker.AvailableIcons {
			ctx.Printf("  %s\n", icon)
		}
		ctx.Println("Colors:")
		for _, color := range tracker.AvailableColors {
			ctx.Printf("  %s %s\n", lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("■"), color)
		}
		return nil
	}

	cats, err := ctx.Tracker.Categories.List(ctx.Background())
	if err != nil {
		return err
	}
	for _, cat := range cats {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(cat.Color)).Render("■")
		builtIn := ""
		if tracker.IsBuiltIn(cat.Name) {
			builtIn = " (built-in)"
		}
		ctx.Printf("%s %-20s %s%s\n", swatch, cat.Name, cat.Icon, builtIn)
	}
	return nil
}

type CategoryDeleteCmd struct {
	Name string `arg:"" help:"Category name."`
}

func (c *CategoryDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Tracker.Categories.Delete(ctx.Background(), c.Name); err != nil {
		return err
	}
	ctx.Printf("Deleted category: %s\n", c.Name)
	return nil
}
