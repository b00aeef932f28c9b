package tracker

import (
	"context"
	"slices"
	"strings"

	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage"
)

// BuiltInCategories are seeded on first use and can never be deleted.
var BuiltInCategories = []models.Category{
	{Name: "Health", Icon: "fitness-outline", Color: "#4CAF50"},
	{Name: "Work", Icon: "briefcase-outline", Color: "#2196F3"},
	{Name: "Personal", Icon: "person-outline", Color: "#FFC107"},
	{Name: "Hobby", Icon: "brush-outline", Color: "#9C27B0"},
	{Name: "Quit a Bad Habit", Icon: "ban-outline", Color: "#E53935"},
	{Name: "Art", Icon: "color-palette-outline", Color: "#673AB7"},
	{Name: "Meditation", Icon: "flower-outline", Color: "#00ACC1"},
	{Name: "Study", Icon: "school-outline", Color: "#3F51B5"},
	{Name: "Entertainment", Icon: "musical-notes-outline", Color: "#F44336"},
	{Name: "Sports", Icon: "football-outline", Color: "#4CAF50"},
	{Name: "Social", Icon: "people-outline", Color: "#03A9F4"},
	{Name: "Nutrition", Icon: "nutrition-outline", Color: "#FF9800"},
	{Name: "Finance", Icon: "wallet-outline", Color: "#795548"},
	{Name: "Other", Icon: "ellipsis-horizontal-outline", Color: "#9E9E9E"},
}

// AvailableIcons are the icons offered for custom categories.
var AvailableIcons = []string{
	"heart-outline",
	"car-outline",
	"home-outline",
	"school-outline",
	"briefcase-outline",
	"fitness-outline",
}

// AvailableColors are the colours offered for custom categories.
var AvailableColors = []string{
	"#E53935",
	"#4CAF50",
	"#2196F3",
	"#FFC107",
	"#673AB7",
	"#795548",
	"#03A9F4",
	"#FF9800",
}

// IsBuiltIn reports whether name is one of the default categories, ignoring
// case and surrounding space.
func IsBuiltIn(name string) bool {
	name = strings.TrimSpace(name)
	for _, c := range BuiltInCategories {
		if strings.EqualFold(c.Name, name) {
			return true
		}
	}
	return false
}

type Categories struct {
	col *storage.Collection[models.Category]
}

// List returns all categories, writing the built-in set first if the
// categories key has never been stored.
func (c *Categories) List(ctx context.Context) ([]models.Category, error) {
	exists, err := c.col.Exists(ctx)
	if err != nil {
		return c.col.LoadAll(ctx), nil
	}
	if !exists {
		seed := slices.Clone(BuiltInCategories)
		if err := c.col.SaveAll(ctx, seed); err != nil {
			return nil, err
		}
		return seed, nil
	}
	return c.col.LoadAll(ctx), nil
}

// Find looks a category up by name, ignoring case.
func (c *Categories) Find(ctx context.Context, name string) (models.Category, error) {
	all, err := c.List(ctx)
	if err != nil {
		return models.Category{}, err
	}
	return resolve("category", all, name,
		func(m models.Category) string { return m.Name },
		func(m models.Category) string { return m.Name })
}

// Add stores a custom category. Names are trimmed and must be unique.
func (c *Categories) Add(ctx context.Context, name, icon, color string) (models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Category{}, invalid("name", "Please enter a category name")
	}
	if icon == "" {
		return models.Category{}, invalid("icon", "Please select an icon")
	}
	if !slices.Contains(AvailableIcons, icon) {
		return models.Category{}, invalid("icon", "Unknown icon %q, choose one of: %s", icon, strings.Join(AvailableIcons, ", "))
	}
	if color == "" {
		return models.Category{}, invalid("color", "Please select a color")
	}
	color = strings.ToUpper(color)
	if !slices.Contains(AvailableColors, color) {
		return models.Category{}, invalid("color", "Unknown color %q, choose one of: %s", color, strings.Join(AvailableColors, ", "))
	}

	all, err := c.List(ctx)
	if err != nil {
		return models.Category{}, err
	}
	for _, existing := range all {
		if strings.EqualFold(existing.Name, name) {
			return models.Category{}, invalid("name", "Category %q already exists", existing.Name)
		}
	}

	cat := models.Category{Name: name, Icon: icon, Color: color}
	if err := c.col.SaveAll(ctx, append(all, cat)); err != nil {
		return models.Category{}, err
	}
	return cat, nil
}

// Delete removes every category with the given name. Built-ins are refused
// regardless of what the stored list contains.
func (c *Categories) Delete(ctx context.Context, name string) error {
	if IsBuiltIn(name) {
		return ErrBuiltInCategory
	}

	all, err := c.List(ctx)
	if err != nil {
		return err
	}
	kept := make([]models.Category, 0, len(all))
	for _, cat := range all {
		if cat.Name != name {
			kept = append(kept, cat)
		}
	}
	if len(kept) == len(all) {
		return &NotFoundError{Kind: "category", Ref: name}
	}
	return c.col.SaveAll(ctx, kept)
}
