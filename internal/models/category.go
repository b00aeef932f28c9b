package models

// Category groups habits and goals. Name is the identity of a category.
type Category struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}
