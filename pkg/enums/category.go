package enums

import "fmt"

// Category is the catalog department a product is listed under.
type Category string

const (
	CategoryToys           Category = "Toys"
	CategorySupercars      Category = "Supercars"
	CategoryBabyCare       Category = "Baby Care"
	CategoryBooks          Category = "Books"
	CategoryArtAndCraft    Category = "Art & Craft"
	CategoryAnimeFigurines Category = "Anime Figurines"
)

var validCategories = []Category{
	CategoryToys,
	CategorySupercars,
	CategoryBabyCare,
	CategoryBooks,
	CategoryArtAndCraft,
	CategoryAnimeFigurines,
}

func (c Category) String() string {
	return string(c)
}

// IsValid reports whether the value matches a catalog category.
func (c Category) IsValid() bool {
	for _, candidate := range validCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCategory converts the raw string to Category.
func ParseCategory(value string) (Category, error) {
	for _, candidate := range validCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid category %q", value)
}
