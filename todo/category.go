package todo

import "strings"

// DefaultCategories returns the categories a fresh store starts with.
func DefaultCategories() []Category {
	return []Category{
		{ID: "work", Name: "Work", Color: "#3b82f6", Icon: "💼"},
		{ID: "personal", Name: "Personal", Color: "#8b5cf6", Icon: "👤"},
		{ID: "shopping", Name: "Shopping", Color: "#10b981", Icon: "🛒"},
		{ID: "health", Name: "Health", Color: "#ef4444", Icon: "❤️"},
		{ID: "study", Name: "Study", Color: "#f59e0b", Icon: "📚"},
	}
}

// CategoryByID returns the category with the given ID.
func CategoryByID(categories []Category, id string) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// FindCategory looks a category up by exact ID or case-insensitive name.
func FindCategory(categories []Category, value string) (Category, bool) {
	if c, ok := CategoryByID(categories, value); ok {
		return c, true
	}
	for _, c := range categories {
		if strings.EqualFold(c.Name, value) {
			return c, true
		}
	}
	return Category{}, false
}
