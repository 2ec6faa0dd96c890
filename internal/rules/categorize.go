package rules

// CategoryOther is the aisle for items no table entry matches.
const CategoryOther = "Other"

// Categories lists the store aisles in display order.
var Categories = []string{
	"Produce",
	"Dairy",
	"Meat & Seafood",
	"Bakery",
	"Pantry",
	"Frozen",
	"Beverages",
	"Snacks",
	"Household",
	"Personal Care",
	CategoryOther,
}

// Categorize returns the store aisle for an item name.
func (t *Tables) Categorize(name string) string {
	if aisle, ok := t.Aisle(name); ok {
		return aisle
	}
	return CategoryOther
}

// Categorize returns the store aisle for an item name using the built-in
// tables.
func Categorize(name string) string {
	return Defaults().Categorize(name)
}
