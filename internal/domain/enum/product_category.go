package enum

// ProductCategory classifies catalog produce
type ProductCategory string

const (
	CategoryFruit     ProductCategory = "Fruit"
	CategoryVegetable ProductCategory = "Vegetable"
	CategoryOther     ProductCategory = "Other"
)

// IsValid reports whether the category is one of the known values
func (c ProductCategory) IsValid() bool {
	switch c {
	case CategoryFruit, CategoryVegetable, CategoryOther:
		return true
	}
	return false
}

// Categories returns all known product categories
func Categories() []ProductCategory {
	return []ProductCategory{CategoryFruit, CategoryVegetable, CategoryOther}
}
