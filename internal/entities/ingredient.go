package entities

// Ingredient is static catalog reference data, looked up by id and never
// mutated after seeding.
type Ingredient struct {
	ID           string
	Name         string
	Unit         string
	Category     string
	PricePerUnit float64
}
