package models

type Ingredient struct {
	BaseModel

	Name string `gorm:"uniqueIndex;not null"`

	// Relationships
	Recipes []Recipe `gorm:"many2many:recipe_ingredients;"`
}
