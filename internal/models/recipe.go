package models

type Recipe struct {
	BaseModel

	Title       string `gorm:"not null"`
	Description string `gorm:"size:2000"`
	Difficulty  string
	OwnerID     uint `gorm:"not null;index"`

	// Relationships
	Owner       User         `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Ingredients []Ingredient `gorm:"many2many:recipe_ingredients;"`
}
