package model

import (
	"time"

	"gorm.io/datatypes"
)

// MealModel mirrors the 'meals' table. Seq keeps insertion order for listings.
type MealModel struct {
	ID            string                      `gorm:"type:uuid;primaryKey"`
	Seq           int64                       `gorm:"autoIncrement;uniqueIndex;not null"`
	UserID        string                      `gorm:"type:uuid;not null;index"`
	Name          string                      `gorm:"type:text;not null"`
	IngredientIDs datatypes.JSONSlice[string] `gorm:"column:ingredient_ids;type:jsonb;not null"`
	Calories      int                         `gorm:"not null;check:calories >= 0"`
	Image         []byte                      `gorm:"type:bytea"`
	EatenAt       time.Time                   `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (MealModel) TableName() string {
	return "meals"
}

// IngredientModel mirrors the 'ingredients' table.
type IngredientModel struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	MealID    string `gorm:"type:uuid;not null;index"`
	Name      string `gorm:"type:text;not null"`
	Calories  int    `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (IngredientModel) TableName() string {
	return "ingredients"
}
