package entities

import (
	"time"
)

type Tag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:50;uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`

	Recipes []*Recipe `gorm:"many2many:recipe_tags" json:"-"`
}

type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null;index" json:"name"`
	Color     string    `gorm:"size:7;default:#CCCCCC" json:"color"`
	CreatedAt time.Time `json:"created_at"`

	Recipes []*Recipe `gorm:"many2many:recipe_categories" json:"-"`
}
