package entities

import (
	"time"
)

type Recipe struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Title            string    `gorm:"size:255;not null;index" json:"title"`
	Description      string    `gorm:"type:text" json:"description,omitempty"`
	CookTime         *int      `json:"cook_time,omitempty"`
	Servings         *int      `json:"servings,omitempty"`
	SourceTypeID     uint      `gorm:"not null" json:"source_type_id"`
	SourceURL        string    `gorm:"size:500;index" json:"source_url,omitempty"`
	SourceRecipeID   string    `gorm:"size:50" json:"source_recipe_id,omitempty"`
	SourceBookTitle  string    `gorm:"size:255" json:"source_book_title,omitempty"`
	SourcePage       *int      `json:"source_page,omitempty"`
	ManualIdentifier string    `gorm:"size:100" json:"manual_identifier,omitempty"`
	Rating           *int      `json:"rating,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	SourceType     *SourceType     `gorm:"foreignKey:SourceTypeID" json:"source_type,omitempty"`
	Ingredients    []Ingredient    `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients,omitempty"`
	Steps          []Step          `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"steps,omitempty"`
	Photos         []RecipePhoto   `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"photos,omitempty"`
	CookingRecords []CookingRecord `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"cooking_records,omitempty"`
	Categories     []*Category     `gorm:"many2many:recipe_categories" json:"categories,omitempty"`
	Tags           []*Tag          `gorm:"many2many:recipe_tags" json:"tags,omitempty"`
}

type Ingredient struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RecipeID  uint      `gorm:"not null;index" json:"recipe_id"`
	Name      string    `gorm:"size:255;not null;index" json:"name"`
	Quantity  string    `gorm:"size:50" json:"quantity,omitempty"`
	Unit      string    `gorm:"size:20" json:"unit,omitempty"`
	SortOrder int       `gorm:"default:0" json:"sort_order"`
	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// StepNumber is unique per recipe so a bad extraction cannot persist two
// steps claiming the same position; duplicates abort the whole creation
// transaction.
type Step struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	RecipeID     uint      `gorm:"not null;uniqueIndex:idx_recipe_step" json:"recipe_id"`
	StepNumber   int       `gorm:"not null;uniqueIndex:idx_recipe_step" json:"step_number"`
	Instruction  string    `gorm:"type:text;not null" json:"instruction"`
	TimeEstimate *int      `json:"time_estimate,omitempty"`
	Temperature  *int      `json:"temperature,omitempty"`
	Notes        string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type RecipePhoto struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	RecipeID        uint      `gorm:"not null;index" json:"recipe_id"`
	CookingRecordID *uint     `gorm:"index" json:"cooking_record_id,omitempty"`
	PhotoURL        string    `gorm:"size:500;not null" json:"photo_url"`
	PhotoTypeID     uint      `gorm:"not null" json:"photo_type_id"`
	IsPrimary       bool      `gorm:"default:false" json:"is_primary"`
	SortOrder       int       `gorm:"default:0" json:"sort_order"`
	AltText         string    `gorm:"size:255" json:"alt_text,omitempty"`
	FileSize        *int64    `json:"file_size,omitempty"`
	Width           *int      `json:"width,omitempty"`
	Height          *int      `json:"height,omitempty"`
	CreatedAt       time.Time `json:"created_at"`

	PhotoType *PhotoType `gorm:"foreignKey:PhotoTypeID" json:"photo_type,omitempty"`
}

// CookingDate carries date precision only; callers normalize to midnight UTC.
// One record per recipe per date, so delete-by-date is never ambiguous.
type CookingRecord struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	RecipeID    uint      `gorm:"not null;uniqueIndex:idx_recipe_cooking_date" json:"recipe_id"`
	CookingDate time.Time `gorm:"not null;uniqueIndex:idx_recipe_cooking_date" json:"cooking_date"`
	Rating      *int      `json:"rating,omitempty"`
	Memo        string    `gorm:"type:text" json:"memo,omitempty"`
	Cost        *int      `json:"cost,omitempty"`
	Occasion    string    `gorm:"size:100" json:"occasion,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
