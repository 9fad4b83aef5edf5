package entities

import (
	"time"
)

// SourceType and PhotoType are small lookup tables seeded at migration time.

type SourceType struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Code        string    `gorm:"size:20;uniqueIndex;not null" json:"code"`
	Name        string    `gorm:"size:50;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

type PhotoType struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Code        string    `gorm:"size:20;uniqueIndex;not null" json:"code"`
	Name        string    `gorm:"size:50;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	IsReference bool      `gorm:"default:false" json:"is_reference"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// Codes used by the creation paths. Kept alongside the tables so seeding and
// lookups cannot drift apart.
const (
	SourceTypeWeb    = "web"
	SourceTypeBook   = "book"
	SourceTypeManual = "manual"

	PhotoTypeScraped    = "scraped"
	PhotoTypeBook       = "book"
	PhotoTypeUserUpload = "user_upload"
	PhotoTypeReference  = "reference"
)
