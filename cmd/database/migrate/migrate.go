package migration

import (
	"fmt"
	"log"

	"cookmemo/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	models := []interface{}{
		&entities.SourceType{},
		&entities.PhotoType{},
		&entities.Recipe{},
		&entities.Ingredient{},
		&entities.Step{},
		&entities.Tag{},
		&entities.Category{},
		&entities.CookingRecord{},
		&entities.RecipePhoto{},
	}
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			log.Fatalf("Error migrating database: %v", err)
			return err
		}
	}

	if err := seedReferenceData(db); err != nil {
		log.Fatalf("Error seeding reference data: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}

// seedReferenceData inserts the fixed source and photo type rows that the
// rest of the system looks up by code.
func seedReferenceData(db *gorm.DB) error {
	sourceTypes := []entities.SourceType{
		{Code: entities.SourceTypeWeb, Name: "Web"},
		{Code: entities.SourceTypeBook, Name: "Book"},
		{Code: entities.SourceTypeManual, Name: "Manual"},
	}
	for _, st := range sourceTypes {
		if err := db.Where(entities.SourceType{Code: st.Code}).
			FirstOrCreate(&st).Error; err != nil {
			return err
		}
	}

	photoTypes := []entities.PhotoType{
		{Code: entities.PhotoTypeScraped, Name: "Scraped"},
		{Code: entities.PhotoTypeBook, Name: "Book"},
		{Code: entities.PhotoTypeUserUpload, Name: "User Upload"},
		{Code: entities.PhotoTypeReference, Name: "Reference", IsReference: true},
	}
	for _, pt := range photoTypes {
		if err := db.Where(entities.PhotoType{Code: pt.Code}).
			FirstOrCreate(&pt).Error; err != nil {
			return err
		}
	}
	return nil
}
