package recipe

import (
	"context"
	"errors"
	"time"

	"cookmemo/domain"
	"cookmemo/entities"

	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		FindBySourceURL(ctx context.Context, sourceURL string) (*entities.Recipe, error)
		GetWithGraph(ctx context.Context, id uint) (*entities.Recipe, error)
		CreateFromPayload(ctx context.Context, payload domain.RecipePayload, sourceTypeCode string, cookingDate time.Time) (*entities.Recipe, error)
		RegisterCookingOccurrence(ctx context.Context, record *entities.CookingRecord) (*entities.CookingRecord, error)
		Search(ctx context.Context, query domain.RecipeSearchQuery) ([]*entities.Recipe, error)
		DeleteRecipe(ctx context.Context, id uint) error
		GetCookingRecord(ctx context.Context, recipeID uint, date time.Time) (*entities.CookingRecord, error)
		DeleteCookingRecord(ctx context.Context, recipeID uint, date time.Time) error
		CreatePhoto(ctx context.Context, photo *entities.RecipePhoto) (*entities.RecipePhoto, error)
		GetPhoto(ctx context.Context, id uint) (*entities.RecipePhoto, error)
		UpdatePhoto(ctx context.Context, id uint, req domain.PhotoUpdateRequest) (*entities.RecipePhoto, error)
		DeletePhoto(ctx context.Context, id uint) error
		ListPhotosByCookingRecord(ctx context.Context, recipeID, recordID uint) ([]*entities.RecipePhoto, error)
		GetPhotoTypeByCode(ctx context.Context, code string) (*entities.PhotoType, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) FindBySourceURL(ctx context.Context, sourceURL string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	err := r.db.WithContext(ctx).Where("source_url = ?", sourceURL).First(&recipe).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// GetWithGraph reads a recipe with its full association graph so callers
// always observe a consistent, fully loaded view.
func (r *recipeRepository) GetWithGraph(ctx context.Context, id uint) (*entities.Recipe, error) {
	var recipe entities.Recipe
	err := r.db.WithContext(ctx).
		Preload("SourceType").
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("ingredients.sort_order ASC")
		}).
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("steps.step_number ASC")
		}).
		Preload("Photos", func(db *gorm.DB) *gorm.DB {
			return db.Order("recipe_photos.sort_order ASC")
		}).
		Preload("Photos.PhotoType").
		Preload("CookingRecords", func(db *gorm.DB) *gorm.DB {
			return db.Order("cooking_records.cooking_date ASC")
		}).
		Preload("Categories").
		Preload("Tags").
		First(&recipe, id).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// CreateFromPayload persists the recipe together with its ingredients, steps,
// primary photo and initial cooking record in one transaction, then re-reads
// the full graph. Nothing from a failed attempt survives.
func (r *recipeRepository) CreateFromPayload(ctx context.Context, payload domain.RecipePayload, sourceTypeCode string, cookingDate time.Time) (*entities.Recipe, error) {
	var recipeID uint

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sourceType entities.SourceType
		if err := tx.Where("code = ?", sourceTypeCode).First(&sourceType).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrSourceTypeNotFound
			}
			return err
		}

		recipe := entities.Recipe{
			Title:        payload.Title,
			Description:  payload.Description,
			SourceTypeID: sourceType.ID,
			SourceURL:    payload.SourceURL,
		}
		if err := tx.Create(&recipe).Error; err != nil {
			return err
		}

		for _, ing := range payload.Ingredients {
			ingredient := entities.Ingredient{
				RecipeID:  recipe.ID,
				Name:      ing.Name,
				Quantity:  ing.Quantity,
				SortOrder: ing.SortOrder,
			}
			if err := tx.Create(&ingredient).Error; err != nil {
				return err
			}
		}

		for _, st := range payload.Steps {
			step := entities.Step{
				RecipeID:    recipe.ID,
				StepNumber:  st.StepNumber,
				Instruction: st.Instruction,
			}
			if err := tx.Create(&step).Error; err != nil {
				return err
			}
		}

		if payload.PhotoURL != "" {
			var photoType entities.PhotoType
			if err := tx.Where("code = ?", entities.PhotoTypeScraped).First(&photoType).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return domain.ErrPhotoTypeNotFound
				}
				return err
			}
			photo := entities.RecipePhoto{
				RecipeID:    recipe.ID,
				PhotoURL:    payload.PhotoURL,
				PhotoTypeID: photoType.ID,
				IsPrimary:   true,
			}
			if err := tx.Create(&photo).Error; err != nil {
				return err
			}
		}

		record := entities.CookingRecord{
			RecipeID:    recipe.ID,
			CookingDate: cookingDate,
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		recipeID = recipe.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetWithGraph(ctx, recipeID)
}

// RegisterCookingOccurrence appends a cooking record to an existing recipe.
// One record per recipe per date, so delete-by-date stays unambiguous.
func (r *recipeRepository) RegisterCookingOccurrence(ctx context.Context, record *entities.CookingRecord) (*entities.CookingRecord, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipe entities.Recipe
		if err := tx.First(&recipe, record.RecipeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrRecipeNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&entities.CookingRecord{}).
			Where("recipe_id = ? AND cooking_date = ?", record.RecipeID, record.CookingDate).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrCookingRecordExists
		}

		return tx.Create(record).Error
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// Search builds the filtered, sorted, limited recipe query. Tag filtering
// uses AND semantics: a recipe matches only when its matching tag-link count
// equals the number of requested tags.
func (r *recipeRepository) Search(ctx context.Context, query domain.RecipeSearchQuery) ([]*entities.Recipe, error) {
	db := r.db.WithContext(ctx).Model(&entities.Recipe{})

	if len(query.TagIDs) > 0 {
		db = db.
			Joins("JOIN recipe_tags ON recipe_tags.recipe_id = recipes.id").
			Where("recipe_tags.tag_id IN ?", query.TagIDs).
			Group("recipes.id").
			Having("COUNT(DISTINCT recipe_tags.tag_id) = ?", len(query.TagIDs))
	}

	column := "recipes.id"
	if query.SortBy == "created_at" {
		column = "recipes.created_at"
	}
	direction := "DESC"
	if query.SortOrder == "asc" {
		direction = "ASC"
	}
	db = db.Order(column + " " + direction)

	if query.Limit > 0 {
		db = db.Limit(query.Limit)
	}

	var recipes []*entities.Recipe
	err := db.
		Preload("SourceType").
		Preload("Tags").
		Preload("Categories").
		Preload("Photos", "is_primary = ?", true).
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// DeleteRecipe removes the recipe and its owned children. Tags and
// categories are shared, so only the association rows go.
func (r *recipeRepository) DeleteRecipe(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipe entities.Recipe
		if err := tx.First(&recipe, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrRecipeNotFound
			}
			return err
		}

		if err := tx.Model(&recipe).Association("Tags").Clear(); err != nil {
			return err
		}
		if err := tx.Model(&recipe).Association("Categories").Clear(); err != nil {
			return err
		}

		owned := []interface{}{
			&entities.RecipePhoto{},
			&entities.Step{},
			&entities.Ingredient{},
			&entities.CookingRecord{},
		}
		for _, model := range owned {
			if err := tx.Where("recipe_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&recipe).Error
	})
}

func (r *recipeRepository) GetCookingRecord(ctx context.Context, recipeID uint, date time.Time) (*entities.CookingRecord, error) {
	var record entities.CookingRecord
	err := r.db.WithContext(ctx).
		Where("recipe_id = ? AND cooking_date = ?", recipeID, date).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *recipeRepository) DeleteCookingRecord(ctx context.Context, recipeID uint, date time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record entities.CookingRecord
		err := tx.Where("recipe_id = ? AND cooking_date = ?", recipeID, date).First(&record).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrCookingRecordNotFound
			}
			return err
		}

		// photos documenting this occasion stay with the recipe, just unlinked
		if err := tx.Model(&entities.RecipePhoto{}).
			Where("cooking_record_id = ?", record.ID).
			Update("cooking_record_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&record).Error
	})
}

// CreatePhoto validates that a referenced cooking record actually belongs to
// the referenced recipe before persisting. A new primary photo demotes the
// recipe's previous one in the same transaction.
func (r *recipeRepository) CreatePhoto(ctx context.Context, photo *entities.RecipePhoto) (*entities.RecipePhoto, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipe entities.Recipe
		if err := tx.First(&recipe, photo.RecipeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrRecipeNotFound
			}
			return err
		}

		if photo.CookingRecordID != nil {
			var record entities.CookingRecord
			if err := tx.First(&record, *photo.CookingRecordID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return domain.ErrCookingRecordNotFound
				}
				return err
			}
			if record.RecipeID != photo.RecipeID {
				return domain.ErrPhotoRecordMismatch
			}
		}

		if photo.IsPrimary {
			if err := clearPrimaryPhoto(tx, photo.RecipeID); err != nil {
				return err
			}
		}
		return tx.Create(photo).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetPhoto(ctx, photo.ID)
}

func (r *recipeRepository) GetPhoto(ctx context.Context, id uint) (*entities.RecipePhoto, error) {
	var photo entities.RecipePhoto
	err := r.db.WithContext(ctx).Preload("PhotoType").First(&photo, id).Error
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

// UpdatePhoto merges only caller-supplied fields into the stored photo.
func (r *recipeRepository) UpdatePhoto(ctx context.Context, id uint, req domain.PhotoUpdateRequest) (*entities.RecipePhoto, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var photo entities.RecipePhoto
		if err := tx.First(&photo, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrPhotoNotFound
			}
			return err
		}

		updates := map[string]interface{}{}
		if req.PhotoTypeID != nil {
			updates["photo_type_id"] = *req.PhotoTypeID
		}
		if req.SortOrder != nil {
			updates["sort_order"] = *req.SortOrder
		}
		if req.AltText != nil {
			updates["alt_text"] = *req.AltText
		}
		if req.IsPrimary != nil {
			if *req.IsPrimary {
				if err := clearPrimaryPhoto(tx, photo.RecipeID); err != nil {
					return err
				}
			}
			updates["is_primary"] = *req.IsPrimary
		}
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&photo).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetPhoto(ctx, id)
}

func (r *recipeRepository) DeletePhoto(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entities.RecipePhoto{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrPhotoNotFound
	}
	return nil
}

func (r *recipeRepository) ListPhotosByCookingRecord(ctx context.Context, recipeID, recordID uint) ([]*entities.RecipePhoto, error) {
	var photos []*entities.RecipePhoto
	err := r.db.WithContext(ctx).
		Preload("PhotoType").
		Where("recipe_id = ? AND cooking_record_id = ?", recipeID, recordID).
		Order("sort_order ASC").
		Find(&photos).Error
	if err != nil {
		return nil, err
	}
	return photos, nil
}

func (r *recipeRepository) GetPhotoTypeByCode(ctx context.Context, code string) (*entities.PhotoType, error) {
	var photoType entities.PhotoType
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&photoType).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPhotoTypeNotFound
		}
		return nil, err
	}
	return &photoType, nil
}

// clearPrimaryPhoto keeps at most one primary photo per recipe.
func clearPrimaryPhoto(tx *gorm.DB, recipeID uint) error {
	return tx.Model(&entities.RecipePhoto{}).
		Where("recipe_id = ? AND is_primary = ?", recipeID, true).
		Update("is_primary", false).Error
}
