package tag

import (
	"context"
	"errors"

	"cookmemo/domain"
	"cookmemo/entities"

	"gorm.io/gorm"
)

type (
	TagRepository interface {
		List(ctx context.Context) ([]*entities.Tag, error)
		GetByID(ctx context.Context, id uint) (*entities.Tag, error)
		Create(ctx context.Context, tag *entities.Tag) (*entities.Tag, error)
		Update(ctx context.Context, id uint, name string) (*entities.Tag, error)
		Delete(ctx context.Context, id uint) error
		Grant(ctx context.Context, recipeID, tagID uint) error
		Revoke(ctx context.Context, recipeID, tagID uint) error
	}

	tagRepository struct {
		db *gorm.DB
	}
)

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) List(ctx context.Context) ([]*entities.Tag, error) {
	var tags []*entities.Tag
	err := r.db.WithContext(ctx).Order("name ASC").Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *tagRepository) GetByID(ctx context.Context, id uint) (*entities.Tag, error) {
	var tag entities.Tag
	err := r.db.WithContext(ctx).First(&tag, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTagNotFound
		}
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) Create(ctx context.Context, tag *entities.Tag) (*entities.Tag, error) {
	err := r.db.WithContext(ctx).Create(tag).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrTagNameTaken
		}
		return nil, err
	}
	return tag, nil
}

func (r *tagRepository) Update(ctx context.Context, id uint, name string) (*entities.Tag, error) {
	var tag entities.Tag
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&tag, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrTagNotFound
			}
			return err
		}
		if err := tx.Model(&tag).Update("name", name).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrTagNameTaken
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// Delete removes the tag and its links to recipes. Recipes themselves are
// untouched.
func (r *tagRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tag entities.Tag
		if err := tx.First(&tag, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrTagNotFound
			}
			return err
		}
		if err := tx.Model(&tag).Association("Recipes").Clear(); err != nil {
			return err
		}
		return tx.Delete(&tag).Error
	})
}

func (r *tagRepository) Grant(ctx context.Context, recipeID, tagID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipe entities.Recipe
		if err := tx.First(&recipe, recipeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrRecipeNotFound
			}
			return err
		}
		var tag entities.Tag
		if err := tx.First(&tag, tagID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrTagNotFound
			}
			return err
		}

		var count int64
		if err := tx.Table("recipe_tags").
			Where("recipe_id = ? AND tag_id = ?", recipeID, tagID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrDuplicateTag
		}

		return tx.Model(&recipe).Association("Tags").Append(&tag)
	})
}

func (r *tagRepository) Revoke(ctx context.Context, recipeID, tagID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipe entities.Recipe
		if err := tx.First(&recipe, recipeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrRecipeNotFound
			}
			return err
		}
		var tag entities.Tag
		if err := tx.First(&tag, tagID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrTagNotFound
			}
			return err
		}

		var count int64
		if err := tx.Table("recipe_tags").
			Where("recipe_id = ? AND tag_id = ?", recipeID, tagID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domain.ErrTagNotAssociated
		}

		return tx.Model(&recipe).Association("Tags").Delete(&tag)
	})
}
