package tag

import (
	"context"

	"cookmemo/domain"
	"cookmemo/entities"
)

type (
	TagService interface {
		GetTags(ctx context.Context) ([]*entities.Tag, error)
		GetTag(ctx context.Context, id uint) (*entities.Tag, error)
		CreateTag(ctx context.Context, req domain.TagCreateRequest) (*entities.Tag, error)
		UpdateTag(ctx context.Context, id uint, req domain.TagUpdateRequest) (*entities.Tag, error)
		DeleteTag(ctx context.Context, id uint) error
		GrantTag(ctx context.Context, recipeID uint, req domain.GrantTagRequest) error
		RevokeTag(ctx context.Context, recipeID, tagID uint) error
	}

	tagService struct {
		tagRepository TagRepository
	}
)

func NewTagService(tagRepository TagRepository) TagService {
	return &tagService{tagRepository: tagRepository}
}

func (s *tagService) GetTags(ctx context.Context) ([]*entities.Tag, error) {
	return s.tagRepository.List(ctx)
}

func (s *tagService) GetTag(ctx context.Context, id uint) (*entities.Tag, error) {
	return s.tagRepository.GetByID(ctx, id)
}

func (s *tagService) CreateTag(ctx context.Context, req domain.TagCreateRequest) (*entities.Tag, error) {
	return s.tagRepository.Create(ctx, &entities.Tag{Name: req.Name})
}

func (s *tagService) UpdateTag(ctx context.Context, id uint, req domain.TagUpdateRequest) (*entities.Tag, error) {
	return s.tagRepository.Update(ctx, id, req.Name)
}

func (s *tagService) DeleteTag(ctx context.Context, id uint) error {
	return s.tagRepository.Delete(ctx, id)
}

func (s *tagService) GrantTag(ctx context.Context, recipeID uint, req domain.GrantTagRequest) error {
	return s.tagRepository.Grant(ctx, recipeID, req.TagID)
}

func (s *tagService) RevokeTag(ctx context.Context, recipeID, tagID uint) error {
	return s.tagRepository.Revoke(ctx, recipeID, tagID)
}
