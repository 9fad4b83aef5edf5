package domain

import (
	"errors"
)

var (
	MessageSuccessGetTags   = "success get tags"
	MessageSuccessCreateTag = "tag created successfully"
	MessageSuccessUpdateTag = "tag updated successfully"
	MessageSuccessDeleteTag = "tag deleted successfully"
	MessageSuccessGrantTag  = "tag added to recipe"
	MessageSuccessRevokeTag = "tag removed from recipe"

	MessageFailedGetTags   = "failed to get tags"
	MessageFailedCreateTag = "failed to create tag"
	MessageFailedUpdateTag = "failed to update tag"
	MessageFailedDeleteTag = "failed to delete tag"
	MessageFailedGrantTag  = "failed to add tag to recipe"
	MessageFailedRevokeTag = "failed to remove tag from recipe"

	ErrTagNotFound      = errors.New("tag not found")
	ErrTagNameTaken     = errors.New("tag name already exists")
	ErrDuplicateTag     = errors.New("recipe already has this tag")
	ErrTagNotAssociated = errors.New("recipe does not have this tag")
)

type (
	TagCreateRequest struct {
		Name string `json:"name" validate:"required,max=50"`
	}

	TagUpdateRequest struct {
		Name string `json:"name" validate:"required,max=50"`
	}

	GrantTagRequest struct {
		TagID uint `json:"tag_id" validate:"required"`
	}
)
