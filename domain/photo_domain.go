package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessUploadPhoto = "photo uploaded successfully"
	MessageSuccessUpdatePhoto = "photo updated successfully"
	MessageSuccessDeletePhoto = "photo deleted successfully"
	MessageSuccessListPhotos  = "success get photos"

	MessageFailedUploadPhoto = "failed to upload photo"
	MessageFailedUpdatePhoto = "failed to update photo"
	MessageFailedDeletePhoto = "failed to delete photo"
	MessageFailedListPhotos  = "failed to get photos"

	ErrPhotoNotFound       = errors.New("photo not found")
	ErrPhotoTypeNotFound   = errors.New("photo type not found")
	ErrPhotoRecordMismatch = errors.New("cooking record does not belong to this recipe")
)

type (
	PhotoUploadRequest struct {
		File        *multipart.FileHeader `validate:"required"`
		PhotoTypeID *uint                 `form:"photo_type_id"`
		IsPrimary   bool                  `form:"is_primary"`
		SortOrder   int                   `form:"sort_order"`
		AltText     string                `form:"alt_text" validate:"omitempty,max=255"`
	}

	// PhotoUpdateRequest is a partial update: only non-nil fields overwrite.
	PhotoUpdateRequest struct {
		PhotoTypeID *uint   `json:"photo_type_id,omitempty"`
		IsPrimary   *bool   `json:"is_primary,omitempty"`
		SortOrder   *int    `json:"sort_order,omitempty"`
		AltText     *string `json:"alt_text,omitempty" validate:"omitempty,max=255"`
	}
)
