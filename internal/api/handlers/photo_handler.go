package handlers

import (
	"strconv"

	"cookmemo/domain"
	"cookmemo/internal/api/presenters"
	"cookmemo/pkg/recipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PhotoHandler interface {
		UploadPhoto(c *fiber.Ctx) error
		UpdatePhoto(c *fiber.Ctx) error
		DeletePhoto(c *fiber.Ctx) error
		ListRecordPhotos(c *fiber.Ctx) error
	}

	photoHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewPhotoHandler(recipeService recipe.RecipeService, validator *validator.Validate) PhotoHandler {
	return &photoHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *photoHandler) UploadPhoto(c *fiber.Ctx) error {
	recipeID, err := c.ParamsInt("id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadPhoto, err)
	}

	file, err := c.FormFile("photo")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req := domain.PhotoUploadRequest{
		File:      file,
		IsPrimary: c.FormValue("is_primary") == "true",
		AltText:   c.FormValue("alt_text"),
	}
	if raw := c.FormValue("sort_order"); raw != "" {
		sortOrder, err := strconv.Atoi(raw)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadPhoto, err)
		}
		req.SortOrder = sortOrder
	}
	if raw := c.FormValue("photo_type_id"); raw != "" {
		typeID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadPhoto, err)
		}
		id := uint(typeID)
		req.PhotoTypeID = &id
	}

	// record-scoped uploads carry the id in the path, others in the form
	var recordID *uint
	if raw := c.Params("recordId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadPhoto, err)
		}
		id := uint(parsed)
		recordID = &id
	} else if raw := c.FormValue("cooking_record_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadPhoto, err)
		}
		id := uint(parsed)
		recordID = &id
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadPhoto, err)
	}

	res, err := h.recipeService.UploadPhoto(c.Context(), uint(recipeID), recordID, req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedUploadPhoto, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessUploadPhoto)
}

func (h *photoHandler) UpdatePhoto(c *fiber.Ctx) error {
	photoID, err := c.ParamsInt("id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePhoto, err)
	}

	req := new(domain.PhotoUpdateRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePhoto, err)
	}

	res, err := h.recipeService.UpdatePhoto(c.Context(), uint(photoID), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedUpdatePhoto, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdatePhoto)
}

func (h *photoHandler) DeletePhoto(c *fiber.Ctx) error {
	photoID, err := c.ParamsInt("id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeletePhoto, err)
	}

	if err := h.recipeService.DeletePhoto(c.Context(), uint(photoID)); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedDeletePhoto, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeletePhoto)
}

func (h *photoHandler) ListRecordPhotos(c *fiber.Ctx) error {
	recipeID, err := c.ParamsInt("id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedListPhotos, err)
	}
	recordID, err := c.ParamsInt("recordId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedListPhotos, err)
	}

	res, err := h.recipeService.ListRecordPhotos(c.Context(), uint(recipeID), uint(recordID))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedListPhotos, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessListPhotos)
}
