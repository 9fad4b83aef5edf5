package presenters

import (
	"errors"

	"cookmemo/domain"

	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data interface{}, code int, message string) error {
	return c.Status(code).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, code int, message string, err error) error {
	res := Response{
		Success: false,
		Message: message,
	}
	if err != nil {
		res.Error = err.Error()
	}
	return c.Status(code).JSON(res)
}

// StatusFromError maps domain errors onto HTTP status codes so handlers
// stay free of per-error switch statements.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrCookingRecordNotFound),
		errors.Is(err, domain.ErrTagNotFound),
		errors.Is(err, domain.ErrPhotoNotFound),
		errors.Is(err, domain.ErrSourceTypeNotFound),
		errors.Is(err, domain.ErrPhotoTypeNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrCookingRecordExists),
		errors.Is(err, domain.ErrTagNameTaken),
		errors.Is(err, domain.ErrDuplicateTag):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrUnsupportedSource),
		errors.Is(err, domain.ErrCookpadNotSupported),
		errors.Is(err, domain.ErrExtractionFailed):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrTagNotAssociated),
		errors.Is(err, domain.ErrPhotoRecordMismatch),
		errors.Is(err, domain.ErrFileTypeNotAllowed),
		errors.Is(err, domain.ErrFileTooLarge):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
