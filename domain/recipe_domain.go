package domain

import (
	"errors"
)

var (
	MessageSuccessScrapeRecipe    = "recipe saved from source url"
	MessageSuccessExtractRecipe   = "recipe extracted from photo"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessSearchRecipes   = "success search recipes"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessAddRecord       = "cooking record added successfully"
	MessageSuccessDeleteRecord    = "cooking record deleted successfully"

	MessageFailedScrapeRecipe    = "failed to save recipe from source url"
	MessageFailedExtractRecipe   = "failed to extract recipe from photo"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedSearchRecipes   = "failed to search recipes"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedAddRecord       = "failed to add cooking record"
	MessageFailedDeleteRecord    = "failed to delete cooking record"

	ErrRecipeNotFound        = errors.New("recipe not found")
	ErrCookingRecordNotFound = errors.New("cooking record not found")
	ErrCookingRecordExists   = errors.New("cooking record already exists for this date")
	ErrSourceTypeNotFound    = errors.New("source type not found")
)

type (
	ScrapeRecipeRequest struct {
		SourceURL   string `json:"source_url" validate:"required,url"`
		CookingDate string `json:"cooking_date" validate:"required"`
	}

	CookingRecordCreateRequest struct {
		CookingDate string `json:"cooking_date" validate:"required"`
		Rating      *int   `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
		Memo        string `json:"memo,omitempty"`
		Cost        *int   `json:"cost,omitempty" validate:"omitempty,min=0"`
		Occasion    string `json:"occasion,omitempty" validate:"omitempty,max=100"`
	}

	// RecipeSearchQuery composes the filtered, sorted, limited recipe listing.
	// TagIDs use AND semantics: only recipes carrying every tag match.
	RecipeSearchQuery struct {
		TagIDs    []uint
		Limit     int
		SortBy    string // "id" (default) or "created_at"
		SortOrder string // "asc" or "desc" (default)
	}
)
