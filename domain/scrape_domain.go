package domain

import (
	"errors"
)

var (
	// ErrUnsupportedSource is returned for hosts with no registered strategy.
	// ErrCookpadNotSupported is deliberately separate: the domain is
	// recognized, scraping it is just not supported.
	ErrUnsupportedSource   = errors.New("unsupported recipe source")
	ErrCookpadNotSupported = errors.New("cookpad recipes are not supported")
	ErrExtractionFailed    = errors.New("could not extract recipe data")
)

type (
	// RawIngredient is one ingredient row as a site strategy saw it.
	// Quantity is empty for sites that only expose free text.
	RawIngredient struct {
		Name     string
		Quantity string
	}

	// RawStep is one instruction as extracted. Number is 0 when the markup
	// carried no explicit step number; normalization assigns the position.
	RawStep struct {
		Number int
		Text   string
	}

	// RawExtraction is what a site strategy produces from one page. Optional
	// fields may be zero; Title and at least one of Ingredients/Steps are
	// required by the strategies themselves.
	RawExtraction struct {
		Title       string
		Description string
		Ingredients []RawIngredient
		Steps       []RawStep
		PhotoURL    string
	}

	PayloadIngredient struct {
		Name      string
		Quantity  string
		SortOrder int
	}

	PayloadStep struct {
		StepNumber  int
		Instruction string
	}

	// RecipePayload is the canonical creation payload. Every extraction path
	// (site scrape, photo OCR) funnels into this shape before persistence, so
	// the repository never knows which source produced the data.
	RecipePayload struct {
		Title       string
		Description string
		SourceURL   string
		Ingredients []PayloadIngredient
		Steps       []PayloadStep
		PhotoURL    string
	}
)
