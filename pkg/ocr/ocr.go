package ocr

import (
	"context"
	"fmt"
	"strings"

	"cookmemo/domain"

	"go.uber.org/zap"
)

type (
	// Preprocessor turns raw image bytes into a cleaned-up encoded image that
	// maximizes text recognition accuracy.
	Preprocessor interface {
		Process(image []byte) ([]byte, error)
	}

	// Recognizer runs text recognition over a preprocessed image and returns
	// the raw multi-line string.
	Recognizer interface {
		Recognize(ctx context.Context, image []byte) (string, error)
	}

	// Extractor is the photo-extraction pipeline: preprocess, recognize,
	// then segment the text into the canonical recipe payload.
	Extractor struct {
		pre Preprocessor
		rec Recognizer
		log *zap.Logger
	}
)

func NewExtractor(pre Preprocessor, rec Recognizer, log *zap.Logger) *Extractor {
	return &Extractor{pre: pre, rec: rec, log: log}
}

// ExtractFromImage produces the canonical recipe payload from a photographed
// cookbook page. The payload carries no photo URL: the photo is the source.
func (e *Extractor) ExtractFromImage(ctx context.Context, image []byte) (domain.RecipePayload, error) {
	processed, err := e.pre.Process(image)
	if err != nil {
		return domain.RecipePayload{}, fmt.Errorf("preprocess image: %w", err)
	}

	text, err := e.rec.Recognize(ctx, processed)
	if err != nil {
		return domain.RecipePayload{}, fmt.Errorf("recognize text: %w", err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.RecipePayload{}, fmt.Errorf("%w: no text recognized in image", domain.ErrExtractionFailed)
	}

	payload := ParseRecipeText(text)
	if payload.Title == "" && len(payload.Ingredients) == 0 && len(payload.Steps) == 0 {
		return domain.RecipePayload{}, fmt.Errorf("%w: recognized text contains no recipe data", domain.ErrExtractionFailed)
	}

	e.log.Info("extracted recipe from photo",
		zap.String("title", payload.Title),
		zap.Int("ingredients", len(payload.Ingredients)),
		zap.Int("steps", len(payload.Steps)),
	)
	return payload, nil
}
