package vision

import (
	"context"

	"github.com/otiai10/gosseract/v2"
)

// TesseractRecognizer runs Tesseract over a preprocessed image. Language
// defaults to Japanese; page segmentation assumes a single uniform block of
// text, which fits photographed recipe pages well.
type TesseractRecognizer struct {
	Language string
	PSM      gosseract.PageSegMode
}

func NewTesseractRecognizer(language string) *TesseractRecognizer {
	if language == "" {
		language = "jpn"
	}
	return &TesseractRecognizer{
		Language: language,
		PSM:      gosseract.PSM_SINGLE_BLOCK,
	}
}

func (r *TesseractRecognizer) Recognize(ctx context.Context, image []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(r.Language); err != nil {
		return "", err
	}
	if err := client.SetPageSegMode(r.PSM); err != nil {
		return "", err
	}
	if err := client.SetImageFromBytes(image); err != nil {
		return "", err
	}
	return client.Text()
}
