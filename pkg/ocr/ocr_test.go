package ocr

import (
	"context"
	"errors"
	"testing"

	"cookmemo/domain"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubPreprocessor struct {
	out []byte
	err error
}

func (s stubPreprocessor) Process(image []byte) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.out != nil {
		return s.out, nil
	}
	return image, nil
}

type stubRecognizer struct {
	text string
	err  error
	got  []byte
}

func (s *stubRecognizer) Recognize(_ context.Context, image []byte) (string, error) {
	s.got = image
	return s.text, s.err
}

func TestExtractFromImage(t *testing.T) {
	rec := &stubRecognizer{text: "親子丼\n材料\n鶏もも肉 200g\n卵 2個\n作り方\n1. 鶏肉を煮る\n2. 卵でとじる"}
	extractor := NewExtractor(stubPreprocessor{out: []byte("cleaned")}, rec, zap.NewNop())

	payload, err := extractor.ExtractFromImage(context.Background(), []byte("raw image"))
	require.NoError(t, err)

	// the recognizer must see the preprocessed bytes, not the raw upload
	require.Equal(t, []byte("cleaned"), rec.got)

	require.Equal(t, "親子丼", payload.Title)
	require.Len(t, payload.Ingredients, 2)
	require.Len(t, payload.Steps, 2)
	require.Equal(t, "", payload.PhotoURL)
}

func TestExtractFromImageNoText(t *testing.T) {
	extractor := NewExtractor(stubPreprocessor{}, &stubRecognizer{text: "  \n "}, zap.NewNop())

	_, err := extractor.ExtractFromImage(context.Background(), []byte("img"))
	require.ErrorIs(t, err, domain.ErrExtractionFailed)
}

func TestExtractFromImageTitleOnly(t *testing.T) {
	// a page where only the title line is readable still yields a recipe
	extractor := NewExtractor(stubPreprocessor{}, &stubRecognizer{text: "ただのタイトル"}, zap.NewNop())

	payload, err := extractor.ExtractFromImage(context.Background(), []byte("img"))
	require.NoError(t, err)
	require.Equal(t, "ただのタイトル", payload.Title)
	require.Empty(t, payload.Ingredients)
	require.Empty(t, payload.Steps)
}

func TestExtractFromImagePreprocessError(t *testing.T) {
	boom := errors.New("decode failed")
	extractor := NewExtractor(stubPreprocessor{err: boom}, &stubRecognizer{}, zap.NewNop())

	_, err := extractor.ExtractFromImage(context.Background(), []byte("img"))
	require.ErrorIs(t, err, boom)
}

func TestExtractFromImageRecognizeError(t *testing.T) {
	boom := errors.New("tesseract unavailable")
	extractor := NewExtractor(stubPreprocessor{}, &stubRecognizer{err: boom}, zap.NewNop())

	_, err := extractor.ExtractFromImage(context.Background(), []byte("img"))
	require.ErrorIs(t, err, boom)
}
