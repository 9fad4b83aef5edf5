package vision

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// PreprocessOptions tune the cleanup pipeline. The defaults are what worked
// for photographed cookbook pages; none of the values are load-bearing.
type PreprocessOptions struct {
	MedianKernel   int
	ThresholdBlock int
	ThresholdC     float32
	CloseKernel    int
}

func DefaultPreprocessOptions() PreprocessOptions {
	return PreprocessOptions{
		MedianKernel:   3,
		ThresholdBlock: 11,
		ThresholdC:     2,
		CloseKernel:    1,
	}
}

// Preprocessor cleans up a photo for text recognition: grayscale, median
// denoise, adaptive binarization, then a morphological close to solidify
// glyph strokes.
type Preprocessor struct {
	opts PreprocessOptions
}

func NewPreprocessor(opts PreprocessOptions) *Preprocessor {
	return &Preprocessor{opts: opts}
}

func (p *Preprocessor) Process(data []byte) ([]byte, error) {
	img, err := gocv.IMDecode(data, gocv.IMReadColor)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	defer img.Close()
	if img.Empty() {
		return nil, fmt.Errorf("decode image: empty matrix")
	}

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(img, &gray, gocv.ColorBGRToGray)

	denoised := gocv.NewMat()
	defer denoised.Close()
	gocv.MedianBlur(gray, &denoised, p.opts.MedianKernel)

	binary := gocv.NewMat()
	defer binary.Close()
	gocv.AdaptiveThreshold(denoised, &binary, 255,
		gocv.AdaptiveThresholdGaussian, gocv.ThresholdBinary,
		p.opts.ThresholdBlock, p.opts.ThresholdC)

	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(p.opts.CloseKernel, p.opts.CloseKernel))
	defer kernel.Close()

	closed := gocv.NewMat()
	defer closed.Close()
	gocv.MorphologyEx(binary, &closed, gocv.MorphClose, kernel)

	buf, err := gocv.IMEncode(gocv.PNGFileExt, closed)
	if err != nil {
		return nil, fmt.Errorf("encode processed image: %w", err)
	}
	defer buf.Close()
	out := make([]byte, len(buf.GetBytes()))
	copy(out, buf.GetBytes())
	return out, nil
}
