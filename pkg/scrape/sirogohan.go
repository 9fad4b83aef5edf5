package scrape

import (
	"fmt"

	"cookmemo/domain"

	"github.com/PuerkitoBio/goquery"
)

// sirogohanStrategy extracts from sirogohan.com recipe pages. Ingredients are
// plain text (quantity folded into the row) and steps are prose paragraphs,
// sometimes carrying an inline step number.
type sirogohanStrategy struct{}

func NewSirogohanStrategy() Strategy {
	return sirogohanStrategy{}
}

func (sirogohanStrategy) Site() string { return "sirogohan.com" }

func (sirogohanStrategy) Extract(doc *goquery.Document) (domain.RawExtraction, error) {
	var raw domain.RawExtraction

	raw.Title = cleanText(doc.Find("h1").First().Text())
	if raw.Title == "" {
		return raw, fmt.Errorf("%w: sirogohan page has no title", domain.ErrExtractionFailed)
	}

	doc.Find(".material li").Each(func(_ int, sel *goquery.Selection) {
		text := cleanText(sel.Text())
		if text == "" {
			return
		}
		raw.Ingredients = append(raw.Ingredients, domain.RawIngredient{Name: text})
	})

	doc.Find(".howto p").Each(func(_ int, sel *goquery.Selection) {
		text := cleanText(sel.Text())
		if text == "" {
			return
		}
		raw.Steps = append(raw.Steps, domain.RawStep{Text: text})
	})

	if len(raw.Ingredients) == 0 && len(raw.Steps) == 0 {
		return raw, fmt.Errorf("%w: sirogohan page has no ingredients or steps", domain.ErrExtractionFailed)
	}

	raw.PhotoURL = extractPhotoURL(doc)
	return raw, nil
}
