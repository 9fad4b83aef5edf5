package scrape

import (
	"fmt"

	"cookmemo/domain"

	"github.com/PuerkitoBio/goquery"
)

// kurashiruStrategy extracts from kurashiru.com recipe pages. Kurashiru
// exposes structured ingredient rows (name and quantity in separate nodes)
// with group-header rows interleaved for visual sectioning.
type kurashiruStrategy struct{}

func NewKurashiruStrategy() Strategy {
	return kurashiruStrategy{}
}

func (kurashiruStrategy) Site() string { return "kurashiru.com" }

func (kurashiruStrategy) Extract(doc *goquery.Document) (domain.RawExtraction, error) {
	var raw domain.RawExtraction

	raw.Title = cleanText(doc.Find("h1.title").First().Text())
	if raw.Title == "" {
		raw.Title = cleanText(doc.Find("h1").First().Text())
	}
	if raw.Title == "" {
		return raw, fmt.Errorf("%w: kurashiru page has no title", domain.ErrExtractionFailed)
	}

	raw.Description = cleanText(doc.Find(".description").First().Text())

	doc.Find("li.ingredient-list-item").Each(func(_ int, sel *goquery.Selection) {
		// group headers are presentation rows, never data
		if sel.HasClass("group-title") {
			return
		}
		name := cleanText(sel.Find(".ingredient-title").Text())
		if name == "" {
			return
		}
		raw.Ingredients = append(raw.Ingredients, domain.RawIngredient{
			Name:     name,
			Quantity: cleanText(sel.Find(".ingredient-quantity-amount").Text()),
		})
	})

	doc.Find("li.instruction-list-item").Each(func(_ int, sel *goquery.Selection) {
		text := cleanText(sel.Text())
		if text == "" {
			return
		}
		raw.Steps = append(raw.Steps, domain.RawStep{Text: text})
	})

	if len(raw.Ingredients) == 0 && len(raw.Steps) == 0 {
		return raw, fmt.Errorf("%w: kurashiru page has no ingredients or steps", domain.ErrExtractionFailed)
	}

	raw.PhotoURL = extractPhotoURL(doc)
	return raw, nil
}
