package scrape

import (
	"fmt"

	"cookmemo/domain"

	"github.com/PuerkitoBio/goquery"
)

// delishKitchenStrategy extracts from delishkitchen.tv recipe pages. The site
// is video-first, so the representative photo is almost always a poster frame.
type delishKitchenStrategy struct{}

func NewDelishKitchenStrategy() Strategy {
	return delishKitchenStrategy{}
}

func (delishKitchenStrategy) Site() string { return "delishkitchen.tv" }

func (delishKitchenStrategy) Extract(doc *goquery.Document) (domain.RawExtraction, error) {
	var raw domain.RawExtraction

	raw.Title = cleanText(doc.Find("h1.title").First().Text())
	if raw.Title == "" {
		raw.Title = cleanText(doc.Find("h1").First().Text())
	}
	if raw.Title == "" {
		return raw, fmt.Errorf("%w: delishkitchen page has no title", domain.ErrExtractionFailed)
	}

	raw.Description = cleanText(doc.Find(".lead-text").First().Text())

	doc.Find("li.ingredient").Each(func(_ int, sel *goquery.Selection) {
		name := cleanText(sel.Find(".ingredient-name").Text())
		if name == "" {
			return
		}
		raw.Ingredients = append(raw.Ingredients, domain.RawIngredient{
			Name:     name,
			Quantity: cleanText(sel.Find(".ingredient-serving").Text()),
		})
	})

	steps := doc.Find("li.step p.step-desc")
	if steps.Length() == 0 {
		steps = doc.Find("p.step-desc")
	}
	steps.Each(func(_ int, sel *goquery.Selection) {
		text := cleanText(sel.Text())
		if text == "" {
			return
		}
		raw.Steps = append(raw.Steps, domain.RawStep{Text: text})
	})

	if len(raw.Ingredients) == 0 && len(raw.Steps) == 0 {
		return raw, fmt.Errorf("%w: delishkitchen page has no ingredients or steps", domain.ErrExtractionFailed)
	}

	raw.PhotoURL = extractPhotoURL(doc)
	return raw, nil
}
