package scrape

import (
	"regexp"
	"strconv"
	"strings"

	"cookmemo/domain"
)

// stepMarker matches the inline numbering formats "<n>. text", "<n>) text"
// and "(<n>) text".
var stepMarker = regexp.MustCompile(`^\(?([0-9]+)[.)]\s*`)

// parseStepMarker splits a step line into its explicit number and remaining
// text. Lines without a recognized marker return number 0.
func parseStepMarker(line string) (int, string) {
	m := stepMarker.FindStringSubmatch(line)
	if m == nil {
		return 0, line
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, line
	}
	return n, strings.TrimSpace(line[len(m[0]):])
}

// Normalize maps a heterogeneous per-site extraction onto the canonical
// creation payload. Free-text ingredients become name-only records keeping
// the display order; steps without an explicit inline number are numbered by
// their 1-based position.
func Normalize(raw domain.RawExtraction, sourceURL string) domain.RecipePayload {
	payload := domain.RecipePayload{
		Title:       raw.Title,
		Description: raw.Description,
		SourceURL:   sourceURL,
		PhotoURL:    raw.PhotoURL,
	}

	for i, ing := range raw.Ingredients {
		payload.Ingredients = append(payload.Ingredients, domain.PayloadIngredient{
			Name:      ing.Name,
			Quantity:  ing.Quantity,
			SortOrder: i,
		})
	}

	for i, step := range raw.Steps {
		number := step.Number
		text := step.Text
		if number == 0 {
			number, text = parseStepMarker(text)
		}
		if number == 0 {
			number = i + 1
		}
		payload.Steps = append(payload.Steps, domain.PayloadStep{
			StepNumber:  number,
			Instruction: text,
		})
	}

	return payload
}
