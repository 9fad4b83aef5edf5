package ocr

import (
	"regexp"
	"strconv"
	"strings"

	"cookmemo/domain"
)

// Section is the state of the line scanner while walking recognized text top
// to bottom. Transitions happen only on header-keyword lines; whatever
// section is active when the lines run out is simply the last one.
type Section int

const (
	SectionNone Section = iota
	SectionIngredients
	SectionSteps
)

var (
	ingredientHeaders = []string{"材料", "原材料", "食材", "ingredients"}
	stepHeaders       = []string{"作り方", "手順", "調理法", "方法", "steps", "instructions"}

	// quantityPattern marks a line as ingredient-like: a number followed by
	// a cooking unit.
	quantityPattern = regexp.MustCompile(`[0-9]+(g|ml|個|本|枚|切れ|大さじ|小さじ|カップ|cc)`)

	// numberedLine marks "1. ..." and "(1) ..." style step lines.
	numberedLine = regexp.MustCompile(`^([0-9]+\.|\([0-9]+\))`)

	ocrStepMarker = regexp.MustCompile(`^\(?([0-9]+)[.)]\s*`)

	// Leading characters of common cooking verbs; a line starting with one
	// reads as an instruction even without a number.
	actionVerbLeads = "切焼煮炒混加入取置冷"
)

// NextSection is the pure transition function of the scanner. It returns the
// section after seeing line, and whether the line itself was a header (and is
// therefore consumed, not classified).
func NextSection(current Section, line string) (Section, bool) {
	if containsAny(line, ingredientHeaders) {
		return SectionIngredients, true
	}
	if containsAny(line, stepHeaders) {
		return SectionSteps, true
	}
	return current, false
}

func containsAny(line string, keywords []string) bool {
	lower := strings.ToLower(line)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func startsWithActionVerb(line string) bool {
	for _, r := range line {
		return strings.ContainsRune(actionVerbLeads, r)
	}
	return false
}

// ParseRecipeText structures recognized text into the canonical payload. The
// first line is taken as the title. If section scanning finds neither
// ingredients nor steps, all section state is discarded and a simpler
// per-line classification runs over the remaining lines instead.
func ParseRecipeText(text string) domain.RecipePayload {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return domain.RecipePayload{}
	}

	title := lines[0]
	var ingredients, steps []string

	section := SectionNone
	for _, line := range lines {
		next, isHeader := NextSection(section, line)
		section = next
		if isHeader {
			continue
		}

		switch section {
		case SectionIngredients:
			if quantityPattern.MatchString(line) {
				ingredients = append(ingredients, line)
			} else if len([]rune(line)) > 1 && !numberedLine.MatchString(line) {
				ingredients = append(ingredients, line)
			}
		case SectionSteps:
			if numberedLine.MatchString(line) || startsWithActionVerb(line) {
				steps = append(steps, line)
			}
		}
	}

	if len(ingredients) == 0 && len(steps) == 0 {
		return simpleFallback(title, lines[1:])
	}
	return buildPayload(title, ingredients, steps)
}

// simpleFallback classifies each line on its own, with no section context.
func simpleFallback(title string, lines []string) domain.RecipePayload {
	var ingredients, steps []string
	for _, line := range lines {
		switch {
		case quantityPattern.MatchString(line):
			ingredients = append(ingredients, line)
		case startsWithActionVerb(line):
			steps = append(steps, line)
		case numberedLine.MatchString(line):
			steps = append(steps, line)
		}
	}
	return buildPayload(title, ingredients, steps)
}

func buildPayload(title string, ingredients, steps []string) domain.RecipePayload {
	payload := domain.RecipePayload{Title: title}

	for i, name := range ingredients {
		payload.Ingredients = append(payload.Ingredients, domain.PayloadIngredient{
			Name:      name,
			SortOrder: i,
		})
	}

	for i, line := range steps {
		number, instruction := parseOCRStepMarker(line)
		if number == 0 {
			number = i + 1
		}
		payload.Steps = append(payload.Steps, domain.PayloadStep{
			StepNumber:  number,
			Instruction: instruction,
		})
	}
	return payload
}

func parseOCRStepMarker(line string) (int, string) {
	m := ocrStepMarker.FindStringSubmatch(line)
	if m == nil {
		return 0, line
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, line
	}
	return n, strings.TrimSpace(line[len(m[0]):])
}
