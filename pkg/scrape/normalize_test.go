package scrape

import (
	"testing"

	"cookmemo/domain"

	"github.com/stretchr/testify/require"
)

func TestParseStepMarker(t *testing.T) {
	cases := []struct {
		line string
		num  int
		text string
	}{
		{"1. 野菜を切る", 1, "野菜を切る"},
		{"2) 鍋で煮る", 2, "鍋で煮る"},
		{"(3) 盛り付ける", 3, "盛り付ける"},
		{"10. simmer", 10, "simmer"},
		{"野菜を切る", 0, "野菜を切る"},
		{"a. not numbered", 0, "a. not numbered"},
	}

	for _, tc := range cases {
		num, text := parseStepMarker(tc.line)
		require.Equal(t, tc.num, num, tc.line)
		require.Equal(t, tc.text, text, tc.line)
	}
}

func TestNormalizeStepNumbers(t *testing.T) {
	raw := domain.RawExtraction{
		Title: "肉じゃが",
		Steps: []domain.RawStep{
			{Text: "切る"},
			{Text: "2) 煮る"},
			{Text: "3. 盛る"},
		},
	}

	payload := Normalize(raw, "https://www.kurashiru.com/recipes/x")

	require.Len(t, payload.Steps, 3)
	require.Equal(t, []domain.PayloadStep{
		{StepNumber: 1, Instruction: "切る"},
		{StepNumber: 2, Instruction: "煮る"},
		{StepNumber: 3, Instruction: "盛る"},
	}, payload.Steps)
}

func TestNormalizeExplicitNumbersWin(t *testing.T) {
	raw := domain.RawExtraction{
		Steps: []domain.RawStep{
			{Number: 5, Text: "休ませる"},
		},
	}

	payload := Normalize(raw, "u")

	require.Equal(t, 5, payload.Steps[0].StepNumber)
	require.Equal(t, "休ませる", payload.Steps[0].Instruction)
}

func TestNormalizeIngredientOrder(t *testing.T) {
	raw := domain.RawExtraction{
		Title: "味噌汁",
		Ingredients: []domain.RawIngredient{
			{Name: "豆腐", Quantity: "1丁"},
			{Name: "わかめ"},
			{Name: "味噌", Quantity: "大さじ2"},
		},
	}

	payload := Normalize(raw, "https://www.sirogohan.com/recipe/misosiru")

	require.Equal(t, "https://www.sirogohan.com/recipe/misosiru", payload.SourceURL)
	require.Len(t, payload.Ingredients, 3)
	for i, ing := range payload.Ingredients {
		require.Equal(t, i, ing.SortOrder)
	}
	require.Equal(t, "1丁", payload.Ingredients[0].Quantity)
	require.Equal(t, "", payload.Ingredients[1].Quantity)
}
