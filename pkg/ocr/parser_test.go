package ocr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextSection(t *testing.T) {
	cases := []struct {
		name     string
		current  Section
		line     string
		want     Section
		isHeader bool
	}{
		{"ingredient header", SectionNone, "材料（2人分）", SectionIngredients, true},
		{"alternate ingredient header", SectionNone, "原材料", SectionIngredients, true},
		{"english ingredient header", SectionNone, "Ingredients", SectionIngredients, true},
		{"step header", SectionIngredients, "作り方", SectionSteps, true},
		{"alternate step header", SectionIngredients, "手順", SectionSteps, true},
		{"english step header", SectionNone, "Instructions", SectionSteps, true},
		{"plain line keeps section", SectionIngredients, "じゃがいも 2個", SectionIngredients, false},
		{"plain line before any header", SectionNone, "じゃがいも 2個", SectionNone, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, isHeader := NextSection(tc.current, tc.line)
			require.Equal(t, tc.want, got)
			require.Equal(t, tc.isHeader, isHeader)
		})
	}
}

func TestParseRecipeTextSectioned(t *testing.T) {
	text := `肉じゃが

材料（2人分）
じゃがいも 2個
豚こま切れ肉 150g
しょうゆ 大さじ2

作り方
1. じゃがいもを切る
2. 鍋で煮る
ただのメモ書き`

	payload := ParseRecipeText(text)

	require.Equal(t, "肉じゃが", payload.Title)

	require.Len(t, payload.Ingredients, 3)
	require.Equal(t, "じゃがいも 2個", payload.Ingredients[0].Name)
	require.Equal(t, 0, payload.Ingredients[0].SortOrder)
	require.Equal(t, 2, payload.Ingredients[2].SortOrder)

	// the memo line has no number and no action verb lead, so it is dropped
	require.Len(t, payload.Steps, 2)
	require.Equal(t, 1, payload.Steps[0].StepNumber)
	require.Equal(t, "じゃがいもを切る", payload.Steps[0].Instruction)
	require.Equal(t, 2, payload.Steps[1].StepNumber)
}

func TestParseRecipeTextActionVerbStep(t *testing.T) {
	text := `カレー
作り方
切った野菜を炒める
煮込む`

	payload := ParseRecipeText(text)

	require.Len(t, payload.Steps, 2)
	require.Equal(t, 1, payload.Steps[0].StepNumber)
	require.Equal(t, "切った野菜を炒める", payload.Steps[0].Instruction)
	require.Equal(t, 2, payload.Steps[1].StepNumber)
	require.Equal(t, "煮込む", payload.Steps[1].Instruction)
}

func TestParseRecipeTextFallback(t *testing.T) {
	// no section headers at all: each line is classified on its own
	text := `オムレツ
卵 3個
牛乳 50ml
混ぜて焼く
(2) 皿に盛る`

	payload := ParseRecipeText(text)

	require.Equal(t, "オムレツ", payload.Title)
	require.Len(t, payload.Ingredients, 2)
	require.Equal(t, "卵 3個", payload.Ingredients[0].Name)

	require.Len(t, payload.Steps, 2)
	require.Equal(t, "混ぜて焼く", payload.Steps[0].Instruction)
	require.Equal(t, 1, payload.Steps[0].StepNumber)
	require.Equal(t, "皿に盛る", payload.Steps[1].Instruction)
	require.Equal(t, 2, payload.Steps[1].StepNumber)
}

func TestParseRecipeTextEmpty(t *testing.T) {
	payload := ParseRecipeText("   \n  \n")
	require.Equal(t, "", payload.Title)
	require.Empty(t, payload.Ingredients)
	require.Empty(t, payload.Steps)
}

func TestParseRecipeTextTitleOnly(t *testing.T) {
	payload := ParseRecipeText("ただのタイトル")
	require.Equal(t, "ただのタイトル", payload.Title)
	require.Empty(t, payload.Ingredients)
	require.Empty(t, payload.Steps)
}
