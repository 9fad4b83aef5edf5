package recipe

import (
	"context"
	"fmt"
	"testing"
	"time"

	migration "cookmemo/cmd/database/migrate"
	"cookmemo/domain"
	"cookmemo/entities"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, migration.Migrate(db))
	return db
}

func samplePayload(sourceURL string) domain.RecipePayload {
	return domain.RecipePayload{
		Title:       "肉じゃが",
		Description: "定番の煮物",
		SourceURL:   sourceURL,
		PhotoURL:    "https://img.example/nikujaga.jpg",
		Ingredients: []domain.PayloadIngredient{
			{Name: "じゃがいも", Quantity: "2個", SortOrder: 0},
			{Name: "豚こま切れ肉", Quantity: "150g", SortOrder: 1},
		},
		Steps: []domain.PayloadStep{
			{StepNumber: 1, Instruction: "じゃがいもを切る"},
			{StepNumber: 2, Instruction: "鍋で煮る"},
		},
	}
}

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCreateFromPayloadFullGraph(t *testing.T) {
	db := setupDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	created, err := repo.CreateFromPayload(ctx, samplePayload("https://www.kurashiru.com/recipes/a"), entities.SourceTypeWeb, date("2026-08-30"))
	require.NoError(t, err)

	require.Equal(t, "肉じゃが", created.Title)
	require.NotNil(t, created.SourceType)
	require.Equal(t, entities.SourceTypeWeb, created.SourceType.Code)

	require.Len(t, created.Ingredients, 2)
	require.Equal(t, "じゃがいも", created.Ingredients[0].Name)

	require.Len(t, created.Steps, 2)
	require.Equal(t, 1, created.Steps[0].StepNumber)

	require.Len(t, created.Photos, 1)
	require.True(t, created.Photos[0].IsPrimary)
	require.Equal(t, entities.PhotoTypeScraped, created.Photos[0].PhotoType.Code)

	require.Len(t, created.CookingRecords, 1)
	require.Equal(t, date("2026-08-30"), created.CookingRecords[0].CookingDate.UTC())
}

func TestCreateFromPayloadNoPhoto(t *testing.T) {
	db := setupDB(t)
	repo := NewRecipeRepository(db)

	payload := samplePayload("https://www.sirogohan.com/recipe/x")
	payload.PhotoURL = ""

	created, err := repo.CreateFromPayload(context.Background(), payload, entities.SourceTypeBook, date("2026-01-02"))
	require.NoError(t, err)
	require.Empty(t, created.Photos)
	require.Equal(t, entities.SourceTypeBook, created.SourceType.Code)
}

func TestCreateFromPayloadUnknownSourceType(t *testing.T) {
	db := setupDB(t)
	repo := NewRecipeRepository(db)

	_, err := repo.CreateFromPayload(context.Background(), samplePayload("u"), "nonsense", date("2026-01-02"))
	require.ErrorIs(t, err, domain.ErrSourceTypeNotFound)
}

func TestCreateFromPayloadRollsBackOnDuplicateStep(t *testing.T) {
	db := setupDB(t)
	repo := NewRecipeRepository(db)

	payload := samplePayload("https://www.kurashiru.com/recipes/dup")
	payload.Steps = []domain.PayloadStep{
		{StepNumber: 1, Instruction: "切る"},
		{StepNumber: 1, Instruction: "煮る"},
	}

	_, err := repo.CreateFromPayload(context.Background(), payload, entities.SourceTypeWeb, date("2026-03-03"))
	require.Error(t, err)

	// the failed attempt must leave nothing behind
	var recipes, ingredients, records int64
	require.NoError(t, db.Model(&entities.Recipe{}).Count(&recipes).Error)
	require.NoError(t, db.Model(&entities.Ingredient{}).Count(&ingredients).Error)
	require.NoError(t, db.Model(&entities.CookingRecord{}).Count(&records).Error)
	require.Zero(t, recipes)
	require.Zero(t, ingredients)
	require.Zero(t, records)
}

func TestFindBySourceURL(t *testing.T) {
	db := setupDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	found, err := repo.FindBySourceURL(ctx, "https://www.kurashiru.com/recipes/a")
	require.NoError(t, err)
	require.Nil(t, found)

	created, err := repo.CreateFromPayload(ctx, samplePayload("https://www.kurashiru.com/recipes/a"), entities.SourceTypeWeb, date("2026-08-30"))
	require.NoError(t, err)

	found, err = repo.FindBySourceURL(ctx, "https://www.kurashiru.com/recipes/a")
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, created.ID, found.ID)
}

func TestRegisterCookingOccurrence(t *testing.T) {
	db := setupDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	created, err := repo.CreateFromPayload(ctx, samplePayload("u"), entities.SourceTypeWeb, date("2026-08-01"))
	require.NoError(t, err)

	rating := 4
	record, err := repo.RegisterCookingOccurrence(ctx, &entities.CookingRecord{
		RecipeID:    created.ID,
		CookingDate: date("2026-08-02"),
		Rating:      &rating,
		Memo:        "少し薄味",
	})
	require.NoError(t, err)
	require.NotZero(t, record.ID)

	// same recipe, same date
	_, err = repo.RegisterCookingOccurrence(ctx, &entities.CookingRecord{
		RecipeID:    created.ID,
		CookingDate: date("2026-08-02"),
	})
	require.ErrorIs(t, err, domain.ErrCookingRecordExists)

	// unknown recipe
	_, err = repo.RegisterCookingOccurrence(ctx, &entities.CookingRecord{
		RecipeID:    9999,
		CookingDate: date("2026-08-03"),
	})
	require.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func seedTaggedRecipes(t *testing.T, db *gorm.DB, repo RecipeRepository) (r1, r2, r3 *entities.Recipe, tagA, tagB, tagC *entities.Tag) {
	t.Helper()
	ctx := context.Background()

	var err error
	r1, err = repo.CreateFromPayload(ctx, samplePayload("u1"), entities.SourceTypeWeb, date("2026-01-01"))
	require.NoError(t, err)
	r2, err = repo.CreateFromPayload(ctx, samplePayload("u2"), entities.SourceTypeWeb, date("2026-01-02"))
	require.NoError(t, err)
	r3, err = repo.CreateFromPayload(ctx, samplePayload("u3"), entities.SourceTypeWeb, date("2026-01-03"))
	require.NoError(t, err)

	tagA = &entities.Tag{Name: "和食"}
	tagB = &entities.Tag{Name: "簡単"}
	tagC = &entities.Tag{Name: "お弁当"}
	require.NoError(t, db.Create(tagA).Error)
	require.NoError(t, db.Create(tagB).Error)
	require.NoError(t, db.Create(tagC).Error)

	require.NoError(t, db.Model(r1).Association("Tags").Append(tagA, tagB))
	require.NoError(t, db.Model(r2).Association("Tags").Append(tagA))
	require.NoError(t, db.Model(r3).Association("Tags").Append(tagA, tagB, tagC))
	return
}

func TestSearchTagAndSemantics(t *testing.T) {
	db := setupDB(t)
	repo := NewRecipeRepository(db)
	r1, _, r3, tagA, tagB, _ := seedTaggedRecipes(t, db, repo)

	results, err := repo.Search(context.Background(), domain.RecipeSearchQuery{
		TagIDs: []uint{tagA.ID, tagB.ID},
	})
	require.NoError(t, err)

	// only recipes carrying BOTH tags match; default order is id descending
	require.Len(t, results, 2)
	require.Equal(t, r3.ID, results[0].ID)
	require.Equal(t, r1.ID, results[1].ID)
}

func TestSearchNoFilter(t *testing.T) {
	db := setupDB(t)
	repo := NewRecipeRepository(db)
	seedTaggedRecipes(t, db, repo)

	results, err := repo.Search(context.Background(), domain.RecipeSearchQuery{})
	require.NoError(t, err)
	require.Len(t, results, 3)
	// id descending by default
	require.Greater(t, results[0].ID, results[1].ID)
	require.Greater(t, results[1].ID, results[2].ID)
}

func TestSearchLimitAndOrder(t *testing.T) {
	db := setupDB(t)
	repo := NewRecipeRepository(db)
	r1, _, _, _, _, _ := seedTaggedRecipes(t, db, repo)

	results, err := repo.Search(context.Background(), domain.RecipeSearchQuery{
		SortBy:    "id",
		SortOrder: "asc",
		Limit:     1,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, r1.ID, results[0].ID)
}

func TestSearchPreloadsPrimaryPhotoOnly(t *testing.T) {
	db := setupDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	created, err := repo.CreateFromPayload(ctx, samplePayload("u1"), entities.SourceTypeWeb, date("2026-01-01"))
	require.NoError(t, err)

	photoType, err := repo.GetPhotoTypeByCode(ctx, entities.PhotoTypeUserUpload)
	require.NoError(t, err)
	_, err = repo.CreatePhoto(ctx, &entities.RecipePhoto{
		RecipeID:    created.ID,
		PhotoURL:    "https://img.example/extra.jpg",
		PhotoTypeID: photoType.ID,
	})
	require.NoError(t, err)

	results, err := repo.Search(ctx, domain.RecipeSearchQuery{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Len(t, results[0].Photos, 1)
	require.True(t, results[0].Photos[0].IsPrimary)
}

func TestDeleteRecipeCascades(t *testing.T) {
	db := setupDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	r1, _, _, tagA, _, _ := seedTaggedRecipes(t, db, repo)

	require.NoError(t, repo.DeleteRecipe(ctx, r1.ID))

	_, err := repo.GetWithGraph(ctx, r1.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var ingredients, steps, photos, records, links int64
	require.NoError(t, db.Model(&entities.Ingredient{}).Where("recipe_id = ?", r1.ID).Count(&ingredients).Error)
	require.NoError(t, db.Model(&entities.Step{}).Where("recipe_id = ?", r1.ID).Count(&steps).Error)
	require.NoError(t, db.Model(&entities.RecipePhoto{}).Where("recipe_id = ?", r1.ID).Count(&photos).Error)
	require.NoError(t, db.Model(&entities.CookingRecord{}).Where("recipe_id = ?", r1.ID).Count(&records).Error)
	require.NoError(t, db.Table("recipe_tags").Where("recipe_id = ?", r1.ID).Count(&links).Error)
	require.Zero(t, ingredients)
	require.Zero(t, steps)
	require.Zero(t, photos)
	require.Zero(t, records)
	require.Zero(t, links)

	// shared tags survive recipe deletion
	var tagCount int64
	require.NoError(t, db.Model(&entities.Tag{}).Where("id = ?", tagA.ID).Count(&tagCount).Error)
	require.EqualValues(t, 1, tagCount)

	require.ErrorIs(t, repo.DeleteRecipe(ctx, r1.ID), domain.ErrRecipeNotFound)
}

func TestDeleteCookingRecordUnlinksPhotos(t *testing.T) {
	db := setupDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	created, err := repo.CreateFromPayload(ctx, samplePayload("u"), entities.SourceTypeWeb, date("2026-07-07"))
	require.NoError(t, err)
	recordID := created.CookingRecords[0].ID

	photoType, err := repo.GetPhotoTypeByCode(ctx, entities.PhotoTypeUserUpload)
	require.NoError(t, err)
	photo, err := repo.CreatePhoto(ctx, &entities.RecipePhoto{
		RecipeID:        created.ID,
		CookingRecordID: &recordID,
		PhotoURL:        "https://img.example/dinner.jpg",
		PhotoTypeID:     photoType.ID,
	})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteCookingRecord(ctx, created.ID, date("2026-07-07")))

	// the photo stays with the recipe, just detached from the record
	kept, err := repo.GetPhoto(ctx, photo.ID)
	require.NoError(t, err)
	require.Nil(t, kept.CookingRecordID)

	require.ErrorIs(t, repo.DeleteCookingRecord(ctx, created.ID, date("2026-07-07")), domain.ErrCookingRecordNotFound)
}

func TestCreatePhotoValidations(t *testing.T) {
	db := setupDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	r1, err := repo.CreateFromPayload(ctx, samplePayload("u1"), entities.SourceTypeWeb, date("2026-05-05"))
	require.NoError(t, err)
	r2, err := repo.CreateFromPayload(ctx, samplePayload("u2"), entities.SourceTypeWeb, date("2026-05-06"))
	require.NoError(t, err)

	photoType, err := repo.GetPhotoTypeByCode(ctx, entities.PhotoTypeUserUpload)
	require.NoError(t, err)

	_, err = repo.CreatePhoto(ctx, &entities.RecipePhoto{
		RecipeID:    9999,
		PhotoURL:    "x",
		PhotoTypeID: photoType.ID,
	})
	require.ErrorIs(t, err, domain.ErrRecipeNotFound)

	// record belongs to r2, photo claims r1
	otherRecordID := r2.CookingRecords[0].ID
	_, err = repo.CreatePhoto(ctx, &entities.RecipePhoto{
		RecipeID:        r1.ID,
		CookingRecordID: &otherRecordID,
		PhotoURL:        "x",
		PhotoTypeID:     photoType.ID,
	})
	require.ErrorIs(t, err, domain.ErrPhotoRecordMismatch)

	missing := uint(9999)
	_, err = repo.CreatePhoto(ctx, &entities.RecipePhoto{
		RecipeID:        r1.ID,
		CookingRecordID: &missing,
		PhotoURL:        "x",
		PhotoTypeID:     photoType.ID,
	})
	require.ErrorIs(t, err, domain.ErrCookingRecordNotFound)
}

func TestPrimaryPhotoStaysExclusive(t *testing.T) {
	db := setupDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	// creation seeds a primary scraped photo
	created, err := repo.CreateFromPayload(ctx, samplePayload("u"), entities.SourceTypeWeb, date("2026-02-02"))
	require.NoError(t, err)

	photoType, err := repo.GetPhotoTypeByCode(ctx, entities.PhotoTypeUserUpload)
	require.NoError(t, err)
	second, err := repo.CreatePhoto(ctx, &entities.RecipePhoto{
		RecipeID:    created.ID,
		PhotoURL:    "https://img.example/better.jpg",
		PhotoTypeID: photoType.ID,
		IsPrimary:   true,
	})
	require.NoError(t, err)
	require.True(t, second.IsPrimary)

	var primaries int64
	require.NoError(t, db.Model(&entities.RecipePhoto{}).
		Where("recipe_id = ? AND is_primary = ?", created.ID, true).
		Count(&primaries).Error)
	require.EqualValues(t, 1, primaries)

	// promoting via update demotes the current primary too
	isPrimary := true
	_, err = repo.UpdatePhoto(ctx, created.Photos[0].ID, domain.PhotoUpdateRequest{IsPrimary: &isPrimary})
	require.NoError(t, err)

	require.NoError(t, db.Model(&entities.RecipePhoto{}).
		Where("recipe_id = ? AND is_primary = ?", created.ID, true).
		Count(&primaries).Error)
	require.EqualValues(t, 1, primaries)

	current, err := repo.GetPhoto(ctx, created.Photos[0].ID)
	require.NoError(t, err)
	require.True(t, current.IsPrimary)
}

func TestUpdatePhotoPartial(t *testing.T) {
	db := setupDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	created, err := repo.CreateFromPayload(ctx, samplePayload("u"), entities.SourceTypeWeb, date("2026-02-02"))
	require.NoError(t, err)
	photoID := created.Photos[0].ID

	alt := "完成写真"
	updated, err := repo.UpdatePhoto(ctx, photoID, domain.PhotoUpdateRequest{AltText: &alt})
	require.NoError(t, err)
	require.Equal(t, "完成写真", updated.AltText)
	// untouched fields keep their values
	require.True(t, updated.IsPrimary)
	require.Equal(t, created.Photos[0].PhotoURL, updated.PhotoURL)

	_, err = repo.UpdatePhoto(ctx, 9999, domain.PhotoUpdateRequest{AltText: &alt})
	require.ErrorIs(t, err, domain.ErrPhotoNotFound)
}

func TestDeletePhoto(t *testing.T) {
	db := setupDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	created, err := repo.CreateFromPayload(ctx, samplePayload("u"), entities.SourceTypeWeb, date("2026-02-02"))
	require.NoError(t, err)

	require.NoError(t, repo.DeletePhoto(ctx, created.Photos[0].ID))
	require.ErrorIs(t, repo.DeletePhoto(ctx, created.Photos[0].ID), domain.ErrPhotoNotFound)
}

func TestListPhotosByCookingRecord(t *testing.T) {
	db := setupDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	created, err := repo.CreateFromPayload(ctx, samplePayload("u"), entities.SourceTypeWeb, date("2026-06-06"))
	require.NoError(t, err)
	recordID := created.CookingRecords[0].ID

	photoType, err := repo.GetPhotoTypeByCode(ctx, entities.PhotoTypeUserUpload)
	require.NoError(t, err)

	for i, url := range []string{"https://img.example/b.jpg", "https://img.example/a.jpg"} {
		_, err = repo.CreatePhoto(ctx, &entities.RecipePhoto{
			RecipeID:        created.ID,
			CookingRecordID: &recordID,
			PhotoURL:        url,
			PhotoTypeID:     photoType.ID,
			SortOrder:       1 - i,
		})
		require.NoError(t, err)
	}

	photos, err := repo.ListPhotosByCookingRecord(ctx, created.ID, recordID)
	require.NoError(t, err)
	require.Len(t, photos, 2)
	// ordered by sort_order, not insertion
	require.Equal(t, "https://img.example/a.jpg", photos[0].PhotoURL)
	require.Equal(t, "https://img.example/b.jpg", photos[1].PhotoURL)
}
