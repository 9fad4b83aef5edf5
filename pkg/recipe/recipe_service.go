package recipe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"cookmemo/domain"
	"cookmemo/entities"
	"cookmemo/internal/utils/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxPhotoSize = 10 << 20 // 10 MB

type (
	// PageScraper turns a recipe page URL into a canonical payload.
	PageScraper interface {
		Scrape(ctx context.Context, sourceURL string) (domain.RecipePayload, error)
	}

	// PhotoExtractor turns a cookbook photo into a canonical payload.
	PhotoExtractor interface {
		ExtractFromImage(ctx context.Context, image []byte) (domain.RecipePayload, error)
	}

	RecipeService interface {
		CreateFromScrape(ctx context.Context, req domain.ScrapeRecipeRequest) (*entities.Recipe, error)
		CreateFromPhoto(ctx context.Context, file *multipart.FileHeader, cookingDate string) (*entities.Recipe, error)
		GetRecipeDetail(ctx context.Context, id uint) (*entities.Recipe, error)
		Search(ctx context.Context, query domain.RecipeSearchQuery) ([]*entities.Recipe, error)
		DeleteRecipe(ctx context.Context, id uint) error
		AddCookingRecord(ctx context.Context, recipeID uint, req domain.CookingRecordCreateRequest) (*entities.CookingRecord, error)
		DeleteCookingRecord(ctx context.Context, recipeID uint, date string) error
		UploadPhoto(ctx context.Context, recipeID uint, recordID *uint, req domain.PhotoUploadRequest) (*entities.RecipePhoto, error)
		UpdatePhoto(ctx context.Context, photoID uint, req domain.PhotoUpdateRequest) (*entities.RecipePhoto, error)
		DeletePhoto(ctx context.Context, photoID uint) error
		ListRecordPhotos(ctx context.Context, recipeID, recordID uint) ([]*entities.RecipePhoto, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		scraper          PageScraper
		extractor        PhotoExtractor
		store            storage.Storage
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	scraper PageScraper,
	extractor PhotoExtractor,
	store storage.Storage,
) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		scraper:          scraper,
		extractor:        extractor,
		store:            store,
	}
}

// CreateFromScrape is idempotent by source URL: a URL already on file only
// gains a new cooking record, the page is not fetched again.
func (s *recipeService) CreateFromScrape(ctx context.Context, req domain.ScrapeRecipeRequest) (*entities.Recipe, error) {
	cookingDate, err := parseCookingDate(req.CookingDate)
	if err != nil {
		return nil, err
	}

	existing, err := s.recipeRepository.FindBySourceURL(ctx, req.SourceURL)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		_, err := s.recipeRepository.RegisterCookingOccurrence(ctx, &entities.CookingRecord{
			RecipeID:    existing.ID,
			CookingDate: cookingDate,
		})
		if err != nil && !errors.Is(err, domain.ErrCookingRecordExists) {
			return nil, err
		}
		return s.recipeRepository.GetWithGraph(ctx, existing.ID)
	}

	payload, err := s.scraper.Scrape(ctx, req.SourceURL)
	if err != nil {
		return nil, err
	}

	return s.recipeRepository.CreateFromPayload(ctx, payload, entities.SourceTypeWeb, cookingDate)
}

func (s *recipeService) CreateFromPhoto(ctx context.Context, file *multipart.FileHeader, cookingDateRaw string) (*entities.Recipe, error) {
	cookingDate, err := parseCookingDate(cookingDateRaw)
	if err != nil {
		return nil, err
	}
	if file.Size > maxPhotoSize {
		return nil, domain.ErrFileTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	image, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}

	payload, err := s.extractor.ExtractFromImage(ctx, image)
	if err != nil {
		return nil, err
	}

	return s.recipeRepository.CreateFromPayload(ctx, payload, entities.SourceTypeBook, cookingDate)
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, id uint) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.GetWithGraph(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return recipe, nil
}

func (s *recipeService) Search(ctx context.Context, query domain.RecipeSearchQuery) ([]*entities.Recipe, error) {
	return s.recipeRepository.Search(ctx, query)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id uint) error {
	return s.recipeRepository.DeleteRecipe(ctx, id)
}

func (s *recipeService) AddCookingRecord(ctx context.Context, recipeID uint, req domain.CookingRecordCreateRequest) (*entities.CookingRecord, error) {
	cookingDate, err := parseCookingDate(req.CookingDate)
	if err != nil {
		return nil, err
	}

	record := entities.CookingRecord{
		RecipeID:    recipeID,
		CookingDate: cookingDate,
		Rating:      req.Rating,
		Memo:        req.Memo,
		Cost:        req.Cost,
		Occasion:    req.Occasion,
	}
	return s.recipeRepository.RegisterCookingOccurrence(ctx, &record)
}

func (s *recipeService) DeleteCookingRecord(ctx context.Context, recipeID uint, date string) error {
	cookingDate, err := parseCookingDate(date)
	if err != nil {
		return err
	}
	return s.recipeRepository.DeleteCookingRecord(ctx, recipeID, cookingDate)
}

func (s *recipeService) UploadPhoto(ctx context.Context, recipeID uint, recordID *uint, req domain.PhotoUploadRequest) (*entities.RecipePhoto, error) {
	if req.File.Size > maxPhotoSize {
		return nil, domain.ErrFileTooLarge
	}

	photoTypeID := req.PhotoTypeID
	if photoTypeID == nil {
		photoType, err := s.recipeRepository.GetPhotoTypeByCode(ctx, entities.PhotoTypeUserUpload)
		if err != nil {
			return nil, err
		}
		photoTypeID = &photoType.ID
	}

	ext := strings.ToLower(filepath.Ext(req.File.Filename))
	objectName := fmt.Sprintf("recipe_%d_%s%s", recipeID, uuid.New().String(), ext)
	if recordID != nil {
		objectName = fmt.Sprintf("recipe_%d_record_%d_%s%s", recipeID, *recordID, uuid.New().String(), ext)
	}

	objectKey, err := s.store.UploadFile(objectName, req.File, "photos", storage.AllowImage...)
	if err != nil {
		return nil, err
	}

	fileSize := req.File.Size
	photo := entities.RecipePhoto{
		RecipeID:        recipeID,
		CookingRecordID: recordID,
		PhotoURL:        s.store.GetPublicLinkKey(objectKey),
		PhotoTypeID:     *photoTypeID,
		IsPrimary:       req.IsPrimary,
		SortOrder:       req.SortOrder,
		AltText:         req.AltText,
		FileSize:        &fileSize,
	}

	created, err := s.recipeRepository.CreatePhoto(ctx, &photo)
	if err != nil {
		// keep storage consistent with the database
		_ = s.store.DeleteFile(objectKey)
		return nil, err
	}
	return created, nil
}

func (s *recipeService) UpdatePhoto(ctx context.Context, photoID uint, req domain.PhotoUpdateRequest) (*entities.RecipePhoto, error) {
	return s.recipeRepository.UpdatePhoto(ctx, photoID, req)
}

func (s *recipeService) DeletePhoto(ctx context.Context, photoID uint) error {
	photo, err := s.recipeRepository.GetPhoto(ctx, photoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPhotoNotFound
		}
		return err
	}

	if err := s.recipeRepository.DeletePhoto(ctx, photoID); err != nil {
		return err
	}

	if key := s.store.GetObjectKeyFromLink(photo.PhotoURL); key != "" {
		_ = s.store.DeleteFile(key)
	}
	return nil
}

func (s *recipeService) ListRecordPhotos(ctx context.Context, recipeID, recordID uint) ([]*entities.RecipePhoto, error) {
	if _, err := s.recipeRepository.GetWithGraph(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return s.recipeRepository.ListPhotosByCookingRecord(ctx, recipeID, recordID)
}

func parseCookingDate(raw string) (time.Time, error) {
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, domain.ErrInvalidDate
	}
	return parsed, nil
}
