package config

import (
	"os"
	"time"

	"cookmemo/internal/api/handlers"
	"cookmemo/internal/api/routes"
	"cookmemo/internal/middleware"
	"cookmemo/internal/utils"
	"cookmemo/internal/utils/logging"
	"cookmemo/internal/utils/storage"
	"cookmemo/pkg/ocr"
	"cookmemo/pkg/ocr/vision"
	"cookmemo/pkg/recipe"
	"cookmemo/pkg/scrape"
	"cookmemo/pkg/tag"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

const uploadDirDefault = "./uploads"

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
		BodyLimit:         12 << 20,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	appLogger, err := logging.NewLogger(utils.GetConfig("LOG_LEVEL"))
	if err != nil {
		return nil, err
	}

	// setting up logging and limiter
	if err := os.MkdirAll("./logs", os.ModePerm); err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/access.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	store, err := newStorage(app)
	if err != nil {
		return nil, err
	}

	// extraction pipelines
	scraper := scrape.NewScraper(scrape.DefaultRegistry(), scrape.NewHTTPFetcher(), appLogger)
	recognizer := vision.NewTesseractRecognizer(utils.GetConfig("OCR_LANGUAGE"))
	extractor := ocr.NewExtractor(vision.NewPreprocessor(vision.DefaultPreprocessOptions()), recognizer, appLogger)

	// Repository
	recipeRepository := recipe.NewRecipeRepository(db)
	tagRepository := tag.NewTagRepository(db)

	// Service
	recipeService := recipe.NewRecipeService(recipeRepository, scraper, extractor, store)
	tagService := tag.NewTagService(tagRepository)

	// Handler
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	tagHandler := handlers.NewTagHandler(tagService, validator)
	photoHandler := handlers.NewPhotoHandler(recipeService, validator)

	// routes
	routesConfig := routes.Config{
		App:           app,
		RecipeHandler: recipeHandler,
		TagHandler:    tagHandler,
		PhotoHandler:  photoHandler,
		Middleware:    middlewares,
	}
	routesConfig.Setup()
	return app, nil
}

// newStorage picks the photo backend from config. Local disk also mounts a
// static route so stored links resolve.
func newStorage(app *fiber.App) (storage.Storage, error) {
	if utils.GetConfig("STORAGE_DRIVER") == "s3" {
		return storage.NewAwsS3()
	}

	uploadDir := utils.GetConfig("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = uploadDirDefault
	}
	app.Static("/uploads", uploadDir)

	return storage.NewLocalDisk(uploadDir, utils.GetConfig("APP_URL")+"/uploads")
}
