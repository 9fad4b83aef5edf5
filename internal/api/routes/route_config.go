package routes

import (
	"cookmemo/internal/api/handlers"
	"cookmemo/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App           *fiber.App
	RecipeHandler handlers.RecipeHandler
	TagHandler    handlers.TagHandler
	PhotoHandler  handlers.PhotoHandler
	Middleware    middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Recipes()
	c.Tags()
	c.Photos()
	c.GuestRoute()
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")
	// recipe routes
	{
		recipes.Post("/scrape", c.RecipeHandler.ScrapeRecipe)
		recipes.Post("/extract", c.RecipeHandler.ExtractRecipe)
		recipes.Get("", c.RecipeHandler.SearchRecipes)
		recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
		recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)

		recipes.Post("/:id/records", c.RecipeHandler.AddCookingRecord)
		recipes.Delete("/:id/records/:date", c.RecipeHandler.DeleteCookingRecord)
		recipes.Get("/:id/records/:recordId/photos", c.PhotoHandler.ListRecordPhotos)
		recipes.Post("/:id/records/:recordId/photos/upload", c.PhotoHandler.UploadPhoto)

		recipes.Post("/:id/tags", c.TagHandler.GrantTag)
		recipes.Delete("/:id/tags/:tagId", c.TagHandler.RevokeTag)

		recipes.Post("/:id/photos", c.PhotoHandler.UploadPhoto)
	}
}

func (c *Config) Tags() {
	tags := c.App.Group("/api/v1/tags")
	{
		tags.Get("", c.TagHandler.GetTags)
		tags.Post("", c.TagHandler.CreateTag)
		tags.Get("/:id", c.TagHandler.GetTag)
		tags.Patch("/:id", c.TagHandler.UpdateTag)
		tags.Delete("/:id", c.TagHandler.DeleteTag)
	}
}

func (c *Config) Photos() {
	photos := c.App.Group("/api/v1/photos")
	{
		photos.Patch("/:id", c.PhotoHandler.UpdatePhoto)
		photos.Delete("/:id", c.PhotoHandler.DeletePhoto)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works. test"})
	})
}
