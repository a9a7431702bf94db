package server

import (
	"cardify/internal/models"
	"cardify/internal/templates"

	"github.com/gofiber/fiber/v2"
)

// GetTemplates handles GET /api/templates
func (s *Server) GetTemplates(c *fiber.Ctx) error {
	if category := c.Query("category"); category != "" {
		return c.JSON(templates.ByCategory(category))
	}
	return c.JSON(templates.Catalog)
}

// GetTemplateOptions handles GET /api/templates/options. It returns the
// editor option sets: categories, fonts, accent colors and envelope styles.
func (s *Server) GetTemplateOptions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"categories":     templates.CardCategories,
		"fonts":          templates.Fonts,
		"accentColors":   templates.AccentColors,
		"envelopeStyles": templates.EnvelopeStyles,
	})
}

// GetTemplate handles GET /api/templates/:id
func (s *Server) GetTemplate(c *fiber.Ctx) error {
	tmpl, ok := templates.ByID(c.Params("id"))
	if !ok {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Template"))
	}
	return c.JSON(tmpl)
}
