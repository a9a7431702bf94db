package server

import (
	"strings"

	"cardify/internal/models"
	"cardify/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateCard handles POST /api/cards
func (s *Server) CreateCard(c *fiber.Ctx) error {
	var in service.CardInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	card, err := s.cardService.CreateCard(c.Context(), currentUserID(c), in)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(card)
}

// GetCards handles GET /api/cards
func (s *Server) GetCards(c *fiber.Ctx) error {
	cards, err := s.cardService.ListCards(c.Context(), currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(cards)
}

// GetCard handles GET /api/cards/:id
func (s *Server) GetCard(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	card, err := s.cardService.GetCard(c.Context(), currentUserID(c), id)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(card)
}

// UpdateCard handles PUT /api/cards/:id
func (s *Server) UpdateCard(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var in service.CardInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.cardService.UpdateCard(c.Context(), currentUserID(c), id, in); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(fiber.Map{"message": "Card updated"})
}

// DeleteCard handles DELETE /api/cards/:id
func (s *Server) DeleteCard(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.cardService.DeleteCard(c.Context(), currentUserID(c), id); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(fiber.Map{"message": "Card deleted"})
}

// GetPublicCard handles GET /api/cards/public/:shareLink. No auth; drafts
// and unknown tokens both come back as 404.
func (s *Server) GetPublicCard(c *fiber.Ctx) error {
	token := strings.TrimSpace(c.Params("shareLink"))
	if token == "" {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Card"))
	}

	card, err := s.cardService.ResolvePublicCard(c.Context(), token)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(card)
}
