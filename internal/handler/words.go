package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// handleListWords returns every word
func (h *Handler) handleListWords(c *fiber.Ctx) error {
	words, err := h.wordService.FindAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(words)
}

// handleGetWord returns a single word by id
func (h *Handler) handleGetWord(c *fiber.Ctx) error {
	id := wordID(c)

	word, err := h.wordService.FindByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(word)
}

// handleCreateWord stores a new word pair
func (h *Handler) handleCreateWord(c *fiber.Ctx) error {
	input, fieldErrs, err := h.wordFromRequest(c)
	if err != nil {
		return err
	}
	if len(fieldErrs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorsResponse{Errors: fieldErrs})
	}

	word, err := h.wordService.Save(c.UserContext(), input)
	if err != nil {
		return err
	}

	h.logger.Info("Word pair saved",
		zap.Int64("id", word.ID),
		zap.String("english", word.English),
		zap.String("finnish", word.Finnish),
	)

	return c.Status(fiber.StatusCreated).JSON(word)
}

// handleUpdateWord replaces both fields of an existing word
func (h *Handler) handleUpdateWord(c *fiber.Ctx) error {
	id := wordID(c)

	input, fieldErrs, err := h.wordFromRequest(c)
	if err != nil {
		return err
	}
	if len(fieldErrs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorsResponse{Errors: fieldErrs})
	}

	word, err := h.wordService.UpdateByID(c.UserContext(), id, input)
	if err != nil {
		return err
	}

	h.logger.Info("Word pair updated", zap.Int64("id", id))

	return c.JSON(word)
}

// handleDeleteWord removes a word
func (h *Handler) handleDeleteWord(c *fiber.Ctx) error {
	id := wordID(c)

	if err := h.wordService.DeleteByID(c.UserContext(), id); err != nil {
		return err
	}

	h.logger.Info("Word pair deleted", zap.Int64("id", id))

	return c.SendStatus(fiber.StatusNoContent)
}
