package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jobboard/internal/models"
	"jobboard/internal/repositories"
)

type ParseHandler struct {
	parseRepo repositories.CvParseRepository
}

func NewParseHandler(parseRepo repositories.CvParseRepository) *ParseHandler {
	return &ParseHandler{
		parseRepo: parseRepo,
	}
}

// HandleGetParseResult handles GET /cv/:id
func (h *ParseHandler) HandleGetParseResult(c *fiber.Ctx) error {
	idParam := c.Params("id")
	parseID, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid parse ID format",
		})
	}

	parse, err := h.parseRepo.FindByID(parseID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Parse job not found",
		})
	}

	response := models.ParseResultResponse{
		ID:     parse.ID.String(),
		Status: string(parse.Status),
	}

	if parse.Status == models.StatusCompleted {
		response.Result = &models.CvRecord{
			Name:       parse.Name,
			Email:      parse.Email,
			Phone:      parse.Phone,
			Education:  splitField(parse.Education),
			Experience: splitField(parse.Experience),
			Skills:     splitField(parse.Skills),
			Languages:  splitField(parse.Languages),
			Interests:  splitField(parse.Interests),
		}
	}

	if parse.Status == models.StatusFailed && parse.ErrorMessage != nil {
		response.ErrorMessage = parse.ErrorMessage
	}

	return c.JSON(response)
}

func splitField(value *string) []string {
	if value == nil || *value == "" {
		return nil
	}
	return strings.Split(*value, "\n")
}
