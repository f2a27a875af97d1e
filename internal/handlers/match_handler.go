package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jobboard/internal/repositories"
	"jobboard/internal/services"
)

type MatchHandler struct {
	employeeRepo repositories.EmployeeRepository
	jobRepo      repositories.JobRepository
	ranker       services.RankerService
}

func NewMatchHandler(
	employeeRepo repositories.EmployeeRepository,
	jobRepo repositories.JobRepository,
	ranker services.RankerService,
) *MatchHandler {
	return &MatchHandler{
		employeeRepo: employeeRepo,
		jobRepo:      jobRepo,
		ranker:       ranker,
	}
}

// HandleEmployeeMatches handles GET /employees/:id/matches
func (h *MatchHandler) HandleEmployeeMatches(c *fiber.Ctx) error {
	employeeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid employee ID format",
		})
	}

	employee, err := h.employeeRepo.FindByID(employeeID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Employee not found",
		})
	}

	matches, err := h.ranker.MatchEmployeeToJobs(employee, nil)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to rank jobs",
		})
	}

	return c.JSON(fiber.Map{
		"employee_id": employee.ID.String(),
		"matches":     matches,
	})
}

// HandleJobCandidates handles GET /jobs/:id/candidates
func (h *MatchHandler) HandleJobCandidates(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job ID format",
		})
	}

	job, err := h.jobRepo.FindByID(jobID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Job not found",
		})
	}

	matches, err := h.ranker.MatchJobToEmployees(job, nil)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to rank employees",
		})
	}

	return c.JSON(fiber.Map{
		"job_id":  job.ID.String(),
		"matches": matches,
	})
}
