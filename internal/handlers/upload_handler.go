package handlers

import (
	"fmt"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jobboard/internal/models"
	"jobboard/internal/repositories"
	"jobboard/internal/services"
)

type UploadHandler struct {
	employeeRepo   repositories.EmployeeRepository
	docRepo        repositories.DocumentRepository
	parseRepo      repositories.CvParseRepository
	storageService services.StorageService
	pdfService     services.PDFService
	worker         services.Worker
	maxFileSize    int64
}

func NewUploadHandler(
	employeeRepo repositories.EmployeeRepository,
	docRepo repositories.DocumentRepository,
	parseRepo repositories.CvParseRepository,
	storageService services.StorageService,
	pdfService services.PDFService,
	worker services.Worker,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		employeeRepo:   employeeRepo,
		docRepo:        docRepo,
		parseRepo:      parseRepo,
		storageService: storageService,
		pdfService:     pdfService,
		worker:         worker,
		maxFileSize:    maxFileSize,
	}
}

// HandleUploadCv handles POST /employees/:id/cv
func (h *UploadHandler) HandleUploadCv(c *fiber.Ctx) error {
	employeeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid employee ID format",
		})
	}

	if _, err := h.employeeRepo.FindByID(employeeID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Employee not found",
		})
	}

	cvFile, err := c.FormFile("cv")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No CV file uploaded. Please upload 'cv' as a PDF file.",
		})
	}

	if cvFile.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("CV file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	// Save file
	filename, filePath, err := h.storageService.SaveFile(cvFile)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save CV file: %v", err),
		})
	}

	// Reject files that do not open as a PDF with at least one page before
	// queueing any parse work.
	data, err := os.ReadFile(filePath)
	if err != nil || !h.pdfService.IsValidPDF(data) {
		h.storageService.DeleteFile(filename)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Uploaded file is not a readable PDF",
		})
	}

	// Create document record
	doc := models.Document{
		ID:               uuid.New(),
		EmployeeID:       employeeID,
		Filename:         filename,
		OriginalFileName: cvFile.Filename,
		FilePath:         filePath,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := h.docRepo.Create(&doc); err != nil {
		// Cleanup uploaded file if database insert fails
		h.storageService.DeleteFile(filename)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save CV document record: %v", err),
		})
	}

	// Create parse job and hand it to the worker
	parse := models.CvParse{
		ID:         uuid.New(),
		DocumentID: doc.ID,
		EmployeeID: employeeID,
		Status:     models.StatusQueued,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := h.parseRepo.Create(&parse); err != nil {
		// Roll back the stored file and the document row so a failed queue
		// insert leaves nothing behind.
		h.storageService.DeleteFile(filename)
		h.docRepo.Delete(doc.ID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create parse job",
		})
	}

	h.worker.EnqueueJob(parse.ID)

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"message": "CV uploaded successfully",
		"document": models.UploadResponse{
			ID:           doc.ID.String(),
			ParseID:      parse.ID.String(),
			Filename:     doc.Filename,
			OriginalName: doc.OriginalFileName,
		},
	})
}
