package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobboard/internal/models"
)

type CvParseRepository interface {
	Create(parse *models.CvParse) error
	FindByID(id uuid.UUID) (*models.CvParse, error)
	UpdateStatus(id uuid.UUID, status models.CvParseStatus) error
	UpdateResult(id uuid.UUID, result *CvParseUpdateData) error
	UpdateError(id uuid.UUID, errorMsg string) error
	FindPendingJobs(limit int) ([]models.CvParse, error)
}

type CvParseUpdateData struct {
	Name       *string
	Email      *string
	Phone      *string
	Education  *string
	Experience *string
	Skills     *string
	Languages  *string
	Interests  *string
}

type cvParseRepository struct {
	db *gorm.DB
}

func NewCvParseRepository(db *gorm.DB) CvParseRepository {
	return &cvParseRepository{db: db}
}

func (r *cvParseRepository) Create(parse *models.CvParse) error {
	if err := r.db.Create(parse).Error; err != nil {
		return fmt.Errorf("failed to create cv parse: %w", err)
	}
	return nil
}

func (r *cvParseRepository) FindByID(id uuid.UUID) (*models.CvParse, error) {
	var parse models.CvParse
	if err := r.db.Where("id = ?", id).First(&parse).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("cv parse not found")
		}
		return nil, fmt.Errorf("failed to find cv parse: %w", err)
	}
	return &parse, nil
}

func (r *cvParseRepository) UpdateStatus(id uuid.UUID, status models.CvParseStatus) error {
	result := r.db.Model(&models.CvParse{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("cv parse not found")
	}

	return nil
}

func (r *cvParseRepository) UpdateResult(id uuid.UUID, data *CvParseUpdateData) error {
	updates := map[string]interface{}{
		"status":     models.StatusCompleted,
		"updated_at": time.Now(),
	}

	if data.Name != nil {
		updates["name"] = *data.Name
	}
	if data.Email != nil {
		updates["email"] = *data.Email
	}
	if data.Phone != nil {
		updates["phone"] = *data.Phone
	}
	if data.Education != nil {
		updates["education"] = *data.Education
	}
	if data.Experience != nil {
		updates["experience"] = *data.Experience
	}
	if data.Skills != nil {
		updates["skills"] = *data.Skills
	}
	if data.Languages != nil {
		updates["languages"] = *data.Languages
	}
	if data.Interests != nil {
		updates["interests"] = *data.Interests
	}

	result := r.db.Model(&models.CvParse{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to update result: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("cv parse not found")
	}

	return nil
}

func (r *cvParseRepository) UpdateError(id uuid.UUID, errorMsg string) error {
	result := r.db.Model(&models.CvParse{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        models.StatusFailed,
			"error_message": errorMsg,
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update error: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("cv parse not found")
	}

	return nil
}

func (r *cvParseRepository) FindPendingJobs(limit int) ([]models.CvParse, error) {
	var parses []models.CvParse
	err := r.db.
		Where("status = ?", models.StatusQueued).
		Order("created_at ASC").
		Limit(limit).
		Find(&parses).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find pending jobs: %w", err)
	}

	return parses, nil
}
