package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobboard/internal/models"
)

type EmployeeRepository interface {
	Create(employee *models.Employee) error
	FindByID(id uuid.UUID) (*models.Employee, error)
	FindAll() ([]models.Employee, error)
	UpdateProfile(id uuid.UUID, updates map[string]interface{}) error
}

type employeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

// Create implements EmployeeRepository.
func (r *employeeRepository) Create(employee *models.Employee) error {
	if err := r.db.Create(employee).Error; err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}

	return nil
}

// FindByID implements EmployeeRepository.
func (r *employeeRepository) FindByID(id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.Where("id = ?", id).First(&employee).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("employee not found: %w", err)
		}

		return nil, fmt.Errorf("failed to find employee: %w", err)
	}

	return &employee, nil
}

// FindAll implements EmployeeRepository.
func (r *employeeRepository) FindAll() ([]models.Employee, error) {
	var employees []models.Employee
	if err := r.db.Order("created_at ASC").Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	return employees, nil
}

// UpdateProfile implements EmployeeRepository.
func (r *employeeRepository) UpdateProfile(id uuid.UUID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result := r.db.Model(&models.Employee{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to update employee profile: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("employee not found")
	}

	return nil
}
