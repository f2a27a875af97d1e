package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"

	"jobboard/internal/models"
	"jobboard/internal/repositories"
)

// ProfileService turns a queued CV parse job into extracted fields on the
// parse record and the owning employee profile.
type ProfileService interface {
	ProcessParse(ctx context.Context, parseID uuid.UUID) error
}

type profileService struct {
	parseRepo    repositories.CvParseRepository
	docRepo      repositories.DocumentRepository
	employeeRepo repositories.EmployeeRepository
	cvParser     CvParserService
}

func NewProfileService(
	parseRepo repositories.CvParseRepository,
	docRepo repositories.DocumentRepository,
	employeeRepo repositories.EmployeeRepository,
	cvParser CvParserService,
) ProfileService {
	return &profileService{
		parseRepo:    parseRepo,
		docRepo:      docRepo,
		employeeRepo: employeeRepo,
		cvParser:     cvParser,
	}
}

// Multi-value fields are stored newline-joined. Skill tokens never contain
// newlines, so the matcher's delimiter election picks "\n" back up when the
// stored text is re-parsed.
const fieldSeparator = "\n"

func (s *profileService) ProcessParse(ctx context.Context, parseID uuid.UUID) error {
	if err := s.parseRepo.UpdateStatus(parseID, models.StatusProcessing); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	log.Printf("🔄 Starting CV parse for job ID: %s\n", parseID)

	parse, err := s.parseRepo.FindByID(parseID)
	if err != nil {
		s.parseRepo.UpdateError(parseID, err.Error())
		return fmt.Errorf("failed to get cv parse: %w", err)
	}

	doc, err := s.docRepo.FindByID(parse.DocumentID)
	if err != nil {
		s.parseRepo.UpdateError(parseID, fmt.Sprintf("CV document not found: %v", err))
		return fmt.Errorf("failed to get document: %w", err)
	}

	data, err := os.ReadFile(doc.FilePath)
	if err != nil {
		s.parseRepo.UpdateError(parseID, fmt.Sprintf("Failed to read CV file: %v", err))
		return fmt.Errorf("failed to read CV file: %w", err)
	}

	// The extraction pipeline absorbs malformed input into an empty record;
	// from here on nothing fails except persistence.
	log.Println("📄 Parsing CV...")
	record := s.cvParser.ParseCv(data)

	updateData := &repositories.CvParseUpdateData{
		Name:       record.Name,
		Email:      record.Email,
		Phone:      record.Phone,
		Education:  joinField(record.Education),
		Experience: joinField(record.Experience),
		Skills:     joinField(record.Skills),
		Languages:  joinField(record.Languages),
		Interests:  joinField(record.Interests),
	}

	if err := s.parseRepo.UpdateResult(parseID, updateData); err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}

	// Mirror the extracted profile fields onto the employee so the matcher
	// works off the freshest skill set.
	profileUpdates := map[string]interface{}{}
	if record.Name != nil {
		profileUpdates["name"] = *record.Name
	}
	if record.Email != nil {
		profileUpdates["email"] = *record.Email
	}
	if record.Phone != nil {
		profileUpdates["phone"] = *record.Phone
	}
	if len(record.Skills) > 0 {
		profileUpdates["skills"] = strings.Join(record.Skills, fieldSeparator)
	}
	if len(record.Languages) > 0 {
		profileUpdates["languages"] = strings.Join(record.Languages, fieldSeparator)
	}
	if len(record.Interests) > 0 {
		profileUpdates["interests"] = strings.Join(record.Interests, fieldSeparator)
	}
	if len(record.Education) > 0 {
		profileUpdates["education"] = strings.Join(record.Education, fieldSeparator)
	}
	if len(record.Experience) > 0 {
		profileUpdates["experience"] = strings.Join(record.Experience, fieldSeparator)
	}

	if len(profileUpdates) > 0 {
		if err := s.employeeRepo.UpdateProfile(parse.EmployeeID, profileUpdates); err != nil {
			return fmt.Errorf("failed to update employee profile: %w", err)
		}
	}

	log.Printf("✅ CV parse completed successfully for job ID: %s\n", parseID)
	return nil
}

func joinField(values []string) *string {
	if len(values) == 0 {
		return nil
	}
	joined := strings.Join(values, fieldSeparator)
	return &joined
}
