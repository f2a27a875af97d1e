package services

import (
	"fmt"
	"sort"

	"jobboard/internal/models"
	"jobboard/internal/repositories"
)

type RankerService interface {
	MatchEmployeeToJobs(employee *models.Employee, jobs []models.Job) ([]models.JobMatch, error)
	MatchJobToEmployees(job *models.Job, employees []models.Employee) ([]models.EmployeeMatch, error)
}

type rankerService struct {
	matcher      MatcherService
	jobRepo      repositories.JobRepository
	employeeRepo repositories.EmployeeRepository
}

func NewRankerService(
	matcher MatcherService,
	jobRepo repositories.JobRepository,
	employeeRepo repositories.EmployeeRepository,
) RankerService {
	return &rankerService{
		matcher:      matcher,
		jobRepo:      jobRepo,
		employeeRepo: employeeRepo,
	}
}

// MatchEmployeeToJobs scores the employee against every job (the full store
// when jobs is nil) and returns the results sorted by score, highest first.
// The sort is stable: ties keep input order.
func (r *rankerService) MatchEmployeeToJobs(employee *models.Employee, jobs []models.Job) ([]models.JobMatch, error) {
	if jobs == nil {
		var err error
		jobs, err = r.jobRepo.FindAll()
		if err != nil {
			return nil, fmt.Errorf("failed to load jobs: %w", err)
		}
	}

	matches := make([]models.JobMatch, 0, len(jobs))
	for i := range jobs {
		job := jobs[i]
		result := r.matcher.CalculateMatchScore(
			employee.Skills,
			job.RequiredSkills,
			job.PreferredSkills,
			employee.PreferredContract,
			job.JobType,
		)
		matches = append(matches, models.JobMatch{
			Job:           &job,
			Score:         result.Score,
			MatchedSkills: result.MatchedSkills,
			MissingSkills: result.MissingSkills,
			ContractMatch: result.ContractMatch,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	return matches, nil
}

// MatchJobToEmployees is the symmetric ranking: every employee (the full
// store when employees is nil) scored against one job, sorted by score
// descending with stable ties.
func (r *rankerService) MatchJobToEmployees(job *models.Job, employees []models.Employee) ([]models.EmployeeMatch, error) {
	if employees == nil {
		var err error
		employees, err = r.employeeRepo.FindAll()
		if err != nil {
			return nil, fmt.Errorf("failed to load employees: %w", err)
		}
	}

	matches := make([]models.EmployeeMatch, 0, len(employees))
	for i := range employees {
		employee := employees[i]
		result := r.matcher.CalculateMatchScore(
			employee.Skills,
			job.RequiredSkills,
			job.PreferredSkills,
			employee.PreferredContract,
			job.JobType,
		)
		matches = append(matches, models.EmployeeMatch{
			Employee:      &employee,
			Score:         result.Score,
			MatchedSkills: result.MatchedSkills,
			MissingSkills: result.MissingSkills,
			ContractMatch: result.ContractMatch,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	return matches, nil
}
