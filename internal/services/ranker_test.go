package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"jobboard/internal/models"
)

type stubJobRepo struct {
	jobs []models.Job
}

func (s *stubJobRepo) Create(*models.Job) error { return nil }

func (s *stubJobRepo) FindByID(uuid.UUID) (*models.Job, error) {
	return nil, errors.New("not implemented")
}

func (s *stubJobRepo) FindAll() ([]models.Job, error) { return s.jobs, nil }

type stubEmployeeRepo struct {
	employees []models.Employee
}

func (s *stubEmployeeRepo) Create(*models.Employee) error { return nil }

func (s *stubEmployeeRepo) FindByID(uuid.UUID) (*models.Employee, error) {
	return nil, errors.New("not implemented")
}

func (s *stubEmployeeRepo) FindAll() ([]models.Employee, error) { return s.employees, nil }

func (s *stubEmployeeRepo) UpdateProfile(uuid.UUID, map[string]interface{}) error { return nil }

func TestMatchEmployeeToJobsSortedDescending(t *testing.T) {
	jobs := []models.Job{
		{Title: "Rust Job", RequiredSkills: "Rust"},
		{Title: "Open Job"},
		{Title: "Python Job", RequiredSkills: "Python, Django"},
	}
	ranker := NewRankerService(NewMatcherService(), &stubJobRepo{jobs: jobs}, &stubEmployeeRepo{})

	employee := &models.Employee{Skills: "python\ndjango"}
	matches, err := ranker.MatchEmployeeToJobs(employee, nil)
	if err != nil {
		t.Fatalf("MatchEmployeeToJobs error: %v", err)
	}

	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matches))
	}
	for i := 1; i < len(matches); i++ {
		if matches[i-1].Score < matches[i].Score {
			t.Fatalf("matches not sorted descending: %v then %v", matches[i-1].Score, matches[i].Score)
		}
	}

	if matches[0].Job.Title != "Python Job" || matches[0].Score != 90.0 {
		t.Errorf("expected Python Job at 90.0 first, got %s at %v", matches[0].Job.Title, matches[0].Score)
	}
	if matches[1].Job.Title != "Open Job" || matches[1].Score != 50.0 {
		t.Errorf("expected Open Job at 50.0 second, got %s at %v", matches[1].Job.Title, matches[1].Score)
	}
	if matches[2].Job.Title != "Rust Job" || matches[2].Score != 0.0 {
		t.Errorf("expected Rust Job at 0.0 last, got %s at %v", matches[2].Job.Title, matches[2].Score)
	}
}

func TestMatchEmployeeToJobsStableTies(t *testing.T) {
	jobs := []models.Job{
		{Title: "First Open"},
		{Title: "Second Open"},
		{Title: "Third Open"},
	}
	ranker := NewRankerService(NewMatcherService(), &stubJobRepo{jobs: jobs}, &stubEmployeeRepo{})

	matches, err := ranker.MatchEmployeeToJobs(&models.Employee{Skills: "python"}, nil)
	if err != nil {
		t.Fatalf("MatchEmployeeToJobs error: %v", err)
	}

	want := []string{"First Open", "Second Open", "Third Open"}
	for i, title := range want {
		if matches[i].Job.Title != title {
			t.Errorf("tie order not stable at %d: got %s, want %s", i, matches[i].Job.Title, title)
		}
	}
}

func TestMatchEmployeeToJobsExplicitCollection(t *testing.T) {
	ranker := NewRankerService(NewMatcherService(), &stubJobRepo{}, &stubEmployeeRepo{})

	jobs := []models.Job{{Title: "Only Job", RequiredSkills: "Python"}}
	matches, err := ranker.MatchEmployeeToJobs(&models.Employee{Skills: "python"}, jobs)
	if err != nil {
		t.Fatalf("MatchEmployeeToJobs error: %v", err)
	}
	if len(matches) != 1 || matches[0].Job.Title != "Only Job" {
		t.Fatalf("expected the supplied collection to be used, got %v", matches)
	}
}

func TestMatchJobToEmployeesSortedDescending(t *testing.T) {
	employees := []models.Employee{
		{Name: "No Skills"},
		{Name: "Full Match", Skills: "go\ndocker", PreferredContract: "FT"},
		{Name: "Partial", Skills: "docker"},
	}
	ranker := NewRankerService(NewMatcherService(), &stubJobRepo{}, &stubEmployeeRepo{employees: employees})

	job := &models.Job{Title: "Platform", RequiredSkills: "Golang, Docker", JobType: "FT"}
	matches, err := ranker.MatchJobToEmployees(job, nil)
	if err != nil {
		t.Fatalf("MatchJobToEmployees error: %v", err)
	}

	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matches))
	}
	if matches[0].Employee.Name != "Full Match" || matches[0].Score != 100.0 {
		t.Errorf("expected Full Match at 100.0 first, got %s at %v", matches[0].Employee.Name, matches[0].Score)
	}
	if !matches[0].ContractMatch {
		t.Error("expected contract match for Full Match")
	}
	if matches[1].Employee.Name != "Partial" || matches[1].Score != 45.0 {
		t.Errorf("expected Partial at 45.0 second, got %s at %v", matches[1].Employee.Name, matches[1].Score)
	}
	if matches[2].Employee.Name != "No Skills" || matches[2].Score != 15.0 {
		t.Errorf("expected No Skills at 15.0 last, got %s at %v", matches[2].Employee.Name, matches[2].Score)
	}
}
