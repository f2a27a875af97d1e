package main

import (
	"log"

	"jobboard/internal/config"
	"jobboard/internal/models"
	"jobboard/internal/repositories"
)

func main() {
	log.Println("🚀 Starting job seeding...")

	// Load configuration
	cfg := config.Load()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	jobRepo := repositories.NewJobRepository(db)

	jobs := []models.Job{
		{
			Title:           "Backend Developer",
			Company:         "Acme Software",
			Description:     "Build and operate REST APIs for the hiring platform.",
			RequiredSkills:  "Python, Django, PostgreSQL",
			PreferredSkills: "Docker, AWS",
			JobType:         "FT",
		},
		{
			Title:           "Frontend Developer",
			Company:         "Acme Software",
			Description:     "Own the candidate-facing dashboards.",
			RequiredSkills:  "JavaScript, React, CSS",
			PreferredSkills: "TypeScript",
			JobType:         "FT",
		},
		{
			Title:           "Data Analyst",
			Company:         "Northwind Analytics",
			Description:     "Reporting and ad-hoc analysis for hiring metrics.",
			RequiredSkills:  "SQL, Excel, Data Analysis",
			PreferredSkills: "Python, Tableau",
			JobType:         "PT",
		},
		{
			Title:           "DevOps Engineer",
			Company:         "Cloudline",
			Description:     "Keep the deployment pipeline healthy.",
			RequiredSkills:  "Docker, Kubernetes, Linux",
			PreferredSkills: "Terraform, AWS, CI/CD",
			JobType:         "FT",
		},
	}

	for i := range jobs {
		if err := jobRepo.Create(&jobs[i]); err != nil {
			log.Fatalf("❌ Failed to seed job %q: %v", jobs[i].Title, err)
		}
		log.Printf("✅ Seeded job: %s (%s)\n", jobs[i].Title, jobs[i].Company)
	}

	log.Printf("🎉 Seeding completed: %d jobs\n", len(jobs))
}
