package main

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/launchjobs/jobboard-api/internal/database"
	"github.com/launchjobs/jobboard-api/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type seedJob struct {
	title        string
	company      string
	location     string
	jobType      string
	salary       string
	description  string
	requirements string
	contactEmail string
	owner        string // seed user email
	applicants   []models.Applicant
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	db := database.Connect()

	log.Println("Clearing existing data...")
	db.Exec("DELETE FROM jobs")
	db.Exec("DELETE FROM users")

	log.Println("Seeding users...")
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash seed password:", err)
	}

	seedUsers := []models.User{
		{Name: "John Smith", Email: "john@techcorp.com", Password: string(hash)},
		{Name: "Sarah Johnson", Email: "sarah@designstudio.com", Password: string(hash)},
		{Name: "Mike Chen", Email: "mike@dataflow.com", Password: string(hash)},
	}
	users := map[string]models.User{}
	for _, u := range seedUsers {
		if err := db.Create(&u).Error; err != nil {
			log.Fatal("Failed to seed user:", err)
		}
		users[u.Email] = u
	}

	log.Println("Seeding jobs...")
	now := time.Now()
	jobs := []seedJob{
		{
			title:        "Senior Frontend Developer",
			company:      "TechCorp Inc.",
			location:     "San Francisco, CA",
			jobType:      models.JobTypeFullTime,
			salary:       "$120,000 - $150,000",
			description:  "We're looking for a talented frontend developer to join our growing team. You'll build and maintain our web applications using React and TypeScript, working closely with design and backend.",
			requirements: "React, TypeScript, Next.js, Redux, CSS, Responsive Design",
			contactEmail: "hr@techcorp.com",
			owner:        "john@techcorp.com",
			applicants: []models.Applicant{
				{
					FullName:  "Alice Nguyen",
					Email:     "alice.nguyen@example.com",
					Phone:     "+1 555 0101",
					AppliedAt: now.Add(-72 * time.Hour),
					Status:    models.StatusPending,
				},
				{
					FullName:    "Bob Martinez",
					Email:       "bob.martinez@example.com",
					CoverLetter: "I have six years of React experience and would love to join.",
					AppliedAt:   now.Add(-24 * time.Hour),
					Status:      models.StatusShortlisted,
				},
			},
		},
		{
			title:        "UX/UI Designer",
			company:      "Design Studio",
			location:     "New York, NY",
			jobType:      models.JobTypeFullTime,
			salary:       "$90,000 - $120,000",
			description:  "Join our creative team to design amazing user experiences. You'll work with product managers and developers through the whole design process, from research to final implementation.",
			requirements: "Figma, Adobe Creative Suite, User Research, Design Systems, Accessibility",
			contactEmail: "careers@designstudio.com",
			owner:        "sarah@designstudio.com",
		},
		{
			title:        "Backend Engineer",
			company:      "DataFlow Systems",
			location:     "Remote",
			jobType:      models.JobTypeContract,
			salary:       "$70 - $90 per hour",
			description:  "Design and operate the APIs behind our analytics platform. You'll own services end to end, from schema design to deployment.",
			requirements: "Go, PostgreSQL, Docker, REST APIs",
			contactEmail: "jobs@dataflow.com",
			owner:        "mike@dataflow.com",
		},
	}

	for _, j := range jobs {
		applicants := models.ApplicantList{}
		for _, a := range j.applicants {
			a.ID = uuid.New()
			applicants = append(applicants, a)
		}
		job := models.Job{
			Title:        j.title,
			Company:      j.company,
			Location:     j.location,
			Type:         j.jobType,
			Salary:       j.salary,
			Description:  j.description,
			Requirements: j.requirements,
			ContactEmail: j.contactEmail,
			PostedByID:   users[j.owner].ID,
			IsActive:     true,
			Applicants:   applicants,
		}
		if err := db.Create(&job).Error; err != nil {
			log.Fatal("Failed to seed job:", err)
		}
	}

	log.Printf("Seeded %d users and %d jobs", len(seedUsers), len(jobs))
}
