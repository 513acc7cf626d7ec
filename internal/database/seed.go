package database

import (
	"log"

	"github.com/recruitwarx/portal/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed loads the demo dataset on an empty database: four companies, an
// admin/recruiter/candidate trio, four active jobs and the candidate's
// first three applications. No-op when users already exist.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("Seeding sample data...")

	companies := []models.Company{
		{Name: "TechCorp Inc.", Description: "Leading technology solutions provider", Website: "https://techcorp.com", Industry: "Technology", Size: "large", Location: "San Francisco, CA"},
		{Name: "StartupXYZ", Description: "Innovative startup focused on mobile apps", Website: "https://startupxyz.com", Industry: "Technology", Size: "startup", Location: "Austin, TX"},
		{Name: "Creative Agency", Description: "Full-service digital marketing agency", Website: "https://creativeagency.com", Industry: "Marketing", Size: "medium", Location: "New York, NY"},
		{Name: "Innovation Labs", Description: "Research and development company", Website: "https://innovationlabs.com", Industry: "Technology", Size: "medium", Location: "Boston, MA"},
	}
	if err := db.Create(&companies).Error; err != nil {
		return err
	}

	users := []models.User{
		{Username: "admin", Email: "admin@recruitwarx.com", Password: mustHash("admin123"), Role: models.RoleAdmin, FirstName: "Admin", LastName: "User", Phone: "+1-555-0001"},
		{Username: "recruiter", Email: "recruiter@recruitwarx.com", Password: mustHash("recruiter123"), Role: models.RoleRecruiter, FirstName: "Jane", LastName: "Recruiter", Phone: "+1-555-0002"},
		{Username: "candidate", Email: "candidate@recruitwarx.com", Password: mustHash("candidate123"), Role: models.RoleCandidate, FirstName: "John", LastName: "Doe", Phone: "+1-555-0003"},
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}
	recruiter := users[1]
	candidate := users[2]

	jobs := []models.Job{
		{
			Title:       "Senior Software Engineer",
			Description: "We are looking for a Senior Software Engineer to join our growing team. You will work on cutting-edge projects using React, Node.js, and AWS.",
			Requirements: "Bachelor degree in Computer Science, 5+ years experience, React, Node.js, AWS",
			Location:    "San Francisco, CA",
			SalaryMin:   f(120000), SalaryMax: f(150000),
			JobType: "full-time", ExperienceLevel: "senior",
			CompanyID: &companies[0].ID, PostedBy: recruiter.ID, Status: models.JobStatusActive,
		},
		{
			Title:       "UX/UI Designer",
			Description: "Join our creative team as a UX/UI Designer. You will design user-centered digital experiences for our clients.",
			Requirements: "Portfolio required, Figma, Adobe Creative Suite, 3+ years experience",
			Location:    "New York, NY",
			SalaryMin:   f(80000), SalaryMax: f(100000),
			JobType: "full-time", ExperienceLevel: "mid",
			CompanyID: &companies[2].ID, PostedBy: recruiter.ID, Status: models.JobStatusActive,
		},
		{
			Title:       "Data Analyst",
			Description: "Looking for a Data Analyst to help analyze business metrics and create insightful reports.",
			Requirements: "SQL, Python, Tableau, 2+ years experience",
			Location:    "Remote",
			SalaryMin:   f(70000), SalaryMax: f(90000),
			JobType: "contract", ExperienceLevel: "mid",
			CompanyID: &companies[3].ID, PostedBy: recruiter.ID, Status: models.JobStatusActive,
		},
		{
			Title:       "Junior Frontend Developer",
			Description: "Perfect opportunity for a Junior Frontend Developer to join our innovative startup.",
			Requirements: "HTML, CSS, JavaScript, React basics, Fresh graduate or 1 year experience",
			Location:    "Austin, TX",
			SalaryMin:   f(60000), SalaryMax: f(75000),
			JobType: "full-time", ExperienceLevel: "entry",
			CompanyID: &companies[1].ID, PostedBy: recruiter.ID, Status: models.JobStatusActive,
		},
	}
	if err := db.Create(&jobs).Error; err != nil {
		return err
	}

	applications := []models.Application{
		{JobID: jobs[0].ID, CandidateID: candidate.ID, Status: models.ApplicationStatusApplied, CoverLetter: "I am very interested in this position and believe my skills align well with your requirements."},
		{JobID: jobs[1].ID, CandidateID: candidate.ID, Status: models.ApplicationStatusScreening, CoverLetter: "I have extensive experience in UX/UI design and would love to contribute to your team."},
		{JobID: jobs[2].ID, CandidateID: candidate.ID, Status: models.ApplicationStatusPhoneInterview, CoverLetter: "My background in data analysis makes me a perfect fit for this role."},
	}
	return db.Create(&applications).Error
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash seed password:", err)
	}
	return string(hash)
}

func f(v float64) *float64 { return &v }
